package kv

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Record is the single table behind the embedded backing: one row per
// namespaced key, value is the serialized JSON blob.
type Record struct {
	Key       string    `gorm:"primaryKey;size:100"`
	Value     []byte    `gorm:"type:blob"`
	UpdatedAt time.Time
}

func (Record) TableName() string { return "kv_records" }

// Database is a Store backed by an embedded sqlite file via GORM.
type Database struct {
	db *gorm.DB
}

// OpenDatabase opens (or creates) the sqlite file at path and migrates the
// kv table.
func OpenDatabase(path string) (*Database, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, ErrUnavailable)
	}

	if err := db.AutoMigrate(&Record{}); err != nil {
		return nil, fmt.Errorf("migrate kv_records: %w", ErrUnavailable)
	}

	return &Database{db: db}, nil
}

func (d *Database) Get(key string) ([]byte, bool, error) {
	var rec Record
	err := d.db.First(&rec, "key = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("get %s: %w", key, ErrUnavailable)
	}
	return rec.Value, true, nil
}

func (d *Database) Set(key string, value []byte) error {
	rec := Record{Key: key, Value: value, UpdatedAt: time.Now()}
	if err := d.db.Save(&rec).Error; err != nil {
		return fmt.Errorf("set %s: %w", key, ErrUnavailable)
	}
	return nil
}

func (d *Database) Remove(key string) error {
	if err := d.db.Delete(&Record{}, "key = ?", key).Error; err != nil {
		return fmt.Errorf("remove %s: %w", key, ErrUnavailable)
	}
	return nil
}
