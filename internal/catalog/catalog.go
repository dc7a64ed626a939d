// Package catalog is the product store: seed-once default list, CRUD with a
// case-insensitive uniqueness constraint on barcode, and soft delete via the
// active/inactive status.
package catalog

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"go-pos-register/internal/kv"
	"go-pos-register/internal/models"

	"github.com/google/uuid"
)

const storageKey = "products_mock"

// Store owns the persisted product list.
type Store struct {
	kv kv.Store
}

func New(store kv.Store) *Store {
	return &Store{kv: store}
}

// Seed writes the default catalog if no products have ever been saved.
// Runs on every startup; a second run is a no-op.
func (s *Store) Seed() error {
	_, ok, err := s.kv.Get(storageKey)
	if err != nil {
		return err
	}
	if ok {
		return nil
	}
	return s.save(defaultProducts())
}

// All returns every product regardless of status, admin-list order.
func (s *Store) All() ([]models.Product, error) {
	raw, ok, err := s.kv.Get(storageKey)
	if err != nil {
		return nil, err
	}
	if !ok {
		return []models.Product{}, nil
	}

	var products []models.Product
	if err := json.Unmarshal(raw, &products); err != nil {
		return nil, fmt.Errorf("decode products: %w", kv.ErrUnavailable)
	}
	return products, nil
}

// Active returns only sellable products.
func (s *Store) Active() ([]models.Product, error) {
	all, err := s.All()
	if err != nil {
		return nil, err
	}
	out := make([]models.Product, 0, len(all))
	for _, p := range all {
		if p.Status == models.StatusActive {
			out = append(out, p)
		}
	}
	return out, nil
}

// Search filters active products by a case-insensitive substring of name or
// barcode. Empty query returns the full active list.
func (s *Store) Search(query string) ([]models.Product, error) {
	active, err := s.Active()
	if err != nil {
		return nil, err
	}

	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return active, nil
	}

	out := make([]models.Product, 0, len(active))
	for _, p := range active {
		if strings.Contains(strings.ToLower(p.Name), q) ||
			strings.Contains(strings.ToLower(p.Barcode), q) {
			out = append(out, p)
		}
	}
	return out, nil
}

// FindByBarcode resolves a scanned code to an active product. Inactive
// products do not scan.
func (s *Store) FindByBarcode(code string) (*models.Product, error) {
	active, err := s.Active()
	if err != nil {
		return nil, err
	}
	for i := range active {
		if active[i].Barcode == code {
			return &active[i], nil
		}
	}
	return nil, nil
}

// Get returns a product by id, any status.
func (s *Store) Get(id string) (*models.Product, error) {
	all, err := s.All()
	if err != nil {
		return nil, err
	}
	for i := range all {
		if all[i].ID == id {
			return &all[i], nil
		}
	}
	return nil, nil
}

// CreateInput is the admin form payload for a new product.
type CreateInput struct {
	Name            string  `json:"name"`
	Barcode         string  `json:"barcode"`
	Price           float64 `json:"price"`
	Category        string  `json:"category"`
	TaxRate         float64 `json:"taxRate"`
	IDCheckRequired bool    `json:"idCheckRequired"`
	Status          string  `json:"status"`
}

// Create validates the input fully, then prepends the new product.
// ValidationError messages are user-facing text.
func (s *Store) Create(input CreateInput) (*models.Product, error) {
	products, err := s.All()
	if err != nil {
		return nil, err
	}

	barcode := strings.TrimSpace(input.Barcode)
	if barcode == "" {
		return nil, models.Invalid("Barcode is required.")
	}
	if barcodeTaken(products, barcode, "") {
		return nil, models.Invalid("Barcode must be unique.")
	}

	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, models.Invalid("Name is required.")
	}
	if input.Price < 0 {
		return nil, models.Invalid("Price must be a valid number.")
	}
	if input.TaxRate < 0 {
		return nil, models.Invalid("Tax rate must be a valid number.")
	}

	category := strings.TrimSpace(input.Category)
	if category == "" {
		category = "General"
	}

	status := models.StatusActive
	if input.Status == models.StatusInactive {
		status = models.StatusInactive
	}

	now := time.Now()
	product := models.Product{
		ID:              uuid.NewString(),
		Name:            name,
		Barcode:         barcode,
		Price:           input.Price,
		Category:        category,
		TaxRate:         input.TaxRate,
		IDCheckRequired: input.IDCheckRequired,
		Status:          status,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := s.save(append([]models.Product{product}, products...)); err != nil {
		return nil, err
	}
	return &product, nil
}

// UpdateInput is a partial update: nil fields are left untouched.
type UpdateInput struct {
	Name            *string  `json:"name"`
	Barcode         *string  `json:"barcode"`
	Price           *float64 `json:"price"`
	Category        *string  `json:"category"`
	TaxRate         *float64 `json:"taxRate"`
	IDCheckRequired *bool    `json:"idCheckRequired"`
	Status          *string  `json:"status"`
}

// Update applies a partial edit to one product. Every check passes before
// anything is written, so a failed update never leaves a half-edited record.
func (s *Store) Update(id string, updates UpdateInput) (*models.Product, error) {
	products, err := s.All()
	if err != nil {
		return nil, err
	}

	idx := -1
	for i := range products {
		if products[i].ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return nil, models.Invalid("Product not found.")
	}

	next := products[idx]

	if updates.Barcode != nil {
		barcode := strings.TrimSpace(*updates.Barcode)
		if barcode == "" {
			return nil, models.Invalid("Barcode is required.")
		}
		if barcodeTaken(products, barcode, id) {
			return nil, models.Invalid("Barcode must be unique.")
		}
		next.Barcode = barcode
	}
	if updates.Name != nil {
		next.Name = strings.TrimSpace(*updates.Name)
	}
	if next.Name == "" {
		return nil, models.Invalid("Name is required.")
	}
	if updates.Price != nil {
		next.Price = *updates.Price
	}
	if next.Price < 0 {
		return nil, models.Invalid("Price must be a valid number.")
	}
	if updates.TaxRate != nil {
		next.TaxRate = *updates.TaxRate
	}
	if next.TaxRate < 0 {
		return nil, models.Invalid("Tax rate must be a valid number.")
	}
	if updates.Category != nil {
		next.Category = strings.TrimSpace(*updates.Category)
	}
	if updates.IDCheckRequired != nil {
		next.IDCheckRequired = *updates.IDCheckRequired
	}
	if updates.Status != nil {
		if *updates.Status == models.StatusInactive {
			next.Status = models.StatusInactive
		} else {
			next.Status = models.StatusActive
		}
	}
	next.UpdatedAt = time.Now()

	products[idx] = next
	if err := s.save(products); err != nil {
		return nil, err
	}
	return &next, nil
}

// SetStatus is the soft delete: flip between active and inactive, never
// remove the record.
func (s *Store) SetStatus(id, status string) (*models.Product, error) {
	if status != models.StatusInactive {
		status = models.StatusActive
	}
	return s.Update(id, UpdateInput{Status: &status})
}

func (s *Store) save(products []models.Product) error {
	raw, err := json.Marshal(products)
	if err != nil {
		return fmt.Errorf("encode products: %w", kv.ErrUnavailable)
	}
	return s.kv.Set(storageKey, raw)
}

// barcodeTaken reports whether another product (any status) already owns the
// barcode, case-insensitively. excludeID skips the product being edited.
func barcodeTaken(products []models.Product, barcode, excludeID string) bool {
	for _, p := range products {
		if p.ID == excludeID {
			continue
		}
		if strings.EqualFold(p.Barcode, barcode) {
			return true
		}
	}
	return false
}
