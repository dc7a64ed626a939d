// Package ledger is the append-only record of completed sales plus the
// monotonic receipt counter. Sales are stored newest-first and never mutated
// or removed once appended.
package ledger

import (
	"encoding/json"
	"fmt"
	"strconv"
	"sync"
	"time"

	"go-pos-register/internal/kv"
	"go-pos-register/internal/models"
)

const (
	salesKey   = "pos_sales"
	counterKey = "pos_receipt_counter"

	// counterSeed is the value the receipt counter starts from on a fresh
	// install; the first issued receipt is therefore R-1001.
	counterSeed = 1000

	receiptPrefix = "R-"
)

// Ledger owns the persisted sale list and the receipt counter.
type Ledger struct {
	mu sync.Mutex
	kv kv.Store
}

func New(store kv.Store) *Ledger {
	return &Ledger{kv: store}
}

// All returns the full sale list, newest first.
func (l *Ledger) All() ([]models.Sale, error) {
	raw, ok, err := l.kv.Get(salesKey)
	if err != nil {
		return nil, err
	}
	if !ok {
		return []models.Sale{}, nil
	}

	var sales []models.Sale
	if err := json.Unmarshal(raw, &sales); err != nil {
		return nil, fmt.Errorf("decode sales: %w", kv.ErrUnavailable)
	}
	return sales, nil
}

// Get returns one sale by id, nil if absent.
func (l *Ledger) Get(saleID string) (*models.Sale, error) {
	sales, err := l.All()
	if err != nil {
		return nil, err
	}
	for i := range sales {
		if sales[i].SaleID == saleID {
			return &sales[i], nil
		}
	}
	return nil, nil
}

// Append prepends the sale. Newest-first ordering is what the receipt
// history screen expects.
func (l *Ledger) Append(sale models.Sale) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	sales, err := l.All()
	if err != nil {
		return err
	}
	sales = append([]models.Sale{sale}, sales...)

	raw, err := json.Marshal(sales)
	if err != nil {
		return fmt.Errorf("encode sales: %w", kv.ErrUnavailable)
	}
	return l.kv.Set(salesKey, raw)
}

// NextReceiptNo bumps the persisted counter and returns the formatted
// receipt number. The read-increment-write is a critical section; the
// persisted value, not anything in memory, is authoritative, so numbers
// stay unique across restarts.
func (l *Ledger) NextReceiptNo() (string, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	current := counterSeed
	raw, ok, err := l.kv.Get(counterKey)
	if err != nil {
		return "", err
	}
	if ok {
		n, convErr := strconv.Atoi(string(raw))
		if convErr != nil {
			return "", fmt.Errorf("decode receipt counter: %w", kv.ErrUnavailable)
		}
		current = n
	}

	next := current + 1
	if err := l.kv.Set(counterKey, []byte(strconv.Itoa(next))); err != nil {
		return "", err
	}
	return fmt.Sprintf("%s%d", receiptPrefix, next), nil
}

// Range returns the sales whose creation time falls in [from, to],
// preserving newest-first order. A linear scan is all this scale needs.
func (l *Ledger) Range(from, to time.Time) ([]models.Sale, error) {
	sales, err := l.All()
	if err != nil {
		return nil, err
	}

	out := make([]models.Sale, 0, len(sales))
	for _, s := range sales {
		if s.CreatedAt.Before(from) || s.CreatedAt.After(to) {
			continue
		}
		out = append(out, s)
	}
	return out, nil
}

// Summary aggregates a slice of sales for the dashboard.
type Summary struct {
	Total        float64 `json:"total"`
	Transactions int     `json:"transactions"`
}

// Summarize totals up a filtered sale list.
func Summarize(sales []models.Sale) Summary {
	sum := Summary{Transactions: len(sales)}
	for _, s := range sales {
		sum.Total += s.Total
	}
	return sum
}

// DaySummary is Range+Summarize over one calendar day in local time.
func (l *Ledger) DaySummary(day time.Time) (Summary, error) {
	from := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	to := from.Add(24*time.Hour - time.Nanosecond)

	sales, err := l.Range(from, to)
	if err != nil {
		return Summary{}, err
	}
	return Summarize(sales), nil
}
