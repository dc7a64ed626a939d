// Package cart is the in-memory state of the sale being rung up: line
// aggregation, tax math, and the complete-sale step that turns the cart into
// an immutable ledger record. The cart itself is never persisted; it belongs
// to the active register session and dies with it.
package cart

import (
	"sync"
	"time"

	"go-pos-register/internal/ledger"
	"go-pos-register/internal/models"

	"github.com/google/uuid"
)

// Totals is the running money summary of an open cart. No per-line rounding:
// amounts are summed at full float precision and only formatted to cents at
// display time.
type Totals struct {
	Subtotal float64 `json:"subtotal"`
	TaxTotal float64 `json:"taxTotal"`
	Total    float64 `json:"total"`
}

// ComputeTotals folds the line list into subtotal / tax / total. Pure and
// order-independent; recomputed on every change rather than cached.
func ComputeTotals(lines []models.CartLine) Totals {
	var t Totals
	for _, line := range lines {
		amount := line.Price * float64(line.Qty)
		t.Subtotal += amount
		t.TaxTotal += amount * line.TaxRate
	}
	t.Total = t.Subtotal + t.TaxTotal
	return t
}

// Cart is one in-progress transaction. Methods take the lock so the HTTP
// handlers can share a single register cart safely.
type Cart struct {
	mu          sync.Mutex
	lines       []models.CartLine
	paymentType string
	// needsIDCheck sticks once a restricted item enters the cart; removing
	// the triggering line does NOT clear it.
	needsIDCheck bool
}

func New() *Cart {
	return &Cart{paymentType: models.PaymentCash}
}

// Add puts one unit of the product in the cart. A second add of the same
// product bumps the existing line instead of creating another one. Price and
// tax rate are captured now; later catalog edits don't touch open carts.
func (c *Cart) Add(p models.Product) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if p.IDCheckRequired {
		c.needsIDCheck = true
	}

	for i := range c.lines {
		if c.lines[i].ProductID == p.ID {
			c.lines[i].Qty++
			return
		}
	}

	c.lines = append(c.lines, models.CartLine{
		LineID:    uuid.NewString(),
		ProductID: p.ID,
		Name:      p.Name,
		Barcode:   p.Barcode,
		Price:     p.Price,
		TaxRate:   p.TaxRate,
		Qty:       1,
	})
}

// ChangeQty adjusts a line's quantity by delta, flooring at 1. Driving a
// line to zero takes an explicit Remove. Unknown line ids are a no-op.
func (c *Cart) ChangeQty(lineID string, delta int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.lines {
		if c.lines[i].LineID == lineID {
			qty := c.lines[i].Qty + delta
			if qty < 1 {
				qty = 1
			}
			c.lines[i].Qty = qty
			return
		}
	}
}

// Remove deletes a line outright. Unknown line ids are a no-op.
func (c *Cart) Remove(lineID string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.lines {
		if c.lines[i].LineID == lineID {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			return
		}
	}
}

// Lines returns a copy of the current line list.
func (c *Cart) Lines() []models.CartLine {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]models.CartLine, len(c.lines))
	copy(out, c.lines)
	return out
}

// Totals recomputes the money summary for the current lines.
func (c *Cart) Totals() Totals {
	c.mu.Lock()
	defer c.mu.Unlock()
	return ComputeTotals(c.lines)
}

// NeedsIDCheck reports whether a restricted item has ever entered this cart.
func (c *Cart) NeedsIDCheck() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.needsIDCheck
}

// SetPaymentType records the tender choice; anything but card falls back to
// cash.
func (c *Cart) SetPaymentType(t string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if t == models.PaymentCard {
		c.paymentType = models.PaymentCard
	} else {
		c.paymentType = models.PaymentCash
	}
}

func (c *Cart) PaymentType() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.paymentType
}

// CompleteSale turns the cart into a Sale and appends it to the ledger.
// confirmIDCheck is the operator's gate: asked only when a restricted item
// is present, and a false answer blocks the sale.
//
// Either the sale is fully recorded and the cart fully reset, or (on any
// failed precondition) neither happens.
func (c *Cart) CompleteSale(led *ledger.Ledger, sess models.EmployeeSession, paymentType string, confirmIDCheck func() bool) (*models.Sale, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if len(c.lines) == 0 {
		return nil, models.Invalid("Cart is empty. Add items before completing sale.")
	}

	if c.needsIDCheck {
		if confirmIDCheck == nil || !confirmIDCheck() {
			return nil, models.Invalid("Sale blocked: ID check not confirmed.")
		}
	}

	if paymentType != models.PaymentCard {
		paymentType = models.PaymentCash
	}

	receiptNo, err := led.NextReceiptNo()
	if err != nil {
		return nil, err
	}

	items := make([]models.SaleItem, len(c.lines))
	for i, line := range c.lines {
		lineSubtotal := line.Price * float64(line.Qty)
		lineTax := lineSubtotal * line.TaxRate
		items[i] = models.SaleItem{
			CartLine:     line,
			LineSubtotal: lineSubtotal,
			LineTax:      lineTax,
			LineTotal:    lineSubtotal + lineTax,
		}
	}

	totals := ComputeTotals(c.lines)
	sale := models.Sale{
		SaleID:      uuid.NewString(),
		ReceiptNo:   receiptNo,
		CreatedAt:   time.Now(),
		CashierID:   sess.EmployeeID,
		PaymentType: paymentType,
		Items:       items,
		Subtotal:    totals.Subtotal,
		TaxTotal:    totals.TaxTotal,
		Total:       totals.Total,
	}

	if err := led.Append(sale); err != nil {
		return nil, err
	}

	// Reset the register for the next customer.
	c.lines = nil
	c.paymentType = models.PaymentCash
	c.needsIDCheck = false

	return &sale, nil
}
