package models

import (
	"fmt"
	"time"
)

// Product lifecycle states. Products are never hard-deleted; deactivating
// keeps them off the selling screen while preserving sales history.
const (
	StatusActive   = "active"
	StatusInactive = "inactive"
)

// Payment types accepted at the register.
const (
	PaymentCash = "cash"
	PaymentCard = "card"
)

// Product - one catalog entry. Barcode is the natural key used by the
// scanner and must stay unique (case-insensitive) across ALL products,
// including inactive ones.
type Product struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	Barcode         string    `json:"barcode"`
	Price           float64   `json:"price"`
	Category        string    `json:"category"`
	TaxRate         float64   `json:"taxRate"`
	IDCheckRequired bool      `json:"idCheckRequired"`
	Status          string    `json:"status"` // 'active' | 'inactive'
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// CartLine - one product's aggregated quantity inside an open, uncommitted
// sale. Price and tax rate are snapshots taken when the line was added, so
// later catalog edits never change an open cart.
type CartLine struct {
	LineID    string  `json:"lineId"`
	ProductID string  `json:"productId"`
	Name      string  `json:"name"`
	Barcode   string  `json:"barcode"`
	Price     float64 `json:"price"`
	TaxRate   float64 `json:"taxRate"`
	Qty       int     `json:"qty"`
}

// SaleItem - a finalized cart line carrying its computed amounts.
type SaleItem struct {
	CartLine
	LineSubtotal float64 `json:"lineSubtotal"`
	LineTax      float64 `json:"lineTax"`
	LineTotal    float64 `json:"lineTotal"`
}

// Sale - a completed transaction. Immutable once appended to the ledger.
type Sale struct {
	SaleID      string     `json:"saleId"`
	ReceiptNo   string     `json:"receiptNo"`
	CreatedAt   time.Time  `json:"createdAt"`
	CashierID   string     `json:"cashierId"`
	PaymentType string     `json:"paymentType"`
	Items       []SaleItem `json:"items"`
	Subtotal    float64    `json:"subtotal"`
	TaxTotal    float64    `json:"taxTotal"`
	Total       float64    `json:"total"`
}

// EmployeeSession - the cashier currently signed in at the register.
type EmployeeSession struct {
	EmployeeID string    `json:"employeeId"`
	Name       string    `json:"name"`
	Role       string    `json:"role"`
	LoginAt    time.Time `json:"loginAt"`
}

// AdminSession - the back-office user currently signed in.
type AdminSession struct {
	AdminID  string    `json:"adminId"`
	Username string    `json:"username"`
	Role     string    `json:"role"`
	LoginAt  time.Time `json:"loginAt"`
}

// AdminUser - a back-office account. Passwords are stored and compared as
// plaintext; this is a mock credential layer, not real authentication.
type AdminUser struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Password  string    `json:"password"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
	Active    bool      `json:"active"`
}

// Money formats an amount for receipts and reports. Rounding happens only
// here, at display time; stored values keep full float precision.
func Money(n float64) string {
	return fmt.Sprintf("$%.2f", n)
}
