package cart

import (
	"math/rand"
	"testing"

	"go-pos-register/internal/kv"
	"go-pos-register/internal/ledger"
	"go-pos-register/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func coke() models.Product {
	return models.Product{ID: "1", Name: "Coca-Cola 20oz", Barcode: "049000028911", Price: 2.49, TaxRate: 0.0875, Status: models.StatusActive}
}

func milk() models.Product {
	return models.Product{ID: "5", Name: "Milk 1 Gallon", Barcode: "MILK-1GAL", Price: 4.79, TaxRate: 0, Status: models.StatusActive}
}

func cigarettes() models.Product {
	return models.Product{ID: "4", Name: "Cigarettes (Restricted)", Barcode: "CIG-001", Price: 10.99, TaxRate: 0.0875, IDCheckRequired: true, Status: models.StatusActive}
}

func cashier() models.EmployeeSession {
	return models.EmployeeSession{EmployeeID: "1001", Name: "Cashier One", Role: "cashier"}
}

func TestAddAggregatesSameProduct(t *testing.T) {
	c := New()

	for i := 0; i < 7; i++ {
		c.Add(coke())
	}

	lines := c.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, 7, lines[0].Qty)
	assert.Equal(t, "1", lines[0].ProductID)
}

func TestAddSnapshotsPriceAtAddTime(t *testing.T) {
	c := New()
	p := coke()
	c.Add(p)

	// A later catalog price change must not reach the open cart.
	p.Price = 99.99
	c.Add(p)

	lines := c.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, 2.49, lines[0].Price)
	assert.Equal(t, 2, lines[0].Qty)
}

func TestChangeQtyFloorsAtOne(t *testing.T) {
	c := New()
	c.Add(milk())
	lineID := c.Lines()[0].LineID

	c.ChangeQty(lineID, +3)
	assert.Equal(t, 4, c.Lines()[0].Qty)

	c.ChangeQty(lineID, -10)
	assert.Equal(t, 1, c.Lines()[0].Qty)

	c.ChangeQty(lineID, -1)
	assert.Equal(t, 1, c.Lines()[0].Qty, "quantity never drops below 1")
}

func TestChangeQtyUnknownLineIsNoop(t *testing.T) {
	c := New()
	c.Add(milk())

	c.ChangeQty("nope", +5)
	assert.Equal(t, 1, c.Lines()[0].Qty)
}

func TestRemoveLine(t *testing.T) {
	c := New()
	c.Add(coke())
	c.Add(milk())
	lineID := c.Lines()[0].LineID

	c.Remove(lineID)
	lines := c.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, "5", lines[0].ProductID)

	c.Remove("nope") // no-op
	assert.Len(t, c.Lines(), 1)
}

func TestComputeTotalsScenario(t *testing.T) {
	c := New()
	c.Add(coke())
	c.Add(coke())
	c.Add(milk())

	totals := c.Totals()
	assert.InDelta(t, 9.77, totals.Subtotal, 1e-9)
	assert.InDelta(t, 0.435750, totals.TaxTotal, 1e-9)
	assert.InDelta(t, 10.205750, totals.Total, 1e-9)
}

func TestComputeTotalsOrderIndependent(t *testing.T) {
	lines := []models.CartLine{
		{LineID: "l1", Price: 2.49, TaxRate: 0.0875, Qty: 2},
		{LineID: "l2", Price: 4.79, TaxRate: 0, Qty: 1},
		{LineID: "l3", Price: 10.99, TaxRate: 0.0875, Qty: 3},
		{LineID: "l4", Price: 0.01, TaxRate: 0.1, Qty: 100},
	}
	want := ComputeTotals(lines)

	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 20; i++ {
		shuffled := make([]models.CartLine, len(lines))
		copy(shuffled, lines)
		rng.Shuffle(len(shuffled), func(a, b int) {
			shuffled[a], shuffled[b] = shuffled[b], shuffled[a]
		})

		got := ComputeTotals(shuffled)
		assert.InDelta(t, want.Subtotal, got.Subtotal, 1e-9)
		assert.InDelta(t, want.TaxTotal, got.TaxTotal, 1e-9)
		assert.InDelta(t, want.Total, got.Total, 1e-9)
	}
}

func TestCompleteSaleEmptyCartFails(t *testing.T) {
	led := ledger.New(kv.NewMemory())
	c := New()

	sale, err := c.CompleteSale(led, cashier(), models.PaymentCash, nil)
	require.Error(t, err)
	assert.Nil(t, sale)

	var verr *models.ValidationError
	require.ErrorAs(t, err, &verr)

	sales, err := led.All()
	require.NoError(t, err)
	assert.Empty(t, sales, "failed sale must not reach the ledger")
}

func TestCompleteSaleIDCheckRejected(t *testing.T) {
	led := ledger.New(kv.NewMemory())
	c := New()
	c.Add(cigarettes())
	c.Add(milk())

	sale, err := c.CompleteSale(led, cashier(), models.PaymentCard, func() bool { return false })
	require.Error(t, err)
	assert.Nil(t, sale)

	var verr *models.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "Sale blocked: ID check not confirmed.", verr.Message)

	// Cart untouched, ledger untouched.
	assert.Len(t, c.Lines(), 2)
	assert.True(t, c.NeedsIDCheck())
	sales, err := led.All()
	require.NoError(t, err)
	assert.Empty(t, sales)
}

func TestIDCheckFlagIsSticky(t *testing.T) {
	c := New()
	c.Add(cigarettes())
	lineID := c.Lines()[0].LineID
	c.Remove(lineID)

	// Removing the restricted line does not clear the gate.
	assert.True(t, c.NeedsIDCheck())
	assert.Empty(t, c.Lines())
}

func TestCompleteSaleSuccessAndReset(t *testing.T) {
	led := ledger.New(kv.NewMemory())
	c := New()
	c.Add(cigarettes())
	c.Add(coke())
	c.Add(coke())
	c.SetPaymentType(models.PaymentCard)

	sale, err := c.CompleteSale(led, cashier(), models.PaymentCard, func() bool { return true })
	require.NoError(t, err)
	require.NotNil(t, sale)

	assert.Equal(t, "R-1001", sale.ReceiptNo)
	assert.Equal(t, "1001", sale.CashierID)
	assert.Equal(t, models.PaymentCard, sale.PaymentType)
	require.Len(t, sale.Items, 2)

	// Per-line amounts and aggregates agree.
	var sub, tax float64
	for _, item := range sale.Items {
		assert.InDelta(t, item.Price*float64(item.Qty), item.LineSubtotal, 1e-9)
		assert.InDelta(t, item.LineSubtotal*item.TaxRate, item.LineTax, 1e-9)
		assert.InDelta(t, item.LineSubtotal+item.LineTax, item.LineTotal, 1e-9)
		sub += item.LineSubtotal
		tax += item.LineTax
	}
	assert.InDelta(t, sub, sale.Subtotal, 1e-9)
	assert.InDelta(t, tax, sale.TaxTotal, 1e-9)
	assert.InDelta(t, sub+tax, sale.Total, 1e-9)

	// Register fully reset for the next customer.
	assert.Empty(t, c.Lines())
	assert.False(t, c.NeedsIDCheck())
	assert.Equal(t, models.PaymentCash, c.PaymentType())

	sales, err := led.All()
	require.NoError(t, err)
	require.Len(t, sales, 1)
	assert.Equal(t, sale.SaleID, sales[0].SaleID)
}

func TestTwoSalesGetSequentialReceipts(t *testing.T) {
	led := ledger.New(kv.NewMemory())
	c := New()

	c.Add(coke())
	first, err := c.CompleteSale(led, cashier(), models.PaymentCash, nil)
	require.NoError(t, err)

	c.Add(milk())
	second, err := c.CompleteSale(led, cashier(), models.PaymentCash, nil)
	require.NoError(t, err)

	assert.Equal(t, "R-1001", first.ReceiptNo)
	assert.Equal(t, "R-1002", second.ReceiptNo)

	// Newest first in the ledger.
	sales, err := led.All()
	require.NoError(t, err)
	require.Len(t, sales, 2)
	assert.Equal(t, second.SaleID, sales[0].SaleID)
	assert.Equal(t, first.SaleID, sales[1].SaleID)
}
