package handlers

import (
	"errors"
	"net/http"

	"go-pos-register/internal/metrics"
	"go-pos-register/internal/models"

	"github.com/gin-gonic/gin"
)

// cartView is what the selling screen renders after every cart change.
func (h *Handlers) cartView() gin.H {
	totals := h.Cart.Totals()
	return gin.H{
		"lines":        h.Cart.Lines(),
		"totals":       totals,
		"needsIdCheck": h.Cart.NeedsIDCheck(),
		"paymentType":  h.Cart.PaymentType(),
		"display": gin.H{
			"subtotal": models.Money(totals.Subtotal),
			"taxTotal": models.Money(totals.TaxTotal),
			"total":    models.Money(totals.Total),
		},
	}
}

// --- GET /api/cart ---
func (h *Handlers) GetCart(c *gin.Context) {
	c.JSON(http.StatusOK, h.cartView())
}

type AddItemRequest struct {
	ProductID string `json:"product_id"`
	Barcode   string `json:"barcode"`
}

// --- POST /api/cart/items ---
// Adds one unit by product id (search list click) or barcode (scanner).
func (h *Handlers) AddCartItem(c *gin.Context) {
	var input AddItemRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	var product *models.Product
	var err error
	switch {
	case input.ProductID != "":
		product, err = h.Catalog.Get(input.ProductID)
		if err == nil && product != nil && product.Status != models.StatusActive {
			product = nil
		}
	case input.Barcode != "":
		product, err = h.Catalog.FindByBarcode(input.Barcode)
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "product_id or barcode is required"})
		return
	}
	if err != nil {
		fail(c, err)
		return
	}
	if product == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}

	h.Cart.Add(*product)
	c.JSON(http.StatusOK, h.cartView())
}

type ChangeQtyRequest struct {
	Delta int `json:"delta"`
}

// --- PATCH /api/cart/items/:lineId ---
// Quantity floors at 1; removal is its own endpoint.
func (h *Handlers) ChangeCartQty(c *gin.Context) {
	var input ChangeQtyRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	h.Cart.ChangeQty(c.Param("lineId"), input.Delta)
	c.JSON(http.StatusOK, h.cartView())
}

// --- DELETE /api/cart/items/:lineId ---
func (h *Handlers) RemoveCartItem(c *gin.Context) {
	h.Cart.Remove(c.Param("lineId"))
	c.JSON(http.StatusOK, h.cartView())
}

type CheckoutRequest struct {
	PaymentType      string `json:"payment_type"`
	IDCheckConfirmed bool   `json:"id_check_confirmed"`
}

// --- POST /api/checkout ---
// The confirmation flag stands in for the operator's "I checked the
// customer's ID" answer; it only matters when the cart holds a restricted
// item.
func (h *Handlers) Checkout(c *gin.Context) {
	var input CheckoutRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	sess := c.MustGet("employeeSession").(models.EmployeeSession)

	sale, err := h.Cart.CompleteSale(h.Ledger, sess, input.PaymentType, func() bool {
		return input.IDCheckConfirmed
	})
	if err != nil {
		var verr *models.ValidationError
		if errors.As(err, &verr) {
			metrics.SalesBlockedTotal.WithLabelValues(blockReason(verr)).Inc()
		}
		fail(c, err)
		return
	}

	metrics.SalesCompletedTotal.Inc()
	c.JSON(http.StatusOK, gin.H{
		"message": "Sale completed",
		"sale":    sale,
		"display": gin.H{
			"subtotal": models.Money(sale.Subtotal),
			"taxTotal": models.Money(sale.TaxTotal),
			"total":    models.Money(sale.Total),
		},
	})
}

func blockReason(verr *models.ValidationError) string {
	if verr.Message == "Sale blocked: ID check not confirmed." {
		return "id_check"
	}
	return "empty_cart"
}
