package handlers

import (
	"net/http"

	"go-pos-register/internal/catalog"
	"go-pos-register/internal/metrics"

	"github.com/gin-gonic/gin"
)

// --- GET /api/products?q= ---
// Selling-screen list: active products only, optionally filtered by a
// name/barcode substring.
func (h *Handlers) GetProducts(c *gin.Context) {
	products, err := h.Catalog.Search(c.Query("q"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, products)
}

// --- GET /api/products/scan/:barcode ---
// Exact barcode lookup for the scanner path. Inactive products do not scan.
func (h *Handlers) ScanProduct(c *gin.Context) {
	code := c.Param("barcode")

	product, err := h.Catalog.FindByBarcode(code)
	if err != nil {
		fail(c, err)
		return
	}
	if product == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "No product found for barcode: " + code})
		return
	}
	c.JSON(http.StatusOK, product)
}

// --- GET /api/admin/products ---
// Admin list: everything, inactive included.
func (h *Handlers) GetAllProducts(c *gin.Context) {
	products, err := h.Catalog.All()
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, products)
}

// --- POST /api/admin/products ---
func (h *Handlers) AddProduct(c *gin.Context) {
	var input catalog.CreateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	product, err := h.Catalog.Create(input)
	if err != nil {
		fail(c, err)
		return
	}

	metrics.ProductsCreatedTotal.Inc()
	c.JSON(http.StatusCreated, product)
}

// --- PUT /api/admin/products/:id ---
// Partial update: only the fields present in the JSON change.
func (h *Handlers) UpdateProduct(c *gin.Context) {
	var updates catalog.UpdateInput
	if err := c.ShouldBindJSON(&updates); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	product, err := h.Catalog.Update(c.Param("id"), updates)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Product updated successfully", "product": product})
}

type StatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// --- PUT /api/admin/products/:id/status ---
// Soft delete / restore. Nothing is ever removed from the catalog.
func (h *Handlers) SetProductStatus(c *gin.Context) {
	var input StatusRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	product, err := h.Catalog.SetStatus(c.Param("id"), input.Status)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Product status updated", "product": product})
}
