package handlers

import (
	"net/http"
	"strconv"
	"time"

	"go-pos-register/internal/ledger"
	"go-pos-register/internal/models"

	"github.com/gin-gonic/gin"
)

// ReportData is the admin dashboard payload: today, yesterday, and an
// arbitrary date range.
type ReportData struct {
	Today     ledger.Summary `json:"today"`
	Yesterday ledger.Summary `json:"yesterday"`
	Range     ledger.Summary `json:"range"`
}

// --- GET /api/admin/reports?from=YYYY-MM-DD&to=YYYY-MM-DD ---
func (h *Handlers) GetSalesReport(c *gin.Context) {
	var data ReportData
	var err error

	now := time.Now()
	data.Today, err = h.Ledger.DaySummary(now)
	if err != nil {
		fail(c, err)
		return
	}
	data.Yesterday, err = h.Ledger.DaySummary(now.AddDate(0, 0, -1))
	if err != nil {
		fail(c, err)
		return
	}

	// Range defaults to today when the query params are absent.
	from, to := now, now
	if v := c.Query("from"); v != "" {
		from, err = time.ParseInLocation("2006-01-02", v, time.Local)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid 'from' date"})
			return
		}
	}
	if v := c.Query("to"); v != "" {
		to, err = time.ParseInLocation("2006-01-02", v, time.Local)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid 'to' date"})
			return
		}
	}

	start := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, time.Local)
	end := time.Date(to.Year(), to.Month(), to.Day(), 23, 59, 59, int(time.Second-time.Nanosecond), time.Local)

	// An inverted range yields an empty summary rather than an error.
	if !start.After(end) {
		sales, rerr := h.Ledger.Range(start, end)
		if rerr != nil {
			fail(c, rerr)
			return
		}
		data.Range = ledger.Summarize(sales)
	}

	c.JSON(http.StatusOK, data)
}

// --- GET /api/sales?limit= ---
// Receipt history, newest first.
func (h *Handlers) GetSales(c *gin.Context) {
	sales, err := h.Ledger.All()
	if err != nil {
		fail(c, err)
		return
	}

	if v := c.Query("limit"); v != "" {
		if limit, convErr := strconv.Atoi(v); convErr == nil && limit >= 0 && limit < len(sales) {
			sales = sales[:limit]
		}
	}
	c.JSON(http.StatusOK, sales)
}

// --- GET /api/sales/:id ---
// One sale shaped for the printable receipt: raw amounts plus formatted
// money strings.
func (h *Handlers) GetSale(c *gin.Context) {
	sale, err := h.Ledger.Get(c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	if sale == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Sale not found"})
		return
	}

	lines := make([]gin.H, len(sale.Items))
	for i, item := range sale.Items {
		lines[i] = gin.H{
			"name":      item.Name,
			"barcode":   item.Barcode,
			"qty":       item.Qty,
			"unitPrice": models.Money(item.Price),
			"lineTotal": models.Money(item.LineTotal),
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"sale": sale,
		"receipt": gin.H{
			"receiptNo":   sale.ReceiptNo,
			"createdAt":   sale.CreatedAt,
			"cashierId":   sale.CashierID,
			"paymentType": sale.PaymentType,
			"lines":       lines,
			"subtotal":    models.Money(sale.Subtotal),
			"taxTotal":    models.Money(sale.TaxTotal),
			"total":       models.Money(sale.Total),
		},
	})
}
