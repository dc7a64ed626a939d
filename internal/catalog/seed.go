package catalog

import (
	"time"

	"go-pos-register/internal/models"
)

// defaultProducts is the catalog a fresh install starts with.
func defaultProducts() []models.Product {
	now := time.Now()
	seed := []models.Product{
		{
			ID:       "1",
			Name:     "Coca-Cola 20oz",
			Barcode:  "049000028911",
			Price:    2.49,
			Category: "Beverages",
			TaxRate:  0.0875,
		},
		{
			ID:       "2",
			Name:     "Lay's Classic Chips",
			Barcode:  "028400064057",
			Price:    2.99,
			Category: "Snacks",
			TaxRate:  0.0875,
		},
		{
			ID:       "3",
			Name:     "Red Bull 8.4oz",
			Barcode:  "611269991000",
			Price:    3.29,
			Category: "Energy",
			TaxRate:  0.0875,
		},
		{
			ID:              "4",
			Name:            "Cigarettes (Restricted)",
			Barcode:         "CIG-001",
			Price:           10.99,
			Category:        "Tobacco",
			TaxRate:         0.0875,
			IDCheckRequired: true,
		},
		{
			ID:       "5",
			Name:     "Milk 1 Gallon",
			Barcode:  "MILK-1GAL",
			Price:    4.79,
			Category: "Grocery",
			TaxRate:  0.0,
		},
	}

	for i := range seed {
		seed[i].Status = models.StatusActive
		seed[i].CreatedAt = now
		seed[i].UpdatedAt = now
	}
	return seed
}
