package invoice

import "github.com/shopspring/decimal"

// Current returns the invoice for the seeded billing period.
func Current() Invoice {
	return Invoice{
		Number:    "INV-2024-001234",
		IssueDate: "2024-04-08",
		DueDate:   "2024-04-15",
		Status:    "paid",
		Company: Party{
			Name:      "CryptoFX Trading Platform",
			Address:   "Beşiktaş, İstanbul, Türkiye",
			Phone:     "+90 212 123 4567",
			Email:     "info@cryptofx.com",
			Website:   "www.cryptofx.com",
			TaxNumber: "1234567890",
		},
		Customer: Party{
			Name:      "John Doe",
			Address:   "Kadıköy, İstanbul, Türkiye",
			Phone:     "+90 555 123 4567",
			Email:     "john.doe@example.com",
			TaxNumber: "9876543210",
		},
		Items: []Item{
			{
				ID:          "1",
				Description: "Trading İşlem Ücreti",
				Period:      "Mart 2024",
				Quantity:    decimal.NewFromInt(45),
				UnitPrice:   decimal.RequireFromString("12.50"),
			},
			{
				ID:          "2",
				Description: "Premium Hesap Ücreti",
				Period:      "Mart 2024",
				Quantity:    decimal.NewFromInt(1),
				UnitPrice:   decimal.RequireFromString("299.99"),
			},
			{
				ID:          "3",
				Description: "Forex Spread Ücreti",
				Period:      "Mart 2024",
				Quantity:    decimal.NewFromInt(23),
				UnitPrice:   decimal.RequireFromString("8.75"),
			},
			{
				ID:          "4",
				Description: "API Kullanım Ücreti",
				Period:      "Mart 2024",
				Quantity:    decimal.NewFromInt(1000),
				UnitPrice:   decimal.RequireFromString("0.05"),
			},
		},
	}
}
