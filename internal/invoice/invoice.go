// Package invoice serves the monthly fee invoice and its totals.
package invoice

import (
	"github.com/shopspring/decimal"
)

// DefaultTaxRate is the 18% KDV applied to every invoice.
var DefaultTaxRate = decimal.RequireFromString("0.18")

type Party struct {
	Name      string `json:"name"`
	Address   string `json:"address"`
	Phone     string `json:"phone"`
	Email     string `json:"email,omitempty"`
	Website   string `json:"website,omitempty"`
	TaxNumber string `json:"tax_number"`
}

type Item struct {
	ID          string          `json:"id"`
	Description string          `json:"description"`
	Period      string          `json:"period"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
}

type Invoice struct {
	Number    string `json:"number"`
	IssueDate string `json:"issue_date"`
	DueDate   string `json:"due_date"`
	Status    string `json:"status"`
	Company   Party  `json:"company"`
	Customer  Party  `json:"customer"`
	Items     []Item `json:"items"`
}

// Total returns each line item's quantity*unitPrice.
func (i Item) Total() decimal.Decimal {
	return i.Quantity.Mul(i.UnitPrice)
}

// Subtotal sums the line totals.
func Subtotal(items []Item) decimal.Decimal {
	sum := decimal.Zero
	for _, it := range items {
		sum = sum.Add(it.Total())
	}
	return sum
}

// Tax is subtotal*rate, unrounded.
func Tax(subtotal, rate decimal.Decimal) decimal.Decimal {
	return subtotal.Mul(rate)
}

// Total is subtotal+tax, unrounded.
func Total(subtotal, tax decimal.Decimal) decimal.Decimal {
	return subtotal.Add(tax)
}

// Totals carries the displayed figures. Displayed values are rounded
// half away from zero to 2 decimals; intermediate math stays exact.
type Totals struct {
	Subtotal decimal.Decimal `json:"subtotal"`
	TaxRate  decimal.Decimal `json:"tax_rate"`
	Tax      decimal.Decimal `json:"tax"`
	Total    decimal.Decimal `json:"total"`
}

func (inv Invoice) Totals(rate decimal.Decimal) Totals {
	subtotal := Subtotal(inv.Items)
	tax := Tax(subtotal, rate)
	return Totals{
		Subtotal: subtotal.Round(2),
		TaxRate:  rate,
		Tax:      tax.Round(2),
		Total:    Total(subtotal, tax).Round(2),
	}
}
