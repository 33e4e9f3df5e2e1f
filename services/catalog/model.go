package catalog

import (
	"github.com/shopspring/decimal"
)

type Image struct {
	Thumbnail string `json:"thumbnail"`
	Mobile    string `json:"mobile"`
	Tablet    string `json:"tablet"`
	Desktop   string `json:"desktop"`
}

type Product struct {
	Name     string          `json:"name"`
	Category string          `json:"category"`
	Price    decimal.Decimal `json:"price"`
	Image    Image           `json:"image"`
}

// ID is derived from the name on every call so it can never drift from it.
func (p Product) ID() string {
	return Slug(p.Name)
}

func (p Product) GetPriceInCurrency() string {
	return FormatPrice(p.Price)
}

// FormatPrice renders an amount in dollars with two decimals.
func FormatPrice(amount decimal.Decimal) string {
	return "$" + amount.StringFixed(2)
}
