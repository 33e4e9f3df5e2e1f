package cart

import (
	"github.com/shopspring/decimal"

	"github.com/lenardatthebreakwater/dessert-ordering-app/services/catalog"
)

// LineItem is one product's entry in the cart. Quantity is at least 1 for every line a
// Cart holds.
type LineItem struct {
	ID       string
	Name     string
	Category string
	Price    decimal.Decimal
	Image    catalog.Image
	Quantity int
}

func newLineItem(p catalog.Product) LineItem {
	return LineItem{
		ID:       p.ID(),
		Name:     p.Name,
		Category: p.Category,
		Price:    p.Price,
		Image:    p.Image,
		Quantity: 1,
	}
}

func (li LineItem) Subtotal() decimal.Decimal {
	return li.Price.Mul(decimal.NewFromInt(int64(li.Quantity)))
}
