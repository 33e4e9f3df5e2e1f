package shop

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/lenardatthebreakwater/dessert-ordering-app/services/cart"
	"github.com/lenardatthebreakwater/dessert-ordering-app/services/catalog"
)

// Basket is the stored form of one session's cart.
type Basket struct {
	UID            string
	CreatedAt      time.Time
	LastModified   *time.Time
	Lines          []BasketLine
	OrderConfirmed bool
}

// BasketLine keeps the price in cents; datastore cannot store a decimal.
type BasketLine struct {
	ProductID    string
	Name         string
	Category     string
	PriceInCents int64
	Image        catalog.Image
	Quantity     int
}

func (b Basket) Timestamp() string {
	return b.CreatedAt.Format("2006-01-02 15:04:05")
}

func (b Basket) Cart() *cart.Cart {
	items := make([]cart.LineItem, 0, len(b.Lines))
	for _, l := range b.Lines {
		items = append(items, cart.LineItem{
			ID:       l.ProductID,
			Name:     l.Name,
			Category: l.Category,
			Price:    decimal.New(l.PriceInCents, -2),
			Image:    l.Image,
			Quantity: l.Quantity,
		})
	}
	return cart.Restore(items, b.OrderConfirmed)
}

func (b *Basket) Update(c *cart.Cart, now time.Time) {
	lines := []BasketLine{}
	for _, item := range c.Items() {
		lines = append(lines, BasketLine{
			ProductID:    item.ID,
			Name:         item.Name,
			Category:     item.Category,
			PriceInCents: item.Price.Shift(2).Round(0).IntPart(),
			Image:        item.Image,
			Quantity:     item.Quantity,
		})
	}
	b.Lines = lines
	b.OrderConfirmed = c.OrderConfirmed()
	b.LastModified = &now
}

type ProductView struct {
	ID       string        `json:"id"`
	Name     string        `json:"name"`
	Category string        `json:"category"`
	Price    string        `json:"price"`
	Image    catalog.Image `json:"image"`
	Quantity int           `json:"quantityInCart"`
}

func (p ProductView) InCart() bool {
	return p.Quantity > 0
}

type LineView struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Thumbnail string `json:"thumbnail"`
	UnitPrice string `json:"unitPrice"`
	Subtotal  string `json:"subtotal"`
	Quantity  int    `json:"quantity"`
}

type CartView struct {
	Lines          []LineView `json:"lines"`
	TotalPrice     string     `json:"totalPrice"`
	TotalItemCount int        `json:"totalItemCount"`
	OrderConfirmed bool       `json:"orderConfirmed"`
}

func (v CartView) IsEmpty() bool {
	return len(v.Lines) == 0
}

type OrderPageInfo struct {
	Products []ProductView
	Cart     CartView
}

func newCartView(c *cart.Cart) CartView {
	lines := []LineView{}
	for _, item := range c.Items() {
		lines = append(lines, LineView{
			ID:        item.ID,
			Name:      item.Name,
			Thumbnail: item.Image.Thumbnail,
			UnitPrice: catalog.FormatPrice(item.Price),
			Subtotal:  catalog.FormatPrice(item.Subtotal()),
			Quantity:  item.Quantity,
		})
	}
	return CartView{
		Lines:          lines,
		TotalPrice:     catalog.FormatPrice(c.TotalPrice()),
		TotalItemCount: c.TotalItemCount(),
		OrderConfirmed: c.OrderConfirmed(),
	}
}

func newProductViews(desserts catalog.Catalog, c *cart.Cart) []ProductView {
	views := []ProductView{}
	for _, p := range desserts.Products() {
		views = append(views, ProductView{
			ID:       p.ID(),
			Name:     p.Name,
			Category: p.Category,
			Price:    p.GetPriceInCurrency(),
			Image:    p.Image,
			Quantity: c.QuantityOf(p.ID()),
		})
	}
	return views
}
