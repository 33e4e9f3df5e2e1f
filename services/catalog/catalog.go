package catalog

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

var (
	ErrDuplicateID = errors.New("duplicate product id")
	ErrInvalid     = errors.New("invalid product")
)

//go:embed desserts.json
var dessertsJSON []byte

// Catalog is the ordered, read-only list of products on offer.
type Catalog struct {
	products []Product
	index    map[string]int
}

// Default returns the dessert catalog that is embedded in the binary.
func Default() (Catalog, error) {
	return Load(bytes.NewReader(dessertsJSON))
}

func Load(r io.Reader) (Catalog, error) {
	products := []Product{}
	err := json.NewDecoder(r).Decode(&products)
	if err != nil {
		return Catalog{}, fmt.Errorf("error parsing catalog: %w", err)
	}
	return New(products)
}

// New rejects products without a usable id, with a negative price or with a price
// below whole cents, and two products whose names map onto the same id, since the cart
// would merge those into one line.
func New(products []Product) (Catalog, error) {
	c := Catalog{
		products: make([]Product, 0, len(products)),
		index:    make(map[string]int, len(products)),
	}
	for i, p := range products {
		id := p.ID()
		if id == "" {
			return Catalog{}, fmt.Errorf("%w: product %d with name %q has no usable id", ErrInvalid, i, p.Name)
		}
		if p.Price.IsNegative() {
			return Catalog{}, fmt.Errorf("%w: product %q has negative price %s", ErrInvalid, p.Name, p.Price)
		}
		if !p.Price.Equal(p.Price.Round(2)) {
			return Catalog{}, fmt.Errorf("%w: product %q has price %s with fractional cents", ErrInvalid, p.Name, p.Price)
		}
		if existing, found := c.index[id]; found {
			return Catalog{}, fmt.Errorf("%w: %q and %q both map to %q", ErrDuplicateID, c.products[existing].Name, p.Name, id)
		}
		c.index[id] = len(c.products)
		c.products = append(c.products, p)
	}
	return c, nil
}

func (c Catalog) Products() []Product {
	result := make([]Product, len(c.products))
	copy(result, c.products)
	return result
}

func (c Catalog) Get(id string) (Product, bool) {
	idx, found := c.index[id]
	if !found {
		return Product{}, false
	}
	return c.products[idx], true
}

func (c Catalog) Len() int {
	return len(c.products)
}
