package catalog

import (
	"errors"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestCatalog(t *testing.T) {

	t.Run("Default catalog", func(t *testing.T) {
		c, err := Default()
		assert.NoError(t, err)
		assert.Equal(t, 9, c.Len())

		first := c.Products()[0]
		assert.Equal(t, "Waffle with Berries", first.Name)
		assert.Equal(t, "Waffle", first.Category)
		assert.True(t, decimal.RequireFromString("6.50").Equal(first.Price))
		assert.Equal(t, "/assets/images/image-waffle-thumbnail.jpg", first.Image.Thumbnail)
		assert.Equal(t, "$6.50", first.GetPriceInCurrency())

		p, found := c.Get("vanilla-bean-crme-brle")
		assert.True(t, found)
		assert.Equal(t, "Crème Brûlée", p.Category)
		assert.Equal(t, "$7.00", p.GetPriceInCurrency())
	})

	t.Run("Get unknown", func(t *testing.T) {
		c, err := Default()
		assert.NoError(t, err)

		_, found := c.Get("chocolate-cake")
		assert.False(t, found)
	})

	t.Run("Order is preserved", func(t *testing.T) {
		c, err := Load(strings.NewReader(`[
			{"name":"Red Velvet Cake","category":"Cake","price":4.5},
			{"name":"Classic Tiramisu","category":"Tiramisu","price":5.5}
		]`))
		assert.NoError(t, err)

		products := c.Products()
		assert.Equal(t, "red-velvet-cake", products[0].ID())
		assert.Equal(t, "classic-tiramisu", products[1].ID())
	})

	t.Run("Products returns a copy", func(t *testing.T) {
		c, err := Default()
		assert.NoError(t, err)

		products := c.Products()
		products[0].Name = "Changed"

		assert.Equal(t, "Waffle with Berries", c.Products()[0].Name)
	})

	t.Run("Slug collision is rejected", func(t *testing.T) {
		_, err := Load(strings.NewReader(`[
			{"name":"Crème Brûlée","category":"Crème Brûlée","price":7},
			{"name":"Crme Brle","category":"Crème Brûlée","price":6}
		]`))
		assert.Error(t, err)
		assert.True(t, errors.Is(err, ErrDuplicateID))
	})

	t.Run("Negative price is rejected", func(t *testing.T) {
		_, err := Load(strings.NewReader(`[{"name":"Free Cookie","category":"Cookie","price":-1}]`))
		assert.True(t, errors.Is(err, ErrInvalid))
	})

	t.Run("Fractional cents are rejected", func(t *testing.T) {
		_, err := Load(strings.NewReader(`[{"name":"Sugar Cube","category":"Candy","price":0.333}]`))
		assert.True(t, errors.Is(err, ErrInvalid))
	})

	t.Run("Trailing zeros are whole cents", func(t *testing.T) {
		c, err := Load(strings.NewReader(`[{"name":"Sugar Cube","category":"Candy","price":"0.3300"}]`))
		assert.NoError(t, err)
		assert.Equal(t, "$0.33", c.Products()[0].GetPriceInCurrency())
	})

	t.Run("Name without usable id is rejected", func(t *testing.T) {
		_, err := Load(strings.NewReader(`[{"name":"???","category":"Cookie","price":1}]`))
		assert.True(t, errors.Is(err, ErrInvalid))
	})

	t.Run("Malformed json", func(t *testing.T) {
		_, err := Load(strings.NewReader(`{"name":`))
		assert.Error(t, err)
	})
}
