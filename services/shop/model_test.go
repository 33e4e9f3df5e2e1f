package shop

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/lenardatthebreakwater/dessert-ordering-app/lib/mytime"
	"github.com/lenardatthebreakwater/dessert-ordering-app/services/cart"
	"github.com/lenardatthebreakwater/dessert-ordering-app/services/catalog"
)

func TestBasket(t *testing.T) {
	waffle := catalog.Product{Name: "Waffle with Berries", Category: "Waffle", Price: decimal.RequireFromString("6.5")}
	brulee := catalog.Product{Name: "Vanilla Bean Crème Brûlée", Category: "Crème Brûlée", Price: decimal.RequireFromString("7")}

	t.Run("Update stores prices in cents", func(t *testing.T) {
		// given
		basket := emptyBasket
		shoppingCart := cart.New()
		shoppingCart.AddItem(waffle)
		shoppingCart.AddItem(brulee)
		shoppingCart.AddItem(waffle)

		// when
		basket.Update(shoppingCart, mytime.ExampleTime)

		// then
		assert.Len(t, basket.Lines, 2)
		assert.Equal(t, int64(650), basket.Lines[0].PriceInCents)
		assert.Equal(t, 2, basket.Lines[0].Quantity)
		assert.Equal(t, int64(700), basket.Lines[1].PriceInCents)
		assert.Equal(t, mytime.ExampleTime, *basket.LastModified)
	})

	t.Run("Stored totals match the in-memory totals", func(t *testing.T) {
		// given
		desserts, err := catalog.Load(strings.NewReader(`[{"name":"Sugar Cube","category":"Candy","price":0.33}]`))
		assert.NoError(t, err)
		sugarCube, _ := desserts.Get("sugar-cube")
		shoppingCart := cart.New()
		for i := 0; i < 3; i++ {
			shoppingCart.AddItem(sugarCube)
		}
		basket := emptyBasket

		// when
		basket.Update(shoppingCart, mytime.ExampleTime)
		restored := basket.Cart()

		// then
		assert.Equal(t, "0.99", shoppingCart.TotalPrice().StringFixed(2))
		assert.True(t, shoppingCart.TotalPrice().Equal(restored.TotalPrice()))
	})

	t.Run("Cart restores the stored state", func(t *testing.T) {
		// given
		basket := basketWith(true, waffleLine, cremeBruleeLine)

		// when
		restored := basket.Cart()

		// then
		assert.True(t, restored.OrderConfirmed())
		assert.Equal(t, 2, restored.TotalItemCount())
		assert.Equal(t, "13.50", restored.TotalPrice().StringFixed(2))
		assert.Equal(t, 1, restored.QuantityOf("vanilla-bean-crme-brle"))
	})

	t.Run("Cart drops lines without quantity", func(t *testing.T) {
		// given
		broken := waffleLine
		broken.Quantity = 0
		basket := basketWith(false, broken, cremeBruleeLine)

		// when
		restored := basket.Cart()

		// then
		assert.False(t, restored.IsInCart("waffle-with-berries"))
		assert.Len(t, restored.Items(), 1)
	})

	t.Run("Views mark desserts in the cart", func(t *testing.T) {
		// given
		desserts, err := catalog.Default()
		assert.NoError(t, err)
		shoppingCart := basketWith(false, waffleLine).Cart()

		// when
		views := newProductViews(desserts, shoppingCart)

		// then
		assert.Len(t, views, desserts.Len())
		assert.True(t, views[0].InCart())
		assert.False(t, views[1].InCart())
		assert.Equal(t, "$7.00", views[1].Price)
	})
}
