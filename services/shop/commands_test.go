package shop

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/lenardatthebreakwater/dessert-ordering-app/lib/myerrors"
	"github.com/lenardatthebreakwater/dessert-ordering-app/lib/mystore"
	"github.com/lenardatthebreakwater/dessert-ordering-app/lib/mytime"
	"github.com/lenardatthebreakwater/dessert-ordering-app/lib/myuuid"
	"github.com/lenardatthebreakwater/dessert-ordering-app/services/catalog"
)

func TestCommands(t *testing.T) {

	newService := func(t *testing.T, ctrl *gomock.Controller) (*service, *mytime.MockNower) {
		storer, _, err := mystore.New[Basket](context.Background())
		assert.NoError(t, err)
		desserts, err := catalog.Default()
		assert.NoError(t, err)
		nower := mytime.NewMockNower(ctrl)
		return NewService(desserts, storer, nower, myuuid.NewMockUUIDer(ctrl)), nower
	}

	t.Run("Modify unknown basket", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		sut, _ := newService(t, ctrl)

		// when
		_, err := sut.changeQuantity(context.Background(), "999", "waffle-with-berries", 1)

		// then
		assert.Error(t, err)
		assert.Equal(t, 404, myerrors.GetHTTPStatus(err))
	})

	t.Run("Failed command leaves basket untouched", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		sut, _ := newService(t, ctrl)

		// given
		err := sut.basketStore.Put(context.Background(), "123", emptyBasket)
		assert.NoError(t, err)

		// when
		_, err = sut.confirmOrder(context.Background(), "123")

		// then
		assert.Equal(t, 400, myerrors.GetHTTPStatus(err))
		basket, _, _ := sut.basketStore.Get(context.Background(), "123")
		assert.Equal(t, emptyBasket, basket)
	})

	t.Run("Totals follow every change", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		sut, nower := newService(t, ctrl)

		// given
		err := sut.basketStore.Put(context.Background(), "123", emptyBasket)
		assert.NoError(t, err)
		nower.EXPECT().Now().Return(mytime.ExampleTime).Times(4)

		// when
		_, err = sut.addItem(context.Background(), "123", "waffle-with-berries")
		assert.NoError(t, err)
		_, err = sut.addItem(context.Background(), "123", "vanilla-bean-crme-brle")
		assert.NoError(t, err)
		basket, err := sut.changeQuantity(context.Background(), "123", "waffle-with-berries", 1)
		assert.NoError(t, err)

		// then
		assert.Equal(t, 3, basket.Cart().TotalItemCount())
		assert.Equal(t, "20.00", basket.Cart().TotalPrice().StringFixed(2))

		// when
		basket, err = sut.removeItem(context.Background(), "123", "vanilla-bean-crme-brle")
		assert.NoError(t, err)

		// then
		assert.Equal(t, 2, basket.Cart().TotalItemCount())
		assert.Equal(t, "13.00", basket.Cart().TotalPrice().StringFixed(2))
	})
}
