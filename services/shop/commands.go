package shop

import (
	"context"
	"fmt"

	"github.com/lenardatthebreakwater/dessert-ordering-app/lib/myerrors"
	"github.com/lenardatthebreakwater/dessert-ordering-app/lib/mylog"
	"github.com/lenardatthebreakwater/dessert-ordering-app/services/cart"
)

func (s *service) createNewBasket(c context.Context) (Basket, error) {
	basketUID := s.uuider.Create()
	basket := Basket{
		UID:       basketUID,
		CreatedAt: s.nower.Now(),
		Lines:     []BasketLine{},
	}

	s.logger.Log(c, basketUID, mylog.SeverityInfo, "Creating new basket with uid %s", basketUID)

	err := s.basketStore.Put(c, basketUID, basket)
	if err != nil {
		return Basket{}, myerrors.NewInternalError(err)
	}

	return basket, nil
}

func (s *service) getBasket(c context.Context, basketUID string) (Basket, bool, error) {
	basket, found, err := s.basketStore.Get(c, basketUID)
	if err != nil {
		return Basket{}, false, myerrors.NewInternalError(err)
	}
	return basket, found, nil
}

// getOrCreateBasket starts a fresh basket when the session has none or refers to a
// basket that no longer exists.
func (s *service) getOrCreateBasket(c context.Context, basketUID string) (Basket, error) {
	if basketUID != "" {
		basket, found, err := s.getBasket(c, basketUID)
		if err != nil {
			return Basket{}, err
		}
		if found {
			return basket, nil
		}
		s.logger.Log(c, basketUID, mylog.SeverityWarn, "Basket %s not found, starting a new one", basketUID)
	}

	return s.createNewBasket(c)
}

// modifyCart loads the basket, lets f change its cart and stores the result. The whole
// sequence is one transaction, so a cart is only ever changed by one request at a time.
func (s *service) modifyCart(c context.Context, basketUID string, f func(bc *cart.Cart) error) (Basket, error) {
	var basket Basket
	err := s.basketStore.RunInTransaction(c, func(c context.Context) error {
		var found bool
		var err error
		basket, found, err = s.basketStore.Get(c, basketUID)
		if err != nil {
			return myerrors.NewInternalError(err)
		}
		if !found {
			return myerrors.NewNotFoundError(fmt.Errorf("basket with uid %s not found", basketUID))
		}

		shoppingCart := basket.Cart()
		err = f(shoppingCart)
		if err != nil {
			return err
		}
		basket.Update(shoppingCart, s.nower.Now())

		err = s.basketStore.Put(c, basketUID, basket)
		if err != nil {
			return myerrors.NewInternalError(err)
		}

		return nil
	})
	if err != nil {
		return Basket{}, err
	}

	return basket, nil
}

func (s *service) addItem(c context.Context, basketUID string, productID string) (Basket, error) {
	product, found := s.desserts.Get(productID)
	if !found {
		return Basket{}, myerrors.NewNotFoundError(fmt.Errorf("dessert with id %s not found", productID))
	}

	s.logger.Log(c, basketUID, mylog.SeverityInfo, "Add %s to basket %s", productID, basketUID)

	return s.modifyCart(c, basketUID, func(bc *cart.Cart) error {
		bc.AddItem(product)
		return nil
	})
}

func (s *service) changeQuantity(c context.Context, basketUID string, productID string, delta int) (Basket, error) {
	s.logger.Log(c, basketUID, mylog.SeverityInfo, "Change quantity of %s in basket %s by %d", productID, basketUID, delta)

	return s.modifyCart(c, basketUID, func(bc *cart.Cart) error {
		bc.ChangeQuantity(productID, delta)
		return nil
	})
}

func (s *service) removeItem(c context.Context, basketUID string, productID string) (Basket, error) {
	s.logger.Log(c, basketUID, mylog.SeverityInfo, "Remove %s from basket %s", productID, basketUID)

	return s.modifyCart(c, basketUID, func(bc *cart.Cart) error {
		bc.RemoveItem(productID)
		return nil
	})
}

func (s *service) confirmOrder(c context.Context, basketUID string) (Basket, error) {
	s.logger.Log(c, basketUID, mylog.SeverityInfo, "Confirm order of basket %s", basketUID)

	return s.modifyCart(c, basketUID, func(bc *cart.Cart) error {
		if bc.IsEmpty() {
			return myerrors.NewInvalidInputErrorf("basket %s is empty and cannot be confirmed", basketUID)
		}
		bc.ConfirmOrder()
		return nil
	})
}

func (s *service) dismissConfirmation(c context.Context, basketUID string) (Basket, error) {
	s.logger.Log(c, basketUID, mylog.SeverityInfo, "Dismiss order confirmation of basket %s", basketUID)

	return s.modifyCart(c, basketUID, func(bc *cart.Cart) error {
		bc.DismissConfirmation()
		return nil
	})
}

func (s *service) startNewOrder(c context.Context, basketUID string) (Basket, error) {
	s.logger.Log(c, basketUID, mylog.SeverityInfo, "Start new order in basket %s", basketUID)

	return s.modifyCart(c, basketUID, func(bc *cart.Cart) error {
		bc.StartNewOrder()
		return nil
	})
}
