package shop

import (
	"context"
	"embed"
	"fmt"
	"html/template"
	"net/http"
	"net/url"

	formcodec "github.com/go-playground/form/v4"
	"github.com/gorilla/mux"

	"github.com/lenardatthebreakwater/dessert-ordering-app/lib/mycontext"
	"github.com/lenardatthebreakwater/dessert-ordering-app/lib/myerrors"
	"github.com/lenardatthebreakwater/dessert-ordering-app/lib/myhttp"
	"github.com/lenardatthebreakwater/dessert-ordering-app/services/cart"
)

const (
	basketCookieName = "basket"
	maxQuantityDelta = 1000
)

func (s *service) RegisterEndpoints(c context.Context, router *mux.Router) {
	// Endpoints that compose the user interface
	router.HandleFunc("/", s.orderPage()).Methods("GET")
	router.HandleFunc("/cart/confirm", s.confirmOrderPage()).Methods("POST")
	router.HandleFunc("/cart/dismiss", s.dismissConfirmationPage()).Methods("POST")
	router.HandleFunc("/cart/new", s.startNewOrderPage()).Methods("POST")
	router.HandleFunc("/cart/{productID}/add", s.addItemPage()).Methods("POST")
	router.HandleFunc("/cart/{productID}/quantity", s.changeQuantityPage()).Methods("POST")
	router.HandleFunc("/cart/{productID}/remove", s.removeItemPage()).Methods("POST")

	// Same state as json
	router.HandleFunc("/api/desserts", s.dessertsAPI()).Methods("GET")
	router.HandleFunc("/api/cart", s.cartAPI()).Methods("GET")
}

//go:embed templates
var templateFolder embed.FS
var (
	orderPageTemplate *template.Template
)

func init() {
	orderPageTemplate = template.Must(template.ParseFS(templateFolder, "templates/order.html"))
}

func basketUIDFromRequest(r *http.Request) string {
	cookie, err := r.Cookie(basketCookieName)
	if err != nil {
		return ""
	}
	return cookie.Value
}

// viewBasket resolves the basket of the session for reading. Sessions without a stored
// basket see an empty one that is not stored, so plain page views create nothing.
func (s *service) viewBasket(c context.Context, r *http.Request) (Basket, error) {
	basketUID := basketUIDFromRequest(r)
	if basketUID == "" {
		return Basket{}, nil
	}

	basket, found, err := s.getBasket(c, basketUID)
	if err != nil {
		return Basket{}, err
	}
	if !found {
		return Basket{}, nil
	}
	return basket, nil
}

// currentBasket resolves the basket of the session behind the request, creating it when
// needed, and (re)issues the session cookie.
func (s *service) currentBasket(c context.Context, w http.ResponseWriter, r *http.Request) (Basket, error) {
	basket, err := s.getOrCreateBasket(c, basketUIDFromRequest(r))
	if err != nil {
		return Basket{}, err
	}

	http.SetCookie(w, &http.Cookie{
		Name:     basketCookieName,
		Value:    basket.UID,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	return basket, nil
}

func (s *service) orderPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		errorWriter := myhttp.NewWriter(s.logger)

		basket, err := s.viewBasket(c, r)
		if err != nil {
			errorWriter.WriteError(c, w, 1, err)
			return
		}

		shoppingCart := basket.Cart()
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		err = orderPageTemplate.Execute(w, OrderPageInfo{
			Products: newProductViews(s.desserts, shoppingCart),
			Cart:     newCartView(shoppingCart),
		})
		if err != nil {
			errorWriter.WriteError(c, w, 2, myerrors.NewInternalError(err))
			return
		}
	}
}

// cartAction is the common shape of all POST handlers: resolve the session basket,
// apply one cart operation and redirect back to the order page.
func (s *service) cartAction(errorCode int, action func(c context.Context, basketUID string, r *http.Request) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		errorWriter := myhttp.NewWriter(s.logger)

		basket, err := s.currentBasket(c, w, r)
		if err != nil {
			errorWriter.WriteError(c, w, errorCode, err)
			return
		}

		err = action(c, basket.UID, r)
		if err != nil {
			errorWriter.WriteError(c, w, errorCode+1, err)
			return
		}

		myhttp.RedirectToPage(w, r, "/")
	}
}

func (s *service) addItemPage() http.HandlerFunc {
	return s.cartAction(10, func(c context.Context, basketUID string, r *http.Request) error {
		_, err := s.addItem(c, basketUID, mux.Vars(r)["productID"])
		return err
	})
}

func (s *service) changeQuantityPage() http.HandlerFunc {
	return s.cartAction(20, func(c context.Context, basketUID string, r *http.Request) error {
		form, err := quantityFormFromRequest(r)
		if err != nil {
			return err
		}
		_, err = s.changeQuantity(c, basketUID, mux.Vars(r)["productID"], *form.Delta)
		return err
	})
}

func (s *service) removeItemPage() http.HandlerFunc {
	return s.cartAction(30, func(c context.Context, basketUID string, r *http.Request) error {
		_, err := s.removeItem(c, basketUID, mux.Vars(r)["productID"])
		return err
	})
}

func (s *service) confirmOrderPage() http.HandlerFunc {
	return s.cartAction(40, func(c context.Context, basketUID string, r *http.Request) error {
		_, err := s.confirmOrder(c, basketUID)
		return err
	})
}

func (s *service) dismissConfirmationPage() http.HandlerFunc {
	return s.cartAction(50, func(c context.Context, basketUID string, r *http.Request) error {
		_, err := s.dismissConfirmation(c, basketUID)
		return err
	})
}

func (s *service) startNewOrderPage() http.HandlerFunc {
	return s.cartAction(60, func(c context.Context, basketUID string, r *http.Request) error {
		_, err := s.startNewOrder(c, basketUID)
		return err
	})
}

func (s *service) dessertsAPI() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)

		myhttp.NewWriter(s.logger).Write(c, w, http.StatusOK, newProductViews(s.desserts, cart.New()))
	}
}

func (s *service) cartAPI() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		errorWriter := myhttp.NewWriter(s.logger)

		basket, err := s.viewBasket(c, r)
		if err != nil {
			errorWriter.WriteError(c, w, 70, err)
			return
		}

		errorWriter.Write(c, w, http.StatusOK, newCartView(basket.Cart()))
	}
}

type quantityForm struct {
	Delta *int `form:"delta"`
}

func quantityFormFromRequest(r *http.Request) (quantityForm, error) {
	err := r.ParseForm()
	if err != nil {
		return quantityForm{}, myerrors.NewInvalidInputError(err)
	}
	return quantityFormFromValues(r.PostForm)
}

func quantityFormFromValues(values url.Values) (quantityForm, error) {
	form := quantityForm{}
	err := formcodec.NewDecoder().Decode(&form, values)
	if err != nil {
		return form, myerrors.NewInvalidInputError(fmt.Errorf("error decoding form: %s", err))
	}
	if form.Delta == nil {
		return form, myerrors.NewInvalidInputErrorf("missing form field delta")
	}
	if *form.Delta > maxQuantityDelta || *form.Delta < -maxQuantityDelta {
		return form, myerrors.NewInvalidInputErrorf("delta %d out of range [-%d,%d]", *form.Delta, maxQuantityDelta, maxQuantityDelta)
	}
	return form, nil
}
