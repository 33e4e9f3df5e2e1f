package warmup

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/lenardatthebreakwater/dessert-ordering-app/lib/mycontext"
	"github.com/lenardatthebreakwater/dessert-ordering-app/lib/myerrors"
	"github.com/lenardatthebreakwater/dessert-ordering-app/lib/myhttp"
	"github.com/lenardatthebreakwater/dessert-ordering-app/lib/mylog"
	"github.com/lenardatthebreakwater/dessert-ordering-app/lib/mystore"
	"github.com/lenardatthebreakwater/dessert-ordering-app/services/catalog"
	"github.com/lenardatthebreakwater/dessert-ordering-app/services/shop"
)

const probeUID = "warmup"

type webService struct {
	logger      mylog.Logger
	desserts    catalog.Catalog
	basketStore mystore.Store[shop.Basket]
}

type Status struct {
	Message      string `json:"message"`
	DessertCount int    `json:"dessertCount"`
}

// Use dependency injection to isolate the infrastructure and ease testing
func NewService(desserts catalog.Catalog, basketStore mystore.Store[shop.Basket]) *webService {
	return &webService{
		logger:      mylog.New("warmup"),
		desserts:    desserts,
		basketStore: basketStore,
	}
}

func (s webService) RegisterEndpoints(c context.Context, router *mux.Router) {
	router.HandleFunc("/_ah/warmup", s.warmupPage()).Methods("GET")
}

// warmupPage opens the store connection before real traffic arrives.
func (s *webService) warmupPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		errorWriter := myhttp.NewWriter(s.logger)

		if s.desserts.Len() == 0 {
			errorWriter.WriteError(c, w, 1, myerrors.NewInternalError(fmt.Errorf("dessert catalog is empty")))
			return
		}

		_, _, err := s.basketStore.Get(c, probeUID)
		if err != nil {
			errorWriter.WriteError(c, w, 2, myerrors.NewInternalError(err))
			return
		}

		errorWriter.Write(c, w, http.StatusOK, Status{
			Message:      "Successfully processed warmup request",
			DessertCount: s.desserts.Len(),
		})
	}
}
