package shop

import (
	"github.com/lenardatthebreakwater/dessert-ordering-app/lib/mylog"
	"github.com/lenardatthebreakwater/dessert-ordering-app/lib/mystore"
	"github.com/lenardatthebreakwater/dessert-ordering-app/lib/mytime"
	"github.com/lenardatthebreakwater/dessert-ordering-app/lib/myuuid"
	"github.com/lenardatthebreakwater/dessert-ordering-app/services/catalog"
)

type service struct {
	desserts    catalog.Catalog
	basketStore mystore.Store[Basket]
	nower       mytime.Nower
	uuider      myuuid.UUIDer
	logger      mylog.Logger
}

// Use dependency injection to isolate the infrastructure and ease testing
func NewService(desserts catalog.Catalog, store mystore.Store[Basket], nower mytime.Nower, uuider myuuid.UUIDer) *service {
	return &service{
		desserts:    desserts,
		basketStore: store,
		nower:       nower,
		uuider:      uuider,
		logger:      mylog.New("shop"),
	}
}
