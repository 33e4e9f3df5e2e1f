package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/gorilla/mux"

	"github.com/lenardatthebreakwater/dessert-ordering-app/lib/mystore"
	"github.com/lenardatthebreakwater/dessert-ordering-app/lib/mytime"
	"github.com/lenardatthebreakwater/dessert-ordering-app/lib/myuuid"
	"github.com/lenardatthebreakwater/dessert-ordering-app/services/catalog"
	"github.com/lenardatthebreakwater/dessert-ordering-app/services/shop"
	"github.com/lenardatthebreakwater/dessert-ordering-app/services/warmup"
)

func main() {
	c := context.Background()

	router := mux.NewRouter()

	desserts, err := catalog.Default()
	if err != nil {
		log.Fatalf("Error loading dessert catalog: %s", err)
	}

	basketStore, basketStoreCleanup, err := mystore.New[shop.Basket](c)
	if err != nil {
		log.Fatalf("Error creating basket store: %s", err)
	}
	defer basketStoreCleanup()

	shopService := shop.NewService(desserts, basketStore, mytime.RealNower{}, myuuid.RealUUIDer{})
	shopService.RegisterEndpoints(c, router)

	warmupService := warmup.NewService(desserts, basketStore)
	warmupService.RegisterEndpoints(c, router)

	startWebServerBlocking(router)
}

func startWebServerBlocking(router *mux.Router) {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("Starting webserver on port %s (try http://localhost:%s)", port, port)
	err := http.ListenAndServe(fmt.Sprintf(":%s", port), router)
	if err != nil {
		log.Fatalf("Error starting webserver on port %s: %s", port, err)
	}
}
