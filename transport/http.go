package transport

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"
	inventoryapp "github.com/storescout/storescout/application/inventory"
	productapp "github.com/storescout/storescout/application/product"
	searchapp "github.com/storescout/storescout/application/search"
	storeapp "github.com/storescout/storescout/application/store"
	userapp "github.com/storescout/storescout/application/user"
	httpSwagger "github.com/swaggo/http-swagger"
)

type RestHandler struct {
	UserApp      userapp.UserApp
	ProductApp   productapp.ProductApp
	StoreApp     storeapp.StoreApp
	InventoryApp inventoryapp.InventoryApp
	SearchApp    searchapp.SearchApp
	ScanTimeout  time.Duration
}

func NewTransport(
	UserApp userapp.UserApp,
	ProductApp productapp.ProductApp,
	StoreApp storeapp.StoreApp,
	InventoryApp inventoryapp.InventoryApp,
	SearchApp searchapp.SearchApp,
	scanTimeout time.Duration,
	internalAPIKey string,
) http.Handler {
	mux := mux.NewRouter()

	rh := &RestHandler{
		UserApp:      UserApp,
		ProductApp:   ProductApp,
		StoreApp:     StoreApp,
		InventoryApp: InventoryApp,
		SearchApp:    SearchApp,
		ScanTimeout:  scanTimeout,
	}

	// Swagger UI
	mux.PathPrefix("/swagger/").Handler(httpSwagger.WrapHandler)

	// Public routes
	mux.HandleFunc("/config", rh.ClientConfig).Methods(http.MethodGet)
	mux.HandleFunc("/register", rh.Register).Methods(http.MethodPost)
	mux.HandleFunc("/login", rh.Login).Methods(http.MethodPost)
	mux.HandleFunc("/products", rh.ListProducts).Methods(http.MethodGet)
	mux.HandleFunc("/products/{barcode}", rh.LookupProduct).Methods(http.MethodGet)
	mux.HandleFunc("/search", rh.Search).Methods(http.MethodGet)
	mux.HandleFunc("/search/nearby", rh.SearchNearby).Methods(http.MethodGet)

	// Protected routes
	mux.HandleFunc("/products", rh.CreateProduct).Methods(http.MethodPost)
	mux.HandleFunc("/stores", rh.RegisterStore).Methods(http.MethodPost)
	mux.HandleFunc("/stores/mine", rh.ListOwnStores).Methods(http.MethodGet)
	mux.HandleFunc("/stores/{storeID}/inventory", rh.ListInventory).Methods(http.MethodGet)
	mux.HandleFunc("/stores/{storeID}/inventory", rh.AssignProduct).Methods(http.MethodPost)
	mux.HandleFunc("/stores/{storeID}/inventory/{productID}", rh.UpdateInventory).Methods(http.MethodPut)
	mux.HandleFunc("/stores/{storeID}/inventory/{productID}", rh.RemoveProduct).Methods(http.MethodDelete)

	// Admin routes
	mux.HandleFunc("/admin/stores/pending", rh.ListPendingStores).Methods(http.MethodGet)
	mux.HandleFunc("/admin/stores/{storeID}/review", rh.ReviewStore).Methods(http.MethodPost)

	// Internal service-to-service routes, gated by static API key
	internal := mux.PathPrefix("/internal/v1").Subrouter()
	internal.Use(InternalMiddleware(internalAPIKey))
	internal.HandleFunc("/products/{barcode}/cache", rh.PurgeProductCache).Methods(http.MethodDelete)

	// middleware
	mux.Use(LoggingMiddleware())
	mux.Use(AuthMiddleware(UserApp))

	return mux
}
