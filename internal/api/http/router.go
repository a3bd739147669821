package http

import (
	"net/http"

	"bikeshop-backend/internal/security"
	"bikeshop-backend/internal/service"

	"github.com/gorilla/mux"
)

// Services holds the service dependencies behind the HTTP API.
type Services struct {
	Catalog  service.CatalogService
	Category service.CategoryService
	Pricing  service.PricingService
	Customer service.CustomerService
	Contract service.ContractService
}

// NewRouter wires all handlers and middleware into a single router.
func NewRouter(services *Services, tokenManager security.TokenManager) *mux.Router {
	router := mux.NewRouter()
	router.Use(RequestID, AccessLog)

	router.HandleFunc("/manage/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}).Methods("GET")

	api := router.PathPrefix("/api/v1").Subrouter()
	api.Use(Auth(tokenManager))

	bikes := NewBikeHandler(services.Catalog)
	api.HandleFunc("/bikes", bikes.Create).Methods("POST")
	api.HandleFunc("/bikes", bikes.List).Methods("GET")
	api.HandleFunc("/bikes/{id}", bikes.Get).Methods("GET")
	api.HandleFunc("/bikes/{id}", bikes.Update).Methods("PUT")
	api.HandleFunc("/bikes/{id}/archive", bikes.Archive).Methods("POST")
	api.HandleFunc("/bikes/{id}/available", bikes.SetAvailable).Methods("POST")
	api.HandleFunc("/bikes/{id}/maintenance", bikes.SetMaintenance).Methods("POST")
	api.HandleFunc("/bikes/{id}/rentals", bikes.Rentals).Methods("GET")

	categories := NewCategoryHandler(services.Category)
	api.HandleFunc("/categories", categories.Create).Methods("POST")
	api.HandleFunc("/categories", categories.List).Methods("GET")
	api.HandleFunc("/categories/{id}", categories.Get).Methods("GET")
	api.HandleFunc("/categories/{id}", categories.Update).Methods("PUT")

	pricing := NewPricingHandler(services.Pricing)
	api.HandleFunc("/pricing-rules", pricing.Create).Methods("POST")
	api.HandleFunc("/pricing-rules", pricing.List).Methods("GET")
	api.HandleFunc("/pricing-rules/{id}", pricing.Get).Methods("GET")
	api.HandleFunc("/pricing-rules/{id}", pricing.Update).Methods("PUT")

	customers := NewCustomerHandler(services.Customer)
	api.HandleFunc("/customers", customers.Create).Methods("POST")
	api.HandleFunc("/customers", customers.List).Methods("GET")
	api.HandleFunc("/customers/{id}", customers.Get).Methods("GET")
	api.HandleFunc("/customers/{id}", customers.Update).Methods("PUT")

	contracts := NewContractHandler(services.Contract)
	api.HandleFunc("/contracts", contracts.Create).Methods("POST")
	api.HandleFunc("/contracts", contracts.List).Methods("GET")
	api.HandleFunc("/contracts/price-suggestion", contracts.SuggestPrice).Methods("GET")
	api.HandleFunc("/contracts/{id}", contracts.Get).Methods("GET")
	api.HandleFunc("/contracts/{id}", contracts.Update).Methods("PUT")
	api.HandleFunc("/contracts/{id}/confirm", contracts.Confirm).Methods("POST")
	api.HandleFunc("/contracts/{id}/start", contracts.Start).Methods("POST")
	api.HandleFunc("/contracts/{id}/return", contracts.Return).Methods("POST")
	api.HandleFunc("/contracts/{id}/cancel", contracts.Cancel).Methods("POST")

	return router
}
