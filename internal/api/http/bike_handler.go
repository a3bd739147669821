package http

import (
	"context"
	"net/http"
	"strconv"

	"bikeshop-backend/internal/domain"
	"bikeshop-backend/internal/service"

	"github.com/gorilla/mux"
)

type BikeHandler struct {
	catalogSvc service.CatalogService
}

func NewBikeHandler(catalogSvc service.CatalogService) *BikeHandler {
	return &BikeHandler{catalogSvc: catalogSvc}
}

func (h *BikeHandler) Create(w http.ResponseWriter, r *http.Request) {
	var bike domain.Bike
	if !decodeBody(w, r, &bike) {
		return
	}
	if err := h.catalogSvc.AddBike(r.Context(), &bike, staffLogin(r)); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, bike)
}

func (h *BikeHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	bike, err := h.catalogSvc.GetBike(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, bike)
}

func (h *BikeHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var bike domain.Bike
	if !decodeBody(w, r, &bike) {
		return
	}
	bike.ID = id
	if err := h.catalogSvc.UpdateBike(r.Context(), &bike, staffLogin(r)); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, bike)
}

func (h *BikeHandler) List(w http.ResponseWriter, r *http.Request) {
	categoryID := queryInt32(r, "category_id")
	status := domain.BikeStatus(r.URL.Query().Get("status"))
	page, pageSize := pagination(r)

	bikes, total, err := h.catalogSvc.ListBikes(r.Context(), categoryID, status, page, pageSize)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, listResponse[domain.Bike]{Items: bikes, Total: total, Page: page, PageSize: pageSize})
}

func (h *BikeHandler) Archive(w http.ResponseWriter, r *http.Request) {
	h.setStatus(w, r, h.catalogSvc.ArchiveBike)
}

func (h *BikeHandler) SetAvailable(w http.ResponseWriter, r *http.Request) {
	h.setStatus(w, r, h.catalogSvc.SetAvailable)
}

func (h *BikeHandler) SetMaintenance(w http.ResponseWriter, r *http.Request) {
	h.setStatus(w, r, h.catalogSvc.SetMaintenance)
}

func (h *BikeHandler) setStatus(w http.ResponseWriter, r *http.Request, op func(ctx context.Context, id int32, changedBy string) error) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := op(r.Context(), id, staffLogin(r)); err != nil {
		writeError(w, err)
		return
	}
	bike, err := h.catalogSvc.GetBike(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, bike)
}

// Rentals returns the bike's full contract history.
func (h *BikeHandler) Rentals(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	contracts, err := h.catalogSvc.ListBikeRentals(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, contracts)
}

type listResponse[T any] struct {
	Items    []T   `json:"items"`
	Total    int32 `json:"total"`
	Page     int32 `json:"page"`
	PageSize int32 `json:"page_size"`
}

func pathID(w http.ResponseWriter, r *http.Request) (int32, bool) {
	raw := mux.Vars(r)["id"]
	id, err := strconv.ParseInt(raw, 10, 32)
	if err != nil || id <= 0 {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid id"})
		return 0, false
	}
	return int32(id), true
}

func queryInt32(r *http.Request, name string) int32 {
	value, err := strconv.ParseInt(r.URL.Query().Get(name), 10, 32)
	if err != nil {
		return 0
	}
	return int32(value)
}

func pagination(r *http.Request) (page, pageSize int32) {
	page = queryInt32(r, "page")
	if page < 1 {
		page = 1
	}
	pageSize = queryInt32(r, "page_size")
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}
	return page, pageSize
}
