package http

import (
	"context"
	"net/http"

	"bikeshop-backend/internal/domain"
	"bikeshop-backend/internal/service"
)

type ContractHandler struct {
	contractSvc service.ContractService
}

func NewContractHandler(contractSvc service.ContractService) *ContractHandler {
	return &ContractHandler{contractSvc: contractSvc}
}

// contractCreateRequest shadows unit_price with a pointer so an absent
// field (take the bike's suggested rate) is distinguishable from an
// explicit zero (a free contract).
type contractCreateRequest struct {
	domain.RentalContract
	UnitPrice *float64 `json:"unit_price"`
}

func (h *ContractHandler) Create(w http.ResponseWriter, r *http.Request) {
	req := contractCreateRequest{RentalContract: domain.RentalContract{Deposit: domain.DefaultDeposit}}
	if !decodeBody(w, r, &req) {
		return
	}

	contract := req.RentalContract
	if req.UnitPrice != nil {
		contract.UnitPrice = *req.UnitPrice
	} else {
		price, err := h.contractSvc.SuggestUnitPrice(r.Context(), contract.BikeID, contract.DurationUnit)
		if err != nil {
			writeError(w, err)
			return
		}
		contract.UnitPrice = price
	}

	if err := h.contractSvc.CreateContract(r.Context(), &contract, staffLogin(r)); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, contract)
}

func (h *ContractHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	contract, err := h.contractSvc.GetContract(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, contract)
}

func (h *ContractHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var contract domain.RentalContract
	if !decodeBody(w, r, &contract) {
		return
	}
	contract.ID = id
	if err := h.contractSvc.UpdateContract(r.Context(), &contract, staffLogin(r)); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, contract)
}

func (h *ContractHandler) List(w http.ResponseWriter, r *http.Request) {
	status := domain.ContractStatus(r.URL.Query().Get("status"))
	page, pageSize := pagination(r)
	contracts, total, err := h.contractSvc.ListContracts(r.Context(), status, page, pageSize)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, listResponse[domain.RentalContract]{Items: contracts, Total: total, Page: page, PageSize: pageSize})
}

// SuggestPrice returns the advisory unit price for a bike and duration unit.
func (h *ContractHandler) SuggestPrice(w http.ResponseWriter, r *http.Request) {
	bikeID := queryInt32(r, "bike_id")
	unit := domain.DurationUnit(r.URL.Query().Get("duration_unit"))
	price, err := h.contractSvc.SuggestUnitPrice(r.Context(), bikeID, unit)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]float64{"unit_price": price})
}

func (h *ContractHandler) Confirm(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.contractSvc.Confirm)
}

func (h *ContractHandler) Start(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.contractSvc.Start)
}

func (h *ContractHandler) Return(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.contractSvc.Return)
}

func (h *ContractHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.contractSvc.Cancel)
}

func (h *ContractHandler) transition(w http.ResponseWriter, r *http.Request, op func(ctx context.Context, id int32, changedBy string) (*domain.RentalContract, error)) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	contract, err := op(r.Context(), id, staffLogin(r))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, contract)
}
