package http

import (
	"net/http"

	"bikeshop-backend/internal/domain"
	"bikeshop-backend/internal/service"
)

type PricingHandler struct {
	pricingSvc service.PricingService
}

func NewPricingHandler(pricingSvc service.PricingService) *PricingHandler {
	return &PricingHandler{pricingSvc: pricingSvc}
}

func (h *PricingHandler) Create(w http.ResponseWriter, r *http.Request) {
	var rule domain.PricingRule
	if !decodeBody(w, r, &rule) {
		return
	}
	if err := h.pricingSvc.CreateRule(r.Context(), &rule); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, rule)
}

func (h *PricingHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	rule, err := h.pricingSvc.GetRule(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rule)
}

func (h *PricingHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var rule domain.PricingRule
	if !decodeBody(w, r, &rule) {
		return
	}
	rule.ID = id
	if err := h.pricingSvc.UpdateRule(r.Context(), &rule); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rule)
}

func (h *PricingHandler) List(w http.ResponseWriter, r *http.Request) {
	rules, err := h.pricingSvc.ListRules(r.Context(), queryInt32(r, "category_id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rules)
}
