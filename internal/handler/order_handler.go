package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/rs/zerolog"

	"restaurant-api/internal/middleware"
	"restaurant-api/internal/model"
	"restaurant-api/internal/service"
)

// OrderHandler handles order-ledger HTTP requests.
type OrderHandler struct {
	service service.OrderService
	logger  zerolog.Logger
}

// NewOrderHandler creates a new order handler.
func NewOrderHandler(service service.OrderService, logger zerolog.Logger) *OrderHandler {
	return &OrderHandler{
		service: service,
		logger:  logger.With().Str("handler", "order").Logger(),
	}
}

// Place handles POST /orders requests.
func (h *OrderHandler) Place(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	var req model.OrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", h.logger)
		return
	}

	order, err := h.service.Place(r.Context(), &req)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to place order", h.logger)
		return
	}

	writeJSON(w, http.StatusCreated, order)
}

// List handles GET /orders requests. The route runs behind the token
// middleware, so verified claims are always on the context; the optional
// ?email= filter must name the caller or the request is forbidden.
func (h *OrderHandler) List(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized", h.logger)
		return
	}

	orders, err := h.service.List(r.Context(), claims.Email, r.URL.Query().Get("email"))
	if err != nil {
		if errors.Is(err, model.ErrForbidden) {
			writeError(w, http.StatusForbidden, "forbidden access", h.logger)
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to list orders", h.logger)
		return
	}

	if orders == nil {
		orders = []model.Order{}
	}
	writeJSON(w, http.StatusOK, orders)
}

// Delete handles DELETE /orders/{id} requests. Deleting an unknown ID is a
// 200 carrying deletedCount zero.
func (h *OrderHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodDelete {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	id, ok := idFromPath(r.URL.Path, "/orders/")
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid order ID", h.logger)
		return
	}

	result, err := h.service.Delete(r.Context(), id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to delete order", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// TopSelling handles GET /top-selling-items requests with an optional
// ?limit= override of the default 6.
func (h *OrderHandler) TopSelling(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	limit := 0
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		var err error
		limit, err = strconv.Atoi(limitStr)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid limit parameter", h.logger)
			return
		}
	}

	items, err := h.service.TopSelling(r.Context(), limit)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to aggregate top-selling items", h.logger)
		return
	}

	if items == nil {
		items = []model.TopSellingItem{}
	}
	writeJSON(w, http.StatusOK, items)
}
