package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/rs/zerolog"

	"restaurant-api/internal/model"
	"restaurant-api/internal/service"
)

// FoodHandler handles menu-catalogue HTTP requests.
type FoodHandler struct {
	service service.FoodService
	logger  zerolog.Logger
}

// NewFoodHandler creates a new food handler.
func NewFoodHandler(service service.FoodService, logger zerolog.Logger) *FoodHandler {
	return &FoodHandler{
		service: service,
		logger:  logger.With().Str("handler", "food").Logger(),
	}
}

// Create handles POST /foods requests.
func (h *FoodHandler) Create(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	var req model.FoodRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", h.logger)
		return
	}

	food, err := h.service.Create(r.Context(), &req)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to create food", h.logger)
		return
	}

	writeJSON(w, http.StatusCreated, food)
}

// List handles GET /foods requests with an optional ?email= owner filter.
func (h *FoodHandler) List(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	foods, err := h.service.List(r.Context(), r.URL.Query().Get("email"))
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list foods", h.logger)
		return
	}

	if foods == nil {
		foods = []model.Food{}
	}
	writeJSON(w, http.StatusOK, foods)
}

// ListAll handles GET /allfoods requests with optional ?limit=&offset=
// paging. Without a limit the whole catalogue is returned.
func (h *FoodHandler) ListAll(w http.ResponseWriter, r *http.Request) {
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

	offset := 0
	if offsetStr := r.URL.Query().Get("offset"); offsetStr != "" {
		var err error
		offset, err = strconv.Atoi(offsetStr)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid offset parameter", h.logger)
			return
		}
	}

	foods, err := h.service.ListAll(r.Context(), limit, offset)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list foods", h.logger)
		return
	}

	if foods == nil {
		foods = []model.Food{}
	}
	writeJSON(w, http.StatusOK, foods)
}

// Get handles GET /foods/{id} requests. A missing document is an explicit
// 404 rather than an empty body.
func (h *FoodHandler) Get(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	id, ok := idFromPath(r.URL.Path, "/foods/")
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid food ID", h.logger)
		return
	}

	food, err := h.service.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, model.ErrFoodNotFound) {
			writeError(w, http.StatusNotFound, "food not found", h.logger)
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to retrieve food", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, food)
}

// Replace handles PUT /foods/{id} requests with upsert semantics: an
// unknown ID creates the document rather than failing, and the response
// carries the upserted ID so callers can tell which happened.
func (h *FoodHandler) Replace(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPut {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	id, ok := idFromPath(r.URL.Path, "/foods/")
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid food ID", h.logger)
		return
	}

	var req model.FoodRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", h.logger)
		return
	}

	result, err := h.service.Replace(r.Context(), id, &req)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to replace food", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// Patch handles PATCH /foods/{id} requests: a quantity-only update. A
// missing ID reports matchedCount zero in a 200 response; callers must
// inspect the count to detect the no-op.
func (h *FoodHandler) Patch(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPatch {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	id, ok := idFromPath(r.URL.Path, "/foods/")
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid food ID", h.logger)
		return
	}

	var patch model.QuantityPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", h.logger)
		return
	}

	result, err := h.service.PatchQuantity(r.Context(), id, patch.Quantity)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to patch food", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, result)
}
