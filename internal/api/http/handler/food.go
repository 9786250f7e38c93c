package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/asoloviev/nutritrack/internal/apierrors"
	"github.com/asoloviev/nutritrack/internal/logger"
	"github.com/asoloviev/nutritrack/internal/model"
)

// FoodService proxies upstream nutrition payloads.
type FoodService interface {
	GetFood(ctx context.Context, id int64, force bool) (model.Food, error)
}

// Food handles HTTP endpoints for nutrition lookups.
type Food struct {
	foodService FoodService
	logger      *logger.Logger
}

// NewFood creates a new Food handler.
func NewFood(foodService FoodService, logger *logger.Logger) *Food {
	return &Food{
		foodService: foodService,
		logger:      logger,
	}
}

// Get handles GET /food/{id}?force=bool.
func (h *Food) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		writeError(w, h.logger, apierrors.NewErrInvalidRequest("id must be a positive integer"))
		return
	}

	force := false
	if raw := r.URL.Query().Get("force"); raw != "" {
		force, err = strconv.ParseBool(raw)
		if err != nil {
			writeError(w, h.logger, apierrors.NewErrInvalidRequest("force must be a boolean"))
			return
		}
	}

	food, err := h.foodService.GetFood(r.Context(), id, force)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	body := food.Data
	if food.FromCache {
		body, err = annotateCached(food.Data)
		if err != nil {
			h.logger.Error("Food handler: failed to annotate cached payload",
				"food_id", id,
				"error", err.Error())
			writeError(w, h.logger, err)
			return
		}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(body); err != nil {
		h.logger.Error("Food handler: failed to write response",
			"food_id", id,
			"error", err.Error())
	}
}

// annotateCached merges a "_cached": true marker into the payload so a
// caller can tell a cache hit from a fresh fetch.
func annotateCached(data []byte) ([]byte, error) {
	var payload map[string]any
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, err
	}
	payload["_cached"] = true
	return json.Marshal(payload)
}
