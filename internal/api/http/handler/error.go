package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/asoloviev/nutritrack/internal/apierrors"
	"github.com/asoloviev/nutritrack/internal/logger"
)

type errorResponse struct {
	Kind  apierrors.Kind `json:"kind"`
	Error string         `json:"error"`
}

// writeError maps an error to its transport status. Anything without a
// stable kind is an unexpected failure and surfaces as a bare 500.
func writeError(w http.ResponseWriter, log *logger.Logger, err error) {
	var apiErr *apierrors.APIError
	if errors.As(err, &apiErr) {
		writeJSON(w, log, apiErr.HTTPStatus, errorResponse{Kind: apiErr.Kind, Error: apiErr.Message})
		return
	}

	writeJSON(w, log, http.StatusInternalServerError, errorResponse{Error: "internal server error"})
}

func writeJSON(w http.ResponseWriter, log *logger.Logger, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Error("failed to encode response", "error", err.Error())
	}
}
