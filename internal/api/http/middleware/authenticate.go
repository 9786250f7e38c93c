package middleware

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/asoloviev/nutritrack/internal/apierrors"
	"github.com/asoloviev/nutritrack/internal/api/http/reqcontext"
	"github.com/asoloviev/nutritrack/internal/logger"
)

// TokenParser resolves user IDs from bearer tokens.
type TokenParser interface {
	Parse(token string) (uuid.UUID, error)
}

// Authenticate validates bearer tokens and injects the user ID into the
// request context.
type Authenticate struct {
	tokens TokenParser
	logger *logger.Logger
}

// NewAuthenticate creates a new Authenticate middleware instance.
func NewAuthenticate(tokens TokenParser, logger *logger.Logger) *Authenticate {
	return &Authenticate{tokens: tokens, logger: logger}
}

// Handle parses the Authorization header, validates the token and calls
// the next handler with the verified user ID on the context. The wrapped
// handler is never invoked for a missing or invalid token.
func (m *Authenticate) Handle(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tokenString := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")

		userID, authErr := m.authenticateUser(tokenString)
		if authErr != nil {
			m.rejectRequest(w, authErr)
			return
		}

		ctx := reqcontext.SetUserID(r.Context(), userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (m *Authenticate) authenticateUser(tokenString string) (uuid.UUID, *apierrors.APIError) {
	if tokenString == "" {
		return uuid.Nil, apierrors.NewErrMissingAuthorizationToken()
	}

	userID, err := m.tokens.Parse(tokenString)
	if err != nil {
		return uuid.Nil, apierrors.NewErrInvalidAuthorizationToken()
	}

	if userID == uuid.Nil {
		return uuid.Nil, apierrors.NewErrInvalidAuthorizationToken()
	}

	return userID, nil
}

func (m *Authenticate) rejectRequest(w http.ResponseWriter, apiErr *apierrors.APIError) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(apiErr.HTTPStatus)
	body := struct {
		Kind  apierrors.Kind `json:"kind"`
		Error string         `json:"error"`
	}{Kind: apiErr.Kind, Error: apiErr.Message}
	if err := json.NewEncoder(w).Encode(body); err != nil {
		m.logger.Error("failed to encode auth error", "error", err.Error())
	}
}
