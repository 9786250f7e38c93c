package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/asoloviev/nutritrack/internal/api/http/reqcontext"
	"github.com/asoloviev/nutritrack/internal/mocks"
	"github.com/asoloviev/nutritrack/internal/testutil"
)

func TestAuthenticate_Handle(t *testing.T) {
	t.Parallel()

	validUserID := uuid.New()

	tests := []struct {
		name        string
		authHeader  string
		parseUserID uuid.UUID
		parseErr    error
		wantStatus  int
		wantNext    bool
	}{
		{
			name:       "missing authorization header",
			authHeader: "",
			wantStatus: http.StatusUnauthorized,
			wantNext:   false,
		},
		{
			name:       "invalid token",
			authHeader: "Bearer invalid",
			parseErr:   errors.New("failed to parse session token"),
			wantStatus: http.StatusUnauthorized,
			wantNext:   false,
		},
		{
			name:        "nil user id from token",
			authHeader:  "Bearer token",
			parseUserID: uuid.Nil,
			wantStatus:  http.StatusUnauthorized,
			wantNext:    false,
		},
		{
			name:        "valid token",
			authHeader:  "Bearer token",
			parseUserID: validUserID,
			wantStatus:  http.StatusOK,
			wantNext:    true,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			tokens := &mocks.TokenManager{}
			if tt.authHeader != "" {
				tokens.On("Parse", "token").Return(tt.parseUserID, tt.parseErr)
				tokens.On("Parse", "invalid").Return(tt.parseUserID, tt.parseErr)
			}

			m := NewAuthenticate(tokens, testutil.MakeNoopLogger())

			nextCalled := false
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true
				userID, ok := reqcontext.UserID(r.Context())
				assert.True(t, ok)
				assert.Equal(t, validUserID, userID)
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/auth/me", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			rec := httptest.NewRecorder()

			m.Handle(next).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantNext, nextCalled)
			if !tt.wantNext {
				assert.Contains(t, rec.Body.String(), "authorization token")
			}
		})
	}
}
