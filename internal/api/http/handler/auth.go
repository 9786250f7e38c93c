package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/mail"

	"github.com/google/uuid"

	"github.com/asoloviev/nutritrack/internal/apierrors"
	"github.com/asoloviev/nutritrack/internal/api/http/reqcontext"
	"github.com/asoloviev/nutritrack/internal/logger"
	"github.com/asoloviev/nutritrack/internal/model"
	"github.com/asoloviev/nutritrack/internal/service"
)

// AuthService defines registration, login and profile operations.
type AuthService interface {
	Register(ctx context.Context, params service.RegisterParams) (service.TokenResult, error)
	Login(ctx context.Context, params service.LoginParams) (service.TokenResult, error)
	GetProfile(ctx context.Context, userID uuid.UUID) (model.Profile, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, params service.UpdateProfileParams) (model.Profile, error)
	DeleteAccount(ctx context.Context, userID uuid.UUID) error
}

// Auth handles HTTP endpoints for authentication and profiles.
type Auth struct {
	authService AuthService
	logger      *logger.Logger
}

// NewAuth creates a new Auth handler.
func NewAuth(authService AuthService, logger *logger.Logger) *Auth {
	return &Auth{
		authService: authService,
		logger:      logger,
	}
}

type registerRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type updateRequest struct {
	Email    *string `json:"email"`
	Name     *string `json:"name"`
	Password *string `json:"password"`
}

type tokenResponse struct {
	Token string `json:"token"`
}

// Register handles POST /auth/register.
func (h *Auth) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, h.logger, apierrors.NewErrInvalidRequest("malformed request body"))
		return
	}

	if !validEmail(req.Email) {
		writeError(w, h.logger, apierrors.NewErrInvalidRequest("email must be a valid email address"))
		return
	}
	if req.Password == "" {
		writeError(w, h.logger, apierrors.NewErrInvalidRequest("password must not be empty"))
		return
	}

	res, err := h.authService.Register(r.Context(), service.RegisterParams{
		Email:    req.Email,
		Password: req.Password,
		Name:     req.Name,
	})
	if err != nil {
		h.logger.Error("Auth handler: registration failed",
			"email", req.Email,
			"error", err.Error())
		writeError(w, h.logger, err)
		return
	}

	writeJSON(w, h.logger, http.StatusCreated, tokenResponse{Token: res.Token})
}

// Login handles POST /auth/login.
func (h *Auth) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, h.logger, apierrors.NewErrInvalidRequest("malformed request body"))
		return
	}

	if !validEmail(req.Email) {
		writeError(w, h.logger, apierrors.NewErrInvalidRequest("email must be a valid email address"))
		return
	}
	if req.Password == "" {
		writeError(w, h.logger, apierrors.NewErrInvalidRequest("password must not be empty"))
		return
	}

	res, err := h.authService.Login(r.Context(), service.LoginParams{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, tokenResponse{Token: res.Token})
}

// Me handles GET /auth/me.
func (h *Auth) Me(w http.ResponseWriter, r *http.Request) {
	userID, ok := reqcontext.UserID(r.Context())
	if !ok {
		writeError(w, h.logger, apierrors.NewErrMissingAuthorizationToken())
		return
	}

	profile, err := h.authService.GetProfile(r.Context(), userID)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, profile)
}

// Update handles PATCH /auth/me.
func (h *Auth) Update(w http.ResponseWriter, r *http.Request) {
	userID, ok := reqcontext.UserID(r.Context())
	if !ok {
		writeError(w, h.logger, apierrors.NewErrMissingAuthorizationToken())
		return
	}

	var req updateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, h.logger, apierrors.NewErrInvalidRequest("malformed request body"))
		return
	}

	if req.Email != nil && !validEmail(*req.Email) {
		writeError(w, h.logger, apierrors.NewErrInvalidRequest("email must be a valid email address"))
		return
	}
	if req.Password != nil && *req.Password == "" {
		writeError(w, h.logger, apierrors.NewErrInvalidRequest("password must not be empty"))
		return
	}

	profile, err := h.authService.UpdateProfile(r.Context(), userID, service.UpdateProfileParams{
		Email:    req.Email,
		Name:     req.Name,
		Password: req.Password,
	})
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, profile)
}

// Delete handles DELETE /auth/me.
func (h *Auth) Delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := reqcontext.UserID(r.Context())
	if !ok {
		writeError(w, h.logger, apierrors.NewErrMissingAuthorizationToken())
		return
	}

	if err := h.authService.DeleteAccount(r.Context(), userID); err != nil {
		writeError(w, h.logger, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func validEmail(email string) bool {
	if email == "" {
		return false
	}
	addr, err := mail.ParseAddress(email)
	return err == nil && addr.Address == email
}
