package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/asoloviev/nutritrack/internal/apierrors"
	"github.com/asoloviev/nutritrack/internal/logger"
	"github.com/asoloviev/nutritrack/internal/model"
)

// Auth orchestrates registration, login and profile operations. It is
// stateless per call; all state lives in the user store and in the
// self-contained session token.
type Auth struct {
	userStore    model.UserStore
	hasher       model.PasswordHasher
	tokenManager model.TokenManager
	logger       *logger.Logger
}

func NewAuth(
	userStore model.UserStore,
	hasher model.PasswordHasher,
	tokenManager model.TokenManager,
	logger *logger.Logger,
) *Auth {
	return &Auth{
		userStore:    userStore,
		hasher:       hasher,
		tokenManager: tokenManager,
		logger:       logger,
	}
}

// RegisterParams carries a boundary-validated registration request.
type RegisterParams struct {
	Email    string
	Password string
	Name     string
}

// LoginParams carries a boundary-validated login request.
type LoginParams struct {
	Email    string
	Password string
}

// UpdateProfileParams describes a partial profile update. Nil fields
// are left untouched.
type UpdateProfileParams struct {
	Email    *string
	Name     *string
	Password *string
}

// TokenResult carries a freshly minted session token.
type TokenResult struct {
	Token string
}

// Register creates a new account and returns a session token bound to it.
// A uniqueness conflict on email surfaces as a duplicate-account error
// without revealing which field collided.
func (a *Auth) Register(ctx context.Context, params RegisterParams) (TokenResult, error) {
	a.logger.Debug("Auth service: registering user",
		"email", params.Email)

	passwordHash, err := a.hasher.Hash(params.Password)
	if err != nil {
		return TokenResult{}, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now()
	user := model.User{
		ID:           uuid.New(),
		Email:        params.Email,
		Name:         params.Name,
		PasswordHash: passwordHash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	saved, err := a.userStore.Create(ctx, user)
	if errors.Is(err, model.ErrDuplicateKey) {
		a.logger.Info("Auth service: registration rejected, email taken",
			"email", params.Email)
		return TokenResult{}, apierrors.NewErrEmailTaken()
	}
	if err != nil {
		a.logger.Error("Auth service: failed to create user",
			"email", params.Email,
			"error", err.Error())
		return TokenResult{}, fmt.Errorf("failed to create user: %w", err)
	}

	token, err := a.tokenManager.Generate(saved.ID)
	if err != nil {
		return TokenResult{}, fmt.Errorf("failed to issue token: %w", err)
	}

	a.logger.Info("Auth service: user registered",
		"user_id", saved.ID)

	return TokenResult{Token: token}, nil
}

// Login verifies the credentials and returns a session token. Unknown
// email and wrong password produce the identical error so callers
// cannot enumerate accounts.
func (a *Auth) Login(ctx context.Context, params LoginParams) (TokenResult, error) {
	a.logger.Debug("Auth service: logging in user",
		"email", params.Email)

	user, err := a.userStore.GetByEmail(ctx, params.Email)
	if errors.Is(err, model.ErrNotFound) {
		return TokenResult{}, apierrors.NewErrInvalidCredentials()
	}
	if err != nil {
		a.logger.Error("Auth service: failed to get user by email",
			"email", params.Email,
			"error", err.Error())
		return TokenResult{}, fmt.Errorf("failed to get user by email: %w", err)
	}

	if !a.hasher.Compare(user.PasswordHash, params.Password) {
		return TokenResult{}, apierrors.NewErrInvalidCredentials()
	}

	token, err := a.tokenManager.Generate(user.ID)
	if err != nil {
		return TokenResult{}, fmt.Errorf("failed to issue token: %w", err)
	}

	a.logger.Info("Auth service: user logged in",
		"user_id", user.ID)

	return TokenResult{Token: token}, nil
}

// GetProfile returns the profile for an already-authenticated user ID.
// A valid token referencing a deleted user is an internal inconsistency
// surfaced as profile-unavailable.
func (a *Auth) GetProfile(ctx context.Context, userID uuid.UUID) (model.Profile, error) {
	user, err := a.userStore.GetByID(ctx, userID)
	if errors.Is(err, model.ErrNotFound) {
		a.logger.Error("Auth service: authenticated user is missing",
			"user_id", userID)
		return model.Profile{}, apierrors.NewErrProfileUnavailable()
	}
	if err != nil {
		return model.Profile{}, fmt.Errorf("failed to get user by id: %w", err)
	}

	return user.Profile(), nil
}

// UpdateProfile applies the provided fields and returns the updated
// profile. All store failures collapse into profile-unavailable; the
// cause is logged but not distinguished for the caller.
func (a *Auth) UpdateProfile(ctx context.Context, userID uuid.UUID, params UpdateProfileParams) (model.Profile, error) {
	a.logger.Debug("Auth service: updating profile",
		"user_id", userID)

	patch := model.UserPatch{
		Email: params.Email,
		Name:  params.Name,
	}

	if params.Password != nil {
		passwordHash, err := a.hasher.Hash(*params.Password)
		if err != nil {
			return model.Profile{}, fmt.Errorf("failed to hash password: %w", err)
		}
		patch.PasswordHash = &passwordHash
	}

	user, err := a.userStore.Update(ctx, userID, patch)
	if err != nil {
		a.logger.Error("Auth service: failed to update user",
			"user_id", userID,
			"error", err.Error())
		return model.Profile{}, apierrors.NewErrProfileUnavailable()
	}

	a.logger.Info("Auth service: profile updated",
		"user_id", userID)

	return user.Profile(), nil
}

// DeleteAccount removes the account. Deleting an already-absent user is
// a no-op success.
func (a *Auth) DeleteAccount(ctx context.Context, userID uuid.UUID) error {
	if err := a.userStore.Delete(ctx, userID); err != nil {
		a.logger.Error("Auth service: failed to delete user",
			"user_id", userID,
			"error", err.Error())
		return fmt.Errorf("failed to delete user: %w", err)
	}

	a.logger.Info("Auth service: account deleted",
		"user_id", userID)

	return nil
}
