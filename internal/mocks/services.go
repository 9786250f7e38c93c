package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/asoloviev/nutritrack/internal/model"
	"github.com/asoloviev/nutritrack/internal/service"
)

// AuthService is a mock implementation of the handler's AuthService.
type AuthService struct {
	mock.Mock
}

func (m *AuthService) Register(ctx context.Context, params service.RegisterParams) (service.TokenResult, error) {
	args := m.Called(ctx, params)
	return args.Get(0).(service.TokenResult), args.Error(1)
}

func (m *AuthService) Login(ctx context.Context, params service.LoginParams) (service.TokenResult, error) {
	args := m.Called(ctx, params)
	return args.Get(0).(service.TokenResult), args.Error(1)
}

func (m *AuthService) GetProfile(ctx context.Context, userID uuid.UUID) (model.Profile, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(model.Profile), args.Error(1)
}

func (m *AuthService) UpdateProfile(ctx context.Context, userID uuid.UUID, params service.UpdateProfileParams) (model.Profile, error) {
	args := m.Called(ctx, userID, params)
	return args.Get(0).(model.Profile), args.Error(1)
}

func (m *AuthService) DeleteAccount(ctx context.Context, userID uuid.UUID) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

// FoodService is a mock implementation of the handler's FoodService.
type FoodService struct {
	mock.Mock
}

func (m *FoodService) GetFood(ctx context.Context, id int64, force bool) (model.Food, error) {
	args := m.Called(ctx, id, force)
	return args.Get(0).(model.Food), args.Error(1)
}
