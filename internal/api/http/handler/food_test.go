package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/asoloviev/nutritrack/internal/apierrors"
	"github.com/asoloviev/nutritrack/internal/mocks"
	"github.com/asoloviev/nutritrack/internal/model"
	"github.com/asoloviev/nutritrack/internal/testutil"
)

func newFoodRouter(svc *mocks.FoodService) http.Handler {
	h := NewFood(svc, testutil.MakeNoopLogger())
	mux := chi.NewRouter()
	mux.Get("/food/{id}", h.Get)
	return mux
}

func TestFood_Get(t *testing.T) {
	t.Parallel()

	payload := []byte(`{"status":1,"product":{"product_name":"Nutella"}}`)

	t.Run("fresh fetch", func(t *testing.T) {
		t.Parallel()

		svc := &mocks.FoodService{}
		svc.On("GetFood", mock.Anything, int64(737628064502), false).
			Return(model.Food{Data: payload, FromCache: false}, nil)

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/food/737628064502", nil)
		newFoodRouter(svc).ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
		assert.JSONEq(t, string(payload), rec.Body.String())
		assert.NotContains(t, rec.Body.String(), "_cached")
	})

	t.Run("cache hit is annotated", func(t *testing.T) {
		t.Parallel()

		svc := &mocks.FoodService{}
		svc.On("GetFood", mock.Anything, int64(737628064502), false).
			Return(model.Food{Data: payload, FromCache: true}, nil)

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/food/737628064502", nil)
		newFoodRouter(svc).ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)

		var body map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, true, body["_cached"])
		assert.Equal(t, float64(1), body["status"])
	})

	t.Run("force is passed through", func(t *testing.T) {
		t.Parallel()

		svc := &mocks.FoodService{}
		svc.On("GetFood", mock.Anything, int64(42), true).
			Return(model.Food{Data: payload, FromCache: false}, nil)

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/food/42?force=true", nil)
		newFoodRouter(svc).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		svc.AssertExpectations(t)
	})

	t.Run("not found", func(t *testing.T) {
		t.Parallel()

		svc := &mocks.FoodService{}
		svc.On("GetFood", mock.Anything, int64(42), false).
			Return(model.Food{}, apierrors.NewErrFoodNotFound())

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/food/42", nil)
		newFoodRouter(svc).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Contains(t, rec.Body.String(), "food not found")
	})

	t.Run("upstream unavailable", func(t *testing.T) {
		t.Parallel()

		svc := &mocks.FoodService{}
		svc.On("GetFood", mock.Anything, int64(42), false).
			Return(model.Food{}, apierrors.NewErrUpstreamUnavailable())

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/food/42", nil)
		newFoodRouter(svc).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadGateway, rec.Code)
		assert.Contains(t, rec.Body.String(), "external api unavailable")
	})

	t.Run("invalid id", func(t *testing.T) {
		t.Parallel()

		svc := &mocks.FoodService{}

		for _, path := range []string{"/food/abc", "/food/-5", "/food/0"} {
			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, path, nil)
			newFoodRouter(svc).ServeHTTP(rec, req)

			assert.Equal(t, http.StatusBadRequest, rec.Code, path)
		}
		svc.AssertNotCalled(t, "GetFood", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("invalid force flag", func(t *testing.T) {
		t.Parallel()

		svc := &mocks.FoodService{}

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/food/42?force=maybe", nil)
		newFoodRouter(svc).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		svc.AssertNotCalled(t, "GetFood", mock.Anything, mock.Anything, mock.Anything)
	})
}
