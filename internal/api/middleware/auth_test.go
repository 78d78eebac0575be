package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-PricingService/internal/api/middleware"
)

func TestAuth(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, ok := middleware.UserIDFromContext(r.Context())
		require.True(t, ok)
		assert.Equal(t, int64(42), userID)
		w.WriteHeader(http.StatusOK)
	})

	t.Run("valid header passes through", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/bands/1", nil)
		req.Header.Set(middleware.HeaderUserID, "42")
		w := httptest.NewRecorder()

		middleware.Auth(next).ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("missing header is unauthorized", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/bands/1", nil)
		w := httptest.NewRecorder()

		middleware.Auth(next).ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("non-numeric header is unauthorized", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/bands/1", nil)
		req.Header.Set(middleware.HeaderUserID, "operator")
		w := httptest.NewRecorder()

		middleware.Auth(next).ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
