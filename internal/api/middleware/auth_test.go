package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAuthRequiresOperatorHeader(t *testing.T) {
	called := false
	handler := Auth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		w.WriteHeader(http.StatusOK)
	}))

	t.Run("missing header rejected", func(t *testing.T) {
		called = false
		req := httptest.NewRequest(http.MethodPost, "/api/v1/vehicles/entry", nil)
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.False(t, called)
	})

	t.Run("blank header rejected", func(t *testing.T) {
		called = false
		req := httptest.NewRequest(http.MethodPost, "/api/v1/vehicles/entry", nil)
		req.Header.Set("X-Operator-ID", "   ")
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.False(t, called)
	})

	t.Run("header present passes through", func(t *testing.T) {
		called = false
		req := httptest.NewRequest(http.MethodPost, "/api/v1/vehicles/entry", nil)
		req.Header.Set("X-Operator-ID", "operator-1")
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.True(t, called)
	})
}
