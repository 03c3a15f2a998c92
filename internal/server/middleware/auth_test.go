package middleware

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testTokenValidator accepts a fixed set of tokens.
type testTokenValidator struct {
	validTokens map[string]uuid.UUID
}

func (v *testTokenValidator) ValidateToken(tokenString string) (ClientIDGetter, error) {
	clientID, ok := v.validTokens[tokenString]
	if !ok {
		return nil, fmt.Errorf("invalid token")
	}
	return testClaims(clientID), nil
}

type testClaims uuid.UUID

func (c testClaims) GetClientID() uuid.UUID {
	return uuid.UUID(c)
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	clientID := uuid.New()
	validator := &testTokenValidator{validTokens: map[string]uuid.UUID{"good": clientID}}

	var got uuid.UUID
	handler := AuthMiddleware(validator)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var err error
		got, err = GetClientID(r)
		require.NoError(t, err)
		w.WriteHeader(http.StatusNoContent)
	}))

	for _, header := range []string{"Bearer good", "bearer good", "BEARER   good"} {
		req := httptest.NewRequest(http.MethodPost, "/analyses", nil)
		req.Header.Set("Authorization", header)
		w := httptest.NewRecorder()

		handler.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNoContent, w.Code, header)
		assert.Equal(t, clientID, got)
	}
}

func TestAuthMiddleware_Rejects(t *testing.T) {
	validator := &testTokenValidator{validTokens: map[string]uuid.UUID{"good": uuid.New()}}
	called := false
	handler := AuthMiddleware(validator)(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		called = true
	}))

	tests := []struct {
		name   string
		header string
	}{
		{"missing header", ""},
		{"wrong scheme", "Basic good"},
		{"no token", "Bearer"},
		{"extra parts", "Bearer good extra"},
		{"unknown token", "Bearer bad"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/analyses", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			assert.Equal(t, http.StatusUnauthorized, w.Code)
			assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
			assert.Contains(t, w.Body.String(), `"error"`)
		})
	}
	assert.False(t, called)
}

func TestGetClientID_Missing(t *testing.T) {
	_, err := GetClientID(httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Error(t, err)
}
