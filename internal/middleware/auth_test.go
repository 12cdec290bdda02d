// AngelaMos | 2026
// auth_test.go

package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/carterperez-dev/paylink/internal/core"
)

type stubVerifier struct {
	accountID int64
	err       error
	calls     int
}

func (s *stubVerifier) Verify(ctx context.Context, token string) (int64, error) {
	s.calls++
	return s.accountID, s.err
}

func TestAuthenticator(t *testing.T) {
	t.Run("missing token rejected before handler", func(t *testing.T) {
		verifier := &stubVerifier{}
		handlerRan := false

		handler := Authenticator(verifier)(http.HandlerFunc(
			func(w http.ResponseWriter, r *http.Request) {
				handlerRan = true
			},
		))

		req := httptest.NewRequest(http.MethodGet, "/v1/links", nil)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.False(t, handlerRan)
		assert.Zero(t, verifier.calls)
	})

	t.Run("invalid token rejected", func(t *testing.T) {
		verifier := &stubVerifier{err: core.ErrUnauthorized}
		handlerRan := false

		handler := Authenticator(verifier)(http.HandlerFunc(
			func(w http.ResponseWriter, r *http.Request) {
				handlerRan = true
			},
		))

		req := httptest.NewRequest(http.MethodGet, "/v1/links", nil)
		req.Header.Set("Authorization", "Bearer bad-token")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.False(t, handlerRan)
		assert.Equal(t, 1, verifier.calls)
	})

	t.Run("valid token threads account id", func(t *testing.T) {
		verifier := &stubVerifier{accountID: 42}

		var gotAccountID int64
		handler := Authenticator(verifier)(http.HandlerFunc(
			func(w http.ResponseWriter, r *http.Request) {
				gotAccountID = GetAccountID(r.Context())
				w.WriteHeader(http.StatusOK)
			},
		))

		req := httptest.NewRequest(http.MethodGet, "/v1/links", nil)
		req.Header.Set("Authorization", "Bearer good-token")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, int64(42), gotAccountID)
	})
}

func TestExtractToken(t *testing.T) {
	tests := []struct {
		name   string
		header string
		want   string
	}{
		{"standard bearer", "Bearer abc123", "abc123"},
		{"lowercase scheme", "bearer abc123", "abc123"},
		{"no header", "", ""},
		{"wrong scheme", "Basic abc123", ""},
		{"scheme only", "Bearer", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}

			assert.Equal(t, tt.want, ExtractToken(req))
		})
	}
}

func TestGetAccountID(t *testing.T) {
	t.Run("unset context", func(t *testing.T) {
		assert.Zero(t, GetAccountID(context.Background()))
		assert.False(t, IsAuthenticated(context.Background()))
	})

	t.Run("set context", func(t *testing.T) {
		ctx := context.WithValue(context.Background(), AccountIDKey, int64(7))
		assert.Equal(t, int64(7), GetAccountID(ctx))
		assert.True(t, IsAuthenticated(ctx))
	})
}
