// AngelaMos | 2026
// handler_test.go

package health

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
)

type stubChecker struct {
	err error
}

func (s *stubChecker) Ping(ctx context.Context) error {
	return s.err
}

func newTestRouter(db, redis Checker) (chi.Router, *Handler) {
	handler := NewHandler(db, redis)

	r := chi.NewRouter()
	handler.RegisterRoutes(r)
	return r, handler
}

func get(router http.Handler, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestLiveness(t *testing.T) {
	router, handler := newTestRouter(&stubChecker{}, &stubChecker{})

	rec := get(router, "/livez")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"ok"`)

	handler.SetShutdown(true)

	rec = get(router, "/livez")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Contains(t, rec.Body.String(), "shutting_down")
}

func TestReadiness(t *testing.T) {
	t.Run("all dependencies healthy", func(t *testing.T) {
		router, _ := newTestRouter(&stubChecker{}, &stubChecker{})

		rec := get(router, "/readyz")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"ok"`)
	})

	t.Run("degraded when a dependency fails", func(t *testing.T) {
		router, _ := newTestRouter(
			&stubChecker{err: errors.New("connection refused")},
			&stubChecker{},
		)

		rec := get(router, "/readyz")
		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
		assert.Contains(t, rec.Body.String(), "degraded")
		assert.Contains(t, rec.Body.String(), "database")
	})

	t.Run("unavailable during shutdown", func(t *testing.T) {
		router, handler := newTestRouter(&stubChecker{}, &stubChecker{})
		handler.SetShutdown(true)

		rec := get(router, "/readyz")
		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	})
}
