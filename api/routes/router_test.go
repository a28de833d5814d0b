package routes

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/shortshop/shortshop-backend/pkg/config"
	"github.com/shortshop/shortshop-backend/pkg/logger"
	"github.com/shortshop/shortshop-backend/pkg/metrics"
)

func TestRouterUnknownRoute(t *testing.T) {
	cfg := &config.Config{App: config.AppConfig{Env: config.AppEnvDev, Name: "shortshop", Version: "1.0.0"}}
	logg := logger.New(logger.Options{ServiceName: "test", Output: io.Discard})

	handler := NewRouter(cfg, logg, nil, metrics.NewHTTPMetrics(), nil, nil, nil)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/nope", nil))
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRouterRootBanner(t *testing.T) {
	cfg := &config.Config{App: config.AppConfig{Env: config.AppEnvDev, Name: "shortshop", Version: "1.0.0"}}
	logg := logger.New(logger.Options{ServiceName: "test", Output: io.Discard})

	handler := NewRouter(cfg, logg, nil, metrics.NewHTTPMetrics(), nil, nil, nil)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "shortshop")
}

func TestRouterReadyWithoutDB(t *testing.T) {
	cfg := &config.Config{App: config.AppConfig{Env: config.AppEnvDev}}
	logg := logger.New(logger.Options{ServiceName: "test", Output: io.Discard})

	handler := NewRouter(cfg, logg, nil, metrics.NewHTTPMetrics(), nil, nil, nil)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health/ready", nil))
	require.Equal(t, http.StatusServiceUnavailable, rec.Code)
}
