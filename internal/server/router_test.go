package server

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/FACorreiaa/go-supra/internal/app/backend"
	"github.com/FACorreiaa/go-supra/internal/app/models"
	"github.com/FACorreiaa/go-supra/internal/pkg/config"
	"github.com/FACorreiaa/go-supra/internal/routes"
)

type emptyFetcher struct{}

func (emptyFetcher) Dishes(context.Context) ([]models.Dish, error) { return nil, nil }

func (emptyFetcher) SearchDishes(context.Context, backend.SearchRequest) ([]models.Dish, error) {
	return nil, nil
}

func (emptyFetcher) Restaurants(context.Context) ([]models.Restaurant, error) { return nil, nil }

func (emptyFetcher) SearchRestaurants(context.Context, backend.SearchRequest) ([]models.Restaurant, error) {
	return nil, nil
}

func testConfig() *config.Config {
	return &config.Config{
		ServerPort:     "0",
		SessionTTL:     time.Minute,
		AllowedOrigins: []string{"http://localhost:8091"},
		Backend:        config.BackendConfig{Timeout: time.Second},
		Observability:  config.ObservabilityConfig{ServiceName: "supra-test"},
	}
}

func TestSetupRouter(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	logger := zap.New(core)
	cfg := testConfig()

	deps := routes.NewDependenciesWith(cfg, emptyFetcher{}, nil, logger)
	r := SetupRouter(cfg, deps, logger)
	SetupAssets(r)

	t.Run("page carries security headers and is access logged", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "nosniff", w.Header().Get("X-Content-Type-Options"))
		assert.Contains(t, w.Header().Get("Content-Security-Policy"), "https://unpkg.com")
		assert.NotZero(t, logs.FilterField(zap.String("path", "/")).Len())
	})

	t.Run("healthz is not access logged", func(t *testing.T) {
		before := logs.FilterField(zap.String("path", "/healthz")).Len()
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, before, logs.FilterField(zap.String("path", "/healthz")).Len())
	})

	t.Run("embedded assets are served", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/assets/js/app.js", nil))

		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "alert-dismiss")
	})
}

func TestHTTPServer(t *testing.T) {
	cfg := testConfig()
	cfg.ServerPort = "8091"
	cfg.Backend.Timeout = 15 * time.Second

	srv := New(cfg, zap.NewNop())
	srv.SetRouter(http.NotFoundHandler())
	httpServer := srv.HTTPServer()

	assert.Equal(t, ":8091", httpServer.Addr)
	assert.Equal(t, 30*time.Second, httpServer.WriteTimeout)
	assert.NotNil(t, httpServer.Handler)
	assert.NotNil(t, httpServer.ErrorLog, "server errors go through zap")
}
