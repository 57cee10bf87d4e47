package server

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	pkgserver "github.com/DjordjeVuckovic/truth-table/pkg/server"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		t.Setenv("PORT", "")
		t.Setenv("USE_HTTP2", "")
		t.Setenv("CORS_ORIGINS", "")

		cfg, err := LoadConfig()
		require.NoError(t, err)
		assert.Equal(t, "8080", cfg.Port)
		assert.False(t, cfg.UseHttp2)
		assert.Equal(t, []string{"*"}, cfg.CorsOrigins)
	})

	t.Run("from environment", func(t *testing.T) {
		t.Setenv("PORT", "9090")
		t.Setenv("USE_HTTP2", "true")
		t.Setenv("CORS_ORIGINS", "http://a.test, ,http://b.test ")

		cfg, err := LoadConfig()
		require.NoError(t, err)
		assert.Equal(t, "9090", cfg.Port)
		assert.True(t, cfg.UseHttp2)
		assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.CorsOrigins)
	})

	t.Run("invalid port", func(t *testing.T) {
		for _, port := range []string{"abc", "0", "70000"} {
			t.Setenv("PORT", port)
			_, err := LoadConfig()
			assert.Error(t, err, port)
		}
	})
}

func TestServer_HealthChecks(t *testing.T) {
	tests := []struct {
		name       string
		check      pkgserver.HealthCheckFunc
		wantStatus int
		wantBody   string
	}{
		{
			name:       "healthy",
			check:      func(context.Context) error { return nil },
			wantStatus: http.StatusOK,
			wantBody:   `{"status":"ok"}`,
		},
		{
			name:       "unhealthy",
			check:      func(context.Context) error { return assert.AnError },
			wantStatus: http.StatusServiceUnavailable,
			wantBody:   `{"status":"unavailable"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New(&Config{Port: "8080", CorsOrigins: []string{"*"}}, tt.check).
				SetupMiddlewares().
				SetupErrorHandler().
				SetupHealthChecks("/health")

			rec := httptest.NewRecorder()
			s.Echo.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.JSONEq(t, tt.wantBody, rec.Body.String())
			assert.NotEmpty(t, rec.Header().Get(echo.HeaderXRequestID))
		})
	}
}

func TestServer_NotFoundUsesErrorHandler(t *testing.T) {
	s := New(&Config{Port: "8080", CorsOrigins: []string{"*"}}, pkgserver.HealthCheckFunc(func(context.Context) error { return nil })).
		SetupErrorHandler()

	rec := httptest.NewRecorder()
	s.Echo.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/missing", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"Not Found"}`, rec.Body.String())
}

func TestServer_ShutdownHooks(t *testing.T) {
	var calls []string
	s := New(&Config{Port: "8080"}, pkgserver.HealthCheckFunc(func(context.Context) error { return nil })).
		OnShutdown(func(context.Context) error {
			calls = append(calls, "telemetry")
			return nil
		}).
		OnShutdown(func(context.Context) error {
			calls = append(calls, "failing")
			return errors.New("flush failed")
		})

	err := s.runShutdownHooks(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "flush failed")
	assert.Equal(t, []string{"telemetry", "failing"}, calls)
}

func TestServer_StartRunsHooksWhenListenFails(t *testing.T) {
	flushed := false
	s := New(&Config{Port: "-1"}, pkgserver.HealthCheckFunc(func(context.Context) error { return nil })).
		OnShutdown(func(context.Context) error {
			flushed = true
			return nil
		})

	err := s.Start()
	require.Error(t, err)
	assert.True(t, flushed)
}
