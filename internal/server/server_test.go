package server_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/diagscope/diagscope/internal/server"
	pkgserver "github.com/diagscope/diagscope/pkg/server"
)

func testConfig() *server.Config {
	return &server.Config{
		Port:        "8080",
		CorsOrigins: []string{"*"},
	}
}

func TestHealthChecks_Ready(t *testing.T) {
	s := server.New(testConfig(), pkgserver.NewOkHealthChecker()).
		SetupMiddlewares().
		SetupErrorHandler().
		SetupHealthChecks("/health")

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	s.Echo.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestHealthChecks_Unavailable(t *testing.T) {
	notReady := pkgserver.HealthCheckerFunc(func(ctx context.Context) bool {
		return false
	})

	s := server.New(testConfig(), notReady).
		SetupHealthChecks("/health")

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	s.Echo.ServeHTTP(rec, req)

	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", rec.Code)
	}
}
