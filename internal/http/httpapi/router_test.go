package httpapi

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"

	"studio/internal/http/handlers"
	"studio/internal/infra"
)

func TestRouterHealthAndUI(t *testing.T) {
	app := &handlers.App{
		Config: &infra.Config{CORSAllowedOrigins: []string{"http://localhost:3000"}},
		Logger: zerolog.Nop(),
	}
	router := NewRouter(app)

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/v1/healthz", nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("healthz status = %d, want 200", rr.Code)
	}
	if rr.Header().Get("X-Request-ID") == "" {
		t.Fatal("request id header missing")
	}

	rr = httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("UI status = %d, want 200", rr.Code)
	}
}

func TestRouterUnconfiguredProvidersAnswerWithConfigError(t *testing.T) {
	app := &handlers.App{
		Config: &infra.Config{},
		Logger: zerolog.Nop(),
	}
	router := NewRouter(app)

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/v1/threads", nil))
	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("threads status = %d, want 500 when unconfigured", rr.Code)
	}
}
