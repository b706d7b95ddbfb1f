package httpx

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"testing"
	"time"

	"github.com/endoforge/appforge/internal/domain"
	"github.com/endoforge/appforge/internal/service/auth"
	"github.com/endoforge/appforge/internal/service/blueprint"
	"github.com/endoforge/appforge/internal/service/evidence"
	"github.com/endoforge/appforge/pkg/config"
)

func TestTemplatesEndpoint(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t)
	rec := doJSON(t, router, http.MethodGet, "/api/templates", "", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("templates status: got %d body %s", rec.Code, rec.Body.String())
	}
	var catalog []domain.Template
	if err := json.NewDecoder(rec.Body).Decode(&catalog); err != nil {
		t.Fatalf("decode catalog: %v", err)
	}
	if len(catalog) != 3 {
		t.Fatalf("expected 3 templates, got %d", len(catalog))
	}
}

func TestAskEndpoint(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t)
	rec := doJSON(t, router, http.MethodPost, "/api/ask", `{"question":"What is first-line for type 2 diabetes?"}`, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("ask status: got %d body %s", rec.Code, rec.Body.String())
	}
	var resp domain.EvidenceResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode answer: %v", err)
	}
	if resp.Answer == "" || len(resp.Citations) == 0 {
		t.Fatalf("expected answer with citations, got %+v", resp)
	}
}

func TestAskEndpointRejectsBlankQuestion(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t)
	for _, body := range []string{`{"question":""}`, `{"question":"   "}`, `{}`} {
		rec := doJSON(t, router, http.MethodPost, "/api/ask", body, "")
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("body %s: got %d want 400", body, rec.Code)
		}
	}
}

func TestGenerateEndpoint(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t)
	rec := doJSON(t, router, http.MethodPost, "/api/generate", `{"template_key":"glucose-intelligence","project_name":"GlucoSense"}`, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("generate status: got %d body %s", rec.Code, rec.Body.String())
	}
	var bp domain.Blueprint
	if err := json.NewDecoder(rec.Body).Decode(&bp); err != nil {
		t.Fatalf("decode blueprint: %v", err)
	}
	if bp.Summary.AppName != "GlucoSense" {
		t.Fatalf("unexpected app name: %q", bp.Summary.AppName)
	}
	if len(bp.UIPlan.Screens) == 0 || len(bp.LaunchChecklist) == 0 {
		t.Fatalf("incomplete blueprint: %+v", bp)
	}
}

func TestGenerateEndpointRequiresTemplateKey(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t)
	rec := doJSON(t, router, http.MethodPost, "/api/generate", `{"project_name":"GlucoSense"}`, "")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("missing template_key: got %d want 400", rec.Code)
	}
}

func TestHealthzReportsStoreState(t *testing.T) {
	t.Parallel()

	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	store := newFakeStore()
	cfg := config.APIConfig{AuthTokenSecret: "s", SessionTTL: time.Hour}

	newRouterWithHealth := func(health func(context.Context) error) *Router {
		router := NewRouter(log, auth.New(store, store, log, cfg), evidence.New(log), blueprint.New(log), NewMemoryRateLimiter(), health)
		t.Cleanup(router.Close)
		return router
	}

	healthy := newRouterWithHealth(func(context.Context) error { return nil })
	rec := doJSON(t, healthy, http.MethodGet, "/healthz", "", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("healthy status: got %d", rec.Code)
	}

	degraded := newRouterWithHealth(func(context.Context) error { return errors.New("connection refused") })
	rec = doJSON(t, degraded, http.MethodGet, "/healthz", "", "")
	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("degraded status: got %d want 503", rec.Code)
	}
	var payload struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&payload); err != nil {
		t.Fatalf("decode health payload: %v", err)
	}
	if payload.Status != "degraded" {
		t.Fatalf("unexpected health status: %q", payload.Status)
	}
}

func TestMetricsEndpoint(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t)
	rec := doJSON(t, router, http.MethodGet, "/metrics", "", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("metrics status: got %d", rec.Code)
	}
}
