package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/boxaloo/boxaloo/internal/config"
	"github.com/boxaloo/boxaloo/internal/transport/api"
)

func testConfig() config.Config {
	cfg := config.Config{HTTP: config.HTTPConfig{Port: 8080}, Seed: config.SeedConfig{Enabled: true}}
	cfg.ApplyDefaults()
	return cfg
}

func TestJSONRecoverer(t *testing.T) {
	h := jsonRecoverer(zap.NewNop())(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/loads", nil))

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type = %q, want application/json", ct)
	}
	var body api.ErrorResponse
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Code != api.ErrorResponseCodeInternalError {
		t.Errorf("code = %q, want internal_error", body.Code)
	}
	if strings.Contains(rec.Body.String(), "boom") {
		t.Error("panic value leaked into the response")
	}
}

func TestWideEventMiddleware_ImplicitOK(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	h := chiMiddleware.RequestID(wideEventMiddleware(zap.New(core))(
		http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}),
	))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	entries := logs.FilterMessage("http_request").All()
	if len(entries) != 1 {
		t.Fatalf("http_request lines = %d, want 1", len(entries))
	}
	if got := entries[0].ContextMap()["status"]; got != int64(http.StatusOK) {
		t.Errorf("status = %v, want 200", got)
	}
	if got := entries[0].ContextMap()["request_id"]; got == "" || got == nil {
		t.Error("request_id missing from the log line")
	}
}

func TestHandler_SeededAvailableLoads(t *testing.T) {
	h, err := newHandler(testConfig(), zap.NewNop())
	if err != nil {
		t.Fatalf("newHandler: %v", err)
	}

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/loads/available", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200; body=%s", rec.Code, rec.Body.String())
	}
	if rec.Header().Get("X-Request-ID") == "" {
		t.Error("X-Request-ID header missing")
	}

	var list api.LoadListResponse
	if err := json.NewDecoder(rec.Body).Decode(&list); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if list.Count != 3 {
		t.Errorf("available count = %d, want 3", list.Count)
	}
	for _, l := range list.Items {
		if l.Status != "available" {
			t.Errorf("%s status = %q, want available", l.Id, l.Status)
		}
	}
}

func TestHandler_HealthAndSession(t *testing.T) {
	h, err := newHandler(testConfig(), zap.NewNop())
	if err != nil {
		t.Fatalf("newHandler: %v", err)
	}

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("health status = %d, want 200; body=%s", rec.Code, rec.Body.String())
	}

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/api/loads/LOAD-001", nil))
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("delete without session = %d, want 401", rec.Code)
	}
}

func TestHandler_CORSPreflight(t *testing.T) {
	cfg := testConfig()
	cfg.HTTP.CORSOrigins = []string{"http://localhost:3000"}
	h, err := newHandler(cfg, zap.NewNop())
	if err != nil {
		t.Fatalf("newHandler: %v", err)
	}

	req := httptest.NewRequest(http.MethodOptions, "/api/loads", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "http://localhost:3000" {
		t.Errorf("Access-Control-Allow-Origin = %q", got)
	}
	if got := rec.Header().Get("Access-Control-Allow-Credentials"); got != "true" {
		t.Errorf("Access-Control-Allow-Credentials = %q, want true", got)
	}
}

func TestRun_Version(t *testing.T) {
	if err := run([]string{"--version"}); err != nil {
		t.Fatalf("run --version: %v", err)
	}
}

func TestRun_UnknownFlag(t *testing.T) {
	if err := run([]string{"--bogus"}); err == nil {
		t.Fatal("expected error for unknown flag")
	}
}
