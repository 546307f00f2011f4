package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	apperrors "github.com/skillsenselab/backend/internal/errors"
	"github.com/skillsenselab/backend/internal/resilience"
)

func testConfig(baseURL string) Config {
	return Config{
		BaseURL:   baseURL,
		APIKey:    "test-key",
		APIClient: "test-client",
		Retry: resilience.RetryConfig{
			MaxRetries:     2,
			Sleep:          time.Millisecond,
			PropagateError: true,
		},
	}
}

func TestNew_MissingAPIKey(t *testing.T) {
	cfg := testConfig("https://api.example.com")
	cfg.APIKey = ""

	_, err := New(cfg)
	if err == nil {
		t.Fatal("expected error")
	}
	appErr, ok := apperrors.AsAppError(err)
	if !ok {
		t.Fatalf("expected AppError, got %T", err)
	}
	if appErr.Code != apperrors.ErrCodeClientInitialization {
		t.Errorf("expected CLIENT_INITIALIZATION_ERROR, got %s", appErr.Code)
	}
}

func TestNew_InvalidBaseURL(t *testing.T) {
	for _, baseURL := range []string{"", "not-a-url", "/relative/only"} {
		cfg := testConfig(baseURL)
		if _, err := New(cfg); err == nil {
			t.Errorf("expected error for base URL %q", baseURL)
		} else if !apperrors.IsAppError(err) {
			t.Errorf("expected structured error for base URL %q, got %T", baseURL, err)
		}
	}
}

func TestGet_SendsAuthHeaders(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("X-API-Key") != "test-key" {
			t.Errorf("missing X-API-Key header")
		}
		if r.Header.Get("X-API-Client") != "test-client" {
			t.Errorf("missing X-API-Client header")
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	}))
	defer srv.Close()

	c, err := New(testConfig(srv.URL))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	body, err := Get[map[string]string](context.Background(), c, "/ping")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if body["status"] != "ok" {
		t.Errorf("unexpected body: %v", body)
	}
}

func TestGet_RetriesUntilSuccess(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls++
		if calls < 3 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	}))
	defer srv.Close()

	c, err := New(testConfig(srv.URL))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := c.Ping(context.Background()); err != nil {
		t.Fatalf("expected eventual success, got %v", err)
	}
	if calls != 3 {
		t.Errorf("expected 3 attempts, got %d", calls)
	}
}

func TestGet_ExhaustedRetriesReturnLastError(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls++
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c, err := New(testConfig(srv.URL))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	err = c.Ping(context.Background())
	if err == nil {
		t.Fatal("expected error after exhausted retries")
	}
	// MaxRetries=2 -> 3 total attempts.
	if calls != 3 {
		t.Errorf("expected 3 attempts, got %d", calls)
	}
}
