package endpoint_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/skillsenselab/backend/internal/server/endpoint"
)

func TestPing(t *testing.T) {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	startTime := time.Now().Add(-90 * time.Second)
	engine.GET("/api/v1/ping", endpoint.Ping(startTime))

	rr := httptest.NewRecorder()
	engine.ServeHTTP(rr, httptest.NewRequest("GET", "/api/v1/ping", http.NoBody))

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}

	var body endpoint.PingResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil {
		t.Fatalf("response is not valid JSON: %v", err)
	}
	if body.Status != "ok" {
		t.Errorf("expected status ok, got %q", body.Status)
	}
	if body.Uptime < 90 || body.Uptime > 95 {
		t.Errorf("expected uptime around 90s, got %d", body.Uptime)
	}
	if now := time.Now().Unix(); body.Timestamp < now-5 || body.Timestamp > now+1 {
		t.Errorf("timestamp %d not close to now %d", body.Timestamp, now)
	}
}

func TestHealth(t *testing.T) {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	engine.GET("/api/v1/health", endpoint.Health())

	rr := httptest.NewRecorder()
	engine.ServeHTTP(rr, httptest.NewRequest("GET", "/api/v1/health", http.NoBody))

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}

	var body map[string]string
	if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil {
		t.Fatalf("response is not valid JSON: %v", err)
	}
	if len(body) != 1 || body["status"] != "ok" {
		t.Errorf("expected exactly {\"status\":\"ok\"}, got %v", body)
	}
}

func TestInfo(t *testing.T) {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	engine.GET("/info", endpoint.Info("backend", time.Now()))

	rr := httptest.NewRecorder()
	engine.ServeHTTP(rr, httptest.NewRequest("GET", "/info", http.NoBody))

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}

	var body map[string]any
	if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil {
		t.Fatalf("response is not valid JSON: %v", err)
	}
	if body["service"] != "backend" {
		t.Errorf("expected service backend, got %v", body["service"])
	}
	if body["version"] == "" {
		t.Error("expected a version")
	}
}
