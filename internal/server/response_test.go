package server_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	apperrors "github.com/skillsenselab/backend/internal/errors"
	"github.com/skillsenselab/backend/internal/server"
)

func newTestEngine() *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	engine.Use(server.ErrorHandler())
	return engine
}

func doRequest(engine *gin.Engine, method, path string) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	engine.ServeHTTP(rr, httptest.NewRequest(method, path, http.NoBody))
	return rr
}

func decodeBody(t *testing.T, rr *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil {
		t.Fatalf("response is not valid JSON: %v", err)
	}
	return body
}

func TestRespondWithError_AppErrorStatus(t *testing.T) {
	engine := newTestEngine()
	engine.GET("/missing", func(c *gin.Context) {
		server.RespondWithError(c, apperrors.NotFound("user"))
	})

	rr := doRequest(engine, "GET", "/missing")
	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rr.Code)
	}
	if ct := rr.Header().Get("Content-Type"); ct != "application/json; charset=utf-8" {
		t.Errorf("unexpected content type: %s", ct)
	}

	body := decodeBody(t, rr)
	if body["error"] != "NotFoundError" {
		t.Errorf("unexpected error kind: %v", body["error"])
	}
	if body["code"] != "NOT_FOUND" {
		t.Errorf("unexpected code: %v", body["code"])
	}
}

func TestRespondWithError_UnregisteredKindDefaultsTo400(t *testing.T) {
	engine := newTestEngine()
	engine.GET("/fail", func(c *gin.Context) {
		err := apperrors.New("SomeNewError", "SOME_NEW_ERROR", "something new failed", 0)
		server.RespondWithError(c, err)
	})

	rr := doRequest(engine, "GET", "/fail")
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 default, got %d", rr.Code)
	}

	body := decodeBody(t, rr)
	if body["error"] != "SomeNewError" {
		t.Errorf("unexpected error kind: %v", body["error"])
	}
}

func TestRespondWithError_ClientInitialization(t *testing.T) {
	engine := newTestEngine()
	engine.GET("/init", func(c *gin.Context) {
		server.RespondWithError(c, apperrors.ClientInitialization(errors.New("missing credentials")))
	})

	rr := doRequest(engine, "GET", "/init")
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rr.Code)
	}

	body := decodeBody(t, rr)
	if len(body) != 4 {
		t.Fatalf("expected exactly 4 keys, got %d: %v", len(body), body)
	}
	if body["code"] != "CLIENT_INITIALIZATION_ERROR" {
		t.Errorf("unexpected code: %v", body["code"])
	}
	details, ok := body["details"].(map[string]any)
	if !ok {
		t.Fatalf("details is not an object: %v", body["details"])
	}
	if details["cause"] != "missing credentials" {
		t.Errorf("unexpected cause detail: %v", details["cause"])
	}
}

func TestRespondWithError_PlainErrorBecomes500(t *testing.T) {
	engine := newTestEngine()
	engine.GET("/boom", func(c *gin.Context) {
		server.RespondWithError(c, errors.New("unstructured failure"))
	})

	rr := doRequest(engine, "GET", "/boom")
	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rr.Code)
	}

	body := decodeBody(t, rr)
	if body["code"] != "INTERNAL_ERROR" {
		t.Errorf("unexpected code: %v", body["code"])
	}
}

func TestErrorHandler_DrainsContextErrors(t *testing.T) {
	engine := newTestEngine()
	engine.GET("/deferred", func(c *gin.Context) {
		_ = c.Error(apperrors.NotFound("wallet"))
	})

	rr := doRequest(engine, "GET", "/deferred")
	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rr.Code)
	}

	body := decodeBody(t, rr)
	if body["error"] != "NotFoundError" {
		t.Errorf("unexpected error kind: %v", body["error"])
	}
}

func TestErrorHandler_NoErrorsNoInterference(t *testing.T) {
	engine := newTestEngine()
	engine.GET("/ok", func(c *gin.Context) {
		server.RespondOK(c, gin.H{"status": "ok"})
	})

	rr := doRequest(engine, "GET", "/ok")
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
}
