package server_test

import (
	"context"
	"testing"

	"github.com/skillsenselab/backend/internal/logger"
	"github.com/skillsenselab/backend/internal/server"
)

func TestServer_StartStop(t *testing.T) {
	var cfg server.Config
	cfg.ApplyDefaults()
	cfg.Port = 0 // ephemeral port

	srv := server.New(cfg, logger.NewDefault("test"))
	srv.ApplyMiddleware()

	ctx := context.Background()
	if err := srv.Start(ctx); err != nil {
		t.Fatalf("start failed: %v", err)
	}
	if err := srv.Stop(ctx); err != nil {
		t.Fatalf("stop failed: %v", err)
	}
}

func TestConfig_ApplyDefaults(t *testing.T) {
	var cfg server.Config
	cfg.ApplyDefaults()

	if cfg.Port != 8080 {
		t.Errorf("expected default port 8080, got %d", cfg.Port)
	}
	if cfg.ReadTimeout != 15 || cfg.WriteTimeout != 15 {
		t.Errorf("unexpected timeouts: read=%d write=%d", cfg.ReadTimeout, cfg.WriteTimeout)
	}
	if len(cfg.CORS.AllowedOrigins) == 0 {
		t.Error("expected default CORS origins")
	}
}

func TestConfig_Validate(t *testing.T) {
	var cfg server.Config
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}

	cfg.Port = 70000
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for out-of-range port")
	}

	cfg.Port = 8080
	cfg.ReadTimeout = -1
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for negative read timeout")
	}
}
