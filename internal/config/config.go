// Package config loads and validates service settings from the environment
// and optional .env files.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/skillsenselab/backend/internal/logger"
	"github.com/skillsenselab/backend/internal/observability"
	"github.com/skillsenselab/backend/internal/server"
)

// Settings contains the full service configuration.
type Settings struct {
	// AppName is the display name of the service. Env: APP_NAME.
	AppName string `mapstructure:"app_name" validate:"required"`
	// APIKey authenticates outbound calls to the upstream API. Env: API_KEY.
	APIKey string `mapstructure:"api_key" validate:"required"`
	// APIClient identifies this service to the upstream API. Env: API_CLIENT.
	APIClient string `mapstructure:"api_client" validate:"required"`
	// Environment is one of development, staging, production.
	Environment string `mapstructure:"environment"`
	Debug       bool   `mapstructure:"debug"`

	Server    server.Config        `mapstructure:"server"`
	Logging   logger.Config        `mapstructure:"logging"`
	Telemetry observability.Config `mapstructure:"telemetry"`

	// StartTime is recorded when the settings are loaded and backs the
	// uptime reported by /api/v1/ping.
	StartTime time.Time `mapstructure:"-"`
}

// ApplyDefaults applies default values to unset fields.
func (s *Settings) ApplyDefaults() {
	if s.AppName == "" {
		s.AppName = "Backend"
	}
	if s.Environment == "" {
		s.Environment = "development"
	}
	if s.Environment == "development" {
		s.Debug = true
	}
	s.Server.ApplyDefaults()
	s.Logging.ApplyDefaults()
	s.Telemetry.ApplyDefaults()
	if s.StartTime.IsZero() {
		s.StartTime = time.Now()
	}
}

// Validate validates the settings, enforcing required fields via struct tags
// and delegating to each section's own Validate.
func (s *Settings) Validate() error {
	if err := validate.Struct(s); err != nil {
		if verrs, ok := err.(validator.ValidationErrors); ok && len(verrs) > 0 {
			return fmt.Errorf("config: %s is required", envName(verrs[0].StructField()))
		}
		return fmt.Errorf("config validation: %w", err)
	}

	validEnvs := []string{"development", "staging", "production"}
	found := false
	for _, v := range validEnvs {
		if s.Environment == v {
			found = true
			break
		}
	}
	if !found {
		return fmt.Errorf("config: environment must be one of %v (got: %s)", validEnvs, s.Environment)
	}

	if err := s.Server.Validate(); err != nil {
		return err
	}
	if err := s.Logging.Validate(); err != nil {
		return err
	}
	return s.Telemetry.Validate()
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// envName maps a Settings field name to its environment variable name.
func envName(field string) string {
	switch field {
	case "AppName":
		return "APP_NAME"
	case "APIKey":
		return "API_KEY"
	case "APIClient":
		return "API_CLIENT"
	default:
		return strings.ToUpper(field)
	}
}
