package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// envKeys lists every viper key the loader binds to the environment.
// Nested keys map to underscored variables, e.g. "server.port" -> SERVER_PORT.
var envKeys = []string{
	"app_name",
	"api_key",
	"api_client",
	"environment",
	"debug",
	"server.host",
	"server.port",
	"server.read_timeout",
	"server.write_timeout",
	"server.idle_timeout",
	"logging.level",
	"logging.format",
	"logging.output",
	"logging.no_color",
	"telemetry.enabled",
	"telemetry.endpoint",
	"telemetry.insecure",
	"telemetry.sample_rate",
}

// LoaderConfig holds optional overrides for Load.
type LoaderConfig struct {
	// EnvFile is an explicit .env path. When empty, standard locations are
	// searched.
	EnvFile string
}

// LoaderOption is a functional option for Load.
type LoaderOption func(*LoaderConfig)

// WithEnvFile sets an explicit .env file path.
func WithEnvFile(path string) LoaderOption {
	return func(lc *LoaderConfig) { lc.EnvFile = path }
}

// Load reads settings from the process environment and an optional .env
// file, applies defaults, and validates the result.
func Load(opts ...LoaderOption) (*Settings, error) {
	var lc LoaderConfig
	for _, opt := range opts {
		opt(&lc)
	}

	if envFile := resolveEnvFile(lc.EnvFile); envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			fmt.Printf("[config] warning: failed to load .env file %s: %v\n", envFile, err)
		}
	}

	v := viper.New()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	for _, key := range envKeys {
		_ = v.BindEnv(key)
	}

	var settings Settings
	if err := v.Unmarshal(&settings); err != nil {
		return nil, fmt.Errorf("failed to unmarshal settings: %w", err)
	}

	settings.ApplyDefaults()
	if err := settings.Validate(); err != nil {
		return nil, err
	}
	return &settings, nil
}

// resolveEnvFile returns the explicit path if given, otherwise the first
// .env found in standard locations.
func resolveEnvFile(explicit string) string {
	if explicit != "" {
		return explicit
	}
	for _, path := range []string{".env", "../.env", "../../.env"} {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}
