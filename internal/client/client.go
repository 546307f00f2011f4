// Package client provides the JSON client for the upstream API that the
// service fronts. Requests authenticate with the configured API key and
// client identifier and are retried per the configured policy.
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	apperrors "github.com/skillsenselab/backend/internal/errors"
	"github.com/skillsenselab/backend/internal/logger"
	"github.com/skillsenselab/backend/internal/resilience"
)

// Config holds upstream client configuration.
type Config struct {
	// BaseURL is the upstream API root, e.g. "https://api.example.com".
	BaseURL string
	// APIKey and APIClient authenticate this service to the upstream.
	APIKey    string
	APIClient string
	// Timeout applies per request attempt.
	Timeout time.Duration
	// Retry governs re-attempts of failed requests.
	Retry resilience.RetryConfig
}

// ApplyDefaults sets sensible default values for unset fields.
func (c *Config) ApplyDefaults() {
	if c.Timeout == 0 {
		c.Timeout = 10 * time.Second
	}
	if c.Retry.MaxRetries == 0 && c.Retry.Sleep == 0 {
		c.Retry = resilience.RetryConfig{
			MaxRetries:     2,
			Sleep:          500 * time.Millisecond,
			PropagateError: true,
		}
	}
}

// Client is the upstream API client.
type Client struct {
	http      *http.Client
	baseURL   string
	apiKey    string
	apiClient string
	retry     resilience.RetryConfig
	log       *logger.Logger
}

// New creates a new Client. A misconfigured client is a structured
// ClientInitializationError so the failure surfaces with its stable code.
func New(cfg Config) (*Client, error) {
	cfg.ApplyDefaults()

	if cfg.BaseURL == "" {
		return nil, apperrors.ClientInitialization(fmt.Errorf("base URL is required"))
	}
	parsed, err := url.Parse(cfg.BaseURL)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return nil, apperrors.ClientInitialization(fmt.Errorf("invalid base URL %q", cfg.BaseURL))
	}
	if cfg.APIKey == "" {
		return nil, apperrors.ClientInitialization(fmt.Errorf("API key is required"))
	}
	if cfg.APIClient == "" {
		return nil, apperrors.ClientInitialization(fmt.Errorf("API client identifier is required"))
	}

	return &Client{
		http:      &http.Client{Timeout: cfg.Timeout},
		baseURL:   strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:    cfg.APIKey,
		apiClient: cfg.APIClient,
		retry:     cfg.Retry,
		log:       logger.WithComponent("client"),
	}, nil
}

// Get performs a GET request and decodes the JSON response into type T.
// Failed attempts are retried per the client's retry policy.
func Get[T any](ctx context.Context, c *Client, path string) (T, error) {
	return resilience.Retry(ctx, c.retry, func() (T, error) {
		return do[T](ctx, c, http.MethodGet, path)
	})
}

// Ping checks upstream reachability. Returns nil when the upstream answers.
func (c *Client) Ping(ctx context.Context) error {
	_, err := Get[map[string]any](ctx, c, "/ping")
	return err
}

// do executes a single request attempt.
func do[T any](ctx context.Context, c *Client, method, path string) (T, error) {
	var zero T

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, http.NoBody)
	if err != nil {
		return zero, fmt.Errorf("building %s %s: %w", method, path, err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-API-Key", c.apiKey)
	req.Header.Set("X-API-Client", c.apiClient)

	resp, err := c.http.Do(req)
	if err != nil {
		return zero, fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return zero, fmt.Errorf("%s %s: upstream returned %d: %s", method, path, resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var out T
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return zero, fmt.Errorf("%s %s: decoding response: %w", method, path, err)
	}
	return out, nil
}
