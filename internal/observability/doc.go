// Package observability initializes OpenTelemetry tracing and metrics with
// OTLP HTTP exporters. Providers are created at startup when telemetry is
// enabled and must be shut down on application exit.
package observability
