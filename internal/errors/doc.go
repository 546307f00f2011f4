// Package errors provides the structured application error model.
//
// Every failure that should produce a controlled HTTP response is an
// *AppError: a concrete kind name, a stable machine-readable code, a
// human-readable message, and optional JSON-safe details. The HTTP status
// is attached to the error at construction time and consulted directly by
// the response layer; errors built without one render with the 400 default.
package errors
