package server

import (
	"time"

	"github.com/skillsenselab/backend/internal/server/endpoint"
)

// RegisterRoutes registers the versioned API routes and the root info
// endpoint. These handlers never raise structured errors under normal
// operation.
func RegisterRoutes(s *Server, serviceName string, startTime time.Time) {
	v1 := s.Engine().Group("/api/v1")
	v1.GET("/ping", endpoint.Ping(startTime))
	v1.GET("/health", endpoint.Health())

	s.Engine().GET("/info", endpoint.Info(serviceName, startTime))
}
