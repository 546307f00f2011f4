// Package endpoint contains the health and status route handlers.
package endpoint

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// PingResponse is the body returned by the ping endpoint.
type PingResponse struct {
	Status    string `json:"status"`
	Uptime    int64  `json:"uptime"`
	Timestamp int64  `json:"timestamp"`
}

// Ping returns a handler for readiness/liveness probes. Uptime is measured
// from the recorded service start time, in whole seconds.
func Ping(startTime time.Time) gin.HandlerFunc {
	return func(c *gin.Context) {
		now := time.Now()
		c.JSON(http.StatusOK, PingResponse{
			Status:    "ok",
			Uptime:    now.Unix() - startTime.Unix(),
			Timestamp: now.Unix(),
		})
	}
}

// Health returns a lightweight healthcheck handler for Docker/K8s.
func Health() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
}
