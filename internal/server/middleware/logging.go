package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/skillsenselab/backend/internal/logger"
)

// RequestLogger returns middleware that logs every request with method,
// path, status code, and duration. Health-check paths are silently skipped.
func RequestLogger() gin.HandlerFunc {
	log := logger.WithComponent("http")
	return func(c *gin.Context) {
		if isHealthEndpoint(c.Request.URL.Path) {
			c.Next()
			return
		}

		start := time.Now()
		c.Next()

		status := c.Writer.Status()
		path := c.Request.URL.Path
		if q := c.Request.URL.RawQuery; q != "" {
			path = path + "?" + q
		}

		fields := map[string]interface{}{
			"method":             c.Request.Method,
			"path":               path,
			logger.FieldStatus:   status,
			logger.FieldDuration: time.Since(start).Milliseconds(),
		}
		if id := c.GetString("request_id"); id != "" {
			fields[logger.FieldRequestID] = id
		}

		logByStatus(log, fields, status)
	}
}

// isHealthEndpoint reports whether the path is a probe endpoint that should
// not be logged on every scrape.
func isHealthEndpoint(path string) bool {
	switch {
	case strings.HasSuffix(path, "/health"),
		strings.HasSuffix(path, "/ping"):
		return true
	}
	return false
}

func logByStatus(log *logger.Logger, fields map[string]interface{}, status int) {
	switch {
	case status >= http.StatusInternalServerError:
		log.Error("request", fields)
	case status >= http.StatusBadRequest:
		log.Warn("request", fields)
	default:
		log.Info("request", fields)
	}
}
