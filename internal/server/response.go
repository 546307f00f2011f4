package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "github.com/skillsenselab/backend/internal/errors"
	"github.com/skillsenselab/backend/internal/logger"
)

// RespondWithError is the single conversion point from application errors to
// HTTP responses. An *apperrors.AppError renders with its attached status and
// the four-key JSON envelope; any other error is a defect and renders as a
// generic 500. The error is logged before responding; logging can never
// prevent the response.
func RespondWithError(c *gin.Context, err error) {
	log := logger.WithComponent("errors")

	if appErr, ok := apperrors.AsAppError(err); ok {
		log.Error("request failed", map[string]interface{}{
			logger.FieldCode:    string(appErr.Code),
			"message":           appErr.Message,
			logger.FieldDetails: appErr.Details,
		})
		c.JSON(appErr.Status(), appErr.ToResponse())
		return
	}

	log.WithError(err).Error("unhandled error")
	c.JSON(http.StatusInternalServerError, apperrors.Internal(err).ToResponse())
}

// ErrorHandler returns middleware that drains errors recorded on the Gin
// context after the handler chain and renders the first one. Handlers may
// either call RespondWithError directly or c.Error(err) and return.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}
		RespondWithError(c, c.Errors[0].Err)
	}
}

// RespondOK sends a 200 response with the given body.
func RespondOK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}
