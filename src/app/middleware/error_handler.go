package middleware

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"phonebook/src/app/http/response"
	"phonebook/src/infra/logger"
)

// ErrorHandler is the single place where failures become HTTP responses.
// Handlers attach errors with c.Error and abort; once the chain returns,
// the last attached error is written as a response.Error envelope unless
// a response was already written.
//
// Not found maps to 404, invalid input to 400, everything else to a
// generic 500 whose body never includes the error text.
//
// Usage:
//
//	router.Use(middleware.ErrorHandler(logger))
func ErrorHandler(log *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		last := c.Errors.Last()
		if last == nil {
			return
		}
		err := last.Err
		requestID := GetRequestID(c)
		reqLog := logger.WithRequestID(log, requestID)

		status := response.StatusFor(err)
		if status >= http.StatusInternalServerError {
			reqLog.Error("unexpected error",
				"error", err,
				"method", c.Request.Method,
				"path", c.Request.URL.Path,
			)
		} else {
			reqLog.Warn("request failed",
				"error", err,
				"status", status,
				"method", c.Request.Method,
				"path", c.Request.URL.Path,
			)
		}

		if c.Writer.Written() {
			return
		}
		response.FromDomainError(c, err, requestID)
	}
}
