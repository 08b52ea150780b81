package v1

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// HandleLoggingMiddleware writes one access log entry per request.
// Server errors are logged at error level, client errors at warn.
func (h *handlerImpl) HandleLoggingMiddleware(c *gin.Context) {
	start := time.Now()
	c.Next()

	status := c.Writer.Status()
	var event *zerolog.Event
	switch {
	case status >= http.StatusInternalServerError:
		event = h.logger.Error()
	case status >= http.StatusBadRequest:
		event = h.logger.Warn()
	default:
		event = h.logger.Info()
	}

	event = event.
		Str("method", c.Request.Method).
		Str("path", c.Request.URL.Path).
		Str("route", c.FullPath()).
		Int("status", status).
		Dur("latency", time.Since(start)).
		Str("client_ip", c.ClientIP())
	if principal, ok := getPrincipal(c); ok {
		event = event.Int64("user_id", principal.User.ID)
	}
	if len(c.Errors) > 0 {
		event = event.Str("errors", c.Errors.String())
	}
	event.Msg("handled request")
}
