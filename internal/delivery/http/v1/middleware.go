package v1

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/adanyl0v/go-tasks/internal/services"
)

const principalCtxKey = "principal"

const loginRequiredMessage = "Please log in to access this page."

// HandleAuthMiddleware resolves the session cookie to a principal and
// stores it in the request context. Requests without a live session
// are redirected to the sign-in form.
func (h *handlerImpl) HandleAuthMiddleware(c *gin.Context) {
	token, err := c.Cookie(sessionCookie)
	if err != nil || token == "" {
		h.logger.Debug().
			Str("path", c.Request.URL.Path).
			Msg("session cookie required")
		redirect(c, "/sign-in", loginRequiredMessage)
		c.Abort()
		return
	}

	principal, err := h.auth.Authenticate(c, token)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidToken),
			errors.Is(err, services.ErrSessionNotFound),
			errors.Is(err, services.ErrSessionExpired):
			h.logger.Debug().
				Err(err).
				Msg("session rejected")
			clearCookie(c, sessionCookie)
			redirect(c, "/sign-in", loginRequiredMessage)
			c.Abort()
		default:
			h.logger.Error().
				Err(err).
				Msg("failed to authenticate session")
			abort(c, newStatusTextError(http.StatusInternalServerError))
		}
		return
	}

	c.Set(principalCtxKey, principal)
	c.Next()
}

func getPrincipal(c *gin.Context) (*services.Principal, bool) {
	value, exists := c.Get(principalCtxKey)
	if !exists {
		return nil, false
	}
	principal, ok := value.(*services.Principal)
	return principal, ok
}
