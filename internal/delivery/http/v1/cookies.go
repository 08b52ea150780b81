package v1

import (
	"encoding/base64"
	"encoding/json"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

const (
	sessionCookie = "session"
	flashCookie   = "flash"
)

func setCookie(c *gin.Context, name, value string, maxAge int) {
	const secure, httpOnly = true, true
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(name, value, maxAge,
		"/", "", secure, httpOnly)
}

func clearCookie(c *gin.Context, name string) {
	setCookie(c, name, "", -1)
}

// setSessionCookie stores the session token. A remembered session
// outlives the browser; otherwise the cookie has no Max-Age.
func setSessionCookie(c *gin.Context, token string, remember bool, expiresAt time.Time) {
	maxAge := 0
	if remember {
		maxAge = int(time.Until(expiresAt).Seconds())
	}
	setCookie(c, sessionCookie, token, maxAge)
}

// setFlash queues messages for the next rendered view.
func setFlash(c *gin.Context, messages ...string) {
	raw, err := json.Marshal(messages)
	if err != nil {
		return
	}
	setCookie(c, flashCookie, base64.RawURLEncoding.EncodeToString(raw), 0)
}

// popFlashes returns the queued messages and clears them.
func popFlashes(c *gin.Context) []string {
	value, err := c.Cookie(flashCookie)
	if err != nil || value == "" {
		return nil
	}
	clearCookie(c, flashCookie)

	raw, err := base64.RawURLEncoding.DecodeString(value)
	if err != nil {
		return nil
	}
	var messages []string
	if err = json.Unmarshal(raw, &messages); err != nil {
		return nil
	}
	return messages
}
