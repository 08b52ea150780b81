package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// render shows a view with the pending flash messages followed by extra ones.
func render(c *gin.Context, status int, name string, data gin.H, extraFlashes ...string) {
	if data == nil {
		data = gin.H{}
	}
	data["Flashes"] = append(popFlashes(c), extraFlashes...)
	if principal, ok := getPrincipal(c); ok {
		data["User"] = principal.User
		data["LoggedIn"] = true
	}
	c.HTML(status, name, data)
}

// redirect queues the flash messages and sends the client to location.
func redirect(c *gin.Context, location string, flashes ...string) {
	if len(flashes) > 0 {
		setFlash(c, flashes...)
	}
	c.Redirect(http.StatusSeeOther, location)
}
