package v1

import (
	"embed"
	"fmt"
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

//go:embed templates/*.html
var templatesFS embed.FS

// RegisterRoutes loads the HTML views into router and mounts every route.
func RegisterRoutes(router *gin.Engine, h Handler) error {
	tmpl, err := template.New("").ParseFS(templatesFS, "templates/*.html")
	if err != nil {
		return fmt.Errorf("failed to parse templates: %w", err)
	}
	router.SetHTMLTemplate(tmpl)

	router.Use(h.HandleLoggingMiddleware, h.HandleMetricsMiddleware)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	getPost := []string{http.MethodGet, http.MethodPost}

	router.Match(getPost, "/", h.HandleHome)
	router.Match(getPost, "/register", h.HandleRegister)
	router.Match(getPost, "/sign-in", h.HandleSignIn)

	protected := router.Group("/", h.HandleAuthMiddleware)
	protected.Match(getPost, "/profile", h.HandleProfile)
	protected.Match(getPost, "/add-task", h.HandleAddTask)
	protected.Match(getPost, "/done/:task_id", h.HandleToggleTask)
	protected.Match(getPost, "/edit/:task_id", h.HandleEditTask)
	protected.Match(getPost, "/delete-task/:task_id", h.HandleDeleteTask)
	protected.GET("/log-out", h.HandleLogout)
	return nil
}
