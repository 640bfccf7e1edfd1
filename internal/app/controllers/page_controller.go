package controllers

import (
	"net/http"
	"path/filepath"

	"github.com/gin-gonic/gin"

	"github.com/studyhub/backend/internal/app/models"
)

// PageController serves the browser-rendered entry pages. The
// dashboards sit behind the redirect-flavor auth guard; everything
// else on these pages talks to the JSON API.
type PageController struct {
	staticDir string
}

// NewPageController creates a new PageController. staticDir holds the
// pre-built HTML pages.
func NewPageController(staticDir string) *PageController {
	return &PageController{staticDir: staticDir}
}

// Index serves the landing / login page
func (c *PageController) Index(ctx *gin.Context) {
	ctx.File(filepath.Join(c.staticDir, "index.html"))
}

// Dashboard serves the role-specific dashboard page
func (c *PageController) Dashboard(role models.RoleType) gin.HandlerFunc {
	page := filepath.Join(c.staticDir, string(role)+"_dashboard.html")
	return func(ctx *gin.Context) {
		ctx.Header("Cache-Control", "no-store")
		ctx.File(page)
	}
}

// NotFound redirects unknown page paths back to the landing page
func (c *PageController) NotFound(ctx *gin.Context) {
	ctx.Redirect(http.StatusFound, "/")
}
