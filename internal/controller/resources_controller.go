package controller

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
)

type ResourcesControllerConfig struct {
	ResourcesDir string
}

// ResourcesController serves the static portal site. When no index.html
// is present a built-in placeholder page is returned instead so the API
// stays reachable during first deployment.
type ResourcesController struct {
	config ResourcesControllerConfig
	router *gin.RouterGroup
	static http.Handler
}

func NewResourcesController(config ResourcesControllerConfig, router *gin.RouterGroup) *ResourcesController {
	controller := &ResourcesController{
		config: config,
		router: router,
	}

	if config.ResourcesDir != "" {
		controller.static = http.StripPrefix("/static", http.FileServer(http.Dir(filepath.Join(config.ResourcesDir, "static"))))
	}

	return controller
}

func (controller *ResourcesController) SetupRoutes() {
	controller.router.GET("/", controller.indexHandler)
	controller.router.GET("/portal", controller.indexHandler)
	controller.router.GET("/static/*filepath", controller.staticHandler)
}

func (controller *ResourcesController) indexHandler(c *gin.Context) {
	if controller.config.ResourcesDir != "" {
		index := filepath.Join(controller.config.ResourcesDir, "index.html")
		if _, err := os.Stat(index); err == nil {
			c.File(index)
			return
		}
	}

	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(fallbackPage))
}

func (controller *ResourcesController) staticHandler(c *gin.Context) {
	if controller.static == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
		return
	}

	controller.static.ServeHTTP(c.Writer, c.Request)
}

// PageHandler serves top-level .html pages, wired as the router's
// no-route handler so it does not shadow API paths.
func (controller *ResourcesController) PageHandler(c *gin.Context) {
	path := c.Request.URL.Path

	if c.Request.Method != http.MethodGet || !strings.HasSuffix(path, ".html") || controller.config.ResourcesDir == "" {
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
		return
	}

	// Top-level pages only, no traversal into the tree.
	name := filepath.Base(filepath.Clean(path))
	page := filepath.Join(controller.config.ResourcesDir, name)

	if _, err := os.Stat(page); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
		return
	}

	c.File(page)
}

const fallbackPage = `<!DOCTYPE html>
<html><head><title>Camp Portal</title>
<style>
body { font-family: Georgia, serif; background: #0a0a12; color: #f5f5f0;
       display: flex; align-items: center; justify-content: center;
       min-height: 100vh; margin: 0; }
.container { text-align: center; max-width: 600px; padding: 2rem; }
h1 { color: #D4AF37; font-size: 2.5rem; }
</style></head><body>
<div class="container">
<h1>Camp Portal</h1>
<p>The server is running, but the frontend files were not found.</p>
<p>Point the resources directory at your site files. API endpoints are available under <code>/api</code>.</p>
</div></body></html>`
