package http

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/iamasit07/connect-four/internal/transport/http/middleware"
)

type RouterConfig struct {
	AllowedOrigins []string
	StaticDir      string
}

// NewRouter builds the gin engine: middleware, health check, table routes,
// the websocket endpoint and, when StaticDir exists, the renderer's files.
func NewRouter(cfg RouterConfig, tableHandler *TableHandler, wsHandler gin.HandlerFunc) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())
	router.Use(middleware.SecurityHeadersMiddleware())
	router.Use(middleware.CORSMiddleware(cfg.AllowedOrigins))

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	tableHandler.Register(router)

	// WebSocket Route (seat token comes with each message or the upgrade request)
	if wsHandler != nil {
		router.GET("/ws", wsHandler)
	}

	if cfg.StaticDir != "" {
		if info, err := os.Stat(cfg.StaticDir); err == nil && info.IsDir() {
			serveStatic(router, cfg.StaticDir)
		}
	}

	return router
}

// serveStatic serves the renderer build with an index.html fallback.
func serveStatic(router *gin.Engine, dir string) {
	index := filepath.Join(dir, "index.html")

	router.GET("/", func(c *gin.Context) {
		c.File(index)
	})

	router.NoRoute(func(c *gin.Context) {
		if strings.HasPrefix(c.Request.URL.Path, "/api/") {
			c.JSON(http.StatusNotFound, gin.H{"error": "not_found"})
			return
		}

		path := filepath.Join(dir, filepath.Clean("/"+c.Request.URL.Path))
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			c.File(path)
			return
		}

		// For asset requests that don't exist, return 404
		if strings.HasSuffix(c.Request.URL.Path, ".css") || strings.HasSuffix(c.Request.URL.Path, ".js") {
			c.Status(http.StatusNotFound)
			return
		}

		c.File(index)
	})
}
