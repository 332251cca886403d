// Package handlers exposes the routing engine over HTTP: the public gin API
// and the gorilla/mux admin listener.
package handlers

import (
	"net/http"
	"slices"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RouterConfig configures the public API engine.
type RouterConfig struct {
	// AllowedOrigins lists CORS origins. "*" allows any origin; an empty
	// list disables CORS headers.
	AllowedOrigins []string
	RequestTimeout time.Duration
	Logger         *log.Logger
}

// NewRouter builds the public API engine with /api/* and /health.
func NewRouter(h *RoutingHandler, cfg RouterConfig) *gin.Engine {
	logger := cfg.Logger
	if logger == nil {
		logger = log.Default()
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(requestID(logger), accessLog(), requestTimeout(cfg.RequestTimeout))
	if len(cfg.AllowedOrigins) > 0 {
		r.Use(cors.New(corsConfig(cfg.AllowedOrigins)))
	}

	h.RegisterRoutes(r.Group("/api"))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})

	return r
}

func corsConfig(origins []string) cors.Config {
	config := cors.DefaultConfig()
	if slices.Contains(origins, "*") {
		config.AllowAllOrigins = true
	} else {
		config.AllowOrigins = origins
	}
	config.AllowMethods = []string{"GET", "OPTIONS"}
	config.AllowHeaders = []string{"Origin", "Content-Type", RequestIDHeader}
	config.ExposeHeaders = []string{RequestIDHeader}
	return config
}
