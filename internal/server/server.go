// Package server provides HTTP server setup and configuration.
package server

import (
	"io"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/sebasr/qts-service/internal/config"
	"github.com/sebasr/qts-service/internal/handlers"
	"github.com/sebasr/qts-service/internal/middleware"
)

// Route binds an HTTP method and path pattern to a handler
type Route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
}

// Routes returns the service's route table in registration order
func Routes() []Route {
	return []Route{
		{Method: http.MethodGet, Path: "/", Handler: handlers.HelloHandler},
		{Method: http.MethodGet, Path: "/user/:user_id", Handler: handlers.UserHandler},
		{Method: http.MethodGet, Path: "/hello/:name", Handler: handlers.GreetingHandler},
	}
}

// Dependencies holds all dependencies needed to create a server
type Dependencies struct {
	Config    *config.Config
	LogOutput io.Writer // Access log destination; gin.DefaultWriter when nil
}

// New creates a new Gin router with all routes configured
func New(deps *Dependencies) *gin.Engine {
	cfg := deps.Config

	// gin.New() instead of gin.Default() so the middleware stack is explicit
	router := gin.New()

	// Add recovery middleware (without colored output)
	router.Use(gin.Recovery())

	router.Use(middleware.RequestID())

	if cfg.Log.Requests {
		out := deps.LogOutput
		if out == nil {
			out = gin.DefaultWriter
		}
		router.Use(middleware.AccessLog(out, cfg.Log.SkipPaths))
	}

	// Add CORS middleware for web client support
	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORS.AllowOrigins,
		AllowMethods:     []string{http.MethodGet, http.MethodOptions},
		AllowHeaders:     []string{"Content-Type", middleware.RequestIDHeader},
		ExposeHeaders:    []string{"Content-Length", middleware.RequestIDHeader},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	if cfg.Compression.Enabled {
		router.Use(gzip.Gzip(cfg.Compression.Level))
	}

	for _, r := range Routes() {
		router.Handle(r.Method, r.Path, r.Handler)
	}

	router.NoRoute(handlers.NotFoundHandler)

	return router
}
