// Package main is the entry point for the QTS service HTTP server.
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"

	"github.com/sebasr/qts-service/internal/config"
	"github.com/sebasr/qts-service/internal/server"
)

func main() {
	envFile := os.Getenv("ENV_FILE")
	if envFile == "" {
		envFile = ".env"
	}
	if err := config.LoadDotEnv(envFile); err != nil {
		log.Fatalf("Failed to read env file: %v", err)
	}

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// GIN_MODE defaults to release, which keeps debug route dumps out of the logs
	gin.SetMode(cfg.Server.Mode)

	router := server.New(&server.Dependencies{
		Config:    cfg,
		LogOutput: os.Stdout,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Printf("Starting server on port %s", cfg.Server.Port)
	if err := server.ListenAndServe(ctx, &cfg.Server, router); err != nil {
		log.Printf("Server error: %v", err)
		stop()
		os.Exit(1)
	}

	log.Println("Server stopped")
}
