// Package config provides configuration management for the QTS service.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

// Config holds all configuration for the application
type Config struct {
	Server      ServerConfig
	CORS        CORSConfig
	Compression CompressionConfig
	Log         LogConfig
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	Port            string
	Mode            string // gin mode: debug, release or test
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	ShutdownTimeout time.Duration
}

// CORSConfig holds cross-origin settings
type CORSConfig struct {
	AllowOrigins []string
}

// CompressionConfig controls gzip response compression
type CompressionConfig struct {
	Enabled bool
	Level   int // compress/gzip level, -2 (huffman only) through 9
}

// LogConfig controls the per-request access log
type LogConfig struct {
	Requests  bool
	SkipPaths []string
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port:            getEnv("PORT", "8080"),
			Mode:            getEnv("GIN_MODE", gin.ReleaseMode),
			ReadTimeout:     getEnvAsDuration("SERVER_READ_TIMEOUT", "10s"),
			WriteTimeout:    getEnvAsDuration("SERVER_WRITE_TIMEOUT", "10s"),
			IdleTimeout:     getEnvAsDuration("SERVER_IDLE_TIMEOUT", "60s"),
			ShutdownTimeout: getEnvAsDuration("SERVER_SHUTDOWN_TIMEOUT", "15s"),
		},
		CORS: CORSConfig{
			AllowOrigins: getEnvAsList("CORS_ALLOW_ORIGINS", []string{"*"}),
		},
		Compression: CompressionConfig{
			Enabled: getEnvAsBool("COMPRESSION_ENABLED", true),
			Level:   getEnvAsInt("COMPRESSION_LEVEL", -1),
		},
		Log: LogConfig{
			Requests:  getEnvAsBool("LOG_REQUESTS", true),
			SkipPaths: getEnvAsList("LOG_SKIP_PATHS", nil),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate validates the configuration and returns an error if invalid
func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return errors.New("PORT must not be empty")
	}
	if port, err := strconv.Atoi(c.Server.Port); err != nil || port < 0 || port > 65535 {
		return fmt.Errorf("PORT must be a number between 0 and 65535, got %q", c.Server.Port)
	}

	switch c.Server.Mode {
	case gin.DebugMode, gin.ReleaseMode, gin.TestMode:
	default:
		return fmt.Errorf("GIN_MODE must be one of debug, release, test, got %q", c.Server.Mode)
	}

	if c.Server.ReadTimeout <= 0 || c.Server.WriteTimeout <= 0 || c.Server.IdleTimeout <= 0 {
		return errors.New("server read, write and idle timeouts must be positive")
	}
	if c.Server.ShutdownTimeout <= 0 {
		return errors.New("SERVER_SHUTDOWN_TIMEOUT must be positive")
	}

	if len(c.CORS.AllowOrigins) == 0 {
		return errors.New("CORS_ALLOW_ORIGINS must list at least one origin")
	}
	for _, origin := range c.CORS.AllowOrigins {
		if origin == "*" {
			continue
		}
		if strings.Contains(origin, "*") ||
			!(strings.HasPrefix(origin, "http://") || strings.HasPrefix(origin, "https://")) {
			return fmt.Errorf("CORS_ALLOW_ORIGINS entry %q must be \"*\" or an http(s) origin", origin)
		}
	}

	if c.Compression.Level < -2 || c.Compression.Level > 9 {
		return fmt.Errorf("COMPRESSION_LEVEL must be between -2 and 9, got %d", c.Compression.Level)
	}

	return nil
}

// Addr returns the listen address for the HTTP server
func (s *ServerConfig) Addr() string {
	return ":" + s.Port
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// getEnvAsInt gets an environment variable as an integer or returns a default value
func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

// getEnvAsBool gets an environment variable as a boolean or returns a default value
func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

// getEnvAsDuration gets an environment variable as a duration or returns a default value
func getEnvAsDuration(key, defaultValue string) time.Duration {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		valueStr = defaultValue
	}
	value, err := time.ParseDuration(valueStr)
	if err != nil {
		defaultDuration, _ := time.ParseDuration(defaultValue)
		return defaultDuration
	}
	return value
}

// getEnvAsList splits a comma-separated environment variable, dropping empty items
func getEnvAsList(key string, defaultValue []string) []string {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	var items []string
	for _, item := range strings.Split(valueStr, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}
