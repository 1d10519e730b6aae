package config

import (
	"os"
	"strconv"
	"strings"
)

// Config represents the complete application configuration
type Config struct {
	Server ServerConfig
	CORS   CORSConfig
}

// ServerConfig holds web server settings
type ServerConfig struct {
	Port        string
	GinMode     string
	MaxUploadMB int64
}

// CORSConfig holds cross-origin settings for the browser frontend
type CORSConfig struct {
	AllowedOrigins []string
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	config := &Config{
		Server: loadServerConfig(),
		CORS:   loadCORSConfig(),
	}
	return config, nil
}

func loadServerConfig() ServerConfig {
	return ServerConfig{
		Port:        getEnvOrDefault("PORT", "8080"),
		GinMode:     getEnvOrDefault("GIN_MODE", "debug"),
		MaxUploadMB: int64(getEnvIntOrDefault("MAX_UPLOAD_MB", 32)),
	}
}

func loadCORSConfig() CORSConfig {
	origins := getEnvOrDefault("CORS_ALLOWED_ORIGINS", "*")
	parts := strings.Split(origins, ",")
	allowed := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			allowed = append(allowed, trimmed)
		}
	}
	return CORSConfig{AllowedOrigins: allowed}
}

// Helper functions for environment variable parsing
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
