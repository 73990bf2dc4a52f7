package config

import (
	"os"
)

// ServerConfig holds runtime settings for the HTTP analysis service.
type ServerConfig struct {
	Port     string
	LogLevel string
}

// NewServerConfig loads server settings from environment variables with
// sensible defaults.
func NewServerConfig() *ServerConfig {
	return &ServerConfig{
		Port:     getEnv("PORT", "8080"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
	}
}

func getEnv(key, defaultVal string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultVal
}
