// internal/infrastructure/config/config.go
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Storage backends
const (
	BackendJSON     = "json"
	BackendMongo    = "mongo"
	BackendPostgres = "postgres"
)

// Config holds all configuration for the application
type Config struct {
	// App
	AppVersion string
	LogLevel   string

	// Storage
	DataDir        string
	Backend        string
	StorageTimeout time.Duration

	// MongoDB
	MongoURI      string
	MongoDB       string
	MongoUser     string
	MongoPassword string

	// PostgreSQL
	PostgresURI string

	// Metrics
	PushgatewayURL string
}

// LoadConfig loads configuration from environment variables
func LoadConfig() (*Config, error) {
	// Load .env file if it exists
	_ = godotenv.Load()

	config := &Config{
		AppVersion: getEnv("APP_VERSION", "0.1.0"),
		LogLevel:   getEnv("LOG_LEVEL", "warn"),

		DataDir:        getEnv("FLIGHTS_HOME", ""),
		Backend:        strings.ToLower(getEnv("FLIGHTS_BACKEND", BackendJSON)),
		StorageTimeout: time.Duration(getEnvAsInt("STORAGE_TIMEOUT", 10)) * time.Second,

		MongoURI:      getEnv("MONGODB_DSN", "mongodb://localhost:27017"),
		MongoDB:       getEnv("MONGO_DB", "flights"),
		MongoUser:     getEnv("MONGO_USER", ""),
		MongoPassword: getEnv("MONGO_PASSWORD", ""),

		PostgresURI: getEnv("POSTGRES_DSN", ""),

		PushgatewayURL: getEnv("PUSHGATEWAY_URL", ""),
	}

	return config, nil
}

// ResolveDataDir returns FLIGHTS_HOME, or the user's home directory when it
// is unset. It is only called by commands that touch a data file.
func (c *Config) ResolveDataDir() (string, error) {
	if c.DataDir != "" {
		return c.DataDir, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}
	return home, nil
}

// Validate checks backend specific settings
func (c *Config) Validate() error {
	switch c.Backend {
	case BackendJSON, BackendMongo:
	case BackendPostgres:
		if c.PostgresURI == "" {
			return fmt.Errorf("POSTGRES_DSN is required for the %s backend", BackendPostgres)
		}
	default:
		return fmt.Errorf("unknown FLIGHTS_BACKEND %q (want %s, %s or %s)", c.Backend, BackendJSON, BackendMongo, BackendPostgres)
	}
	return nil
}

// Helper functions to get environment variables
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}
