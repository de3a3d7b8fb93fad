// internal/infrastructure/config/config.go
package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	// App
	AppVersion string

	// Server
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration

	// MongoDB
	MongoURI string
	MongoDB  string

	// PostgreSQL (airport/airline reference data)
	PostgresURI string

	// Flight data provider
	AmadeusBaseURL    string
	AmadeusSecretName string
	ProviderTimeout   time.Duration

	// Credential cache
	CredentialTTL time.Duration
	TokenTTL      time.Duration

	// Secrets
	SecretsFile string

	// Layover planner
	PlannerWorkers int
}

// LoadConfig loads configuration from environment variables
func LoadConfig() (*Config, error) {
	// Load .env file if it exists
	godotenv.Load()

	// Set defaults and override with env vars
	config := &Config{
		AppVersion:   getEnv("APP_VERSION", "1.0.0"),
		Port:         getEnv("PORT", "8080"),
		ReadTimeout:  time.Duration(getEnvAsInt("READ_TIMEOUT", 30)) * time.Second,
		WriteTimeout: time.Duration(getEnvAsInt("WRITE_TIMEOUT", 30)) * time.Second,

		MongoURI: getEnv("MONGODB_DSN", "mongodb://localhost:27017"),
		MongoDB:  getEnv("MONGO_DB", "loungeadvisor"),

		PostgresURI: getEnv("POSTGRES_DSN", ""),

		AmadeusBaseURL:    getEnv("AMADEUS_BASE_URL", "https://test.api.amadeus.com"),
		AmadeusSecretName: getEnv("AMADEUS_SECRET_NAME", "amadeus/credentials"),
		ProviderTimeout:   time.Duration(getEnvAsInt("PROVIDER_TIMEOUT", 15)) * time.Second,

		// Credentials re-fetched hourly; tokens advertised at 1799s are
		// served for 1500s so one is never handed out mid-expiry
		CredentialTTL: time.Duration(getEnvAsInt("CREDENTIAL_TTL", 3600)) * time.Second,
		TokenTTL:      time.Duration(getEnvAsInt("TOKEN_TTL", 1500)) * time.Second,

		SecretsFile: getEnv("SECRETS_FILE", ""),

		PlannerWorkers: getEnvAsInt("PLANNER_WORKERS", 4),
	}

	return config, nil
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
