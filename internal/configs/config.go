package configs

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type RESTConfig struct {
	Port           string
	AllowedOrigins []string
}

type StorageConfig struct {
	// Backend selects the listing storage implementation: "memory" or
	// "postgres".
	Backend     string
	DatabaseURL string
}

type AuthConfig struct {
	Enabled    bool
	ServiceURL string
}

type EventsConfig struct {
	Enabled     bool
	RabbitMQURL string
}

type FluentBitConfig struct {
	Enabled bool
	Host    string
	Port    int
	Level   string
}

type StdoutLogConfig struct {
	Level string
}

// AppConfig holds the whole application configuration.
type AppConfig struct {
	AppName      string
	Rest         RESTConfig
	Storage      StorageConfig
	Auth         AuthConfig
	Events       EventsConfig
	FluentBit    FluentBitConfig
	StdoutLogger StdoutLogConfig
}

// LoadConfig reads configuration from the environment, optionally loading a
// .env file first. A missing .env file is not an error.
func LoadConfig(envPath ...string) (*AppConfig, error) {
	var err error
	if len(envPath) > 0 {
		err = godotenv.Load(envPath[0])
	} else {
		err = godotenv.Load()
	}
	if err != nil {
		log.Printf("Info: Could not load .env file (path: %v): %v\n", envPath, err)
	}

	cfg := &AppConfig{}

	cfg.AppName = getEnvAsString("APP_NAME", "listing-service")

	cfg.Rest.Port = getEnvAsString("PORT", "8080")
	origins := getEnvAsString("CORS_ALLOWED_ORIGINS", "http://localhost:5173")
	cfg.Rest.AllowedOrigins = strings.Split(origins, ",")

	cfg.Storage.Backend = getEnvAsString("STORAGE_BACKEND", "memory")
	switch cfg.Storage.Backend {
	case "memory":
	case "postgres":
		cfg.Storage.DatabaseURL = os.Getenv("DATABASE_URL")
		if cfg.Storage.DatabaseURL == "" {
			return nil, fmt.Errorf("DATABASE_URL environment variable is required when STORAGE_BACKEND=postgres")
		}
	default:
		return nil, fmt.Errorf("unknown STORAGE_BACKEND %q, expected memory or postgres", cfg.Storage.Backend)
	}

	cfg.Auth.Enabled = getEnvAsBool("AUTH_ENABLED", false)
	if cfg.Auth.Enabled {
		cfg.Auth.ServiceURL = os.Getenv("AUTH_SERVICE_URL")
		if cfg.Auth.ServiceURL == "" {
			return nil, fmt.Errorf("AUTH_SERVICE_URL environment variable is required when AUTH_ENABLED=true")
		}
	}

	cfg.Events.Enabled = getEnvAsBool("EVENTS_ENABLED", false)
	if cfg.Events.Enabled {
		cfg.Events.RabbitMQURL = os.Getenv("RABBITMQ_URL")
		if cfg.Events.RabbitMQURL == "" {
			return nil, fmt.Errorf("RABBITMQ_URL environment variable is required when EVENTS_ENABLED=true")
		}
	}

	cfg.FluentBit.Enabled = getEnvAsBool("FLUENTBIT_ENABLED", false)
	if cfg.FluentBit.Enabled {
		cfg.FluentBit.Host = os.Getenv("FLUENTBIT_HOST")
		if cfg.FluentBit.Host == "" {
			log.Println("WARNING: FLUENTBIT_ENABLED is true, but FLUENTBIT_HOST is not set. Disabling Fluent Bit.")
			cfg.FluentBit.Enabled = false
		}
		cfg.FluentBit.Port = getEnvAsInt("FLUENTBIT_PORT", 24224)
		cfg.FluentBit.Level = getEnvAsString("FLUENTBIT_LOG_LEVEL", "info")
	}

	cfg.StdoutLogger.Level = getEnvAsString("STDOUT_LOG_LEVEL", "debug")

	return cfg, nil
}

func getEnvAsString(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}

	valueInt, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Warning: Environment variable %s (value: %s) could not be parsed as int: %v. Using default value: %d\n", key, valueStr, err, defaultValue)
		return defaultValue
	}
	return valueInt
}

func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}

	valueBool, err := strconv.ParseBool(valueStr)
	if err != nil {
		log.Printf("Warning: Environment variable %s (value: %s) could not be parsed as bool: %v. Using default value: %t\n", key, valueStr, err, defaultValue)
		return defaultValue
	}
	return valueBool
}
