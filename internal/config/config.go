// Package config loads configuration from environment variables.
package config

import (
	"fmt"
	"os"
	"reflect"
	"strings"
	"sync"
)

// DevSessionSecret is the fallback session secret used when none is
// configured. Acceptable for local development only.
const DevSessionSecret = "cityportal-dev-secret-do-not-use-in-prod"

// Config represents the application configuration
type Config struct {
	APIName          string `env:"CITYPORTAL_API_NAME" default:"CityPortal API"`
	APIVersion       string `env:"CITYPORTAL_API_VERSION" default:"1.0.0"`
	ServerPort       string `env:"CITYPORTAL_SERVER_PORT" default:"8080"`
	ServerLogLevel   string `env:"CITYPORTAL_LOG_LEVEL" default:"info"`
	SessionSecret    string `env:"CITYPORTAL_SESSION_SECRET" default:""`
	PostgresDsn      string `env:"CITYPORTAL_PG_DSN" default:""`
	PostgresLogLevel string `env:"CITYPORTAL_PG_LOG_LEVEL" default:"warn"`
	RedisAddr        string `env:"CITYPORTAL_REDIS_ADDR" default:""`
	RedisPassword    string `env:"CITYPORTAL_REDIS_PASSWORD" default:""`
	BackendURL       string `env:"CITYPORTAL_BACKEND_URL" default:""`
}

var (
	SingleLine string = "--------------------------------------------------"
)

var (
	instance *Config
	once     sync.Once
	err      error
)

// Get returns the application configuration
func Get() (*Config, error) {
	once.Do(func() {
		instance, err = loadConfig()
	})
	return instance, err
}

// loadConfig loads configuration from environment variables
func loadConfig() (*Config, error) {
	cfg := &Config{}
	if err := cfg.loadFromEnv(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// loadFromEnv loads configuration from environment variables, falling
// back to each field's default tag when the variable is unset
func (c *Config) loadFromEnv() error {
	t := reflect.TypeOf(*c)
	v := reflect.ValueOf(c).Elem()

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		envTag := field.Tag.Get("env")
		if envTag == "" {
			return fmt.Errorf("missing env tag for field %s", field.Name)
		}

		value := os.Getenv(envTag)
		if value == "" {
			value = field.Tag.Get("default")
		}

		v.Field(i).SetString(value)
	}

	return nil
}

// String returns the configuration as a string
func (c *Config) String() string {
	var sb strings.Builder
	sb.WriteString("\n--------------------------------------\n")
	sb.WriteString("Configuration:\n")
	sb.WriteString("--------------------------------------\n")

	t := reflect.TypeOf(*c)
	v := reflect.ValueOf(*c)

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		value := v.Field(i).String()

		// Mask sensitive fields
		value = maskSensitiveField(field.Name, value)
		sb.WriteString(fmt.Sprintf("  %s:  %s\n", field.Name, value))
	}

	sb.WriteString("--------------------------------------\n")

	return sb.String()
}

func maskSensitiveField(fieldName, value string) string {
	sensitiveFields := []string{"token", "dsn", "secret", "password", "url"}

	fieldNameLower := strings.ToLower(fieldName)
	for _, sensitive := range sensitiveFields {
		if strings.Contains(fieldNameLower, sensitive) {
			return maskValue(value)
		}
	}

	return value
}

func maskValue(value string) string {
	// short values would leak most of themselves through a prefix
	if len(value) < 12 {
		return strings.Repeat("*", 7)
	}
	return value[:3] + strings.Repeat("*", 7)
}
