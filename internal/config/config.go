// Package config loads configuration from environment variables.
package config

import (
	"fmt"
	"os"
	"reflect"
	"strings"
	"sync"
)

const (
	AppName    = "Geocheck"
	AppVersion = "v1.0.0"
)

var SingleLine = "--------------------------------------------------"

// Config represents the application configuration. Fields without an
// ",optional" tag are required and missing values abort startup.
type Config struct {
	ServerPort       string `env:"GEOCHECK_SERVER_PORT,optional"`
	ServerLogLevel   string `env:"GEOCHECK_SERVER_LOG_LEVEL,optional"`
	PostgresDsn      string `env:"GEOCHECK_PG_DSN"`
	PostgresLogLevel string `env:"GEOCHECK_PG_LOG_LEVEL,optional"`
	RedisHost        string `env:"GEOCHECK_REDIS_HOST"`
	RedisPort        string `env:"GEOCHECK_REDIS_PORT"`
	RedisPassword    string `env:"GEOCHECK_REDIS_PASSWORD,optional"`
	WeatherAPIKey    string `env:"GEOCHECK_WEATHER_API_KEY"`
	WeatherAPIURL    string `env:"GEOCHECK_WEATHER_API_URL,optional"`
	LocationsCsvPath string `env:"GEOCHECK_LOCATIONS_CSV,optional"`
	TemplatesGlob    string `env:"GEOCHECK_TEMPLATES_GLOB,optional"`
}

var defaults = map[string]string{
	"ServerPort":       "3000",
	"ServerLogLevel":   "info",
	"PostgresLogLevel": "warn",
	"WeatherAPIURL":    "https://api.pirateweather.net/forecast",
	"TemplatesGlob":    "templates/*.html",
}

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

// loadFromEnv loads configuration from environment variables
func (c *Config) loadFromEnv() error {
	t := reflect.TypeOf(*c)
	v := reflect.ValueOf(c).Elem()

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		envTag := field.Tag.Get("env")
		if envTag == "" {
			return fmt.Errorf("missing env tag for field %s", field.Name)
		}

		name, optional := parseEnvTag(envTag)
		value := os.Getenv(name)
		if value == "" {
			if !optional {
				return fmt.Errorf("env variable %s is required but not set", name)
			}
			value = defaults[field.Name]
		}

		v.Field(i).SetString(value)
	}

	return nil
}

func parseEnvTag(tag string) (name string, optional bool) {
	parts := strings.Split(tag, ",")
	name = parts[0]
	for _, p := range parts[1:] {
		if p == "optional" {
			optional = true
		}
	}
	return name, optional
}

// String returns the configuration as a string with sensitive values masked
func (c *Config) String() string {
	var sb strings.Builder
	sb.WriteString(SingleLine + "\n")
	sb.WriteString("Configuration:\n")

	t := reflect.TypeOf(*c)
	v := reflect.ValueOf(*c)

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		value := maskSensitiveField(field.Name, v.Field(i).String())
		sb.WriteString(fmt.Sprintf("  %s: %s\n", field.Name, value))
	}

	sb.WriteString(SingleLine)

	return sb.String()
}

func maskSensitiveField(fieldName, value string) string {
	sensitive := []string{"dsn", "key", "password", "secret"}

	lower := strings.ToLower(fieldName)
	for _, s := range sensitive {
		if strings.Contains(lower, s) {
			return maskValue(value)
		}
	}

	return value
}

func maskValue(value string) string {
	if len(value) <= 3 {
		return strings.Repeat("*", 7)
	}
	return value[:3] + strings.Repeat("*", 7)
}
