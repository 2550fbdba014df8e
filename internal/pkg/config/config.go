package config

import (
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

type BackendConfig struct {
	BaseURL            string        `yaml:"base_url"`
	Timeout            time.Duration `yaml:"timeout"`
	RestaurantCacheTTL time.Duration `yaml:"restaurant_cache_ttl"`
	MaxLookups         int           `yaml:"max_lookups"`
}

type ObservabilityConfig struct {
	ServiceName  string `yaml:"service_name"`
	MetricsAddr  string `yaml:"metrics_addr"`
	PprofAddr    string `yaml:"pprof_addr"`
	OTLPEndpoint string `yaml:"otlp_endpoint"`
}

type Config struct {
	ServerPort     string              `yaml:"server_port"`
	LogLevel       string              `yaml:"log_level"`
	SessionTTL     time.Duration       `yaml:"session_ttl"`
	SessionSecret  string              `yaml:"session_secret"`
	AllowedOrigins []string            `yaml:"allowed_origins"`
	Suggestions    []string            `yaml:"suggestions"`
	Backend        BackendConfig       `yaml:"backend"`
	Observability  ObservabilityConfig `yaml:"observability"`
}

// DefaultSuggestions are the quick search chips under the search bar.
var DefaultSuggestions = []string{"ხინკალი", "ხაჭაპური", "vegetarian", "spicy", "traditional"}

// Load builds the configuration from environment variables. When SUPRA_CONFIG
// names a YAML file its values override the environment.
func Load() (*Config, error) {
	cfg := &Config{
		ServerPort:     getEnvOrDefault("SERVER_PORT", "8091"),
		LogLevel:       getEnvOrDefault("LOG_LEVEL", "info"),
		SessionTTL:     getDurationOrDefault("SESSION_TTL", 30*time.Minute),
		SessionSecret:  os.Getenv("SESSION_SECRET"),
		AllowedOrigins: splitList(getEnvOrDefault("ALLOWED_ORIGINS", "http://localhost:8091")),
		Suggestions:    DefaultSuggestions,
		Backend: BackendConfig{
			BaseURL:            getEnvOrDefault("BACKEND_BASE_URL", "http://localhost:3000"),
			Timeout:            getDurationOrDefault("BACKEND_TIMEOUT", 15*time.Second),
			RestaurantCacheTTL: getDurationOrDefault("RESTAURANT_CACHE_TTL", 5*time.Minute),
			MaxLookups:         8,
		},
		Observability: ObservabilityConfig{
			ServiceName:  getEnvOrDefault("OTEL_SERVICE_NAME", "supra-web"),
			MetricsAddr:  getEnvOrDefault("METRICS_ADDR", ":9092"),
			PprofAddr:    os.Getenv("PPROF_ADDR"),
			OTLPEndpoint: getEnvOrDefault("OTEL_EXPORTER_ENDPOINT", "otel-collector:4318"),
		},
	}

	if path := os.Getenv("SUPRA_CONFIG"); path != "" {
		if err := cfg.overlayFile(path); err != nil {
			return nil, err
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) overlayFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}
	return nil
}

// Validate checks the values the server cannot start without.
func (c *Config) Validate() error {
	u, err := url.Parse(c.Backend.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("BACKEND_BASE_URL must be an absolute URL, got %q", c.Backend.BaseURL)
	}
	if c.Backend.Timeout <= 0 {
		return fmt.Errorf("BACKEND_TIMEOUT must be positive")
	}
	if c.SessionTTL <= 0 {
		return fmt.Errorf("SESSION_TTL must be positive")
	}
	if c.Backend.MaxLookups <= 0 {
		c.Backend.MaxLookups = 1
	}
	c.Backend.BaseURL = strings.TrimRight(c.Backend.BaseURL, "/")
	return nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
