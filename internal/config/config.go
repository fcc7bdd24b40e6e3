// Package config reads environment configuration and the static lookup
// tables the pipeline consumes.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/orghire/pulse/internal/domain"
	"github.com/orghire/pulse/internal/modules/metrics"
)

// Config holds application configuration
type Config struct {
	LogLevel     string
	LogPretty    bool
	LookupsPath  string
	DefaultRange string
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists
	_ = godotenv.Load()

	cfg := &Config{
		LogLevel:     getEnv("LOG_LEVEL", "info"),
		LogPretty:    getEnvAsBool("LOG_PRETTY", false),
		LookupsPath:  getEnv("LOOKUPS_PATH", ""),
		DefaultRange: getEnv("DEFAULT_RANGE", string(domain.Range4Weeks)),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks if required configuration is present
func (c *Config) Validate() error {
	if !domain.TimeRange(c.DefaultRange).Valid() {
		return fmt.Errorf("DEFAULT_RANGE %q is not a supported time range", c.DefaultRange)
	}
	return nil
}

// lookupsFile is the on-disk YAML shape of the lookup tables.
type lookupsFile struct {
	PeerGroups    map[string][]string `yaml:"peer_groups"`
	CategoryNames map[string]string   `yaml:"category_names"`
}

// LoadLookups reads the peer-group and category display tables from a
// YAML file. An empty path yields empty tables, which the engine treats
// as "no peers configured, raw category ids".
func LoadLookups(path string) (metrics.Lookups, error) {
	if path == "" {
		return metrics.Lookups{}, nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return metrics.Lookups{}, fmt.Errorf("reading lookups file: %w", err)
	}

	var file lookupsFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return metrics.Lookups{}, fmt.Errorf("parsing lookups file %s: %w", path, err)
	}

	return metrics.Lookups{
		PeerGroups:    file.PeerGroups,
		CategoryNames: file.CategoryNames,
	}, nil
}

// Helper functions
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}
