package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Port        int
	APIKey      string
	LogPath     string
	SourceID    string
	Upstream    UpstreamConfig
	Healthcheck HealthcheckConfig
	Sources     map[string]*SourceConfig
}

type UpstreamConfig struct {
	TimeoutMS int
	ProxyURL  string
}

type HealthcheckConfig struct {
	Cron     string
	Interval time.Duration
}

// SourceConfig describes one upstream listing provider. Providers are
// config, not code: a new source is a YAML file under config/sources.
type SourceConfig struct {
	ID         string            `yaml:"id"`
	Name       string            `yaml:"name"`
	BaseURL    string            `yaml:"base_url"`
	Endpoints  map[string]string `yaml:"endpoints"`
	AuthHeader string            `yaml:"auth_header"`
	PageLimit  int               `yaml:"page_limit"`
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Port:     getEnvInt("PORT", 8080),
		APIKey:   os.Getenv("EASYBROKER_API_KEY"),
		LogPath:  getEnv("LOG_PATH", "propfinder.log"),
		SourceID: getEnv("SOURCE_ID", "easybroker"),
		Upstream: UpstreamConfig{
			TimeoutMS: getEnvInt("UPSTREAM_TIMEOUT_MS", 15000),
			ProxyURL:  os.Getenv("UPSTREAM_PROXY_URL"),
		},
		Healthcheck: HealthcheckConfig{
			Cron: os.Getenv("HEALTHCHECK_CRON"),
		},
		Sources: make(map[string]*SourceConfig),
	}

	if interval := os.Getenv("HEALTHCHECK_INTERVAL"); interval != "" {
		d, err := time.ParseDuration(interval)
		if err == nil {
			cfg.Healthcheck.Interval = d
		}
	}

	if err := cfg.loadSourceConfigs(); err != nil {
		return nil, err
	}

	if _, ok := cfg.Sources[cfg.SourceID]; !ok {
		cfg.Sources[cfg.SourceID] = defaultSource(cfg.SourceID)
	}

	return cfg, nil
}

// Source returns the active upstream provider definition.
func (c *Config) Source() *SourceConfig {
	return c.Sources[c.SourceID]
}

func (c *Config) loadSourceConfigs() error {
	configDir := "config/sources"
	entries, err := os.ReadDir(configDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".yaml" {
			continue
		}

		path := filepath.Join(configDir, entry.Name())
		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}

		var source SourceConfig
		if err := yaml.Unmarshal(data, &source); err != nil {
			return fmt.Errorf("parse %s: %w", path, err)
		}
		if source.ID == "" {
			return fmt.Errorf("%s: source has no id", path)
		}

		applySourceDefaults(&source)
		c.Sources[source.ID] = &source
	}

	return nil
}

func defaultSource(id string) *SourceConfig {
	s := &SourceConfig{
		ID:      id,
		Name:    "EasyBroker",
		BaseURL: "https://api.easybroker.com/v1",
		Endpoints: map[string]string{
			"properties": "/properties",
		},
	}
	applySourceDefaults(s)
	return s
}

func applySourceDefaults(s *SourceConfig) {
	if s.AuthHeader == "" {
		s.AuthHeader = "X-Authorization"
	}
	if s.PageLimit <= 0 {
		s.PageLimit = 50
	}
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	if val := os.Getenv(key); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			return i
		}
	}
	return defaultVal
}
