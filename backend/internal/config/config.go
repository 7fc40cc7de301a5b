package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"gopkg.in/yaml.v2"

	"github.com/ps-vitor/wglink-sys/backend/internal/scraping/collectors/wgzimmer"
)

// DefaultDir is where the binaries look for their YAML files.
const DefaultDir = "configs"

type Config struct {
	App      AppConfig      `yaml:"app"`
	Scraping ScrapingConfig `yaml:"scraping"`
}

type AppConfig struct {
	Name            string        `yaml:"name"`
	Env             string        `yaml:"env"`
	Debug           bool          `yaml:"debug"`
	Port            int           `yaml:"port"`
	Timezone        string        `yaml:"timezone"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
}

type ScrapingConfig struct {
	Wgzimmer WgzimmerConfig `yaml:"wgzimmer"`
}

type WgzimmerConfig struct {
	BaseURL   string             `yaml:"base_url"`
	Endpoints map[string]string  `yaml:"endpoints"`
	UserAgent string             `yaml:"user_agent"`
	Timeout   time.Duration      `yaml:"timeout"`
	Selectors wgzimmer.Selectors `yaml:"selectors"`
}

// ListingPath returns the path template for a listing page.
func (w WgzimmerConfig) ListingPath() string {
	if p := w.Endpoints["listing"]; p != "" {
		return p
	}
	return "/wglink/en/%s"
}

// Default returns the configuration used when no file sets a value.
func Default() *Config {
	return &Config{
		App: AppConfig{
			Name:            "wglink-sys",
			Env:             "development",
			Port:            8080,
			ShutdownTimeout: 10 * time.Second,
		},
		Scraping: ScrapingConfig{
			Wgzimmer: WgzimmerConfig{
				BaseURL:   "https://www.wgzimmer.ch",
				Endpoints: map[string]string{"listing": "/wglink/en/%s"},
				Timeout:   15 * time.Second,
				Selectors: wgzimmer.DefaultSelectors(),
			},
		},
	}
}

// LoadConfig reads app.yaml and scraping.yaml from dir, then applies
// environment overrides. A missing file keeps the defaults for its section.
func LoadConfig(dir string) (*Config, error) {
	cfg := Default()

	// Carrega arquivo YAML base
	if err := loadYAML(filepath.Join(dir, "app.yaml"), cfg); err != nil {
		return nil, err
	}

	// Carrega configurações específicas de scraping
	if err := loadYAML(filepath.Join(dir, "scraping.yaml"), &cfg.Scraping); err != nil {
		return nil, err
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func loadYAML(path string, out interface{}) error {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decoding %s: %w", path, err)
	}
	return nil
}

func (c *Config) applyEnv() error {
	if v := os.Getenv("APP_ENV"); v != "" {
		c.App.Env = v
	}
	if v := os.Getenv("APP_PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("APP_PORT: %w", err)
		}
		c.App.Port = port
	}
	if v := os.Getenv("APP_DEBUG"); v != "" {
		debug, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("APP_DEBUG: %w", err)
		}
		c.App.Debug = debug
	}
	if v := os.Getenv("WGZIMMER_BASE_URL"); v != "" {
		c.Scraping.Wgzimmer.BaseURL = v
	}
	if v := os.Getenv("WGZIMMER_USER_AGENT"); v != "" {
		c.Scraping.Wgzimmer.UserAgent = v
	}
	if v := os.Getenv("WGZIMMER_TIMEOUT"); v != "" {
		timeout, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("WGZIMMER_TIMEOUT: %w", err)
		}
		c.Scraping.Wgzimmer.Timeout = timeout
	}
	return nil
}

func (c *Config) Validate() error {
	if c.App.Port <= 0 || c.App.Port > 65535 {
		return fmt.Errorf("invalid port %d", c.App.Port)
	}
	w := c.Scraping.Wgzimmer
	if w.BaseURL == "" {
		return errors.New("wgzimmer base_url is required")
	}
	if w.Selectors.Block == "" || w.Selectors.Heading == "" || w.Selectors.Value == "" {
		return errors.New("wgzimmer selectors block, heading and value are required")
	}
	return nil
}

// Addr is the listen address for the HTTP server.
func (c *Config) Addr() string {
	return ":" + strconv.Itoa(c.App.Port)
}
