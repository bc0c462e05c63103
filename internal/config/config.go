package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config represents the application configuration
type Config struct {
	Port      int    `yaml:"port"`
	LogLevel  string `yaml:"log_level"`
	JWTSecret string `yaml:"jwt_secret"`
	Database  struct {
		Driver string `yaml:"driver"`
		URL    string `yaml:"url"`
	} `yaml:"database"`
	Catalog struct {
		DishesFile      string `yaml:"dishes_file"`
		IngredientsFile string `yaml:"ingredients_file"`
	} `yaml:"catalog"`
	CORS struct {
		AllowOrigins []string `yaml:"allow_origins"`
	} `yaml:"cors"`
	MetricsConfig struct {
		Enabled bool   `yaml:"enabled"`
		Port    int    `yaml:"port"`
		Path    string `yaml:"path"`
	} `yaml:"metrics"`
}

// Default returns the configuration used when no file is given
func Default() *Config {
	cfg := &Config{
		Port:     8080,
		LogLevel: "info",
	}
	cfg.Database.Driver = "sqlite3"
	cfg.Database.URL = "partymenu.db"
	cfg.CORS.AllowOrigins = []string{"http://localhost:3000", "http://localhost:19006"}
	cfg.MetricsConfig.Enabled = true
	cfg.MetricsConfig.Port = 9090
	cfg.MetricsConfig.Path = "/metrics"
	return cfg
}

// Load reads the YAML file at path over the defaults, then applies
// environment overrides. A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
		case err != nil:
			return nil, fmt.Errorf("failed to read config: %w", err)
		default:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config: %w", err)
			}
		}
	}

	// .env is optional
	_ = godotenv.Load()

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() error {
	if v := os.Getenv("PARTYMENU_PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid PARTYMENU_PORT %q: %w", v, err)
		}
		c.Port = port
	}
	if v := os.Getenv("PARTYMENU_DATABASE_DRIVER"); v != "" {
		c.Database.Driver = v
	}
	if v := os.Getenv("PARTYMENU_DATABASE_URL"); v != "" {
		c.Database.URL = v
	}
	if v := os.Getenv("PARTYMENU_JWT_SECRET"); v != "" {
		c.JWTSecret = v
	}
	if v := os.Getenv("PARTYMENU_LOG_LEVEL"); v != "" {
		c.LogLevel = v
	}
	return nil
}

// Validate checks the configuration for values the service cannot run with
func (c *Config) Validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("port %d out of range", c.Port)
	}
	if c.MetricsConfig.Enabled && (c.MetricsConfig.Port < 1 || c.MetricsConfig.Port > 65535) {
		return fmt.Errorf("metrics port %d out of range", c.MetricsConfig.Port)
	}
	switch c.Database.Driver {
	case "sqlite3", "postgres":
	default:
		return fmt.Errorf("unsupported database driver %q", c.Database.Driver)
	}
	if (c.Catalog.DishesFile == "") != (c.Catalog.IngredientsFile == "") {
		return errors.New("catalog dishes_file and ingredients_file must be set together")
	}
	return nil
}
