package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds all application configuration.
type Config struct {
	DataSource struct {
		BaseURL string `yaml:"base_url"`
		Symbol  string `yaml:"symbol"`
	} `yaml:"data_source"`
	History struct {
		StartDate string `yaml:"start_date"`
	} `yaml:"history"`
	Paths struct {
		ModelDir  string `yaml:"model_dir"`
		FigureDir string `yaml:"figure_dir"`
	} `yaml:"paths"`
	Forecast struct {
		Horizon int `yaml:"horizon"`
	} `yaml:"forecast"`
	Schedule struct {
		RefreshCron string   `yaml:"refresh_cron"`
		Tickers     []string `yaml:"tickers"`
	} `yaml:"schedule"`
	Database struct {
		SQLitePath string `yaml:"sqlite_path"`
	} `yaml:"database"`
	Proxy string `yaml:"proxy"`
}

// Load reads config from a YAML file, then applies environment variable overrides.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// Environment variable overrides
	if v := os.Getenv("YAHOO_BASE_URL"); v != "" {
		cfg.DataSource.BaseURL = v
	}
	if v := os.Getenv("TICKER"); v != "" {
		cfg.DataSource.Symbol = v
	}
	if v := os.Getenv("MODEL_DIR"); v != "" {
		cfg.Paths.ModelDir = v
	}
	if v := os.Getenv("FIGURE_DIR"); v != "" {
		cfg.Paths.FigureDir = v
	}
	if v := os.Getenv("SQLITE_PATH"); v != "" {
		cfg.Database.SQLitePath = v
	}
	if v := os.Getenv("HTTPS_PROXY"); v != "" {
		cfg.Proxy = v
	}

	// Defaults
	if cfg.DataSource.Symbol == "" {
		cfg.DataSource.Symbol = "MSFT"
	}
	if cfg.History.StartDate == "" {
		cfg.History.StartDate = "2020-01-01"
	}
	if cfg.Paths.ModelDir == "" {
		cfg.Paths.ModelDir = "models"
	}
	if cfg.Paths.FigureDir == "" {
		cfg.Paths.FigureDir = "figures"
	}
	if cfg.Forecast.Horizon == 0 {
		cfg.Forecast.Horizon = 7
	}
	if cfg.Schedule.RefreshCron == "" {
		cfg.Schedule.RefreshCron = "0 0 22 * * 1-5"
	}
	if len(cfg.Schedule.Tickers) == 0 {
		cfg.Schedule.Tickers = []string{cfg.DataSource.Symbol}
	}

	return cfg, nil
}

// StartDate parses the configured history start date.
func (c *Config) StartDate() (time.Time, error) {
	t, err := time.Parse("2006-01-02", c.History.StartDate)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse history.start_date: %w", err)
	}
	return t, nil
}

// Validate checks that all required fields are set and well-formed.
func (c *Config) Validate() error {
	if c.Paths.ModelDir == "" {
		return fmt.Errorf("paths.model_dir is required")
	}
	if c.Paths.FigureDir == "" {
		return fmt.Errorf("paths.figure_dir is required")
	}
	if c.Forecast.Horizon <= 0 {
		return fmt.Errorf("forecast.horizon must be positive")
	}
	if _, err := c.StartDate(); err != nil {
		return err
	}
	return nil
}
