package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("load with missing file: %v", err)
	}
	if cfg.DataSource.Symbol != "MSFT" {
		t.Errorf("default symbol = %q, want MSFT", cfg.DataSource.Symbol)
	}
	if cfg.History.StartDate != "2020-01-01" {
		t.Errorf("default start date = %q, want 2020-01-01", cfg.History.StartDate)
	}
	if cfg.Paths.ModelDir != "models" || cfg.Paths.FigureDir != "figures" {
		t.Errorf("default dirs = %q, %q", cfg.Paths.ModelDir, cfg.Paths.FigureDir)
	}
	if cfg.Forecast.Horizon != 7 {
		t.Errorf("default horizon = %d, want 7", cfg.Forecast.Horizon)
	}
	if len(cfg.Schedule.Tickers) != 1 || cfg.Schedule.Tickers[0] != "MSFT" {
		t.Errorf("default schedule tickers = %v", cfg.Schedule.Tickers)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestLoad_YAMLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
data_source:
  symbol: AAPL
history:
  start_date: "2021-06-01"
paths:
  model_dir: /var/lib/stockcaster/models
forecast:
  horizon: 14
schedule:
  tickers: [AAPL, MSFT]
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.DataSource.Symbol != "AAPL" {
		t.Errorf("symbol = %q, want AAPL", cfg.DataSource.Symbol)
	}
	if cfg.Forecast.Horizon != 14 {
		t.Errorf("horizon = %d, want 14", cfg.Forecast.Horizon)
	}
	if cfg.Paths.FigureDir != "figures" {
		t.Errorf("unset figure_dir should default, got %q", cfg.Paths.FigureDir)
	}
	if len(cfg.Schedule.Tickers) != 2 {
		t.Errorf("tickers = %v", cfg.Schedule.Tickers)
	}

	start, err := cfg.StartDate()
	if err != nil {
		t.Fatalf("start date: %v", err)
	}
	if start.Year() != 2021 || start.Month() != 6 {
		t.Errorf("start = %v", start)
	}
}

func TestValidate_BadStartDate(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatal(err)
	}
	cfg.History.StartDate = "01/01/2020"
	if err := cfg.Validate(); err == nil {
		t.Error("expected validation error for malformed start date")
	}
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("TICKER", "NVDA")
	t.Setenv("MODEL_DIR", "/tmp/models")
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.DataSource.Symbol != "NVDA" {
		t.Errorf("symbol = %q, want NVDA from env", cfg.DataSource.Symbol)
	}
	if cfg.Paths.ModelDir != "/tmp/models" {
		t.Errorf("model dir = %q, want /tmp/models from env", cfg.Paths.ModelDir)
	}
}
