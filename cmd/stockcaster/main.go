package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"StockCaster/internal/collector"
	"StockCaster/internal/config"
	"StockCaster/internal/forecast"
	"StockCaster/internal/recorder"
	"StockCaster/internal/scheduler"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	if err := newRootCmd().Execute(); err != nil {
		log.Fatalf("[FATAL] %v", err)
	}
}

// app bundles everything a command needs after config is loaded.
type app struct {
	cfg     *config.Config
	service *forecast.Service
	close   func()
}

func buildApp(cfgPath string) (*app, error) {
	if v := os.Getenv("CONFIG_PATH"); v != "" && cfgPath == "" {
		cfgPath = v
	}
	if cfgPath == "" {
		cfgPath = "configs/config.yaml"
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}
	start, err := cfg.StartDate()
	if err != nil {
		return nil, err
	}

	fetcher := collector.NewYahooFetcher(cfg.DataSource.BaseURL, cfg.Proxy)
	log.Printf("[INFO] data source: %s", fetcher.Name())

	var rec recorder.Recorder
	closer := func() {}
	if cfg.Database.SQLitePath != "" {
		sr, err := recorder.NewSQLiteRecorder(cfg.Database.SQLitePath)
		if err != nil {
			log.Printf("[WARN] init sqlite recorder failed, using noop: %v", err)
			rec = recorder.NewNoopRecorder()
		} else {
			rec = sr
			closer = func() { sr.Close() }
		}
	} else {
		rec = recorder.NewNoopRecorder()
	}

	store := forecast.NewStore(cfg.Paths.ModelDir)
	svc := forecast.NewService(fetcher, store, rec, cfg.Paths.FigureDir, start)
	return &app{cfg: cfg, service: svc, close: closer}, nil
}

func newRootCmd() *cobra.Command {
	var (
		cfgPath string
		ticker  string
		days    int
	)

	root := &cobra.Command{
		Use:          "stockcaster",
		Short:        "Train a price forecasting model and print its short-horizon forecast",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := buildApp(cfgPath)
			if err != nil {
				return err
			}
			defer a.close()

			symbol := resolveTicker(ticker, a.cfg)
			if err := a.service.Train(symbol); err != nil {
				return err
			}
			records, err := a.service.Predict(symbol, days)
			if err != nil {
				return err
			}
			return printPredictions(forecast.Convert(records))
		},
	}
	root.PersistentFlags().StringVar(&cfgPath, "config", "", "path to YAML config file")
	root.Flags().StringVar(&ticker, "ticker", "", "stock ticker (default from config, MSFT)")
	root.Flags().IntVar(&days, "days", 7, "number of days to predict")

	root.AddCommand(newTrainCmd(&cfgPath))
	root.AddCommand(newPredictCmd(&cfgPath))
	root.AddCommand(newServeCmd(&cfgPath))
	return root
}

func newTrainCmd(cfgPath *string) *cobra.Command {
	var ticker string
	cmd := &cobra.Command{
		Use:   "train",
		Short: "Fetch history, fit the model, and persist the artifact",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := buildApp(*cfgPath)
			if err != nil {
				return err
			}
			defer a.close()
			return a.service.Train(resolveTicker(ticker, a.cfg))
		},
	}
	cmd.Flags().StringVar(&ticker, "ticker", "", "stock ticker (default from config, MSFT)")
	return cmd
}

func newPredictCmd(cfgPath *string) *cobra.Command {
	var (
		ticker string
		days   int
	)
	cmd := &cobra.Command{
		Use:   "predict",
		Short: "Forecast from a previously trained artifact",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := buildApp(*cfgPath)
			if err != nil {
				return err
			}
			defer a.close()

			symbol := resolveTicker(ticker, a.cfg)
			records, err := a.service.Predict(symbol, days)
			if errors.Is(err, forecast.ErrModelNotFound) {
				log.Printf("[WARN] no trained model for %s, run train first", symbol)
				return err
			}
			if err != nil {
				return err
			}
			return printPredictions(forecast.Convert(records))
		},
	}
	cmd.Flags().StringVar(&ticker, "ticker", "", "stock ticker (default from config, MSFT)")
	cmd.Flags().IntVar(&days, "days", 7, "number of days to predict")
	return cmd
}

func newServeCmd(cfgPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Retrain and re-forecast the configured tickers on a cron schedule",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := buildApp(*cfgPath)
			if err != nil {
				return err
			}
			defer a.close()

			ctx, cancel := context.WithCancel(context.Background())
			defer cancel()

			sched := scheduler.NewScheduler(ctx, a.service, a.cfg.Schedule.Tickers, a.cfg.Forecast.Horizon)
			if err := sched.Register(a.cfg.Schedule.RefreshCron); err != nil {
				return err
			}
			sched.Start()
			defer sched.Stop()

			if os.Getenv("RUN_ON_START") == "true" {
				log.Println("[INFO] RUN_ON_START enabled, executing refresh now")
				go sched.RunNow()
			}

			log.Printf("[INFO] serving %v on %q, press Ctrl+C to stop", a.cfg.Schedule.Tickers, a.cfg.Schedule.RefreshCron)
			sigCh := make(chan os.Signal, 1)
			signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
			<-sigCh
			log.Println("[INFO] shutdown signal received, stopping...")
			return nil
		},
	}
}

func resolveTicker(flagValue string, cfg *config.Config) string {
	if flagValue != "" {
		return flagValue
	}
	return cfg.DataSource.Symbol
}

func printPredictions(preds map[string]float64) error {
	data, err := json.Marshal(preds)
	if err != nil {
		return fmt.Errorf("encode predictions: %w", err)
	}
	fmt.Println(string(data))
	return nil
}
