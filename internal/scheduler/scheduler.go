package scheduler

import (
	"context"
	"fmt"
	"log"

	"github.com/robfig/cron/v3"

	"StockCaster/internal/forecast"
)

// Scheduler retrains and re-forecasts the configured tickers on a cron schedule.
type Scheduler struct {
	Cron    *cron.Cron
	Service *forecast.Service
	Tickers []string
	Horizon int
	Ctx     context.Context
}

// NewScheduler creates a new Scheduler.
func NewScheduler(ctx context.Context, svc *forecast.Service, tickers []string, horizon int) *Scheduler {
	return &Scheduler{
		Cron:    cron.New(cron.WithSeconds()),
		Service: svc,
		Tickers: tickers,
		Horizon: horizon,
		Ctx:     ctx,
	}
}

// Register registers the refresh task under the given cron expression.
func (s *Scheduler) Register(spec string) error {
	if _, err := s.Cron.AddFunc(spec, s.refreshTask); err != nil {
		return fmt.Errorf("register refresh task: %w", err)
	}
	return nil
}

// Start begins cron scheduling.
func (s *Scheduler) Start() {
	s.Cron.Start()
	log.Println("[INFO] scheduler started")
}

// Stop halts cron scheduling.
func (s *Scheduler) Stop() {
	s.Cron.Stop()
	log.Println("[INFO] scheduler stopped")
}

// RunNow executes the refresh task immediately.
func (s *Scheduler) RunNow() {
	s.refreshTask()
}

func (s *Scheduler) refreshTask() {
	for _, ticker := range s.Tickers {
		select {
		case <-s.Ctx.Done():
			log.Println("[INFO] refresh aborted, context cancelled")
			return
		default:
		}

		log.Printf("[INFO] refreshing %s", ticker)
		if err := s.Service.Train(ticker); err != nil {
			log.Printf("[WARN] refresh train %s: %v", ticker, err)
			continue
		}
		if _, err := s.Service.Predict(ticker, s.Horizon); err != nil {
			log.Printf("[WARN] refresh predict %s: %v", ticker, err)
		}
	}
}
