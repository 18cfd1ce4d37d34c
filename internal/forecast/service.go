package forecast

import (
	"fmt"
	"log"
	"time"

	forecaster "github.com/aouyang1/go-forecaster"
	"github.com/aouyang1/go-forecaster/timedataset"

	"StockCaster/internal/calculator"
	"StockCaster/internal/collector"
	"StockCaster/internal/figures"
	"StockCaster/internal/model"
	"StockCaster/internal/recorder"
)

// Service wires the acquisition, fit, persistence, and rendering stages
// of the pipeline together.
type Service struct {
	Fetcher   collector.Fetcher
	Store     *Store
	Recorder  recorder.Recorder
	FigureDir string
	StartDate time.Time

	// Now is the clock used to bound the history window and the forecast
	// grid. Overridable in tests; defaults to time.Now.
	Now func() time.Time
}

// NewService creates a Service with the real clock.
func NewService(fetcher collector.Fetcher, store *Store, rec recorder.Recorder, figureDir string, startDate time.Time) *Service {
	return &Service{
		Fetcher:   fetcher,
		Store:     store,
		Recorder:  rec,
		FigureDir: figureDir,
		StartDate: startDate,
		Now:       time.Now,
	}
}

func (s *Service) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// newForecastOptions builds the fit options for a daily price series. The
// library's defaults assume intra-day sampling: daily seasonality orders are
// meaningless on a midnight-aligned grid and make the regression singular, and
// outlier options must be present before Fit runs.
func newForecastOptions() *forecaster.Options {
	opt := forecaster.NewDefaultOptions()
	opt.OutlierOptions = forecaster.NewOutlierOptions()
	opt.SeriesOptions.DailyOrders = 0
	opt.ResidualOptions.DailyOrders = 0
	return opt
}

// Train fetches the full daily history for the ticker from the configured
// start date through today, fits the forecasting model on it, and writes the
// fitted model to the per-ticker artifact, replacing any prior fit.
func (s *Service) Train(ticker string) error {
	end := s.now()
	points, err := s.Fetcher.FetchDailyHistory(ticker, s.StartDate, end)
	if err != nil {
		return fmt.Errorf("fetch history for %s: %w", ticker, err)
	}
	if len(points) == 0 {
		return fmt.Errorf("no price history for %s", ticker)
	}
	series := &model.PriceSeries{Symbol: ticker, Points: points, FetchedAt: end}

	t, y := series.Columns()
	td, err := timedataset.NewUnivariateDataset(t, y)
	if err != nil {
		return fmt.Errorf("build training dataset for %s: %w", ticker, err)
	}
	f, err := forecaster.New(newForecastOptions())
	if err != nil {
		return fmt.Errorf("init forecaster: %w", err)
	}
	if err := f.Fit(td); err != nil {
		return fmt.Errorf("fit model for %s: %w", ticker, err)
	}

	if err := s.Store.Save(ticker, f.Model()); err != nil {
		return err
	}

	s.recordTraining(series)
	log.Printf("[INFO] trained %s on %d points (%s ~ %s), artifact: %s",
		ticker, len(points),
		series.Start().Format("2006-01-02"), series.End().Format("2006-01-02"),
		s.Store.ArtifactPath(ticker))
	return nil
}

// Predict loads the ticker's persisted model, runs inference over the dense
// daily grid from the start date through today+days, renders both diagnostic
// figures, and returns the last `days` records. A ticker that was never
// trained yields ErrModelNotFound.
func (s *Service) Predict(ticker string, days int) ([]model.ForecastRecord, error) {
	if days <= 0 {
		return nil, fmt.Errorf("horizon must be positive, got %d", days)
	}

	fm, err := s.Store.Load(ticker)
	if err != nil {
		return nil, err
	}
	f, err := forecaster.NewFromModel(fm)
	if err != nil {
		return nil, fmt.Errorf("restore model for %s: %w", ticker, err)
	}

	grid := DateGrid(s.StartDate, s.now().AddDate(0, 0, days))
	res, err := f.Predict(grid)
	if err != nil {
		return nil, fmt.Errorf("predict %s: %w", ticker, err)
	}
	if len(res.T) == 0 {
		return nil, fmt.Errorf("predict %s: empty forecast", ticker)
	}

	records := make([]model.ForecastRecord, len(res.T))
	for i := range res.T {
		records[i] = model.ForecastRecord{
			DS:    res.T[i],
			Trend: res.Forecast[i],
			Lower: res.Lower[i],
			Upper: res.Upper[i],
		}
	}

	if err := figures.RenderForecast(s.FigureDir, ticker, records); err != nil {
		return nil, fmt.Errorf("render forecast figure: %w", err)
	}
	if err := figures.RenderComponents(s.FigureDir, ticker, records); err != nil {
		return nil, fmt.Errorf("render components figure: %w", err)
	}

	if len(records) < days {
		return nil, fmt.Errorf("predict %s: forecast shorter than horizon (%d < %d)", ticker, len(records), days)
	}
	tail := records[len(records)-days:]
	s.recordForecast(ticker, days, tail)
	return tail, nil
}

// recordTraining writes a best-effort run-history row. Indicator failures fall
// back to zero values rather than blocking the pipeline.
func (s *Service) recordTraining(series *model.PriceSeries) {
	if s.Recorder == nil {
		return
	}
	run := &recorder.TrainingRun{
		Ticker:       series.Symbol,
		Points:       len(series.Points),
		WindowStart:  series.Start(),
		WindowEnd:    series.End(),
		LastClose:    series.Points[len(series.Points)-1].AdjClose,
		ArtifactPath: s.Store.ArtifactPath(series.Symbol),
	}
	if ma, err := calculator.CalculateMA200(series.Points); err == nil {
		run.MA200 = ma
	}
	if rsi, err := calculator.CalculateRSI(series.Points, 14); err == nil {
		run.RSI14 = rsi
	}
	if h, l, err := calculator.Calculate52WeekRange(series.Points); err == nil {
		run.High52w = h
		run.Low52w = l
	}
	if err := s.Recorder.RecordTraining(run); err != nil {
		log.Printf("[WARN] record training run: %v", err)
	}
}

func (s *Service) recordForecast(ticker string, horizon int, tail []model.ForecastRecord) {
	if s.Recorder == nil || len(tail) == 0 {
		return
	}
	run := &recorder.ForecastRun{
		Ticker:     ticker,
		Horizon:    horizon,
		FirstDate:  tail[0].DS,
		LastDate:   tail[len(tail)-1].DS,
		FirstTrend: tail[0].Trend,
		LastTrend:  tail[len(tail)-1].Trend,
	}
	if err := s.Recorder.RecordForecast(run); err != nil {
		log.Printf("[WARN] record forecast run: %v", err)
	}
}
