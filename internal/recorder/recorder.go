package recorder

import "time"

// TrainingRun captures one model fit: the history window trained over and
// summary indicators of that history.
type TrainingRun struct {
	Ticker       string
	Points       int
	WindowStart  time.Time
	WindowEnd    time.Time
	LastClose    float64
	MA200        float64
	RSI14        float64
	High52w      float64
	Low52w       float64
	ArtifactPath string
}

// ForecastRun captures one prediction: the requested horizon and the
// boundary values of the returned window.
type ForecastRun struct {
	Ticker     string
	Horizon    int
	FirstDate  time.Time
	LastDate   time.Time
	FirstTrend float64
	LastTrend  float64
}

// Recorder persists pipeline run history for analysis.
type Recorder interface {
	RecordTraining(run *TrainingRun) error
	RecordForecast(run *ForecastRun) error
	Close() error
}
