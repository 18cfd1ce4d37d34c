package recorder

import (
	"path/filepath"
	"testing"
	"time"
)

func TestSQLiteRecorder_RoundTrip(t *testing.T) {
	r, err := NewSQLiteRecorder(filepath.Join(t.TempDir(), "runs.db"))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer r.Close()

	train := &TrainingRun{
		Ticker:       "MSFT",
		Points:       1009,
		WindowStart:  time.Date(2020, 1, 2, 0, 0, 0, 0, time.UTC),
		WindowEnd:    time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC),
		LastClose:    376.04,
		MA200:        340.12,
		RSI14:        61.3,
		High52w:      384.3,
		Low52w:       219.35,
		ArtifactPath: "models/MSFT.json",
	}
	if err := r.RecordTraining(train); err != nil {
		t.Fatalf("record training: %v", err)
	}

	fc := &ForecastRun{
		Ticker:     "MSFT",
		Horizon:    7,
		FirstDate:  time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC),
		LastDate:   time.Date(2024, 1, 9, 0, 0, 0, 0, time.UTC),
		FirstTrend: 376.8,
		LastTrend:  379.1,
	}
	if err := r.RecordForecast(fc); err != nil {
		t.Fatalf("record forecast: %v", err)
	}

	var n int
	if err := r.db.QueryRow("SELECT COUNT(*) FROM training_runs WHERE ticker = ?", "MSFT").Scan(&n); err != nil {
		t.Fatalf("count training runs: %v", err)
	}
	if n != 1 {
		t.Errorf("training_runs count = %d, want 1", n)
	}
	if err := r.db.QueryRow("SELECT COUNT(*) FROM forecast_runs WHERE horizon = 7").Scan(&n); err != nil {
		t.Fatalf("count forecast runs: %v", err)
	}
	if n != 1 {
		t.Errorf("forecast_runs count = %d, want 1", n)
	}
}
