package recorder

import (
	"database/sql"
	"fmt"
	"log"
	"sync"
	"time"

	_ "modernc.org/sqlite"
)

// SQLiteRecorder persists run history to a SQLite database.
type SQLiteRecorder struct {
	db *sql.DB
	mu sync.Mutex
}

// NewSQLiteRecorder opens (or creates) the SQLite database and runs migrations.
func NewSQLiteRecorder(dbPath string) (*SQLiteRecorder, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	// WAL mode for better concurrent read performance.
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	r := &SQLiteRecorder{db: db}
	if err := r.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	log.Printf("[INFO] sqlite recorder opened: %s", dbPath)
	return r, nil
}

func (r *SQLiteRecorder) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS training_runs (
			id            INTEGER PRIMARY KEY AUTOINCREMENT,
			timestamp     INTEGER NOT NULL,
			ticker        TEXT NOT NULL,
			points        INTEGER,
			window_start  INTEGER,
			window_end    INTEGER,
			last_close    REAL,
			ma200         REAL,
			rsi14         REAL,
			high_52w      REAL,
			low_52w       REAL,
			artifact_path TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_training_ticker_ts ON training_runs(ticker, timestamp)`,

		`CREATE TABLE IF NOT EXISTS forecast_runs (
			id          INTEGER PRIMARY KEY AUTOINCREMENT,
			timestamp   INTEGER NOT NULL,
			ticker      TEXT NOT NULL,
			horizon     INTEGER,
			first_date  INTEGER,
			last_date   INTEGER,
			first_trend REAL,
			last_trend  REAL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_forecast_ticker_ts ON forecast_runs(ticker, timestamp)`,
	}

	for _, s := range stmts {
		if _, err := r.db.Exec(s); err != nil {
			return fmt.Errorf("exec %q: %w", s[:40], err)
		}
	}
	return nil
}

func (r *SQLiteRecorder) RecordTraining(run *TrainingRun) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, err := r.db.Exec(`INSERT INTO training_runs
		(timestamp, ticker, points, window_start, window_end,
		 last_close, ma200, rsi14, high_52w, low_52w, artifact_path)
		VALUES (?,?,?,?,?,?,?,?,?,?,?)`,
		time.Now().Unix(), run.Ticker, run.Points,
		run.WindowStart.Unix(), run.WindowEnd.Unix(),
		run.LastClose, run.MA200, run.RSI14, run.High52w, run.Low52w,
		run.ArtifactPath,
	)
	return err
}

func (r *SQLiteRecorder) RecordForecast(run *ForecastRun) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, err := r.db.Exec(`INSERT INTO forecast_runs
		(timestamp, ticker, horizon, first_date, last_date, first_trend, last_trend)
		VALUES (?,?,?,?,?,?,?)`,
		time.Now().Unix(), run.Ticker, run.Horizon,
		run.FirstDate.Unix(), run.LastDate.Unix(),
		run.FirstTrend, run.LastTrend,
	)
	return err
}

func (r *SQLiteRecorder) Close() error {
	log.Println("[INFO] closing sqlite recorder")
	return r.db.Close()
}
