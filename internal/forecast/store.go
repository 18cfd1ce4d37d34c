package forecast

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	forecaster "github.com/aouyang1/go-forecaster"
)

// ErrModelNotFound is returned by Load when no artifact exists for a ticker.
var ErrModelNotFound = errors.New("model artifact not found")

// Store persists fitted models as per-ticker JSON artifacts under one directory.
// The directory must already exist.
type Store struct {
	Dir string
}

// NewStore creates a Store rooted at dir.
func NewStore(dir string) *Store {
	return &Store{Dir: dir}
}

// ArtifactPath returns the deterministic artifact location for a ticker.
func (s *Store) ArtifactPath(ticker string) string {
	return filepath.Join(s.Dir, ticker+".json")
}

// Save serializes the fitted model for the ticker, overwriting any prior artifact.
func (s *Store) Save(ticker string, m forecaster.Model) error {
	data, err := json.Marshal(m)
	if err != nil {
		return fmt.Errorf("marshal model for %s: %w", ticker, err)
	}
	if err := os.WriteFile(s.ArtifactPath(ticker), data, 0o644); err != nil {
		return fmt.Errorf("write artifact for %s: %w", ticker, err)
	}
	return nil
}

// Load reads back the fitted model for the ticker. A missing artifact is
// reported as ErrModelNotFound; a corrupt one fails with the decode error.
func (s *Store) Load(ticker string) (forecaster.Model, error) {
	var m forecaster.Model
	data, err := os.ReadFile(s.ArtifactPath(ticker))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return m, fmt.Errorf("%w: %s", ErrModelNotFound, ticker)
		}
		return m, fmt.Errorf("read artifact for %s: %w", ticker, err)
	}
	if err := json.Unmarshal(data, &m); err != nil {
		return m, fmt.Errorf("decode artifact for %s: %w", ticker, err)
	}
	return m, nil
}
