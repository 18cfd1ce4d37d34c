package collector

import (
	"time"

	"StockCaster/internal/model"
)

// Fetcher defines the interface for fetching historical market data.
type Fetcher interface {
	// FetchDailyHistory returns the daily adjusted-close series for the
	// symbol covering [start, end], oldest first.
	FetchDailyHistory(symbol string, start, end time.Time) ([]model.PricePoint, error)
	Name() string
}
