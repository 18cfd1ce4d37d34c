package collector

import (
	"time"

	"StockCaster/internal/model"
)

// MockFetcher returns controllable fixed data for development and testing.
type MockFetcher struct {
	Price float64
	Data  []model.PricePoint
}

func (m *MockFetcher) Name() string { return "mock" }

func (m *MockFetcher) FetchDailyHistory(_ string, start, end time.Time) ([]model.PricePoint, error) {
	if m.Data != nil {
		return m.Data, nil
	}
	return generateMockHistory(m.Price, start, end), nil
}

func generateMockHistory(basePrice float64, start, end time.Time) []model.PricePoint {
	var points []model.PricePoint
	i := 0
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		// weekends have no trading data
		if d.Weekday() == time.Saturday || d.Weekday() == time.Sunday {
			continue
		}
		drift := basePrice * 0.0002 * float64(i)
		wobble := basePrice * 0.005 * float64(i%5-2)
		points = append(points, model.PricePoint{
			Date:     d,
			AdjClose: basePrice + drift + wobble,
		})
		i++
	}
	return points
}
