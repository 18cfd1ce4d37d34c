package model

import "time"

// PricePoint is one observed trading day: the date and its adjusted close.
type PricePoint struct {
	Date     time.Time
	AdjClose float64
}

// PriceSeries holds the full historical window fetched for one symbol.
type PriceSeries struct {
	Symbol    string
	Points    []PricePoint
	FetchedAt time.Time
}

// Columns splits the series into the two parallel slices the forecaster consumes.
func (s *PriceSeries) Columns() ([]time.Time, []float64) {
	t := make([]time.Time, len(s.Points))
	y := make([]float64, len(s.Points))
	for i, p := range s.Points {
		t[i] = p.Date
		y[i] = p.AdjClose
	}
	return t, y
}

// Start returns the date of the earliest point, or the zero time for an empty series.
func (s *PriceSeries) Start() time.Time {
	if len(s.Points) == 0 {
		return time.Time{}
	}
	return s.Points[0].Date
}

// End returns the date of the latest point, or the zero time for an empty series.
func (s *PriceSeries) End() time.Time {
	if len(s.Points) == 0 {
		return time.Time{}
	}
	return s.Points[len(s.Points)-1].Date
}
