package model

import "time"

// ForecastRecord is one row of model output: a date, the model's central
// trend estimate for it, and the uncertainty bounds around that estimate.
type ForecastRecord struct {
	DS    time.Time `json:"ds"`
	Trend float64   `json:"trend"`
	Lower float64   `json:"lower"`
	Upper float64   `json:"upper"`
}
