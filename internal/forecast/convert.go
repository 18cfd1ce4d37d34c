package forecast

import "StockCaster/internal/model"

// Convert flattens forecast records into a mapping from MM/DD/YYYY date
// string to the trend value for that date. An empty input yields an empty map.
func Convert(records []model.ForecastRecord) map[string]float64 {
	out := make(map[string]float64, len(records))
	for _, r := range records {
		out[r.DS.Format("01/02/2006")] = r.Trend
	}
	return out
}
