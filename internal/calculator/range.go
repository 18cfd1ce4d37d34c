package calculator

import (
	"errors"
	"math"

	"StockCaster/internal/model"
)

// Calculate52WeekRange scans the most recent 252 trading days and returns the
// high and low of the adjusted close.
func Calculate52WeekRange(points []model.PricePoint) (high, low float64, err error) {
	if len(points) == 0 {
		return 0, 0, errors.New("no daily points provided")
	}
	n := len(points)
	start := n - 252
	if start < 0 {
		start = 0
	}
	high = math.Inf(-1)
	low = math.Inf(1)
	for i := start; i < n; i++ {
		if points[i].AdjClose > high {
			high = points[i].AdjClose
		}
		if points[i].AdjClose < low {
			low = points[i].AdjClose
		}
	}
	return high, low, nil
}
