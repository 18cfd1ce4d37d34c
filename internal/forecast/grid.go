package forecast

import "time"

// DateGrid returns a dense daily sequence of midnight-UTC timestamps from
// start through end, both inclusive. Returns nil if end precedes start.
func DateGrid(start, end time.Time) []time.Time {
	start = midnightUTC(start)
	end = midnightUTC(end)
	if end.Before(start) {
		return nil
	}
	n := int(end.Sub(start).Hours()/24) + 1
	grid := make([]time.Time, 0, n)
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		grid = append(grid, d)
	}
	return grid
}

func midnightUTC(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
