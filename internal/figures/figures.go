// Package figures renders the per-ticker diagnostic plots as PNG files.
package figures

import (
	"fmt"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"StockCaster/internal/model"
)

// ForecastPath returns the forecast figure location for a ticker.
func ForecastPath(dir, ticker string) string {
	return filepath.Join(dir, ticker+"_plot.png")
}

// ComponentsPath returns the components figure location for a ticker.
func ComponentsPath(dir, ticker string) string {
	return filepath.Join(dir, ticker+"_plot_components.png")
}

// RenderForecast draws the forecast curve with its lower and upper
// uncertainty bounds over the full prediction grid.
func RenderForecast(dir, ticker string, records []model.ForecastRecord) error {
	p := newTimePlot(fmt.Sprintf("%s forecast", ticker), "price")

	trend := make(plotter.XYs, len(records))
	lower := make(plotter.XYs, len(records))
	upper := make(plotter.XYs, len(records))
	for i, r := range records {
		x := float64(r.DS.Unix())
		trend[i] = plotter.XY{X: x, Y: r.Trend}
		lower[i] = plotter.XY{X: x, Y: r.Lower}
		upper[i] = plotter.XY{X: x, Y: r.Upper}
	}

	if err := plotutil.AddLines(p, "trend", trend, "lower", lower, "upper", upper); err != nil {
		return fmt.Errorf("add forecast lines: %w", err)
	}
	if err := p.Save(12*vg.Inch, 5*vg.Inch, ForecastPath(dir, ticker)); err != nil {
		return fmt.Errorf("save forecast figure: %w", err)
	}
	return nil
}

// RenderComponents draws the central trend alongside the width of the
// uncertainty interval, the model's two readable components.
func RenderComponents(dir, ticker string, records []model.ForecastRecord) error {
	p := newTimePlot(fmt.Sprintf("%s forecast components", ticker), "value")

	trend := make(plotter.XYs, len(records))
	spread := make(plotter.XYs, len(records))
	for i, r := range records {
		x := float64(r.DS.Unix())
		trend[i] = plotter.XY{X: x, Y: r.Trend}
		spread[i] = plotter.XY{X: x, Y: r.Upper - r.Lower}
	}

	if err := plotutil.AddLines(p, "trend", trend, "uncertainty", spread); err != nil {
		return fmt.Errorf("add component lines: %w", err)
	}
	if err := p.Save(12*vg.Inch, 5*vg.Inch, ComponentsPath(dir, ticker)); err != nil {
		return fmt.Errorf("save components figure: %w", err)
	}
	return nil
}

func newTimePlot(title, yLabel string) *plot.Plot {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "date"
	p.Y.Label.Text = yLabel
	p.X.Tick.Marker = plot.TimeTicks{Format: "2006-01-02"}
	p.Legend.Top = true
	return p
}
