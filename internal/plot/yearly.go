package plot

import (
	"io"

	"fuelstat/internal/analysis"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

var (
	colorConsumption = drawing.ColorFromHex("4F46E5")
	colorEmissions   = drawing.ColorFromHex("10B981")
)

// Yearly draws the average fuel consumption and scaled emissions per year.
// Years whose mean is undefined are left out of that line.
func (r *Renderer) Yearly(w io.Writer, rep *analysis.Report) error {
	var cx, cy, ex, ey []float64
	for _, y := range rep.Yearly {
		if y.HasConsumption() {
			cx = append(cx, float64(y.Year))
			cy = append(cy, y.LitersPer100km)
		}
		if y.HasEmissions() {
			ex = append(ex, float64(y.Year))
			ey = append(ey, y.ScaledGramsPerKm(rep.EmissionsScale))
		}
	}

	var series []chart.Series
	var xs, ys [][]float64
	if len(cx) >= 2 {
		series = append(series, chart.ContinuousSeries{
			Name:    "Fuel consumption (l/100km)",
			Style:   chart.Style{StrokeColor: colorConsumption, StrokeWidth: 2},
			XValues: cx,
			YValues: cy,
		})
		xs, ys = append(xs, cx), append(ys, cy)
	}
	if len(ex) >= 2 {
		series = append(series, chart.ContinuousSeries{
			Name:    "Emissions - CO2 (g/km)",
			Style:   chart.Style{StrokeColor: colorEmissions, StrokeWidth: 2},
			XValues: ex,
			YValues: ey,
		})
		xs, ys = append(xs, ex), append(ys, ey)
	}
	if len(series) == 0 {
		return ErrInsufficientData
	}

	xAxis := yearAxis(flatten(xs))
	ch := chart.Chart{
		Title:      "Average fuel consumption and Emissions per Year",
		Width:      r.width,
		Height:     r.height,
		Background: chart.Style{Padding: chart.Box{Top: 48, Left: 16, Right: 16, Bottom: 16}},
		XAxis:      xAxis,
		YAxis:      chart.YAxis{Name: "Average", Range: paddedRange(ys...)},
		Series:     series,
	}
	ch.Elements = []chart.Renderable{chart.Legend(&ch)}

	return ch.Render(chart.PNG, w)
}

func flatten(vs [][]float64) []float64 {
	var out []float64
	for _, v := range vs {
		out = append(out, v...)
	}
	return out
}
