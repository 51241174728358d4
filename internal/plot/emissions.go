package plot

import (
	"fmt"
	"io"

	"fuelstat/internal/analysis"

	chart "github.com/wcharczuk/go-chart/v2"
)

// LeastEmissions draws the share of years each make had the lowest tailpipe
// CO2. Slice labels carry the integer number of years.
func (r *Renderer) LeastEmissions(w io.Writer, rep *analysis.Report) error {
	slices := rep.Slices()
	if len(slices) == 0 {
		return ErrInsufficientData
	}

	pie := chart.PieChart{
		Title:  "Manufacturer with the least emissions per year",
		Width:  r.width,
		Height: r.height,
		Values: PieValues(slices),
	}
	return pie.Render(chart.PNG, w)
}

// PieValues labels each slice with the year count recovered from its
// percentage.
func PieValues(slices []analysis.PieSlice) []chart.Value {
	total := 0
	for _, s := range slices {
		total += s.Count
	}

	values := make([]chart.Value, len(slices))
	for i, s := range slices {
		values[i] = chart.Value{
			Value: s.Percent,
			Label: fmt.Sprintf("%s (%d)", s.Make, analysis.CountFromPercent(s.Percent, total)),
		}
	}
	return values
}
