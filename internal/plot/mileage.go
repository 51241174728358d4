package plot

import (
	"io"

	"fuelstat/internal/analysis"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

var (
	colorBest  = drawing.ColorFromHex("EF4444")
	colorWorst = drawing.ColorFromHex("3B82F6")
)

// Best draws the best-MPG vehicle of every year, labelled with its model.
func (r *Renderer) Best(w io.Writer, rep *analysis.Report) error {
	return r.mileage(w, "Best MPG Vehicle by Year", "Best MPG", colorBest, rep.Best)
}

// Worst draws the worst-MPG vehicle of every year, labelled with its model.
func (r *Renderer) Worst(w io.Writer, rep *analysis.Report) error {
	return r.mileage(w, "Worst MPG Vehicle by Year", "Worst MPG", colorWorst, rep.Worst)
}

func (r *Renderer) mileage(w io.Writer, title, name string, color drawing.Color, picks []analysis.Extremum) error {
	if len(picks) < 2 {
		return ErrInsufficientData
	}

	xs := make([]float64, len(picks))
	ys := make([]float64, len(picks))
	notes := make([]chart.Value2, len(picks))
	for i, p := range picks {
		xs[i] = float64(p.Year)
		ys[i] = p.Comb08
		notes[i] = chart.Value2{XValue: xs[i], YValue: ys[i], Label: p.Model}
	}

	ch := chart.Chart{
		Title:      title,
		Width:      r.width,
		Height:     r.height,
		Background: chart.Style{Padding: chart.Box{Top: 48, Left: 16, Right: 16, Bottom: 16}},
		XAxis:      yearAxis(xs),
		YAxis:      chart.YAxis{Name: "MPG", Range: paddedRange(ys)},
		Series: []chart.Series{
			chart.ContinuousSeries{
				Name: name,
				Style: chart.Style{
					StrokeWidth: chart.Disabled,
					DotWidth:    5,
					DotColor:    color,
				},
				XValues: xs,
				YValues: ys,
			},
			chart.AnnotationSeries{
				Annotations: notes,
			},
		},
	}
	ch.Elements = []chart.Renderable{chart.Legend(&ch)}

	return ch.Render(chart.PNG, w)
}
