package plot

import (
	"math"
	"strconv"

	chart "github.com/wcharczuk/go-chart/v2"
)

const maxYearTicks = 12

// paddedRange spans all values with a 5% margin. A flat series gets a unit
// margin so the range never collapses to zero width.
func paddedRange(values ...[]float64) *chart.ContinuousRange {
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, vs := range values {
		for _, v := range vs {
			if math.IsNaN(v) {
				continue
			}
			lo = math.Min(lo, v)
			hi = math.Max(hi, v)
		}
	}
	if math.IsInf(lo, 1) {
		return &chart.ContinuousRange{Min: 0, Max: 1}
	}
	if lo == hi {
		return &chart.ContinuousRange{Min: lo - 1, Max: hi + 1}
	}
	pad := (hi - lo) * 0.05
	return &chart.ContinuousRange{Min: lo - pad, Max: hi + pad}
}

// yearAxis labels whole years only, thinning the ticks on long spans.
func yearAxis(years []float64) chart.XAxis {
	rng := paddedRange(years)
	first := int(math.Ceil(rng.Min))
	last := int(math.Floor(rng.Max))

	step := 1
	if span := last - first + 1; span > maxYearTicks {
		step = int(math.Ceil(float64(span) / maxYearTicks))
	}

	var ticks []chart.Tick
	for y := first; y <= last; y += step {
		ticks = append(ticks, chart.Tick{Value: float64(y), Label: strconv.Itoa(y)})
	}

	return chart.XAxis{
		Name:  "Year",
		Range: rng,
		Ticks: ticks,
	}
}
