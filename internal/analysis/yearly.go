package analysis

import (
	"math"
	"sort"
)

// DefaultEmissionsScale shrinks the g/km average so it shares an axis with
// the L/100km line.
const DefaultEmissionsScale = 1.0 / 15

// YearlyAverage is the per-year mean of the derived metrics.
type YearlyAverage struct {
	Year           int
	LitersPer100km float64
	// GramsPerKm is the unscaled mean.
	GramsPerKm         float64
	Records            int
	ConsumptionSamples int
	EmissionSamples    int
	// Undefined counts records left out of the consumption mean.
	Undefined int
}

// ScaledGramsPerKm applies the display scale to the emissions mean.
func (y YearlyAverage) ScaledGramsPerKm(scale float64) float64 {
	return y.GramsPerKm * scale
}

// HasConsumption reports whether at least one record had a defined L/100km.
func (y YearlyAverage) HasConsumption() bool {
	return y.ConsumptionSamples > 0
}

// HasEmissions reports whether at least one record had a CO2 figure.
func (y YearlyAverage) HasEmissions() bool {
	return y.EmissionSamples > 0
}

type accumulator struct {
	records, consumptionN, emissionN, undefined int
	consumption, emission                       float64
}

// YearlyAverages groups metrics by year and returns the unweighted means,
// ascending by year. Undefined consumption values and NaN emissions are left
// out of their mean; a mean with no samples is NaN.
func YearlyAverages(metrics []Metrics) []YearlyAverage {
	acc := make(map[int]*accumulator)
	for _, m := range metrics {
		a, ok := acc[m.Record.Year]
		if !ok {
			a = &accumulator{}
			acc[m.Record.Year] = a
		}
		a.records++
		if m.Defined {
			a.consumption += m.LitersPer100km
			a.consumptionN++
		} else {
			a.undefined++
		}
		if !math.IsNaN(m.GramsPerKm) {
			a.emission += m.GramsPerKm
			a.emissionN++
		}
	}

	out := make([]YearlyAverage, 0, len(acc))
	for year, a := range acc {
		out = append(out, YearlyAverage{
			Year:               year,
			LitersPer100km:     mean(a.consumption, a.consumptionN),
			GramsPerKm:         mean(a.emission, a.emissionN),
			Records:            a.records,
			ConsumptionSamples: a.consumptionN,
			EmissionSamples:    a.emissionN,
			Undefined:          a.undefined,
		})
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Year < out[j].Year
	})
	return out
}

func mean(sum float64, n int) float64 {
	if n == 0 {
		return math.NaN()
	}
	return sum / float64(n)
}
