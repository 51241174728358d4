package analysis

import (
	"fuelstat/internal/dataset"
	"fuelstat/pkg/log"

	"go.uber.org/zap"
)

// Options tune presentation-only aspects of a report.
type Options struct {
	// EmissionsScale multiplies the g/km means on charts. Zero means
	// DefaultEmissionsScale.
	EmissionsScale float64
}

// Report holds every chart-ready table produced from one dataset.
type Report struct {
	Records        int
	PlugIns        int
	Years          []int
	EmissionsScale float64

	Yearly []YearlyAverage
	// Undefined counts records whose L/100km could not be derived.
	Undefined int

	Best  []Extremum
	Worst []Extremum
	// MileageGaps lists years with no conventional vehicle carrying a comb08,
	// including years where every record is a plug-in.
	MileageGaps []int

	LeastEmitters []Emitter
	MakeCounts    []MakeCount
	EmissionGaps  []int
}

// Slices returns the pie chart slices of the least-emissions distribution.
func (r *Report) Slices() []PieSlice {
	return PieSlices(r.MakeCounts)
}

// Analyze runs the whole pipeline over a dataset snapshot.
func Analyze(ds *dataset.Dataset, opts Options) *Report {
	scale := opts.EmissionsScale
	if scale == 0 {
		scale = DefaultEmissionsScale
	}

	all := ds.Records()
	conventional := ds.WithoutPlugIns().Records()

	r := &Report{
		Records:        len(all),
		PlugIns:        len(all) - len(conventional),
		Years:          ds.Years(),
		EmissionsScale: scale,
	}

	r.Yearly = YearlyAverages(Derive(all))
	for _, y := range r.Yearly {
		r.Undefined += y.Undefined
	}
	if r.Undefined > 0 {
		log.Warn("Records without a usable comb08 left out of the consumption averages",
			zap.Int("records", r.Undefined))
	}

	// years holding only plug-ins have no group once they are filtered out
	r.Best, _ = BestPerYear(conventional)
	r.Worst, _ = WorstPerYear(conventional)
	r.MileageGaps = missingYears(r.Years, r.Best)
	if len(r.MileageGaps) > 0 {
		log.Warn("Years without mileage data", zap.Ints("years", r.MileageGaps))
	}

	r.LeastEmitters, r.EmissionGaps = LeastEmittersPerYear(all)
	if len(r.EmissionGaps) > 0 {
		log.Warn("Years without emissions data", zap.Ints("years", r.EmissionGaps))
	}
	r.MakeCounts = CountMakes(r.LeastEmitters)

	log.Info("Analysis complete",
		zap.Int("records", r.Records),
		zap.Int("plug_ins", r.PlugIns),
		zap.Int("years", len(r.Years)),
		zap.Int("makes_with_least_emissions", len(r.MakeCounts)))

	return r
}

func missingYears(years []int, picks []Extremum) []int {
	seen := make(map[int]bool, len(picks))
	for _, p := range picks {
		seen[p.Year] = true
	}
	var out []int
	for _, y := range years {
		if !seen[y] {
			out = append(out, y)
		}
	}
	return out
}
