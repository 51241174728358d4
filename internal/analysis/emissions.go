package analysis

import (
	"math"
	"sort"

	"fuelstat/internal/models"
)

// Emitter is the vehicle with the lowest tailpipe CO2 of a year.
type Emitter struct {
	Year           int
	Make           string
	Model          string
	CO2TailpipeGpm float64
	Row            int
}

// MakeCount is the number of years a manufacturer was the lowest emitter.
type MakeCount struct {
	Make  string
	Count int
}

// PieSlice is a MakeCount with its share of all years, in percent.
type PieSlice struct {
	Make    string
	Count   int
	Percent float64
}

// LeastEmitter returns the first record with the minimum co2TailpipeGpm,
// skipping NaN values. The boolean is false when nothing qualifies.
func LeastEmitter(records []models.VehicleRecord) (Emitter, bool) {
	idx := -1
	for i, r := range records {
		if math.IsNaN(r.CO2TailpipeGpm) {
			continue
		}
		if idx < 0 || r.CO2TailpipeGpm < records[idx].CO2TailpipeGpm {
			idx = i
		}
	}
	if idx < 0 {
		return Emitter{}, false
	}
	r := records[idx]
	return Emitter{
		Year:           r.Year,
		Make:           r.Make,
		Model:          r.Model,
		CO2TailpipeGpm: r.CO2TailpipeGpm,
		Row:            r.Row,
	}, true
}

// LeastEmittersPerYear selects the lowest emitter of every year, ascending.
func LeastEmittersPerYear(records []models.VehicleRecord) ([]Emitter, []int) {
	var found []Emitter
	var empty []int
	for _, g := range groupByYear(records) {
		e, ok := LeastEmitter(g.records)
		if !ok {
			empty = append(empty, g.year)
			continue
		}
		found = append(found, e)
	}
	return found, empty
}

// CountMakes counts how many years each make was the lowest emitter.
// Sorted by count descending, then make.
func CountMakes(emitters []Emitter) []MakeCount {
	counts := make(map[string]int)
	for _, e := range emitters {
		counts[e.Make]++
	}

	out := make([]MakeCount, 0, len(counts))
	for mk, n := range counts {
		out = append(out, MakeCount{Make: mk, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Make < out[j].Make
	})
	return out
}

// PieSlices attaches percentages to the counts.
func PieSlices(counts []MakeCount) []PieSlice {
	total := 0
	for _, c := range counts {
		total += c.Count
	}

	out := make([]PieSlice, len(counts))
	for i, c := range counts {
		var pct float64
		if total > 0 {
			pct = float64(c.Count) * 100 / float64(total)
		}
		out[i] = PieSlice{Make: c.Make, Count: c.Count, Percent: pct}
	}
	return out
}

// CountFromPercent turns a slice percentage back into the count it was
// computed from.
func CountFromPercent(pct float64, total int) int {
	return int(math.Round(pct * float64(total) / 100))
}
