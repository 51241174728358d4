package analysis

import (
	"math"

	"fuelstat/internal/models"
)

// Extremum is the vehicle holding the best or worst mileage of a year.
type Extremum struct {
	Year   int
	Make   string
	Model  string
	Comb08 float64
	Row    int
}

// Best returns the record with the highest comb08. Ties go to the record
// that comes first. The boolean is false when no record has a comb08 value.
func Best(records []models.VehicleRecord) (Extremum, bool) {
	return pick(records, func(candidate, current float64) bool {
		return candidate > current
	})
}

// Worst returns the record with the lowest comb08, with the same tie and
// empty-group rules as Best.
func Worst(records []models.VehicleRecord) (Extremum, bool) {
	return pick(records, func(candidate, current float64) bool {
		return candidate < current
	})
}

// BestPerYear selects the best vehicle of every year. Years whose group has
// no usable comb08 are returned separately.
func BestPerYear(records []models.VehicleRecord) ([]Extremum, []int) {
	return perYear(records, Best)
}

// WorstPerYear is the per-year counterpart of Worst.
func WorstPerYear(records []models.VehicleRecord) ([]Extremum, []int) {
	return perYear(records, Worst)
}

func perYear(records []models.VehicleRecord, sel func([]models.VehicleRecord) (Extremum, bool)) ([]Extremum, []int) {
	var found []Extremum
	var empty []int
	for _, g := range groupByYear(records) {
		e, ok := sel(g.records)
		if !ok {
			empty = append(empty, g.year)
			continue
		}
		found = append(found, e)
	}
	return found, empty
}

// pick scans in order and replaces the current choice only on a strict
// improvement, so the first of several equal values wins.
func pick(records []models.VehicleRecord, better func(candidate, current float64) bool) (Extremum, bool) {
	idx := -1
	for i, r := range records {
		if math.IsNaN(r.Comb08) {
			continue
		}
		if idx < 0 || better(r.Comb08, records[idx].Comb08) {
			idx = i
		}
	}
	if idx < 0 {
		return Extremum{}, false
	}
	r := records[idx]
	return Extremum{
		Year:   r.Year,
		Make:   r.Make,
		Model:  r.Model,
		Comb08: r.Comb08,
		Row:    r.Row,
	}, true
}
