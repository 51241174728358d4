package analysis

import (
	"math"

	"fuelstat/internal/models"
)

const (
	// LitersPer100kmFactor converts US miles per gallon to liters per 100km.
	LitersPer100kmFactor = 235.2146
	// KilometersPerMile converts per-mile quantities to per-kilometer ones.
	KilometersPerMile = 1.60934
)

// Metrics holds the values derived from one record.
type Metrics struct {
	Record         models.VehicleRecord
	LitersPer100km float64
	// Defined is false when comb08 is zero or not a finite number.
	Defined    bool
	GramsPerKm float64
}

// LitersPer100km converts combined MPG to fuel consumption. The second
// result is false when the conversion is undefined, e.g. for pure electric
// vehicles reported with a zero comb08.
func LitersPer100km(comb08 float64) (float64, bool) {
	if comb08 == 0 || math.IsNaN(comb08) || math.IsInf(comb08, 0) {
		return math.NaN(), false
	}
	return LitersPer100kmFactor / comb08, true
}

// GramsPerKm converts tailpipe CO2 from grams/mile to grams/km.
func GramsPerKm(co2TailpipeGpm float64) float64 {
	return co2TailpipeGpm / KilometersPerMile
}

// Derive computes the metrics of every record, keeping input order.
func Derive(records []models.VehicleRecord) []Metrics {
	out := make([]Metrics, len(records))
	for i, r := range records {
		l, ok := LitersPer100km(r.Comb08)
		out[i] = Metrics{
			Record:         r,
			LitersPer100km: l,
			Defined:        ok,
			GramsPerKm:     GramsPerKm(r.CO2TailpipeGpm),
		}
	}
	return out
}
