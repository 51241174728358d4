package dataset

import (
	"sort"
	"strconv"
	"strings"

	"fuelstat/internal/models"
)

// Dataset is an immutable snapshot of the vehicle table. Filters return new
// snapshots and never touch the receiver.
type Dataset struct {
	columns []string
	rows    [][]string
	records []models.VehicleRecord
}

// FromRecords builds a dataset whose columns are the Required ones.
func FromRecords(records []models.VehicleRecord) *Dataset {
	rows := make([][]string, len(records))
	for i, r := range records {
		rows[i] = []string{
			r.Make,
			r.Model,
			r.EngineDescription,
			r.Drive,
			r.FuelType,
			r.Transmission,
			strconv.Itoa(r.Year),
			formatFloat(r.Comb08),
			formatFloat(r.CO2TailpipeGpm),
			formatFloat(r.Charge120),
			formatFloat(r.Charge240),
		}
	}
	recs := make([]models.VehicleRecord, len(records))
	copy(recs, records)
	return &Dataset{
		columns: append([]string(nil), Required...),
		rows:    rows,
		records: recs,
	}
}

func (d *Dataset) Len() int {
	return len(d.records)
}

// Columns returns the column names in display order.
func (d *Dataset) Columns() []string {
	return append([]string(nil), d.columns...)
}

// Records returns a copy of the typed records in original row order.
func (d *Dataset) Records() []models.VehicleRecord {
	out := make([]models.VehicleRecord, len(d.records))
	copy(out, d.records)
	return out
}

// Head returns up to n raw rows, cells in Columns order.
func (d *Dataset) Head(n int) [][]string {
	if n < 0 || n > len(d.rows) {
		n = len(d.rows)
	}
	out := make([][]string, n)
	for i := 0; i < n; i++ {
		out[i] = append([]string(nil), d.rows[i]...)
	}
	return out
}

// Years returns the distinct model years, ascending.
func (d *Dataset) Years() []int {
	seen := make(map[int]bool)
	var years []int
	for _, r := range d.records {
		if !seen[r.Year] {
			seen[r.Year] = true
			years = append(years, r.Year)
		}
	}
	sort.Ints(years)
	return years
}

// ByMake keeps the rows of one manufacturer, compared case-insensitively.
func (d *Dataset) ByMake(name string) *Dataset {
	return d.filter(func(r models.VehicleRecord) bool {
		return strings.EqualFold(r.Make, name)
	})
}

// WithoutPlugIns drops every vehicle with a nonzero 120V or 240V charge time.
func (d *Dataset) WithoutPlugIns() *Dataset {
	return d.filter(func(r models.VehicleRecord) bool {
		return !r.IsPlugIn()
	})
}

func (d *Dataset) filter(keep func(models.VehicleRecord) bool) *Dataset {
	out := &Dataset{columns: d.columns}
	for i, r := range d.records {
		if keep(r) {
			out.records = append(out.records, r)
			out.rows = append(out.rows, d.rows[i])
		}
	}
	return out
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
