package exporter

import (
	"fmt"
	"math"
	"os"
	"path/filepath"

	"fuelstat/internal/analysis"
	"fuelstat/pkg/log"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

const (
	SheetYearly        = "Yearly Averages"
	SheetBest          = "Best MPG"
	SheetWorst         = "Worst MPG"
	SheetLeastEmission = "Least Emissions"
)

type sheet struct {
	name    string
	headers []interface{}
	rows    [][]interface{}
}

// WriteWorkbook saves the report's chart tables to an xlsx file, one sheet
// per chart.
func WriteWorkbook(path string, rep *analysis.Report) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}

	f := excelize.NewFile()
	defer f.Close()

	sheets := []sheet{
		yearlySheet(rep),
		mileageSheet(SheetBest, rep.Best),
		mileageSheet(SheetWorst, rep.Worst),
		emissionSheet(rep),
	}

	for i, s := range sheets {
		if i == 0 {
			if err := f.SetSheetName(f.GetSheetName(0), s.name); err != nil {
				return fmt.Errorf("failed to rename sheet: %w", err)
			}
		} else if _, err := f.NewSheet(s.name); err != nil {
			return fmt.Errorf("failed to create sheet %s: %w", s.name, err)
		}

		if err := f.SetSheetRow(s.name, "A1", &s.headers); err != nil {
			return fmt.Errorf("failed to write headers of %s: %w", s.name, err)
		}
		for r, row := range s.rows {
			cell, err := excelize.CoordinatesToCellName(1, r+2)
			if err != nil {
				return err
			}
			row := row
			if err := f.SetSheetRow(s.name, cell, &row); err != nil {
				return fmt.Errorf("failed to write row %d of %s: %w", r, s.name, err)
			}
		}
	}
	f.SetActiveSheet(0)

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}
	log.Info("Workbook written", zap.String("path", path), zap.Int("sheets", len(sheets)))
	return nil
}

func yearlySheet(rep *analysis.Report) sheet {
	s := sheet{
		name: SheetYearly,
		headers: []interface{}{
			"Year", "Fuel consumption (l/100km)", "Emissions - CO2 (g/km)",
			"Emissions (scaled)", "Records", "Undefined consumption",
		},
	}
	for _, y := range rep.Yearly {
		s.rows = append(s.rows, []interface{}{
			y.Year,
			cellValue(y.LitersPer100km),
			cellValue(y.GramsPerKm),
			cellValue(y.ScaledGramsPerKm(rep.EmissionsScale)),
			y.Records,
			y.Undefined,
		})
	}
	return s
}

func mileageSheet(name string, picks []analysis.Extremum) sheet {
	s := sheet{
		name:    name,
		headers: []interface{}{"Year", "Make", "Model", "MPG"},
	}
	for _, p := range picks {
		s.rows = append(s.rows, []interface{}{p.Year, p.Make, p.Model, p.Comb08})
	}
	return s
}

func emissionSheet(rep *analysis.Report) sheet {
	s := sheet{
		name:    SheetLeastEmission,
		headers: []interface{}{"Make", "Years", "Share (%)"},
	}
	for _, p := range rep.Slices() {
		s.rows = append(s.rows, []interface{}{p.Make, p.Count, math.Round(p.Percent*100) / 100})
	}
	return s
}

// cellValue leaves undefined means blank instead of writing NaN.
func cellValue(v float64) interface{} {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	return v
}
