package dataset

import (
	"fmt"

	"fuelstat/internal/models"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
)

// RowError reports a cell that could not be converted.
type RowError struct {
	Row    int
	Column string
	Err    error
}

func (e *RowError) Error() string {
	return fmt.Sprintf("row %d, column %q: %v", e.Row, e.Column, e.Err)
}

func (e *RowError) Unwrap() error {
	return e.Err
}

// LoadOptions keeps every column as text; FromFrame does the typing so a
// stray value in one of the ~80 unused columns cannot fail the load.
func LoadOptions() []dataframe.LoadOption {
	return []dataframe.LoadOption{
		dataframe.HasHeader(true),
		dataframe.DetectTypes(false),
		dataframe.DefaultType(series.String),
	}
}

// FromFrame reorders the frame's columns with priority first and converts
// its rows into vehicle records.
func FromFrame(df dataframe.DataFrame, priority []string) (*Dataset, error) {
	if df.Err != nil {
		return nil, fmt.Errorf("invalid frame: %w", df.Err)
	}

	columns := df.Names()
	if err := requireColumns(columns, Required); err != nil {
		return nil, err
	}
	order, err := Reorder(columns, priority)
	if err != nil {
		return nil, err
	}

	df = df.Select(order)
	if df.Err != nil {
		return nil, fmt.Errorf("failed to reorder columns: %w", df.Err)
	}

	records, err := toRecords(df)
	if err != nil {
		return nil, err
	}

	var rows [][]string
	if raw := df.Records(); len(raw) > 1 {
		rows = raw[1:]
	}

	return &Dataset{
		columns: order,
		rows:    rows,
		records: records,
	}, nil
}

func toRecords(df dataframe.DataFrame) ([]models.VehicleRecord, error) {
	n := df.Nrow()

	makes := df.Col(ColMake.Name).Records()
	modelNames := df.Col(ColModel.Name).Records()
	engines := df.Col(ColEngine.Name).Records()
	drives := df.Col(ColDrive.Name).Records()
	fuels := df.Col(ColFuelType.Name).Records()
	trany := df.Col(ColTransmission.Name).Records()
	years := df.Col(ColYear.Name)
	comb := df.Col(ColComb08.Name).Float()
	co2 := df.Col(ColCO2TailpipeGpm.Name).Float()
	c120 := df.Col(ColCharge120.Name).Float()
	c240 := df.Col(ColCharge240.Name).Float()

	records := make([]models.VehicleRecord, n)
	for i := 0; i < n; i++ {
		year, err := years.Elem(i).Int()
		if err != nil {
			return nil, &RowError{Row: i, Column: ColYear.Name, Err: err}
		}
		records[i] = models.VehicleRecord{
			Row:               i,
			Make:              makes[i],
			Model:             modelNames[i],
			EngineDescription: engines[i],
			Drive:             drives[i],
			FuelType:          fuels[i],
			Transmission:      trany[i],
			Year:              year,
			Comb08:            comb[i],
			CO2TailpipeGpm:    co2[i],
			Charge120:         c120[i],
			Charge240:         c240[i],
		}
	}
	return records, nil
}
