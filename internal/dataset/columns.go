package dataset

import "fmt"

type Column struct {
	Name string
	Desc string
}

var (
	ColMake           = Column{Name: "make", Desc: "Manufacturer"}
	ColModel          = Column{Name: "model", Desc: "Model name"}
	ColEngine         = Column{Name: "eng_dscr", Desc: "Engine descriptor"}
	ColDrive          = Column{Name: "drive", Desc: "Drive axle type"}
	ColFuelType       = Column{Name: "fuelType1", Desc: "Primary fuel type"}
	ColTransmission   = Column{Name: "trany", Desc: "Transmission"}
	ColYear           = Column{Name: "year", Desc: "Model year"}
	ColComb08         = Column{Name: "comb08", Desc: "Combined MPG"}
	ColCO2TailpipeGpm = Column{Name: "co2TailpipeGpm", Desc: "Tailpipe CO2 in grams/mile"}
	ColCharge120      = Column{Name: "charge120", Desc: "Hours to charge at 120V"}
	ColCharge240      = Column{Name: "charge240", Desc: "Hours to charge at 240V"}
)

// DefaultPriority is the column order that puts general car info first.
var DefaultPriority = names(
	ColMake,
	ColModel,
	ColEngine,
	ColDrive,
	ColFuelType,
	ColTransmission,
	ColYear,
)

// Required lists every column FromFrame reads.
var Required = names(
	ColMake,
	ColModel,
	ColEngine,
	ColDrive,
	ColFuelType,
	ColTransmission,
	ColYear,
	ColComb08,
	ColCO2TailpipeGpm,
	ColCharge120,
	ColCharge240,
)

func (c Column) String() string {
	return fmt.Sprintf("%s (%s)", c.Name, c.Desc)
}

func names(cols ...Column) []string {
	out := make([]string, len(cols))
	for i, c := range cols {
		out[i] = c.Name
	}
	return out
}
