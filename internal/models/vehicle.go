package models

// VehicleRecord is one row of the fuel economy table.
type VehicleRecord struct {
	Row               int
	Make              string
	Model             string
	EngineDescription string
	Drive             string
	FuelType          string
	Transmission      string
	Year              int
	Comb08            float64
	CO2TailpipeGpm    float64
	Charge120         float64
	Charge240         float64
}

// IsPlugIn reports whether the vehicle can be charged from the grid.
// A NaN charge time is not a confirmed zero, so it counts as plug-in.
func (v VehicleRecord) IsPlugIn() bool {
	return !(v.Charge120 == 0 && v.Charge240 == 0)
}
