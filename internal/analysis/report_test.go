package analysis

import (
	"context"
	"math"
	"testing"

	"fuelstat/internal/dataset"
	"fuelstat/internal/models"
	"fuelstat/internal/source/mock"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyze(t *testing.T) {
	ds := dataset.FromRecords([]models.VehicleRecord{
		{Row: 0, Year: 2015, Make: "Ford", Model: "Focus", Comb08: 20, CO2TailpipeGpm: 444},
		{Row: 1, Year: 2015, Make: "Toyota", Model: "Prius", Comb08: 35, CO2TailpipeGpm: 254},
		{Row: 2, Year: 2015, Make: "Honda", Model: "Civic", Comb08: 28, CO2TailpipeGpm: 317},
		{Row: 3, Year: 2015, Make: "Nissan", Model: "Leaf", Comb08: 0, CO2TailpipeGpm: 0, Charge240: 7},
		{Row: 4, Year: 2016, Make: "Honda", Model: "Fit", Comb08: 36, CO2TailpipeGpm: 246},
	})

	r := Analyze(ds, Options{})

	assert.Equal(t, 5, r.Records)
	assert.Equal(t, 1, r.PlugIns)
	assert.Equal(t, []int{2015, 2016}, r.Years)
	assert.Equal(t, DefaultEmissionsScale, r.EmissionsScale)
	assert.Equal(t, 1, r.Undefined)

	require.Len(t, r.Yearly, 2)
	assert.False(t, math.IsNaN(r.Yearly[0].LitersPer100km))

	require.Len(t, r.Best, 2)
	assert.Equal(t, "Prius", r.Best[0].Model, "plug-ins must not compete for best mileage")
	assert.Equal(t, "Focus", r.Worst[0].Model)
	assert.Empty(t, r.MileageGaps)

	require.Len(t, r.LeastEmitters, 2)
	assert.Equal(t, "Nissan", r.LeastEmitters[0].Make)
	assert.Equal(t, []MakeCount{{"Honda", 1}, {"Nissan", 1}}, r.MakeCounts)
}

func TestAnalyzeCustomScale(t *testing.T) {
	ds := dataset.FromRecords([]models.VehicleRecord{{Year: 2000, Comb08: 20, CO2TailpipeGpm: 400}})
	r := Analyze(ds, Options{EmissionsScale: 0.1})
	assert.Equal(t, 0.1, r.EmissionsScale)
}

func TestAnalyzePlugInOnlyYears(t *testing.T) {
	ds := dataset.FromRecords([]models.VehicleRecord{
		{Row: 0, Year: 2014, Make: "Ford", Model: "Focus", Comb08: 31, CO2TailpipeGpm: 287},
		{Row: 1, Year: 2015, Make: "Tesla", Model: "Model S", Comb08: 89, CO2TailpipeGpm: 0, Charge240: 12},
		{Row: 2, Year: 2016, Make: "Tesla", Model: "Model S", Comb08: 90, CO2TailpipeGpm: 0, Charge120: 36},
		{Row: 3, Year: 2017, Make: "Honda", Model: "Civic", Comb08: math.NaN(), CO2TailpipeGpm: 300},
	})

	r := Analyze(ds, Options{})

	require.Len(t, r.Best, 1)
	assert.Equal(t, 2014, r.Best[0].Year)
	require.Len(t, r.Worst, 1)
	assert.Equal(t, []int{2015, 2016, 2017}, r.MileageGaps)
	assert.Empty(t, r.EmissionGaps)
	assert.Equal(t, []MakeCount{{Make: "Tesla", Count: 2}, {Make: "Ford", Count: 1}, {Make: "Honda", Count: 1}}, r.MakeCounts)
}

func TestAnalyzeMockTable(t *testing.T) {
	df, err := mock.New(42).Load(context.Background())
	require.NoError(t, err)
	ds, err := dataset.FromFrame(df, dataset.DefaultPriority)
	require.NoError(t, err)

	r := Analyze(ds, Options{})

	assert.Len(t, r.Years, mock.LastYear-mock.FirstYear+1)
	assert.Len(t, r.Yearly, len(r.Years))
	assert.Len(t, r.Best, len(r.Years))
	assert.Len(t, r.Worst, len(r.Years))

	sum := 0
	for _, c := range r.MakeCounts {
		sum += c.Count
	}
	assert.Equal(t, len(r.Years), sum, "every year has exactly one least-emissions make")

	for _, b := range r.Best {
		assert.NotEqual(t, "Leaf", b.Model)
		assert.NotEqual(t, "Model S", b.Model)
	}
}
