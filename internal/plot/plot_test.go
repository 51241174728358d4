package plot

import (
	"bytes"
	"math"
	"os"
	"path/filepath"
	"testing"

	"fuelstat/internal/analysis"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pngSignature = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}

func sampleReport() *analysis.Report {
	return &analysis.Report{
		Records:        9,
		Years:          []int{2014, 2015, 2016},
		EmissionsScale: analysis.DefaultEmissionsScale,
		Yearly: []analysis.YearlyAverage{
			{Year: 2014, LitersPer100km: 10.2, GramsPerKm: 260, Records: 3, ConsumptionSamples: 3, EmissionSamples: 3},
			{Year: 2015, LitersPer100km: 9.8, GramsPerKm: 251, Records: 3, ConsumptionSamples: 3, EmissionSamples: 3},
			{Year: 2016, LitersPer100km: 9.1, GramsPerKm: 240, Records: 3, ConsumptionSamples: 3, EmissionSamples: 3},
		},
		Best: []analysis.Extremum{
			{Year: 2014, Make: "Toyota", Model: "Prius", Comb08: 50},
			{Year: 2015, Make: "Toyota", Model: "Prius", Comb08: 50},
			{Year: 2016, Make: "Hyundai", Model: "Ioniq", Comb08: 58},
		},
		Worst: []analysis.Extremum{
			{Year: 2014, Make: "Bugatti", Model: "Veyron", Comb08: 10},
			{Year: 2015, Make: "Bugatti", Model: "Veyron", Comb08: 10},
			{Year: 2016, Make: "Ferrari", Model: "F12", Comb08: 13},
		},
		MakeCounts: []analysis.MakeCount{
			{Make: "Nissan", Count: 2},
			{Make: "Tesla", Count: 1},
		},
	}
}

func TestRenderers(t *testing.T) {
	r := NewRenderer(Options{Width: 640, Height: 480})
	rep := sampleReport()

	tests := []struct {
		name string
		draw func(*bytes.Buffer) error
	}{
		{"yearly", func(b *bytes.Buffer) error { return r.Yearly(b, rep) }},
		{"best", func(b *bytes.Buffer) error { return r.Best(b, rep) }},
		{"worst", func(b *bytes.Buffer) error { return r.Worst(b, rep) }},
		{"least emissions", func(b *bytes.Buffer) error { return r.LeastEmissions(b, rep) }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, tc.draw(&buf))
			assert.True(t, bytes.HasPrefix(buf.Bytes(), pngSignature))
		})
	}
}

func TestYearlySkipsUndefinedMeans(t *testing.T) {
	rep := sampleReport()
	rep.Yearly = append(rep.Yearly, analysis.YearlyAverage{
		Year: 2017, LitersPer100km: math.NaN(), GramsPerKm: 0, Records: 1, Undefined: 1, EmissionSamples: 1,
	})

	var buf bytes.Buffer
	require.NoError(t, NewRenderer(Options{}).Yearly(&buf, rep))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), pngSignature))
}

func TestInsufficientData(t *testing.T) {
	r := NewRenderer(Options{})
	rep := &analysis.Report{
		Yearly: []analysis.YearlyAverage{{Year: 2000, LitersPer100km: 10, ConsumptionSamples: 1}},
		Best:   []analysis.Extremum{{Year: 2000, Comb08: 20}},
	}

	var buf bytes.Buffer
	assert.ErrorIs(t, r.Yearly(&buf, rep), ErrInsufficientData)
	assert.ErrorIs(t, r.Best(&buf, rep), ErrInsufficientData)
	assert.ErrorIs(t, r.Worst(&buf, rep), ErrInsufficientData)
	assert.ErrorIs(t, r.LeastEmissions(&buf, rep), ErrInsufficientData)
	assert.Zero(t, buf.Len())
}

func TestRenderAll(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "charts")

	written, err := NewRenderer(Options{Width: 400, Height: 300}).RenderAll(sampleReport(), dir)
	require.NoError(t, err)

	want := []string{
		filepath.Join(dir, FileYearly),
		filepath.Join(dir, FileBest),
		filepath.Join(dir, FileWorst),
		filepath.Join(dir, FileLeastEmission),
	}
	assert.Equal(t, want, written)
	for _, p := range want {
		info, err := os.Stat(p)
		require.NoError(t, err)
		assert.NotZero(t, info.Size())
	}
}

func TestRenderAllSkipsEmptyCharts(t *testing.T) {
	rep := sampleReport()
	rep.MakeCounts = nil
	rep.Worst = rep.Worst[:1]

	dir := t.TempDir()
	written, err := NewRenderer(Options{}).RenderAll(rep, dir)
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(dir, FileYearly), filepath.Join(dir, FileBest)}, written)

	_, err = os.Stat(filepath.Join(dir, FileWorst))
	assert.True(t, os.IsNotExist(err))
}

func TestPieValues(t *testing.T) {
	slices := analysis.PieSlices([]analysis.MakeCount{
		{Make: "Honda", Count: 13},
		{Make: "Nissan", Count: 7},
		{Make: "Tesla", Count: 6},
		{Make: "Toyota", Count: 3},
	})

	values := PieValues(slices)
	require.Len(t, values, 4)
	assert.Equal(t, "Honda (13)", values[0].Label)
	assert.Equal(t, "Nissan (7)", values[1].Label)
	assert.Equal(t, "Tesla (6)", values[2].Label)
	assert.Equal(t, "Toyota (3)", values[3].Label)
	assert.InDelta(t, 100*13.0/29, values[0].Value, 1e-9)
}

func TestPaddedRange(t *testing.T) {
	flat := paddedRange([]float64{5, 5, math.NaN()})
	assert.Equal(t, 4.0, flat.Min)
	assert.Equal(t, 6.0, flat.Max)

	r := paddedRange([]float64{0, 10}, []float64{20})
	assert.InDelta(t, -1.0, r.Min, 1e-9)
	assert.InDelta(t, 21.0, r.Max, 1e-9)

	empty := paddedRange()
	assert.Equal(t, 0.0, empty.Min)
	assert.Equal(t, 1.0, empty.Max)
}

func TestYearAxisTicksAreWholeYears(t *testing.T) {
	var years []float64
	for y := 1984; y <= 2017; y++ {
		years = append(years, float64(y))
	}

	axis := yearAxis(years)
	require.NotEmpty(t, axis.Ticks)
	assert.LessOrEqual(t, len(axis.Ticks), maxYearTicks+1)
	for _, tick := range axis.Ticks {
		assert.Equal(t, math.Trunc(tick.Value), tick.Value)
	}
}
