package csvfile

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"fuelstat/internal/dataset"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `barrels08,make,model,eng_dscr,drive,fuelType1,trany,year,comb08,co2TailpipeGpm,charge120,charge240
15.69,Volvo,240,,Rear-Wheel Drive,Regular Gasoline,Manual 5-spd,1985,19,423.19,0,0
0.17,Tesla,Model S,,All-Wheel Drive,Electricity,Automatic (A1),2016,98,0,0,10
`

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "vehicles.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad(t *testing.T) {
	df, err := New(writeFile(t, sample)).Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, df.Nrow())
	assert.Equal(t, 12, df.Ncol())

	ds, err := dataset.FromFrame(df, dataset.DefaultPriority)
	require.NoError(t, err)
	assert.Equal(t, "make", ds.Columns()[0])
	assert.Equal(t, "barrels08", ds.Columns()[len(dataset.DefaultPriority)])
	assert.Equal(t, 2016, ds.Records()[1].Year)
}

func TestLoadStripsBOM(t *testing.T) {
	df, err := New(writeFile(t, "\xEF\xBB\xBF"+sample)).Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "barrels08", df.Names()[0])
}

func TestLoadMissingFile(t *testing.T) {
	_, err := New(filepath.Join(t.TempDir(), "nope.csv")).Load(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, fs.ErrNotExist))
}

func TestLoadCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := New(writeFile(t, sample)).Load(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRead(t *testing.T) {
	df := Read(strings.NewReader(sample))
	require.NoError(t, df.Err)
	assert.Equal(t, []string{"Volvo", "Tesla"}, df.Col("make").Records())
}
