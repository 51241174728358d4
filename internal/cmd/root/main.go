package root

import (
	"context"
	"fmt"
	"io"
	"math"
	"os"

	"fuelstat/internal/analysis"
	"fuelstat/internal/dataset"
	"fuelstat/internal/displayer"
	"fuelstat/internal/exporter"
	"fuelstat/internal/plot"
	"fuelstat/internal/source"
	"fuelstat/internal/source/csvfile"
	"fuelstat/internal/source/mock"
	"fuelstat/pkg/log"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

func Run(cmd *cobra.Command, args []string) {
	ds, err := LoadDataset(context.Background())
	if err != nil {
		log.Fatal("failed to load vehicle table", zap.Error(err))
	}

	report := analysis.Analyze(ds, analysis.Options{
		EmissionsScale: viper.GetFloat64("emissions-scale"),
	})

	renderer := plot.NewRenderer(plot.Options{
		Width:  viper.GetInt("width"),
		Height: viper.GetInt("height"),
	})
	if _, err := renderer.RenderAll(report, viper.GetString("out-dir")); err != nil {
		log.Fatal("failed to render charts", zap.Error(err))
	}

	if path := viper.GetString("xlsx"); path != "" {
		if err := exporter.WriteWorkbook(path, report); err != nil {
			log.Error("failed to export workbook", zap.Error(err))
		}
	}

	if viper.GetBool("no-tui") {
		PrintSummary(os.Stdout, report)
		return
	}

	d := displayer.New(report)
	if err := d.Run(); err != nil {
		fmt.Printf("error: %v\n", err)
	}
}

// LoadDataset builds the dataset from the configured provider, restricted
// to one make when --make is set.
func LoadDataset(ctx context.Context) (*dataset.Dataset, error) {
	var provider source.Provider
	if viper.GetBool("mock") {
		provider = mock.New(viper.GetInt64("seed"))
	} else {
		provider = csvfile.New(viper.GetString("file"))
	}

	df, err := provider.Load(ctx)
	if err != nil {
		return nil, err
	}

	ds, err := dataset.FromFrame(df, dataset.DefaultPriority)
	if err != nil {
		return nil, err
	}

	if mk := viper.GetString("make"); mk != "" {
		ds = ds.ByMake(mk)
		log.Info("Restricted analysis to one make", zap.String("make", mk), zap.Int("records", ds.Len()))
	}
	return ds, nil
}

// PrintSummary writes the report tables as plain text.
func PrintSummary(w io.Writer, report *analysis.Report) {
	fmt.Fprintf(w, "Records: %d (plug-ins: %d), years: %d\n", report.Records, report.PlugIns, len(report.Years))
	if report.Undefined > 0 {
		fmt.Fprintf(w, "Records without a usable comb08: %d\n", report.Undefined)
	}

	fmt.Fprintf(w, "\nAverage fuel consumption and emissions per year (emissions scale %.4f):\n", report.EmissionsScale)
	for _, y := range report.Yearly {
		fmt.Fprintf(w, "- %d: %s l/100km, %s g/km (scaled %s)\n",
			y.Year, number(y.LitersPer100km), number(y.GramsPerKm), number(y.ScaledGramsPerKm(report.EmissionsScale)))
	}

	fmt.Fprintln(w, "\nBest MPG vehicle by year:")
	printPicks(w, report.Best)

	fmt.Fprintln(w, "\nWorst MPG vehicle by year:")
	printPicks(w, report.Worst)

	fmt.Fprintln(w, "\nManufacturer with the least emissions per year:")
	if len(report.MakeCounts) == 0 {
		fmt.Fprintln(w, "No emissions data.")
	}
	for _, s := range report.Slices() {
		fmt.Fprintf(w, "- %s: %d (%.1f%%)\n", s.Make, s.Count, s.Percent)
	}
}

func printPicks(w io.Writer, picks []analysis.Extremum) {
	if len(picks) == 0 {
		fmt.Fprintln(w, "No mileage data.")
		return
	}
	for _, p := range picks {
		fmt.Fprintf(w, "- %d: %s %s, %s mpg\n", p.Year, p.Make, p.Model, number(p.Comb08))
	}
}

func number(v float64) string {
	if math.IsNaN(v) {
		return "n/a"
	}
	return fmt.Sprintf("%.2f", v)
}
