package preview

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"fuelstat/internal/cmd/root"
	"fuelstat/internal/dataset"
	"fuelstat/pkg/log"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// DefaultMake is previewed when --make is not set.
const DefaultMake = "Volvo"

func Run(cmd *cobra.Command, args []string) {
	mk := viper.GetString("make")
	if mk == "" {
		viper.Set("make", DefaultMake)
		mk = DefaultMake
	}

	ds, err := root.LoadDataset(context.Background())
	if err != nil {
		log.Fatal("failed to load vehicle table", zap.Error(err))
	}

	Print(os.Stdout, ds, viper.GetInt("rows"), viper.GetInt("max-columns"))
	fmt.Printf("\n%d %s rows in total\n", ds.Len(), mk)
}

// Print writes the header and the first rows of ds as tab separated text,
// keeping at most maxColumns columns.
func Print(w io.Writer, ds *dataset.Dataset, rows, maxColumns int) {
	columns := ds.Columns()
	if maxColumns > 0 && len(columns) > maxColumns {
		columns = columns[:maxColumns]
	}
	fmt.Fprintln(w, strings.Join(columns, "\t"))

	for _, row := range ds.Head(rows) {
		if len(row) > len(columns) {
			row = row[:len(columns)]
		}
		fmt.Fprintln(w, strings.Join(row, "\t"))
	}
}
