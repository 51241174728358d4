package cmd

import (
	"fmt"
	"os"

	"fuelstat/internal/analysis"
	"fuelstat/internal/cmd/root"
	"fuelstat/internal/plot"
	"fuelstat/pkg/log"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var rootCmd = &cobra.Command{
	Use:   "fuelstat",
	Short: "Fuel economy and emissions trends from the EPA vehicles table",
	Run:   root.Run,
}

func init() {
	cobra.OnInitialize(initLogger)

	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug mode")
	rootCmd.PersistentFlags().String("file", "vehicles.csv", "Path to the vehicles CSV file")
	rootCmd.PersistentFlags().Bool("mock", false, "Use a generated vehicle table instead of --file")
	rootCmd.PersistentFlags().Int64("seed", 1, "Seed of the generated vehicle table")
	rootCmd.PersistentFlags().String("make", "", "Restrict the analysis to one manufacturer")

	rootCmd.Flags().Float64("emissions-scale", analysis.DefaultEmissionsScale, "Display scale applied to the CO2 g/km averages")
	rootCmd.Flags().String("out-dir", "charts", "Directory the charts are written to")
	rootCmd.Flags().Int("width", plot.DefaultWidth, "Chart width in pixels")
	rootCmd.Flags().Int("height", plot.DefaultHeight, "Chart height in pixels")
	rootCmd.Flags().Bool("no-tui", false, "Print a summary instead of opening the TUI")
	rootCmd.Flags().String("xlsx", "", "Also export the chart tables to this workbook")

	viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	viper.BindPFlag("file", rootCmd.PersistentFlags().Lookup("file"))
	viper.BindPFlag("mock", rootCmd.PersistentFlags().Lookup("mock"))
	viper.BindPFlag("seed", rootCmd.PersistentFlags().Lookup("seed"))
	viper.BindPFlag("make", rootCmd.PersistentFlags().Lookup("make"))
	viper.BindPFlag("emissions-scale", rootCmd.Flags().Lookup("emissions-scale"))
	viper.BindPFlag("out-dir", rootCmd.Flags().Lookup("out-dir"))
	viper.BindPFlag("width", rootCmd.Flags().Lookup("width"))
	viper.BindPFlag("height", rootCmd.Flags().Lookup("height"))
	viper.BindPFlag("no-tui", rootCmd.Flags().Lookup("no-tui"))
	viper.BindPFlag("xlsx", rootCmd.Flags().Lookup("xlsx"))

	// Set default values
	viper.SetDefault("debug", false)
	viper.SetDefault("file", "vehicles.csv")
	viper.SetDefault("mock", false)
	viper.SetDefault("seed", 1)
	viper.SetDefault("emissions-scale", analysis.DefaultEmissionsScale)
	viper.SetDefault("out-dir", "charts")
	viper.SetDefault("width", plot.DefaultWidth)
	viper.SetDefault("height", plot.DefaultHeight)
	viper.SetDefault("no-tui", false)

	rootCmd.AddCommand(previewCmd)
}

func initLogger() {
	log.InitLogger(viper.GetBool("debug"))
}

func Execute() {
	if code := run(); code != 0 {
		os.Exit(code)
	}
}

// run executes the root command and flushes the logger before the exit
// code is handed back.
func run() int {
	defer log.Sync()

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		return 1
	}
	return 0
}
