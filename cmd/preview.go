package cmd

import (
	"fuelstat/internal/cmd/preview"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Print the reordered table rows of one manufacturer",
	Run:   preview.Run,
}

func init() {
	previewCmd.Flags().Int("rows", 10, "Number of rows to print")
	previewCmd.Flags().Int("max-columns", 80, "Maximum number of columns to print")

	viper.BindPFlag("rows", previewCmd.Flags().Lookup("rows"))
	viper.BindPFlag("max-columns", previewCmd.Flags().Lookup("max-columns"))

	viper.SetDefault("rows", 10)
	viper.SetDefault("max-columns", 80)
}
