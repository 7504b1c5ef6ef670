package cmd

import (
	"fmt"

	"ndvi-tools/raster"
	"ndvi-tools/statsio"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var reportIn string
var reportOut string
var s2Lvl int

// reportCmd represents the report command
var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Aggregate an NDVI raster into an S2 cell report",
	Long: `Aggregate a single-band NDVI GeoTIFF into S2 cells, writing one row
	per cell with the aggregated value of the pixels whose centres fall
	inside it. Pixels equal to the band's nodata value are skipped.

	Options:
		--s2Lvl:   S2 cell level to aggregate to. Essentially output resolution.
		--aggFunc: Function to use when aggregating to S2 cell. Default is the
		           mean, choose from: mean, sum, max, min
		--format:  Output format, csv or parquet.`,
	Run: func(cmd *cobra.Command, args []string) {
		setLogLevels()

		opts := raster.ReportOpts{
			S2Lvl:   s2Lvl,
			AggFunc: chooseAggFunc(viper.GetString("aggFunc")),
		}
		cells, err := raster.ReportNDVI(reportIn, opts)
		if err != nil {
			panic(err)
		}

		switch viper.GetString("reportFormat") {
		case "parquet":
			err = statsio.WriteParquet(cells, reportOut)
		case "csv":
			err = statsio.WriteCSV(cells, reportOut)
		default:
			logrus.Warnf("Format %s not recognized, using csv", viper.GetString("reportFormat"))
			err = statsio.WriteCSV(cells, reportOut)
		}
		if err != nil {
			panic(err)
		}
		fmt.Printf("NDVI report complete. Output saved to: %s\n", reportOut)
	},
}

func chooseAggFunc(funcFlag string) raster.AggFunc {
	switch funcFlag {
	case "mean":
		return raster.Mean
	case "sum":
		return raster.Sum
	case "max":
		return raster.Max
	case "min":
		return raster.Min
	default:
		logrus.Warnf("Aggregation function %s not recognized, using mean", funcFlag)
		return raster.Mean
	}
}

func init() {
	rootCmd.AddCommand(reportCmd)

	reportCmd.Flags().StringVarP(&reportIn, "input", "i", "ndvi_output.tif", "Input single-band NDVI GeoTIFF")
	err := viper.BindPFlag("reportIn", reportCmd.Flags().Lookup("input"))
	if err != nil {
		logrus.Exit(1)
	}

	reportCmd.Flags().StringVarP(&reportOut, "out", "o", "ndvi_report.csv", "Path to write the report to")
	err = viper.BindPFlag("reportOut", reportCmd.Flags().Lookup("out"))
	if err != nil {
		logrus.Exit(1)
	}

	reportCmd.Flags().IntVarP(&s2Lvl, "s2Lvl", "l", 11, "S2 cell level to aggregate to. Essentially output resolution")
	err = viper.BindPFlag("s2Lvl", reportCmd.Flags().Lookup("s2Lvl"))
	if err != nil {
		logrus.Exit(1)
	}

	reportCmd.Flags().StringP("aggFunc", "a", "mean", "Function to use when aggregating to S2 cell. Default is the mean, choose from: mean, sum, max, min")
	err = viper.BindPFlag("aggFunc", reportCmd.Flags().Lookup("aggFunc"))
	if err != nil {
		logrus.Exit(1)
	}

	reportCmd.Flags().StringP("format", "f", "csv", "Output format, csv or parquet")
	err = viper.BindPFlag("reportFormat", reportCmd.Flags().Lookup("format"))
	if err != nil {
		logrus.Exit(1)
	}
}
