package cmd

import (
	"fmt"

	"ndvi-tools/raster"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var ndviIn string
var ndviOut string
var redBand int
var nirBand int

// ndviCmd represents the ndvi command
var ndviCmd = &cobra.Command{
	Use:   "ndvi",
	Short: "Compute NDVI from a multi-band GeoTIFF",
	Long: `Compute the Normalized Difference Vegetation Index,
	(NIR - Red) / (NIR + Red), from two bands of a multi-band GeoTIFF and
	write it as a single-band float32 GeoTIFF. The output reuses the input's
	dimensions, geotransform and coordinate reference system.

	Band numbers are 1-based and depend on the sensor. Common examples:
	- Landsat 8/9: Red = Band 4, NIR = Band 5
	- Sentinel-2:  Red = Band 4, NIR = Band 8
	The defaults match files produced by the generate subcommand.

	Pixels where Red + NIR is zero come out as 0; everything else lies in
	[-1, 1].`,
	Run: func(cmd *cobra.Command, args []string) {
		setLogLevels()

		cfg := raster.NDVIConfig{
			InputPath:  ndviIn,
			OutputPath: ndviOut,
			RedBand:    redBand,
			NIRBand:    nirBand,
		}
		if err := raster.CalculateNDVI(cfg); err != nil {
			panic(err)
		}
		fmt.Printf("NDVI calculation complete. Output saved to: %s\n", ndviOut)
	},
}

func init() {
	rootCmd.AddCommand(ndviCmd)

	ndviCmd.Flags().StringVarP(&ndviIn, "input", "i", raster.DefaultSamplePath, "Input multi-band GeoTIFF")
	err := viper.BindPFlag("ndviIn", ndviCmd.Flags().Lookup("input"))
	if err != nil {
		logrus.Exit(1)
	}

	ndviCmd.Flags().StringVarP(&ndviOut, "out", "o", "ndvi_output.tif", "Path to write the NDVI GeoTIFF to")
	err = viper.BindPFlag("ndviOut", ndviCmd.Flags().Lookup("out"))
	if err != nil {
		logrus.Exit(1)
	}

	ndviCmd.Flags().IntVarP(&redBand, "red", "r", 1, "1-based band number of the red channel")
	err = viper.BindPFlag("redBand", ndviCmd.Flags().Lookup("red"))
	if err != nil {
		logrus.Exit(1)
	}

	ndviCmd.Flags().IntVarP(&nirBand, "nir", "n", 2, "1-based band number of the near-infrared channel")
	err = viper.BindPFlag("nirBand", ndviCmd.Flags().Lookup("nir"))
	if err != nil {
		logrus.Exit(1)
	}
}
