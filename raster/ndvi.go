package raster

import (
	"fmt"
	"math"

	"github.com/airbusgeo/godal"
	"github.com/sirupsen/logrus"
)

// NoDataValue marks pixels without a valid NDVI result in output rasters.
const NoDataValue = -9999

type NDVIConfig struct {
	InputPath  string
	OutputPath string
	RedBand    int // 1-based
	NIRBand    int // 1-based
}

// CalculateNDVI reads the red and NIR bands of a multi-band raster, computes
// (NIR-red)/(NIR+red) per pixel and writes the result as a single-band
// float32 GeoTIFF carrying the input's geotransform and spatial reference.
// Band indices are validated before anything is written, so a failed run
// leaves no output file behind.
func CalculateNDVI(cfg NDVIConfig) (err error) {
	godal.RegisterAll()

	ds, err := godal.Open(cfg.InputPath)
	if err != nil {
		logrus.Error(err)
		return err
	}
	defer func() {
		if cerr := ds.Close(); cerr != nil {
			logrus.Error(cerr)
			if err == nil {
				err = cerr
			}
		}
	}()

	struc := ds.Structure()
	if err := checkBandIndex(cfg.RedBand, struc.NBands); err != nil {
		return err
	}
	if err := checkBandIndex(cfg.NIRBand, struc.NBands); err != nil {
		return err
	}

	gt, err := ds.GeoTransform()
	if err != nil {
		return fmt.Errorf("reading geotransform: %w", err)
	}

	bands := ds.Bands()
	red, err := readBandFloat(bands[cfg.RedBand-1])
	if err != nil {
		return fmt.Errorf("reading red band %d: %w", cfg.RedBand, err)
	}
	nir, err := readBandFloat(bands[cfg.NIRBand-1])
	if err != nil {
		return fmt.Errorf("reading NIR band %d: %w", cfg.NIRBand, err)
	}

	logrus.Infof("Computing NDVI over %dx%d pixels", struc.SizeX, struc.SizeY)
	ndvi := normalizedDifference(nir, red)

	return writeNDVI(cfg.OutputPath, ndvi, gt, ds.SpatialRef(), struc.SizeX, struc.SizeY)
}

func checkBandIndex(band, nBands int) error {
	if band < 1 || band > nBands {
		return fmt.Errorf("band %d out of range: raster has %d bands", band, nBands)
	}
	return nil
}

// readBandFloat reads a whole band into a float64 buffer. GDAL converts from
// the band's native sample type, which avoids integer division downstream.
func readBandFloat(band godal.Band) ([]float64, error) {
	xSize := band.Structure().SizeX
	ySize := band.Structure().SizeY
	buf := make([]float64, xSize*ySize)
	if err := band.Read(0, 0, buf, xSize, ySize); err != nil {
		return nil, err
	}
	return buf, nil
}

// normalizedDifference computes (a-b)/(a+b) elementwise, clamped to [-1, 1].
// Pixels where the denominator is zero come out as exactly 0.
func normalizedDifference(a, b []float64) []float64 {
	out := make([]float64, len(a))
	for i := range out {
		denom := a[i] + b[i]
		if denom == 0 {
			continue
		}
		v := (a[i] - b[i]) / denom
		if math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		out[i] = math.Max(-1, math.Min(1, v))
	}
	return out
}

func writeNDVI(path string, ndvi []float64, gt [6]float64, srs *godal.SpatialRef, width, height int) (err error) {
	out, err := godal.Create(godal.GTiff, path, 1, godal.Float32, width, height)
	if err != nil {
		logrus.Error(err)
		return err
	}
	defer func() {
		if cerr := out.Close(); cerr != nil {
			logrus.Error(cerr)
			if err == nil {
				err = cerr
			}
		}
	}()

	if err := out.SetGeoTransform(gt); err != nil {
		return fmt.Errorf("setting output geotransform: %w", err)
	}
	if srs != nil {
		if err := out.SetSpatialRef(srs); err != nil {
			return fmt.Errorf("setting output spatial ref: %w", err)
		}
	}

	band := out.Bands()[0]
	if err := band.SetNoData(NoDataValue); err != nil {
		return fmt.Errorf("setting nodata: %w", err)
	}

	buf := make([]float32, len(ndvi))
	for i, v := range ndvi {
		buf[i] = float32(v)
	}
	if err := band.Write(0, 0, buf, width, height); err != nil {
		return fmt.Errorf("writing NDVI band: %w", err)
	}
	return nil
}
