package raster

import (
	"fmt"
	"math/rand"

	"github.com/airbusgeo/godal"
	"github.com/sirupsen/logrus"
)

// Defaults reproduce the sample scene the ndvi command expects: band 1 is
// red, band 2 is near-infrared.
const (
	DefaultSamplePath = "sample_multiband.tif"
	DefaultBands      = 5
	DefaultWidth      = 256
	DefaultHeight     = 256

	sampleEPSG  = 4326
	sampleMinDN = 100
	sampleMaxDN = 4000
	nirBoost    = 2500
)

// Origin 140E 35S, 0.01 degree pixels.
var sampleGeoTransform = [6]float64{140.0, 0.01, 0, -35.0, 0, -0.01}

type GenerateConfig struct {
	Path   string
	Width  int
	Height int
	Bands  int
}

// GenerateSample writes a mock multi-band GeoTIFF with plausible satellite
// reflectance values. A circular region in the centre of the scene gets
// boosted NIR and reduced red so that downstream NDVI output shows a clear
// vegetated patch. Any existing file at cfg.Path is overwritten.
func GenerateSample(cfg GenerateConfig) (err error) {
	godal.RegisterAll()

	srs, err := godal.NewSpatialRefFromEPSG(sampleEPSG)
	if err != nil {
		return fmt.Errorf("creating EPSG:%d spatial ref: %w", sampleEPSG, err)
	}

	ds, err := godal.Create(godal.GTiff, cfg.Path, cfg.Bands, godal.UInt16, cfg.Width, cfg.Height)
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

	if err := ds.SetGeoTransform(sampleGeoTransform); err != nil {
		return fmt.Errorf("setting geotransform: %w", err)
	}
	if err := ds.SetSpatialRef(srs); err != nil {
		return fmt.Errorf("setting spatial ref: %w", err)
	}

	bands := ds.Bands()
	for i := range bands {
		logrus.Debugf("Synthesising band %d", i+1)
		buf := synthBand(cfg.Width, cfg.Height, i)
		if err := bands[i].Write(0, 0, buf, cfg.Width, cfg.Height); err != nil {
			return fmt.Errorf("writing band %d: %w", i+1, err)
		}
	}
	return nil
}

// synthBand fills one band with pseudo-random digital numbers. Band index is
// 0-based; bands 0 (red) and 1 (NIR) additionally get the vegetated circle
// applied.
func synthBand(width, height, bandIdx int) []uint16 {
	buf := make([]uint16, width*height)
	for i := range buf {
		buf[i] = uint16(sampleMinDN + rand.Intn(sampleMaxDN-sampleMinDN))
	}

	if bandIdx > 1 {
		return buf
	}

	centerX, centerY := width/2, height/2
	radius := min(width, height) / 3
	for row := 0; row < height; row++ {
		for col := 0; col < width; col++ {
			dx, dy := col-centerX, row-centerY
			if dx*dx+dy*dy > radius*radius {
				continue
			}
			pix := row*width + col
			if bandIdx == 1 {
				buf[pix] += nirBoost
			} else {
				buf[pix] /= 2
			}
		}
	}
	return buf
}
