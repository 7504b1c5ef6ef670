package raster

import (
	"path/filepath"
	"testing"

	"github.com/airbusgeo/godal"
)

func TestGenerateSample(t *testing.T) {
	godal.RegisterAll()
	path := filepath.Join(t.TempDir(), "sample.tif")

	cfg := GenerateConfig{Path: path, Width: 32, Height: 32, Bands: 4}
	if err := GenerateSample(cfg); err != nil {
		t.Fatal(err)
	}

	ds, err := godal.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer func() {
		if err := ds.Close(); err != nil {
			t.Fatal(err)
		}
	}()

	struc := ds.Structure()
	if struc.NBands != 4 {
		t.Errorf("got %d bands, want 4", struc.NBands)
	}
	if struc.SizeX != 32 || struc.SizeY != 32 {
		t.Errorf("got %dx%d, want 32x32", struc.SizeX, struc.SizeY)
	}

	gt, err := ds.GeoTransform()
	if err != nil {
		t.Fatal(err)
	}
	if gt != sampleGeoTransform {
		t.Errorf("got geotransform %v, want %v", gt, sampleGeoTransform)
	}

	bands := ds.Bands()
	for i := range bands {
		if dt := bands[i].Structure().DataType; dt != godal.UInt16 {
			t.Errorf("band %d: got datatype %v, want %v", i+1, dt, godal.UInt16)
		}
	}
}

// The vegetated circle guarantees NIR > red at the scene centre: red is at
// most (4000-1)/2 there while NIR is at least 100+2500.
func TestGenerateSampleVegetatedCentre(t *testing.T) {
	godal.RegisterAll()
	path := filepath.Join(t.TempDir(), "sample.tif")

	cfg := GenerateConfig{Path: path, Width: 16, Height: 16, Bands: 2}
	if err := GenerateSample(cfg); err != nil {
		t.Fatal(err)
	}

	ds, err := godal.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer func() {
		if err := ds.Close(); err != nil {
			t.Fatal(err)
		}
	}()

	bands := ds.Bands()
	centre := make([]uint16, 2)
	for i := range centre {
		buf := make([]uint16, 1)
		if err := bands[i].Read(8, 8, buf, 1, 1); err != nil {
			t.Fatal(err)
		}
		centre[i] = buf[0]
	}
	red, nir := centre[0], centre[1]
	if nir <= red {
		t.Errorf("centre pixel: NIR %d not greater than red %d", nir, red)
	}
}

func TestGenerateSampleOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sample.tif")

	cfg := GenerateConfig{Path: path, Width: 8, Height: 8, Bands: 2}
	if err := GenerateSample(cfg); err != nil {
		t.Fatal(err)
	}
	cfg.Bands = 3
	if err := GenerateSample(cfg); err != nil {
		t.Fatal(err)
	}

	ds, err := godal.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer func() {
		if err := ds.Close(); err != nil {
			t.Fatal(err)
		}
	}()
	if n := ds.Structure().NBands; n != 3 {
		t.Errorf("got %d bands after overwrite, want 3", n)
	}
}

func TestSynthBandRange(t *testing.T) {
	for bandIdx := 0; bandIdx < 3; bandIdx++ {
		buf := synthBand(20, 20, bandIdx)
		if len(buf) != 400 {
			t.Fatalf("band %d: got %d samples, want 400", bandIdx, len(buf))
		}
		for i, v := range buf {
			if v >= sampleMaxDN+nirBoost {
				t.Errorf("band %d pixel %d: value %d above expected ceiling", bandIdx, i, v)
			}
		}
	}
}
