package raster

import (
	"fmt"
	"sort"

	"github.com/airbusgeo/godal"
	"github.com/golang/geo/s2"
	"github.com/sirupsen/logrus"
)

type Point struct {
	Lat float64
	Lng float64
}

// CellValue is one row of an NDVI report: an S2 cell and the aggregated NDVI
// of the pixels whose centres fall inside it.
type CellValue struct {
	Cell  s2.CellID
	Value float64
}

func (c CellValue) String() string {
	return fmt.Sprintf("%d,%g", int64(c.Cell), c.Value)
}

type ReportOpts struct {
	S2Lvl   int
	AggFunc AggFunc
}

// ReportNDVI buckets every valid pixel of a single-band NDVI raster into S2
// cells at opts.S2Lvl and aggregates each bucket with opts.AggFunc. Pixels
// equal to the band's nodata value are skipped. Results are sorted by cell ID
// so repeated runs produce identical reports.
func ReportNDVI(path string, opts ReportOpts) (cells []CellValue, err error) {
	godal.RegisterAll()

	ds, err := godal.Open(path)
	if err != nil {
		logrus.Error(err)
		return nil, err
	}
	defer func() {
		if cerr := ds.Close(); cerr != nil {
			logrus.Error(cerr)
			if err == nil {
				err = cerr
			}
		}
	}()

	origin, xRes, yRes, err := getOriginAndResolution(ds)
	if err != nil {
		return nil, err
	}

	band := ds.Bands()[0]
	buf, err := readBandFloat(band)
	if err != nil {
		return nil, fmt.Errorf("reading NDVI band: %w", err)
	}
	noData, hasNoData := band.NoData()
	if !hasNoData {
		logrus.Warn("NoData not set, aggregating every pixel")
	}

	width := band.Structure().SizeX
	groups := make(map[s2.CellID][]float64)
	for pix, value := range buf {
		if hasNoData && value == noData {
			continue
		}
		// GDAL is row-major
		row := pix / width
		col := pix % width

		lat := origin.Lat + (float64(row)+0.5)*yRes
		lng := origin.Lng + (float64(col)+0.5)*xRes

		cell := s2.CellIDFromLatLng(s2.LatLngFromDegrees(lat, lng)).Parent(opts.S2Lvl)
		groups[cell] = append(groups[cell], value)
	}
	logrus.Infof("Aggregated %d pixels into %d cells", len(buf), len(groups))

	cells = make([]CellValue, 0, len(groups))
	for cell, values := range groups {
		cells = append(cells, CellValue{cell, opts.AggFunc(values...)})
	}
	sort.Slice(cells, func(i, j int) bool { return cells[i].Cell < cells[j].Cell })
	return cells, nil
}

func getOriginAndResolution(ds *godal.Dataset) (Point, float64, float64, error) {
	gt, err := ds.GeoTransform()
	if err != nil {
		logrus.Error(err)
		return Point{}, 0, 0, err
	}
	origin := Point{gt[3], gt[0]}
	xRes := gt[1]
	yRes := gt[5]
	return origin, xRes, yRes, nil
}
