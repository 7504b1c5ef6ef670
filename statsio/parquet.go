package statsio

import (
	"os"

	"ndvi-tools/raster"

	"github.com/parquet-go/parquet-go"
	"github.com/sirupsen/logrus"
)

type cellRow struct {
	S2id int64   `parquet:"s2_id, type=INT64"`
	NDVI float64 `parquet:"ndvi, type=DOUBLE"`
}

// WriteParquet writes an NDVI cell report as a snappy-compressed parquet
// file. Reports fit in memory (one row per S2 cell), so rows are written in
// a single batch rather than streamed.
func WriteParquet(cells []raster.CellValue, path string) error {
	output, err := os.Create(path)
	if err != nil {
		return err
	}

	schema := parquet.SchemaOf(new(cellRow))
	writer := parquet.NewGenericWriter[cellRow](output, schema, parquet.Compression(&parquet.Snappy))
	defer func() {
		if err := writer.Close(); err != nil {
			logrus.Error(err)
		}
		if err := output.Close(); err != nil {
			logrus.Error(err)
		}
	}()

	rows := make([]cellRow, len(cells))
	for i, cell := range cells {
		rows[i] = cellRow{int64(cell.Cell), cell.Value}
	}
	if _, err := writer.Write(rows); err != nil {
		return err
	}
	return nil
}
