package statsio

import (
	"os"

	"ndvi-tools/raster"

	"github.com/sirupsen/logrus"
)

func WriteCSV(cells []raster.CellValue, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if err := f.Close(); err != nil {
			logrus.Error(err)
		}
	}()

	if _, err := f.WriteString("s2_id,ndvi\n"); err != nil {
		return err
	}

	for i, cell := range cells {
		if i%10000 == 0 {
			logrus.Infof("Writing cell %d", i)
		}
		if _, err := f.WriteString(cell.String() + "\n"); err != nil {
			return err
		}
	}
	if err = f.Sync(); err != nil {
		return err
	}
	return nil
}
