package ingestion

import (
	"encoding/csv"
	"io"
	"os"

	"github.com/cockroachdb/errors"

	"github.com/heatsight/heatsight-backend/models"
	"github.com/heatsight/heatsight-backend/pure_utils"
)

// ReadCsvRows reads a whole CSV export into dynamically typed rows. The
// first record is the header; every header is normalized to snake_case
// before it becomes a key, so no caller ever sees raw header text. Rows
// whose cells are all empty are dropped, matching the exporter's trailing
// blank lines.
func ReadCsvRows(filePath string) ([]models.RawRow, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, errors.Wrapf(err, "error opening csv file %s", filePath)
	}
	defer file.Close()

	reader := csv.NewReader(pure_utils.NewReaderWithoutBom(file))
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err == io.EOF {
		return nil, errors.Newf("csv file %s is empty", filePath)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "error reading csv header of %s", filePath)
	}

	keys := make([]string, len(header))
	for i, h := range header {
		keys[i] = pure_utils.NormalizeHeader(h)
	}

	var rows []models.RawRow
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrapf(err, "error parsing csv file %s", filePath)
		}

		row := make(models.RawRow, len(keys))
		empty := true
		for i, cell := range record {
			if i >= len(keys) || keys[i] == "" {
				continue
			}
			value := models.NewCsvValue(cell)
			if !value.IsAbsent() {
				empty = false
			}
			row[keys[i]] = value
		}
		if !empty {
			rows = append(rows, row)
		}
	}
	return rows, nil
}
