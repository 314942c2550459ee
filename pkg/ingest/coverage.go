package ingest

import (
	"fmt"
	"strconv"

	"github.com/xuri/excelize/v2"

	"github.com/SteampunkIslande/cnv-bichat/pkg/panel"
)

// Coverage export layout: amplicon id and total read count columns, one
// header row.
const (
	coverageIDCol    = 3
	coverageReadsCol = 9
)

// ReadCoverage parses a repaired coverage workbook into the amplicon
// id → read count mapping the engine consumes.
func ReadCoverage(path string) (map[string]int, error) {
	xlsx, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer xlsx.Close()

	sheets := xlsx.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("%s: workbook has no sheet", path)
	}
	rows, err := xlsx.GetRows(sheets[0])
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int)
	for i, row := range rows {
		if i == 0 {
			continue
		}
		if len(row) <= coverageReadsCol {
			return nil, fmt.Errorf("%s: row %d has %d columns, want at least %d", path, i+1, len(row), coverageReadsCol+1)
		}
		// counts can render as "123.0" after the workbook round trip
		n, err := strconv.ParseFloat(row[coverageReadsCol], 64)
		if err != nil {
			return nil, fmt.Errorf("%s: row %d: %v", path, i+1, err)
		}
		counts[panel.CleanID(row[coverageIDCol])] = int(n)
	}
	return counts, nil
}
