package panel

import (
	"fmt"
	"strconv"

	"github.com/xuri/excelize/v2"
)

// Reference workbook layout, inherited from the Genexus export chain.
const (
	panelChrCol  = 0
	panelIDCol   = 3
	panelGeneCol = 5

	baselineIDCol    = 0
	baselineValueCol = 1
)

// LoadPanel reads the ordered reference workbook
// (GENEXUS_fichierOrdonneRegionStartGene_PanelAPHP.xlsx): chromosome in
// column A, amplicon id in column D, gene in column F, one header row.
func LoadPanel(path string) (*Panel, error) {
	rows, err := readFirstSheet(path)
	if err != nil {
		return nil, &ReferenceDataError{Source: "panel", Detail: err.Error()}
	}

	var panelRows []Row
	for i, row := range rows {
		if i == 0 {
			continue
		}
		if len(row) <= panelGeneCol {
			return nil, &ReferenceDataError{
				Source: "panel",
				Detail: fmt.Sprintf("%s: row %d has %d columns, want at least %d", path, i+1, len(row), panelGeneCol+1),
			}
		}
		panelRows = append(panelRows, Row{
			Chr:  row[panelChrCol],
			ID:   row[panelIDCol],
			Gene: row[panelGeneCol],
		})
	}
	return New(panelRows)
}

// LoadBaseline reads the control cohort workbook
// (Moyenne_NormalizedRead_count_TemoinsPorphyriesGENEXUS.xlsx): amplicon id
// in column A, mean normalized read count in column B, one header row.
func LoadBaseline(path string, p *Panel) (Baseline, error) {
	rows, err := readFirstSheet(path)
	if err != nil {
		return nil, &ReferenceDataError{Source: "baseline", Detail: err.Error()}
	}

	values := make(map[string]float64)
	for i, row := range rows {
		if i == 0 {
			continue
		}
		if len(row) <= baselineValueCol {
			return nil, &ReferenceDataError{
				Source: "baseline",
				Detail: fmt.Sprintf("%s: row %d has no baseline value", path, i+1),
			}
		}
		v, err := strconv.ParseFloat(row[baselineValueCol], 64)
		if err != nil {
			return nil, &ReferenceDataError{
				Source: "baseline",
				Detail: fmt.Sprintf("%s: row %d: %v", path, i+1, err),
			}
		}
		values[row[baselineIDCol]] = v
	}
	return NewBaseline(values, p)
}

func readFirstSheet(path string) ([][]string, error) {
	xlsx, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer xlsx.Close()

	sheets := xlsx.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("%s: workbook has no sheet", path)
	}
	return xlsx.GetRows(sheets[0])
}
