package ingest

import (
	"fmt"
	"log/slog"

	"github.com/liserjrqlxue/goUtil/simpleUtil"
	"github.com/xuri/excelize/v2"

	"github.com/SteampunkIslande/cnv-bichat/pkg/panel"
)

// MatrixSheet is the single sheet of the combined coverage workbook.
const MatrixSheet = "matrix_coverageALL"

// WriteCoverageMatrix writes the combined coverage workbook
// (fichierEntreCNV_ALLpatients.xlsx): Gene and region_id columns, then one
// raw-count column per sample, rows in panel order.
func WriteCoverageMatrix(path string, p *panel.Panel, samples []string, counts map[string]map[string]int) error {
	xlsx := excelize.NewFile()
	defer simpleUtil.DeferClose(xlsx)
	if err := xlsx.SetSheetName("Sheet1", MatrixSheet); err != nil {
		return err
	}

	header := []any{"Gene", "region_id"}
	for _, sample := range samples {
		header = append(header, sample)
	}
	if err := xlsx.SetSheetRow(MatrixSheet, "A1", &header); err != nil {
		return err
	}

	for i, a := range p.Amplicons() {
		line := []any{a.Gene, a.ID}
		for _, sample := range samples {
			n, ok := counts[sample][a.ID]
			if !ok {
				return fmt.Errorf("sample %s: no read count for amplicon %s", sample, a.ID)
			}
			line = append(line, n)
		}
		if err := xlsx.SetSheetRow(MatrixSheet, fmt.Sprintf("A%d", i+2), &line); err != nil {
			return err
		}
	}

	slog.Info("coverage matrix", "path", path, "amplicons", p.Size(), "samples", len(samples))
	return xlsx.SaveAs(path)
}
