package report

import (
	"log/slog"

	"github.com/liserjrqlxue/goUtil/simpleUtil"
	"github.com/xuri/excelize/v2"

	"github.com/SteampunkIslande/cnv-bichat/pkg/cnv"
)

// WriteRatioWorkbook writes the per-amplicon ratio workbook
// (Resultat_Ratio_<run>.xlsx): bold Chr and AmpliconID header, one ratio
// column per sample, rows in panel order. Deletion cells use a red font,
// duplication cells a blue one.
func WriteRatioWorkbook(path string, results []*cnv.SampleResult) error {
	xlsx := excelize.NewFile()
	defer simpleUtil.DeferClose(xlsx)
	sheet := xlsx.GetSheetName(0)

	red, blue, bold, err := anomalyStyles(xlsx)
	if err != nil {
		return err
	}

	xlsx.SetCellValue(sheet, "A1", "Chr")
	xlsx.SetCellValue(sheet, "B1", "AmpliconID")
	if err := xlsx.SetCellStyle(sheet, "A1", "B1", bold); err != nil {
		return err
	}

	for col, result := range results {
		header := CoordinatesToCellName(col+3, 1)
		xlsx.SetCellValue(sheet, header, result.Sample)
		if err := xlsx.SetCellStyle(sheet, header, header, bold); err != nil {
			return err
		}

		for row, r := range result.Amplicons {
			if col == 0 {
				xlsx.SetCellValue(sheet, CoordinatesToCellName(1, row+2), r.Chr)
				xlsx.SetCellValue(sheet, CoordinatesToCellName(2, row+2), r.ID)
			}
			cell := CoordinatesToCellName(col+3, row+2)
			xlsx.SetCellValue(sheet, cell, r.Ratio)
			switch r.Class {
			case cnv.Deletion:
				err = xlsx.SetCellStyle(sheet, cell, cell, red)
			case cnv.Duplication:
				err = xlsx.SetCellStyle(sheet, cell, cell, blue)
			}
			if err != nil {
				return err
			}
		}
	}

	slog.Info("ratio workbook", "path", path, "samples", len(results))
	return xlsx.SaveAs(path)
}
