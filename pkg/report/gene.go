package report

import (
	"log/slog"

	"github.com/liserjrqlxue/goUtil/simpleUtil"
	"github.com/xuri/excelize/v2"

	"github.com/SteampunkIslande/cnv-bichat/pkg/cnv"
)

// GeneSheet is the sheet of the per-gene mean ratio workbook.
const GeneSheet = "Resultats_moyenneRatioParGene"

// WriteGeneWorkbook writes the per-gene mean ratio workbook
// (Resultat_MeanRatioGene_<run>.xlsx): Chr and Gene columns plus one mean
// ratio column per sample. Suppressed genes keep their numeric value and
// classification but get no color highlighting.
func WriteGeneWorkbook(path string, results []*cnv.SampleResult) error {
	xlsx := excelize.NewFile()
	defer simpleUtil.DeferClose(xlsx)
	if err := xlsx.SetSheetName("Sheet1", GeneSheet); err != nil {
		return err
	}

	red, blue, bold, err := anomalyStyles(xlsx)
	if err != nil {
		return err
	}

	xlsx.SetCellValue(GeneSheet, "A1", "Chr")
	xlsx.SetCellValue(GeneSheet, "B1", "Gene")
	if err := xlsx.SetCellStyle(GeneSheet, "A1", "B1", bold); err != nil {
		return err
	}

	for col, result := range results {
		header := CoordinatesToCellName(col+3, 1)
		xlsx.SetCellValue(GeneSheet, header, result.Sample)
		if err := xlsx.SetCellStyle(GeneSheet, header, header, bold); err != nil {
			return err
		}

		for row, g := range result.Genes {
			if col == 0 {
				xlsx.SetCellValue(GeneSheet, CoordinatesToCellName(1, row+2), g.Chr)
				xlsx.SetCellValue(GeneSheet, CoordinatesToCellName(2, row+2), g.Gene)
			}
			cell := CoordinatesToCellName(col+3, row+2)
			xlsx.SetCellValue(GeneSheet, cell, g.Ratio)
			if g.Suppressed {
				continue
			}
			switch g.Class {
			case cnv.Deletion:
				err = xlsx.SetCellStyle(GeneSheet, cell, cell, red)
			case cnv.Duplication:
				err = xlsx.SetCellStyle(GeneSheet, cell, cell, blue)
			}
			if err != nil {
				return err
			}
		}
	}

	slog.Info("gene workbook", "path", path, "samples", len(results))
	return xlsx.SaveAs(path)
}
