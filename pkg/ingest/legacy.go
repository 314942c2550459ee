package ingest

import (
	"log/slog"
	"os"
	"strings"

	"github.com/liserjrqlxue/goUtil/simpleUtil"
	"github.com/xuri/excelize/v2"
)

// RepairLegacyExport rewrites a Genexus coverage export into a real
// workbook. The ".xls" the instrument writes is in fact tab-separated text;
// every line becomes a sheet row, field per cell, on a sheet named after
// the sample. The repaired workbook is written next to the export with an
// ".xlsx" suffix appended and its path is returned.
func RepairLegacyExport(path, sample string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}

	xlsx := excelize.NewFile()
	defer simpleUtil.DeferClose(xlsx)
	if err := xlsx.SetSheetName("Sheet1", sample); err != nil {
		return "", err
	}

	for i, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSuffix(line, "\r")
		if line == "" {
			continue
		}
		fields := strings.Split(line, "\t")
		cells := make([]any, len(fields))
		for j, field := range fields {
			cells[j] = field
		}
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return "", err
		}
		if err := xlsx.SetSheetRow(sample, cell, &cells); err != nil {
			return "", err
		}
	}

	repaired := path + ".xlsx"
	slog.Debug("repair", "from", path, "to", repaired)
	return repaired, xlsx.SaveAs(repaired)
}
