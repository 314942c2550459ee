// Package report renders classified ratio records: workbooks with
// color-coded anomalies, append-only anomaly logs and per-sample scatter
// plots. It consumes the engine's output records and never computes.
package report

import (
	"github.com/liserjrqlxue/goUtil/simpleUtil"
	"github.com/xuri/excelize/v2"
)

func CoordinatesToCellName(col int, row int, abs ...bool) string {
	return simpleUtil.HandleError(
		excelize.CoordinatesToCellName(
			col, row, abs...,
		),
	)
}

// anomalyStyles returns the red (deletion) and blue (duplication) font
// styles of a workbook.
func anomalyStyles(xlsx *excelize.File) (red, blue, bold int, err error) {
	red, err = xlsx.NewStyle(&excelize.Style{Font: &excelize.Font{Color: "FF0000"}})
	if err != nil {
		return
	}
	blue, err = xlsx.NewStyle(&excelize.Style{Font: &excelize.Font{Color: "0000FF"}})
	if err != nil {
		return
	}
	bold, err = xlsx.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	return
}
