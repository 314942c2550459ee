package panel

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func writeWorkbook(t *testing.T, path string, rows [][]any) {
	t.Helper()
	xlsx := excelize.NewFile()
	for i, row := range rows {
		require.NoError(t, xlsx.SetSheetRow("Sheet1", cellName(t, 1, i+1), &row))
	}
	require.NoError(t, xlsx.SaveAs(path))
	require.NoError(t, xlsx.Close())
}

func cellName(t *testing.T, col, row int) string {
	t.Helper()
	cell, err := excelize.CoordinatesToCellName(col, row)
	require.NoError(t, err)
	return cell
}

func TestLoadPanel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "panel.xlsx")
	writeWorkbook(t, path, [][]any{
		{"Chr", "Start", "End", "region_id", "Pos", "Gene"},
		{"chr1", 1000, 1100, "AMPL100", 1, "HMBS"},
		{"chr1", 1200, 1300, "AMPL101", 2, "HMBS"},
		{"chr11", 2000, 2100, "224830378.0", 3, "TH01"},
	})

	p, err := LoadPanel(path)
	require.NoError(t, err)
	assert.Equal(t, 3, p.Size())
	assert.Equal(t, []string{"HMBS", "TH01"}, p.Genes())

	a, ok := p.Lookup("224830378")
	require.True(t, ok)
	assert.Equal(t, "chr11", a.Chr)
}

func TestLoadPanelShortRow(t *testing.T) {
	path := filepath.Join(t.TempDir(), "panel.xlsx")
	writeWorkbook(t, path, [][]any{
		{"Chr", "Start", "End", "region_id", "Pos", "Gene"},
		{"chr1", 1000, 1100, "AMPL100"},
	})

	_, err := LoadPanel(path)
	var refErr *ReferenceDataError
	require.ErrorAs(t, err, &refErr)
}

func TestLoadPanelMissingFile(t *testing.T) {
	_, err := LoadPanel(filepath.Join(t.TempDir(), "nope.xlsx"))
	var refErr *ReferenceDataError
	require.ErrorAs(t, err, &refErr)
}

func TestLoadBaseline(t *testing.T) {
	dir := t.TempDir()
	panelPath := filepath.Join(dir, "panel.xlsx")
	writeWorkbook(t, panelPath, [][]any{
		{"Chr", "Start", "End", "region_id", "Pos", "Gene"},
		{"chr1", 1000, 1100, "AMPL100", 1, "HMBS"},
		{"chr1", 1200, 1300, "AMPL101", 2, "HMBS"},
	})
	p, err := LoadPanel(panelPath)
	require.NoError(t, err)

	baselinePath := filepath.Join(dir, "baseline.xlsx")
	writeWorkbook(t, baselinePath, [][]any{
		{"region_id", "mean_normalized"},
		{"AMPL100", 1.25},
		{"AMPL101", 0.75},
	})

	b, err := LoadBaseline(baselinePath, p)
	require.NoError(t, err)
	assert.Equal(t, 1.25, b["AMPL100"])
	assert.Equal(t, 0.75, b["AMPL101"])
}

func TestLoadBaselineBadValue(t *testing.T) {
	dir := t.TempDir()
	panelPath := filepath.Join(dir, "panel.xlsx")
	writeWorkbook(t, panelPath, [][]any{
		{"Chr", "Start", "End", "region_id", "Pos", "Gene"},
		{"chr1", 1000, 1100, "AMPL100", 1, "HMBS"},
	})
	p, err := LoadPanel(panelPath)
	require.NoError(t, err)

	baselinePath := filepath.Join(dir, "baseline.xlsx")
	writeWorkbook(t, baselinePath, [][]any{
		{"region_id", "mean_normalized"},
		{"AMPL100", "not a number"},
	})

	_, err = LoadBaseline(baselinePath, p)
	var refErr *ReferenceDataError
	require.ErrorAs(t, err, &refErr)
}
