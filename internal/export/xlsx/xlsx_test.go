package xlsx

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/hay-kot/practica/internal/core/challenge"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExportCSV(t *testing.T) {
	csvPath := filepath.Join(t.TempDir(), "practica.csv")
	content := "id,date,time,description,tags,duration_minutes\nabc,2026-01-02,11:00,\"Test, 2\",py,15\n"
	require.NoError(t, os.WriteFile(csvPath, []byte(content), 0o644))

	var buf bytes.Buffer
	require.NoError(t, ExportCSV(csvPath, &buf, ""))

	book, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer func() { _ = book.Close() }()

	assert.Equal(t, []string{DefaultSheet}, book.GetSheetList())

	rows, err := book.GetRows(DefaultSheet)
	require.NoError(t, err)
	assert.Equal(t, [][]string{
		{"id", "date", "time", "description", "tags", "duration_minutes"},
		{"abc", "2026-01-02", "11:00", "Test, 2", "py", "15"},
	}, rows)

	cellType, err := book.GetCellType(DefaultSheet, "F2")
	require.NoError(t, err)
	assert.NotEqual(t, excelize.CellTypeSharedString, cellType)
}

func TestExportFile_CustomSheet(t *testing.T) {
	dir := t.TempDir()
	csvPath := filepath.Join(dir, "challenges.csv")
	xlsxPath := filepath.Join(dir, "challenges.xlsx")
	require.NoError(t, os.WriteFile(csvPath, []byte("date,description,status\n2026-01-02,x,pending\n"), 0o644))

	require.NoError(t, ExportFile(csvPath, xlsxPath, "Challenges"))

	book, err := excelize.OpenFile(xlsxPath)
	require.NoError(t, err)
	defer func() { _ = book.Close() }()

	rows, err := book.GetRows("Challenges")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, []string{"2026-01-02", "x", "pending"}, rows[1])
}

func TestExportCSV_Missing(t *testing.T) {
	var buf bytes.Buffer
	err := ExportCSV(filepath.Join(t.TempDir(), "nope.csv"), &buf, "")
	assert.ErrorIs(t, err, challenge.ErrNotFound)
	assert.Zero(t, buf.Len())
}

func TestExportFile_MissingLeavesNoOutput(t *testing.T) {
	dir := t.TempDir()
	xlsxPath := filepath.Join(dir, "out.xlsx")

	err := ExportFile(filepath.Join(dir, "nope.csv"), xlsxPath, "")
	require.ErrorIs(t, err, challenge.ErrNotFound)

	_, statErr := os.Stat(xlsxPath)
	assert.True(t, os.IsNotExist(statErr))
}

func TestCellValue(t *testing.T) {
	assert.Equal(t, 15, cellValue("15", false))
	assert.Equal(t, "015", cellValue("015", false))
	assert.Equal(t, "15", cellValue("15", true))
	assert.Equal(t, "2026-01-02", cellValue("2026-01-02", false))
}
