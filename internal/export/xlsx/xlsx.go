// Package xlsx converts CSV files with a header row into single-sheet XLSX
// workbooks.
package xlsx

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/xuri/excelize/v2"

	"github.com/hay-kot/practica/internal/core/challenge"
)

// DefaultSheet is the sheet name used when none is given.
const DefaultSheet = "Practica"

// ExportCSV reads the CSV at csvPath and writes it to w as an XLSX workbook
// with one sheet. The header row is bold and integer cells are stored as
// numbers. A missing CSV yields a *challenge.NotFoundError.
func ExportCSV(csvPath string, w io.Writer, sheet string) error {
	f, err := os.Open(csvPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &challenge.NotFoundError{Path: csvPath}
		}
		return fmt.Errorf("open csv: %w", err)
	}
	defer func() { _ = f.Close() }()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	rows, err := r.ReadAll()
	if err != nil {
		return &challenge.ParseError{Path: csvPath, Err: err}
	}

	return Write(w, sheet, rows)
}

// ExportFile is ExportCSV writing to the file at xlsxPath.
func ExportFile(csvPath, xlsxPath, sheet string) error {
	out, err := os.Create(xlsxPath)
	if err != nil {
		return fmt.Errorf("create xlsx: %w", err)
	}

	if err := ExportCSV(csvPath, out, sheet); err != nil {
		_ = out.Close()
		_ = os.Remove(xlsxPath)
		return err
	}
	return out.Close()
}

// Write renders rows, the first of which is the header, as a workbook.
func Write(w io.Writer, sheet string, rows [][]string) error {
	if sheet == "" {
		sheet = DefaultSheet
	}

	book := excelize.NewFile()
	defer func() { _ = book.Close() }()

	if err := book.SetSheetName(book.GetSheetName(0), sheet); err != nil {
		return fmt.Errorf("name sheet: %w", err)
	}

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}

		values := make([]any, len(row))
		for j, v := range row {
			values[j] = cellValue(v, i == 0)
		}
		if err := book.SetSheetRow(sheet, cell, &values); err != nil {
			return fmt.Errorf("write row %d: %w", i+1, err)
		}
	}

	if len(rows) > 0 {
		bold, err := book.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
		if err != nil {
			return fmt.Errorf("create header style: %w", err)
		}
		if err := book.SetRowStyle(sheet, 1, 1, bold); err != nil {
			return fmt.Errorf("style header: %w", err)
		}
	}

	if _, err := book.WriteTo(w); err != nil {
		return fmt.Errorf("write xlsx: %w", err)
	}
	return nil
}

func cellValue(v string, header bool) any {
	if header {
		return v
	}
	if n, err := strconv.Atoi(v); err == nil && strconv.Itoa(n) == v {
		return n
	}
	return v
}
