// =============================================================================
// dtb2x - XLSX Sink
// =============================================================================
//
// Spreadsheet rendition of the tabular sink contract, built on excelize.
// One workbook, one worksheet, one row per call, one cell per field. Every
// cell is written as a string so registration numbers keep their leading
// zeros and dates of birth stay exactly as they appeared in the input. The
// header row is frozen so it stays visible while scrolling.
//
// The workbook is assembled in memory and serialized to the underlying
// writer on Close.
//
// =============================================================================

package sink

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

// DefaultSheetName is the worksheet name used when none is configured.
const DefaultSheetName = "DTB"

// XLSX writes rows into a single worksheet of an XLSX workbook.
type XLSX struct {
	out    io.Writer
	file   *excelize.File
	sheet  string
	freeze bool
	width  int
	row    int // next row to write, 1-based
}

// NewXLSX returns an XLSX sink that serializes its workbook to w on Close.
// freezeHeader keeps the header row pinned when the sheet is scrolled.
func NewXLSX(w io.Writer, sheetName string, freezeHeader bool) *XLSX {
	f := excelize.NewFile()
	return &XLSX{
		out:    w,
		file:   f,
		sheet:  sheetName,
		freeze: freezeHeader,
		row:    1,
	}
}

// WriteHeader writes the header into row 1, fixes the table width, and
// freezes the header row if requested.
func (x *XLSX) WriteHeader(columns []string) error {
	if err := x.file.SetSheetName("Sheet1", x.sheet); err != nil {
		return fmt.Errorf("failed to name worksheet: %w", err)
	}
	x.width = len(columns)
	if err := x.writeCells(columns); err != nil {
		return err
	}
	if x.freeze {
		if err := x.file.SetPanes(x.sheet, &excelize.Panes{
			Freeze:      true,
			YSplit:      1,
			TopLeftCell: "A2",
			ActivePane:  "bottomLeft",
		}); err != nil {
			return fmt.Errorf("failed to freeze header row: %w", err)
		}
	}
	return nil
}

// WriteRow writes one data row, padded with empty trailing cells to the
// header width.
func (x *XLSX) WriteRow(fields []string) error {
	return x.writeCells(padRow(fields, x.width))
}

// Close serializes the workbook to the underlying writer and releases the
// workbook resources.
func (x *XLSX) Close() error {
	if _, err := x.file.WriteTo(x.out); err != nil {
		x.file.Close()
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	if err := x.file.Close(); err != nil {
		return fmt.Errorf("failed to close workbook: %w", err)
	}
	return nil
}

// writeCells writes one worksheet row of string-typed cells.
func (x *XLSX) writeCells(fields []string) error {
	for i, value := range fields {
		cell, err := excelize.CoordinatesToCellName(i+1, x.row)
		if err != nil {
			return fmt.Errorf("failed to address cell: %w", err)
		}
		if err := x.file.SetCellStr(x.sheet, cell, value); err != nil {
			return fmt.Errorf("failed to write cell %s: %w", cell, err)
		}
	}
	x.row++
	return nil
}
