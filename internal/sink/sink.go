// =============================================================================
// dtb2x - Tabular Sink Contract
// =============================================================================
//
// A Sink receives exactly one header row followed by a stream of data rows
// and renders them in an output format. The two implementations (delimited
// text, XLSX workbook) share this contract:
//
//   - WriteHeader is called once, before any data row.
//   - Every WriteRow call appends exactly one output record.
//   - Rows shorter than the header are padded with empty trailing cells, so
//     every record occupies the full table width. Empty fields render as
//     empty cells, never as a literal "null" or a dropped column.
//   - Close finalizes the output; for buffered and workbook formats nothing
//     is guaranteed to reach the writer before Close returns.
//
// =============================================================================

package sink

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Sink writes a header row and then data rows in an output format.
type Sink interface {
	WriteHeader(columns []string) error
	WriteRow(fields []string) error
	Close() error
}

// =============================================================================
// FORMAT SELECTION
// =============================================================================

// Format identifies an output format.
type Format int

const (
	FormatCSV Format = iota
	FormatXLSX
)

// String returns "csv" or "xlsx".
func (f Format) String() string {
	if f == FormatXLSX {
		return "xlsx"
	}
	return "csv"
}

// FormatForPath selects the output format from a file name extension. The
// front end calls this with the requested output path; unknown extensions
// are an error it reports to the user.
func FormatForPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return FormatCSV, nil
	case ".xlsx":
		return FormatXLSX, nil
	default:
		return FormatCSV, fmt.Errorf("unsupported output extension %q (expected .csv or .xlsx)", filepath.Ext(path))
	}
}

// =============================================================================
// SHARED HELPERS
// =============================================================================

// padRow extends fields with empty cells up to width. Rows are never
// truncated; the grammar guarantees they cannot exceed the header width.
func padRow(fields []string, width int) []string {
	if len(fields) >= width {
		return fields
	}
	padded := make([]string, width)
	copy(padded, fields)
	return padded
}
