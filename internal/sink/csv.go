// =============================================================================
// dtb2x - Delimited Text Sink
// =============================================================================
//
// CSV rendition of the tabular sink contract. The delimiter defaults to a
// semicolon: Microsoft Excel picks the list separator from regional
// settings, and the comma is taken by decimal numbers in the locales this
// tool is used in. Records are terminated with CRLF to match the Excel CSV
// dialect; fields containing the delimiter, the quote character, or a line
// break are quoted per standard CSV quoting rules (encoding/csv).
//
// =============================================================================

package sink

import (
	"encoding/csv"
	"fmt"
	"io"
)

// DefaultDelimiter is the field delimiter used when none is configured.
const DefaultDelimiter = ';'

// CSV writes semicolon-delimited rows to an io.Writer. The caller owns the
// writer; Close flushes buffered records but does not close it.
type CSV struct {
	w     *csv.Writer
	width int
}

// NewCSV returns a CSV sink writing to w with the given field delimiter.
func NewCSV(w io.Writer, delimiter rune) *CSV {
	cw := csv.NewWriter(w)
	cw.Comma = delimiter
	cw.UseCRLF = true
	return &CSV{w: cw}
}

// WriteHeader writes the header record and fixes the table width all
// subsequent rows are padded to.
func (c *CSV) WriteHeader(columns []string) error {
	c.width = len(columns)
	if err := c.w.Write(columns); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	return nil
}

// WriteRow writes one data record, padded with empty trailing cells to the
// header width.
func (c *CSV) WriteRow(fields []string) error {
	if err := c.w.Write(padRow(fields, c.width)); err != nil {
		return fmt.Errorf("failed to write row: %w", err)
	}
	return nil
}

// Close flushes buffered records to the underlying writer.
func (c *CSV) Close() error {
	c.w.Flush()
	if err := c.w.Error(); err != nil {
		return fmt.Errorf("failed to flush output: %w", err)
	}
	return nil
}
