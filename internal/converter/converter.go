// =============================================================================
// dtb2x - Conversion Driver
// =============================================================================
//
// This module orchestrates one conversion run: it owns a single DTB reader,
// writes the fixed header once, then feeds the input to the reader line by
// line and projects every accepted entity into a row for the sink.
//
// CONVERSION PIPELINE:
//   1. Write the 9-column header row
//   2. For each input line (in order, terminator included):
//      a. Classify the line and resolve its parent (dtb.Reader)
//      b. Project the entity into a row
//      c. Write the row to the sink
//   3. On the first reader error, stop: no partial row is emitted for the
//      failing line, output stays written up to the previous row
//
// CONCURRENCY:
//   A run is a single synchronous forward pass. The reader's most-recent
//   ancestor state makes out-of-order processing unsound, so one Converter
//   serves exactly one run; independent runs are independent values.
//
// =============================================================================

package converter

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/mvondracek/dtb2x/internal/dtb"
	"github.com/mvondracek/dtb2x/internal/sink"
)

// =============================================================================
// RESULT STRUCTURE
// =============================================================================

// Result represents the outcome of one conversion run.
type Result struct {
	// Success indicates whether the whole input was converted.
	Success bool

	// Error is the first reader or sink error encountered, nil on success.
	// Reader failures are *dtb.ReadError values carrying the error kind
	// and the offending line.
	Error error

	// Stats contains counts of the processed entities.
	Stats Stats
}

// Stats contains statistics about a conversion run.
type Stats struct {
	// Groups, Teams and Players count the accepted entities by kind.
	Groups  int
	Teams   int
	Players int

	// RowsWritten is the number of data rows handed to the sink. It equals
	// the sum of the three entity counts.
	RowsWritten int

	// ProcessingTime is the time taken by the run.
	ProcessingTime time.Duration
}

// =============================================================================
// CONVERTER
// =============================================================================

// Converter performs one DTB-to-table conversion run.
type Converter struct {
	input  io.Reader
	sink   sink.Sink
	mode   dtb.Mode
	logger Logger
}

// New creates a Converter reading DTB text from input and writing rows to
// the given sink under the given tolerance mode.
func New(input io.Reader, s sink.Sink, mode dtb.Mode) *Converter {
	return &Converter{
		input:  input,
		sink:   s,
		mode:   mode,
		logger: NopLogger{},
	}
}

// SetLogger replaces the run's logger. The default discards everything.
func (c *Converter) SetLogger(l Logger) {
	if l != nil {
		c.logger = l
	}
}

// Run executes the conversion. The sink is not closed; the caller owns it
// along with the underlying files.
func (c *Converter) Run() Result {
	start := time.Now()
	result := Result{}

	reader := dtb.NewReader(c.mode)
	c.logger.Debug("starting %s mode conversion", c.mode)

	if err := c.sink.WriteHeader(dtb.Header()); err != nil {
		result.Error = err
		return result
	}

	lines := bufio.NewReader(c.input)
	for {
		line, readErr := lines.ReadString('\n')
		if readErr != nil && readErr != io.EOF {
			result.Error = fmt.Errorf("failed to read input: %w", readErr)
			return result
		}
		if line != "" {
			if err := c.convertLine(reader, normalizeNewline(line), &result.Stats); err != nil {
				result.Error = err
				result.Stats.ProcessingTime = time.Since(start)
				return result
			}
		}
		if readErr == io.EOF {
			break
		}
	}

	// A dangling current group or team at end of input is not an error.
	result.Success = true
	result.Stats.ProcessingTime = time.Since(start)
	c.logger.Debug("converted %d groups, %d teams, %d players",
		result.Stats.Groups, result.Stats.Teams, result.Stats.Players)
	return result
}

// convertLine feeds one line to the reader and writes the projected row.
func (c *Converter) convertLine(reader *dtb.Reader, line string, stats *Stats) error {
	entity, err := reader.Read(line)
	if err != nil {
		c.logger.Error("%v", err)
		return err
	}

	switch entity.(type) {
	case *dtb.Group:
		stats.Groups++
	case *dtb.Team:
		stats.Teams++
	case *dtb.Player:
		stats.Players++
	}

	if err := c.sink.WriteRow(entity.Row()); err != nil {
		return err
	}
	stats.RowsWritten++
	return nil
}

// normalizeNewline maps a CRLF terminator to a bare LF before
// classification, the universal-newline behavior DTB files produced on
// Windows rely on. The grammar itself only ever sees "\n".
func normalizeNewline(line string) string {
	if strings.HasSuffix(line, "\r\n") {
		return line[:len(line)-2] + "\n"
	}
	return line
}
