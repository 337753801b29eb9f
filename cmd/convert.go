// =============================================================================
// dtb2x - Convert Command
// =============================================================================
//
// This file defines the 'convert' command, which converts a single DTB file
// into a CSV or XLSX table.
//
// COMMAND USAGE:
//   dtb2x convert [flags]
//
// FLAGS:
//   --input, -i  : input DTB file, or "-" for stdin (default "-")
//   --output, -o : output file, "-" for CSV on stdout, or an existing
//                  directory to generate a file name into (default "-")
//   --loose      : tolerate small formatting mistakes in the input
//
// The output format is selected by the extension of the output file. On a
// conversion error the command reports the offending line; when the input
// did not match the strict grammar it suggests retrying with --loose.
//
// =============================================================================

package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/mvondracek/dtb2x/internal/config"
	"github.com/mvondracek/dtb2x/internal/converter"
	"github.com/mvondracek/dtb2x/internal/dtb"
	"github.com/mvondracek/dtb2x/internal/sink"
	"github.com/mvondracek/dtb2x/pkg/textio"
)

// stdioName is the conventional file name for stdin/stdout.
const stdioName = "-"

var (
	// inputPath is the input DTB file, or "-" for stdin.
	inputPath string

	// outputPath is the output file, "-" for stdout, or a directory.
	outputPath string

	// loose selects the loose grammar mode regardless of the configured
	// default.
	loose bool
)

// convertCmd represents the 'convert' command.
var convertCmd = &cobra.Command{
	Use:   "convert",
	Short: "Convert a DTB file to a CSV or XLSX table",
	Long: `The convert command reads a DTB file and writes its groups, teams, and
players as rows of a 9-column table. Every row repeats the columns of its
ancestors, so a player row carries its team's and group's fields too.

Conversion stops at the first line that does not match the grammar or
breaks the hierarchy (a team before any group, a player before any team);
rows accepted before the failing line remain in the output.`,

	RunE: func(cmd *cobra.Command, args []string) error {
		return runConvert(cmd)
	},
}

func init() {
	rootCmd.AddCommand(convertCmd)

	convertCmd.Flags().StringVarP(
		&inputPath,
		"input",
		"i",
		stdioName,
		"Input DTB file (\"-\" for stdin)",
	)

	convertCmd.Flags().StringVarP(
		&outputPath,
		"output",
		"o",
		stdioName,
		"Output file (\"-\" for CSV on stdout, directory for a generated name)",
	)

	convertCmd.Flags().BoolVar(
		&loose,
		"loose",
		false,
		"Tolerate small formatting mistakes (missing separator spaces and commas)",
	)
}

// =============================================================================
// CONVERSION RUN
// =============================================================================

// runConvert wires configuration, input, sink, and driver together for one
// conversion run.
func runConvert(cmd *cobra.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	mode := cfg.Mode()
	if loose {
		mode = dtb.Loose
	}

	logger := &converter.StderrLogger{Out: os.Stderr, Verbose: verbose}

	// Input side: stdin or file, decoded to UTF-8.
	var input io.Reader = os.Stdin
	if inputPath != stdioName {
		f, err := os.Open(inputPath)
		if err != nil {
			return fmt.Errorf("failed to open input: %w", err)
		}
		defer f.Close()
		input = f
	}
	input, err = textio.NewDecodingReader(input, cfg.InputEncoding)
	if err != nil {
		return err
	}

	// Output side: stdout, or a lazily created file. The file is not
	// created until the sink actually writes, so a failed input open never
	// truncates an existing output file.
	target, err := resolveOutputPath(cfg, mode)
	if err != nil {
		return err
	}

	var out io.Writer = os.Stdout
	format := sink.FormatCSV
	if target != stdioName {
		format, err = sink.FormatForPath(target)
		if err != nil {
			return err
		}
		lazy := textio.NewLazyWriteCloser(func() (io.WriteCloser, error) {
			return os.Create(target)
		})
		defer lazy.Close()
		out = lazy
	}

	tableSink := newSink(format, out, cfg)

	conv := converter.New(input, tableSink, mode)
	conv.SetLogger(logger)
	result := conv.Run()

	// Close even on failure: rows accepted before the failing line stay in
	// the output.
	if err := tableSink.Close(); err != nil && result.Error == nil {
		result.Error = err
	}

	if result.Error != nil {
		var readErr *dtb.ReadError
		if errors.As(result.Error, &readErr) {
			if readErr.Kind == dtb.ErrUnknownLineType && mode == dtb.Strict {
				logger.Info("the input did not match the strict DTB grammar; retrying with --loose may help")
			}
		}
		return result.Error
	}

	logger.Info("wrote %d rows (%d groups, %d teams, %d players) in %s",
		result.Stats.RowsWritten, result.Stats.Groups, result.Stats.Teams,
		result.Stats.Players, result.Stats.ProcessingTime.Round(time.Millisecond))
	if target != stdioName {
		logger.Info("output written to %s", target)
	}
	return nil
}

// newSink builds the sink for the chosen format with the configured
// settings.
func newSink(format sink.Format, out io.Writer, cfg *config.Config) sink.Sink {
	if format == sink.FormatXLSX {
		return sink.NewXLSX(out, cfg.XLSX.SheetName, cfg.FreezeHeader())
	}
	return sink.NewCSV(out, cfg.Delimiter())
}

// resolveOutputPath turns the --output flag into a concrete file path.
// When the flag names an existing directory, a file name is generated into
// it from the configured output_name_format.
func resolveOutputPath(cfg *config.Config, mode dtb.Mode) (string, error) {
	if outputPath == stdioName {
		return stdioName, nil
	}
	info, err := os.Stat(outputPath)
	if err == nil && info.IsDir() {
		return filepath.Join(outputPath, generateOutputName(cfg.OutputNameFormat, mode)), nil
	}
	return outputPath, nil
}

// generateOutputName expands the {uuid}, {timestamp}, and {mode}
// placeholders of the output name format. Generated names default to the
// CSV format unless the pattern itself carries a known extension.
func generateOutputName(format string, mode dtb.Mode) string {
	name := format
	name = strings.ReplaceAll(name, "{uuid}", uuid.New().String())
	name = strings.ReplaceAll(name, "{timestamp}", time.Now().Format("20060102_150405"))
	name = strings.ReplaceAll(name, "{mode}", mode.String())

	switch strings.ToLower(filepath.Ext(name)) {
	case ".csv", ".xlsx":
		return name
	default:
		return name + ".csv"
	}
}
