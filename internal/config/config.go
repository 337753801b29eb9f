// =============================================================================
// dtb2x - Configuration Module
// =============================================================================
//
// This module loads the optional YAML application configuration. Everything
// has a sensible default, so the tool runs without any configuration file;
// a file at the default path is used when present, and a path given
// explicitly with --config must exist.
//
// CONFIGURATION KEYS:
//   default_mode       : "strict" or "loose" grammar tolerance (default strict)
//   input_encoding     : encoding of input DTB files (default utf-8)
//   output_name_format : file name pattern for generated output names
//   csv.delimiter      : field delimiter of the CSV sink (default ";")
//   xlsx.sheet_name    : worksheet name of the XLSX sink (default "DTB")
//   xlsx.freeze_header : keep the header row pinned (default true)
//
// =============================================================================

package config

import (
	"fmt"
	"os"
	"unicode/utf8"

	"gopkg.in/yaml.v3"

	"github.com/mvondracek/dtb2x/internal/dtb"
	"github.com/mvondracek/dtb2x/internal/sink"
	"github.com/mvondracek/dtb2x/pkg/textio"
)

// DefaultPath is where the configuration is looked for when --config is not
// given.
const DefaultPath = "dtb2x.yaml"

// =============================================================================
// CONFIGURATION STRUCTURE
// =============================================================================

// Config holds the application configuration.
type Config struct {
	// DefaultMode is the grammar tolerance used when the command line does
	// not select one. Valid values: "strict", "loose".
	DefaultMode string `yaml:"default_mode"`

	// InputEncoding is the character encoding of input DTB files. The
	// exports this tool consumes come from Czech Windows environments, so
	// windows-1250 and iso-8859-2 are supported besides utf-8.
	InputEncoding string `yaml:"input_encoding"`

	// OutputNameFormat names generated output files when the requested
	// output is a directory. Placeholders: {uuid}, {timestamp}, {mode}.
	OutputNameFormat string `yaml:"output_name_format"`

	// CSV contains settings of the delimited-text sink.
	CSV CSVSettings `yaml:"csv"`

	// XLSX contains settings of the spreadsheet sink.
	XLSX XLSXSettings `yaml:"xlsx"`
}

// CSVSettings contains settings of the delimited-text sink.
type CSVSettings struct {
	// Delimiter is the field separator, a single character. Excel expects
	// the list separator of the regional settings; the semicolon default
	// matches locales where the comma is the decimal separator.
	Delimiter string `yaml:"delimiter"`
}

// XLSXSettings contains settings of the spreadsheet sink.
type XLSXSettings struct {
	// SheetName is the name of the single worksheet.
	SheetName string `yaml:"sheet_name"`

	// FreezeHeader keeps the header row visible while scrolling.
	// Unset means true.
	FreezeHeader *bool `yaml:"freeze_header"`
}

// =============================================================================
// LOADING
// =============================================================================

// Default returns the configuration used when no file is present.
func Default() *Config {
	cfg := &Config{}
	applyDefaults(cfg)
	return cfg
}

// Load reads and validates a configuration file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	applyDefaults(&cfg)
	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}

// LoadOrDefault reads the configuration file at path, falling back to
// defaults when the file does not exist.
func LoadOrDefault(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return Default(), nil
	}
	return Load(path)
}

// applyDefaults sets default values for any unset option.
func applyDefaults(cfg *Config) {
	if cfg.DefaultMode == "" {
		cfg.DefaultMode = "strict"
	}
	if cfg.InputEncoding == "" {
		cfg.InputEncoding = "utf-8"
	}
	if cfg.OutputNameFormat == "" {
		cfg.OutputNameFormat = "dtb_{timestamp}_{uuid}"
	}
	if cfg.CSV.Delimiter == "" {
		cfg.CSV.Delimiter = string(sink.DefaultDelimiter)
	}
	if cfg.XLSX.SheetName == "" {
		cfg.XLSX.SheetName = sink.DefaultSheetName
	}
	if cfg.XLSX.FreezeHeader == nil {
		freeze := true
		cfg.XLSX.FreezeHeader = &freeze
	}
}

// validate rejects values the sinks and the grammar cannot work with.
func validate(cfg *Config) error {
	if _, ok := dtb.ParseMode(cfg.DefaultMode); !ok {
		return fmt.Errorf("default_mode must be \"strict\" or \"loose\", got %q", cfg.DefaultMode)
	}
	if utf8.RuneCountInString(cfg.CSV.Delimiter) != 1 {
		return fmt.Errorf("csv.delimiter must be a single character, got %q", cfg.CSV.Delimiter)
	}
	if !textio.SupportedEncoding(cfg.InputEncoding) {
		return fmt.Errorf("input_encoding %q is not supported (supported: %s)",
			cfg.InputEncoding, textio.EncodingNames())
	}
	return nil
}

// =============================================================================
// ACCESSORS
// =============================================================================

// Mode returns the configured default grammar mode.
func (c *Config) Mode() dtb.Mode {
	mode, _ := dtb.ParseMode(c.DefaultMode)
	return mode
}

// Delimiter returns the CSV field delimiter as a rune.
func (c *Config) Delimiter() rune {
	r, _ := utf8.DecodeRuneInString(c.CSV.Delimiter)
	return r
}

// FreezeHeader reports whether the XLSX header row should be frozen.
func (c *Config) FreezeHeader() bool {
	return c.XLSX.FreezeHeader == nil || *c.XLSX.FreezeHeader
}
