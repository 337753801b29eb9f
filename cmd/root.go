// =============================================================================
// dtb2x - Root Command
// =============================================================================
//
// This file defines the root command for the Cobra CLI. The root command is
// the base command the subcommands are attached to.
//
// COBRA CLI STRUCTURE:
//   rootCmd (dtb2x)
//   ├── convertCmd (dtb2x convert)
//   └── versionCmd (dtb2x version)
//
// =============================================================================

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mvondracek/dtb2x/internal/config"
)

// cfgFile holds the path to the configuration file, overridable with
// --config.
var cfgFile string

// verbose enables debug logging when set to true.
var verbose bool

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "dtb2x",
	Short: "dtb2x - Simple and easy to use DTB to XLSX (and CSV) format converter",
	Long: `dtb2x converts DTB files - a tab-indented text format describing sports
groups, their teams, and the teams' players - into a 9-column table written
either as a semicolon-delimited CSV or as an XLSX workbook.

The output format is selected by the extension of the output file (.csv or
.xlsx). Conversion is strict by default; files with small formatting
mistakes like missing separator spaces or commas can be converted with
--loose.

Example Usage:
  dtb2x convert -i members.dtb -o members.xlsx
  dtb2x convert -i members.dtb -o members.csv --loose
  dtb2x convert -i - -o -        # DTB on stdin, CSV on stdout`,

	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(
		&cfgFile,
		"config",
		config.DefaultPath,
		"Path to the configuration file",
	)

	rootCmd.PersistentFlags().BoolVarP(
		&verbose,
		"verbose",
		"v",
		false,
		"Enable verbose output for debugging",
	)
}

// loadConfig loads the configuration honoring the --config flag: an
// explicitly given path must exist, the default path is optional.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	if cmd.Root().PersistentFlags().Changed("config") {
		return config.Load(cfgFile)
	}
	return config.LoadOrDefault(cfgFile)
}
