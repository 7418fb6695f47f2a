// =============================================================================
// JSON to TOON Converter - Root Command
// =============================================================================
//
// This file defines the root command for the Cobra CLI. The root command is
// the base command that all other commands (like 'process', 'version') are
// attached to.
//
// COBRA CLI STRUCTURE:
//   rootCmd (toonconv)
//   ├── processCmd (toonconv process)
//   └── versionCmd (toonconv version)
//
// =============================================================================

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// =============================================================================
// GLOBAL VARIABLES
// =============================================================================

// cfgFile holds the path to the main configuration file.
// This can be overridden using the --config flag.
var cfgFile string

// verbose enables verbose logging when set to true.
var verbose bool

// =============================================================================
// ROOT COMMAND DEFINITION
// =============================================================================

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use: "toonconv",

	Short: "JSON to TOON Converter - Batch-convert JSON documents to TOON",

	Long: `JSON to TOON Converter is a CLI tool that scans an input directory for
JSON documents and converts each one to TOON (Token-Oriented Object
Notation), a compact line-oriented serialization format.

Key Features:
  - Batch conversion with per-file error isolation
  - Configurable indentation, delimiter, and key folding
  - Deterministic output: re-runs are byte-identical
  - Optional XLSX run report

Example Usage:
  toonconv process                     # Convert all files in the input directory
  toonconv process --delimiter tab     # Tab-separated values
  toonconv process --keyFolding safe   # Collapse single-key object chains
  toonconv process --clean             # Wipe the output directory first`,

	// If no subcommand is provided, print the help message.
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

// =============================================================================
// EXECUTE FUNCTION
// =============================================================================

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	// Execute the root command. If there's an error, print it and exit.
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// =============================================================================
// INITIALIZATION
// =============================================================================

// init sets up the persistent flags shared by all subcommands.
func init() {
	// --config flag: Allows the user to specify a custom configuration file.
	// The file holds workspace directory settings; it is optional and
	// built-in defaults apply when it does not exist.
	rootCmd.PersistentFlags().StringVar(
		&cfgFile,
		"config",
		"config.yaml",
		"Path to the main configuration file (default is config.yaml)",
	)

	// --verbose flag: Enables verbose/debug logging.
	rootCmd.PersistentFlags().BoolVarP(
		&verbose,
		"verbose",
		"v",
		false,
		"Enable verbose output for debugging",
	)
}
