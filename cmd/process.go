// =============================================================================
// JSON to TOON Converter - Process Command
// =============================================================================
//
// This file defines the 'process' command, which is the main command for
// converting JSON files to TOON. It orchestrates the entire conversion run.
//
// COMMAND USAGE:
//   toonconv process [flags]
//
// FLAGS:
//   --indent        : Spaces per nesting level (default 2)
//   --delimiter     : Value separator: comma, tab, or pipe (default comma)
//   --keyFolding    : Key folding mode: off or safe (default off)
//   --flattenDepth  : Cap on folded path depth (default: unlimited)
//   --clean         : Wipe the output directory before the run
//   --report        : Write an XLSX run report into the output directory
//
// PROCESSING PIPELINE:
//   1. Resolve and validate the run options (before any file I/O)
//   2. Load the main configuration (workspace directories)
//   3. Prepare the workspace (create directories, optional clean)
//   4. Enumerate the input directory
//   5. For each entry (sequentially): read -> parse -> encode -> write
//   6. Print the summary and write the error log / report if applicable
//
// =============================================================================

package cmd

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/ginjaninja78/JSON-to-TOON-conversion/internal/config"
	"github.com/ginjaninja78/JSON-to-TOON-conversion/internal/converter"
	"github.com/ginjaninja78/JSON-to-TOON-conversion/internal/report"
	"github.com/ginjaninja78/JSON-to-TOON-conversion/pkg/utils"
	"github.com/spf13/cobra"
)

// =============================================================================
// COMMAND FLAGS
// =============================================================================

// Raw option values. Integer-valued flags are declared as strings so the
// option resolver owns all parsing and produces uniform error messages.

var flagIndent string
var flagDelimiter string
var flagKeyFolding string
var flagFlattenDepth string
var flagClean bool
var flagReport bool

// =============================================================================
// PROCESS COMMAND DEFINITION
// =============================================================================

// processCmd represents the 'process' command.
var processCmd = &cobra.Command{
	Use:   "process",
	Short: "Convert JSON files in the input directory to TOON",
	Long: `The process command scans the input directory for .json files and converts
each one to TOON format in the output directory.

Files are processed sequentially and independently: an unreadable or
malformed file is reported and counted, and processing continues with the
next file. Output files are overwritten on re-runs, so running the command
twice over the same input produces byte-identical results.

The run exits non-zero if any file failed to convert; failed files are
listed in an error log in the output directory.`,

	SilenceUsage: true,

	// RunE is used so option and conversion failures surface as a non-zero
	// process exit status via Execute.
	RunE: func(cmd *cobra.Command, args []string) error {
		return runProcess()
	},
}

// =============================================================================
// INITIALIZATION
// =============================================================================

// init registers the process command with the root command and sets up flags.
func init() {
	rootCmd.AddCommand(processCmd)

	processCmd.Flags().StringVar(
		&flagIndent,
		"indent",
		"",
		"Spaces per nesting level (non-negative integer, default 2)",
	)

	processCmd.Flags().StringVar(
		&flagDelimiter,
		"delimiter",
		"",
		"Value separator: comma, tab, or pipe (default comma)",
	)

	processCmd.Flags().StringVar(
		&flagKeyFolding,
		"keyFolding",
		"",
		"Key folding mode: off or safe (default off)",
	)

	processCmd.Flags().StringVar(
		&flagFlattenDepth,
		"flattenDepth",
		"",
		"Cap on folded path depth (non-negative integer, default unlimited)",
	)

	processCmd.Flags().BoolVar(
		&flagClean,
		"clean",
		false,
		"Remove all output directory contents before the run",
	)

	processCmd.Flags().BoolVar(
		&flagReport,
		"report",
		false,
		"Write processing_report.xlsx into the output directory",
	)
}

// =============================================================================
// MAIN PROCESSING FUNCTION
// =============================================================================

// runProcess orchestrates one conversion run and returns a non-nil error
// exactly when the process must exit with a failure status.
func runProcess() error {
	startTime := time.Now()

	// =========================================================================
	// STEP 1: RESOLVE OPTIONS
	// =========================================================================
	// Validation happens before any file I/O; an invalid value terminates
	// the run with zero entries touched.

	options, err := config.ResolveOptions(config.RawOptions{
		Indent:       flagIndent,
		Delimiter:    flagDelimiter,
		KeyFolding:   flagKeyFolding,
		FlattenDepth: flagFlattenDepth,
		Clean:        flagClean,
		Verbose:      verbose,
		Report:       flagReport,
	})
	if err != nil {
		return err
	}

	logger := converter.NewLogger(options.Verbose)

	// =========================================================================
	// STEP 2: LOAD CONFIGURATION
	// =========================================================================

	mainConfig, err := config.LoadMainConfig(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load main config: %w", err)
	}

	logger.Debug("Workspace: %s -> %s", mainConfig.InputDir, mainConfig.OutputDir)

	// =========================================================================
	// STEP 3-5: RUN THE BATCH
	// =========================================================================

	fm := utils.NewFileManager(mainConfig.InputDir, mainConfig.OutputDir)
	stats, outcomes, err := converter.RunBatch(fm, options, logger)
	if err != nil {
		return err
	}

	if len(outcomes) == 0 {
		fmt.Printf("No files found in %s - nothing to do.\n", mainConfig.InputDir)
		return nil
	}

	// =========================================================================
	// STEP 6: PRINT SUMMARY
	// =========================================================================

	elapsed := time.Since(startTime)
	fmt.Println("\n=== Processing Complete ===")
	fmt.Printf("Processed:    %d\n", stats.Processed)
	fmt.Printf("Converted:    %d\n", stats.Converted)
	fmt.Printf("Skipped:      %d\n", stats.Skipped)
	fmt.Printf("Failed:       %d\n", stats.Failed)
	fmt.Printf("Time elapsed: %s\n", elapsed.Round(time.Millisecond))

	if stats.Converted == 0 && stats.Failed == 0 {
		logger.Warn("No files were converted. Check that input files are regular files with a .json extension.")
	}

	if stats.Failed > 0 {
		if logPath, logErr := fm.WriteErrorLog(outcomes); logErr != nil {
			logger.Warn("Could not write error log: %v", logErr)
		} else {
			fmt.Printf("\nErrors have been logged to %s\n", logPath)
		}
	}

	if options.Report {
		reportPath := filepath.Join(mainConfig.OutputDir, report.DefaultFileName)
		if reportErr := report.WriteXLSX(reportPath, stats, options, outcomes); reportErr != nil {
			logger.Warn("Could not write run report: %v", reportErr)
		} else {
			fmt.Printf("Run report written to %s\n", reportPath)
		}
	}

	if stats.Failed > 0 {
		return fmt.Errorf("%d file(s) failed to convert", stats.Failed)
	}
	return nil
}
