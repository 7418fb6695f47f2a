// =============================================================================
// JSON to TOON Converter - Batch Runner
// =============================================================================
//
// This file contains the batch entry point: prepare the workspace, enumerate
// the input directory, run the per-file pipeline for each entry in order,
// and fold outcomes into run statistics.
//
// ORDERING:
//   Entries are processed strictly sequentially in enumeration order, so
//   outcome reporting order always matches enumeration order.
//
// =============================================================================

package converter

import (
	"fmt"

	"github.com/ginjaninja78/JSON-to-TOON-conversion/internal/config"
	"github.com/ginjaninja78/JSON-to-TOON-conversion/internal/types"
	"github.com/ginjaninja78/JSON-to-TOON-conversion/pkg/utils"
)

// RunBatch converts every processable entry of the input directory.
//
// PARAMETERS:
//   - fm: The workspace file manager.
//   - options: The resolved run options.
//   - logger: The run logger.
//
// RETURNS:
//   - Aggregate run statistics.
//   - One Outcome per enumerated entry, in enumeration order.
//   - A fatal error if the workspace cannot be prepared or enumerated;
//     per-file failures are never fatal.
func RunBatch(fm *utils.FileManager, options *config.RunOptions, logger Logger) (RunStats, []types.Outcome, error) {
	var stats RunStats

	if err := fm.EnsureDirectories(); err != nil {
		return stats, nil, fmt.Errorf("failed to prepare workspace: %w", err)
	}

	if options.Clean {
		logger.Debug("Cleaning output directory: %s", fm.OutputDir)
		if err := fm.CleanOutputDir(); err != nil {
			return stats, nil, fmt.Errorf("failed to prepare workspace: %w", err)
		}
	}

	entries, err := fm.EnumerateEntries()
	if err != nil {
		return stats, nil, err
	}

	outcomes := make([]types.Outcome, 0, len(entries))
	for _, entry := range entries {
		outcome := processEntry(entry, fm, options, logger)
		stats.Record(outcome)
		outcomes = append(outcomes, outcome)
	}

	return stats, outcomes, nil
}

// processEntry runs one entry through classification and, when processable,
// the conversion pipeline, logging the result either way.
func processEntry(entry utils.Entry, fm *utils.FileManager, options *config.RunOptions, logger Logger) types.Outcome {
	if !entry.Processable {
		if entry.StatFailed {
			logger.Warn("  - %s: %s", entry.Name, entry.Reason)
		} else {
			logger.Debug("  - %s: skipped (%s)", entry.Name, entry.Reason)
		}
		return types.Outcome{
			SourceName: entry.Name,
			Status:     types.StatusSkipped,
			Reason:     entry.Reason,
		}
	}

	outcome := New(entry.Name, fm, options, logger).Run()

	switch outcome.Status {
	case types.StatusConverted:
		logger.Info("  ✓ %s -> %s", outcome.SourceName, outcome.OutputName)
	case types.StatusFailed:
		logger.Error("  ✗ %s: %s", outcome.SourceName, outcome.Reason)
	}

	return outcome
}
