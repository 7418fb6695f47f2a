// =============================================================================
// JSON to TOON Converter - Run Report Module
// =============================================================================
//
// This module writes an XLSX workbook summarizing one conversion run. The
// workbook has two sheets:
//
//   Summary : run timestamp, the resolved options, and the counters
//   Files   : one row per enumerated entry with its status and details
//
// The report is optional (--report) and is written into the output
// directory after the run summary has been printed.
//
// =============================================================================

package report

import (
	"fmt"
	"time"

	"github.com/ginjaninja78/JSON-to-TOON-conversion/internal/config"
	"github.com/ginjaninja78/JSON-to-TOON-conversion/internal/converter"
	"github.com/ginjaninja78/JSON-to-TOON-conversion/internal/types"
	"github.com/xuri/excelize/v2"
)

// DefaultFileName is the name of the report workbook in the output directory.
const DefaultFileName = "processing_report.xlsx"

// Sheet names within the report workbook.
const (
	summarySheet = "Summary"
	filesSheet   = "Files"
)

// WriteXLSX writes the run report workbook to path.
//
// PARAMETERS:
//   - path: Destination file path (overwritten if present).
//   - stats: Aggregate counters for the run.
//   - options: The resolved run options.
//   - outcomes: Per-entry outcomes in enumeration order.
func WriteXLSX(path string, stats converter.RunStats, options *config.RunOptions, outcomes []types.Outcome) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", summarySheet); err != nil {
		return fmt.Errorf("failed to build report: %w", err)
	}

	flattenDepth := "unset"
	if options.FlattenDepth != nil {
		flattenDepth = fmt.Sprintf("%d", *options.FlattenDepth)
	}

	summaryRows := [][]any{
		{"Timestamp", time.Now().Format(time.RFC3339)},
		{"Indent", options.Indent},
		{"Delimiter", string(options.Delimiter)},
		{"Key folding", string(options.KeyFolding)},
		{"Flatten depth", flattenDepth},
		{"Processed", stats.Processed},
		{"Converted", stats.Converted},
		{"Skipped", stats.Skipped},
		{"Failed", stats.Failed},
	}
	if err := writeRows(f, summarySheet, summaryRows); err != nil {
		return err
	}

	if _, err := f.NewSheet(filesSheet); err != nil {
		return fmt.Errorf("failed to build report: %w", err)
	}

	fileRows := [][]any{{"File", "Status", "Output", "Reason"}}
	for _, o := range outcomes {
		fileRows = append(fileRows, []any{o.SourceName, string(o.Status), o.OutputName, o.Reason})
	}
	if err := writeRows(f, filesSheet, fileRows); err != nil {
		return err
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}

// writeRows fills a sheet from the top-left corner, one slice per row.
func writeRows(f *excelize.File, sheet string, rows [][]any) error {
	for r, row := range rows {
		for c, value := range row {
			cell, err := excelize.CoordinatesToCellName(c+1, r+1)
			if err != nil {
				return fmt.Errorf("failed to build report: %w", err)
			}
			if err := f.SetCellValue(sheet, cell, value); err != nil {
				return fmt.Errorf("failed to build report: %w", err)
			}
		}
	}
	return nil
}
