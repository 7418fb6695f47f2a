// =============================================================================
// JSON to TOON Converter - Converter Module
// =============================================================================
//
// This module contains the core conversion logic. It runs the per-file
// pipeline for a single directory entry, from reading the JSON source to
// writing the TOON output.
//
// CONVERSION PIPELINE (per entry):
//   1. Read the input file content
//   2. Parse the content as JSON
//   3. Encode the parsed document as TOON (external encoder)
//   4. Derive the output file name (.json -> .toon)
//   5. Write the output file, overwriting any previous version
//
// ERROR ISOLATION:
//   Every step failure produces a failed Outcome for this entry only; a
//   malformed or unreadable file never aborts the batch run.
//
// =============================================================================

package converter

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ginjaninja78/JSON-to-TOON-conversion/internal/config"
	"github.com/ginjaninja78/JSON-to-TOON-conversion/internal/toonwriter"
	"github.com/ginjaninja78/JSON-to-TOON-conversion/internal/types"
	"github.com/ginjaninja78/JSON-to-TOON-conversion/pkg/utils"
)

// =============================================================================
// CONVERTER STRUCTURE
// =============================================================================

// Converter handles the conversion of a single JSON file to TOON.
type Converter struct {
	// entryName is the base name of the input entry.
	entryName string

	// inputDir is the directory containing the input file.
	inputDir string

	// outputDir is the directory receiving the output file.
	outputDir string

	// options is the resolved run configuration.
	options *config.RunOptions

	// logger is used for per-file logging.
	logger Logger
}

// New creates a new Converter for one directory entry.
//
// PARAMETERS:
//   - entryName: The base name of the input entry.
//   - fm: The workspace file manager (provides the directories).
//   - options: The resolved run options.
//   - logger: The run logger.
func New(entryName string, fm *utils.FileManager, options *config.RunOptions, logger Logger) *Converter {
	return &Converter{
		entryName: entryName,
		inputDir:  fm.InputDir,
		outputDir: fm.OutputDir,
		options:   options,
		logger:    logger,
	}
}

// =============================================================================
// MAIN PROCESSING FUNCTION
// =============================================================================

// Run executes the conversion pipeline for the entry and returns its
// Outcome. Run never panics and never returns an error: every failure mode
// is folded into a failed Outcome so the batch can continue.
func (c *Converter) Run() types.Outcome {
	outcome := types.Outcome{
		SourceName: c.entryName,
		Status:     types.StatusFailed,
	}

	c.logger.Debug("Processing file: %s", c.entryName)

	// =========================================================================
	// STEP 1: READ INPUT
	// =========================================================================

	data, err := os.ReadFile(filepath.Join(c.inputDir, c.entryName))
	if err != nil {
		outcome.Reason = fmt.Sprintf("cannot read file: %v", err)
		return outcome
	}

	// =========================================================================
	// STEP 2: PARSE JSON
	// =========================================================================
	// UseNumber keeps numeric literals verbatim so they round-trip
	// byte-for-byte into the TOON output.

	doc, err := parseDocument(data)
	if err != nil {
		outcome.Reason = fmt.Sprintf("invalid JSON: %v", err)
		return outcome
	}

	// =========================================================================
	// STEP 3: ENCODE AS TOON
	// =========================================================================
	// The encoder is an external collaborator; its failures are reported
	// the same way as parse failures.

	encoded, err := toonwriter.Generate(doc, encoderOptions(c.options))
	if err != nil {
		outcome.Reason = fmt.Sprintf("encoding failed: %v", err)
		return outcome
	}

	// =========================================================================
	// STEP 4 + 5: DERIVE NAME AND WRITE OUTPUT
	// =========================================================================

	outputName := utils.DeriveOutputName(c.entryName)
	outputPath := filepath.Join(c.outputDir, outputName)

	if err := os.WriteFile(outputPath, encoded, 0644); err != nil {
		outcome.Reason = fmt.Sprintf("cannot write output: %v", err)
		return outcome
	}

	outcome.Status = types.StatusConverted
	outcome.OutputName = outputName
	return outcome
}

// =============================================================================
// HELPER FUNCTIONS
// =============================================================================

// parseDocument parses data as a single JSON document.
func parseDocument(data []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var doc any
	if err := dec.Decode(&doc); err != nil {
		return nil, err
	}
	if dec.More() {
		return nil, fmt.Errorf("trailing data after top-level value")
	}
	return doc, nil
}

// encoderOptions maps the resolved run options onto the encoder's
// configuration surface.
func encoderOptions(options *config.RunOptions) toonwriter.Options {
	encOpts := toonwriter.DefaultOptions()
	encOpts.Indent = options.Indent
	encOpts.Delimiter = options.Delimiter.Literal()
	encOpts.KeyFolding = string(options.KeyFolding)
	if options.FlattenDepth != nil {
		encOpts.FlattenDepth = *options.FlattenDepth
	}
	return encOpts
}
