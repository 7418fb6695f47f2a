// =============================================================================
// JSON to TOON Converter - File Manager Utility
// =============================================================================
//
// This module provides the workspace management utilities for the converter:
//   - Input/output directory lifecycle (creation, cleaning)
//   - Input directory enumeration and entry classification
//   - Output file naming
//   - Error log generation
//
// WORKSPACE LAYOUT:
//   - Input files stay in place; re-running the tool over the same input is
//     the retry mechanism for failed conversions.
//   - Output files are overwritten on re-runs, so repeated runs with the
//     same input and options are byte-identical.
//   - Error logs for failed runs are created in the output directory.
//
// =============================================================================

package utils

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/ginjaninja78/JSON-to-TOON-conversion/internal/types"
	"github.com/google/uuid"
)

// inputExtension is the required extension of processable input files,
// matched case-insensitively.
const inputExtension = ".json"

// outputExtension is the extension of generated output files.
const outputExtension = ".toon"

// =============================================================================
// FILE MANAGER
// =============================================================================

// FileManager handles workspace operations for the converter.
type FileManager struct {
	// InputDir is the directory where input files are placed.
	InputDir string

	// OutputDir is the directory where output files are placed.
	OutputDir string
}

// NewFileManager creates a new FileManager over the given directories.
func NewFileManager(inputDir, outputDir string) *FileManager {
	return &FileManager{
		InputDir:  inputDir,
		OutputDir: outputDir,
	}
}

// =============================================================================
// DIRECTORY MANAGEMENT
// =============================================================================

// EnsureDirectories creates the input and output directories if they don't
// exist. Creation is recursive and succeeds if a directory is already there.
func (fm *FileManager) EnsureDirectories() error {
	for _, dir := range []string{fm.InputDir, fm.OutputDir} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}
	return nil
}

// CleanOutputDir recursively removes all contents of the output directory
// and recreates it empty. The operation is destructive and unconditional;
// it silently succeeds when the directory did not previously exist.
func (fm *FileManager) CleanOutputDir() error {
	if err := os.RemoveAll(fm.OutputDir); err != nil {
		return fmt.Errorf("failed to clean output directory %s: %w", fm.OutputDir, err)
	}
	if err := os.MkdirAll(fm.OutputDir, 0755); err != nil {
		return fmt.Errorf("failed to recreate output directory %s: %w", fm.OutputDir, err)
	}
	return nil
}

// =============================================================================
// FILE ENUMERATION
// =============================================================================

// Entry is one candidate item from the input directory.
type Entry struct {
	// Name is the entry's base name within the input directory.
	Name string

	// Processable is true for regular files named *.json.
	Processable bool

	// Reason explains why a non-processable entry was classified out.
	Reason string

	// StatFailed is true when the classification itself failed (e.g. a
	// permission error on stat). Such entries warrant a warning rather
	// than a routine skip message.
	StatFailed bool
}

// EnumerateEntries lists the immediate entries of the input directory in
// lexicographic order and classifies each one. Enumeration is non-recursive:
// subdirectories are reported as entries but never descended into.
//
// Classification failures (e.g. a stat error on one entry) mark that entry
// as not processable; they are never fatal for the run.
func (fm *FileManager) EnumerateEntries() ([]Entry, error) {
	dirEntries, err := os.ReadDir(fm.InputDir)
	if err != nil {
		return nil, fmt.Errorf("failed to read input directory %s: %w", fm.InputDir, err)
	}

	entries := make([]Entry, 0, len(dirEntries))
	for _, de := range dirEntries {
		entries = append(entries, classify(de))
	}
	return entries, nil
}

// classify decides whether a directory entry reaches the conversion pipeline.
func classify(de os.DirEntry) Entry {
	entry := Entry{Name: de.Name()}

	info, err := de.Info()
	if err != nil {
		entry.Reason = fmt.Sprintf("cannot stat entry: %v", err)
		entry.StatFailed = true
		return entry
	}
	if !info.Mode().IsRegular() {
		entry.Reason = "not a regular file"
		return entry
	}
	if !strings.EqualFold(filepath.Ext(de.Name()), inputExtension) {
		entry.Reason = "not a .json file"
		return entry
	}

	entry.Processable = true
	return entry
}

// =============================================================================
// FILE NAMING
// =============================================================================

// DeriveOutputName returns the output file name for an input entry: the base
// name with its extension replaced by .toon.
func DeriveOutputName(name string) string {
	return name[:len(name)-len(filepath.Ext(name))] + outputExtension
}

// =============================================================================
// ERROR LOG GENERATION
// =============================================================================

// WriteErrorLog writes a log of failed conversions into the output
// directory. The file name carries a timestamp and a short unique suffix so
// logs from successive runs never collide.
//
// RETURNS:
//   - The path to the written log file.
//   - An error if the log cannot be written.
func (fm *FileManager) WriteErrorLog(outcomes []types.Outcome) (string, error) {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("Conversion errors - %s\n\n", time.Now().Format(time.RFC3339)))
	for _, o := range outcomes {
		if o.Status != types.StatusFailed {
			continue
		}
		b.WriteString(fmt.Sprintf("%s: %s\n", o.SourceName, o.Reason))
	}

	name := fmt.Sprintf("errors_%s_%s.log",
		time.Now().Format("20060102_150405"),
		uuid.New().String()[:8])
	path := filepath.Join(fm.OutputDir, name)

	if err := os.WriteFile(path, []byte(b.String()), 0644); err != nil {
		return "", fmt.Errorf("failed to write error log: %w", err)
	}
	return path, nil
}
