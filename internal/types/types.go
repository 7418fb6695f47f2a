// =============================================================================
// JSON to TOON Converter - Shared Types
// =============================================================================
//
// This package contains shared types used across multiple modules to avoid
// import cycles. Types defined here are used by:
//   - converter
//   - report
//   - utils
//
// =============================================================================

package types

// =============================================================================
// OUTCOME TYPES
// =============================================================================

// Status classifies the result of one conversion attempt.
type Status string

const (
	// StatusConverted means the file was read, parsed, encoded, and written.
	StatusConverted Status = "converted"

	// StatusSkipped means the entry never reached the core transform
	// (not a regular file, or not a .json file).
	StatusSkipped Status = "skipped"

	// StatusFailed means the transform was attempted and failed
	// (unreadable file, malformed JSON, encoder rejection, write failure).
	StatusFailed Status = "failed"
)

// Outcome is the per-entry result of one conversion attempt.
// Exactly one Outcome is produced per enumerated directory entry.
type Outcome struct {
	// SourceName is the name of the input directory entry.
	SourceName string

	// OutputName is the name of the written output file.
	// Empty unless Status is StatusConverted.
	OutputName string

	// Status classifies the attempt.
	Status Status

	// Reason is a human-readable explanation for a skipped or failed entry.
	// Empty for converted entries.
	Reason string
}
