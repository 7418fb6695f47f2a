// =============================================================================
// JSON to TOON Converter - Run Options
// =============================================================================
//
// This file defines the typed, validated configuration for a single
// conversion run. Raw command-line values are resolved exactly once at the
// boundary; everything past ResolveOptions works with a closed set of
// validated values.
//
// VALIDATION RULES:
//   --indent        non-negative integer (default 2)
//   --delimiter     comma | tab | pipe, by name or literal character
//   --keyFolding    off | safe
//   --flattenDepth  optional non-negative integer (unset = encoder default)
//
// ResolveOptions is a pure function: it performs no file I/O, so all option
// errors surface before any directory is touched.
//
// =============================================================================

package config

import (
	"errors"
	"fmt"
	"strconv"
)

// ErrInvalidOption is wrapped by every option validation failure.
var ErrInvalidOption = errors.New("invalid option")

// =============================================================================
// ENUMERATED OPTION TYPES
// =============================================================================

// Delimiter identifies the value separator used by the encoder.
type Delimiter string

const (
	DelimiterComma Delimiter = "comma"
	DelimiterTab   Delimiter = "tab"
	DelimiterPipe  Delimiter = "pipe"
)

// Literal returns the separator character for this delimiter.
func (d Delimiter) Literal() string {
	switch d {
	case DelimiterTab:
		return "\t"
	case DelimiterPipe:
		return "|"
	default:
		return ","
	}
}

// KeyFolding identifies the encoder's key-folding mode.
type KeyFolding string

const (
	FoldingOff  KeyFolding = "off"
	FoldingSafe KeyFolding = "safe"
)

// =============================================================================
// RUN OPTIONS STRUCTURE
// =============================================================================

// RunOptions is the resolved, validated configuration for one invocation.
// It is constructed once per run by ResolveOptions and never mutated.
type RunOptions struct {
	// Indent is the number of spaces per nesting level in the output.
	Indent int

	// Delimiter separates values in inline arrays and tabular rows.
	Delimiter Delimiter

	// KeyFolding controls whether single-key object chains are collapsed
	// into dotted paths.
	KeyFolding KeyFolding

	// FlattenDepth caps the folded path depth. Nil means unset: the
	// encoder applies its own default (unlimited).
	FlattenDepth *int

	// Clean wipes the output directory before the run.
	Clean bool

	// Verbose enables debug logging.
	Verbose bool

	// Report writes an XLSX run report into the output directory.
	Report bool
}

// RawOptions carries the unparsed command-line values into ResolveOptions.
// String fields are empty when the corresponding flag was not provided.
type RawOptions struct {
	Indent       string
	Delimiter    string
	KeyFolding   string
	FlattenDepth string
	Clean        bool
	Verbose      bool
	Report       bool
}

// =============================================================================
// OPTION RESOLUTION
// =============================================================================

// ResolveOptions validates the raw command-line values and produces the
// immutable RunOptions for this run.
//
// RETURNS:
//   - The resolved options.
//   - An error wrapping ErrInvalidOption if any value is outside its
//     closed set. Resolution fails fast before any file I/O occurs.
func ResolveOptions(raw RawOptions) (*RunOptions, error) {
	opts := &RunOptions{
		Indent:     2,
		Delimiter:  DelimiterComma,
		KeyFolding: FoldingOff,
		Clean:      raw.Clean,
		Verbose:    raw.Verbose,
		Report:     raw.Report,
	}

	if raw.Indent != "" {
		n, err := parseNonNegativeInt(raw.Indent)
		if err != nil {
			return nil, fmt.Errorf("%w: --indent must be a non-negative integer, got %q", ErrInvalidOption, raw.Indent)
		}
		opts.Indent = n
	}

	if raw.Delimiter != "" {
		d, err := resolveDelimiter(raw.Delimiter)
		if err != nil {
			return nil, err
		}
		opts.Delimiter = d
	}

	if raw.KeyFolding != "" {
		switch KeyFolding(raw.KeyFolding) {
		case FoldingOff, FoldingSafe:
			opts.KeyFolding = KeyFolding(raw.KeyFolding)
		default:
			return nil, fmt.Errorf("%w: --keyFolding must be %q or %q, got %q", ErrInvalidOption, FoldingOff, FoldingSafe, raw.KeyFolding)
		}
	}

	if raw.FlattenDepth != "" {
		n, err := parseNonNegativeInt(raw.FlattenDepth)
		if err != nil {
			return nil, fmt.Errorf("%w: --flattenDepth must be a non-negative integer, got %q", ErrInvalidOption, raw.FlattenDepth)
		}
		opts.FlattenDepth = &n
	}

	return opts, nil
}

// resolveDelimiter maps a raw flag value to a Delimiter. Both the names
// ("comma", "tab", "pipe") and the literal characters are accepted.
func resolveDelimiter(raw string) (Delimiter, error) {
	switch raw {
	case string(DelimiterComma), ",":
		return DelimiterComma, nil
	case string(DelimiterTab), "\t":
		return DelimiterTab, nil
	case string(DelimiterPipe), "|":
		return DelimiterPipe, nil
	default:
		return "", fmt.Errorf("%w: --delimiter must be one of comma, tab, pipe, got %q", ErrInvalidOption, raw)
	}
}

// parseNonNegativeInt parses s as a base-10 integer and rejects negatives.
func parseNonNegativeInt(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, err
	}
	if n < 0 {
		return 0, fmt.Errorf("negative value %d", n)
	}
	return n, nil
}
