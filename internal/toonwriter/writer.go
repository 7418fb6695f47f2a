// =============================================================================
// JSON to TOON Converter - TOON Writer Module
// =============================================================================
//
// This module is responsible for generating TOON documents from parsed JSON
// values. TOON (Token-Oriented Object Notation) is a line-oriented format
// that trades JSON's punctuation for indentation and compact array headers.
//
// TOON STRUCTURE:
//   The generated output follows this pattern:
//
//   name: widget                       <- scalar member
//   spec:                              <- nested object
//     weight: 1.5
//   tags[3]: red,green,blue            <- inline primitive array with length
//   items[2]{id,label}:                <- tabular array of uniform objects
//     1,bolt
//     2,nut
//   mixed[2]:                          <- list array for everything else
//     - 42
//     - note: hello
//
//   With key folding enabled, chains of single-key objects collapse into
//   dotted paths: {"a":{"b":{"c":1}}} becomes "a.b.c: 1".
//
// DATA MODEL:
//   The writer accepts the Go representation of parsed JSON: nil, bool,
//   string, json.Number, float64, []any, and map[string]any. Any other type
//   is an encoding error. Object keys are emitted in sorted order so that
//   identical input always produces byte-identical output.
//
// =============================================================================

package toonwriter

import (
	"bytes"
	"encoding/json"
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// =============================================================================
// GENERATION OPTIONS
// =============================================================================

// Key-folding modes understood by the writer.
const (
	FoldingOff  = "off"
	FoldingSafe = "safe"
)

// Options contains options for TOON generation.
type Options struct {
	// Indent is the number of spaces per nesting level.
	// Default: 2
	Indent int

	// Delimiter is the literal separator used in inline arrays, tabular
	// headers, and tabular rows.
	// Default: ","
	Delimiter string

	// KeyFolding controls collapsing of single-key object chains into
	// dotted paths. Only chains whose keys are plain identifiers are
	// folded, so the output stays unambiguous.
	// Default: FoldingOff
	KeyFolding string

	// FlattenDepth caps the number of dots in a folded path.
	// Negative means unlimited.
	// Default: -1
	FlattenDepth int
}

// DefaultOptions returns the default generation options.
func DefaultOptions() Options {
	return Options{
		Indent:       2,
		Delimiter:    ",",
		KeyFolding:   FoldingOff,
		FlattenDepth: -1,
	}
}

// =============================================================================
// GENERATION FUNCTIONS
// =============================================================================

// Generate encodes a parsed JSON value as a TOON document.
//
// PARAMETERS:
//   - doc: The parsed document (JSON data model, see package comment).
//   - options: The generation options.
//
// RETURNS:
//   - The TOON document as a byte slice. Every line, including the last,
//     ends with a newline.
//   - An error if the document contains a value outside the JSON data model.
func Generate(doc any, options Options) ([]byte, error) {
	if options.Indent < 0 {
		return nil, fmt.Errorf("indentation must be non-negative, got %d", options.Indent)
	}
	if options.Delimiter == "" {
		options.Delimiter = ","
	}

	e := &encoder{options: options}

	var err error
	switch v := doc.(type) {
	case map[string]any:
		err = e.encodeObject(v, 0)
	case []any:
		err = e.encodeArray("", v, 0)
	default:
		var s string
		s, err = e.formatScalar(v)
		if err == nil {
			e.writeLine(0, s)
		}
	}
	if err != nil {
		return nil, err
	}

	return e.buf.Bytes(), nil
}

// =============================================================================
// ENCODER
// =============================================================================

// encoder accumulates output lines for one Generate call.
type encoder struct {
	buf     bytes.Buffer
	options Options
}

// writeLine emits one indented line.
func (e *encoder) writeLine(depth int, text string) {
	e.buf.WriteString(strings.Repeat(" ", depth*e.options.Indent))
	e.buf.WriteString(text)
	e.buf.WriteByte('\n')
}

// encodeObject emits the members of an object, keys sorted.
func (e *encoder) encodeObject(m map[string]any, depth int) error {
	for _, key := range sortedKeys(m) {
		if err := e.encodeMember(key, m[key], depth); err != nil {
			return err
		}
	}
	return nil
}

// encodeMember emits one key/value member. In safe folding mode, chains of
// single-key objects with identifier keys are first collapsed into a dotted
// path, subject to the FlattenDepth cap.
func (e *encoder) encodeMember(key string, value any, depth int) error {
	label := encodeKey(key)

	if e.options.KeyFolding == FoldingSafe && isSafeKey(key) {
		for {
			m, ok := value.(map[string]any)
			if !ok || len(m) != 1 {
				break
			}
			childKey := sortedKeys(m)[0]
			if !isSafeKey(childKey) {
				break
			}
			if e.options.FlattenDepth >= 0 && strings.Count(label, ".")+1 > e.options.FlattenDepth {
				break
			}
			label = label + "." + childKey
			value = m[childKey]
		}
	}

	switch v := value.(type) {
	case map[string]any:
		e.writeLine(depth, label+":")
		return e.encodeObject(v, depth+1)
	case []any:
		return e.encodeArray(label, v, depth)
	default:
		s, err := e.formatScalar(v)
		if err != nil {
			return fmt.Errorf("key %q: %w", key, err)
		}
		e.writeLine(depth, label+": "+s)
		return nil
	}
}

// encodeArray emits an array in the most compact applicable form: inline for
// primitives, tabular for uniform flat objects, list form otherwise. lead is
// the already-encoded key label, "" for a root array, or "- " for an array
// nested in a list item.
func (e *encoder) encodeArray(lead string, arr []any, depth int) error {
	head := fmt.Sprintf("%s[%d]", lead, len(arr))

	if len(arr) == 0 {
		e.writeLine(depth, head+":")
		return nil
	}

	// Inline form: all elements are primitive scalars.
	if allPrimitives(arr) {
		values := make([]string, len(arr))
		for i, el := range arr {
			s, err := e.formatScalar(el)
			if err != nil {
				return err
			}
			values[i] = s
		}
		e.writeLine(depth, head+": "+strings.Join(values, e.options.Delimiter))
		return nil
	}

	// Tabular form: all elements are flat objects over the same field set.
	if fields, ok := tabularFields(arr); ok {
		names := make([]string, len(fields))
		for i, f := range fields {
			names[i] = encodeKey(f)
		}
		e.writeLine(depth, head+"{"+strings.Join(names, e.options.Delimiter)+"}:")

		for _, el := range arr {
			m := el.(map[string]any)
			row := make([]string, len(fields))
			for i, f := range fields {
				s, err := e.formatScalar(m[f])
				if err != nil {
					return err
				}
				row[i] = s
			}
			e.writeLine(depth+1, strings.Join(row, e.options.Delimiter))
		}
		return nil
	}

	// List form: one hyphen-marked item per element.
	e.writeLine(depth, head+":")
	for _, el := range arr {
		if err := e.encodeListItem(el, depth+1); err != nil {
			return err
		}
	}
	return nil
}

// encodeListItem emits one element of a list-form array.
func (e *encoder) encodeListItem(value any, depth int) error {
	switch v := value.(type) {
	case map[string]any:
		keys := sortedKeys(v)
		if len(keys) == 0 {
			e.writeLine(depth, "-")
			return nil
		}
		// The first member rides on the hyphen line when it is a scalar;
		// remaining members indent one level below the marker.
		if isPrimitive(v[keys[0]]) {
			s, err := e.formatScalar(v[keys[0]])
			if err != nil {
				return fmt.Errorf("key %q: %w", keys[0], err)
			}
			e.writeLine(depth, "- "+encodeKey(keys[0])+": "+s)
			keys = keys[1:]
		} else {
			e.writeLine(depth, "-")
		}
		for _, key := range keys {
			if err := e.encodeMember(key, v[key], depth+1); err != nil {
				return err
			}
		}
		return nil
	case []any:
		return e.encodeArray("- ", v, depth)
	default:
		s, err := e.formatScalar(v)
		if err != nil {
			return err
		}
		e.writeLine(depth, "- "+s)
		return nil
	}
}

// =============================================================================
// SCALAR FORMATTING
// =============================================================================

// formatScalar renders a primitive value as a TOON token.
func (e *encoder) formatScalar(value any) (string, error) {
	switch v := value.(type) {
	case nil:
		return "null", nil
	case bool:
		return strconv.FormatBool(v), nil
	case json.Number:
		return v.String(), nil
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64), nil
	case string:
		if e.needsQuoting(v) {
			return quoteString(v), nil
		}
		return v, nil
	default:
		return "", fmt.Errorf("cannot encode value of type %T", value)
	}
}

// needsQuoting reports whether a string value is ambiguous as a bare token
// and must be quoted.
func (e *encoder) needsQuoting(s string) bool {
	if s == "" || strings.TrimSpace(s) != s {
		return true
	}
	if s == "true" || s == "false" || s == "null" {
		return true
	}
	if _, err := strconv.ParseFloat(s, 64); err == nil {
		return true
	}
	if s == "-" || strings.HasPrefix(s, "- ") {
		return true
	}
	switch s[0] {
	case '[', '{', '"':
		return true
	}
	if strings.Contains(s, e.options.Delimiter) {
		return true
	}
	for _, r := range s {
		if r < 0x20 || r == ':' || r == '"' || r == '\\' {
			return true
		}
	}
	return false
}

// quoteString wraps s in double quotes, escaping the usual suspects.
func quoteString(s string) string {
	var b strings.Builder
	b.WriteByte('"')
	for _, r := range s {
		switch r {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		default:
			if r < 0x20 {
				fmt.Fprintf(&b, `\u%04x`, r)
			} else {
				b.WriteRune(r)
			}
		}
	}
	b.WriteByte('"')
	return b.String()
}

// =============================================================================
// KEY HANDLING
// =============================================================================

// safeKeyRe matches keys that can appear unquoted. Dots are excluded so a
// literal dotted key can never collide with a folded path.
var safeKeyRe = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_-]*$`)

// isSafeKey reports whether key is a plain identifier.
func isSafeKey(key string) bool {
	return safeKeyRe.MatchString(key)
}

// encodeKey renders an object key, quoting it when it is not a plain
// identifier.
func encodeKey(key string) string {
	if isSafeKey(key) {
		return key
	}
	return quoteString(key)
}

// =============================================================================
// SHAPE CLASSIFICATION
// =============================================================================

// isPrimitive reports whether value is a scalar in the JSON data model.
func isPrimitive(value any) bool {
	switch value.(type) {
	case nil, bool, string, json.Number, float64:
		return true
	}
	return false
}

// allPrimitives reports whether every element of arr is a scalar.
func allPrimitives(arr []any) bool {
	for _, el := range arr {
		if !isPrimitive(el) {
			return false
		}
	}
	return true
}

// tabularFields reports whether arr qualifies for the tabular form: every
// element a non-empty flat object over the exact same field set. On success
// it returns the shared fields in sorted order.
func tabularFields(arr []any) ([]string, bool) {
	first, ok := arr[0].(map[string]any)
	if !ok || len(first) == 0 {
		return nil, false
	}
	fields := sortedKeys(first)

	for _, el := range arr {
		m, ok := el.(map[string]any)
		if !ok || len(m) != len(fields) {
			return nil, false
		}
		for _, f := range fields {
			v, present := m[f]
			if !present || !isPrimitive(v) {
				return nil, false
			}
		}
	}
	return fields, true
}

// sortedKeys returns the keys of m in lexicographic order.
func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
