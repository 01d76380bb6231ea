// Package schema renders the structural shape of a parsed JSON value: types
// and nesting, never the values themselves. The output is bounded by a depth
// cap and a per-object key cap so arbitrarily large documents compress into
// a few dozen lines.
//
// Two deliberate approximations keep the output small: arrays are assumed
// uniform and only their first element is sampled, and the "date?" label is
// a length-and-dash heuristic, not real date validation.
package schema

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"sort"
	"strings"
)

// Infer renders the schema of v, indented two spaces per depth level.
//
// Values must come from encoding/json: maps, slices, strings, bools, nil,
// and numbers as json.Number (preferred, preserves the int/float
// distinction) or float64. Callers start at depth 0; once depth exceeds
// maxDepth the subtree renders as "...".
func Infer(v any, depth, maxDepth int) string {
	indent := strings.Repeat("  ", depth)

	if depth > maxDepth {
		return indent + "..."
	}

	switch val := v.(type) {
	case nil:
		return indent + "null"
	case bool:
		return indent + "bool"
	case json.Number:
		if _, err := val.Int64(); err == nil {
			return indent + "int"
		}
		return indent + "float"
	case float64:
		if val == math.Trunc(val) && val >= math.MinInt64 && val <= math.MaxInt64 {
			return indent + "int"
		}
		return indent + "float"
	case string:
		return indent + stringLabel(val)
	case []any:
		return arraySchema(val, indent, depth, maxDepth)
	case map[string]any:
		return objectSchema(val, indent, depth, maxDepth)
	}
	return indent + "?"
}

// stringLabel classifies a string by shape. Long strings report their length
// so the reader knows a blob lives here without seeing it.
func stringLabel(s string) string {
	if len(s) > 50 {
		return fmt.Sprintf("string[%d]", len(s))
	}
	if s == "" {
		return "string"
	}
	if strings.HasPrefix(s, "http") {
		return "url"
	}
	if strings.Contains(s, "-") && len(s) == 10 {
		return "date?"
	}
	return "string"
}

// arraySchema samples only the first element. A single-element array renders
// as a bracketed block; longer arrays inline the element schema with the
// element count.
func arraySchema(arr []any, indent string, depth, maxDepth int) string {
	if len(arr) == 0 {
		return indent + "[]"
	}
	first := Infer(arr[0], depth+1, maxDepth)
	if len(arr) == 1 {
		return indent + "[\n" + first + "\n" + indent + "]"
	}
	return fmt.Sprintf("%s[%s] (%d)", indent, strings.TrimSpace(first), len(arr))
}

// objectSchema lists keys in lexicographic order, inlining simple values and
// nesting composite ones. After the 16th key the rest collapse into a
// "+N more keys" line.
func objectSchema(obj map[string]any, indent string, depth, maxDepth int) string {
	if len(obj) == 0 {
		return indent + "{}"
	}

	keys := make([]string, 0, len(obj))
	for k := range obj {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	lines := []string{indent + "{"}
	for i, key := range keys {
		val := obj[key]
		childSchema := Infer(val, depth+1, maxDepth)

		if isSimple(val) {
			trimmed := strings.TrimSpace(childSchema)
			if i < len(keys)-1 {
				lines = append(lines, fmt.Sprintf("%s  %s: %s,", indent, key, trimmed))
			} else {
				lines = append(lines, fmt.Sprintf("%s  %s: %s", indent, key, trimmed))
			}
		} else {
			lines = append(lines, fmt.Sprintf("%s  %s:", indent, key))
			lines = append(lines, childSchema)
		}

		if i >= 15 {
			lines = append(lines, fmt.Sprintf("%s  ... +%d more keys", indent, len(keys)-i-1))
			break
		}
	}
	lines = append(lines, indent+"}")
	return strings.Join(lines, "\n")
}

// isSimple reports whether a value inlines as "key: label" rather than
// opening a nested block.
func isSimple(v any) bool {
	switch v.(type) {
	case nil, bool, string, json.Number, float64:
		return true
	}
	return false
}

// Decode parses JSON text into the value model Infer expects, preserving the
// int/float distinction via json.Number.
func Decode(data []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	return v, nil
}
