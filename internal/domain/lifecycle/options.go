// Where: cli/internal/domain/lifecycle/options.go
// What: Parsed option values passed to hooks.
// Why: Normalize single and repeated flag values behind typed accessors.
package lifecycle

import "strings"

// Options carries parsed CLI option values keyed by option name.
// Values are string, bool, or []string.
type Options map[string]any

// String returns the option as a string, or "" when absent or not a string.
func (o Options) String(name string) string {
	if s, ok := o[name].(string); ok {
		return s
	}
	return ""
}

// Bool reports whether a flag option is set.
func (o Options) Bool(name string) bool {
	b, _ := o[name].(bool)
	return b
}

// Strings normalizes a single value or a sequence into a slice, preserving
// the order the values were supplied in.
func (o Options) Strings(name string) []string {
	switch v := o[name].(type) {
	case nil:
		return nil
	case string:
		return []string{v}
	case []string:
		return append([]string(nil), v...)
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	default:
		return nil
	}
}

// Has reports whether the option carries a non-empty value.
func (o Options) Has(name string) bool {
	switch v := o[name].(type) {
	case nil:
		return false
	case string:
		return strings.TrimSpace(v) != ""
	case bool:
		return v
	case []string:
		return len(v) > 0
	case []any:
		return len(v) > 0
	default:
		return true
	}
}
