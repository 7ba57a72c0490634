// Package record provides coercion and validation for raw clinical
// rows before they become typed domain values. Rows arrive as loosely
// typed maps (decoded JSON bodies or parsed tabular rows); the helpers
// here turn individual fields into numbers, booleans, and strings with
// documented defaults.
package record

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Raw is one inbound row: raw field name to raw value.
type Raw map[string]any

// ValidationError reports a field that is absent or fails its
// type/range/enum constraint.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s %s", e.Field, e.Reason)
}

// Missing builds the error for a required field that is absent.
func Missing(field string) *ValidationError {
	return &ValidationError{Field: field, Reason: "is required"}
}

// Invalid builds the error for a present field with an unusable value.
func Invalid(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}

// Float reads key as a floating-point value. Absent, blank,
// unparseable, or non-finite values yield def.
func Float(raw Raw, key string, def float64) float64 {
	v, ok := raw[key]
	if !ok {
		return def
	}
	f, ok := toFloat(v)
	if !ok {
		return def
	}
	return f
}

// Int reads key as an integer, rounding fractional input. Absent or
// unparseable values yield def.
func Int(raw Raw, key string, def int) int {
	v, ok := raw[key]
	if !ok {
		return def
	}
	f, ok := toFloat(v)
	if !ok {
		return def
	}
	return int(math.Round(f))
}

// Bool reads key as a boolean, accepting true/false, yes/no, and 1/0
// in boolean, string, or numeric form. Absent values yield def; any
// other value is a ValidationError.
func Bool(raw Raw, key string, def bool) (bool, error) {
	v, ok := raw[key]
	if !ok || v == nil {
		return def, nil
	}
	switch b := v.(type) {
	case bool:
		return b, nil
	case string:
		switch strings.ToLower(strings.TrimSpace(b)) {
		case "true", "yes", "1":
			return true, nil
		case "false", "no", "0":
			return false, nil
		case "":
			return def, nil
		}
	default:
		if f, ok := toFloat(v); ok {
			switch f {
			case 1:
				return true, nil
			case 0:
				return false, nil
			}
		}
	}
	return false, Invalid(key, "must be a boolean")
}

// String reads key as a trimmed string. The second return reports
// whether the key held a usable (non-nil) value.
func String(raw Raw, key string) (string, bool) {
	v, ok := raw[key]
	if !ok || v == nil {
		return "", false
	}
	switch s := v.(type) {
	case string:
		return strings.TrimSpace(s), true
	case fmt.Stringer:
		return strings.TrimSpace(s.String()), true
	case float64, float32, int, int32, int64, json.Number:
		f, _ := toFloat(v)
		return strconv.FormatFloat(f, 'f', -1, 64), true
	}
	return "", false
}

// HasNumber reports whether key is present and parses as a finite
// number. Used by batch filters that must distinguish a genuinely
// supplied measurement from a defaulted one.
func HasNumber(raw Raw, key string) bool {
	v, ok := raw[key]
	if !ok {
		return false
	}
	_, ok = toFloat(v)
	return ok
}

func toFloat(v any) (float64, bool) {
	var f float64
	switch n := v.(type) {
	case float64:
		f = n
	case float32:
		f = float64(n)
	case int:
		f = float64(n)
	case int32:
		f = float64(n)
	case int64:
		f = float64(n)
	case uint:
		f = float64(n)
	case uint64:
		f = float64(n)
	case json.Number:
		parsed, err := n.Float64()
		if err != nil {
			return 0, false
		}
		f = parsed
	case string:
		s := strings.TrimSpace(n)
		if s == "" {
			return 0, false
		}
		parsed, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, false
		}
		f = parsed
	default:
		return 0, false
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}
