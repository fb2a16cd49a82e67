package las

import (
	"math"
	"strconv"
	"strings"
	"time"
)

// The LAS ERP predates its own API conventions: numeric fields arrive as
// floats, ints, or strings with either decimal separator, booleans as
// ints, and the material code travels under "code" on new endpoints and
// "cod" on old ones. Everything is normalized here, at the aggregate
// construction boundary, so nothing downstream ever sees the aliasing.

// optFloat extracts an optional numeric field. Absent, empty, and
// unparseable values come back nil; the distinction between "not
// recorded" and zero is preserved.
func optFloat(record map[string]interface{}, field string) *float64 {
	raw, ok := record[field]
	if !ok || raw == nil {
		return nil
	}
	switch v := raw.(type) {
	case float64:
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil
		}
		return &v
	case int:
		f := float64(v)
		return &f
	case int64:
		f := float64(v)
		return &f
	case string:
		s := strings.TrimSpace(strings.ReplaceAll(v, ",", "."))
		if s == "" {
			return nil
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			return nil
		}
		return &f
	default:
		return nil
	}
}

// optString extracts an optional text field; empty strings stay present
// (a recorded empty note is not a missing note).
func optString(record map[string]interface{}, field string) *string {
	raw, ok := record[field]
	if !ok || raw == nil {
		return nil
	}
	if s, ok := raw.(string); ok {
		return &s
	}
	return nil
}

// optBool extracts an optional flag; the ERP sends bools, 0/1 ints, or
// "0"/"1" strings depending on endpoint age.
func optBool(record map[string]interface{}, field string) *bool {
	raw, ok := record[field]
	if !ok || raw == nil {
		return nil
	}
	switch v := raw.(type) {
	case bool:
		return &v
	case int:
		b := v != 0
		return &b
	case int64:
		b := v != 0
		return &b
	case float64:
		b := v != 0
		return &b
	case string:
		switch strings.TrimSpace(v) {
		case "1", "true", "t":
			b := true
			return &b
		case "0", "false", "f":
			b := false
			return &b
		}
	}
	return nil
}

// optDate parses the ERP's date formats (ISO date or datetime).
func optDate(record map[string]interface{}, field string) *time.Time {
	raw, ok := record[field]
	if !ok || raw == nil {
		return nil
	}
	s, ok := raw.(string)
	if !ok || s == "" {
		return nil
	}
	for _, layout := range []string{"2006-01-02", "2006-01-02 15:04:05", time.RFC3339} {
		if t, err := time.Parse(layout, s); err == nil {
			return &t
		}
	}
	return nil
}

// materialCode resolves the code/cod field aliasing on material records.
func materialCode(record map[string]interface{}) string {
	if code := optString(record, "code"); code != nil && *code != "" {
		return *code
	}
	if cod := optString(record, "cod"); cod != nil {
		return *cod
	}
	return ""
}

// intField extracts a required int (status codes, ERP ids), defaulting
// to zero when missing.
func intField(record map[string]interface{}, field string) int {
	raw, ok := record[field]
	if !ok || raw == nil {
		return 0
	}
	switch v := raw.(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	case string:
		n, _ := strconv.Atoi(strings.TrimSpace(v))
		return n
	}
	return 0
}

// strField extracts a required string, defaulting to empty.
func strField(record map[string]interface{}, field string) string {
	if s := optString(record, field); s != nil {
		return *s
	}
	return ""
}
