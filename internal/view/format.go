package view

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// Decimal renders a loosely-typed numeric value with a fixed number of
// fractional digits and a comma decimal separator, no thousands grouping.
// The LAS ERP is sloppy about numeric types, so the value may arrive as a
// number, a numeric string using either decimal separator, or nothing at
// all. Rules:
//   - nil (or a nil pointer) renders as the empty string
//   - numbers render fixed-point with exactly decimals fractional digits
//   - numeric strings are normalized (comma to dot) and parsed; strings
//     that do not parse to a finite number pass through unchanged, so the
//     operator still sees whatever the ERP sent
//
// Decimal never panics and performs no I/O.
func Decimal(value any, decimals int) string {
	switch v := value.(type) {
	case nil:
		return ""
	case *float64:
		if v == nil {
			return ""
		}
		return formatFixed(*v, decimals)
	case float64:
		return formatFixed(v, decimals)
	case float32:
		return formatFixed(float64(v), decimals)
	case int:
		return formatFixed(float64(v), decimals)
	case int64:
		return formatFixed(float64(v), decimals)
	case json.Number:
		return decimalString(v.String(), decimals)
	case *string:
		if v == nil {
			return ""
		}
		return decimalString(*v, decimals)
	case string:
		return decimalString(v, decimals)
	default:
		// Unexpected type: keep the raw representation visible rather
		// than blanking the field.
		return fmt.Sprintf("%v", value)
	}
}

// decimalString parses a decimal string that may use either separator.
// Unparseable input is returned unchanged.
func decimalString(s string, decimals int) string {
	normalized := strings.ReplaceAll(s, ",", ".")
	f, err := strconv.ParseFloat(strings.TrimSpace(normalized), 64)
	if err != nil || math.IsInf(f, 0) || math.IsNaN(f) {
		return s
	}
	return formatFixed(f, decimals)
}

func formatFixed(f float64, decimals int) string {
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return ""
	}
	if decimals < 0 {
		decimals = 0
	}
	s := strconv.FormatFloat(f, 'f', decimals, 64)
	return strings.Replace(s, ".", ",", 1)
}

// Date renders a timestamp in the Italian day/month/year convention.
// A nil timestamp renders as the empty string.
func Date(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format("02/01/2006")
}
