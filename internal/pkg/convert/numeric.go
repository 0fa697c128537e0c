// Package convert provides type conversion utilities.
package convert

import (
	"database/sql"
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// ToFloat64 converts various numeric types to float64.
// Returns 0 for unsupported types, parse failures, NaN and infinities.
func ToFloat64(v any) float64 {
	return Finite(toFloat64(v))
}

// Finite maps NaN and ±Inf to 0.
func Finite(f float64) float64 {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}

func toFloat64(v any) float64 {
	switch t := v.(type) {
	case nil:
		return 0
	case float64:
		return t
	case float32:
		return float64(t)
	case int:
		return float64(t)
	case int64:
		return float64(t)
	case int32:
		return float64(t)
	case uint64:
		return float64(t)
	case json.Number:
		f, _ := t.Float64()
		return f
	case []byte:
		return toFloat64(string(t))
	case string:
		f, _ := strconv.ParseFloat(strings.TrimSpace(t), 64)
		return f
	case sql.NullFloat64:
		if !t.Valid {
			return 0
		}
		return t.Float64
	case sql.NullInt64:
		if !t.Valid {
			return 0
		}
		return float64(t.Int64)
	default:
		return 0
	}
}

// ToBool applies loose truthiness: non-zero numbers and non-empty strings
// other than "0"/"false" are true. NULL is false.
func ToBool(v any) bool {
	switch t := v.(type) {
	case nil:
		return false
	case bool:
		return t
	case sql.NullBool:
		return t.Valid && t.Bool
	case sql.NullInt64:
		return t.Valid && t.Int64 != 0
	case sql.NullString:
		return t.Valid && ToBool(t.String)
	case []byte:
		// MySQL BIT(1) arrives as a single raw byte.
		if len(t) == 1 && t[0] <= 1 {
			return t[0] == 1
		}
		return ToBool(string(t))
	case string:
		s := strings.ToLower(strings.TrimSpace(t))
		switch s {
		case "", "0", "false", "f", "no", "n", "off":
			return false
		}
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			return f != 0
		}
		return true
	default:
		return ToFloat64(v) != 0
	}
}

// NullFlag scans a boolean column whatever the driver hands back: bool from
// SQLite BOOLEAN, int64 from TINYINT, text, or BIT(1) bytes.
type NullFlag struct {
	Bool  bool
	Valid bool
}

func (f *NullFlag) Scan(value any) error {
	f.Valid = value != nil
	f.Bool = ToBool(value)
	return nil
}

// NullString returns the string value, or "" when NULL.
func NullString(s sql.NullString) string {
	if !s.Valid {
		return ""
	}
	return s.String
}
