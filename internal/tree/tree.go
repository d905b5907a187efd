// Package tree defines the neutral, order-preserving representation that the
// document decoders (yamlutil, jsonutil, tomlutil) produce.
// Keeping it free of any parser type lets the public package build its own
// Map without importing a specific YAML/JSON/TOML library.
package tree

import (
	"fmt"
	"math"
)

// Entry is one key/value pair of a Mapping.
type Entry struct {
	Key   string
	Value any
}

// Mapping is an ordered list of entries. Values are Scalar-normalized
// (string, int64, float64, bool, nil), []any, or nested Mapping.
type Mapping []Entry

// Key converts a decoded mapping key to its string form.
// YAML allows non-string keys (0:, true:), which are stringified.
func Key(k any) string {
	if s, ok := k.(string); ok {
		return s
	}
	if k == nil {
		return "null"
	}
	return fmt.Sprint(Scalar(k))
}

// Scalar normalizes numeric kinds to int64 or float64.
// Unsigned values above math.MaxInt64 become float64.
// Values implementing fmt.Stringer (dates, times) are stringified.
func Scalar(v any) any {
	switch x := v.(type) {
	case nil, string, bool, int64, float64:
		return v
	case int:
		return int64(x)
	case int8:
		return int64(x)
	case int16:
		return int64(x)
	case int32:
		return int64(x)
	case uint:
		return fromUint(uint64(x))
	case uint8:
		return int64(x)
	case uint16:
		return int64(x)
	case uint32:
		return int64(x)
	case uint64:
		return fromUint(x)
	case float32:
		return float64(x)
	case fmt.Stringer:
		return x.String()
	default:
		return v
	}
}

func fromUint(u uint64) any {
	if u > math.MaxInt64 {
		return float64(u)
	}
	return int64(u)
}
