// Package yamlutil wraps YAML parsing to isolate the external dependency.
// This allows swapping the underlying YAML library without modifying callers.
//
// Struct decoding (Unmarshal, UnmarshalStrict) serves the CLI settings file.
// Ordered decoding (UnmarshalOrdered, MarshalOrdered) serves branding
// documents, whose key order is part of the CSS output contract.
package yamlutil

import (
	"errors"
	"fmt"

	"github.com/goccy/go-yaml"

	"github.com/alnah/go-brandkit/internal/tree"
)

// MaxInputSize limits YAML input to prevent memory exhaustion (default 1MB).
var MaxInputSize = 1 << 20

var (
	ErrNilData        = errors.New("yamlutil: nil or empty data")
	ErrNilDestination = errors.New("yamlutil: nil destination pointer")
	ErrInputTooLarge  = errors.New("yamlutil: input exceeds maximum size")
	ErrNotMapping     = errors.New("yamlutil: top-level value is not a mapping")
)

func validateInput(data []byte, v any) error {
	if len(data) == 0 {
		return ErrNilData
	}
	if len(data) > MaxInputSize {
		return fmt.Errorf("%w: %d bytes (max %d)", ErrInputTooLarge, len(data), MaxInputSize)
	}
	if v == nil {
		return ErrNilDestination
	}
	return nil
}

func Unmarshal(data []byte, v any) error {
	if err := validateInput(data, v); err != nil {
		return err
	}
	if err := yaml.Unmarshal(data, v); err != nil {
		return fmt.Errorf("yamlutil: %w", err)
	}
	return nil
}

// UnmarshalStrict rejects unknown fields in the input.
func UnmarshalStrict(data []byte, v any) error {
	if err := validateInput(data, v); err != nil {
		return err
	}
	if err := yaml.UnmarshalWithOptions(data, v, yaml.Strict()); err != nil {
		return fmt.Errorf("yamlutil: %w", err)
	}
	return nil
}

// UnmarshalOrdered decodes a YAML (or JSON-compatible YAML) document whose
// top level is a mapping, keeping mapping keys in source order.
func UnmarshalOrdered(data []byte) (tree.Mapping, error) {
	var raw any
	if err := validateInput(data, &raw); err != nil {
		return nil, err
	}
	if err := yaml.UnmarshalWithOptions(data, &raw, yaml.UseOrderedMap()); err != nil {
		return nil, fmt.Errorf("yamlutil: %w", err)
	}
	root, ok := fromYAML(raw).(tree.Mapping)
	if !ok {
		return nil, fmt.Errorf("%w (got %T)", ErrNotMapping, raw)
	}
	return root, nil
}

// MarshalOrdered encodes m as block-style YAML, keys in slice order.
func MarshalOrdered(m tree.Mapping) ([]byte, error) {
	out, err := yaml.Marshal(toYAML(m))
	if err != nil {
		return nil, fmt.Errorf("yamlutil: %w", err)
	}
	return out, nil
}

func fromYAML(v any) any {
	switch x := v.(type) {
	case yaml.MapSlice:
		m := make(tree.Mapping, 0, len(x))
		for _, item := range x {
			m = append(m, tree.Entry{Key: tree.Key(item.Key), Value: fromYAML(item.Value)})
		}
		return m
	case []any:
		out := make([]any, len(x))
		for i, elem := range x {
			out[i] = fromYAML(elem)
		}
		return out
	default:
		return tree.Scalar(v)
	}
}

func toYAML(v any) any {
	switch x := v.(type) {
	case tree.Mapping:
		ms := make(yaml.MapSlice, 0, len(x))
		for _, e := range x {
			ms = append(ms, yaml.MapItem{Key: e.Key, Value: toYAML(e.Value)})
		}
		return ms
	case []any:
		out := make([]any, len(x))
		for i, elem := range x {
			out[i] = toYAML(elem)
		}
		return out
	default:
		return v
	}
}
