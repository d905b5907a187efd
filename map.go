package brandkit

import (
	"bytes"
	"encoding/json"
	"fmt"
	"iter"
	"math"
	"reflect"
	"strconv"
	"strings"

	"github.com/alnah/go-brandkit/internal/tree"
)

// Map is an insertion-ordered mapping with string keys. It holds the
// open-ended parts of a branding document.
//
// Values are string, int64, float64, bool, nil, []any or *Map. Iteration
// always follows insertion order, which CSS generation relies on.
// A nil *Map behaves as an empty mapping for every read method.
type Map struct {
	keys   []string
	values map[string]any
}

// NewMap returns an empty Map.
func NewMap() *Map {
	return &Map{values: make(map[string]any)}
}

// Set stores value under key. A new key is appended; an existing key keeps
// its position and takes the new value.
func (m *Map) Set(key string, value any) {
	if m.values == nil {
		m.values = make(map[string]any)
	}
	if _, exists := m.values[key]; !exists {
		m.keys = append(m.keys, key)
	}
	m.values[key] = normalize(value)
}

// Get returns the value stored under key.
func (m *Map) Get(key string) (any, bool) {
	if m == nil {
		return nil, false
	}
	v, ok := m.values[key]
	return v, ok
}

// Len returns the number of keys.
func (m *Map) Len() int {
	if m == nil {
		return 0
	}
	return len(m.keys)
}

// Keys returns a copy of the keys in insertion order.
func (m *Map) Keys() []string {
	if m == nil {
		return []string{}
	}
	out := make([]string, len(m.keys))
	copy(out, m.keys)
	return out
}

// All iterates over key/value pairs in insertion order.
func (m *Map) All() iter.Seq2[string, any] {
	return func(yield func(string, any) bool) {
		if m == nil {
			return
		}
		for _, k := range m.keys {
			if !yield(k, m.values[k]) {
				return
			}
		}
	}
}

// Map returns the nested mapping stored under key.
// It reports false when the key is absent or holds a non-mapping value.
func (m *Map) Map(key string) (*Map, bool) {
	v, ok := m.Get(key)
	if !ok {
		return nil, false
	}
	sub, ok := v.(*Map)
	return sub, ok && sub != nil
}

// Child returns the nested mapping under key, or a new empty Map.
func (m *Map) Child(key string) *Map {
	if sub, ok := m.Map(key); ok {
		return sub
	}
	return NewMap()
}

// List returns the sequence stored under key.
func (m *Map) List(key string) ([]any, bool) {
	v, ok := m.Get(key)
	if !ok {
		return nil, false
	}
	list, ok := v.([]any)
	return list, ok
}

// Text returns the scalar stored under key in string form.
// Mappings, sequences and null report false.
func (m *Map) Text(key string) (string, bool) {
	v, ok := m.Get(key)
	if !ok {
		return "", false
	}
	return scalarText(v)
}

// Equal reports whether both maps hold the same keys, in the same order,
// with deeply equal values.
func (m *Map) Equal(other *Map) bool {
	if m.Len() != other.Len() {
		return false
	}
	if m == nil || other == nil {
		return true
	}
	for i, k := range m.keys {
		if other.keys[i] != k {
			return false
		}
		if !valuesEqual(m.values[k], other.values[k]) {
			return false
		}
	}
	return true
}

// ToMap converts m into plain Go maps and slices. Key order is lost.
func (m *Map) ToMap() map[string]any {
	out := make(map[string]any, m.Len())
	for k, v := range m.All() {
		out[k] = plain(v)
	}
	return out
}

// MarshalJSON encodes m as a JSON object with keys in insertion order.
// Invalid UTF-8 in keys or strings is replaced with U+FFFD. JSON
// documents holding it are rejected by Parse.
func (m *Map) MarshalJSON() ([]byte, error) {
	return encodeJSON(m)
}

func scalarText(v any) (string, bool) {
	switch x := v.(type) {
	case string:
		return x, true
	case int64:
		return strconv.FormatInt(x, 10), true
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64), true
	case bool:
		return strconv.FormatBool(x), true
	default:
		return "", false
	}
}

func normalize(v any) any {
	switch x := v.(type) {
	case *Map, []any:
		return v
	case tree.Mapping:
		return fromTree(x)
	default:
		return tree.Scalar(v)
	}
}

func valuesEqual(a, b any) bool {
	switch x := a.(type) {
	case *Map:
		y, ok := b.(*Map)
		return ok && x.Equal(y)
	case []any:
		y, ok := b.([]any)
		if !ok || len(x) != len(y) {
			return false
		}
		for i := range x {
			if !valuesEqual(x[i], y[i]) {
				return false
			}
		}
		return true
	default:
		return reflect.DeepEqual(a, b)
	}
}

func plain(v any) any {
	switch x := v.(type) {
	case *Map:
		return x.ToMap()
	case []any:
		out := make([]any, len(x))
		for i, elem := range x {
			out[i] = plain(elem)
		}
		return out
	default:
		return v
	}
}

// fromTree builds a Map from decoder output.
func fromTree(t tree.Mapping) *Map {
	m := NewMap()
	for _, e := range t {
		m.Set(e.Key, fromTreeValue(e.Value))
	}
	return m
}

func fromTreeValue(v any) any {
	switch x := v.(type) {
	case tree.Mapping:
		return fromTree(x)
	case []any:
		out := make([]any, len(x))
		for i, elem := range x {
			out[i] = fromTreeValue(elem)
		}
		return out
	default:
		return v
	}
}

// toTree converts m back into decoder-neutral form for encoders.
func toTree(m *Map) tree.Mapping {
	out := make(tree.Mapping, 0, m.Len())
	for k, v := range m.All() {
		out = append(out, tree.Entry{Key: k, Value: toTreeValue(v)})
	}
	return out
}

func toTreeValue(v any) any {
	switch x := v.(type) {
	case *Map:
		return toTree(x)
	case []any:
		out := make([]any, len(x))
		for i, elem := range x {
			out[i] = toTreeValue(elem)
		}
		return out
	default:
		return v
	}
}

func encodeJSON(v any) ([]byte, error) {
	var buf bytes.Buffer
	if err := writeJSON(&buf, v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeJSON(buf *bytes.Buffer, v any) error {
	switch x := v.(type) {
	case nil:
		buf.WriteString("null")
	case *Map:
		if x == nil {
			buf.WriteString("null")
			return nil
		}
		buf.WriteByte('{')
		for i, k := range x.keys {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := writeJSONString(buf, k); err != nil {
				return err
			}
			buf.WriteByte(':')
			if err := writeJSON(buf, x.values[k]); err != nil {
				return err
			}
		}
		buf.WriteByte('}')
	case []any:
		buf.WriteByte('[')
		for i, elem := range x {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := writeJSON(buf, elem); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
	case string:
		return writeJSONString(buf, x)
	case bool:
		buf.WriteString(strconv.FormatBool(x))
	case int64:
		buf.WriteString(strconv.FormatInt(x, 10))
	case float64:
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return fmt.Errorf("%w: %v", ErrUnsupportedValue, x)
		}
		// Keep a fraction or exponent so the value decodes back as a float.
		format := byte('f')
		if abs := math.Abs(x); abs != 0 && (abs < 1e-6 || abs >= 1e21) {
			format = 'e'
		}
		s := strconv.FormatFloat(x, format, -1, 64)
		if !strings.ContainsAny(s, ".e") {
			s += ".0"
		}
		buf.WriteString(s)
	default:
		data, err := json.Marshal(x)
		if err != nil {
			return fmt.Errorf("%w: %T", ErrUnsupportedValue, x)
		}
		buf.Write(data)
	}
	return nil
}

func writeJSONString(buf *bytes.Buffer, s string) error {
	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return err
	}
	// Encode appends a newline.
	buf.Truncate(buf.Len() - 1)
	return nil
}
