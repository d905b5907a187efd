// Package tomlutil decodes TOML branding documents into an ordered tree.
// BurntSushi/toml decodes tables into Go maps; the original key order is
// recovered from the decoder metadata.
package tomlutil

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/alnah/go-brandkit/internal/tree"
)

// MaxInputSize limits TOML input to prevent memory exhaustion (default 1MB).
var MaxInputSize = 1 << 20

var (
	ErrNilData       = errors.New("tomlutil: nil or empty data")
	ErrInputTooLarge = errors.New("tomlutil: input exceeds maximum size")
)

// pathSep joins key paths; it cannot appear in a TOML key.
const pathSep = "\x00"

// UnmarshalOrdered decodes a TOML document, ordering each table's keys as
// they first appear in the source. Keys inside arrays of tables share the
// path of their array, so every element follows the same order.
func UnmarshalOrdered(data []byte) (tree.Mapping, error) {
	if len(data) == 0 {
		return nil, ErrNilData
	}
	if len(data) > MaxInputSize {
		return nil, fmt.Errorf("%w: %d bytes (max %d)", ErrInputTooLarge, len(data), MaxInputSize)
	}

	var raw map[string]any
	md, err := toml.Decode(string(data), &raw)
	if err != nil {
		return nil, fmt.Errorf("tomlutil: %w", err)
	}

	// Table headers like [a.b.c] only report the full key, so every
	// prefix inherits the position of its first descendant.
	order := make(map[string]int)
	for i, key := range md.Keys() {
		for n := 1; n <= len(key); n++ {
			p := strings.Join(key[:n], pathSep)
			if _, seen := order[p]; !seen {
				order[p] = i
			}
		}
	}
	return table(raw, "", order), nil
}

func table(t map[string]any, prefix string, order map[string]int) tree.Mapping {
	keys := make([]string, 0, len(t))
	for k := range t {
		keys = append(keys, k)
	}
	rank := func(k string) int {
		if i, ok := order[join(prefix, k)]; ok {
			return i
		}
		return len(order)
	}
	sort.SliceStable(keys, func(i, j int) bool {
		ri, rj := rank(keys[i]), rank(keys[j])
		if ri != rj {
			return ri < rj
		}
		return keys[i] < keys[j]
	})

	m := make(tree.Mapping, 0, len(keys))
	for _, k := range keys {
		m = append(m, tree.Entry{Key: k, Value: value(t[k], join(prefix, k), order)})
	}
	return m
}

func value(v any, path string, order map[string]int) any {
	switch x := v.(type) {
	case map[string]any:
		return table(x, path, order)
	case []map[string]any:
		out := make([]any, len(x))
		for i, elem := range x {
			out[i] = table(elem, path, order)
		}
		return out
	case []any:
		out := make([]any, len(x))
		for i, elem := range x {
			out[i] = value(elem, path, order)
		}
		return out
	default:
		return tree.Scalar(v)
	}
}

func join(prefix, key string) string {
	if prefix == "" {
		return key
	}
	return prefix + pathSep + key
}
