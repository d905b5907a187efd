// Package jsonutil decodes JSON branding documents into an ordered tree.
// encoding/json decodes objects into Go maps and loses key order, so the
// tokenizer here is gjson, which iterates object members in source order.
package jsonutil

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"unicode/utf8"

	"github.com/tidwall/gjson"

	"github.com/alnah/go-brandkit/internal/tree"
)

// MaxInputSize limits JSON input to prevent memory exhaustion (default 1MB).
var MaxInputSize = 1 << 20

var (
	ErrNilData       = errors.New("jsonutil: nil or empty data")
	ErrInputTooLarge = errors.New("jsonutil: input exceeds maximum size")
	ErrInvalidJSON   = errors.New("jsonutil: invalid JSON")
	ErrNotObject     = errors.New("jsonutil: top-level value is not an object")
)

// UnmarshalOrdered decodes a JSON object, keeping member order.
// Integers that fit in int64 decode as int64, other numbers as float64.
// Duplicate members keep their first position and last value. Numbers
// outside the float64 range and invalid UTF-8 are rejected.
func UnmarshalOrdered(data []byte) (tree.Mapping, error) {
	if len(data) == 0 {
		return nil, ErrNilData
	}
	if len(data) > MaxInputSize {
		return nil, fmt.Errorf("%w: %d bytes (max %d)", ErrInputTooLarge, len(data), MaxInputSize)
	}
	if !gjson.ValidBytes(data) {
		return nil, ErrInvalidJSON
	}
	if !utf8.Valid(data) {
		return nil, fmt.Errorf("%w: invalid UTF-8", ErrInvalidJSON)
	}

	root := gjson.ParseBytes(data)
	if !root.IsObject() {
		return nil, fmt.Errorf("%w (got %s)", ErrNotObject, root.Type)
	}
	return object(root)
}

func object(r gjson.Result) (tree.Mapping, error) {
	m := tree.Mapping{}
	index := make(map[string]int)
	var err error
	r.ForEach(func(key, value gjson.Result) bool {
		var v any
		if v, err = convert(value); err != nil {
			err = fmt.Errorf("%s: %w", key.Str, err)
			return false
		}
		if i, dup := index[key.Str]; dup {
			m[i].Value = v
			return true
		}
		index[key.Str] = len(m)
		m = append(m, tree.Entry{Key: key.Str, Value: v})
		return true
	})
	if err != nil {
		return nil, err
	}
	return m, nil
}

func convert(r gjson.Result) (any, error) {
	switch {
	case r.IsObject():
		return object(r)
	case r.IsArray():
		elems := r.Array()
		out := make([]any, len(elems))
		for i, elem := range elems {
			v, err := convert(elem)
			if err != nil {
				return nil, fmt.Errorf("[%d]: %w", i, err)
			}
			out[i] = v
		}
		return out, nil
	}

	switch r.Type {
	case gjson.String:
		return r.Str, nil
	case gjson.Number:
		if i, err := strconv.ParseInt(r.Raw, 10, 64); err == nil {
			return i, nil
		}
		if math.IsInf(r.Num, 0) || math.IsNaN(r.Num) {
			return nil, fmt.Errorf("%w: number %s out of range", ErrInvalidJSON, r.Raw)
		}
		return r.Num, nil
	case gjson.True:
		return true, nil
	case gjson.False:
		return false, nil
	default:
		return nil, nil
	}
}
