// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

// Package starconv converts values between Go and Starlark.
//
// Only the values produced by decoding JSON into an any are supported: nil,
// bool, string, numbers, []any and map[string]any.
package starconv

import (
	"fmt"
	"math"
	"sort"

	"go.starlark.net/starlark"
)

// ToValue converts val to [starlark.Value].
func ToValue(val any) (starlark.Value, error) {
	switch v := val.(type) {
	case nil:
		return starlark.None, nil
	case bool:
		return starlark.Bool(v), nil
	case string:
		return starlark.String(v), nil
	case int:
		return starlark.MakeInt(v), nil
	case int64:
		return starlark.MakeInt64(v), nil
	case float64:
		if canBeInt(v) {
			return starlark.MakeInt64(int64(v)), nil
		}
		return starlark.Float(v), nil
	case []any:
		list := make([]starlark.Value, 0, len(v))
		for i, item := range v {
			conv, err := ToValue(item)
			if err != nil {
				return nil, fmt.Errorf("index %d: %w", i, err)
			}
			list = append(list, conv)
		}
		return starlark.NewList(list), nil
	case map[string]any:
		return mapToDict(v)
	default:
		return nil, fmt.Errorf("unsupported Go type: %T", val)
	}
}

// canBeInt reports if the float can be converted to int without losing
// precision.
func canBeInt(f float64) bool {
	if f < math.MinInt64 || f >= math.MaxInt64 {
		return false
	}
	return f == math.Trunc(f)
}

func mapToDict(m map[string]any) (starlark.Value, error) {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	// Dicts keep insertion order, so make it stable.
	sort.Strings(keys)

	dict := starlark.NewDict(len(m))
	for _, k := range keys {
		val, err := ToValue(m[k])
		if err != nil {
			return nil, fmt.Errorf("key %q: %w", k, err)
		}
		if err := dict.SetKey(starlark.String(k), val); err != nil {
			return nil, err
		}
	}
	return dict, nil
}

// FromValue converts v to a Go value that can be marshaled to JSON. Dict keys
// must be strings.
func FromValue(v starlark.Value) (any, error) {
	switch v := v.(type) {
	case starlark.NoneType:
		return nil, nil
	case starlark.Bool:
		return bool(v), nil
	case starlark.String:
		return string(v), nil
	case starlark.Int:
		if i, ok := v.Int64(); ok {
			return i, nil
		}
		return nil, fmt.Errorf("integer %s is too large", v)
	case starlark.Float:
		return float64(v), nil
	case *starlark.List:
		return fromIterable(v, v.Len())
	case starlark.Tuple:
		return fromIterable(v, v.Len())
	case *starlark.Dict:
		return FromDict(v)
	default:
		return nil, fmt.Errorf("unsupported Starlark type: %s", v.Type())
	}
}

// FromDict converts a dict with string keys to a map.
func FromDict(d *starlark.Dict) (map[string]any, error) {
	m := make(map[string]any, d.Len())
	for _, item := range d.Items() {
		k, ok := item[0].(starlark.String)
		if !ok {
			return nil, fmt.Errorf("dict key %s is not a string", item[0])
		}
		val, err := FromValue(item[1])
		if err != nil {
			return nil, fmt.Errorf("key %q: %w", string(k), err)
		}
		m[string(k)] = val
	}
	return m, nil
}

func fromIterable(it starlark.Iterable, n int) ([]any, error) {
	out := make([]any, 0, n)
	iter := it.Iterate()
	defer iter.Done()
	var x starlark.Value
	for i := 0; iter.Next(&x); i++ {
		val, err := FromValue(x)
		if err != nil {
			return nil, fmt.Errorf("index %d: %w", i, err)
		}
		out = append(out, val)
	}
	return out, nil
}
