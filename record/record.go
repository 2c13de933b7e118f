// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

// Package record provides typed, default-tolerant access to JSON objects
// returned by the Telegram Bot API.
//
// An [Object] wraps a lazily parsed JSON object. Its accessors never fail:
// an absent or null field yields the type's unset value, which is "" for
// strings, -1 for numbers, false for booleans and nil for nested objects and
// arrays. Every accessor is safe to call on a nil *Object, so absence
// propagates through nested lookups.
//
// A field that is present but holds a value of a different JSON type also
// yields the unset value; the mismatch is recorded and reported by
// [Object.Err].
package record

import (
	"errors"
	"fmt"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Unset values returned for absent fields.
const (
	UnsetInt   = -1
	UnsetFloat = -1.0
)

// Object is a read-only view of a JSON object.
type Object struct {
	v    jsoniter.Any
	errs *[]error
}

// FieldError reports a field whose JSON type doesn't match the requested one.
type FieldError struct {
	Key  string
	Want string
	Got  string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("field %q: want %s, got %s", e.Key, e.Want, e.Got)
}

// Parse parses data, which must hold a JSON object.
func Parse(data []byte) (*Object, error) {
	if !json.Valid(data) {
		return nil, errors.New("record: invalid JSON")
	}
	v := json.Get(data)
	if t := v.ValueType(); t != jsoniter.ObjectValue {
		return nil, fmt.Errorf("record: want object, got %s", typeName(t))
	}
	return &Object{v: v, errs: new([]error)}, nil
}

// MustParse is like Parse, but panics on error. It is intended for tests and
// static data.
func MustParse(data string) *Object {
	o, err := Parse([]byte(data))
	if err != nil {
		panic(err)
	}
	return o
}

// Wrap returns an Object for v, or nil if v doesn't hold a JSON object.
func Wrap(v jsoniter.Any) *Object {
	if v == nil || v.ValueType() != jsoniter.ObjectValue {
		return nil
	}
	return &Object{v: v, errs: new([]error)}
}

func (o *Object) child(v jsoniter.Any) *Object {
	return &Object{v: v, errs: o.errs}
}

// Err returns the type mismatches recorded while reading o and every object
// derived from it, or nil if there were none.
func (o *Object) Err() error {
	if o == nil || o.errs == nil {
		return nil
	}
	return errors.Join(*o.errs...)
}

func (o *Object) field(key string, want jsoniter.ValueType) (jsoniter.Any, bool) {
	if o == nil {
		return nil, false
	}
	v := o.v.Get(key)
	switch t := v.ValueType(); t {
	case jsoniter.InvalidValue, jsoniter.NilValue:
		return nil, false
	case want:
		return v, true
	default:
		*o.errs = append(*o.errs, &FieldError{Key: key, Want: typeName(want), Got: typeName(t)})
		return nil, false
	}
}

// Has reports whether key is present and not null.
func (o *Object) Has(key string) bool {
	if o == nil {
		return false
	}
	switch o.v.Get(key).ValueType() {
	case jsoniter.InvalidValue, jsoniter.NilValue:
		return false
	}
	return true
}

// Keys returns the keys of the object.
func (o *Object) Keys() []string {
	if o == nil {
		return nil
	}
	return o.v.Keys()
}

// Raw returns the JSON text of the object.
func (o *Object) Raw() string {
	if o == nil {
		return ""
	}
	return o.v.ToString()
}

// String returns the string field key, or "" if it is absent.
func (o *Object) String(key string) string { return o.StringOr(key, "") }

// StringOr returns the string field key, or def if it is absent.
func (o *Object) StringOr(key, def string) string {
	v, ok := o.field(key, jsoniter.StringValue)
	if !ok {
		return def
	}
	return v.ToString()
}

// Int returns the numeric field key as an int, or -1 if it is absent.
func (o *Object) Int(key string) int { return o.IntOr(key, UnsetInt) }

// IntOr returns the numeric field key as an int, or def if it is absent.
func (o *Object) IntOr(key string, def int) int {
	v, ok := o.field(key, jsoniter.NumberValue)
	if !ok {
		return def
	}
	return v.ToInt()
}

// Int64 returns the numeric field key as an int64, or -1 if it is absent.
func (o *Object) Int64(key string) int64 { return o.Int64Or(key, UnsetInt) }

// Int64Or returns the numeric field key as an int64, or def if it is absent.
func (o *Object) Int64Or(key string, def int64) int64 {
	v, ok := o.field(key, jsoniter.NumberValue)
	if !ok {
		return def
	}
	return v.ToInt64()
}

// Float64 returns the numeric field key as a float64, or -1 if it is absent.
func (o *Object) Float64(key string) float64 { return o.Float64Or(key, UnsetFloat) }

// Float64Or returns the numeric field key as a float64, or def if it is
// absent.
func (o *Object) Float64Or(key string, def float64) float64 {
	v, ok := o.field(key, jsoniter.NumberValue)
	if !ok {
		return def
	}
	return v.ToFloat64()
}

// Bool returns the boolean field key, or false if it is absent.
func (o *Object) Bool(key string) bool { return o.BoolOr(key, false) }

// BoolOr returns the boolean field key, or def if it is absent.
func (o *Object) BoolOr(key string, def bool) bool {
	v, ok := o.field(key, jsoniter.BoolValue)
	if !ok {
		return def
	}
	return v.ToBool()
}

// Object returns the nested object key, or nil if it is absent.
func (o *Object) Object(key string) *Object {
	v, ok := o.field(key, jsoniter.ObjectValue)
	if !ok {
		return nil
	}
	return o.child(v)
}

// Array returns the elements of the array field key that are objects, or nil
// if the field is absent.
func (o *Object) Array(key string) []*Object {
	v, ok := o.field(key, jsoniter.ArrayValue)
	if !ok {
		return nil
	}
	return o.objects(key, v)
}

// Arrays returns the array of arrays of objects stored under key, as used by
// keyboards and profile photos.
func (o *Object) Arrays(key string) [][]*Object {
	v, ok := o.field(key, jsoniter.ArrayValue)
	if !ok {
		return nil
	}
	out := make([][]*Object, 0, v.Size())
	for i := range v.Size() {
		row := v.Get(i)
		if row.ValueType() != jsoniter.ArrayValue {
			*o.errs = append(*o.errs, &FieldError{Key: fmt.Sprintf("%s[%d]", key, i), Want: "array", Got: typeName(row.ValueType())})
			continue
		}
		out = append(out, o.objects(fmt.Sprintf("%s[%d]", key, i), row))
	}
	return out
}

func (o *Object) objects(key string, v jsoniter.Any) []*Object {
	out := make([]*Object, 0, v.Size())
	for i := range v.Size() {
		el := v.Get(i)
		if el.ValueType() != jsoniter.ObjectValue {
			*o.errs = append(*o.errs, &FieldError{Key: fmt.Sprintf("%s[%d]", key, i), Want: "object", Got: typeName(el.ValueType())})
			continue
		}
		out = append(out, o.child(el))
	}
	return out
}

// Strings returns the array of strings stored under key, or nil if it is
// absent.
func (o *Object) Strings(key string) []string {
	v, ok := o.field(key, jsoniter.ArrayValue)
	if !ok {
		return nil
	}
	out := make([]string, 0, v.Size())
	for i := range v.Size() {
		el := v.Get(i)
		if el.ValueType() != jsoniter.StringValue {
			*o.errs = append(*o.errs, &FieldError{Key: fmt.Sprintf("%s[%d]", key, i), Want: "string", Got: typeName(el.ValueType())})
			continue
		}
		out = append(out, el.ToString())
	}
	return out
}

// Value returns the field key converted to a generic Go value (map, slice,
// string, float64, bool) or nil if it is absent.
func (o *Object) Value(key string) any {
	if !o.Has(key) {
		return nil
	}
	return o.v.Get(key).GetInterface()
}

func typeName(t jsoniter.ValueType) string {
	switch t {
	case jsoniter.StringValue:
		return "string"
	case jsoniter.NumberValue:
		return "number"
	case jsoniter.NilValue:
		return "null"
	case jsoniter.BoolValue:
		return "boolean"
	case jsoniter.ArrayValue:
		return "array"
	case jsoniter.ObjectValue:
		return "object"
	}
	return "invalid"
}
