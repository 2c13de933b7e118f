// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package botapi

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"go.astrophena.name/botapi/record"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Format selects the shape of a resolved response.
type Format int

const (
	// FormatObject decodes the result into the endpoint's typed value.
	FormatObject Format = iota
	// FormatJSON parses the response into generic Go values (maps, slices,
	// strings, float64 and bool).
	FormatJSON
	// FormatRaw returns the untouched response text.
	FormatRaw
)

func (f Format) String() string {
	switch f {
	case FormatObject:
		return "object"
	case FormatJSON:
		return "json"
	case FormatRaw:
		return "raw"
	}
	return fmt.Sprintf("Format(%d)", int(f))
}

// ParseFormat parses the name of a format, as returned by Format.String.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "object", "":
		return FormatObject, nil
	case "json":
		return FormatJSON, nil
	case "raw":
		return FormatRaw, nil
	}
	return 0, fmt.Errorf("botapi: unknown format %q (want object, json or raw)", s)
}

// Set implements [flag.Value].
func (f *Format) Set(s string) error {
	v, err := ParseFormat(s)
	if err != nil {
		return err
	}
	*f = v
	return nil
}

// A Decoder converts the result of a response into a typed value.
type Decoder[T any] func(result jsoniter.Any) (T, error)

// APIError is an error reported by the Bot API. It is never returned by
// endpoint methods; use [Client.LastError] to retrieve it.
type APIError struct {
	// StatusCode is the HTTP status, or ErrorCode if the HTTP status was 200.
	StatusCode int
	// ErrorCode is the error_code field of the response.
	ErrorCode   int
	Description string
	// RetryAfter is the number of seconds to wait before repeating a request
	// that exceeded flood control.
	RetryAfter int
	// MigrateToChatID is the new identifier of a group that was migrated to a
	// supergroup.
	MigrateToChatID int64
}

func (e *APIError) Error() string {
	if e.Description == "" {
		return fmt.Sprintf("telegram: error %d", e.ErrorCode)
	}
	return fmt.Sprintf("telegram: %s (%d)", e.Description, e.ErrorCode)
}

// DecodeError is returned when a response can't be decoded into the
// requested format.
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string { return "botapi: decoding response: " + e.Err.Error() }

func (e *DecodeError) Unwrap() error { return e.Err }

// Result is the response of an endpoint whose typed result is T.
type Result[T any] struct {
	raw []byte
	ok  bool
	dec Decoder[T]
}

// NewResult returns a Result for a response body. ok reports whether the
// request succeeded.
func NewResult[T any](raw []byte, ok bool, dec Decoder[T]) *Result[T] {
	return &Result[T]{raw: raw, ok: ok, dec: dec}
}

// OK reports whether the API accepted the request.
func (r *Result[T]) OK() bool { return r.ok }

// True reports whether the outcome of the response is exactly true, as
// returned by action endpoints. See [IsTrue].
func (r *Result[T]) True() bool { return IsTrue(r.raw) }

// Raw returns the response body.
func (r *Result[T]) Raw() string { return string(r.raw) }

// JSON returns the response parsed into generic Go values.
func (r *Result[T]) JSON() (any, error) { return parseJSON(r.raw) }

// Object returns the typed result. It returns the zero T and no error if the
// API rejected the request.
func (r *Result[T]) Object() (T, error) { return decode(r.raw, r.dec) }

// As returns the response in format f.
func (r *Result[T]) As(f Format) (any, error) { return Resolve(r.raw, f, r.dec) }

// Resolve shapes a response body according to f: the body itself for
// FormatRaw, generic Go values for FormatJSON and the value produced by dec
// for FormatObject.
func Resolve[T any](raw []byte, f Format, dec Decoder[T]) (any, error) {
	switch f {
	case FormatRaw:
		return string(raw), nil
	case FormatJSON:
		return parseJSON(raw)
	case FormatObject:
		return decode(raw, dec)
	}
	return nil, fmt.Errorf("botapi: unknown format %v", f)
}

func parseJSON(raw []byte) (any, error) {
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil, &DecodeError{Err: err}
	}
	return v, nil
}

// decode passes the result member of an envelope, or the whole body if it
// isn't an envelope, to dec.
func decode[T any](raw []byte, dec Decoder[T]) (T, error) {
	var zero T
	if !json.Valid(raw) {
		return zero, &DecodeError{Err: errors.New("invalid JSON")}
	}
	v := json.Get(raw)
	if envelope(v) {
		if !v.Get("ok").ToBool() {
			return zero, nil
		}
		v = v.Get("result")
	}
	return dec(v)
}

func envelope(v jsoniter.Any) bool {
	return v.ValueType() == jsoniter.ObjectValue && v.Get("ok").ValueType() == jsoniter.BoolValue
}

// IsTrue reports whether the outcome of a response is exactly true. The
// outcome is the result member of an envelope, or the whole body otherwise.
func IsTrue(raw []byte) bool {
	if bytes.Equal(raw, []byte("true")) {
		return true
	}
	if !json.Valid(raw) {
		return false
	}
	v := json.Get(raw)
	if !envelope(v) || !v.Get("ok").ToBool() {
		return false
	}
	res := v.Get("result")
	return res.ValueType() == jsoniter.BoolValue && res.ToBool()
}

// ObjectDecoder returns a Decoder that builds a record with from.
func ObjectDecoder[T any](from func(*record.Object) *T) Decoder[*T] {
	return func(v jsoniter.Any) (*T, error) {
		o := record.Wrap(v)
		if o == nil {
			return nil, &DecodeError{Err: fmt.Errorf("want object, got %s", valueType(v))}
		}
		out := from(o)
		if err := o.Err(); err != nil {
			return out, &DecodeError{Err: err}
		}
		return out, nil
	}
}

// ListDecoder returns a Decoder that builds a record with from for every
// element of an array.
func ListDecoder[T any](from func(*record.Object) *T) Decoder[[]*T] {
	return func(v jsoniter.Any) ([]*T, error) {
		if v.ValueType() != jsoniter.ArrayValue {
			return nil, &DecodeError{Err: fmt.Errorf("want array, got %s", valueType(v))}
		}
		out := make([]*T, 0, v.Size())
		var errs []error
		for i := range v.Size() {
			o := record.Wrap(v.Get(i))
			if o == nil {
				errs = append(errs, fmt.Errorf("element %d: want object, got %s", i, valueType(v.Get(i))))
				continue
			}
			out = append(out, from(o))
			if err := o.Err(); err != nil {
				errs = append(errs, fmt.Errorf("element %d: %w", i, err))
			}
		}
		if len(errs) > 0 {
			return out, &DecodeError{Err: errors.Join(errs...)}
		}
		return out, nil
	}
}

// BoolDecoder decodes a boolean result.
func BoolDecoder(v jsoniter.Any) (bool, error) {
	if v.ValueType() != jsoniter.BoolValue {
		return false, &DecodeError{Err: fmt.Errorf("want boolean, got %s", valueType(v))}
	}
	return v.ToBool(), nil
}

// IntDecoder decodes a numeric result.
func IntDecoder(v jsoniter.Any) (int, error) {
	if v.ValueType() != jsoniter.NumberValue {
		return -1, &DecodeError{Err: fmt.Errorf("want number, got %s", valueType(v))}
	}
	return v.ToInt(), nil
}

// StringDecoder decodes a string result.
func StringDecoder(v jsoniter.Any) (string, error) {
	if v.ValueType() != jsoniter.StringValue {
		return "", &DecodeError{Err: fmt.Errorf("want string, got %s", valueType(v))}
	}
	return v.ToString(), nil
}

func valueType(v jsoniter.Any) string {
	switch v.ValueType() {
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
	return "nothing"
}
