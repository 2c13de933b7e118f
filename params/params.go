// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

// Package params implements the ordered parameter bag used to build Telegram
// Bot API requests.
//
// A [Bag] keeps parameters in the order they were first added. Adding a
// parameter that already exists replaces its value but keeps its position.
// Primitive values are stored in their textual form, everything else is
// serialized to JSON, which is what the Bot API expects for nested objects
// such as reply markup or entity lists.
package params

import (
	"fmt"
	"net/url"
	"reflect"
	"strconv"
	"strings"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Bag is an ordered collection of request parameters. A nil *Bag is valid and
// behaves as an empty one for reading.
type Bag struct {
	keys   []string
	values map[string]string
}

// New returns an empty Bag.
func New() *Bag {
	return &Bag{values: make(map[string]string)}
}

// Of returns a Bag holding the given key-value pairs. It panics if kv has an
// odd length or a key is not a string.
func Of(kv ...any) *Bag {
	if len(kv)%2 != 0 {
		panic("params.Of: odd number of arguments")
	}
	b := New()
	for i := 0; i < len(kv); i += 2 {
		name, ok := kv[i].(string)
		if !ok {
			panic(fmt.Sprintf("params.Of: key %v is not a string", kv[i]))
		}
		b.Add(name, kv[i+1])
	}
	return b
}

// Add stores value under name and returns the bag for chaining. Nil values,
// including nil pointers, slices and maps, are ignored. It panics if value
// can't be serialized to JSON.
func (b *Bag) Add(name string, value any) *Bag {
	if isNil(value) {
		return b
	}
	s, err := Encode(value)
	if err != nil {
		panic(fmt.Sprintf("params: encoding %q: %v", name, err))
	}
	if _, exists := b.values[name]; !exists {
		b.keys = append(b.keys, name)
	}
	b.values[name] = s
	return b
}

// AddIf stores value under name when cond is true.
func (b *Bag) AddIf(cond bool, name string, value any) *Bag {
	if cond {
		b.Add(name, value)
	}
	return b
}

// Get returns the encoded value stored under name.
func (b *Bag) Get(name string) (string, bool) {
	if b == nil {
		return "", false
	}
	v, ok := b.values[name]
	return v, ok
}

// Delete removes name from the bag.
func (b *Bag) Delete(name string) {
	if b == nil {
		return
	}
	if _, ok := b.values[name]; !ok {
		return
	}
	delete(b.values, name)
	for i, k := range b.keys {
		if k == name {
			b.keys = append(b.keys[:i], b.keys[i+1:]...)
			break
		}
	}
}

// Len returns the number of parameters in the bag.
func (b *Bag) Len() int {
	if b == nil {
		return 0
	}
	return len(b.keys)
}

// Keys returns parameter names in insertion order.
func (b *Bag) Keys() []string {
	if b == nil {
		return nil
	}
	keys := make([]string, len(b.keys))
	copy(keys, b.keys)
	return keys
}

// Clone returns a copy of the bag. Cloning a nil bag returns a new empty bag.
func (b *Bag) Clone() *Bag {
	c := New()
	if b == nil {
		return c
	}
	c.keys = append(c.keys, b.keys...)
	for k, v := range b.values {
		c.values[k] = v
	}
	return c
}

// Merge copies every parameter of other into b, overwriting existing values.
func (b *Bag) Merge(other *Bag) *Bag {
	if other == nil {
		return b
	}
	for _, k := range other.keys {
		if _, exists := b.values[k]; !exists {
			b.keys = append(b.keys, k)
		}
		b.values[k] = other.values[k]
	}
	return b
}

// Values returns the parameters as [url.Values].
func (b *Bag) Values() url.Values {
	v := make(url.Values, b.Len())
	if b == nil {
		return v
	}
	for _, k := range b.keys {
		v.Set(k, b.values[k])
	}
	return v
}

// QueryString renders the bag as a URL query string. An empty bag renders as
// an empty string, otherwise the result starts with "?" and lists parameters
// in insertion order.
func (b *Bag) QueryString() string {
	if b.Len() == 0 {
		return ""
	}
	var sb strings.Builder
	for i, k := range b.keys {
		if i == 0 {
			sb.WriteByte('?')
		} else {
			sb.WriteByte('&')
		}
		sb.WriteString(url.QueryEscape(k))
		sb.WriteByte('=')
		sb.WriteString(url.QueryEscape(b.values[k]))
	}
	return sb.String()
}

func isNil(value any) bool {
	if value == nil {
		return true
	}
	switch v := reflect.ValueOf(value); v.Kind() {
	case reflect.Pointer, reflect.Slice, reflect.Map, reflect.Interface:
		return v.IsNil()
	}
	return false
}

// String implements the fmt.Stringer interface.
func (b *Bag) String() string { return b.QueryString() }

// Encode returns the textual form of a parameter value. Strings, booleans
// and numbers, including named types built on them, are formatted directly;
// other values are serialized to JSON.
func Encode(value any) (string, error) {
	if s, ok := value.(fmt.Stringer); ok {
		return s.String(), nil
	}
	v := reflect.ValueOf(value)
	switch v.Kind() {
	case reflect.String:
		return v.String(), nil
	case reflect.Bool:
		return strconv.FormatBool(v.Bool()), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(v.Int(), 10), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return strconv.FormatUint(v.Uint(), 10), nil
	case reflect.Float32:
		return strconv.FormatFloat(v.Float(), 'f', -1, 32), nil
	case reflect.Float64:
		return strconv.FormatFloat(v.Float(), 'f', -1, 64), nil
	}
	b, err := json.Marshal(value)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
