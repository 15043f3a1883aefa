// seehuhn.de/go/xmptree - loose XMP metadata extraction in Go
// Copyright (C) 2024  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package xmptree

import (
	"bytes"
	"encoding/json"
	"strconv"
)

// Value is a node in an extracted metadata tree.
//
// The concrete types are [Number], [Bool], [String], [List] and [*Object].
// An absent value is represented by a nil Value.  Absent values are never
// stored inside a List or an Object.
type Value interface {
	isValue()
}

// Number is a numeric scalar.
type Number float64

// Bool is a boolean scalar.
type Bool bool

// String is a text scalar.
type String string

// List is an ordered sequence of values.
type List []Value

func (Number) isValue() {}
func (Bool) isValue() {}
func (String) isValue() {}
func (List) isValue() {}
func (*Object) isValue() {}

// Object maps names to values.  Keys keep the position of their first
// insertion; setting an existing key replaces the value in place.
type Object struct {
	keys []string
	vals map[string]Value
}

// NewObject returns an empty object.
func NewObject() *Object {
	return &Object{vals: make(map[string]Value)}
}

// Set stores v under the given key.  Setting a nil value is a no-op.
func (o *Object) Set(key string, v Value) {
	if v == nil {
		return
	}
	if o.vals == nil {
		o.vals = make(map[string]Value)
	}
	if _, seen := o.vals[key]; !seen {
		o.keys = append(o.keys, key)
	}
	o.vals[key] = v
}

// Get returns the value stored under key, or nil.
func (o *Object) Get(key string) Value {
	if o == nil {
		return nil
	}
	return o.vals[key]
}

// Keys returns the keys of o in insertion order.
func (o *Object) Keys() []string {
	if o == nil {
		return nil
	}
	return append([]string(nil), o.keys...)
}

// Len returns the number of entries in o.
func (o *Object) Len() int {
	if o == nil {
		return 0
	}
	return len(o.keys)
}

// Merge copies all entries of other into o.  Entries of other replace
// entries of o with the same key.
func (o *Object) Merge(other *Object) {
	for _, key := range other.Keys() {
		o.Set(key, other.vals[key])
	}
}

// Equal reports whether o and other contain the same entries in the same
// order.
func (o *Object) Equal(other *Object) bool {
	if o.Len() != other.Len() {
		return false
	}
	for i, key := range o.Keys() {
		if other.keys[i] != key {
			return false
		}
		if !Equal(o.vals[key], other.vals[key]) {
			return false
		}
	}
	return true
}

// MarshalJSON implements the [json.Marshaler] interface.
// Entries are written in insertion order.
func (o *Object) MarshalJSON() ([]byte, error) {
	buf := &bytes.Buffer{}
	buf.WriteByte('{')
	for i, key := range o.Keys() {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(key)
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		v, err := json.Marshal(o.vals[key])
		if err != nil {
			return nil, err
		}
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// Equal reports whether two value trees are identical.
func Equal(a, b Value) bool {
	switch a := a.(type) {
	case nil:
		return b == nil
	case Number:
		b, ok := b.(Number)
		return ok && a == b
	case Bool:
		b, ok := b.(Bool)
		return ok && a == b
	case String:
		b, ok := b.(String)
		return ok && a == b
	case List:
		b, ok := b.(List)
		if !ok || len(a) != len(b) {
			return false
		}
		for i := range a {
			if !Equal(a[i], b[i]) {
				return false
			}
		}
		return true
	case *Object:
		b, ok := b.(*Object)
		return ok && a.Equal(b)
	}
	return false
}

// Text returns the textual form of a scalar value.
// The second return value is false for lists, objects and absent values.
func Text(v Value) (string, bool) {
	switch v := v.(type) {
	case String:
		return string(v), true
	case Number:
		return strconv.FormatFloat(float64(v), 'f', -1, 64), true
	case Bool:
		return strconv.FormatBool(bool(v)), true
	}
	return "", false
}

// Strings returns the text of the scalar items of v.  Items which are
// objects contribute their "value" entry, which holds the text of items with
// qualifiers such as xml:lang.
func Strings(v Value) []string {
	var res []string
	for _, item := range Items(v) {
		if obj, ok := item.(*Object); ok {
			item = obj.Get(valueKey)
		}
		if s, ok := Text(item); ok {
			res = append(res, s)
		}
	}
	return res
}

// Items returns the elements of a list value.  A single non-list value is
// returned as a one-element slice, since single-item lists are unwrapped
// during extraction.
func Items(v Value) []Value {
	switch v := v.(type) {
	case nil:
		return nil
	case List:
		return v
	}
	return []Value{v}
}
