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

// Property is an attribute or a child element of a [Tag].
type Property interface {
	// Prefix returns the namespace prefix of the property.
	Prefix() string

	// LocalName returns the name of the property without the prefix.
	LocalName() string

	// Serialize converts the property into a value tree.  The result is nil
	// if the property carries no data.
	Serialize() Value
}

// valueKey is the object key used for the text content of an element
// which also has attributes.
const valueKey = "value"

// Serialize converts t into a value tree.
//
// Simple elements give their scalar value.  RDF containers give a [List],
// or the single item if there is only one.  Elements whose only child is an
// RDF container give the value of the container.  All other elements give
// an [*Object] which maps the local names of attributes and child elements
// to their values.  If several properties share a local name, the last one
// wins.  The result is nil if the element carries no data.
func (t *Tag) Serialize() Value {
	if len(t.Attrs) == 0 && len(t.Children) == 0 && t.Value == nil {
		return nil
	}
	if t.IsPrimitive() {
		return t.Value
	}
	if t.IsListContainer() {
		return t.Children[0].Serialize()
	}
	if t.IsList() {
		var items List
		for _, c := range t.Children {
			if v := c.Serialize(); v != nil {
				items = append(items, v)
			}
		}
		switch len(items) {
		case 0:
			return nil
		case 1:
			return items[0]
		}
		return items
	}

	obj := NewObject()
	for _, prop := range t.Properties() {
		assign(obj, prop)
	}
	if t.Value != nil {
		obj.Set(valueKey, t.Value)
	}
	if obj.Len() == 0 {
		return nil
	}
	return obj
}

// assign stores the value of prop in obj under the local name of prop.
func assign(obj *Object, prop Property) {
	obj.Set(prop.LocalName(), prop.Serialize())
}
