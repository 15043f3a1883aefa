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

import "regexp"

// Attribute is a namespaced attribute of an XMP element.
type Attribute struct {
	Namespace string // the namespace prefix, e.g. "xmp"
	Name      string // the local name, e.g. "Rating"
	Raw       string // the attribute value without the quotes
}

// attrPattern matches ns:name="value" and ns:name='value'.
var attrPattern = regexp.MustCompile(`([a-zA-Z0-9-]+):([a-zA-Z0-9-]+)=("[^"]*"|'[^']*')`)

// FindAttributes extracts all namespaced attributes from the attribute
// list of a start tag, in document order.  Attributes without a namespace
// prefix are skipped.
func FindAttributes(s string) []Attribute {
	matches := attrPattern.FindAllStringSubmatch(s, -1)
	if len(matches) == 0 {
		return nil
	}
	res := make([]Attribute, len(matches))
	for i, m := range matches {
		quoted := m[3]
		res[i] = Attribute{
			Namespace: m[1],
			Name:      m[2],
			Raw:       quoted[1 : len(quoted)-1],
		}
	}
	return res
}

// Value returns the normalized attribute value.
func (a Attribute) Value() Value {
	return Normalize(a.Raw)
}

// Prefix implements the [Property] interface.
func (a Attribute) Prefix() string {
	return a.Namespace
}

// LocalName implements the [Property] interface.
func (a Attribute) LocalName() string {
	return a.Name
}

// Serialize implements the [Property] interface.
func (a Attribute) Serialize() Value {
	return a.Value()
}
