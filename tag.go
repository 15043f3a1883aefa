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
	"strings"
	"unicode/utf8"
)

// Tag is a namespaced element found in an XMP document.
//
// A Tag either has child elements, or its Value is derived from InnerText.
// Never both.
type Tag struct {
	Namespace string
	Name      string
	Attrs     []Attribute
	Children  []*Tag

	// InnerText is the raw text between the start and end tag.  It is empty
	// for self-closing elements.
	InnerText string

	// Value is the normalized InnerText for elements without children, and
	// nil otherwise.
	Value Value
}

// NewTag builds a tag from the pieces of a matched element.  The attribute
// list and the inner text are searched for attributes and child elements.
func NewTag(ns, name, attrText, innerText string) *Tag {
	t := &Tag{
		Namespace: ns,
		Name:      name,
		Attrs:     FindAttributes(attrText),
		Children:  FindTags(innerText, "", ""),
		InnerText: innerText,
	}
	if len(t.Children) == 0 {
		t.Value = Normalize(innerText)
	}
	return t
}

// FindTags returns the top-level namespaced elements in s, in document
// order.  If ns or name are non-empty, only elements with the given prefix
// and local name are returned.
//
// An element ends at the first matching end tag after its start tag.  This
// is not a conforming XML parser: elements which contain nested elements
// of the same name are cut short, and malformed input is matched as far as
// possible instead of being rejected.
func FindTags(s, ns, name string) []*Tag {
	var res []*Tag
	pos := 0
	for pos < len(s) {
		i := strings.IndexByte(s[pos:], '<')
		if i < 0 {
			break
		}
		start := pos + i
		m, ok := matchElement(s, start)
		if !ok || ns != "" && m.ns != ns || name != "" && m.name != name {
			pos = start + 1
			continue
		}
		res = append(res, NewTag(m.ns, m.name, m.attrText, m.inner))
		pos = m.end
	}
	return res
}

type elementMatch struct {
	ns, name string
	attrText string
	inner    string
	end      int
}

// matchElement tries to match an element starting at s[start], which must
// be '<'.
func matchElement(s string, start int) (*elementMatch, bool) {
	p := start + 1

	nsEnd := scanName(s, p, false)
	if nsEnd == p || nsEnd >= len(s) || s[nsEnd] != ':' {
		return nil, false
	}
	m := &elementMatch{ns: s[p:nsEnd]}
	p = nsEnd + 1

	nameEnd := scanName(s, p, false)
	if nameEnd == p {
		return nil, false
	}
	m.name = s[p:nameEnd]
	p = nameEnd

	attrStart := p
	for {
		next, ok := scanAttr(s, p)
		if !ok {
			break
		}
		p = next
	}
	p = skipSpace(s, p)
	m.attrText = s[attrStart:p]

	switch {
	case strings.HasPrefix(s[p:], "/>"):
		m.end = p + 2
		return m, true
	case p < len(s) && s[p] == '>':
		p++
		endTag := "</" + m.ns + ":" + m.name + ">"
		k := strings.Index(s[p:], endTag)
		if k < 0 {
			return nil, false
		}
		m.inner = s[p : p+k]
		m.end = p + k + len(endTag)
		return m, true
	}
	return nil, false
}

// scanAttr matches white space followed by name="value" or name='value'
// at s[p:].  Attribute names here may contain colons.  On success, the
// position after the closing quote is returned.
func scanAttr(s string, p int) (int, bool) {
	q := skipSpace(s, p)
	if q == p {
		return p, false
	}
	nameEnd := scanName(s, q, true)
	if nameEnd == q || nameEnd >= len(s) || s[nameEnd] != '=' {
		return p, false
	}
	q = nameEnd + 1
	if q >= len(s) || s[q] != '"' && s[q] != '\'' {
		return p, false
	}
	k := strings.IndexByte(s[q+1:], s[q])
	if k < 0 {
		return p, false
	}
	return q + 1 + k + 1, true
}

// scanName returns the end of the run of name characters starting at s[p].
func scanName(s string, p int, allowColon bool) int {
	for p < len(s) {
		c := s[p]
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
		case c == '_' || c == '-':
		case c == ':' && allowColon:
		default:
			return p
		}
		p++
	}
	return p
}

func skipSpace(s string, p int) int {
	for p < len(s) {
		r, size := utf8.DecodeRuneInString(s[p:])
		if !isSpace(r) {
			break
		}
		p += size
	}
	return p
}

// Properties returns the attributes followed by the child elements of t.
func (t *Tag) Properties() []Property {
	res := make([]Property, 0, len(t.Attrs)+len(t.Children))
	for _, a := range t.Attrs {
		res = append(res, a)
	}
	for _, c := range t.Children {
		res = append(res, c)
	}
	return res
}

// IsPrimitive reports whether t is a simple property with a scalar value
// and neither attributes nor children.
func (t *Tag) IsPrimitive() bool {
	return t.Value != nil && len(t.Attrs) == 0 && len(t.Children) == 0
}

// IsList reports whether t is an RDF container (rdf:Seq, rdf:Bag or
// rdf:Alt).
func (t *Tag) IsList() bool {
	if t.Namespace != "rdf" {
		return false
	}
	switch t.Name {
	case "Seq", "Bag", "Alt":
		return true
	}
	return false
}

// IsListContainer reports whether the only child of t is an RDF container.
func (t *Tag) IsListContainer() bool {
	return len(t.Children) == 1 && t.Children[0].IsList()
}

// Prefix implements the [Property] interface.
func (t *Tag) Prefix() string {
	return t.Namespace
}

// LocalName implements the [Property] interface.
func (t *Tag) LocalName() string {
	return t.Name
}
