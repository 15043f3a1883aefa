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

// Package dc gives typed access to the Dublin Core properties in an
// extracted XMP tree.
package dc

import (
	"strings"

	"golang.org/x/text/language"

	"seehuhn.de/go/xmptree"
)

// Namespace is the Dublin Core namespace URI.
const Namespace = "http://purl.org/dc/elements/1.1/"

// DublinCore represents the properties in the Dublin Core namespace.
//
// See section 8.3 of ISO 16684-1:2011.
type DublinCore struct {
	// Contributor is a list of contributors to the resource.
	// This should not include names listed in the Creator field.
	Contributor []string

	// Coverage is the extent or scope of the resource.
	Coverage string

	// Creator is a list of the creators of the resource.  Entities should be
	// listed in order of decreasing precedence, if such order is significant.
	Creator []string

	// Date is a point or period of time associated with an event in the life
	// cycle of the resource.  The values are kept as written in the packet.
	Date []string

	// Description is a textual description of the content of the resource.
	Description Localized

	// Format is the media type of the resource.
	Format string

	// Identifier is an unambiguous reference for the resource.
	Identifier string

	// Language is a list of languages used in the content of the resource.
	// Invalid language tags are omitted.
	Language []language.Tag

	// Publisher is a list of publishers of the resource.
	Publisher []string

	// Relation is a list of related resources.
	Relation []string

	// Rights is an informal rights statement for the resource.
	Rights Localized

	// Source is a reference to a resource from which the present resource is
	// derived, either in whole or in part.
	Source string

	// Subject is a list of descriptive phrases or keywords that specify the
	// content of the resource.
	Subject []string

	// Title is the title or name of the resource.
	Title Localized

	// Type is the nature or genre of the resource.
	Type []string
}

// FromTree reads the Dublin Core properties from a tree which was extracted
// with [xmptree.Options.GroupByNamespace] set.  The result is nil if the
// tree has no Dublin Core properties.
func FromTree(root xmptree.Value) *DublinCore {
	obj, _ := root.(*xmptree.Object)
	prefix, _ := xmptree.DefaultPrefix(Namespace)
	bucket, _ := obj.Get(prefix).(*xmptree.Object)
	if bucket == nil {
		return nil
	}
	return FromObject(bucket)
}

// FromObject reads the Dublin Core properties from an object which maps
// local property names to values.  This can be the namespace bucket of a
// grouped tree, or the result of a flat extraction.
func FromObject(props *xmptree.Object) *DublinCore {
	dc := &DublinCore{
		Contributor: xmptree.Strings(props.Get("contributor")),
		Coverage:    text(props.Get("coverage")),
		Creator:     xmptree.Strings(props.Get("creator")),
		Date:        xmptree.Strings(props.Get("date")),
		Description: localized(props.Get("description")),
		Format:      text(props.Get("format")),
		Identifier:  text(props.Get("identifier")),
		Publisher:   xmptree.Strings(props.Get("publisher")),
		Relation:    xmptree.Strings(props.Get("relation")),
		Rights:      localized(props.Get("rights")),
		Source:      text(props.Get("source")),
		Subject:     xmptree.Strings(props.Get("subject")),
		Title:       localized(props.Get("title")),
		Type:        xmptree.Strings(props.Get("type")),
	}
	for _, s := range xmptree.Strings(props.Get("language")) {
		tag, err := language.Parse(s)
		if err != nil {
			continue
		}
		dc.Language = append(dc.Language, tag)
	}
	return dc
}

func text(v xmptree.Value) string {
	if ss := xmptree.Strings(v); len(ss) > 0 {
		return ss[0]
	}
	return ""
}

func localized(v xmptree.Value) Localized {
	var l Localized
	for _, item := range xmptree.Items(v) {
		s := text(item)
		if s == "" {
			continue
		}
		var lang string
		if obj, isObj := item.(*xmptree.Object); isObj {
			lang, _ = xmptree.Text(obj.Get("lang"))
		}
		if lang == "" || strings.EqualFold(lang, "x-default") {
			if l.Default == "" {
				l.Default = s
			}
			continue
		}
		tag, err := language.Parse(lang)
		if err != nil {
			continue
		}
		l.Set(tag, s)
	}
	return l
}
