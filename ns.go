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
	"sort"

	"golang.org/x/exp/maps"
)

// The extracted trees are keyed by namespace prefix, not by namespace URI.
// Writers almost always use the conventional prefixes listed here, so the
// table can be used to find the bucket of a namespace in a grouped tree.
var defaultPrefix = map[string]string{
	xmlNamespace:                                       "xml",
	RDFNamespace:                                       "rdf",
	"adobe:ns:meta/":                                   "x",
	"http://ns.adobe.com/xap/1.0/":                     "xmp",
	"http://ns.adobe.com/xap/1.0/mm/":                  "xmpMM",     // XMP Media Management
	"http://ns.adobe.com/xap/1.0/rights/":              "xmpRights", // XMP Rights Management
	"http://ns.adobe.com/xap/1.0/sType/ResourceRef#":   "stRef",     // ResourceRef
	"http://ns.adobe.com/xap/1.0/sType/ResourceEvent#": "stEvt",
	"http://ns.adobe.com/xmp/Identifier/qual/1.0/":     "xmpidq",
	"http://ns.adobe.com/xmp/note/":                    "xmpNote",
	"http://purl.org/dc/elements/1.1/":                 "dc", // Dublin Core
	"http://ns.adobe.com/exif/1.0/":                    "exif",
	"http://ns.adobe.com/exif/1.0/aux/":                "aux",
	"http://ns.adobe.com/tiff/1.0/":                    "tiff",
	"http://ns.adobe.com/photoshop/1.0/":               "photoshop",
	"http://ns.adobe.com/camera-raw-settings/1.0/":     "crs",
}

var prefixToNamespace = func() map[string]string {
	m := make(map[string]string, len(defaultPrefix))
	for ns, prefix := range defaultPrefix {
		m[prefix] = ns
	}
	return m
}()

// DefaultPrefix returns the conventional prefix for a namespace URI.
// The second return value is false for unknown namespaces.
func DefaultPrefix(ns string) (string, bool) {
	prefix, ok := defaultPrefix[ns]
	return prefix, ok
}

// NamespaceURI returns the namespace URI conventionally bound to prefix.
func NamespaceURI(prefix string) (string, bool) {
	ns, ok := prefixToNamespace[prefix]
	return ns, ok
}

// KnownPrefixes returns the prefixes of all well-known namespaces, sorted.
func KnownPrefixes() []string {
	prefixes := maps.Keys(prefixToNamespace)
	sort.Strings(prefixes)
	return prefixes
}

const (
	// xmlNamespace is the namespace for XML.
	xmlNamespace = "http://www.w3.org/XML/1998/namespace"

	// RDFNamespace is the namespace for RDF.
	RDFNamespace = "http://www.w3.org/1999/02/22-rdf-syntax-ns#"
)
