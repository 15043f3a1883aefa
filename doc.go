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

// Package xmptree extracts Extensible Metadata Platform (XMP) data into
// plain value trees.
//
// # Documents
//
// An XMP document is an RDF/XML fragment, usually embedded in an image
// file.  Use [Parse], [ParseBytes] or [Read] to convert a document into a
// tree of [Value]s.  Property values are converted to numbers, booleans
// and strings where possible (see [Normalize]), RDF containers become
// lists, and structured properties become objects.  Parsing never fails:
// text which cannot be interpreted is simply left out of the result.
//
// The document is not parsed by a conforming XML parser.  Instead,
// namespaced elements are located by a simple shortest-match scan (see
// [FindTags]), which also copes with the incomplete or malformed packets
// found in real image files.
//
// # Segments
//
// In JPEG files, an XMP packet is stored in an APP1 segment.  Packets which
// are larger than a single segment are split into a main segment and one
// or more extended segments.  Use [Classify] to recognise XMP segments and
// [Assemble] or [ParseSegments] to join the pieces.  The package
// seehuhn.de/go/xmptree/jpeg locates the segments in a JPEG file.
//
// # Output
//
// By default, all properties are stored in a single object, keyed by their
// local name.  With [Options.GroupByNamespace], properties are grouped by
// their namespace prefix instead:
//
//	{"dc": {"creator": "Jane"}, "xmp": {"Rating": 5}}
//
// Objects keep their keys in document order and can be converted to JSON
// using the encoding/json package.  Grouped trees can be read into Go
// structs using [Decode].
package xmptree
