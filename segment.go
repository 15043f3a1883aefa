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
	"strings"
)

// Segment is one piece of an XMP packet stored in an image container.
//
// A packet consists of a main segment, optionally followed by extended
// segments which carry the part of the packet which did not fit into the
// main segment.
type Segment struct {
	Extended bool
	Payload  string
}

// Assemble joins the payloads of an XMP packet into a single document.
//
// The first segment is the main segment, the remaining segments are
// extended segments in the order they were found in the container.  The
// main payload is separated from the extended payloads by a newline; the
// extended payloads are concatenated without separator.
func Assemble(segs []Segment) string {
	if len(segs) == 0 {
		return ""
	}
	b := &strings.Builder{}
	b.WriteString(segs[0].Payload)
	b.WriteByte('\n')
	for _, seg := range segs[1:] {
		b.WriteString(seg.Payload)
	}
	return b.String()
}

// SegmentKind describes the type of an APP1 segment.
type SegmentKind int

// These are the possible results of [Classify].
const (
	NotXMP SegmentKind = iota
	MainSegment
	ExtendedSegment
)

func (k SegmentKind) String() string {
	switch k {
	case MainSegment:
		return "main"
	case ExtendedSegment:
		return "extended"
	default:
		return "none"
	}
}

const (
	// CoreHeader is the prefix shared by the headers of all XMP segments.
	CoreHeader = "http://ns.adobe.com/"

	// MainHeader identifies the main XMP segment.  It is followed by a
	// zero byte.
	MainHeader = "http://ns.adobe.com/xap/1.0/"

	// ExtendedHeader identifies an extended XMP segment.  It is followed by
	// a zero byte, the 32 character GUID of the packet, the total length of
	// the extended data and the offset of the segment payload within the
	// extended data.
	ExtendedHeader = "http://ns.adobe.com/xmp/extension/"

	// markerHeaderLength is the length of the segment marker and length.
	markerHeaderLength = 2 + 2

	// MainDataOffset is the offset of the payload in a main segment,
	// counted from the start of the segment marker.
	MainDataOffset = markerHeaderLength + len(MainHeader) + 1

	// ExtendedDataOffset is the offset of the payload in an extended
	// segment, counted from the start of the segment marker.
	ExtendedDataOffset = markerHeaderLength + len(ExtendedHeader) + 1 + 32 + 4 + 4
)

// Classify determines whether chunk is an XMP segment and where its payload
// starts.  The chunk must begin with the segment marker (0xFF 0xE1),
// followed by the two length bytes and the segment header.
func Classify(chunk []byte) (SegmentKind, int) {
	if len(chunk) < markerHeaderLength || chunk[1] != 0xE1 {
		return NotXMP, 0
	}
	header := chunk[markerHeaderLength:]
	if !bytes.HasPrefix(header, []byte(CoreHeader)) {
		return NotXMP, 0
	}
	switch {
	case hasHeader(header, ExtendedHeader):
		return ExtendedSegment, ExtendedDataOffset
	case hasHeader(header, MainHeader):
		return MainSegment, MainDataOffset
	}
	return NotXMP, 0
}

// hasHeader checks for name followed by a zero byte.
func hasHeader(b []byte, name string) bool {
	return len(b) > len(name) && string(b[:len(name)]) == name && b[len(name)] == 0
}
