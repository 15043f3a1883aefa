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

package jpeg

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"seehuhn.de/go/xmptree"
)

const (
	guid      = "5A1BC0DE5A1BC0DE5A1BC0DE5A1BC0DE"
	otherGUID = "FFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFF"
)

func segment(marker byte, data string) []byte {
	n := len(data) + 2
	return append([]byte{0xFF, marker, byte(n >> 8), byte(n)}, data...)
}

func mainXMP(packet string) []byte {
	return segment(markerAPP1, xmptree.MainHeader+"\x00"+packet)
}

func extendedXMP(id, payload string) []byte {
	return segment(markerAPP1, xmptree.ExtendedHeader+"\x00"+id+"\x00\x00\x01\x00\x00\x00\x00\x00"+payload)
}

func jpegFile(segs ...[]byte) []byte {
	res := []byte{0xFF, 0xD8}
	for _, s := range segs {
		res = append(res, s...)
	}
	res = append(res, segment(markerSOS, "\x01\x01\x00\x00\x3F\x00")...)
	res = append(res, 0x12, 0x34, 0xFF, 0xD9)
	return res
}

func TestSegments(t *testing.T) {
	main := `<rdf:Description xmpNote:HasExtendedXMP="` + guid + `" dc:format="image/jpeg"/>`
	data := jpegFile(
		segment(0xE0, "JFIF\x00\x01\x01\x00\x00\x01\x00\x01\x00\x00"),
		segment(markerAPP1, "Exif\x00\x00II*\x00"),
		mainXMP(main),
		extendedXMP(otherGUID, "<rdf:Description><dc:source>wrong</dc:source></rdf:Description>"),
		extendedXMP(guid, "<rdf:Description><photoshop:History>"),
		segment(0xDB, strings.Repeat("\x01", 65)),
		extendedXMP(guid, "edited</photoshop:History></rdf:Description>"),
	)

	segs, err := Segments(bytes.NewReader(data), nil)
	if err != nil {
		t.Fatal(err)
	}
	want := []xmptree.Segment{
		{Payload: main},
		{Extended: true, Payload: "<rdf:Description><photoshop:History>"},
		{Extended: true, Payload: "edited</photoshop:History></rdf:Description>"},
	}
	if d := cmp.Diff(want, segs); d != "" {
		t.Errorf("unexpected segments (-want +got):\n%s", d)
	}
}

func TestSegmentsWithoutGUID(t *testing.T) {
	data := jpegFile(
		mainXMP(`<rdf:Description dc:format="image/jpeg"/>`),
		extendedXMP(guid, "a"),
		extendedXMP(otherGUID, "b"),
	)
	segs, err := Segments(bytes.NewReader(data), nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(segs) != 3 {
		t.Fatalf("got %d segments, want 3", len(segs))
	}
	if got := xmptree.Assemble(segs); got != `<rdf:Description dc:format="image/jpeg"/>`+"\nab" {
		t.Errorf("unexpected document %q", got)
	}
}

func TestRead(t *testing.T) {
	data := jpegFile(
		mainXMP(`<x:xmpmeta><rdf:RDF><rdf:Description xmpNote:HasExtendedXMP="` + guid + `" dc:format="image/jpeg"/></rdf:RDF></x:xmpmeta>`),
		extendedXMP(guid, `<x:xmpmeta><rdf:RDF><rdf:Description><photoshop:History>`),
		extendedXMP(guid, `edited</photoshop:History></rdf:Description></rdf:RDF></x:xmpmeta>`),
	)

	got, err := Read(bytes.NewReader(data), &xmptree.Options{GroupByNamespace: true})
	if err != nil {
		t.Fatal(err)
	}

	want := xmptree.NewObject()
	note := xmptree.NewObject()
	note.Set("HasExtendedXMP", xmptree.String(guid))
	want.Set("xmpNote", note)
	dc := xmptree.NewObject()
	dc.Set("format", xmptree.String("image/jpeg"))
	want.Set("dc", dc)
	ps := xmptree.NewObject()
	ps.Set("History", xmptree.String("edited"))
	want.Set("photoshop", ps)

	if d := cmp.Diff(xmptree.Value(want), got); d != "" {
		t.Errorf("unexpected result (-want +got):\n%s", d)
	}
}

func TestNoXMP(t *testing.T) {
	data := jpegFile(segment(0xE0, "JFIF\x00\x01\x01\x00\x00\x01\x00\x01\x00\x00"))

	segs, err := Segments(bytes.NewReader(data), nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(segs) != 0 {
		t.Errorf("unexpected segments: %v", segs)
	}

	v, err := Read(bytes.NewReader(data), nil)
	if err != nil || v != nil {
		t.Errorf("Read() = %v, %v", v, err)
	}
}

func TestErrors(t *testing.T) {
	_, err := Segments(strings.NewReader("GIF89a"), nil)
	if !errors.Is(err, ErrNotJPEG) {
		t.Errorf("GIF file: unexpected error %v", err)
	}

	_, err = Segments(bytes.NewReader(nil), nil)
	if !errors.Is(err, ErrNotJPEG) {
		t.Errorf("empty file: unexpected error %v", err)
	}

	truncated := []byte{0xFF, 0xD8, 0xFF, 0xE1, 0x01, 0x00, 'h', 't', 't', 'p'}
	_, err = Segments(bytes.NewReader(truncated), nil)
	if !errors.Is(err, ErrTruncated) {
		t.Errorf("truncated file: unexpected error %v", err)
	}
}

func TestEndOfFile(t *testing.T) {
	// a file which ends without start-of-scan marker
	data := append([]byte{0xFF, 0xD8}, mainXMP(`<dc:format>image/jpeg</dc:format>`)...)
	segs, err := Segments(bytes.NewReader(data), nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(segs) != 1 {
		t.Errorf("got %d segments, want 1", len(segs))
	}
}
