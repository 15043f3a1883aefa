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

// Package jpeg locates the XMP segments in JPEG files.
package jpeg

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"

	"go.uber.org/zap"

	"seehuhn.de/go/xmptree"
)

var (
	// ErrNotJPEG is returned if the input does not start with a JPEG
	// start-of-image marker.
	ErrNotJPEG = errors.New("not a JPEG file")

	// ErrTruncated is returned if a segment extends past the end of the
	// input.
	ErrTruncated = errors.New("truncated JPEG segment")
)

const (
	markerAPP1 = 0xE1
	markerSOS  = 0xDA
	markerEOI  = 0xD9
)

// guidOffset is the position of the packet GUID in an extended segment,
// counted from the start of the segment marker.
const guidOffset = 4 + len(xmptree.ExtendedHeader) + 1

// extendedRef finds the GUID of the extended packet announced in the main
// packet, in attribute or element form.
var extendedRef = regexp.MustCompile(`HasExtendedXMP(?:=["']|>)\s*([0-9A-Fa-f]{32})`)

type extChunk struct {
	guid    string
	payload []byte
}

// Segments reads a JPEG stream up to the start of the image data and
// returns the XMP segments found.  The main segment comes first, followed
// by the extended segments in file order.  If the main segment names the
// GUID of its extension, extended segments with a different GUID are
// dropped.  If the file contains no main XMP segment, the result is empty.
//
// Only the logger and the text decoder of opt are used.
func Segments(r io.Reader, opt *xmptree.Options) ([]xmptree.Segment, error) {
	log := zap.NewNop()
	if opt != nil && opt.Logger != nil {
		log = opt.Logger
	}

	br := bufio.NewReader(r)
	soi := make([]byte, 2)
	if _, err := io.ReadFull(br, soi); err != nil || soi[0] != 0xFF || soi[1] != 0xD8 {
		return nil, ErrNotJPEG
	}

	var mainData []byte
	var ext []extChunk
segmentLoop:
	for {
		marker, err := readMarker(br)
		if err == io.EOF {
			break
		} else if err != nil {
			return nil, err
		}

		switch {
		case marker == markerSOS || marker == markerEOI:
			break segmentLoop
		case marker == 0x01 || marker >= 0xD0 && marker <= 0xD7:
			// TEM and RSTn carry no length field
			continue
		}

		var lenBuf [2]byte
		if _, err := io.ReadFull(br, lenBuf[:]); err != nil {
			return nil, fmt.Errorf("marker 0x%02X: %w", marker, ErrTruncated)
		}
		length := int(lenBuf[0])<<8 | int(lenBuf[1])
		if length < 2 {
			return nil, fmt.Errorf("marker 0x%02X: invalid segment length %d", marker, length)
		}
		if marker != markerAPP1 {
			if _, err := br.Discard(length - 2); err != nil {
				return nil, fmt.Errorf("marker 0x%02X: %w", marker, ErrTruncated)
			}
			continue
		}

		chunk := make([]byte, length+2)
		chunk[0], chunk[1], chunk[2], chunk[3] = 0xFF, marker, lenBuf[0], lenBuf[1]
		if _, err := io.ReadFull(br, chunk[4:]); err != nil {
			return nil, fmt.Errorf("APP1 segment: %w", ErrTruncated)
		}

		kind, offset := xmptree.Classify(chunk)
		if kind == xmptree.NotXMP {
			continue
		}
		if offset > len(chunk) {
			log.Debug("skipping short XMP segment", zap.Stringer("kind", kind), zap.Int("length", len(chunk)))
			continue
		}
		switch kind {
		case xmptree.MainSegment:
			if mainData != nil {
				log.Debug("ignoring duplicate main XMP segment")
				continue
			}
			mainData = chunk[offset:]
		case xmptree.ExtendedSegment:
			ext = append(ext, extChunk{
				guid:    string(chunk[guidOffset : guidOffset+32]),
				payload: chunk[offset:],
			})
		}
	}

	if mainData == nil {
		if len(ext) > 0 {
			log.Debug("extended XMP segments without main segment", zap.Int("count", len(ext)))
		}
		return nil, nil
	}

	segs := []xmptree.Segment{xmptree.DecodeSegment(mainData, false, opt)}
	var guid string
	if m := extendedRef.FindSubmatch(mainData); m != nil {
		guid = string(m[1])
	}
	for _, c := range ext {
		if guid != "" && c.guid != guid {
			log.Debug("skipping extended XMP segment", zap.String("guid", c.guid), zap.String("want", guid))
			continue
		}
		segs = append(segs, xmptree.DecodeSegment(c.payload, true, opt))
	}
	return segs, nil
}

// readMarker reads the next segment marker and returns the marker code.
// Fill bytes (0xFF) before the marker code are skipped.
func readMarker(br *bufio.Reader) (byte, error) {
	b, err := br.ReadByte()
	if err != nil {
		return 0, err
	}
	if b != 0xFF {
		return 0, fmt.Errorf("expected segment marker, found 0x%02X", b)
	}
	for b == 0xFF {
		b, err = br.ReadByte()
		if err == io.EOF {
			return 0, ErrTruncated
		} else if err != nil {
			return 0, err
		}
	}
	return b, nil
}

// Read extracts the XMP metadata from a JPEG stream.  The result is nil if
// the file contains no XMP data.
func Read(r io.Reader, opt *xmptree.Options) (xmptree.Value, error) {
	segs, err := Segments(r, opt)
	if err != nil {
		return nil, err
	}
	if len(segs) == 0 {
		return nil, nil
	}
	return xmptree.ParseSegments(segs, opt), nil
}

// ReadFile extracts the XMP metadata from a JPEG file.
func ReadFile(filename string, opt *xmptree.Options) (xmptree.Value, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Read(f, opt)
}
