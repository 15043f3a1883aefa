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
	"go.uber.org/zap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Options control how XMP documents are converted into value trees.
// A nil *Options is valid and selects the defaults.
type Options struct {
	// GroupByNamespace selects the output shape.  If set, the top-level
	// object maps namespace prefixes to objects which hold the properties
	// of that namespace.  Otherwise, all properties are stored in a single
	// object, keyed by their local name.
	GroupByNamespace bool

	// DecodeText, if set, converts raw segment bytes into text.  By
	// default, the bytes are decoded as UTF-8, honouring a byte order mark
	// if present.
	DecodeText func([]byte) (string, error)

	// Logger receives debug messages.  If nil, nothing is logged.
	Logger *zap.Logger
}

func (opt *Options) logger() *zap.Logger {
	if opt == nil || opt.Logger == nil {
		return zap.NewNop()
	}
	return opt.Logger
}

func (opt *Options) groupByNamespace() bool {
	return opt != nil && opt.GroupByNamespace
}

// Parse extracts the metadata from an XMP document.
//
// The properties of all rdf:Description elements are collected into a
// single tree.  If the document contains no rdf:Description element, the
// whole document is treated as the content of one.  The result is nil if
// no metadata was found.
func Parse(text string, opt *Options) Value {
	log := opt.logger()

	roots := FindTags(text, "rdf", "Description")
	if len(roots) == 0 {
		log.Debug("no rdf:Description element found, using the whole document",
			zap.Int("length", len(text)))
		roots = []*Tag{NewTag("rdf", "Description", "", text)}
	} else {
		log.Debug("found rdf:Description elements", zap.Int("count", len(roots)))
	}

	var res Value
	if opt.groupByNamespace() {
		res = groupByNamespace(roots)
	} else {
		res = mergeFlat(roots)
	}

	if obj, ok := res.(*Object); ok && obj.Len() == 0 {
		return nil
	}
	return res
}

// groupByNamespace stores every property of the given elements under its
// namespace prefix and local name.
func groupByNamespace(roots []*Tag) Value {
	out := NewObject()
	for _, root := range roots {
		for _, prop := range root.Properties() {
			v := prop.Serialize()
			if v == nil {
				continue
			}
			bucket, ok := out.Get(prop.Prefix()).(*Object)
			if !ok {
				bucket = NewObject()
				out.Set(prop.Prefix(), bucket)
			}
			bucket.Set(prop.LocalName(), v)
		}
	}
	return out
}

// mergeFlat serializes each element and merges the resulting objects.
func mergeFlat(roots []*Tag) Value {
	if len(roots) == 1 {
		return roots[0].Serialize()
	}
	out := NewObject()
	for _, root := range roots {
		// Scalars have no keys to contribute.
		if obj, ok := root.Serialize().(*Object); ok {
			out.Merge(obj)
		}
	}
	return out
}

// ParseBytes extracts the metadata from an XMP document given as raw
// bytes.  See [Parse] for details.
func ParseBytes(data []byte, opt *Options) Value {
	return Parse(decodeText(data, opt), opt)
}

// ParseSegments assembles an XMP packet from its segments and extracts the
// metadata.  See [Assemble] and [Parse] for details.
func ParseSegments(segs []Segment, opt *Options) Value {
	return Parse(Assemble(segs), opt)
}

// DecodeSegment converts the payload of a container segment into a
// [Segment].
func DecodeSegment(payload []byte, extended bool, opt *Options) Segment {
	return Segment{
		Extended: extended,
		Payload:  decodeText(payload, opt),
	}
}

func decodeText(data []byte, opt *Options) string {
	decode := defaultDecodeText
	if opt != nil && opt.DecodeText != nil {
		decode = opt.DecodeText
	}
	text, err := decode(data)
	if err != nil {
		opt.logger().Debug("cannot decode XMP text, using raw bytes", zap.Error(err))
		return string(data)
	}
	return text
}

func defaultDecodeText(data []byte) (string, error) {
	dec := unicode.BOMOverride(unicode.UTF8.NewDecoder())
	text, _, err := transform.Bytes(dec, data)
	if err != nil {
		return "", err
	}
	return string(text), nil
}
