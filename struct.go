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
	"errors"
	"fmt"
	"reflect"
)

// Basic represents the XMP basic namespace.
//
// See section 8.4 of ISO 16684-1:2011 for details.
type Basic struct {
	_ Namespace `xmp:"http://ns.adobe.com/xap/1.0/"`

	// CreateDate is the date and time the resource was originally created.
	CreateDate string

	// CreatorTool is the name of the first known tool used to create the
	// resource.
	CreatorTool string

	// Identifier is an unambiguous reference to the resource within a given
	// context.
	Identifier []string

	// Label is a word or short phrase that identifies a resource within a
	// local context.
	Label string

	// MetadataDate is the date and time that any metadata for this resource was
	// last modified.
	MetadataDate string

	// ModifyDate is the date and time the resource was last modified.
	ModifyDate string

	// Rating is a user-assigned rating for this resource.
	//
	// The value must be -1 (rejected), 0 (unrated) or a rating in the range
	// (0, 5].
	Rating float64
}

// RightsManagement represents the XMP Rights Management namespace.
//
// See section 8.5 of ISO 16684-1:2011 for details.
type RightsManagement struct {
	_ Namespace `xmp:"http://ns.adobe.com/xap/1.0/rights/"`

	// Certificate is a reference to a digital certificate that can be used to
	// verify the rights management information.
	Certificate string

	// Marked is true if the document has been marked as copyrighted.
	Marked bool

	// Owner is a list of legal owners of the resource.
	Owner []string

	// UsageTerms is a statement that specifies the terms and conditions under
	// which the document can be used.  If several languages are given, this
	// is the first alternative.
	UsageTerms string

	// WebStatement is a URL that can be used to access a rights management
	// information statement.
	WebStatement string
}

// MediaManagement represents the XMP Media Management namespace.
//
// See section 8.6 of ISO 16684-1:2011 for details.
type MediaManagement struct {
	_ Namespace `xmp:"http://ns.adobe.com/xap/1.0/mm/"`

	// DerivedFrom is a reference to a resource from which the present resource
	// is derived, either in whole or in part.
	DerivedFrom Value

	// DocumentID is a unique identifier for the document.
	DocumentID string

	// History lists the actions which created this version of the document.
	History Value

	// InstanceID is a unique identifier for the document instance.
	InstanceID string

	// OriginalDocumentID is a unique identifier for the original document.
	OriginalDocumentID string

	// RenditionClass is a rendition class name for this resource.
	RenditionClass string

	// RenditionParams can be used to provide additional rendition parameters
	RenditionParams string
}

// Decode fills the fields in a namespace struct using data from a tree
// which was extracted with [Options.GroupByNamespace] set.
//
// The argument dst must be a pointer to an XMP namespace struct.  Fields
// can have types string, []string, bool, float64, any integer type, or
// [Value].  Properties which are missing from the tree or which cannot be
// converted to the field type leave the field at its zero value.
func Decode(root Value, dst any) error {
	s := reflect.ValueOf(dst)
	if s.Kind() != reflect.Pointer || s.Elem().Kind() != reflect.Struct {
		return errors.New("xmptree: Decode needs a pointer to a struct")
	}
	s = s.Elem()
	st := s.Type()

	var namespace string
	for i := 0; i < st.NumField(); i++ {
		if st.Field(i).Type == nsTagType {
			namespace = st.Field(i).Tag.Get("xmp")
		}
	}
	if namespace == "" {
		return errors.New("XMP namespace not specified")
	}
	prefix, ok := DefaultPrefix(namespace)
	if !ok {
		return fmt.Errorf("no prefix known for namespace %q", namespace)
	}

	obj, _ := root.(*Object)
	bucket, _ := obj.Get(prefix).(*Object)

	for i := 0; i < st.NumField(); i++ {
		fVal := s.Field(i)
		fInfo := st.Field(i)

		if fInfo.Type == nsTagType || !fVal.CanSet() {
			continue
		}

		propertyName := fInfo.Tag.Get("xmp")
		if propertyName == "" {
			propertyName = fInfo.Name
		}

		fVal.Set(reflect.Zero(fInfo.Type)) // zero missing fields
		if v := bucket.Get(propertyName); v != nil {
			setField(fVal, v)
		}
	}
	return nil
}

func setField(fVal reflect.Value, v Value) {
	if fVal.Type() == valueType {
		fVal.Set(reflect.ValueOf(&v).Elem())
		return
	}

	switch fVal.Kind() {
	case reflect.String:
		if ss := Strings(v); len(ss) > 0 {
			fVal.SetString(ss[0])
		}
	case reflect.Slice:
		if fVal.Type().Elem().Kind() == reflect.String {
			ss := Strings(v)
			res := reflect.MakeSlice(fVal.Type(), len(ss), len(ss))
			for i, s := range ss {
				res.Index(i).SetString(s)
			}
			fVal.Set(res)
		}
	case reflect.Bool:
		if b, ok := v.(Bool); ok {
			fVal.SetBool(bool(b))
		}
	case reflect.Float32, reflect.Float64:
		if x, ok := v.(Number); ok {
			fVal.SetFloat(float64(x))
		}
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		if x, ok := v.(Number); ok && !fVal.OverflowInt(int64(x)) {
			fVal.SetInt(int64(x))
		}
	}
}

var (
	nsTagType = reflect.TypeOf((*Namespace)(nil)).Elem()
	valueType = reflect.TypeOf((*Value)(nil)).Elem()
)

// Namespace must be used in XMP namespace structs to specify the namespace
// URI.  The namespace URI is specified using a struct tag on a field of type
// Namespace.  For example:
//
//	type MyNamespace struct {
//	    _ Namespace `xmp:"http://ns.adobe.com/photoshop/1.0/"`
//	    ...
//	}
//
// The namespace must be one of the namespaces known to [DefaultPrefix].
type Namespace struct{}
