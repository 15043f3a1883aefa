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

package dc

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/text/language"

	"seehuhn.de/go/xmptree"
)

const testPacket = `<x:xmpmeta xmlns:x="adobe:ns:meta/">
 <rdf:RDF xmlns:rdf="http://www.w3.org/1999/02/22-rdf-syntax-ns#">
  <rdf:Description rdf:about="" xmlns:dc="http://purl.org/dc/elements/1.1/"
    dc:format="image/jpeg">
   <dc:creator><rdf:Seq><rdf:li>Jane Doe</rdf:li><rdf:li>John Roe</rdf:li></rdf:Seq></dc:creator>
   <dc:subject><rdf:Bag><rdf:li>mountains</rdf:li><rdf:li>2018</rdf:li></rdf:Bag></dc:subject>
   <dc:language><rdf:Bag><rdf:li>en</rdf:li><rdf:li>de-CH</rdf:li><rdf:li>!!</rdf:li></rdf:Bag></dc:language>
   <dc:title>
    <rdf:Alt>
     <rdf:li xml:lang="x-default">Above the clouds</rdf:li>
     <rdf:li xml:lang="en-GB">Above the clouds</rdf:li>
     <rdf:li xml:lang="de">Über den Wolken</rdf:li>
    </rdf:Alt>
   </dc:title>
   <dc:rights><rdf:Alt><rdf:li xml:lang="x-default">CC BY 4.0</rdf:li></rdf:Alt></dc:rights>
  </rdf:Description>
 </rdf:RDF>
</x:xmpmeta>`

var tagComparer = cmp.Comparer(func(a, b language.Tag) bool { return a == b })

func TestFromTree(t *testing.T) {
	tree := xmptree.Parse(testPacket, &xmptree.Options{GroupByNamespace: true})
	got := FromTree(tree)

	want := &DublinCore{
		Creator:  []string{"Jane Doe", "John Roe"},
		Format:   "image/jpeg",
		Language: []language.Tag{language.MustParse("en"), language.MustParse("de-CH")},
		Rights:   Localized{Default: "CC BY 4.0"},
		Subject:  []string{"mountains", "2018"},
		Title: Localized{
			Default: "Above the clouds",
			V: map[language.Tag]string{
				language.MustParse("en-GB"): "Above the clouds",
				language.MustParse("de"):    "Über den Wolken",
			},
		},
	}
	if d := cmp.Diff(want, got, tagComparer); d != "" {
		t.Errorf("unexpected result (-want +got):\n%s", d)
	}
}

func TestFromTreeWithoutDC(t *testing.T) {
	tree := xmptree.Parse(`<rdf:Description xmp:Rating="5"/>`, &xmptree.Options{GroupByNamespace: true})
	if got := FromTree(tree); got != nil {
		t.Errorf("unexpected result %#v", got)
	}
	if got := FromTree(nil); got != nil {
		t.Errorf("unexpected result %#v", got)
	}
}

func TestFromFlatObject(t *testing.T) {
	tree := xmptree.Parse(`<rdf:Description dc:source="scan"><dc:subject>cat</dc:subject></rdf:Description>`, nil)
	props, ok := tree.(*xmptree.Object)
	if !ok {
		t.Fatalf("expected an object, got %T", tree)
	}
	got := FromObject(props)
	if got.Source != "scan" {
		t.Errorf("unexpected source %q", got.Source)
	}
	if d := cmp.Diff([]string{"cat"}, got.Subject); d != "" {
		t.Errorf("unexpected subject (-want +got):\n%s", d)
	}
}

func TestLocalizedGet(t *testing.T) {
	var title Localized
	title.Default = "Hello, World!"
	title.Set(language.English, "Hello, World!")
	title.Set(language.German, "Grüß Gott!")

	cases := []struct {
		prefs []language.Tag
		out   string
	}{
		{nil, "Hello, World!"},
		{[]language.Tag{language.German}, "Grüß Gott!"},
		{[]language.Tag{language.MustParse("de-AT")}, "Grüß Gott!"},
		{[]language.Tag{language.Japanese, language.German}, "Grüß Gott!"},
		{[]language.Tag{language.Japanese}, "Hello, World!"},
	}
	for _, c := range cases {
		if got := title.Get(c.prefs...); got != c.out {
			t.Errorf("Get(%v) = %q, want %q", c.prefs, got, c.out)
		}
	}

	if got := (Localized{}).Get(language.German); got != "" {
		t.Errorf("empty Localized gives %q", got)
	}

	noDefault := Localized{}
	noDefault.Set(language.French, "Bonjour")
	if got := noDefault.Get(); got != "Bonjour" {
		t.Errorf("Get() = %q", got)
	}
}

func TestLanguages(t *testing.T) {
	var l Localized
	l.Set(language.MustParse("fr"), "c")
	l.Set(language.MustParse("de"), "a")
	l.Set(language.MustParse("en-US"), "b")

	want := []string{"de", "en-US", "fr"}
	var got []string
	for _, tag := range l.Languages() {
		got = append(got, tag.String())
	}
	if d := cmp.Diff(want, got); d != "" {
		t.Errorf("unexpected languages (-want +got):\n%s", d)
	}
}
