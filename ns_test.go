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
	"testing"
)

// TestDefaultPrefix ensures that the prefixes in the defaultPrefix table are
// unique and non-empty.
func TestDefaultPrefix(t *testing.T) {
	seen := make(map[string]bool)
	for _, p := range defaultPrefix {
		if seen[p] {
			t.Errorf("prefix %q is not unique", p)
		}
		if p == "" {
			t.Errorf("prefix %q is empty", p)
		}
		seen[p] = true
	}
}

func TestNamespaceURI(t *testing.T) {
	for ns, prefix := range defaultPrefix {
		got, ok := NamespaceURI(prefix)
		if !ok || got != ns {
			t.Errorf("NamespaceURI(%q) = %q, %t", prefix, got, ok)
		}
		p, ok := DefaultPrefix(ns)
		if !ok || p != prefix {
			t.Errorf("DefaultPrefix(%q) = %q, %t", ns, p, ok)
		}
	}

	if _, ok := NamespaceURI("no-such-prefix"); ok {
		t.Error("unknown prefix found")
	}
}

func TestKnownPrefixes(t *testing.T) {
	prefixes := KnownPrefixes()
	if len(prefixes) != len(defaultPrefix) {
		t.Errorf("got %d prefixes, want %d", len(prefixes), len(defaultPrefix))
	}
	if !sort.StringsAreSorted(prefixes) {
		t.Errorf("prefixes are not sorted: %q", prefixes)
	}
}
