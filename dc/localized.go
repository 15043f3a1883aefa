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
	"sort"

	"golang.org/x/exp/maps"
	"golang.org/x/text/language"
)

// Localized is a text value with alternatives in different languages.
type Localized struct {
	// Default is the x-default alternative.
	Default string

	// V holds the language specific alternatives.
	V map[language.Tag]string
}

// Set sets the text for the given language.
func (l *Localized) Set(tag language.Tag, s string) {
	if l.V == nil {
		l.V = make(map[language.Tag]string)
	}
	l.V[tag] = s
}

// IsZero reports whether l has no alternatives at all.
func (l Localized) IsZero() bool {
	return l.Default == "" && len(l.V) == 0
}

// Languages returns the languages of the language specific alternatives,
// sorted by their BCP 47 representation.
func (l Localized) Languages() []language.Tag {
	tags := maps.Keys(l.V)
	sort.Slice(tags, func(i, j int) bool {
		return tags[i].String() < tags[j].String()
	})
	return tags
}

// Get returns the alternative which best matches the preferred languages.
// If none of the alternatives is a reasonable match, or if no languages are
// given, the default text is returned.
func (l Localized) Get(prefs ...language.Tag) string {
	tags := l.Languages()
	if len(tags) == 0 {
		return l.Default
	}
	if len(prefs) == 0 {
		if l.Default != "" {
			return l.Default
		}
		return l.V[tags[0]]
	}

	m := language.NewMatcher(tags)
	_, idx, conf := m.Match(prefs...)
	if conf == language.No && l.Default != "" {
		return l.Default
	}
	return l.V[tags[idx]]
}
