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
	"strconv"
	"strings"
	"unicode"
)

// Normalize converts raw XMP text into a typed scalar.
//
// Empty and blank strings, as well as the literal strings "null" and
// "undefined", give an absent (nil) value.  Strings which are numbers in
// their entirety become a [Number], "true" and "false" (in any case) become
// a [Bool].  Everything else is returned as a [String] with surrounding
// white space removed.
func Normalize(raw string) Value {
	if raw == "null" || raw == "undefined" || isBlank(raw) {
		return nil
	}
	if x, ok := parseNumber(raw); ok {
		return Number(x)
	}
	if strings.EqualFold(raw, "true") {
		return Bool(true)
	}
	if strings.EqualFold(raw, "false") {
		return Bool(false)
	}
	return String(strings.TrimFunc(raw, isSpace))
}

// parseNumber converts s to a number if the whole string (ignoring
// surrounding white space) is a numeric literal.
func parseNumber(s string) (float64, bool) {
	s = strings.TrimFunc(s, isSpace)
	if s == "" {
		return 0, false
	}

	if len(s) > 2 && s[0] == '0' {
		base := 0
		switch s[1] {
		case 'x', 'X':
			base = 16
		case 'o', 'O':
			base = 8
		case 'b', 'B':
			base = 2
		}
		if base != 0 {
			if strings.ContainsRune(s, '_') {
				return 0, false
			}
			x, err := strconv.ParseUint(s[2:], base, 64)
			if err != nil {
				return 0, false
			}
			return float64(x), true
		}
	}

	// Restrict the input to plain decimal notation, so that ParseFloat does
	// not accept "Inf", "NaN", hexadecimal floats or digit separators.
	for _, c := range s {
		switch {
		case c >= '0' && c <= '9':
		case c == '.' || c == 'e' || c == 'E' || c == '+' || c == '-':
		default:
			return 0, false
		}
	}
	x, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return x, true
}

func isBlank(s string) bool {
	return strings.TrimFunc(s, isSpace) == ""
}

func isSpace(r rune) bool {
	return unicode.IsSpace(r) || r == '\uFEFF'
}
