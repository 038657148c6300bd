// Copyright (c) 2026 Hot Ink. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package slug turns category names into URL path segments, e.g.
// "Arts & Culture" -> "arts-culture" and "Editor's Picks" -> "editors-picks".
package slug

import (
	"strings"
	"unicode"

	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// MaxLength bounds a slug. Longer slugs are cut at the last hyphen that fits.
const MaxLength = 80

var stripMarks = transform.Chain(norm.NFD, transform.RemoveFunc(func(r rune) bool {
	return unicode.Is(unicode.Mn, r)
}), norm.NFC)

/*
From returns the lower-case ASCII slug of name.

Accents are stripped, apostrophes vanish inside words, and every other run of
non-alphanumerics becomes one hyphen. Letters with no ASCII base form are
dropped, so a name made only of them yields "".
*/
func From(name string) string {
	folded, _, err := transform.String(stripMarks, name)
	if err != nil {
		folded = name
	}

	var b strings.Builder
	pendingHyphen := false
	for _, r := range strings.ToLower(folded) {
		switch {
		case r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r)):
			if pendingHyphen && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingHyphen = false
			b.WriteRune(r)
		case r == '\'' || r == '’':
			// dropped
		default:
			pendingHyphen = true
		}
	}

	return truncate(b.String())
}

func truncate(s string) string {
	if len(s) <= MaxLength {
		return s
	}
	if s[MaxLength] == '-' {
		return s[:MaxLength]
	}
	s = s[:MaxLength]
	if cut := strings.LastIndexByte(s, '-'); cut > 0 {
		s = s[:cut]
	}
	return strings.TrimSuffix(s, "-")
}
