// Copyright (c) 2026 Hot Ink. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package document

import (
	"regexp"
	"strings"
)

// authorSeparator matches ", and " before " and " before "," so that
// "X, and Y" yields two names rather than three.
var authorSeparator = regexp.MustCompile(`, and | and |,`)

/*
FormatAuthorsList renders bylines the way a reader expects them:

	[]                    -> ""
	["Ann"]               -> "Ann"
	["Ann", "Bo"]         -> "Ann and Bo"
	["Ann", "Bo", "Cy"]   -> "Ann, Bo and Cy"
*/
func FormatAuthorsList(names []string) string {
	switch len(names) {
	case 0:
		return ""
	case 1:
		return names[0]
	default:
		return strings.Join(names[:len(names)-1], ", ") + " and " + names[len(names)-1]
	}
}

// SplitAuthorsList parses free-text bylines into trimmed, non-empty names.
// Duplicates are preserved; the caller decides what to do with them.
func SplitAuthorsList(list string) []string {
	var names []string
	for _, part := range authorSeparator.Split(list, -1) {
		if name := strings.TrimSpace(part); name != "" {
			names = append(names, name)
		}
	}
	return names
}
