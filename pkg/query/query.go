// Copyright (c) 2026 Hot Ink. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package query

import (
	"strconv"
	"strings"
)

// Int64Slice parses URL query values into ids. Each value may itself be a
// comma-separated list. Invalid entries are ignored.
func Int64Slice(vals []string) []int64 {
	var res []int64
	for _, val := range vals {
		for _, v := range StringSlice(val) {
			if i, err := strconv.ParseInt(v, 10, 64); err == nil {
				res = append(res, i)
			}
		}
	}
	return res
}

// StringSlice parses a single comma-separated query string
// into a trimmed slice of strings.
func StringSlice(val string) []string {
	if val == "" {
		return nil
	}
	var res []string
	for _, v := range strings.Split(val, ",") {
		clean := strings.TrimSpace(v)
		if clean != "" {
			res = append(res, clean)
		}
	}
	return res
}
