// Copyright (c) 2026 Hot Ink. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package convert provides lenient conversions for loosely typed input.

Form-style payloads arrive as strings, JSON numbers (float64) or booleans
depending on the client. These helpers fold those shapes into Go values
without returning errors; callers that must tell malformed data apart from
zero values should use [strconv] directly.
*/
package convert

import (
	"math"
	"strconv"
	"strings"
)

// ToInt64 converts a string to an int64, returning false when it is not a
// base-10 integer.
func ToInt64(s string) (int64, bool) {
	v, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// AnyToInt64 converts a decoded JSON value (number or numeric string) to an
// int64. Fractional numbers are rejected.
func AnyToInt64(value any) (int64, bool) {
	switch v := value.(type) {
	case int:
		return int64(v), true
	case int64:
		return v, true
	case float64:
		if v != math.Trunc(v) {
			return 0, false
		}
		return int64(v), true
	case string:
		return ToInt64(v)
	default:
		return 0, false
	}
}

// ToBool parses a boolean string ("true", "1", "false", "0").
// It returns false on empty string or parse error.
func ToBool(s string) bool {
	if s == "" {
		return false
	}

	v, _ := strconv.ParseBool(s)
	return v
}
