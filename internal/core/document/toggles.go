// Copyright (c) 2026 Hot Ink. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package document

import (
	"maps"
	"slices"
	"strings"

	"github.com/hotink/hotink/internal/platform/apperr"
	"github.com/hotink/hotink/pkg/convert"
)

// CategoryToggles maps a category id to whether the document should be filed
// under it.
type CategoryToggles map[int64]bool

// IDs returns the toggled category ids in ascending order.
func (t CategoryToggles) IDs() []int64 {
	return slices.Sorted(maps.Keys(t))
}

/*
ParseCategoryToggles reads a checkbox-style payload such as

	{"5": "0", "7": 1, "9": "on"}

into toggles. The payload must be a JSON object; anything else is rejected
with VALIDATION_ERROR. Keys that are not integers are skipped.

A value switches the category off when it is blank (null, false, empty or
whitespace-only string, empty array or object), the number 0 or the string
"0". Every other value switches it on.
*/
func ParseCategoryToggles(raw any) (CategoryToggles, error) {
	mapping, ok := raw.(map[string]any)
	if !ok {
		return nil, apperr.ValidationError("Categories must be an object of category id to flag")
	}

	toggles := make(CategoryToggles, len(mapping))
	for key, value := range mapping {
		id, ok := convert.ToInt64(key)
		if !ok || id <= 0 {
			continue
		}
		toggles[id] = !isUnchecked(value)
	}
	return toggles, nil
}

func isUnchecked(value any) bool {
	switch v := value.(type) {
	case nil:
		return true
	case bool:
		return !v
	case string:
		return strings.TrimSpace(v) == "" || v == "0"
	case float64:
		return v == 0
	case int:
		return v == 0
	case int64:
		return v == 0
	case []any:
		return len(v) == 0
	case map[string]any:
		return len(v) == 0
	default:
		return false
	}
}
