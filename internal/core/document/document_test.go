// Copyright (c) 2026 Hot Ink. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package document

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

/*
TestFormatAuthorsList verifies byline rendering for 0, 1, 2, 3 and 5 names.
*/
func TestFormatAuthorsList(t *testing.T) {
	tests := []struct {
		name  string
		input []string
		want  string
	}{
		{"none", nil, ""},
		{"one", []string{"Ann"}, "Ann"},
		{"two", []string{"Ann", "Bo"}, "Ann and Bo"},
		{"three", []string{"Ann", "Bo", "Cy"}, "Ann, Bo and Cy"},
		{"five", []string{"Ann", "Bo", "Cy", "Di", "Ed"}, "Ann, Bo, Cy, Di and Ed"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatAuthorsList(tt.input))
		})
	}
}

func TestSplitAuthorsList(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"empty", "", nil},
		{"single", "  Ann  ", []string{"Ann"}},
		{"rendered list", "Ann, Bo and Cy", []string{"Ann", "Bo", "Cy"}},
		{"serial comma", "X, and Y", []string{"X", "Y"}},
		{"blank entries", "A ,, B,", []string{"A", "B"}},
		{"and inside a name", "Sandy Anderson and Bo", []string{"Sandy Anderson", "Bo"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SplitAuthorsList(tt.input))
		})
	}
}

/*
TestPublish_KeepsStalePublishedAt verifies that unpublishing only clears the status.
*/
func TestPublish_KeepsStalePublishedAt(t *testing.T) {
	doc := &Document{}
	at := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

	doc.Publish(StatusPublished, at)
	require.True(t, doc.IsPublished())
	require.NotNil(t, doc.PublishedAt)
	assert.Equal(t, at, *doc.PublishedAt)

	doc.Unpublish()
	assert.Nil(t, doc.Status)
	assert.False(t, doc.IsPublished())
	require.NotNil(t, doc.PublishedAt)
	assert.Equal(t, at, *doc.PublishedAt)
}

func TestPublish_OtherStatusClears(t *testing.T) {
	for _, status := range []string{"", "published", "Draft"} {
		doc := &Document{}
		doc.Publish(StatusPublished, time.Now())
		doc.Publish(status, time.Now())
		assert.Nil(t, doc.Status, status)
	}
}

func TestDisplayTitle(t *testing.T) {
	assert.Equal(t, "(no headline)", (&Document{Title: "  "}).DisplayTitle())
	assert.Equal(t, "Budget passes", (&Document{Title: "Budget passes"}).DisplayTitle())
}

/*
TestParseCategoryToggles verifies checkbox truthiness rules.
*/
func TestParseCategoryToggles(t *testing.T) {
	toggles, err := ParseCategoryToggles(map[string]any{
		"1":  "0",
		"2":  float64(0),
		"3":  "",
		"4":  nil,
		"5":  false,
		"6":  []any{},
		"7":  float64(1),
		"8":  "1",
		"9":  "on",
		"10": true,
		"11": " ",
		"x":  "1",
	})
	require.NoError(t, err)

	assert.Equal(t, CategoryToggles{
		1: false, 2: false, 3: false, 4: false, 5: false, 6: false,
		7: true, 8: true, 9: true, 10: true, 11: false,
	}, toggles)
	assert.Equal(t, []int64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11}, toggles.IDs())
}

func TestParseCategoryToggles_NotAnObject(t *testing.T) {
	for _, raw := range []any{nil, "5", []any{"5"}, float64(5)} {
		_, err := ParseCategoryToggles(raw)
		assert.Error(t, err)
	}
}
