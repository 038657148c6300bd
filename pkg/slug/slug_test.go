// Copyright (c) 2026 Hot Ink. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package slug_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hotink/hotink/pkg/slug"
)

func TestFrom(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"News", "news"},
		{"Arts & Culture", "arts-culture"},
		{"  Café Reviews  ", "cafe-reviews"},
		{"Op--Ed", "op-ed"},
		{"Editor's Picks", "editors-picks"},
		{"Editor’s Picks", "editors-picks"},
		{"2026 Election", "2026-election"},
		{"Москва", ""},
		{"!!!", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, slug.From(tt.input))
		})
	}
}

func TestFrom_Truncates(t *testing.T) {
	got := slug.From(strings.Repeat("longword ", 20))

	assert.LessOrEqual(t, len(got), slug.MaxLength)
	assert.False(t, strings.HasSuffix(got, "-"))
	assert.True(t, strings.HasPrefix(got, "longword-longword"))
}
