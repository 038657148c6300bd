// Copyright (c) 2026 Hot Ink. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package pagination_test

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hotink/hotink/pkg/pagination"
)

func TestFromQuery(t *testing.T) {
	tests := []struct {
		name        string
		query       string
		perPage     int
		wantPage    int
		wantPerPage int
		wantOffset  int
	}{
		{"defaults", "", 0, 1, 20, 0},
		{"endpoint default", "", 50, 1, 50, 0},
		{"explicit", "page=3&per_page=10", 0, 3, 10, 20},
		{"capped", "per_page=500", 0, 1, 100, 0},
		{"negative page", "page=-2", 0, 1, 20, 0},
		{"garbage", "page=two&per_page=x", 30, 1, 30, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			values, err := url.ParseQuery(tt.query)
			require.NoError(t, err)

			params := pagination.FromQuery(values, tt.perPage)
			assert.Equal(t, tt.wantPage, params.Page)
			assert.Equal(t, tt.wantPerPage, params.PerPage)
			assert.Equal(t, tt.wantOffset, params.Offset())
		})
	}
}

func TestParams_Meta(t *testing.T) {
	tests := []struct {
		name         string
		params       pagination.Params
		total        int
		wantPages    int
		wantNext     *int
		wantPrevious *int
	}{
		{"first of three", pagination.Params{Page: 1, PerPage: 20}, 41, 3, intPtr(2), nil},
		{"middle", pagination.Params{Page: 2, PerPage: 20}, 41, 3, intPtr(3), intPtr(1)},
		{"last", pagination.Params{Page: 3, PerPage: 20}, 41, 3, nil, intPtr(2)},
		{"past the end", pagination.Params{Page: 9, PerPage: 20}, 41, 3, nil, intPtr(3)},
		{"empty", pagination.Params{Page: 1, PerPage: 20}, 0, 0, nil, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			meta := tt.params.Meta(tt.total)
			assert.Equal(t, tt.wantPages, meta.TotalPages)
			assert.Equal(t, tt.wantNext, meta.NextPage)
			assert.Equal(t, tt.wantPrevious, meta.PreviousPage)
		})
	}
}

func intPtr(n int) *int { return &n }
