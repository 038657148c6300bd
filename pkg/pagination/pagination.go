// Copyright (c) 2026 Hot Ink. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package pagination reads "page" / "per_page" from list requests and builds
// the page metadata returned alongside list results.
package pagination

import (
	"net/url"
	"strconv"
)

const (
	// DefaultPerPage applies when an endpoint does not choose its own.
	DefaultPerPage = 20
	// MaxPerPage caps per_page whatever the endpoint default.
	MaxPerPage = 100
)

// Params is one requested page. Page is 1-indexed.
type Params struct {
	Page    int
	PerPage int
}

// Offset returns the SQL OFFSET of the page.
func (p Params) Offset() int {
	return (p.Page - 1) * p.PerPage
}

// Meta describes the returned page.
type Meta struct {
	Page         int  `json:"page"`
	PerPage      int  `json:"per_page"`
	Total        int  `json:"total"`
	TotalPages   int  `json:"total_pages"`
	NextPage     *int `json:"next_page"`
	PreviousPage *int `json:"previous_page"`
}

// Meta builds the metadata of p given the number of matching rows.
func (p Params) Meta(total int) Meta {
	meta := Meta{Page: p.Page, PerPage: p.PerPage, Total: total}
	if p.PerPage > 0 {
		meta.TotalPages = (total + p.PerPage - 1) / p.PerPage
	}

	if p.Page < meta.TotalPages {
		next := p.Page + 1
		meta.NextPage = &next
	}
	if p.Page > 1 {
		previous := min(p.Page-1, max(meta.TotalPages, 1))
		meta.PreviousPage = &previous
	}
	return meta
}

/*
FromQuery reads the page request from query values.

Missing or malformed values fall back to page 1 and defaultPerPage. A
per_page above [MaxPerPage] is capped rather than rejected.

Parameters:
  - values: url.Values
  - defaultPerPage: int (the endpoint's page size; <= 0 means [DefaultPerPage])

Returns:
  - Params
*/
func FromQuery(values url.Values, defaultPerPage int) Params {
	if defaultPerPage <= 0 {
		defaultPerPage = DefaultPerPage
	}

	params := Params{
		Page:    positive(values.Get("page"), 1),
		PerPage: positive(values.Get("per_page"), defaultPerPage),
	}
	params.PerPage = min(params.PerPage, MaxPerPage)
	return params
}

func positive(raw string, fallback int) int {
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return fallback
	}
	return n
}
