// Copyright (c) 2026 Hot Ink. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package author

import "time"

// Author is a byline name registered within one account. Names are unique per
// account and matched exactly (case-sensitive, after trimming).
type Author struct {
	ID        int64     `json:"id"`
	AccountID int64     `json:"account_id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Filter holds the parameters for a paginated author search.
type Filter struct {
	Query string // ILIKE search against name
}

// Global field names for validation
const (
	FieldName = "name"
)

// MaxNameLength bounds author names.
const MaxNameLength = 200
