// Copyright (c) 2026 Hot Ink. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package category

import "time"

// Category is an account-scoped label used both to sort documents and as a
// document's section.
type Category struct {
	ID        int64     `json:"id"`
	AccountID int64     `json:"account_id"`
	Name      string    `json:"name"`
	Slug      string    `json:"slug"`
	CreatedAt time.Time `json:"created_at"`
}

const (
	FieldName = "name"

	MaxNameLength = 120
)
