// Copyright (c) 2026 Hot Ink. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package tag reports the free-form tags used across an account's documents.

Tags are stored on the document itself; this package only aggregates them, so
there is nothing to create or delete here.
*/
package tag

import "context"

// Tag is a tag name with the number of documents carrying it.
type Tag struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

const (
	DefaultLimit = 50
	MaxLimit     = 500
)

// Repository aggregates tags from stored documents.
type Repository interface {
	// List returns the most used tags starting with prefix (case-insensitive),
	// ties broken by name.
	List(context context.Context, accountID int64, prefix string, limit int) ([]*Tag, error)
}
