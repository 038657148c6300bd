// Copyright (c) 2026 Hot Ink. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package media

import (
	"context"
	"io"
)

// Repository persists mediafile metadata. Every lookup is scoped to an account.
type Repository interface {
	Create(ctx context.Context, m *Mediafile) error
	SetStorageKey(ctx context.Context, accountID, id int64, key string) error
	Get(ctx context.Context, accountID, id int64) (*Mediafile, error)
	List(ctx context.Context, accountID int64, filter Filter, limit, offset int) ([]*Mediafile, int, error)

	// Delete removes the row and returns it so its objects can be cleaned up.
	Delete(ctx context.Context, accountID, id int64) (*Mediafile, error)
}

// BlobStore holds the bytes of every rendition.
type BlobStore interface {
	Put(ctx context.Context, key string, body []byte, contentType string) error
	Get(ctx context.Context, key string) (io.ReadCloser, string, error)
	Delete(ctx context.Context, key string) error
}
