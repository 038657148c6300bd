// Copyright (c) 2026 Hot Ink. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package waxing attaches mediafiles to documents.

A waxing is a captioned link between one document and one mediafile of the
same account. Removing a waxing never touches the mediafile itself, and a
batch attach creates each link independently: a failing id is reported and
the others stay attached.
*/
package waxing

import (
	"context"
	"time"
)

const (
	MaxCaptionLength = 2000
	MaxBatchSize     = 100

	FieldDocumentID   = "document_id"
	FieldMediafileID  = "mediafile_id"
	FieldMediafileIDs = "mediafile_ids"
	FieldCaption      = "caption"
)

// Waxing links a mediafile to a document.
type Waxing struct {
	ID          int64     `json:"id"`
	AccountID   int64     `json:"account_id"`
	DocumentID  int64     `json:"document_id"`
	MediafileID int64     `json:"mediafile_id"`
	Caption     string    `json:"caption"`
	CreatedAt   time.Time `json:"created_at"`
}

// Repository persists waxings. Inserts verify that the document and the
// mediafile both belong to the account.
type Repository interface {
	Create(ctx context.Context, w *Waxing) error
	Get(ctx context.Context, accountID, id int64) (*Waxing, error)
	ListByDocument(ctx context.Context, accountID, documentID int64) ([]*Waxing, error)
	UpdateCaption(ctx context.Context, accountID, id int64, caption string) (*Waxing, error)

	// Delete removes the link and returns it.
	Delete(ctx context.Context, accountID, id int64) (*Waxing, error)
}

// DeltaMarker flags a document for search re-indexing; captions are indexed.
type DeltaMarker interface {
	MarkDelta(ctx context.Context, accountID, documentID int64) error
}
