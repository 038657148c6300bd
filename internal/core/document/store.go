// Copyright (c) 2026 Hot Ink. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package document

import (
	"context"
	"time"

	"github.com/hotink/hotink/internal/core/author"
	"github.com/hotink/hotink/internal/core/category"
)

// # Repository Interfaces

// Repository persists documents and their join rows. Every method takes the
// account id and never touches rows of another account.
type Repository interface {
	Create(context context.Context, d *Document) error
	FindByID(context context.Context, accountID, id int64) (*Document, error)
	List(context context.Context, accountID int64, filter Filter, limit, offset int) ([]*Document, int, error)
	Update(context context.Context, d *Document) error
	SetPublication(context context.Context, accountID, id int64, status *string, publishedAt *time.Time) error
	Delete(context context.Context, accountID, id int64) error

	AuthorshipRepository
	SortingRepository
}

// AuthorshipRepository manages the ordered byline join.
type AuthorshipRepository interface {
	ListAuthorships(context context.Context, accountID, documentID int64) ([]Authorship, error)
	AddAuthorship(context context.Context, a *Authorship) error
	UpdateAuthorship(context context.Context, accountID, documentID, id int64, staffPosition *string) (*Authorship, error)
	RemoveAuthorship(context context.Context, accountID, documentID, id int64) error
}

// SortingRepository manages the document/category join.
type SortingRepository interface {
	AddSorting(context context.Context, accountID, documentID, categoryID int64) error
	RemoveSorting(context context.Context, accountID, documentID, categoryID int64) error
}

// # Collaborators

// AuthorResolver finds or creates a named author of an account.
type AuthorResolver interface {
	FindOrCreate(context context.Context, accountID int64, name string) (*author.Author, error)
}

// CategoryFinder resolves a category id inside an account. A miss is NOT_FOUND.
type CategoryFinder interface {
	Get(context context.Context, accountID, id int64) (*category.Category, error)
}

// Indexer keeps the full-text index in step with document mutations.
type Indexer interface {
	MarkDelta(context context.Context, accountID, documentID int64) error
	ReindexDelta(context context.Context) (int, error)
}
