// Copyright (c) 2026 Hot Ink. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package document

import (
	"context"
	"log/slog"
	"strings"

	"github.com/hotink/hotink/internal/platform/validate"
)

// # Authorships

// AuthorshipInput attaches an author to a document, either by id or by name.
type AuthorshipInput struct {
	AuthorID      int64   `json:"author_id"`
	AuthorName    string  `json:"author_name"`
	StaffPosition *string `json:"staff_position"`
}

// ListAuthorships returns the document's bylines in display order.
func (service *Service) ListAuthorships(context context.Context, accountID, documentID int64) ([]Authorship, error) {
	if _, err := service.repo.FindByID(context, accountID, documentID); err != nil {
		return nil, err
	}
	return service.repo.ListAuthorships(context, accountID, documentID)
}

/*
AddAuthorship appends one byline.

A name is resolved with find-or-create; an id must name an author of the
account. The staff position is stored as given and never refreshed from the
author later.
*/
func (service *Service) AddAuthorship(context context.Context, accountID, documentID int64, input AuthorshipInput) (*Authorship, error) {
	name := strings.TrimSpace(input.AuthorName)

	validator := &validate.Validator{}
	validator.Custom("author_id", input.AuthorID <= 0 && name == "", "Either author_id or author_name is required")
	if err := validator.Err(); err != nil {
		return nil, err
	}

	authorID := input.AuthorID
	if authorID <= 0 {
		author, err := service.authors.FindOrCreate(context, accountID, name)
		if err != nil {
			return nil, err
		}
		authorID = author.ID
	}

	item := &Authorship{
		AccountID:     accountID,
		DocumentID:    documentID,
		AuthorID:      authorID,
		StaffPosition: normalizePosition(input.StaffPosition),
	}
	if err := service.repo.AddAuthorship(context, item); err != nil {
		return nil, err
	}
	service.markDelta(context, accountID, documentID)

	service.logger.Info("authorship_added",
		slog.Int64("document_id", documentID),
		slog.Int64("author_id", authorID),
	)
	return item, nil
}

// UpdateAuthorship replaces the staff position snapshot.
func (service *Service) UpdateAuthorship(context context.Context, accountID, documentID, id int64, staffPosition *string) (*Authorship, error) {
	return service.repo.UpdateAuthorship(context, accountID, documentID, id, normalizePosition(staffPosition))
}

func (service *Service) RemoveAuthorship(context context.Context, accountID, documentID, id int64) error {
	if err := service.repo.RemoveAuthorship(context, accountID, documentID, id); err != nil {
		return err
	}
	service.markDelta(context, accountID, documentID)

	service.logger.Info("authorship_removed",
		slog.Int64("document_id", documentID),
		slog.Int64("authorship_id", id),
	)
	return nil
}

func normalizePosition(position *string) *string {
	if position == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*position)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
