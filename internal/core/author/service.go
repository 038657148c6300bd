// Copyright (c) 2026 Hot Ink. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package author

import (
	"context"
	"log/slog"
	"strings"

	"github.com/hotink/hotink/internal/platform/validate"
)

type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

/*
FindOrCreate resolves a byline name to an author of the account.

Parameters:
  - accountID: int64 (tenant scope)
  - name: string (trimmed before matching)

Returns:
  - *Author: the existing or newly created author
  - error: VALIDATION_ERROR for a blank or oversized name
*/
func (service *Service) FindOrCreate(context context.Context, accountID int64, name string) (*Author, error) {
	name = strings.TrimSpace(name)

	validator := &validate.Validator{}
	validator.Required(FieldName, name).MaxLen(FieldName, name, MaxNameLength)
	if err := validator.Err(); err != nil {
		return nil, err
	}

	author, err := service.repo.FindOrCreate(context, accountID, name)
	if err != nil {
		return nil, err
	}

	service.logger.Debug("author_resolved",
		slog.Int64("account_id", accountID),
		slog.Int64("author_id", author.ID),
	)
	return author, nil
}

func (service *Service) Get(context context.Context, accountID, id int64) (*Author, error) {
	return service.repo.Get(context, accountID, id)
}

func (service *Service) List(context context.Context, accountID int64, filter Filter, limit, offset int) ([]*Author, int, error) {
	filter.Query = strings.TrimSpace(filter.Query)
	return service.repo.List(context, accountID, filter, limit, offset)
}
