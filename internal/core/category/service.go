// Copyright (c) 2026 Hot Ink. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package category

import (
	"context"
	"log/slog"
	"strings"

	"github.com/hotink/hotink/internal/platform/validate"
	"github.com/hotink/hotink/pkg/slug"
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

// Get looks a category up inside the account. A category of another account
// is reported as NOT_FOUND.
func (service *Service) Get(context context.Context, accountID, id int64) (*Category, error) {
	return service.repo.Get(context, accountID, id)
}

func (service *Service) List(context context.Context, accountID int64) ([]*Category, error) {
	return service.repo.List(context, accountID)
}

// Create registers a category. The slug is derived from the name; a second
// category with the same slug in the account fails with CONFLICT.
func (service *Service) Create(context context.Context, accountID int64, name string) (*Category, error) {
	name = strings.TrimSpace(name)
	categorySlug := slug.From(name)

	validator := &validate.Validator{}
	validator.Required(FieldName, name).MaxLen(FieldName, name, MaxNameLength)
	validator.Custom(FieldName, name != "" && categorySlug == "", "Must contain at least one letter or digit")
	if err := validator.Err(); err != nil {
		return nil, err
	}

	c := &Category{AccountID: accountID, Name: name, Slug: categorySlug}
	if err := service.repo.Create(context, c); err != nil {
		return nil, err
	}

	service.logger.Info("category_created",
		slog.Int64("account_id", accountID),
		slog.Int64("category_id", c.ID),
		slog.String("slug", c.Slug),
	)
	return c, nil
}
