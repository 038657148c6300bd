// Copyright (c) 2026 Hot Ink. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package category

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hotink/hotink/internal/platform/apperr"
)

type memoryRepository struct {
	nextID     int64
	categories map[int64]*Category
}

func (repository *memoryRepository) Get(_ context.Context, accountID, id int64) (*Category, error) {
	c, ok := repository.categories[id]
	if !ok || c.AccountID != accountID {
		return nil, apperr.NotFound("Category")
	}
	return c, nil
}

func (repository *memoryRepository) List(_ context.Context, accountID int64) ([]*Category, error) {
	out := []*Category{}
	for _, c := range repository.categories {
		if c.AccountID == accountID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (repository *memoryRepository) Create(_ context.Context, c *Category) error {
	for _, existing := range repository.categories {
		if existing.AccountID == c.AccountID && existing.Slug == c.Slug {
			return apperr.Conflict("Category already exists")
		}
	}
	repository.nextID++
	c.ID = repository.nextID
	repository.categories[c.ID] = c
	return nil
}

func newTestService() *Service {
	repo := &memoryRepository{categories: map[int64]*Category{}}
	return NewService(repo, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

/*
TestCreate_SlugAndConflict verifies slug derivation and per-account uniqueness.
*/
func TestCreate_SlugAndConflict(t *testing.T) {
	service := newTestService()
	ctx := context.Background()

	c, err := service.Create(ctx, 1, " Arts & Culture ")
	require.NoError(t, err)
	assert.Equal(t, "Arts & Culture", c.Name)
	assert.Equal(t, "arts-culture", c.Slug)

	_, err = service.Create(ctx, 1, "Arts  Culture")
	assert.True(t, apperr.IsCode(err, "CONFLICT"))

	_, err = service.Create(ctx, 2, "Arts & Culture")
	assert.NoError(t, err)
}

func TestCreate_Invalid(t *testing.T) {
	service := newTestService()

	for _, name := range []string{"", "   ", "&&&"} {
		_, err := service.Create(context.Background(), 1, name)
		assert.True(t, apperr.IsCode(err, "VALIDATION_ERROR"), name)
	}
}

func TestGet_OtherAccount(t *testing.T) {
	service := newTestService()
	ctx := context.Background()

	c, err := service.Create(ctx, 1, "News")
	require.NoError(t, err)

	_, err = service.Get(ctx, 2, c.ID)
	assert.True(t, apperr.IsNotFound(err))
}
