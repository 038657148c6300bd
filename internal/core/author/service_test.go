// Copyright (c) 2026 Hot Ink. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package author

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hotink/hotink/internal/platform/apperr"
)

// memoryRepository is an in-memory Repository keyed by (account, name).
type memoryRepository struct {
	mu      sync.Mutex
	nextID  int64
	authors map[int64]*Author
}

func newMemoryRepository() *memoryRepository {
	return &memoryRepository{authors: map[int64]*Author{}}
}

func (repository *memoryRepository) FindOrCreate(_ context.Context, accountID int64, name string) (*Author, error) {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	for _, a := range repository.authors {
		if a.AccountID == accountID && a.Name == name {
			return a, nil
		}
	}
	repository.nextID++
	a := &Author{ID: repository.nextID, AccountID: accountID, Name: name, CreatedAt: time.Now(), UpdatedAt: time.Now()}
	repository.authors[a.ID] = a
	return a, nil
}

func (repository *memoryRepository) Get(_ context.Context, accountID, id int64) (*Author, error) {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	a, ok := repository.authors[id]
	if !ok || a.AccountID != accountID {
		return nil, apperr.NotFound("Author")
	}
	return a, nil
}

func (repository *memoryRepository) List(_ context.Context, accountID int64, _ Filter, _, _ int) ([]*Author, int, error) {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	var out []*Author
	for _, a := range repository.authors {
		if a.AccountID == accountID {
			out = append(out, a)
		}
	}
	return out, len(out), nil
}

func newTestService() (*Service, *memoryRepository) {
	repo := newMemoryRepository()
	return NewService(repo, slog.New(slog.NewTextHandler(io.Discard, nil))), repo
}

/*
TestFindOrCreate_Reuses verifies that the same trimmed name resolves to one author.
*/
func TestFindOrCreate_Reuses(t *testing.T) {
	service, repo := newTestService()
	ctx := context.Background()

	first, err := service.FindOrCreate(ctx, 1, "Ed Smith")
	require.NoError(t, err)

	second, err := service.FindOrCreate(ctx, 1, "  Ed Smith ")
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Len(t, repo.authors, 1)
}

/*
TestFindOrCreate_AccountScoped verifies that names do not cross account boundaries.
*/
func TestFindOrCreate_AccountScoped(t *testing.T) {
	service, _ := newTestService()
	ctx := context.Background()

	a, err := service.FindOrCreate(ctx, 1, "Ed")
	require.NoError(t, err)
	b, err := service.FindOrCreate(ctx, 2, "Ed")
	require.NoError(t, err)

	assert.NotEqual(t, a.ID, b.ID)

	_, err = service.Get(ctx, 2, a.ID)
	assert.True(t, apperr.IsNotFound(err))
}

func TestFindOrCreate_Blank(t *testing.T) {
	service, repo := newTestService()

	_, err := service.FindOrCreate(context.Background(), 1, "   ")
	assert.True(t, apperr.IsCode(err, "VALIDATION_ERROR"))
	assert.Empty(t, repo.authors)
}

func TestFindOrCreate_Concurrent(t *testing.T) {
	service, repo := newTestService()

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = service.FindOrCreate(context.Background(), 1, "Dana")
		}()
	}
	wg.Wait()

	assert.Len(t, repo.authors, 1)
}
