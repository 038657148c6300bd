// Copyright (c) 2026 Hot Ink. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package tag

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingRepository struct {
	prefix string
	limit  int
}

func (repository *recordingRepository) List(_ context.Context, _ int64, prefix string, limit int) ([]*Tag, error) {
	repository.prefix, repository.limit = prefix, limit
	return []*Tag{{Name: "city", Count: 3}}, nil
}

func TestList_Arguments(t *testing.T) {
	tests := []struct {
		name       string
		prefix     string
		limit      int
		wantPrefix string
		wantLimit  int
	}{
		{"defaults", "", 0, "", DefaultLimit},
		{"trimmed", "  ci ", 10, "ci", 10},
		{"clamped", "x", 10_000, "x", MaxLimit},
		{"wildcards are literal", "50%_off", 5, `50\%\_off`, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &recordingRepository{}
			service := NewService(repo, slog.New(slog.NewTextHandler(io.Discard, nil)))

			tags, err := service.List(context.Background(), 1, tt.prefix, tt.limit)
			require.NoError(t, err)
			require.Len(t, tags, 1)

			assert.Equal(t, tt.wantPrefix, repo.prefix)
			assert.Equal(t, tt.wantLimit, repo.limit)
		})
	}
}
