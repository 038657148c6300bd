// Copyright (c) 2026 Hot Ink. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package dberr_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hotink/hotink/internal/platform/apperr"
	"github.com/hotink/hotink/internal/platform/dberr"
)

/*
TestWrap checks the mapping from pgx errors to API error codes.
*/
func TestWrap(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		code   string
		status int
	}{
		{"no_rows", pgx.ErrNoRows, "NOT_FOUND", 404},
		{"wrapped_no_rows", fmt.Errorf("scan: %w", pgx.ErrNoRows), "NOT_FOUND", 404},
		{"unique", &pgconn.PgError{Code: "23505"}, "CONFLICT", 409},
		{"foreign_key", &pgconn.PgError{Code: "23503"}, "NOT_FOUND", 404},
		{"other", errors.New("connection reset"), "INTERNAL_ERROR", 500},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ae := apperr.As(dberr.Wrap(tt.err, "Document"))
			require.NotNil(t, ae)
			assert.Equal(t, tt.code, ae.Code)
			assert.Equal(t, tt.status, ae.HTTPStatus)
		})
	}
}

func TestWrap_Nil(t *testing.T) {
	assert.NoError(t, dberr.Wrap(nil, "Document"))
}

func TestIsUniqueViolation(t *testing.T) {
	assert.True(t, dberr.IsUniqueViolation(fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23505"})))
	assert.False(t, dberr.IsUniqueViolation(pgx.ErrNoRows))
}
