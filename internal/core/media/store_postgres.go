// Copyright (c) 2026 Hot Ink. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package media

import (
	"context"
	"fmt"
	"strings"

	"github.com/hotink/hotink/internal/platform/apperr"
	"github.com/hotink/hotink/internal/platform/database/schema"
	"github.com/hotink/hotink/internal/platform/dberr"
	"github.com/hotink/hotink/internal/platform/postgres"
)

// PostgresRepository implements [Repository] using pgx.
type PostgresRepository struct {
	db postgres.Querier
}

func NewPostgresRepository(db postgres.Querier) *PostgresRepository {
	return &PostgresRepository{db: db}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanMediafile(row rowScanner, extra ...any) (*Mediafile, error) {
	m := &Mediafile{}
	dest := []any{
		&m.ID, &m.AccountID, &m.Kind, &m.Title, &m.Description, &m.LinkAlternate, &m.Date,
		&m.ContentType, &m.FileName, &m.StorageKey, &m.SizeBytes, &m.Width, &m.Height,
		&m.CreatedAt, &m.UpdatedAt,
	}
	if err := row.Scan(append(dest, extra...)...); err != nil {
		return nil, err
	}
	return m, nil
}

func mediafileColumns(alias string) string {
	columns := schema.CoreMediaFile.Columns()
	if alias == "" {
		return strings.Join(columns, ", ")
	}
	for i, column := range columns {
		columns[i] = alias + "." + column
	}
	return strings.Join(columns, ", ")
}

// Create inserts the row with an empty storage key; the key depends on the id.
func (repository *PostgresRepository) Create(context context.Context, m *Mediafile) error {
	f := schema.CoreMediaFile
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, '', $9, $10, $11, NOW(), NOW())
		RETURNING %s, %s, %s
	`,
		f.Table, f.AccountID, f.Kind, f.Title, f.Description, f.LinkAlternate, f.Date, f.ContentType,
		f.FileName, f.StorageKey, f.SizeBytes, f.Width, f.Height, f.CreatedAt, f.UpdatedAt,
		f.ID, f.CreatedAt, f.UpdatedAt,
	)

	err := repository.db.QueryRow(context, query,
		m.AccountID, string(m.Kind), m.Title, m.Description, m.LinkAlternate, m.Date, m.ContentType,
		m.FileName, m.SizeBytes, m.Width, m.Height,
	).Scan(&m.ID, &m.CreatedAt, &m.UpdatedAt)
	return dberr.Wrap(err, "Mediafile")
}

func (repository *PostgresRepository) SetStorageKey(context context.Context, accountID, id int64, key string) error {
	f := schema.CoreMediaFile
	query := fmt.Sprintf(`UPDATE %s SET %s = $3, %s = NOW() WHERE %s = $1 AND %s = $2`,
		f.Table, f.StorageKey, f.UpdatedAt, f.AccountID, f.ID,
	)

	tag, err := repository.db.Exec(context, query, accountID, id, key)
	if err != nil {
		return dberr.Wrap(err, "Mediafile")
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound("Mediafile")
	}
	return nil
}

func (repository *PostgresRepository) Get(context context.Context, accountID, id int64) (*Mediafile, error) {
	f := schema.CoreMediaFile
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1 AND %s = $2`,
		mediafileColumns(""), f.Table, f.AccountID, f.ID,
	)

	m, err := scanMediafile(repository.db.QueryRow(context, query, accountID, id))
	if err != nil {
		return nil, dberr.Wrap(err, "Mediafile")
	}
	return m, nil
}

/*
List returns a page of the account's mediafiles, newest first.

When filter.ExcludeDocumentID is set, files already attached to that document
are left out so an attachment picker only offers new candidates.
*/
func (repository *PostgresRepository) List(context context.Context, accountID int64, filter Filter, limit, offset int) ([]*Mediafile, int, error) {
	f, w := schema.CoreMediaFile, schema.CoreWaxing

	var queryBuilder strings.Builder
	queryBuilder.WriteString(fmt.Sprintf(`SELECT %s, COUNT(*) OVER() AS totalcount FROM %s m WHERE m.%s = $1`,
		mediafileColumns("m"), f.Table, f.AccountID))

	args := []any{accountID}
	next := func(value any) int {
		args = append(args, value)
		return len(args)
	}

	if filter.Kind != "" {
		queryBuilder.WriteString(fmt.Sprintf(" AND m.%s = $%d", f.Kind, next(string(filter.Kind))))
	}

	if filter.Query != "" {
		n := next("%" + filter.Query + "%")
		queryBuilder.WriteString(fmt.Sprintf(" AND (m.%s ILIKE $%d OR m.%s ILIKE $%d)", f.Title, n, f.FileName, n))
	}

	if filter.ExcludeDocumentID != nil {
		queryBuilder.WriteString(fmt.Sprintf(" AND NOT EXISTS (SELECT 1 FROM %s w WHERE w.%s = m.%s AND w.%s = $%d)",
			w.Table, w.MediafileID, f.ID, w.DocumentID, next(*filter.ExcludeDocumentID)))
	}

	queryBuilder.WriteString(fmt.Sprintf(" ORDER BY m.%s DESC, m.%s DESC LIMIT $%d OFFSET $%d",
		f.CreatedAt, f.ID, next(limit), next(offset)))

	rows, err := repository.db.Query(context, queryBuilder.String(), args...)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "Mediafile")
	}
	defer rows.Close()

	mediafiles := make([]*Mediafile, 0)
	total := 0
	for rows.Next() {
		m, err := scanMediafile(rows, &total)
		if err != nil {
			return nil, 0, dberr.Wrap(err, "Mediafile")
		}
		mediafiles = append(mediafiles, m)
	}

	return mediafiles, total, dberr.Wrap(rows.Err(), "Mediafile")
}

// Delete removes the mediafile; its waxings cascade.
func (repository *PostgresRepository) Delete(context context.Context, accountID, id int64) (*Mediafile, error) {
	f := schema.CoreMediaFile
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1 AND %s = $2 RETURNING %s`,
		f.Table, f.AccountID, f.ID, mediafileColumns(""),
	)

	m, err := scanMediafile(repository.db.QueryRow(context, query, accountID, id))
	if err != nil {
		return nil, dberr.Wrap(err, "Mediafile")
	}
	return m, nil
}
