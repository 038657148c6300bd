// Copyright (c) 2026 Hot Ink. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package author

import (
	"context"
	"fmt"
	"strings"

	"github.com/hotink/hotink/internal/platform/database/schema"
	"github.com/hotink/hotink/internal/platform/dberr"
	"github.com/hotink/hotink/internal/platform/postgres"
)

type PostgresRepository struct {
	db postgres.Querier
}

func NewPostgresRepository(db postgres.Querier) *PostgresRepository {
	return &PostgresRepository{db: db}
}

var authorColumns = strings.Join([]string{
	schema.CoreAuthor.ID, schema.CoreAuthor.AccountID, schema.CoreAuthor.Name,
	schema.CoreAuthor.CreatedAt, schema.CoreAuthor.UpdatedAt,
}, ", ")

/*
FindOrCreate returns the author named exactly name in the account, inserting it
when absent.

The no-op DO UPDATE makes RETURNING yield the existing row on conflict, so two
concurrent callers always converge on the same id.
*/
func (repository *PostgresRepository) FindOrCreate(context context.Context, accountID int64, name string) (*Author, error) {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s)
		VALUES ($1, $2, NOW(), NOW())
		ON CONFLICT (%s, %s) DO UPDATE SET %s = EXCLUDED.%s
		RETURNING %s
	`,
		schema.CoreAuthor.Table, schema.CoreAuthor.AccountID, schema.CoreAuthor.Name,
		schema.CoreAuthor.CreatedAt, schema.CoreAuthor.UpdatedAt,
		schema.CoreAuthor.AccountID, schema.CoreAuthor.Name,
		schema.CoreAuthor.Name, schema.CoreAuthor.Name,
		authorColumns,
	)

	a := &Author{}
	err := repository.db.QueryRow(context, query, accountID, name).Scan(
		&a.ID, &a.AccountID, &a.Name, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		return nil, dberr.Wrap(err, "Author")
	}
	return a, nil
}

func (repository *PostgresRepository) Get(context context.Context, accountID, id int64) (*Author, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1 AND %s = $2`,
		authorColumns, schema.CoreAuthor.Table, schema.CoreAuthor.AccountID, schema.CoreAuthor.ID,
	)

	a := &Author{}
	err := repository.db.QueryRow(context, query, accountID, id).Scan(
		&a.ID, &a.AccountID, &a.Name, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		return nil, dberr.Wrap(err, "Author")
	}
	return a, nil
}

func (repository *PostgresRepository) List(context context.Context, accountID int64, filter Filter, limit, offset int) ([]*Author, int, error) {
	where := fmt.Sprintf("WHERE %s = $1", schema.CoreAuthor.AccountID)
	args := []any{accountID}

	if filter.Query != "" {
		args = append(args, "%"+filter.Query+"%")
		where += fmt.Sprintf(" AND %s ILIKE $%d", schema.CoreAuthor.Name, len(args))
	}

	var total int
	countQuery := fmt.Sprintf(`SELECT count(*) FROM %s %s`, schema.CoreAuthor.Table, where)
	if err := repository.db.QueryRow(context, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, "Author")
	}

	query := fmt.Sprintf(`SELECT %s FROM %s %s ORDER BY %s ASC LIMIT $%d OFFSET $%d`,
		authorColumns, schema.CoreAuthor.Table, where, schema.CoreAuthor.Name, len(args)+1, len(args)+2,
	)
	args = append(args, limit, offset)

	rows, err := repository.db.Query(context, query, args...)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "Author")
	}
	defer rows.Close()

	authors := []*Author{}
	for rows.Next() {
		a := &Author{}
		if err := rows.Scan(&a.ID, &a.AccountID, &a.Name, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, 0, dberr.Wrap(err, "Author")
		}
		authors = append(authors, a)
	}

	return authors, total, dberr.Wrap(rows.Err(), "Author")
}
