// Copyright (c) 2026 Hot Ink. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package category

import (
	"context"
	"fmt"

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

func (repository *PostgresRepository) Get(context context.Context, accountID, id int64) (*Category, error) {
	query := fmt.Sprintf(`SELECT %s, %s, %s, %s, %s FROM %s WHERE %s = $1 AND %s = $2`,
		schema.CoreCategory.ID, schema.CoreCategory.AccountID, schema.CoreCategory.Name,
		schema.CoreCategory.Slug, schema.CoreCategory.CreatedAt,
		schema.CoreCategory.Table, schema.CoreCategory.AccountID, schema.CoreCategory.ID,
	)

	c := &Category{}
	err := repository.db.QueryRow(context, query, accountID, id).Scan(&c.ID, &c.AccountID, &c.Name, &c.Slug, &c.CreatedAt)
	if err != nil {
		return nil, dberr.Wrap(err, "Category")
	}
	return c, nil
}

func (repository *PostgresRepository) List(context context.Context, accountID int64) ([]*Category, error) {
	query := fmt.Sprintf(`SELECT %s, %s, %s, %s, %s FROM %s WHERE %s = $1 ORDER BY %s ASC`,
		schema.CoreCategory.ID, schema.CoreCategory.AccountID, schema.CoreCategory.Name,
		schema.CoreCategory.Slug, schema.CoreCategory.CreatedAt,
		schema.CoreCategory.Table, schema.CoreCategory.AccountID, schema.CoreCategory.Name,
	)

	rows, err := repository.db.Query(context, query, accountID)
	if err != nil {
		return nil, dberr.Wrap(err, "Category")
	}
	defer rows.Close()

	categories := make([]*Category, 0)
	for rows.Next() {
		c := &Category{}
		if err := rows.Scan(&c.ID, &c.AccountID, &c.Name, &c.Slug, &c.CreatedAt); err != nil {
			return nil, dberr.Wrap(err, "Category")
		}
		categories = append(categories, c)
	}
	return categories, dberr.Wrap(rows.Err(), "Category")
}

func (repository *PostgresRepository) Create(context context.Context, c *Category) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s)
		VALUES ($1, $2, $3, NOW())
		RETURNING %s, %s
	`,
		schema.CoreCategory.Table, schema.CoreCategory.AccountID, schema.CoreCategory.Name,
		schema.CoreCategory.Slug, schema.CoreCategory.CreatedAt,
		schema.CoreCategory.ID, schema.CoreCategory.CreatedAt,
	)

	err := repository.db.QueryRow(context, query, c.AccountID, c.Name, c.Slug).Scan(&c.ID, &c.CreatedAt)
	return dberr.Wrap(err, "Category")
}
