// Copyright (c) 2026 Hot Ink. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package tag

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

func (repository *PostgresRepository) List(context context.Context, accountID int64, prefix string, limit int) ([]*Tag, error) {
	d := schema.CoreDocument
	query := fmt.Sprintf(`
		SELECT t.name, COUNT(*) AS uses
		FROM %s d, UNNEST(d.%s) AS t(name)
		WHERE d.%s = $1 AND ($2 = '' OR t.name ILIKE $2 || '%%')
		GROUP BY t.name
		ORDER BY uses DESC, t.name ASC
		LIMIT $3
	`, d.Table, d.Tags, d.AccountID)

	rows, err := repository.db.Query(context, query, accountID, prefix, limit)
	if err != nil {
		return nil, dberr.Wrap(err, "Tag")
	}
	defer rows.Close()

	tags := make([]*Tag, 0)
	for rows.Next() {
		t := &Tag{}
		if err := rows.Scan(&t.Name, &t.Count); err != nil {
			return nil, dberr.Wrap(err, "Tag")
		}
		tags = append(tags, t)
	}
	return tags, dberr.Wrap(rows.Err(), "Tag")
}
