// Copyright (c) 2026 Hot Ink. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package waxing

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

func waxingColumns() string {
	w := schema.CoreWaxing
	return fmt.Sprintf("%s, %s, %s, %s, %s, %s", w.ID, w.AccountID, w.DocumentID, w.MediafileID, w.Caption, w.CreatedAt)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanWaxing(row rowScanner) (*Waxing, error) {
	w := &Waxing{}
	if err := row.Scan(&w.ID, &w.AccountID, &w.DocumentID, &w.MediafileID, &w.Caption, &w.CreatedAt); err != nil {
		return nil, err
	}
	return w, nil
}

/*
Create inserts a link only when both ends belong to the account.

The EXISTS guards turn a foreign document or mediafile into an empty result,
which surfaces as NOT_FOUND rather than a cross-account link.
*/
func (repository *PostgresRepository) Create(context context.Context, w *Waxing) error {
	x, d, m := schema.CoreWaxing, schema.CoreDocument, schema.CoreMediaFile
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s)
		SELECT $1, $2, $3, $4, NOW()
		WHERE EXISTS (SELECT 1 FROM %s WHERE %s = $2 AND %s = $1)
		  AND EXISTS (SELECT 1 FROM %s WHERE %s = $3 AND %s = $1)
		RETURNING %s, %s
	`,
		x.Table, x.AccountID, x.DocumentID, x.MediafileID, x.Caption, x.CreatedAt,
		d.Table, d.ID, d.AccountID,
		m.Table, m.ID, m.AccountID,
		x.ID, x.CreatedAt,
	)

	err := repository.db.QueryRow(context, query, w.AccountID, w.DocumentID, w.MediafileID, w.Caption).Scan(&w.ID, &w.CreatedAt)
	return dberr.Wrap(err, "Document or mediafile")
}

func (repository *PostgresRepository) Get(context context.Context, accountID, id int64) (*Waxing, error) {
	w := schema.CoreWaxing
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1 AND %s = $2`, waxingColumns(), w.Table, w.AccountID, w.ID)

	waxing, err := scanWaxing(repository.db.QueryRow(context, query, accountID, id))
	if err != nil {
		return nil, dberr.Wrap(err, "Waxing")
	}
	return waxing, nil
}

func (repository *PostgresRepository) ListByDocument(context context.Context, accountID, documentID int64) ([]*Waxing, error) {
	w := schema.CoreWaxing
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1 AND %s = $2 ORDER BY %s ASC`,
		waxingColumns(), w.Table, w.AccountID, w.DocumentID, w.ID,
	)

	rows, err := repository.db.Query(context, query, accountID, documentID)
	if err != nil {
		return nil, dberr.Wrap(err, "Waxing")
	}
	defer rows.Close()

	waxings := make([]*Waxing, 0)
	for rows.Next() {
		waxing, err := scanWaxing(rows)
		if err != nil {
			return nil, dberr.Wrap(err, "Waxing")
		}
		waxings = append(waxings, waxing)
	}
	return waxings, dberr.Wrap(rows.Err(), "Waxing")
}

func (repository *PostgresRepository) UpdateCaption(context context.Context, accountID, id int64, caption string) (*Waxing, error) {
	w := schema.CoreWaxing
	query := fmt.Sprintf(`UPDATE %s SET %s = $3 WHERE %s = $1 AND %s = $2 RETURNING %s`,
		w.Table, w.Caption, w.AccountID, w.ID, waxingColumns(),
	)

	waxing, err := scanWaxing(repository.db.QueryRow(context, query, accountID, id, caption))
	if err != nil {
		return nil, dberr.Wrap(err, "Waxing")
	}
	return waxing, nil
}

func (repository *PostgresRepository) Delete(context context.Context, accountID, id int64) (*Waxing, error) {
	w := schema.CoreWaxing
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1 AND %s = $2 RETURNING %s`,
		w.Table, w.AccountID, w.ID, waxingColumns(),
	)

	waxing, err := scanWaxing(repository.db.QueryRow(context, query, accountID, id))
	if err != nil {
		return nil, dberr.Wrap(err, "Waxing")
	}
	return waxing, nil
}
