// Copyright (c) 2026 Hot Ink. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package document

import (
	"context"
	"fmt"

	"github.com/hotink/hotink/internal/platform/apperr"
	"github.com/hotink/hotink/internal/platform/database/schema"
	"github.com/hotink/hotink/internal/platform/dberr"
)

// # Authorships

/*
ListAuthorships returns the document's bylines in display order.
*/
func (repository *PostgresRepository) ListAuthorships(context context.Context, accountID, documentID int64) ([]Authorship, error) {
	s, a := schema.CoreAuthorship, schema.CoreAuthor
	query := fmt.Sprintf(`
		SELECT s.%s, s.%s, s.%s, s.%s, a.%s, s.%s, s.%s
		FROM %s s
		JOIN %s a ON a.%s = s.%s
		WHERE s.%s = $1 AND s.%s = $2
		ORDER BY s.%s, s.%s
	`,
		s.ID, s.AccountID, s.DocumentID, s.AuthorID, a.Name, s.StaffPosition, s.Position,
		s.Table,
		a.Table, a.ID, s.AuthorID,
		s.AccountID, s.DocumentID,
		s.Position, s.ID,
	)

	rows, err := repository.db.Query(context, query, accountID, documentID)
	if err != nil {
		return nil, dberr.Wrap(err, "Authorship")
	}
	defer rows.Close()

	authorships := make([]Authorship, 0)
	for rows.Next() {
		var item Authorship
		if err := rows.Scan(&item.ID, &item.AccountID, &item.DocumentID, &item.AuthorID, &item.AuthorName, &item.StaffPosition, &item.Position); err != nil {
			return nil, dberr.Wrap(err, "Authorship")
		}
		authorships = append(authorships, item)
	}
	return authorships, dberr.Wrap(rows.Err(), "Authorship")
}

/*
AddAuthorship appends a byline after the document's current last one.

The insert only happens when both the document and the author belong to the
account; otherwise nothing is written and NOT_FOUND is returned. Attaching the
same author twice violates the (document, author) key and yields CONFLICT.
*/
func (repository *PostgresRepository) AddAuthorship(context context.Context, item *Authorship) error {
	s, a, d := schema.CoreAuthorship, schema.CoreAuthor, schema.CoreDocument
	query := fmt.Sprintf(`
		WITH inserted AS (
			INSERT INTO %s (%s, %s, %s, %s, %s, %s)
			SELECT $1, $2, $3, $4,
				COALESCE((SELECT MAX(%s) + 1 FROM %s WHERE %s = $2), 0),
				NOW()
			WHERE EXISTS (SELECT 1 FROM %s WHERE %s = $1 AND %s = $2)
			  AND EXISTS (SELECT 1 FROM %s WHERE %s = $1 AND %s = $3)
			RETURNING %s, %s, %s
		)
		SELECT i.%s, i.%s, a.%s
		FROM inserted i
		JOIN %s a ON a.%s = i.%s
	`,
		s.Table, s.AccountID, s.DocumentID, s.AuthorID, s.StaffPosition, s.Position, s.CreatedAt,
		s.Position, s.Table, s.DocumentID,
		d.Table, d.AccountID, d.ID,
		a.Table, a.AccountID, a.ID,
		s.ID, s.Position, s.AuthorID,
		s.ID, s.Position, a.Name,
		a.Table, a.ID, s.AuthorID,
	)

	err := repository.db.QueryRow(context, query, item.AccountID, item.DocumentID, item.AuthorID, item.StaffPosition).
		Scan(&item.ID, &item.Position, &item.AuthorName)
	return dberr.Wrap(err, "Authorship")
}

// UpdateAuthorship rewrites the staff position snapshot of one byline.
func (repository *PostgresRepository) UpdateAuthorship(context context.Context, accountID, documentID, id int64, staffPosition *string) (*Authorship, error) {
	s, a := schema.CoreAuthorship, schema.CoreAuthor
	query := fmt.Sprintf(`
		UPDATE %s s
		SET %s = $4
		FROM %s a
		WHERE s.%s = $1 AND s.%s = $2 AND s.%s = $3 AND a.%s = s.%s
		RETURNING s.%s, s.%s, s.%s, s.%s, a.%s, s.%s, s.%s
	`,
		s.Table,
		s.StaffPosition,
		a.Table,
		s.AccountID, s.DocumentID, s.ID, a.ID, s.AuthorID,
		s.ID, s.AccountID, s.DocumentID, s.AuthorID, a.Name, s.StaffPosition, s.Position,
	)

	item := &Authorship{}
	err := repository.db.QueryRow(context, query, accountID, documentID, id, staffPosition).Scan(
		&item.ID, &item.AccountID, &item.DocumentID, &item.AuthorID, &item.AuthorName, &item.StaffPosition, &item.Position,
	)
	if err != nil {
		return nil, dberr.Wrap(err, "Authorship")
	}
	return item, nil
}

func (repository *PostgresRepository) RemoveAuthorship(context context.Context, accountID, documentID, id int64) error {
	s := schema.CoreAuthorship
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1 AND %s = $2 AND %s = $3`,
		s.Table, s.AccountID, s.DocumentID, s.ID,
	)

	tag, err := repository.db.Exec(context, query, accountID, documentID, id)
	if err != nil {
		return dberr.Wrap(err, "Authorship")
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound("Authorship")
	}
	return nil
}

// # Sortings

/*
AddSorting files the document under a category. Both must belong to the
account. An existing pair is left alone.
*/
func (repository *PostgresRepository) AddSorting(context context.Context, accountID, documentID, categoryID int64) error {
	c, d, cat := schema.CoreSorting, schema.CoreDocument, schema.CoreCategory
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s)
		SELECT $1, $2, $3, NOW()
		WHERE EXISTS (SELECT 1 FROM %s WHERE %s = $1 AND %s = $2)
		  AND EXISTS (SELECT 1 FROM %s WHERE %s = $1 AND %s = $3)
		ON CONFLICT (%s, %s) DO NOTHING
	`,
		c.Table, c.AccountID, c.DocumentID, c.CategoryID, c.CreatedAt,
		d.Table, d.AccountID, d.ID,
		cat.Table, cat.AccountID, cat.ID,
		c.DocumentID, c.CategoryID,
	)

	_, err := repository.db.Exec(context, query, accountID, documentID, categoryID)
	return dberr.Wrap(err, "Sorting")
}

// RemoveSorting is a no-op when the pair does not exist.
func (repository *PostgresRepository) RemoveSorting(context context.Context, accountID, documentID, categoryID int64) error {
	c := schema.CoreSorting
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1 AND %s = $2 AND %s = $3`,
		c.Table, c.AccountID, c.DocumentID, c.CategoryID,
	)

	_, err := repository.db.Exec(context, query, accountID, documentID, categoryID)
	return dberr.Wrap(err, "Sorting")
}
