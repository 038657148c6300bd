// Copyright (c) 2026 Hot Ink. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package document

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/hotink/hotink/internal/platform/apperr"
	"github.com/hotink/hotink/internal/platform/database/schema"
	"github.com/hotink/hotink/internal/platform/dberr"
	"github.com/hotink/hotink/internal/platform/postgres"
)

// # PostgreSQL Repository

// PostgresRepository implements [Repository] using pgx.
type PostgresRepository struct {
	db postgres.Querier
}

// NewPostgresRepository constructs a PostgreSQL backed document store.
func NewPostgresRepository(db postgres.Querier) *PostgresRepository {
	return &PostgresRepository{db: db}
}

/*
selectDocument builds the projection shared by FindByID and List.

Bylines are aggregated into a JSON array and category ids into an int8 array so
a document is hydrated in a single round-trip.
*/
func selectDocument(extra string) string {
	d, s, a, c, w := schema.CoreDocument, schema.CoreAuthorship, schema.CoreAuthor, schema.CoreSorting, schema.CoreWaxing

	columns := make([]string, 0, len(d.Columns()))
	for _, column := range d.Columns() {
		columns = append(columns, "d."+column)
	}

	return fmt.Sprintf(`
		SELECT %s,
			COALESCE((
				SELECT json_agg(json_build_object(
					'id', s.%s, 'document_id', s.%s, 'author_id', s.%s, 'author_name', a.%s,
					'staff_position', s.%s, 'position', s.%s
				) ORDER BY s.%s, s.%s)
				FROM %s s
				JOIN %s a ON a.%s = s.%s
				WHERE s.%s = d.%s
			), '[]') AS authorships,
			COALESCE((
				SELECT array_agg(c.%s ORDER BY c.%s) FROM %s c WHERE c.%s = d.%s
			), '{}') AS categoryids,
			EXISTS (SELECT 1 FROM %s w WHERE w.%s = d.%s) AS hasmedia%s
		FROM %s d
	`,
		strings.Join(columns, ", "),
		s.ID, s.DocumentID, s.AuthorID, a.Name, s.StaffPosition, s.Position, s.Position, s.ID,
		s.Table, a.Table, a.ID, s.AuthorID, s.DocumentID, d.ID,
		c.CategoryID, c.CategoryID, c.Table, c.DocumentID, d.ID,
		w.Table, w.DocumentID, d.ID,
		extra,
		d.Table,
	)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanDocument(row rowScanner, extra ...any) (*Document, error) {
	doc := &Document{}
	var authorships []byte

	dest := []any{
		&doc.ID, &doc.AccountID, &doc.Kind, &doc.Title, &doc.Subtitle, &doc.Bodytext, &doc.Status,
		&doc.PublishedAt, &doc.SectionID, &doc.Tags, &doc.CreatedAt, &doc.UpdatedAt,
		&authorships, &doc.CategoryIDs, &doc.HasAttachedMedia,
	}
	if err := row.Scan(append(dest, extra...)...); err != nil {
		return nil, err
	}

	if err := json.Unmarshal(authorships, &doc.Authorships); err != nil {
		return nil, fmt.Errorf("decode authorships: %w", err)
	}
	for i := range doc.Authorships {
		doc.Authorships[i].AccountID = doc.AccountID
	}
	doc.AuthorsList = FormatAuthorsList(doc.AuthorNames())
	return doc, nil
}

// # Document Lifecycle

func (repository *PostgresRepository) Create(context context.Context, doc *Document) error {
	d := schema.CoreDocument
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, TRUE, NOW(), NOW())
		RETURNING %s, %s, %s
	`,
		d.Table, d.AccountID, d.Kind, d.Title, d.Subtitle, d.Bodytext, d.Status, d.PublishedAt,
		d.SectionID, d.Tags, d.Delta, d.CreatedAt, d.UpdatedAt,
		d.ID, d.CreatedAt, d.UpdatedAt,
	)

	err := repository.db.QueryRow(context, query,
		doc.AccountID, string(doc.Kind), doc.Title, doc.Subtitle, doc.Bodytext, doc.Status, doc.PublishedAt,
		doc.SectionID, doc.Tags,
	).Scan(&doc.ID, &doc.CreatedAt, &doc.UpdatedAt)
	return dberr.Wrap(err, "Document")
}

func (repository *PostgresRepository) FindByID(context context.Context, accountID, id int64) (*Document, error) {
	query := selectDocument("") + fmt.Sprintf(` WHERE d.%s = $1 AND d.%s = $2`,
		schema.CoreDocument.AccountID, schema.CoreDocument.ID,
	)

	doc, err := scanDocument(repository.db.QueryRow(context, query, accountID, id))
	if err != nil {
		return nil, dberr.Wrap(err, "Document")
	}
	return doc, nil
}

/*
List returns a filtered page of the account's documents and the total count.

The total is computed with COUNT(*) OVER() so the page and its count come back
in one query. A search query ranks results by relevance; otherwise the newest
documents come first.
*/
func (repository *PostgresRepository) List(context context.Context, accountID int64, filter Filter, limit, offset int) ([]*Document, int, error) {
	d := schema.CoreDocument

	var queryBuilder strings.Builder
	queryBuilder.WriteString(selectDocument(", COUNT(*) OVER() AS totalcount"))
	queryBuilder.WriteString(fmt.Sprintf(" WHERE d.%s = $1", d.AccountID))

	args := []any{accountID}
	next := func(value any) int {
		args = append(args, value)
		return len(args)
	}

	if filter.Kind != "" {
		queryBuilder.WriteString(fmt.Sprintf(" AND d.%s = $%d", d.Kind, next(string(filter.Kind))))
	}

	if filter.Published != nil {
		if *filter.Published {
			queryBuilder.WriteString(fmt.Sprintf(" AND d.%s = $%d", d.Status, next(StatusPublished)))
		} else {
			queryBuilder.WriteString(fmt.Sprintf(" AND d.%s IS NULL", d.Status))
		}
	}

	if len(filter.Categories) > 0 {
		queryBuilder.WriteString(fmt.Sprintf(" AND EXISTS (SELECT 1 FROM %s c WHERE c.%s = d.%s AND c.%s = ANY($%d))",
			schema.CoreSorting.Table, schema.CoreSorting.DocumentID, d.ID, schema.CoreSorting.CategoryID, next(filter.Categories)))
	}

	if len(filter.Tags) > 0 {
		queryBuilder.WriteString(fmt.Sprintf(" AND d.%s @> $%d::text[]", d.Tags, next(filter.Tags)))
	}

	order := fmt.Sprintf("d.%s DESC, d.%s DESC", d.CreatedAt, d.ID)
	if filter.Query != "" {
		n := next(filter.Query)
		queryBuilder.WriteString(fmt.Sprintf(" AND d.%s @@ websearch_to_tsquery('simple', $%d)", d.SearchVector, n))
		order = fmt.Sprintf("ts_rank(d.%s, websearch_to_tsquery('simple', $%d)) DESC, %s", d.SearchVector, n, order)
	}

	queryBuilder.WriteString(fmt.Sprintf(" ORDER BY %s LIMIT $%d OFFSET $%d", order, next(limit), next(offset)))

	rows, err := repository.db.Query(context, queryBuilder.String(), args...)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "Document")
	}
	defer rows.Close()

	documents := make([]*Document, 0)
	total := 0
	for rows.Next() {
		doc, err := scanDocument(rows, &total)
		if err != nil {
			return nil, 0, dberr.Wrap(err, "Document")
		}
		documents = append(documents, doc)
	}

	return documents, total, dberr.Wrap(rows.Err(), "Document")
}

// Update writes the document's editable content fields.
func (repository *PostgresRepository) Update(context context.Context, doc *Document) error {
	d := schema.CoreDocument
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $3, %s = $4, %s = $5, %s = $6, %s = $7, %s = $8, %s = NOW()
		WHERE %s = $1 AND %s = $2
		RETURNING %s
	`,
		d.Table,
		d.Kind, d.Title, d.Subtitle, d.Bodytext, d.SectionID, d.Tags, d.UpdatedAt,
		d.AccountID, d.ID,
		d.UpdatedAt,
	)

	err := repository.db.QueryRow(context, query,
		doc.AccountID, doc.ID, string(doc.Kind), doc.Title, doc.Subtitle, doc.Bodytext, doc.SectionID, doc.Tags,
	).Scan(&doc.UpdatedAt)
	return dberr.Wrap(err, "Document")
}

// SetPublication persists the publication pair exactly as given.
func (repository *PostgresRepository) SetPublication(context context.Context, accountID, id int64, status *string, publishedAt *time.Time) error {
	d := schema.CoreDocument
	query := fmt.Sprintf(`UPDATE %s SET %s = $3, %s = $4, %s = NOW() WHERE %s = $1 AND %s = $2`,
		d.Table, d.Status, d.PublishedAt, d.UpdatedAt, d.AccountID, d.ID,
	)

	tag, err := repository.db.Exec(context, query, accountID, id, status, publishedAt)
	if err != nil {
		return dberr.Wrap(err, "Document")
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound("Document")
	}
	return nil
}

// Delete removes the document; authorships, sortings and waxings cascade.
func (repository *PostgresRepository) Delete(context context.Context, accountID, id int64) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1 AND %s = $2`,
		schema.CoreDocument.Table, schema.CoreDocument.AccountID, schema.CoreDocument.ID,
	)

	tag, err := repository.db.Exec(context, query, accountID, id)
	if err != nil {
		return dberr.Wrap(err, "Document")
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound("Document")
	}
	return nil
}
