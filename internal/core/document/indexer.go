// Copyright (c) 2026 Hot Ink. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package document

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/hotink/hotink/internal/platform/database/schema"
	"github.com/hotink/hotink/internal/platform/dberr"
	"github.com/hotink/hotink/internal/platform/postgres"
)

// reindexBatchSize caps how many dirty documents one pass rebuilds.
const reindexBatchSize = 500

// # Full-Text Index

// PostgresIndexer maintains core.document.searchvector.
//
// Mutations only flip the delta flag; the vector itself is rebuilt in batches
// by [PostgresIndexer.ReindexDelta], so writes stay cheap and a burst of edits
// to one document costs a single rebuild.
type PostgresIndexer struct {
	db postgres.Querier
}

func NewPostgresIndexer(db postgres.Querier) *PostgresIndexer {
	return &PostgresIndexer{db: db}
}

// MarkDelta flags a document for the next reindex pass.
func (indexer *PostgresIndexer) MarkDelta(context context.Context, accountID, documentID int64) error {
	d := schema.CoreDocument
	query := fmt.Sprintf(`UPDATE %s SET %s = TRUE WHERE %s = $1 AND %s = $2`,
		d.Table, d.Delta, d.AccountID, d.ID,
	)

	_, err := indexer.db.Exec(context, query, accountID, documentID)
	return dberr.Wrap(err, "Document")
}

/*
ReindexDelta rebuilds the search vector of flagged documents and clears
their flag.

Weights:

  - A: title
  - B: subtitle and author names
  - C: waxing captions and tags
  - D: body text and publication date

Returns:
  - int: number of documents reindexed
  - error: database failures
*/
func (indexer *PostgresIndexer) ReindexDelta(context context.Context) (int, error) {
	d, s, a, w := schema.CoreDocument, schema.CoreAuthorship, schema.CoreAuthor, schema.CoreWaxing
	query := fmt.Sprintf(`
		UPDATE %s d SET
			%s =
				setweight(to_tsvector('simple', d.%s), 'A') ||
				setweight(to_tsvector('simple', d.%s), 'B') ||
				setweight(to_tsvector('simple', COALESCE((
					SELECT string_agg(a.%s, ' ') FROM %s s JOIN %s a ON a.%s = s.%s WHERE s.%s = d.%s
				), '')), 'B') ||
				setweight(to_tsvector('simple', COALESCE((
					SELECT string_agg(w.%s, ' ') FROM %s w WHERE w.%s = d.%s
				), '')), 'C') ||
				setweight(to_tsvector('simple', array_to_string(d.%s, ' ')), 'C') ||
				setweight(to_tsvector('simple', d.%s), 'D') ||
				setweight(to_tsvector('simple', COALESCE(to_char(d.%s, 'YYYY MM DD FMMonth'), '')), 'D'),
			%s = FALSE
		WHERE d.%s IN (
			SELECT %s FROM %s WHERE %s ORDER BY %s LIMIT $1 FOR UPDATE SKIP LOCKED
		)
	`,
		d.Table,
		d.SearchVector,
		d.Title,
		d.Subtitle,
		a.Name, s.Table, a.Table, a.ID, s.AuthorID, s.DocumentID, d.ID,
		w.Caption, w.Table, w.DocumentID, d.ID,
		d.Tags,
		d.Bodytext,
		d.PublishedAt,
		d.Delta,
		d.ID,
		d.ID, d.Table, d.Delta, d.ID,
	)

	tag, err := indexer.db.Exec(context, query, reindexBatchSize)
	if err != nil {
		return 0, dberr.Wrap(err, "Document")
	}
	return int(tag.RowsAffected()), nil
}

/*
RunIndexer calls ReindexDelta every interval until ctx is cancelled.
*/
func RunIndexer(ctx context.Context, indexer Indexer, interval time.Duration, logger *slog.Logger) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			count, err := indexer.ReindexDelta(ctx)
			if err != nil {
				logger.Error("search_reindex_failed", slog.Any("error", err))
				continue
			}
			if count > 0 {
				logger.Info("search_reindexed", slog.Int("documents", count))
			}
		case <-ctx.Done():
			return
		}
	}
}
