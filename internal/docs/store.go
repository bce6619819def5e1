package docs

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"scope/swipe-service/internal/model"
)

// Store owns the documents table.
type Store struct {
	pool *pgxpool.Pool
}

// NewStore returns a configured Store.
func NewStore(pool *pgxpool.Pool) *Store {
	return &Store{pool: pool}
}

// Insert persists a generated document.
func (s *Store) Insert(ctx context.Context, d model.Document) error {
	_, err := s.pool.Exec(ctx,
		`INSERT INTO documents (user_id, source, source_job_id, kind, content, model)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		d.UserID, d.Source, d.SourceJobID, d.Kind, d.Content, d.Model,
	)
	if err != nil {
		return fmt.Errorf("insert document: %w", err)
	}
	return nil
}

// ListByUser returns the user's generated documents, newest first.
func (s *Store) ListByUser(ctx context.Context, userID string) ([]model.Document, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT id, user_id, source, source_job_id, kind, content, model, created_at
		 FROM documents
		 WHERE user_id = $1
		 ORDER BY created_at DESC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("query documents: %w", err)
	}
	defer rows.Close()

	docs := make([]model.Document, 0)
	for rows.Next() {
		var d model.Document
		if err := rows.Scan(
			&d.ID, &d.UserID, &d.Source, &d.SourceJobID,
			&d.Kind, &d.Content, &d.Model, &d.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan document: %w", err)
		}
		docs = append(docs, d)
	}
	return docs, rows.Err()
}
