package feed

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/jackc/pgx/v5/pgxpool"

	"scope/swipe-service/internal/model"
)

// Store owns the listings and swipes tables.
type Store struct {
	pool *pgxpool.Pool
}

// NewStore returns a configured Store.
func NewStore(pool *pgxpool.Pool) *Store {
	return &Store{pool: pool}
}

// LoadStoredListings returns curated and scraped listings, newest first.
func (s *Store) LoadStoredListings(ctx context.Context, limit int) ([]model.Listing, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT source, source_job_id, title, company, location, description,
		        COALESCE(salary_min, 0), COALESCE(salary_max, 0), source_url,
		        COALESCE(posted_at, '')
		 FROM listings
		 ORDER BY created_at DESC
		 LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("query listings: %w", err)
	}
	defer rows.Close()

	var listings []model.Listing
	for rows.Next() {
		var l model.Listing
		if err := rows.Scan(
			&l.Source, &l.SourceJobID, &l.Title, &l.Company, &l.Location,
			&l.Description, &l.SalaryMin, &l.SalaryMax, &l.SourceURL, &l.PostedAt,
		); err != nil {
			return nil, fmt.Errorf("scan listing: %w", err)
		}
		listings = append(listings, l)
	}
	return listings, rows.Err()
}

// LoadSwipeKeys returns the identity keys of every listing the user
// has already swiped.
func (s *Store) LoadSwipeKeys(ctx context.Context, userID string) ([]Key, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT source, source_job_id FROM swipes WHERE user_id = $1`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("query swipes: %w", err)
	}
	defer rows.Close()

	var keys []Key
	for rows.Next() {
		var k Key
		if err := rows.Scan(&k.Source, &k.SourceJobID); err != nil {
			return nil, fmt.Errorf("scan swipe key: %w", err)
		}
		keys = append(keys, k)
	}
	return keys, rows.Err()
}

// RecordSwipe appends a swipe. The log is append-only: a repeated
// swipe on the same listing is ignored, the first decision stands.
// Returns true when a new row was inserted.
func (s *Store) RecordSwipe(ctx context.Context, userID string, key Key, action string) (bool, error) {
	tag, err := s.pool.Exec(ctx,
		`INSERT INTO swipes (user_id, source, source_job_id, action)
		 VALUES ($1, $2, $3, $4)
		 ON CONFLICT (user_id, source, source_job_id) DO NOTHING`,
		userID, key.Source, key.SourceJobID, action,
	)
	if err != nil {
		return false, fmt.Errorf("insert swipe: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// UpsertListings inserts scraped listings, skipping rows whose
// (source, source_job_id) identity already exists.
// Returns (inserted, duplicate) counts.
func (s *Store) UpsertListings(ctx context.Context, listings []model.Listing) (inserted, dupes int) {
	for _, l := range listings {
		raw, err := json.Marshal(l)
		if err != nil {
			log.Printf("[feed] json.Marshal error: %v", err)
			continue
		}

		tag, err := s.pool.Exec(ctx,
			`INSERT INTO listings (source, source_job_id, title, company, location,
			                       description, salary_min, salary_max, source_url,
			                       posted_at, raw_data)
			 SELECT $1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11::jsonb
			 WHERE NOT EXISTS (
			   SELECT 1 FROM listings WHERE source = $1 AND source_job_id = $2
			 )`,
			l.Source, l.SourceJobID, l.Title, l.Company, l.Location,
			l.Description, l.SalaryMin, l.SalaryMax, l.SourceURL,
			l.PostedAt, string(raw),
		)
		if err != nil {
			log.Printf("[feed] DB insert error: %v", err)
			continue
		}

		if tag.RowsAffected() == 0 {
			dupes++
		} else {
			inserted++
		}
	}
	return inserted, dupes
}
