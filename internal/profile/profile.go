// Package profile manages the user rows holding resume material and
// the daily outreach counters.
package profile

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"scope/swipe-service/internal/model"
)

// ErrNotFound is returned when no profile row exists for the user.
var ErrNotFound = fmt.Errorf("profile not found")

// Store owns the profiles table.
type Store struct {
	pool *pgxpool.Pool
}

// NewStore returns a configured Store.
func NewStore(pool *pgxpool.Pool) *Store {
	return &Store{pool: pool}
}

// Get returns the user's profile.
func (s *Store) Get(ctx context.Context, userID string) (*model.Profile, error) {
	var p model.Profile
	err := s.pool.QueryRow(ctx,
		`SELECT user_id, headline, resume_text, searches_used, emails_used,
		        last_usage_reset::text, created_at, updated_at
		 FROM profiles WHERE user_id = $1`,
		userID,
	).Scan(
		&p.UserID, &p.Headline, &p.ResumeText, &p.SearchesUsed,
		&p.EmailsUsed, &p.LastUsageReset, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, ErrNotFound
	}
	return &p, nil
}

// Upsert creates or updates the user's headline and resume text. The
// counters are never touched here — only the quota store moves them.
func (s *Store) Upsert(ctx context.Context, userID, headline, resumeText string) (*model.Profile, error) {
	var p model.Profile
	err := s.pool.QueryRow(ctx,
		`INSERT INTO profiles (user_id, headline, resume_text)
		 VALUES ($1, $2, $3)
		 ON CONFLICT (user_id) DO UPDATE
		 SET headline = EXCLUDED.headline,
		     resume_text = EXCLUDED.resume_text,
		     updated_at = NOW()
		 RETURNING user_id, headline, resume_text, searches_used, emails_used,
		           last_usage_reset::text, created_at, updated_at`,
		userID, headline, resumeText,
	).Scan(
		&p.UserID, &p.Headline, &p.ResumeText, &p.SearchesUsed,
		&p.EmailsUsed, &p.LastUsageReset, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("upsert profile: %w", err)
	}
	return &p, nil
}
