package quota

import (
	"context"
	"errors"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Store persists the per-user counters in the profiles table.
type Store struct {
	pool        *pgxpool.Pool
	maxSearches int
	maxEmails   int
}

// NewStore returns a configured Store.
func NewStore(pool *pgxpool.Pool, maxSearches, maxEmails int) *Store {
	return &Store{pool: pool, maxSearches: maxSearches, maxEmails: maxEmails}
}

// Max returns the daily cap for a counter kind.
func (s *Store) Max(kind Kind) int {
	if kind == KindEmails {
		return s.maxEmails
	}
	return s.maxSearches
}

// Consume checks and charges one unit of the given kind for userID.
//
// The check-and-increment is a single conditional UPDATE so that
// concurrent requests cannot both pass the cap check on the same
// stored value. A day rollover resets both counters in the same
// statement. When the stored state cannot be read at all the call
// fails open with full quota.
func (s *Store) Consume(ctx context.Context, userID string, kind Kind) Result {
	today := Today()
	max := s.Max(kind)

	var searches, emails int
	err := s.pool.QueryRow(ctx,
		`UPDATE profiles
		 SET searches_used = CASE WHEN last_usage_reset::text = $2 THEN searches_used ELSE 0 END
		                   + CASE WHEN $3 = 'searches' THEN 1 ELSE 0 END,
		     emails_used   = CASE WHEN last_usage_reset::text = $2 THEN emails_used ELSE 0 END
		                   + CASE WHEN $3 = 'emails' THEN 1 ELSE 0 END,
		     last_usage_reset = $2::date,
		     updated_at       = NOW()
		 WHERE user_id = $1
		   AND (last_usage_reset::text <> $2
		        OR (CASE WHEN $3 = 'searches' THEN searches_used ELSE emails_used END) < $4)
		 RETURNING searches_used, emails_used`,
		userID, today, string(kind), max,
	).Scan(&searches, &emails)

	if err == nil {
		count := searches
		if kind == KindEmails {
			count = emails
		}
		return Result{Allowed: true, NewCount: count, NewDate: today, Remaining: max - count}
	}

	if !errors.Is(err, pgx.ErrNoRows) {
		slog.Warn("quota consume failed, allowing request", "userId", userID, "kind", kind, "err", err)
		return FailOpen(today, max)
	}

	// No row updated: either the user is at cap, or the profile row is
	// missing. Distinguish with a plain read; a failed read fails open.
	var storedDate string
	err = s.pool.QueryRow(ctx,
		`SELECT searches_used, emails_used, last_usage_reset::text
		 FROM profiles WHERE user_id = $1`,
		userID,
	).Scan(&searches, &emails, &storedDate)
	if err != nil {
		slog.Warn("quota read failed, allowing request", "userId", userID, "kind", kind, "err", err)
		return FailOpen(today, max)
	}

	count := searches
	if kind == KindEmails {
		count = emails
	}
	return Decide(count, storedDate, today, max)
}
