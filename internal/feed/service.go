package feed

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"scope/swipe-service/internal/model"
)

const (
	storedListingLimit = 100
	liveCacheTTL       = 30 * time.Minute
)

// Redis channels shared with the document worker and the gateway SSE
// forwarder.
const (
	ChannelGenerateDocs = "CMD_GENERATE_DOCS"
	ChannelSwipeEvent   = "EVENT_SWIPE"
)

// GenerateDocsCommand is published on every like so the document
// worker can tailor a CV and cover letter for the listing. The full
// listing snapshot rides along because live aggregator results are
// not persisted.
type GenerateDocsCommand struct {
	UserID  string        `json:"userId"`
	Listing model.Listing `json:"listing"`
}

// Service assembles the deck and records swipes.
// It is transport-agnostic: used by the HTTP handler.
type Service struct {
	store   *Store
	rdb     *redis.Client
	fetcher *JSearchFetcher
}

// NewService returns a configured Service.
func NewService(store *Store, rdb *redis.Client, fetcher *JSearchFetcher) *Service {
	return &Service{store: store, rdb: rdb, fetcher: fetcher}
}

// BuildDeck returns every listing the user has not swiped: stored
// listings first (curated + scraped startups), then live aggregator
// results, each collection keeping its own order.
//
// A failed live fetch degrades to a stored-only deck rather than
// failing the request.
func (s *Service) BuildDeck(ctx context.Context, userID, query, location string) ([]model.Listing, error) {
	stored, err := s.store.LoadStoredListings(ctx, storedListingLimit)
	if err != nil {
		return nil, fmt.Errorf("load stored listings: %w", err)
	}

	live, err := s.liveListings(ctx, query, location)
	if err != nil {
		slog.Warn("live fetch failed, serving stored listings only", "err", err)
		live = nil
	}

	prior, err := s.store.LoadSwipeKeys(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("load swipe keys: %w", err)
	}

	return FreshListings(stored, live, prior), nil
}

// liveListings serves aggregator results from the Redis cache when
// possible, hitting the API only on a miss.
func (s *Service) liveListings(ctx context.Context, query, location string) ([]model.Listing, error) {
	cacheKey := fmt.Sprintf("feed:live:%s:%s", query, location)

	if cached, err := s.rdb.Get(ctx, cacheKey).Bytes(); err == nil {
		var listings []model.Listing
		if err := json.Unmarshal(cached, &listings); err == nil {
			return listings, nil
		}
		// Unreadable cache entry: fall through to a fresh fetch.
	}

	listings, err := s.fetcher.Fetch(ctx, query, location)
	if err != nil {
		return nil, err
	}

	if len(listings) > 0 {
		if raw, err := json.Marshal(listings); err == nil {
			if err := s.rdb.Set(ctx, cacheKey, raw, liveCacheTTL).Err(); err != nil {
				slog.Warn("feed cache write failed", "err", err)
			}
		}
	}

	return listings, nil
}

// Swipe records the decision and, on a like, publishes the document
// generation command. Publish failures are non-fatal: the swipe is
// already durable.
func (s *Service) Swipe(ctx context.Context, userID, action string, l model.Listing) (bool, error) {
	if action != model.ActionLike && action != model.ActionPass {
		return false, &ValidationError{Msg: fmt.Sprintf("unknown swipe action %q", action)}
	}
	if l.Source == "" {
		return false, &ValidationError{Msg: "listing source is required"}
	}

	recorded, err := s.store.RecordSwipe(ctx, userID, KeyOf(l), action)
	if err != nil {
		return false, err
	}

	if recorded && action == model.ActionLike {
		cmd, _ := json.Marshal(GenerateDocsCommand{UserID: userID, Listing: l})
		if err := s.rdb.Publish(ctx, ChannelGenerateDocs, cmd).Err(); err != nil {
			slog.Warn("publish CMD_GENERATE_DOCS failed", "err", err)
		}
	}

	event, _ := json.Marshal(map[string]string{
		"type":        "EVENT_SWIPE",
		"userId":      userID,
		"source":      l.Source,
		"sourceJobId": l.SourceJobID,
		"action":      action,
	})
	if err := s.rdb.Publish(ctx, ChannelSwipeEvent, event).Err(); err != nil {
		slog.Warn("publish EVENT_SWIPE failed", "err", err)
	}

	return recorded, nil
}

// ValidationError wraps a user-facing validation message.
type ValidationError struct{ Msg string }

func (e *ValidationError) Error() string { return e.Msg }
