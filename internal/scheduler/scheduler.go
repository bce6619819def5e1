// Package scheduler wires up the cron job that periodically refreshes
// the startup-directory listings.
package scheduler

import (
	"context"
	"fmt"
	"log"

	"github.com/robfig/cron/v3"

	"scope/swipe-service/internal/feed"
)

// Scheduler wraps robfig/cron and manages the scrape loop.
type Scheduler struct {
	cron    *cron.Cron
	store   *feed.Store
	fetcher *feed.StartupFetcher
	spec    string // cron spec, e.g. "@every 12h"
}

// New creates a Scheduler that fires every intervalHours hours.
func New(store *feed.Store, fetcher *feed.StartupFetcher, intervalHours int) *Scheduler {
	return &Scheduler{
		cron:    cron.New(cron.WithLogger(cron.DefaultLogger)),
		store:   store,
		fetcher: fetcher,
		spec:    fmt.Sprintf("@every %dh", intervalHours),
	}
}

// Start registers the job and starts the scheduler. Also runs one
// scrape immediately so the feed is populated without waiting for the
// first tick.
func (s *Scheduler) Start(ctx context.Context) error {
	_, err := s.cron.AddFunc(s.spec, func() {
		s.runScrape(ctx)
	})
	if err != nil {
		return fmt.Errorf("cron.AddFunc: %w", err)
	}

	s.cron.Start()
	log.Printf("[scheduler] Cron started — spec: %s", s.spec)

	// Run immediately on startup (non-blocking)
	go s.runScrape(ctx)

	return nil
}

// Stop gracefully shuts down the scheduler.
func (s *Scheduler) Stop() {
	s.cron.Stop()
	log.Println("[scheduler] Cron stopped")
}

func (s *Scheduler) runScrape(ctx context.Context) {
	log.Println("[scheduler] Startup-directory scrape started")

	listings, err := s.fetcher.Fetch(ctx)
	if err != nil {
		log.Printf("[scheduler] Fetch error: %v", err)
		return
	}
	if len(listings) == 0 {
		log.Println("[scheduler] No hiring startups in directory — nothing to insert")
		return
	}

	inserted, dupes := s.store.UpsertListings(ctx, listings)
	log.Printf("[scheduler] Scrape complete — inserted=%d duplicates=%d", inserted, dupes)
}
