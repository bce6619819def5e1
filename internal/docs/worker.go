package docs

import (
	"context"
	"encoding/json"
	"log"

	"github.com/redis/go-redis/v9"

	"scope/swipe-service/internal/feed"
	"scope/swipe-service/internal/model"
	"scope/swipe-service/internal/profile"
)

// Worker consumes CMD_GENERATE_DOCS and produces a tailored CV and
// cover letter for each liked listing.
type Worker struct {
	rdb      *redis.Client
	store    *Store
	profiles *profile.Store
	gen      *Generator
}

// NewWorker constructs a Worker. gen may be nil (generation disabled).
func NewWorker(rdb *redis.Client, store *Store, profiles *profile.Store, gen *Generator) *Worker {
	return &Worker{rdb: rdb, store: store, profiles: profiles, gen: gen}
}

// Start subscribes to the command channel and processes messages until
// ctx is cancelled. Runs in its own goroutine.
func (w *Worker) Start(ctx context.Context) {
	if w.gen == nil {
		log.Println("[docs] GEMINI_API_KEY not set — document generation disabled")
		return
	}

	sub := w.rdb.Subscribe(ctx, feed.ChannelGenerateDocs)

	go func() {
		defer sub.Close()
		log.Printf("[docs] Worker subscribed to %s", feed.ChannelGenerateDocs)

		ch := sub.Channel()
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-ch:
				if !ok {
					return
				}
				var cmd feed.GenerateDocsCommand
				if err := json.Unmarshal([]byte(msg.Payload), &cmd); err != nil {
					log.Printf("[docs] Bad command payload: %v", err)
					continue
				}
				w.process(ctx, cmd)
			}
		}
	}()
}

func (w *Worker) process(ctx context.Context, cmd feed.GenerateDocsCommand) {
	prof, err := w.profiles.Get(ctx, cmd.UserID)
	if err != nil {
		log.Printf("[docs] Profile load failed for user %s: %v", cmd.UserID, err)
		return
	}
	if prof.ResumeText == "" {
		log.Printf("[docs] User %s has no resume text — skipping generation", cmd.UserID)
		return
	}

	for _, kind := range []string{model.DocKindCV, model.DocKindCoverLetter} {
		content, err := w.gen.Generate(ctx, kind, *prof, cmd.Listing)
		if err != nil {
			log.Printf("[docs] Generate %s failed for %s/%s: %v",
				kind, cmd.Listing.Source, cmd.Listing.SourceJobID, err)
			continue
		}

		doc := model.Document{
			UserID:      cmd.UserID,
			Source:      cmd.Listing.Source,
			SourceJobID: cmd.Listing.SourceJobID,
			Kind:        kind,
			Content:     content,
			Model:       w.gen.Model(),
		}
		if err := w.store.Insert(ctx, doc); err != nil {
			log.Printf("[docs] Store %s failed: %v", kind, err)
			continue
		}
		log.Printf("[docs] Generated %s for user %s (%s at %s)",
			kind, cmd.UserID, cmd.Listing.Title, cmd.Listing.Company)
	}
}
