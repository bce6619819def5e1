// scope-swipe-service
//
// Backend for the Scope swipe deck: aggregates job listings from the
// curated database, a live job-search API, and a scraped startup
// directory; records likes/passes; generates tailored CVs and cover
// letters for liked listings; and powers the cold-outreach helpers
// (recruiter lookup + email inference) behind per-user daily quotas.
//
// Publishes CMD_GENERATE_DOCS and EVENT_SWIPE to Redis.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"scope/swipe-service/internal/config"
	"scope/swipe-service/internal/db"
	"scope/swipe-service/internal/docs"
	"scope/swipe-service/internal/feed"
	"scope/swipe-service/internal/outreach"
	"scope/swipe-service/internal/profile"
	"scope/swipe-service/internal/quota"
	"scope/swipe-service/internal/scheduler"
)

const version = "1.0.0"

func main() {
	// ── Config ──────────────────────────────────────────────────────────────
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("[swipe-service] Config error: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// ── PostgreSQL ───────────────────────────────────────────────────────────
	log.Println("[swipe-service] Connecting to PostgreSQL…")
	pool, err := db.NewPostgresPool(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("[swipe-service] PostgreSQL: %v", err)
	}
	defer pool.Close()
	log.Println("[swipe-service] PostgreSQL connected ✓")

	// ── Redis ────────────────────────────────────────────────────────────────
	log.Println("[swipe-service] Connecting to Redis…")
	rdb, err := db.NewRedisClient(ctx, cfg.RedisURL)
	if err != nil {
		log.Fatalf("[swipe-service] Redis: %v", err)
	}
	defer rdb.Close()
	log.Println("[swipe-service] Redis connected ✓")

	// ── Stores & services ────────────────────────────────────────────────────
	feedStore := feed.NewStore(pool)
	profileStore := profile.NewStore(pool)
	docStore := docs.NewStore(pool)
	quotaStore := quota.NewStore(pool, cfg.MaxSearchesPerDay, cfg.MaxEmailsPerDay)

	jsearch := feed.NewJSearchFetcher(cfg.JSearchAPIKey, cfg.JSearchHost)
	feedSvc := feed.NewService(feedStore, rdb, jsearch)
	searchClient := outreach.NewSearchClient(cfg.SerperAPIKey)

	// ── Document worker ──────────────────────────────────────────────────────
	gen, err := docs.NewGenerator(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
	if err != nil {
		log.Fatalf("[swipe-service] Gemini: %v", err)
	}
	docs.NewWorker(rdb, docStore, profileStore, gen).Start(ctx)

	// ── Startup-directory cron ───────────────────────────────────────────────
	sched := scheduler.New(feedStore, feed.NewStartupFetcher(cfg.StartupDirURL), cfg.ScrapeIntervalHours)
	if err := sched.Start(ctx); err != nil {
		log.Fatalf("[swipe-service] Scheduler: %v", err)
	}
	defer sched.Stop()

	// ── HTTP server ──────────────────────────────────────────────────────────
	mux := http.NewServeMux()
	mux.HandleFunc("/health", healthHandler)

	feed.NewHandler(feedSvc).RegisterRoutes(mux)
	docs.NewHandler(docStore).RegisterRoutes(mux)
	profile.NewHandler(profileStore).RegisterRoutes(mux)
	outreach.NewHandler(searchClient, quotaStore).RegisterRoutes(mux)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Port),
		Handler:      mux,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	go func() {
		log.Printf("[swipe-service] v%s listening on :%s", version, cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("[swipe-service] HTTP server error: %v", err)
		}
	}()

	// ── Graceful shutdown ────────────────────────────────────────────────────
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("[swipe-service] Shutting down…")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("[swipe-service] Shutdown error: %v", err)
	}
	log.Println("[swipe-service] Stopped.")
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{
		"status":  "ok",
		"service": "swipe-service",
		"version": version,
	})
}
