// Package config loads and validates environment variables at startup.
// Fail-fast: if a required variable is missing, the process exits.
package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config holds all runtime configuration for the swipe service.
type Config struct {
	Port        string
	DatabaseURL string
	RedisURL    string

	JSearchAPIKey  string
	JSearchHost    string
	SerperAPIKey   string
	GeminiAPIKey   string
	GeminiModel    string
	StartupDirURL  string

	ScrapeIntervalHours int // how often the startup-directory cron fires
	MaxSearchesPerDay   int // daily cap on recruiter lookups
	MaxEmailsPerDay     int // daily cap on email inferences
}

// Load reads environment variables and returns a validated Config.
func Load() (*Config, error) {
	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		return nil, fmt.Errorf("REDIS_URL is required")
	}

	port := os.Getenv("SWIPE_PORT")
	if port == "" {
		port = "8083"
	}

	interval, err := positiveIntEnv("SCRAPE_INTERVAL_HOURS", 12)
	if err != nil {
		return nil, err
	}
	maxSearches, err := positiveIntEnv("MAX_SEARCHES_PER_DAY", 3)
	if err != nil {
		return nil, err
	}
	maxEmails, err := positiveIntEnv("MAX_EMAILS_PER_DAY", 3)
	if err != nil {
		return nil, err
	}

	model := os.Getenv("GEMINI_MODEL")
	if model == "" {
		model = "gemini-2.5-flash"
	}

	host := os.Getenv("JSEARCH_HOST")
	if host == "" {
		host = "jsearch.p.rapidapi.com"
	}

	return &Config{
		Port:                port,
		DatabaseURL:         dbURL,
		RedisURL:            redisURL,
		JSearchAPIKey:       os.Getenv("JSEARCH_API_KEY"),
		JSearchHost:         host,
		SerperAPIKey:        os.Getenv("SERPER_API_KEY"),
		GeminiAPIKey:        os.Getenv("GEMINI_API_KEY"),
		GeminiModel:         model,
		StartupDirURL:       os.Getenv("STARTUP_DIRECTORY_URL"),
		ScrapeIntervalHours: interval,
		MaxSearchesPerDay:   maxSearches,
		MaxEmailsPerDay:     maxEmails,
	}, nil
}

func positiveIntEnv(name string, def int) (int, error) {
	s := os.Getenv(name)
	if s == "" {
		return def, nil
	}
	v, err := strconv.Atoi(s)
	if err != nil || v < 1 {
		return 0, fmt.Errorf("%s must be a positive integer, got %q", name, s)
	}
	return v, nil
}
