// Package model defines shared data structures for the swipe service.
package model

import "time"

// Listing is the normalised shape every provider's raw offer is mapped
// into before any identity or dedup logic runs. Source and SourceJobID
// together identify a listing across heterogeneous providers.
type Listing struct {
	Source      string  `json:"source"`
	SourceJobID string  `json:"sourceJobId"`
	Title       string  `json:"title"`
	Company     string  `json:"company"`
	Location    string  `json:"location"`
	Description string  `json:"description"`
	SalaryMin   float64 `json:"salaryMin,omitempty"`
	SalaryMax   float64 `json:"salaryMax,omitempty"`
	SourceURL   string  `json:"sourceUrl"`
	PostedAt    string  `json:"postedAt,omitempty"`
}

// Swipe actions. Swipe rows are append-only: once recorded, a
// (user, source, source_job_id) decision is never updated.
const (
	ActionLike = "like"
	ActionPass = "pass"
)

// Swipe mirrors a swipes table row.
type Swipe struct {
	ID          string    `json:"id"`
	UserID      string    `json:"userId"`
	Source      string    `json:"source"`
	SourceJobID string    `json:"sourceJobId"`
	Action      string    `json:"action"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Profile mirrors a profiles table row. SearchesUsed and EmailsUsed
// are the daily outreach counters; both reset together when
// LastUsageReset differs from the current UTC date.
type Profile struct {
	UserID         string    `json:"userId"`
	Headline       string    `json:"headline"`
	ResumeText     string    `json:"resumeText"`
	SearchesUsed   int       `json:"searchesUsed"`
	EmailsUsed     int       `json:"emailsUsed"`
	LastUsageReset string    `json:"lastUsageReset"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// Document kinds generated for liked listings.
const (
	DocKindCV          = "cv"
	DocKindCoverLetter = "cover_letter"
)

// Document mirrors a documents table row (generated CV or cover letter).
type Document struct {
	ID          string    `json:"id"`
	UserID      string    `json:"userId"`
	Source      string    `json:"source"`
	SourceJobID string    `json:"sourceJobId"`
	Kind        string    `json:"kind"`
	Content     string    `json:"content"`
	Model       string    `json:"model"`
	CreatedAt   time.Time `json:"createdAt"`
}
