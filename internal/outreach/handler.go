package outreach

import (
	"encoding/json"
	"log"
	"net/http"

	"scope/swipe-service/internal/httpx"
	"scope/swipe-service/internal/quota"
)

// Handler exposes the cold-outreach routes.
//
// Both routes are rate limited per user per day:
//
//	POST /outreach/contact → guess a recruiter name (searches counter)
//	POST /outreach/email   → derive a probable address (emails counter)
type Handler struct {
	search *SearchClient
	quota  *quota.Store
}

// NewHandler returns a configured Handler.
func NewHandler(search *SearchClient, q *quota.Store) *Handler {
	return &Handler{search: search, quota: q}
}

// RegisterRoutes mounts all outreach routes on mux.
func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/outreach/contact", h.handleContact)
	mux.HandleFunc("/outreach/email", h.handleEmail)
}

func (h *Handler) handleContact(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	var body struct {
		Company string `json:"company"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.Company == "" {
		httpx.JSONError(w, "body must contain company", http.StatusBadRequest)
		return
	}

	res := h.quota.Consume(r.Context(), userID, quota.KindSearches)
	if !res.Allowed {
		httpx.JSONError(w, "daily search limit reached", http.StatusTooManyRequests)
		return
	}

	name, err := h.search.FindRecruiter(r.Context(), body.Company)
	if err != nil {
		log.Printf("[outreach] FindRecruiter error: %v", err)
		httpx.JSONError(w, "recruiter search failed", http.StatusBadGateway)
		return
	}

	httpx.JSONOK(w, map[string]any{
		// A guess from search-result titles, never a confirmed identity.
		"probableName": name,
		"found":        name != "",
		"remaining":    res.Remaining,
	})
}

func (h *Handler) handleEmail(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	var body struct {
		FullName string `json:"fullName"`
		Domain   string `json:"domain"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.Domain == "" {
		httpx.JSONError(w, "body must contain fullName and domain", http.StatusBadRequest)
		return
	}

	res := h.quota.Consume(r.Context(), userID, quota.KindEmails)
	if !res.Allowed {
		httpx.JSONError(w, "daily email limit reached", http.StatusTooManyRequests)
		return
	}

	email := InferEmail(body.FullName, body.Domain)
	if email == "" {
		httpx.JSONError(w, "no email derivable from that name", http.StatusUnprocessableEntity)
		return
	}

	httpx.JSONOK(w, map[string]any{
		// Heuristic derivation, not a verified mailbox.
		"probableEmail": email,
		"remaining":     res.Remaining,
	})
}

func requireUser(w http.ResponseWriter, r *http.Request) (string, bool) {
	if r.Method != http.MethodPost {
		httpx.JSONError(w, "method not allowed", http.StatusMethodNotAllowed)
		return "", false
	}
	userID := r.Header.Get("x-user-id")
	if userID == "" {
		httpx.JSONError(w, "missing x-user-id header", http.StatusUnauthorized)
		return "", false
	}
	return userID, true
}
