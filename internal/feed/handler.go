package feed

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"scope/swipe-service/internal/httpx"
	"scope/swipe-service/internal/model"
)

// Handler exposes the feed routes.
//
// All routes expect an x-user-id header forwarded by the Gateway.
//
//	GET  /feed    → deduplicated swipe deck
//	POST /swipes  → record a like/pass
type Handler struct {
	svc *Service
}

// NewHandler returns a configured Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// RegisterRoutes mounts all feed routes on mux.
func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/feed", h.handleFeed)
	mux.HandleFunc("/swipes", h.handleSwipes)
}

func (h *Handler) handleFeed(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		httpx.JSONError(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	userID := r.Header.Get("x-user-id")
	if userID == "" {
		httpx.JSONError(w, "missing x-user-id header", http.StatusUnauthorized)
		return
	}

	query := r.URL.Query().Get("q")
	if query == "" {
		query = "software engineer internship"
	}
	location := r.URL.Query().Get("location")

	deck, err := h.svc.BuildDeck(r.Context(), userID, query, location)
	if err != nil {
		log.Printf("[feed] BuildDeck error: %v", err)
		httpx.JSONError(w, "database error", http.StatusInternalServerError)
		return
	}

	httpx.JSONOK(w, deck)
}

func (h *Handler) handleSwipes(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		httpx.JSONError(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	userID := r.Header.Get("x-user-id")
	if userID == "" {
		httpx.JSONError(w, "missing x-user-id header", http.StatusUnauthorized)
		return
	}

	var body struct {
		Action  string        `json:"action"`
		Listing model.Listing `json:"listing"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		httpx.JSONError(w, "invalid JSON body", http.StatusBadRequest)
		return
	}

	recorded, err := h.svc.Swipe(r.Context(), userID, body.Action, body.Listing)
	if err != nil {
		var ve *ValidationError
		if errors.As(err, &ve) {
			httpx.JSONError(w, ve.Msg, http.StatusBadRequest)
			return
		}
		log.Printf("[feed] Swipe error: %v", err)
		httpx.JSONError(w, "database error", http.StatusInternalServerError)
		return
	}

	httpx.JSONOK(w, map[string]any{
		"recorded": recorded,
		"action":   body.Action,
	})
}
