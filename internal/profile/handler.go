package profile

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"scope/swipe-service/internal/httpx"
)

// Handler exposes the profile routes.
//
//	GET /profile → fetch the caller's profile
//	PUT /profile → create/replace headline and resume text
type Handler struct {
	store *Store
}

// NewHandler returns a configured Handler.
func NewHandler(store *Store) *Handler {
	return &Handler{store: store}
}

// RegisterRoutes mounts the profile route on mux.
func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/profile", h.handleProfile)
}

func (h *Handler) handleProfile(w http.ResponseWriter, r *http.Request) {
	userID := r.Header.Get("x-user-id")
	if userID == "" {
		httpx.JSONError(w, "missing x-user-id header", http.StatusUnauthorized)
		return
	}

	switch r.Method {
	case http.MethodGet:
		h.get(w, r, userID)
	case http.MethodPut:
		h.put(w, r, userID)
	default:
		httpx.JSONError(w, "method not allowed", http.StatusMethodNotAllowed)
	}
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request, userID string) {
	p, err := h.store.Get(r.Context(), userID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			httpx.JSONError(w, "profile not found", http.StatusNotFound)
			return
		}
		log.Printf("[profile] Get error: %v", err)
		httpx.JSONError(w, "database error", http.StatusInternalServerError)
		return
	}
	httpx.JSONOK(w, p)
}

func (h *Handler) put(w http.ResponseWriter, r *http.Request, userID string) {
	var body struct {
		Headline   string `json:"headline"`
		ResumeText string `json:"resumeText"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		httpx.JSONError(w, "invalid JSON body", http.StatusBadRequest)
		return
	}

	p, err := h.store.Upsert(r.Context(), userID, body.Headline, body.ResumeText)
	if err != nil {
		log.Printf("[profile] Upsert error: %v", err)
		httpx.JSONError(w, "database error", http.StatusInternalServerError)
		return
	}
	httpx.JSONOK(w, p)
}
