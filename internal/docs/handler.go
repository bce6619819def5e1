package docs

import (
	"log"
	"net/http"

	"scope/swipe-service/internal/httpx"
)

// Handler serves generated documents.
//
//	GET /documents → list the caller's CVs and cover letters
type Handler struct {
	store *Store
}

// NewHandler returns a configured Handler.
func NewHandler(store *Store) *Handler {
	return &Handler{store: store}
}

// RegisterRoutes mounts the documents route on mux.
func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/documents", h.handleList)
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		httpx.JSONError(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	userID := r.Header.Get("x-user-id")
	if userID == "" {
		httpx.JSONError(w, "missing x-user-id header", http.StatusUnauthorized)
		return
	}

	docs, err := h.store.ListByUser(r.Context(), userID)
	if err != nil {
		log.Printf("[docs] ListByUser error: %v", err)
		httpx.JSONError(w, "database error", http.StatusInternalServerError)
		return
	}

	httpx.JSONOK(w, docs)
}
