package httptransport

import (
	"net/http"

	"clash-deck-builder/internal/store"
)

type AdminHandlers struct {
	store *store.Store
}

func NewAdminHandlers(st *store.Store) *AdminHandlers {
	return &AdminHandlers{store: st}
}

func (h *AdminHandlers) Health() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if h.store == nil {
			writeJSON(w, http.StatusOK, map[string]any{"ok": true, "db": "disabled"})
			return
		}
		if err := h.store.Ping(r.Context()); err != nil {
			writeJSON(w, http.StatusServiceUnavailable, map[string]any{"ok": false, "db": "down"})
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"ok": true, "db": "up"})
	}
}
