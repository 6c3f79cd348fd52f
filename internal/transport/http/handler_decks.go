package httptransport

import (
	"fmt"
	"net/http"

	appdecks "clash-deck-builder/internal/app/decks"

	"github.com/go-chi/chi/v5"
	json "github.com/goccy/go-json"
)

type DeckHandlers struct {
	decksSvc *appdecks.Service
}

func NewDeckHandlers(decksSvc *appdecks.Service) *DeckHandlers {
	return &DeckHandlers{decksSvc: decksSvc}
}

func (h *DeckHandlers) Save() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		metricDeckSaveTotal.Add(1)
		var req appdecks.SaveRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			metricDeckSaveErrors.Add(1)
			WriteHTTPError(w, http.StatusBadRequest, "invalid_json")
			return
		}
		item, err := h.decksSvc.Save(r.Context(), req)
		if err != nil {
			metricDeckSaveErrors.Add(1)
			writeDomainError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, item)
	}
}

func (h *DeckHandlers) Get() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		item, err := h.decksSvc.Get(r.Context(), chi.URLParam(r, "deck_id"))
		if err != nil {
			writeDomainError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, item)
	}
}

func (h *DeckHandlers) Export() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		exp, err := h.decksSvc.Export(r.Context(), chi.URLParam(r, "deck_id"))
		if err != nil {
			writeDomainError(w, err)
			return
		}
		metricDeckExportTotal.Add(1)
		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", exp.Filename))
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(exp.Body)
	}
}

func (h *DeckHandlers) Delete() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := h.decksSvc.Delete(r.Context(), chi.URLParam(r, "deck_id")); err != nil {
			writeDomainError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func (h *DeckHandlers) ListByPlayer() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit, offset := ParsePagination(r)
		resp, err := h.decksSvc.ListByPlayer(r.Context(), pathTag(r), limit, offset)
		if err != nil {
			writeDomainError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, resp)
	}
}
