package httptransport

import (
	"net/http"
	"net/url"
	"strings"

	"clash-deck-builder/internal/recommend"

	"github.com/go-chi/chi/v5"
	json "github.com/goccy/go-json"
	"github.com/rs/zerolog/log"
)

type PlayerHandlers struct {
	recommendSvc *recommend.Service
}

func NewPlayerHandlers(recommendSvc *recommend.Service) *PlayerHandlers {
	return &PlayerHandlers{recommendSvc: recommendSvc}
}

func (h *PlayerHandlers) Profile() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		metricProfileTotal.Add(1)
		profile, err := h.recommendSvc.Profile(r.Context(), pathTag(r))
		if err != nil {
			metricProfileErrors.Add(1)
			writeDomainError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, profile)
	}
}

func (h *PlayerHandlers) Decks() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		metricRecommendTotal.Add(1)
		tag := pathTag(r)
		report, err := h.recommendSvc.ForPlayer(r.Context(), tag, queryStyles(r))
		if err != nil {
			metricRecommendErrors.Add(1)
			log.Warn().Err(err).Str("tag", tag).Msg("deck recommendation request failed")
			writeDomainError(w, err)
			return
		}
		if report.Source == recommend.SourceFallback {
			metricRecommendFallback.Add(1)
		}
		writeJSON(w, http.StatusOK, report)
	}
}

func (h *PlayerHandlers) Cards() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cards, err := h.recommendSvc.Catalog(r.Context())
		if err != nil {
			writeDomainError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"items": cards})
	}
}

// pathTag returns the {tag} URL parameter, unescaping %23 when the client
// encoded the leading '#'.
func pathTag(r *http.Request) string {
	raw := chi.URLParam(r, "tag")
	if v, err := url.PathUnescape(raw); err == nil {
		return v
	}
	return raw
}

// queryStyles accepts both ?styles=a,b and repeated ?styles= parameters.
func queryStyles(r *http.Request) []string {
	var out []string
	for _, v := range r.URL.Query()["styles"] {
		for _, s := range strings.Split(v, ",") {
			if s = strings.TrimSpace(s); s != "" {
				out = append(out, s)
			}
		}
	}
	return out
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
