package httptransport

import (
	"expvar"
	"fmt"
	"net/http"
	"sort"
	"strings"

	appdecks "clash-deck-builder/internal/app/decks"
	"clash-deck-builder/internal/config"
	"clash-deck-builder/internal/mcpserver"
	"clash-deck-builder/internal/recommend"
	"clash-deck-builder/internal/store"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"
)

// NewRouter builds the HTTP API. st may be nil, in which case saved-deck
// routes answer 503 storage_unavailable.
func NewRouter(st *store.Store, cfg config.ServerConfig, recommendSvc *recommend.Service) *chi.Mux {
	decksSvc := appdecks.NewService(nil, recommendSvc)
	if st != nil {
		decksSvc = appdecks.NewService(st, recommendSvc)
	}
	mcpSrv := mcpserver.New(recommendSvc, decksSvc)

	playerHandlers := NewPlayerHandlers(recommendSvc)
	deckHandlers := NewDeckHandlers(decksSvc)
	adminHandlers := NewAdminHandlers(st)

	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.Recoverer)
	r.Use(chimw.RealIP)

	r.With(APILogMiddleware()).Get("/healthz", adminHandlers.Health())
	r.With(APILogMiddleware()).MethodFunc(http.MethodOptions, "/mcp", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Allow", "POST, GET, DELETE, OPTIONS")
		w.WriteHeader(http.StatusNoContent)
	})
	r.With(APILogMiddleware()).Method(http.MethodPost, "/mcp", mcpSrv.Handler())
	r.With(APILogMiddleware()).Method(http.MethodGet, "/mcp", mcpSrv.Handler())
	r.With(APILogMiddleware()).Method(http.MethodDelete, "/mcp", mcpSrv.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Use(APILogMiddleware())
		r.Get("/cards", playerHandlers.Cards())
		r.Get("/players/{tag}", playerHandlers.Profile())
		r.Get("/players/{tag}/decks", playerHandlers.Decks())
		r.Get("/players/{tag}/saved-decks", deckHandlers.ListByPlayer())

		r.Post("/decks", deckHandlers.Save())
		r.Get("/decks/{deck_id}", deckHandlers.Get())
		r.Delete("/decks/{deck_id}", deckHandlers.Delete())
		r.Get("/decks/{deck_id}/export", deckHandlers.Export())

		r.Group(func(r chi.Router) {
			r.Use(AdminAuthMiddleware(cfg.AdminAPIKey))
			r.Route("/debug", func(r chi.Router) {
				r.Use(BodyCaptureMiddleware(4096))
				r.Get("/vars", expvar.Handler().ServeHTTP)
			})
		})
	})
	return r
}

func LogRoutes(r chi.Router) {
	type routeDef struct {
		Method string
		Path   string
	}
	routes := make([]routeDef, 0, 16)
	err := chi.Walk(r, func(method string, route string, _ http.Handler, _ ...func(http.Handler) http.Handler) error {
		routes = append(routes, routeDef{Method: method, Path: route})
		return nil
	})
	if err != nil {
		log.Error().Err(err).Msg("walk routes failed")
		return
	}
	sort.Slice(routes, func(i, j int) bool {
		if routes[i].Path == routes[j].Path {
			return routes[i].Method < routes[j].Method
		}
		return routes[i].Path < routes[j].Path
	})
	var b strings.Builder
	b.WriteString(fmt.Sprintf("Registered routes (%d):\n", len(routes)))
	for _, rt := range routes {
		b.WriteString(fmt.Sprintf("  %-6s %s\n", rt.Method, rt.Path))
	}
	fmt.Print(b.String())
}
