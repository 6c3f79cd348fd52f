package mcpserver

import (
	"context"
	"net/http"
	"strings"

	appdecks "clash-deck-builder/internal/app/decks"
	"clash-deck-builder/internal/recommend"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

type Server struct {
	recommendSvc *recommend.Service
	decksSvc     *appdecks.Service

	mcpServer  *server.MCPServer
	httpServer *server.StreamableHTTPServer
}

func New(recommendSvc *recommend.Service, decksSvc *appdecks.Service) *Server {
	mcpSrv := server.NewMCPServer(
		"clash-deck-builder",
		"0.1.0",
		server.WithToolCapabilities(false),
		server.WithResourceCapabilities(false, false),
		server.WithRecovery(),
		server.WithResourceRecovery(),
	)
	s := &Server{
		recommendSvc: recommendSvc,
		decksSvc:     decksSvc,
		mcpServer:    mcpSrv,
		httpServer:   server.NewStreamableHTTPServer(mcpSrv, server.WithStateLess(true), server.WithDisableStreaming(true)),
	}
	s.registerPlayerTools()
	s.registerDeckTools()
	s.registerResources()
	return s
}

func (s *Server) Handler() http.Handler {
	return s.httpServer
}

func (s *Server) registerResources() {
	s.mcpServer.AddResourceTemplate(
		mcp.NewResourceTemplate(
			"deck://{deck_id}/export",
			"saved_deck_export",
			mcp.WithTemplateDescription("Saved deck card list as downloadable JSON"),
			mcp.WithTemplateMIMEType("application/json"),
		),
		func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
			raw := string(request.Params.URI)
			if !strings.HasPrefix(raw, "deck://") || !strings.HasSuffix(raw, "/export") {
				return nil, nil
			}
			deckID := strings.TrimSuffix(strings.TrimPrefix(raw, "deck://"), "/export")
			if deckID == "" {
				return nil, nil
			}
			exp, err := s.decksSvc.Export(ctx, deckID)
			if err != nil {
				return nil, err
			}
			return []mcp.ResourceContents{
				mcp.TextResourceContents{
					URI:      raw,
					MIMEType: "application/json",
					Text:     string(exp.Body),
				},
			}, nil
		},
	)
}
