package mcpserver

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
)

func (s *Server) registerPlayerTools() {
	s.mcpServer.AddTool(
		mcp.NewTool(
			"analyze_player",
			mcp.WithDescription("Fetch a player's stats and derive playstyle, skill level, archetypes, strengths and weaknesses"),
			mcp.WithString("tag", mcp.Required(), mcp.Description("Player tag, with or without the leading #")),
		),
		s.handleAnalyzePlayer,
	)

	s.mcpServer.AddTool(
		mcp.NewTool(
			"recommend_decks",
			mcp.WithDescription("Recommend one 8-card deck per style for a player"),
			mcp.WithString("tag", mcp.Required(), mcp.Description("Player tag, with or without the leading #")),
			mcp.WithString("styles", mcp.Description("Comma separated styles; defaults to the server's configured styles")),
		),
		s.handleRecommendDecks,
	)

	s.mcpServer.AddTool(
		mcp.NewTool(
			"list_cards",
			mcp.WithDescription("List the full card catalog"),
		),
		s.handleListCards,
	)
}

func (s *Server) handleAnalyzePlayer(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	tag, err := request.RequireString("tag")
	if err != nil {
		return toolError("invalid_request", "tag is required"), nil
	}
	profile, err := s.recommendSvc.Profile(ctx, tag)
	if err != nil {
		return mapDomainError(err), nil
	}
	return toolResult(profile), nil
}

func (s *Server) handleRecommendDecks(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	tag, err := request.RequireString("tag")
	if err != nil {
		return toolError("invalid_request", "tag is required"), nil
	}
	report, err := s.recommendSvc.ForPlayer(ctx, tag, splitList(request.GetString("styles", "")))
	if err != nil {
		return mapDomainError(err), nil
	}
	return toolResult(report), nil
}

func (s *Server) handleListCards(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cards, err := s.recommendSvc.Catalog(ctx)
	if err != nil {
		return mapDomainError(err), nil
	}
	return toolResult(map[string]any{"items": cards}), nil
}
