package mcpserver

import (
	"context"

	appdecks "clash-deck-builder/internal/app/decks"

	"github.com/mark3labs/mcp-go/mcp"
)

func (s *Server) registerDeckTools() {
	s.mcpServer.AddTool(
		mcp.NewTool(
			"save_deck",
			mcp.WithDescription("Save a deck for a player; card names are resolved against the catalog"),
			mcp.WithString("tag", mcp.Required(), mcp.Description("Player tag")),
			mcp.WithString("style", mcp.Required(), mcp.Description("Deck style")),
			mcp.WithString("cards", mcp.Required(), mcp.Description("Comma separated card names, at most 8")),
		),
		s.handleSaveDeck,
	)

	s.mcpServer.AddTool(
		mcp.NewTool(
			"list_saved_decks",
			mcp.WithDescription("List a player's saved decks, newest first"),
			mcp.WithString("tag", mcp.Required(), mcp.Description("Player tag")),
			mcp.WithNumber("limit", mcp.Description("Page size, default 50, max 500")),
			mcp.WithNumber("offset", mcp.Description("Page offset, default 0")),
		),
		s.handleListSavedDecks,
	)
}

func (s *Server) handleSaveDeck(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	tag := request.GetString("tag", "")
	style := request.GetString("style", "")
	cards := splitList(request.GetString("cards", ""))
	if tag == "" || style == "" || len(cards) == 0 {
		return toolError("invalid_request", "tag, style and cards are required"), nil
	}
	item, err := s.decksSvc.Save(ctx, appdecks.SaveRequest{PlayerTag: tag, Style: style, Cards: cards})
	if err != nil {
		return mapDomainError(err), nil
	}
	return toolResult(item), nil
}

func (s *Server) handleListSavedDecks(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	tag, err := request.RequireString("tag")
	if err != nil {
		return toolError("invalid_request", "tag is required"), nil
	}
	limit, offset := clampPagination(request.GetInt("limit", defaultPageLimit), request.GetInt("offset", 0), maxPageLimit)
	resp, err := s.decksSvc.ListByPlayer(ctx, tag, limit, offset)
	if err != nil {
		return mapDomainError(err), nil
	}
	return toolResult(resp), nil
}
