package mcpserver

import (
	"context"
	"errors"
	"fmt"

	appdecks "clash-deck-builder/internal/app/decks"
	"clash-deck-builder/internal/credential"
	"clash-deck-builder/internal/recommend"
	"clash-deck-builder/internal/statsapi"

	"github.com/mark3labs/mcp-go/mcp"
)

func toolResult(data any) *mcp.CallToolResult {
	return mcp.NewToolResultStructuredOnly(data)
}

func toolError(code, message string) *mcp.CallToolResult {
	result := mcp.NewToolResultStructured(
		map[string]any{
			"error": map[string]any{
				"code":    code,
				"message": message,
			},
		},
		fmt.Sprintf("%s: %s", code, message),
	)
	result.IsError = true
	return result
}

func mapDomainError(err error) *mcp.CallToolResult {
	switch {
	case err == nil:
		return toolError("internal_error", "unknown error")
	case errors.Is(err, recommend.ErrInvalidRequest),
		errors.Is(err, appdecks.ErrInvalidRequest),
		errors.Is(err, statsapi.ErrInvalidTag):
		return toolError("invalid_request", err.Error())
	case errors.Is(err, appdecks.ErrUnknownCard):
		return toolError("unknown_card", err.Error())
	case errors.Is(err, statsapi.ErrPlayerNotFound):
		return toolError("player_not_found", err.Error())
	case errors.Is(err, appdecks.ErrDeckNotFound):
		return toolError("not_found", err.Error())
	case errors.Is(err, credential.ErrNoCredentialsAvailable):
		return toolError("no_credentials", err.Error())
	case errors.Is(err, appdecks.ErrStorageUnavailable):
		return toolError("storage_unavailable", err.Error())
	case errors.Is(err, statsapi.ErrCatalogUnavailable):
		return toolError("catalog_unavailable", err.Error())
	case errors.Is(err, context.DeadlineExceeded):
		return toolError("upstream_timeout", err.Error())
	default:
		return toolError("upstream_error", err.Error())
	}
}
