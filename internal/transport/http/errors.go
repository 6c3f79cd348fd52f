package httptransport

import (
	"context"
	"errors"
	"net/http"

	appdecks "clash-deck-builder/internal/app/decks"
	"clash-deck-builder/internal/credential"
	"clash-deck-builder/internal/recommend"
	"clash-deck-builder/internal/statsapi"
)

// MapDomainError returns the HTTP status and error code for a service error.
func MapDomainError(err error) (int, string) {
	switch {
	case errors.Is(err, recommend.ErrInvalidRequest),
		errors.Is(err, appdecks.ErrInvalidRequest),
		errors.Is(err, statsapi.ErrInvalidTag):
		return http.StatusBadRequest, "invalid_request"
	case errors.Is(err, appdecks.ErrUnknownCard):
		return http.StatusBadRequest, "unknown_card"
	case errors.Is(err, statsapi.ErrPlayerNotFound):
		return http.StatusNotFound, "player_not_found"
	case errors.Is(err, appdecks.ErrDeckNotFound):
		return http.StatusNotFound, "not_found"
	case errors.Is(err, credential.ErrNoCredentialsAvailable):
		return http.StatusServiceUnavailable, "no_credentials"
	case errors.Is(err, appdecks.ErrStorageUnavailable):
		return http.StatusServiceUnavailable, "storage_unavailable"
	case errors.Is(err, statsapi.ErrCatalogUnavailable):
		return http.StatusBadGateway, "catalog_unavailable"
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout, "upstream_timeout"
	default:
		return http.StatusBadGateway, "upstream_error"
	}
}

func writeDomainError(w http.ResponseWriter, err error) {
	status, code := MapDomainError(err)
	WriteHTTPError(w, status, code)
}
