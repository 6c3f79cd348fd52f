package decks

import "errors"

var (
	ErrInvalidRequest     = errors.New("invalid_request")
	ErrUnknownCard        = errors.New("unknown_card")
	ErrDeckNotFound       = errors.New("deck_not_found")
	ErrStorageUnavailable = errors.New("storage_unavailable")
)
