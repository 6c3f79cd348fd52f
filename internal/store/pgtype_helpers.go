package store

import (
	"errors"

	"github.com/jackc/pgx/v5"
)

func mapNotFound(err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}
	return err
}

func pageBounds(limit, offset, defaultLimit int) (int32, int32) {
	if limit <= 0 {
		limit = defaultLimit
	}
	if offset < 0 {
		offset = 0
	}
	return int32(limit), int32(offset)
}
