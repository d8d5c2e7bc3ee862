package arena

import (
	"errors"

	"rps-arena/internal/game"
)

var (
	ErrEmptyName       = errors.New("empty_name")
	ErrInvalidChoice   = game.ErrInvalidChoice
	ErrInvalidSession  = errors.New("invalid_session")
	ErrSessionConflict = errors.New("game_in_progress")
	ErrTooManyStarts   = errors.New("too_many_starts")
	ErrTooFast         = errors.New("too_fast")
	ErrTooManyMoves    = errors.New("too_many_moves")
	ErrStoreFailure    = errors.New("store_failure")
)
