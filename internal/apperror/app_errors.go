package apperror

import "errors"

var (
	ErrInvalidMove     = errors.New("invalid move")
	ErrGameOver        = errors.New("game is already over")
	ErrOutsideBoard    = errors.New("point is outside the board")
	ErrMalformedInput  = errors.New("malformed input")
	ErrSessionNotFound = errors.New("session not found")
)
