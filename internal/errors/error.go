package errors

import "errors"

var (
	ErrRecordNotFound   = errors.New("record was not found")
	ErrInvalidRecord    = errors.New("invalid game record")
	ErrInvalidSquare    = errors.New("square out of range")
	ErrInvalidDate      = errors.New("invalid date or time of day")
	ErrNegativeDuration = errors.New("negative duration")
	ErrUnknownColor     = errors.New("unknown color")
	ErrUnknownPiece     = errors.New("unknown piece type")
	ErrUnknownAction    = errors.New("unknown action")
	ErrUnknownEncoding  = errors.New("unknown output encoding")
	ErrInternal         = errors.New("internal error")
)
