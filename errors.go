package bitarray

import "errors"

var (
	ErrIndexOutOfRange = errors.New("index out of range")
	ErrRange           = errors.New("invalid range")
	ErrLengthMismatch  = errors.New("length mismatch")
	ErrEmpty           = errors.New("empty array")
	ErrInvalidView     = errors.New("view invalidated by origin resize")
	ErrReadOnlyView    = errors.New("view is read-only")
	ErrAlignment       = errors.New("length is not byte-aligned")
)
