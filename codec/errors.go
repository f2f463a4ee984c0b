package codec

import "errors"

var (
	// ErrNotFound is returned when a file cannot be found or read.
	ErrNotFound = errors.New("codec: file could not be found / read")

	// ErrDecode is returned when data cannot be decoded.
	ErrDecode = errors.New("codec: could not decode image data")

	// ErrInvalidMagic is returned when a snapshot has an unknown header.
	ErrInvalidMagic = errors.New("codec: invalid snapshot magic")
)
