package rasterconv

import "fmt"

// Layout is the channel arrangement of an image's samples.
type Layout int

const (
	Grayscale Layout = iota
	GrayscaleAlpha
	RGB
	RGBA
	Indexed

	layoutCount
)

func (l Layout) String() string {
	switch l {
	case Grayscale:
		return "Grayscale"
	case GrayscaleAlpha:
		return "GrayscaleAlpha"
	case RGB:
		return "RGB"
	case RGBA:
		return "RGBA"
	case Indexed:
		return "Indexed"
	default:
		return fmt.Sprintf("Layout(%d)", int(l))
	}
}

// Channels returns the number of samples per pixel. Indexed images store one
// (packed) palette index per pixel.
func (l Layout) Channels() int {
	switch l {
	case Grayscale, Indexed:
		return 1
	case GrayscaleAlpha:
		return 2
	case RGB:
		return 3
	case RGBA:
		return 4
	default:
		return 0
	}
}

// HasAlpha reports whether the layout carries an alpha channel.
func (l Layout) HasAlpha() bool {
	return l == GrayscaleAlpha || l == RGBA
}

// Valid reports whether l is one of the known layouts.
func (l Layout) Valid() bool {
	return l >= Grayscale && l < layoutCount
}

// Direct reports whether samples are stored as direct color values.
func (l Layout) Direct() bool {
	return l.Valid() && l != Indexed
}
