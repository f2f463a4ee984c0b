package rasterconv

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidLayout is returned when an operation receives an image whose
	// layout is incompatible with it.
	ErrInvalidLayout = errors.New("rasterconv: invalid layout")

	// ErrMissingPalette is returned for Indexed images without a palette.
	ErrMissingPalette = errors.New("rasterconv: no palette found")

	// ErrPaletteSize is returned when a palette holds fewer than 1 or more
	// than 256 colors.
	ErrPaletteSize = errors.New("rasterconv: invalid palette size")

	// ErrTransparencyMismatch is returned when the transparency table does not
	// hold exactly one entry per palette color.
	ErrTransparencyMismatch = errors.New("rasterconv: transparency does not match palette")

	// ErrShortPixelData is returned when packed or direct sample data is
	// shorter than the image dimensions require.
	ErrShortPixelData = errors.New("rasterconv: pixel data too short")

	// ErrIndexOutOfRange is returned when a packed index points past the
	// end of the palette.
	ErrIndexOutOfRange = errors.New("rasterconv: palette index out of range")
)

// LayoutError reports an operation invoked on an unsupported layout.
type LayoutError struct {
	Op     string
	Layout Layout
}

func (e *LayoutError) Error() string {
	return fmt.Sprintf("rasterconv: %s does not accept layout %s", e.Op, e.Layout)
}

func (e *LayoutError) Unwrap() error { return ErrInvalidLayout }

// PaletteSizeError reports a palette color count outside [1,256].
type PaletteSizeError struct {
	Colors int
}

func (e *PaletteSizeError) Error() string {
	return fmt.Sprintf("rasterconv: invalid number of colors in the palette: %d (minimum: 1, maximum: 256)", e.Colors)
}

func (e *PaletteSizeError) Unwrap() error { return ErrPaletteSize }

// TransparencyMismatchError reports a transparency table whose length differs
// from the palette's color count.
type TransparencyMismatchError struct {
	PaletteColors int
	Entries       int
}

func (e *TransparencyMismatchError) Error() string {
	return fmt.Sprintf("rasterconv: transparency has %d entries, palette has %d colors", e.Entries, e.PaletteColors)
}

func (e *TransparencyMismatchError) Unwrap() error { return ErrTransparencyMismatch }
