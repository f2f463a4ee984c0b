package rasterconv

import (
	"fmt"
	"slices"
)

// Image is a decoded raster image held as a flat, interleaved sample buffer.
//
// For direct-color layouts len(Pix) == Width*Height*Layout.Channels(). For
// Indexed images Pix holds palette indices packed into byte aligned rows, see
// PixelsPerByte.
type Image[T Sample] struct {
	Width, Height int
	Layout        Layout
	Pix           []T

	// Palette holds RGB triples. Only Indexed images carry one.
	Palette []uint8

	// Transparency holds one alpha value per palette color.
	Transparency []uint8
}

// NewImage allocates a zeroed direct-color image.
func NewImage[T Sample](w, h int, layout Layout) *Image[T] {
	return &Image[T]{
		Width:  w,
		Height: h,
		Layout: layout,
		Pix:    make([]T, w*h*layout.Channels()),
	}
}

// Pixels returns the pixel count.
func (m *Image[T]) Pixels() int {
	return m.Width * m.Height
}

// Colors returns the number of palette colors.
func (m *Image[T]) Colors() int {
	return len(m.Palette) / 3
}

// Clone returns a deep copy of m.
func (m *Image[T]) Clone() *Image[T] {
	return &Image[T]{
		Width:        m.Width,
		Height:       m.Height,
		Layout:       m.Layout,
		Pix:          slices.Clone(m.Pix),
		Palette:      slices.Clone(m.Palette),
		Transparency: slices.Clone(m.Transparency),
	}
}

// Bytes returns a copy of m with byte samples.
func (m *Image[T]) Bytes() *Image[uint8] {
	return ConvertSamples[uint8](m)
}

// Units returns a copy of m with unit samples.
func (m *Image[T]) Units() *Image[float32] {
	return ConvertSamples[float32](m)
}

// ConvertSamples maps every sample of src to the encoding To. Dimensions,
// layout, palette and transparency are copied unchanged.
func ConvertSamples[To, From Sample](src *Image[From]) *Image[To] {
	pix := make([]To, len(src.Pix))
	for i, v := range src.Pix {
		pix[i] = convertSample[To](v)
	}
	return &Image[To]{
		Width:        src.Width,
		Height:       src.Height,
		Layout:       src.Layout,
		Pix:          pix,
		Palette:      slices.Clone(src.Palette),
		Transparency: slices.Clone(src.Transparency),
	}
}

// Validate checks the structural invariants of m.
func (m *Image[T]) Validate() error {
	if m.Width < 0 || m.Height < 0 {
		return fmt.Errorf("rasterconv: negative dimensions %dx%d", m.Width, m.Height)
	}
	if !m.Layout.Valid() {
		return &LayoutError{Op: "validate", Layout: m.Layout}
	}
	if m.Layout != Indexed {
		if want := m.Pixels() * m.Layout.Channels(); len(m.Pix) != want {
			return fmt.Errorf("%w: have %d samples, want %d", ErrShortPixelData, len(m.Pix), want)
		}
		return nil
	}
	ppb, err := checkPalette(m.Palette, m.Transparency)
	if err != nil {
		return err
	}
	if want := packedLen(m.Width, m.Height, ppb); len(m.Pix) < want {
		return fmt.Errorf("%w: have %d bytes, want %d", ErrShortPixelData, len(m.Pix), want)
	}
	return nil
}

func (m *Image[T]) String() string {
	palette, trns := "none", "none"
	if m.Palette != nil {
		palette = fmt.Sprintf("%d colors", m.Colors())
	}
	if m.Transparency != nil {
		trns = fmt.Sprintf("%d entries", len(m.Transparency))
	}
	return fmt.Sprintf("Image{%dx%d %s pix=%d palette=%s trns=%s}",
		m.Width, m.Height, m.Layout, len(m.Pix), palette, trns)
}

func pixOffset(w, x, y, channels int) int {
	return (y*w + x) * channels
}
