package rasterconv

import "fmt"

// PixelsPerByte returns how many palette indices one byte of Indexed data
// holds for a palette of the given size.
func PixelsPerByte(colors int) (int, error) {
	switch {
	case colors >= 1 && colors <= 2:
		return 8, nil
	case colors >= 3 && colors <= 4:
		return 4, nil
	case colors >= 5 && colors <= 16:
		return 2, nil
	case colors >= 17 && colors <= 256:
		return 1, nil
	default:
		return 0, &PaletteSizeError{Colors: colors}
	}
}

// BitDepth returns the bits per packed index for the given pixels per byte.
func BitDepth(ppb int) int {
	return 8 / ppb
}

// rowSlots is the number of index slots a row occupies, including the unused
// trailing slots of its last byte.
func rowSlots(width, ppb int) int {
	return (width + ppb - 1) / ppb * ppb
}

func packedLen(w, h, ppb int) int {
	return rowSlots(w, ppb) / ppb * h
}

func checkPalette(palette, trns []uint8) (int, error) {
	if len(palette) == 0 {
		return 0, ErrMissingPalette
	}
	if len(palette)%3 != 0 {
		return 0, fmt.Errorf("%w: %d palette bytes are not RGB triples", ErrPaletteSize, len(palette))
	}
	ppb, err := PixelsPerByte(len(palette) / 3)
	if err != nil {
		return 0, err
	}
	if trns != nil && len(trns)*3 != len(palette) {
		return 0, &TransparencyMismatchError{PaletteColors: len(palette) / 3, Entries: len(trns)}
	}
	return ppb, nil
}

// unpackIndex extracts the palette index stored in slot of b.
func unpackIndex(b uint8, slot, ppb int) uint8 {
	switch ppb {
	case 8:
		return (b >> (7 - slot)) & 1
	case 4:
		return (b >> (2 * (3 - slot))) & 3
	case 2:
		return (b >> (4 * (1 - slot))) & 15
	default:
		return b
	}
}

// Indices unpacks the palette index of every pixel of an Indexed image, in
// row-major order.
func Indices[T Sample](img *Image[T]) ([]uint8, error) {
	if img.Layout != Indexed {
		return nil, &LayoutError{Op: "unpack indices", Layout: img.Layout}
	}
	ppb, err := checkPalette(img.Palette, img.Transparency)
	if err != nil {
		return nil, err
	}
	if err := checkDims(img); err != nil {
		return nil, err
	}
	w, h := img.Width, img.Height
	if need := packedLen(w, h, ppb); len(img.Pix) < need {
		return nil, fmt.Errorf("%w: have %d bytes, want %d", ErrShortPixelData, len(img.Pix), need)
	}
	colors := img.Colors()
	out := make([]uint8, w*h)

	// Rows start on a byte boundary, so the trailing slots of the last byte
	// in each row are skipped.
	stride := rowSlots(w, ppb)
	for y := range h {
		for x := range w {
			slot := y*stride + x
			idx := unpackIndex(ToByte(img.Pix[slot/ppb]), slot%ppb, ppb)
			if int(idx) >= colors {
				return nil, fmt.Errorf("%w: index %d at (%d,%d), palette has %d colors", ErrIndexOutOfRange, idx, x, y, colors)
			}
			out[y*w+x] = idx
		}
	}
	return out, nil
}

// Depalettize resolves an Indexed image into direct color. The result is RGB,
// or RGBA with alpha taken from the transparency table when one is present.
func Depalettize[T Sample](img *Image[T]) (*Image[T], error) {
	if img.Layout != Indexed {
		return nil, &LayoutError{Op: "depalettize", Layout: img.Layout}
	}
	indices, err := Indices(img)
	if err != nil {
		return nil, err
	}

	layout := RGB
	if img.Transparency != nil {
		layout = RGBA
	}
	channels := layout.Channels()

	// Convert the palette once instead of per pixel.
	palette := make([]T, len(img.Palette))
	for i, v := range img.Palette {
		palette[i] = FromByte[T](v)
	}
	var alpha []T
	if layout == RGBA {
		alpha = make([]T, len(img.Transparency))
		for i, v := range img.Transparency {
			alpha[i] = FromByte[T](v)
		}
	}

	out := NewImage[T](img.Width, img.Height, layout)
	for i, idx := range indices {
		off := i * channels
		copy(out.Pix[off:off+3], palette[int(idx)*3:int(idx)*3+3])
		if alpha != nil {
			out.Pix[off+3] = alpha[idx]
		}
	}
	return out, nil
}

// PackIndices packs one palette index per pixel into byte aligned rows using
// ppb indices per byte, most significant bits first. It is the inverse of the
// unpacking done by Depalettize.
func PackIndices(indices []uint8, width, height, ppb int) []uint8 {
	bits := BitDepth(ppb)
	mask := uint8(1<<bits - 1)
	stride := rowSlots(width, ppb)
	out := make([]uint8, packedLen(width, height, ppb))
	for y := range height {
		for x := range width {
			slot := y*stride + x
			shift := (ppb - 1 - slot%ppb) * bits
			out[slot/ppb] |= (indices[y*width+x] & mask) << shift
		}
	}
	return out
}
