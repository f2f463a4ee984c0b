package rasterconv

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"
)

// StdImage returns img as an image.Image. Gray images become *image.Gray,
// Indexed images *image.Paletted and everything else *image.NRGBA.
func StdImage[T Sample](img *Image[T]) (image.Image, error) {
	b := img.Bytes()
	rect := image.Rect(0, 0, b.Width, b.Height)
	switch b.Layout {
	case Grayscale:
		if err := checkDirect(b); err != nil {
			return nil, err
		}
		dst := image.NewGray(rect)
		for y := range b.Height {
			copy(dst.Pix[y*dst.Stride:y*dst.Stride+b.Width], b.Pix[y*b.Width:(y+1)*b.Width])
		}
		return dst, nil
	case Indexed:
		indices, err := Indices(b)
		if err != nil {
			return nil, err
		}
		dst := image.NewPaletted(rect, StdPalette(b.Palette, b.Transparency))
		for y := range b.Height {
			copy(dst.Pix[y*dst.Stride:y*dst.Stride+b.Width], indices[y*b.Width:(y+1)*b.Width])
		}
		return dst, nil
	}
	rgba, err := ToRGBA(b)
	if err != nil {
		return nil, err
	}
	dst := image.NewNRGBA(rect)
	for y := range b.Height {
		row := rgba.Pix[pixOffset(b.Width, 0, y, 4):pixOffset(b.Width, 0, y+1, 4)]
		copy(dst.Pix[y*dst.Stride:y*dst.Stride+len(row)], row)
	}
	return dst, nil
}

// StdPalette builds a color.Palette from RGB triples and optional alpha.
func StdPalette(palette, trns []uint8) color.Palette {
	out := make(color.Palette, len(palette)/3)
	for i := range out {
		c := color.NRGBA{R: palette[i*3], G: palette[i*3+1], B: palette[i*3+2], A: 0xff}
		if i < len(trns) {
			c.A = trns[i]
		}
		out[i] = c
	}
	return out
}

// FromStdImage converts an image.Image into a byte-sample Image. Paletted
// images keep their palette and are packed by palette size, gray images stay
// gray and everything else becomes RGB, or RGBA when any pixel is not fully
// opaque.
func FromStdImage(src image.Image) *Image[uint8] {
	bounds := src.Bounds()
	w, h := bounds.Dx(), bounds.Dy()

	switch s := src.(type) {
	case *image.Paletted:
		if ppb, err := PixelsPerByte(len(s.Palette)); err == nil {
			return fromPaletted(s, ppb)
		}
	case *image.Gray, *image.Gray16:
		dst := image.NewGray(image.Rect(0, 0, w, h))
		draw.Draw(dst, dst.Bounds(), src, bounds.Min, draw.Src)
		out := NewImage[uint8](w, h, Grayscale)
		for y := range h {
			copy(out.Pix[y*w:(y+1)*w], dst.Pix[y*dst.Stride:y*dst.Stride+w])
		}
		return out
	}

	// Non-premultiplied sources are copied as is; drawing would lose the
	// color of fully transparent pixels.
	nrgba, ok := src.(*image.NRGBA)
	if !ok {
		nrgba = image.NewNRGBA(image.Rect(0, 0, w, h))
		draw.Draw(nrgba, nrgba.Bounds(), src, bounds.Min, draw.Src)
	}
	r := nrgba.Bounds()
	out := NewImage[uint8](w, h, RGBA)
	opaque := true
	for y := range h {
		off := nrgba.PixOffset(r.Min.X, r.Min.Y+y)
		row := nrgba.Pix[off : off+w*4]
		copy(out.Pix[pixOffset(w, 0, y, 4):], row)
		for x := 3; x < len(row); x += 4 {
			opaque = opaque && row[x] == 0xff
		}
	}
	if opaque {
		return rgbaToRGB(out)
	}
	return out
}

func fromPaletted(src *image.Paletted, ppb int) *Image[uint8] {
	bounds := src.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	palette := make([]uint8, 0, len(src.Palette)*3)
	trns := make([]uint8, 0, len(src.Palette))
	opaque := true
	for _, c := range src.Palette {
		n := color.NRGBAModel.Convert(c).(color.NRGBA)
		palette = append(palette, n.R, n.G, n.B)
		trns = append(trns, n.A)
		opaque = opaque && n.A == 0xff
	}
	if opaque {
		trns = nil
	}
	indices := make([]uint8, w*h)
	for y := range h {
		off := src.PixOffset(bounds.Min.X, bounds.Min.Y+y)
		copy(indices[y*w:(y+1)*w], src.Pix[off:off+w])
	}
	return &Image[uint8]{
		Width:        w,
		Height:       h,
		Layout:       Indexed,
		Pix:          PackIndices(indices, w, h, ppb),
		Palette:      palette,
		Transparency: trns,
	}
}
