package rasterconv

import "fmt"

// step converts a direct-color image to another direct-color layout.
type step[T Sample] func(*Image[T]) *Image[T]

// rgbTable routes each direct layout to RGB. Indexed has no entry: it is
// resolved by resolveIndexed before the lookup.
func rgbTable[T Sample]() [layoutCount]step[T] {
	return [layoutCount]step[T]{
		Grayscale:      grayToRGB[T],
		GrayscaleAlpha: grayAlphaToRGB[T],
		RGB:            (*Image[T]).Clone,
		RGBA:           rgbaToRGB[T],
	}
}

// rgbaTable routes each direct layout to RGBA.
func rgbaTable[T Sample]() [layoutCount]step[T] {
	return [layoutCount]step[T]{
		Grayscale:      grayToRGBA[T],
		GrayscaleAlpha: grayAlphaToRGBA[T],
		RGB:            rgbToRGBA[T],
		RGBA:           (*Image[T]).Clone,
	}
}

// grayTable routes each direct layout to Grayscale, or GrayscaleAlpha when
// the layout has alpha. Luma is always computed on byte samples.
var grayTable = [layoutCount]step[uint8]{
	Grayscale:      (*Image[uint8]).Clone,
	GrayscaleAlpha: (*Image[uint8]).Clone,
	RGB:            rgbToGray,
	RGBA:           rgbaToGrayAlpha,
}

// resolveIndexed depalettizes Indexed images and returns every other image
// as is. Afterwards the layout is always direct.
func resolveIndexed[T Sample](img *Image[T]) (*Image[T], error) {
	if img.Layout != Indexed {
		return img, nil
	}
	return Depalettize(img)
}

// route resolves img and applies the table entry for its layout.
func route[T Sample](op string, img *Image[T], table [layoutCount]step[T]) (*Image[T], error) {
	if !img.Layout.Valid() {
		return nil, &LayoutError{Op: op, Layout: img.Layout}
	}
	src, err := resolveIndexed(img)
	if err != nil {
		return nil, err
	}
	if err := checkDirect(src); err != nil {
		return nil, err
	}
	if want := src.Pixels() * src.Layout.Channels(); len(src.Pix) > want {
		// Trailing samples past the last pixel are dropped.
		trimmed := *src
		trimmed.Pix = src.Pix[:want]
		src = &trimmed
	}
	fn := table[src.Layout]
	if fn == nil {
		return nil, &LayoutError{Op: op, Layout: src.Layout}
	}
	out := fn(src)
	out.Palette, out.Transparency = nil, nil
	return out, nil
}

func checkDims[T Sample](img *Image[T]) error {
	if img.Width < 0 || img.Height < 0 {
		return fmt.Errorf("rasterconv: negative dimensions %dx%d", img.Width, img.Height)
	}
	return nil
}

func checkDirect[T Sample](img *Image[T]) error {
	if err := checkDims(img); err != nil {
		return err
	}
	if want := img.Pixels() * img.Layout.Channels(); len(img.Pix) < want {
		return fmt.Errorf("%w: have %d samples, want %d", ErrShortPixelData, len(img.Pix), want)
	}
	return nil
}
