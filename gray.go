package rasterconv

// Luma returns floor(0.3*r + 0.59*g + 0.11*b), computed on integer
// percentages so that gray input maps to itself.
func Luma(r, g, b uint8) uint8 {
	return uint8((30*int(r) + 59*int(g) + 11*int(b)) / 100)
}

// ToGray converts img to Grayscale, or GrayscaleAlpha when it carries alpha.
// Samples are converted to bytes first and Indexed images are depalettized
// before the luma pass.
func ToGray[T Sample](img *Image[T]) (*Image[uint8], error) {
	return route("to grayscale", img.Bytes(), grayTable)
}

func rgbToGray(src *Image[uint8]) *Image[uint8] {
	dst := NewImage[uint8](src.Width, src.Height, Grayscale)
	for i := range src.Pixels() {
		p := src.Pix[i*3 : i*3+3]
		dst.Pix[i] = Luma(p[0], p[1], p[2])
	}
	return dst
}

func rgbaToGrayAlpha(src *Image[uint8]) *Image[uint8] {
	dst := NewImage[uint8](src.Width, src.Height, GrayscaleAlpha)
	for i := range src.Pixels() {
		p := src.Pix[i*4 : i*4+4]
		dst.Pix[i*2] = Luma(p[0], p[1], p[2])
		dst.Pix[i*2+1] = p[3]
	}
	return dst
}
