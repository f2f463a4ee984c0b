package rasterconv

// ToRGB converts img to the RGB layout. Alpha is dropped, gray samples are
// replicated into three channels and Indexed images are depalettized first.
// The result never carries a palette or transparency table.
func ToRGB[T Sample](img *Image[T]) (*Image[T], error) {
	return route("to rgb", img, rgbTable[T]())
}

// ToRGBA converts img to the RGBA layout. Images without alpha become fully
// opaque.
func ToRGBA[T Sample](img *Image[T]) (*Image[T], error) {
	return route("to rgba", img, rgbaTable[T]())
}

func rgbaToRGB[T Sample](src *Image[T]) *Image[T] {
	dst := NewImage[T](src.Width, src.Height, RGB)
	for i := range src.Pixels() {
		copy(dst.Pix[i*3:i*3+3], src.Pix[i*4:i*4+3])
	}
	return dst
}

func grayAlphaToRGB[T Sample](src *Image[T]) *Image[T] {
	dst := NewImage[T](src.Width, src.Height, RGB)
	for i := range src.Pixels() {
		g := src.Pix[i*2]
		dst.Pix[i*3], dst.Pix[i*3+1], dst.Pix[i*3+2] = g, g, g
	}
	return dst
}

func grayToRGB[T Sample](src *Image[T]) *Image[T] {
	dst := NewImage[T](src.Width, src.Height, RGB)
	for i := range src.Pixels() {
		g := src.Pix[i]
		dst.Pix[i*3], dst.Pix[i*3+1], dst.Pix[i*3+2] = g, g, g
	}
	return dst
}

func rgbToRGBA[T Sample](src *Image[T]) *Image[T] {
	dst := NewImage[T](src.Width, src.Height, RGBA)
	opaque := FromByte[T](0xff)
	for i := range src.Pixels() {
		copy(dst.Pix[i*4:i*4+3], src.Pix[i*3:i*3+3])
		dst.Pix[i*4+3] = opaque
	}
	return dst
}

func grayToRGBA[T Sample](src *Image[T]) *Image[T] {
	dst := NewImage[T](src.Width, src.Height, RGBA)
	opaque := FromByte[T](0xff)
	for i := range src.Pixels() {
		g := src.Pix[i]
		dst.Pix[i*4], dst.Pix[i*4+1], dst.Pix[i*4+2], dst.Pix[i*4+3] = g, g, g, opaque
	}
	return dst
}

func grayAlphaToRGBA[T Sample](src *Image[T]) *Image[T] {
	dst := NewImage[T](src.Width, src.Height, RGBA)
	for i := range src.Pixels() {
		g, a := src.Pix[i*2], src.Pix[i*2+1]
		dst.Pix[i*4], dst.Pix[i*4+1], dst.Pix[i*4+2], dst.Pix[i*4+3] = g, g, g, a
	}
	return dst
}
