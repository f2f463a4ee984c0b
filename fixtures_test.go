package rasterconv

var (
	testPalette = []uint8{
		137, 42, 201, 19, 174, 83, 96, 211, 47,
		224, 89, 54, 72, 120, 209, 186, 31, 143,
	}
	testTransparency = []uint8{255, 200, 150, 100, 50, 0}
	testGrayRow      = []uint8{87, 117, 158, 125, 115, 89}
)

func testRGBImage() *Image[uint8] {
	return &Image[uint8]{
		Width:  6,
		Height: 2,
		Layout: RGB,
		Pix: []uint8{
			137, 42, 201, 19, 174, 83, 96, 211, 47, 224, 89, 54, 72, 120, 209, 186, 31, 143,
			137, 42, 201, 19, 174, 83, 96, 211, 47, 224, 89, 54, 72, 120, 209, 186, 31, 143,
		},
	}
}

func testRGBAImage() *Image[uint8] {
	return &Image[uint8]{
		Width:  6,
		Height: 2,
		Layout: RGBA,
		Pix: []uint8{
			137, 42, 201, 255, 19, 174, 83, 200, 96, 211, 47, 150, 224, 89, 54, 100, 72, 120, 209, 50, 186, 31, 143, 0,
			137, 42, 201, 255, 19, 174, 83, 200, 96, 211, 47, 150, 224, 89, 54, 100, 72, 120, 209, 50, 186, 31, 143, 0,
		},
	}
}

func testGrayAlphaImage() *Image[uint8] {
	return &Image[uint8]{
		Width:  6,
		Height: 2,
		Layout: GrayscaleAlpha,
		Pix: []uint8{
			87, 255, 117, 200, 158, 150, 125, 100, 115, 50, 89, 0,
			87, 255, 117, 200, 158, 150, 125, 100, 115, 50, 89, 0,
		},
	}
}

func testGrayImage() *Image[uint8] {
	return &Image[uint8]{
		Width:  6,
		Height: 2,
		Layout: Grayscale,
		Pix:    []uint8{87, 117, 158, 125, 115, 89, 87, 117, 158, 125, 115, 89},
	}
}

// testIndexedImage packs the six palette colors two per byte, one row per
// palette pass.
func testIndexedImage(trns []uint8) *Image[uint8] {
	return &Image[uint8]{
		Width:        6,
		Height:       2,
		Layout:       Indexed,
		Pix:          []uint8{1, 35, 69, 1, 35, 69},
		Palette:      append([]uint8(nil), testPalette...),
		Transparency: trns,
	}
}
