package features

import "github.com/setanarut/rasterconv"

var (
	testPalette = []uint8{
		137, 42, 201, 19, 174, 83, 96, 211, 47,
		224, 89, 54, 72, 120, 209, 186, 31, 143,
	}
	testHistogram = Histogram{2, 4, 2, 2, 2, 4, 2, 2, 2, 2, 2, 4, 2, 2, 2}
)

func testRGBImage() *rasterconv.Image[uint8] {
	pix := append(append([]uint8(nil), testPalette...), testPalette...)
	return &rasterconv.Image[uint8]{Width: 6, Height: 2, Layout: rasterconv.RGB, Pix: pix}
}

func testIndexedImage() *rasterconv.Image[uint8] {
	return &rasterconv.Image[uint8]{
		Width:   6,
		Height:  2,
		Layout:  rasterconv.Indexed,
		Pix:     []uint8{1, 35, 69, 1, 35, 69},
		Palette: append([]uint8(nil), testPalette...),
	}
}
