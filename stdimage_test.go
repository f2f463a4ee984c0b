package rasterconv

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStdImage(t *testing.T) {
	gray, err := StdImage(testGrayImage())
	require.NoError(t, err)
	require.IsType(t, &image.Gray{}, gray)
	assert.Equal(t, color.Gray{Y: 117}, gray.At(1, 1))

	pal, err := StdImage(testIndexedImage(testTransparency))
	require.NoError(t, err)
	require.IsType(t, &image.Paletted{}, pal)
	assert.Equal(t, uint8(5), pal.(*image.Paletted).ColorIndexAt(5, 1))
	assert.Equal(t, color.NRGBA{R: 96, G: 211, B: 47, A: 150}, pal.(*image.Paletted).Palette[2])

	rgba, err := StdImage(testRGBAImage().Units())
	require.NoError(t, err)
	require.IsType(t, &image.NRGBA{}, rgba)
	assert.Equal(t, color.NRGBA{R: 224, G: 89, B: 54, A: 100}, rgba.(*image.NRGBA).NRGBAAt(3, 0))

	rgb, err := StdImage(testRGBImage())
	require.NoError(t, err)
	assert.Equal(t, color.NRGBA{R: 186, G: 31, B: 143, A: 255}, rgb.(*image.NRGBA).NRGBAAt(5, 1))
	assert.Equal(t, image.Rect(0, 0, 6, 2), rgb.Bounds())
}

func TestFromStdImageRoundTrip(t *testing.T) {
	images := map[string]*Image[uint8]{
		"Grayscale":   testGrayImage(),
		"RGB":         testRGBImage(),
		"RGBA":        testRGBAImage(),
		"Indexed":     testIndexedImage(nil),
		"IndexedTRNS": testIndexedImage(testTransparency),
	}
	for name, img := range images {
		t.Run(name, func(t *testing.T) {
			std, err := StdImage(img)
			require.NoError(t, err)
			assert.Equal(t, img, FromStdImage(std))
		})
	}
}

func TestFromStdImageAlpha(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 2, 1))
	src.SetNRGBA(0, 0, color.NRGBA{R: 10, G: 20, B: 30, A: 255})
	got := FromStdImage(src)
	assert.Equal(t, RGBA, got.Layout)
	assert.Equal(t, []uint8{10, 20, 30, 255, 0, 0, 0, 0}, got.Pix)

	src.SetNRGBA(1, 0, color.NRGBA{A: 255})
	got = FromStdImage(src)
	assert.Equal(t, RGB, got.Layout)
	assert.Equal(t, []uint8{10, 20, 30, 0, 0, 0}, got.Pix)
}

func TestFromStdImageSubImage(t *testing.T) {
	src := image.NewGray(image.Rect(0, 0, 4, 4))
	src.SetGray(2, 3, color.Gray{Y: 200})
	sub := src.SubImage(image.Rect(2, 2, 4, 4))
	got := FromStdImage(sub)
	assert.Equal(t, 2, got.Width)
	assert.Equal(t, []uint8{0, 0, 200, 0}, got.Pix)
}
