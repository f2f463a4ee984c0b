package rasterconv

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLuma(t *testing.T) {
	tests := []struct {
		r, g, b uint8
		want    uint8
	}{
		{0, 0, 0, 0},
		{255, 255, 255, 255},
		{255, 0, 0, 76},
		{0, 255, 0, 150},
		{0, 0, 255, 28},
		{137, 42, 201, 87},
		{19, 174, 83, 117},
		{96, 211, 47, 158},
		{224, 89, 54, 125},
		{72, 120, 209, 115},
		{186, 31, 143, 89},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Luma(tt.r, tt.g, tt.b), "rgb(%d,%d,%d)", tt.r, tt.g, tt.b)
	}
}

func TestLumaGrayIsIdentity(t *testing.T) {
	for g := range 256 {
		v := uint8(g)
		assert.Equal(t, v, Luma(v, v, v))
	}
	assert.Equal(t, uint8(7), Luma(7, 7, 7))
}

func TestLumaExactFloor(t *testing.T) {
	for r := 0; r < 256; r += 5 {
		for g := 0; g < 256; g += 3 {
			for b := 0; b < 256; b += 7 {
				want := uint8((30*r + 59*g + 11*b) / 100)
				assert.Equal(t, want, Luma(uint8(r), uint8(g), uint8(b)), "rgb(%d,%d,%d)", r, g, b)
			}
		}
	}
}

func TestToGray(t *testing.T) {
	want := append(append([]uint8(nil), testGrayRow...), testGrayRow...)

	t.Run("RGB", func(t *testing.T) {
		got, err := ToGray(testRGBImage())
		require.NoError(t, err)
		assert.Equal(t, Grayscale, got.Layout)
		assert.Equal(t, want, got.Pix)
	})

	t.Run("RGBA", func(t *testing.T) {
		got, err := ToGray(testRGBAImage())
		require.NoError(t, err)
		assert.Equal(t, GrayscaleAlpha, got.Layout)
		assert.Equal(t, testGrayAlphaImage().Pix, got.Pix)
	})

	t.Run("Identity", func(t *testing.T) {
		got, err := ToGray(testGrayImage())
		require.NoError(t, err)
		assert.Equal(t, testGrayImage(), got)

		got, err = ToGray(testGrayAlphaImage())
		require.NoError(t, err)
		assert.Equal(t, testGrayAlphaImage(), got)
	})

	t.Run("Indexed", func(t *testing.T) {
		got, err := ToGray(testIndexedImage(nil))
		require.NoError(t, err)
		assert.Equal(t, Grayscale, got.Layout)
		assert.Equal(t, want, got.Pix)

		got, err = ToGray(testIndexedImage(testTransparency))
		require.NoError(t, err)
		assert.Equal(t, GrayscaleAlpha, got.Layout)
		assert.Equal(t, testGrayAlphaImage().Pix, got.Pix)
		assert.Nil(t, got.Palette)
	})

	t.Run("Units", func(t *testing.T) {
		got, err := ToGray(testRGBImage().Units())
		require.NoError(t, err)
		assert.Equal(t, want, got.Pix)
	})
}

// Every layout of the reference image lands on the same gray row after
// ToRGB followed by ToGray.
func TestToRGBThenGray(t *testing.T) {
	want := append(append([]uint8(nil), testGrayRow...), testGrayRow...)
	images := map[string]*Image[uint8]{
		"Grayscale":      testGrayImage(),
		"GrayscaleAlpha": testGrayAlphaImage(),
		"RGB":            testRGBImage(),
		"RGBA":           testRGBAImage(),
		"Indexed":        testIndexedImage(nil),
		"IndexedRGBA":    testIndexedImage(testTransparency),
	}
	for name, img := range images {
		t.Run(name, func(t *testing.T) {
			rgb, err := ToRGB(img)
			require.NoError(t, err)
			gray, err := ToGray(rgb)
			require.NoError(t, err)
			assert.Equal(t, want, gray.Pix)
		})
	}
}
