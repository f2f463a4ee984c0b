package codec

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/setanarut/rasterconv"
)

var testPalette = []uint8{
	137, 42, 201, 19, 174, 83, 96, 211, 47,
	224, 89, 54, 72, 120, 209, 186, 31, 143,
}

func testIndexedImage(trns []uint8) *rasterconv.Image[uint8] {
	return &rasterconv.Image[uint8]{
		Width:        6,
		Height:       2,
		Layout:       rasterconv.Indexed,
		Pix:          []uint8{1, 35, 69, 1, 35, 69},
		Palette:      append([]uint8(nil), testPalette...),
		Transparency: trns,
	}
}

func testRGBImage() *rasterconv.Image[uint8] {
	pix := append(append([]uint8(nil), testPalette...), testPalette...)
	return &rasterconv.Image[uint8]{Width: 6, Height: 2, Layout: rasterconv.RGB, Pix: pix}
}

func testRGBAImage() *rasterconv.Image[uint8] {
	rgba, err := rasterconv.ToRGBA(testIndexedImage([]uint8{255, 200, 150, 100, 50, 0}))
	if err != nil {
		panic(err)
	}
	return rgba
}

func testBilevelImage() *rasterconv.Image[uint8] {
	indices := make([]uint8, 10*3)
	for i := range indices {
		indices[i] = uint8(i % 3 % 2)
	}
	return &rasterconv.Image[uint8]{
		Width:   10,
		Height:  3,
		Layout:  rasterconv.Indexed,
		Pix:     rasterconv.PackIndices(indices, 10, 3, 8),
		Palette: []uint8{0, 0, 0, 255, 255, 255},
	}
}

func TestPNGRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		img  *rasterconv.Image[uint8]
	}{
		{"Grayscale", &rasterconv.Image[uint8]{Width: 3, Height: 2, Layout: rasterconv.Grayscale, Pix: []uint8{0, 17, 34, 51, 68, 255}}},
		{"RGB", testRGBImage()},
		{"RGBA", testRGBAImage()},
		{"Indexed", testIndexedImage(nil)},
		{"IndexedTransparency", testIndexedImage([]uint8{255, 200, 150, 100, 50, 0})},
		{"Bilevel", testBilevelImage()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, Encode(&buf, tt.img))
			got, err := Decode(bytes.NewReader(buf.Bytes()))
			require.NoError(t, err)
			assert.Equal(t, tt.img, got)
		})
	}
}

func TestPNGGrayAlpha(t *testing.T) {
	img := &rasterconv.Image[uint8]{Width: 2, Height: 1, Layout: rasterconv.GrayscaleAlpha, Pix: []uint8{10, 255, 20, 128}}
	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, img))
	got, err := Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, rasterconv.RGBA, got.Layout)
	assert.Equal(t, []uint8{10, 10, 10, 255, 20, 20, 20, 128}, got.Pix)
}

func TestPNGUnits(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, testRGBImage().Units()))
	got, err := Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, testRGBImage(), got)
}

func TestDecodeInfo(t *testing.T) {
	tests := []struct {
		img  *rasterconv.Image[uint8]
		want ColorType
	}{
		{&rasterconv.Image[uint8]{Width: 1, Height: 1, Layout: rasterconv.Grayscale, Pix: []uint8{1}}, ColorGrayscale},
		{testRGBImage(), ColorRGB},
		{testRGBAImage(), ColorRGBA},
		{testIndexedImage(nil), ColorIndexed},
	}
	for _, tt := range tests {
		t.Run(tt.want.String(), func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, Encode(&buf, tt.img))
			info, err := DecodeInfo(&buf)
			require.NoError(t, err)
			assert.Equal(t, Info{Width: tt.img.Width, Height: tt.img.Height, ColorType: tt.want}, info)
		})
	}
}

func TestColorTypes(t *testing.T) {
	for l := rasterconv.Grayscale; l <= rasterconv.Indexed; l++ {
		ct, err := ColorTypeOf(l)
		require.NoError(t, err)
		back, err := LayoutOf(ct)
		require.NoError(t, err)
		assert.Equal(t, l, back)
	}
	_, err := ColorTypeOf(rasterconv.Layout(9))
	assert.ErrorIs(t, err, rasterconv.ErrInvalidLayout)
	_, err = LayoutOf(ColorType(5))
	assert.ErrorIs(t, err, ErrDecode)
	assert.Equal(t, "ColorType(5)", ColorType(5).String())
}

func TestBitDepth(t *testing.T) {
	assert.Equal(t, 8, BitDepth(testRGBImage()))
	assert.Equal(t, 4, BitDepth(testIndexedImage(nil)))
	assert.Equal(t, 1, BitDepth(testBilevelImage()))
}

func TestFiles(t *testing.T) {
	path := filepath.Join(t.TempDir(), "image.png")
	require.NoError(t, WriteFile(path, testIndexedImage(nil)))
	got, err := ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, testIndexedImage(nil), got)

	_, err = ReadFile(filepath.Join(t.TempDir(), "missing.png"))
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDecodeGarbage(t *testing.T) {
	_, err := Decode(bytes.NewReader([]byte("definitely not a png")))
	assert.ErrorIs(t, err, ErrDecode)

	_, err = DecodeInfo(bytes.NewReader(nil))
	assert.ErrorIs(t, err, ErrDecode)
}
