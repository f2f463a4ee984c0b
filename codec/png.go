package codec

import (
	"fmt"
	"image/color"
	"image/png"
	"io"
	"os"

	"github.com/setanarut/rasterconv"
)

// ColorType is the PNG IHDR color type.
type ColorType uint8

const (
	ColorGrayscale      ColorType = 0
	ColorRGB            ColorType = 2
	ColorIndexed        ColorType = 3
	ColorGrayscaleAlpha ColorType = 4
	ColorRGBA           ColorType = 6
)

func (c ColorType) String() string {
	switch c {
	case ColorGrayscale:
		return "Grayscale"
	case ColorRGB:
		return "RGB"
	case ColorIndexed:
		return "Indexed"
	case ColorGrayscaleAlpha:
		return "GrayscaleAlpha"
	case ColorRGBA:
		return "RGBA"
	default:
		return fmt.Sprintf("ColorType(%d)", uint8(c))
	}
}

// ColorTypeOf translates a layout into the PNG color type.
func ColorTypeOf(l rasterconv.Layout) (ColorType, error) {
	switch l {
	case rasterconv.Grayscale:
		return ColorGrayscale, nil
	case rasterconv.GrayscaleAlpha:
		return ColorGrayscaleAlpha, nil
	case rasterconv.RGB:
		return ColorRGB, nil
	case rasterconv.RGBA:
		return ColorRGBA, nil
	case rasterconv.Indexed:
		return ColorIndexed, nil
	}
	return 0, fmt.Errorf("%w: %s", rasterconv.ErrInvalidLayout, l)
}

// LayoutOf translates a PNG color type into a layout.
func LayoutOf(c ColorType) (rasterconv.Layout, error) {
	switch c {
	case ColorGrayscale:
		return rasterconv.Grayscale, nil
	case ColorGrayscaleAlpha:
		return rasterconv.GrayscaleAlpha, nil
	case ColorRGB:
		return rasterconv.RGB, nil
	case ColorRGBA:
		return rasterconv.RGBA, nil
	case ColorIndexed:
		return rasterconv.Indexed, nil
	}
	return 0, fmt.Errorf("%w: unknown color type %d", ErrDecode, c)
}

// BitDepth returns the PNG bit depth used when writing img. Indexed images
// use the depth implied by their palette size, everything else 8 bits.
func BitDepth[T rasterconv.Sample](img *rasterconv.Image[T]) int {
	if img.Layout != rasterconv.Indexed {
		return 8
	}
	ppb, err := rasterconv.PixelsPerByte(img.Colors())
	if err != nil {
		return 8
	}
	return rasterconv.BitDepth(ppb)
}

// Decode reads a PNG image. Only the first frame is considered.
func Decode(r io.Reader) (*rasterconv.Image[uint8], error) {
	img, err := png.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}
	return rasterconv.FromStdImage(img), nil
}

// ReadFile decodes the PNG file at path.
func ReadFile(path string) (*rasterconv.Image[uint8], error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrNotFound, path, err)
	}
	defer f.Close()
	return Decode(f)
}

// Encode writes img as PNG. Gray+alpha images are stored as RGBA since the
// standard encoder has no gray+alpha type.
func Encode[T rasterconv.Sample](w io.Writer, img *rasterconv.Image[T]) error {
	std, err := rasterconv.StdImage(img)
	if err != nil {
		return err
	}
	return png.Encode(w, std)
}

// WriteFile encodes img as PNG to path.
func WriteFile[T rasterconv.Sample](path string, img *rasterconv.Image[T]) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := Encode(f, img); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// Info describes a decoded PNG without converting its pixels.
type Info struct {
	Width, Height int
	ColorType     ColorType
}

// DecodeInfo reads the PNG header.
func DecodeInfo(r io.Reader) (Info, error) {
	cfg, err := png.DecodeConfig(r)
	if err != nil {
		return Info{}, fmt.Errorf("%w: %w", ErrDecode, err)
	}
	return Info{Width: cfg.Width, Height: cfg.Height, ColorType: colorTypeOfModel(cfg.ColorModel)}, nil
}

// colorTypeOfModel maps the color model chosen by image/png back to the
// container color type. Gray+alpha files decode to NRGBA and are reported as
// RGBA.
func colorTypeOfModel(m color.Model) ColorType {
	if _, ok := m.(color.Palette); ok {
		return ColorIndexed
	}
	switch m {
	case color.GrayModel, color.Gray16Model:
		return ColorGrayscale
	case color.RGBAModel, color.RGBA64Model:
		return ColorRGB
	default:
		return ColorRGBA
	}
}
