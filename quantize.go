package rasterconv

import (
	"cmp"
	"math"
	"slices"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/muesli/clusters"
	"github.com/muesli/kmeans"
)

type QuantizeOptions struct {
	// Maximum palette size, 1-256.
	// Images with at most MaxColors distinct colors are palettized exactly.
	MaxColors int
	// Upper bound on the pixels fed to kmeans.
	// Larger images are subsampled on a regular grid.
	MaxSamples int
}

func DefaultQuantizeOptions() QuantizeOptions {
	return QuantizeOptions{
		MaxColors:  256,
		MaxSamples: 12000,
	}
}

// QuantizeOptionsFromSize picks a palette size that keeps small images in
// 4-bit packing.
func QuantizeOptionsFromSize(size int) QuantizeOptions {
	opt := DefaultQuantizeOptions()
	if size > 0 && size <= 64*64 {
		opt.MaxColors = 16
	}
	return opt
}

// paletteEntry is a palette color in both byte and colorful form.
type paletteEntry struct {
	rgb [3]uint8
	a   uint8
	col colorful.Color
}

// Palettize converts img to an Indexed image with at most opts.MaxColors
// colors. The transparency table is set when img carries alpha.
func Palettize[T Sample](img *Image[T], opts QuantizeOptions) (*Image[uint8], error) {
	if opts.MaxColors < 1 || opts.MaxColors > 256 {
		return nil, &PaletteSizeError{Colors: opts.MaxColors}
	}
	src, err := resolveIndexed(img.Bytes())
	if err != nil {
		return nil, err
	}
	if src.Layout.HasAlpha() {
		src, err = route("palettize", src, rgbaTable[uint8]())
	} else {
		src, err = route("palettize", src, rgbTable[uint8]())
	}
	if err != nil {
		return nil, err
	}
	channels := src.Layout.Channels()
	hasAlpha := channels == 4

	entries := exactPalette(src.Pix, channels, opts.MaxColors)
	if entries == nil {
		entries, err = kmeansPalette(src, opts)
		if err != nil {
			return nil, err
		}
	}
	if len(entries) == 0 {
		// empty image
		entries = []paletteEntry{{a: 0xff, col: colorful.Color{}}}
	}
	sortEntriesByBrightness(entries)

	ppb, err := PixelsPerByte(len(entries))
	if err != nil {
		return nil, err
	}

	lookup := make(map[[4]uint8]uint8)
	indices := make([]uint8, src.Pixels())
	for i := range indices {
		var key [4]uint8
		copy(key[:], src.Pix[i*channels:i*channels+channels])
		if !hasAlpha {
			key[3] = 0xff
		}
		idx, ok := lookup[key]
		if !ok {
			idx = nearestEntry(entries, key)
			lookup[key] = idx
		}
		indices[i] = idx
	}

	out := &Image[uint8]{
		Width:   src.Width,
		Height:  src.Height,
		Layout:  Indexed,
		Pix:     PackIndices(indices, src.Width, src.Height, ppb),
		Palette: make([]uint8, 0, len(entries)*3),
	}
	for _, e := range entries {
		out.Palette = append(out.Palette, e.rgb[:]...)
	}
	if hasAlpha {
		out.Transparency = make([]uint8, len(entries))
		for i, e := range entries {
			out.Transparency[i] = e.a
		}
	}
	return out, nil
}

// exactPalette returns the distinct colors of pix, or nil when there are more
// than limit of them.
func exactPalette(pix []uint8, channels, limit int) []paletteEntry {
	seen := make(map[[4]uint8]struct{})
	var out []paletteEntry
	for i := 0; i+channels <= len(pix); i += channels {
		key := [4]uint8{pix[i], pix[i+1], pix[i+2], 0xff}
		if channels == 4 {
			key[3] = pix[i+3]
		}
		if _, ok := seen[key]; ok {
			continue
		}
		if len(out) == limit {
			return nil
		}
		seen[key] = struct{}{}
		out = append(out, newEntry(key[0], key[1], key[2], key[3]))
	}
	if out == nil {
		return []paletteEntry{}
	}
	return out
}

func kmeansPalette(src *Image[uint8], opts QuantizeOptions) ([]paletteEntry, error) {
	channels := src.Layout.Channels()
	pixels := src.Pixels()

	// Subsample to keep kmeans tractable on large images.
	step := SampleStep(pixels, opts.MaxSamples)
	dataset := make(clusters.Observations, 0, min(pixels, max(opts.MaxSamples, 1)))
	for y := 0; y < src.Height; y += step {
		for x := 0; x < src.Width; x += step {
			off := pixOffset(src.Width, x, y, channels)
			p := clusters.Coordinates{
				float64(src.Pix[off]) / 255.0,
				float64(src.Pix[off+1]) / 255.0,
				float64(src.Pix[off+2]) / 255.0,
			}
			if channels == 4 {
				p = append(p, float64(src.Pix[off+3])/255.0)
			}
			dataset = append(dataset, p)
		}
	}
	k := min(opts.MaxColors, len(dataset))
	km := kmeans.New()
	cc, err := km.Partition(dataset, k)
	if err != nil {
		return nil, err
	}

	out := make([]paletteEntry, 0, len(cc))
	seen := make(map[[4]uint8]struct{})
	for _, c := range cc {
		if len(c.Observations) == 0 || len(c.Center) < 3 {
			continue
		}
		col := colorful.Color{R: c.Center[0], G: c.Center[1], B: c.Center[2]}.Clamped()
		r, g, b := col.RGB255()
		a := uint8(0xff)
		if channels == 4 && len(c.Center) > 3 {
			a = uint8(math.Round(max(0, min(1, c.Center[3])) * 255))
		}
		key := [4]uint8{r, g, b, a}
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, newEntry(r, g, b, a))
	}
	return out, nil
}

// SampleStep returns the grid step that keeps a subsampled image of the
// given pixel count at or below roughly maxSamples points. A maxSamples of 0
// or less disables subsampling.
func SampleStep(pixels, maxSamples int) int {
	if maxSamples <= 0 || pixels <= maxSamples {
		return 1
	}
	return int(math.Sqrt(float64(pixels)/float64(maxSamples))) + 1
}

func newEntry(r, g, b, a uint8) paletteEntry {
	return paletteEntry{
		rgb: [3]uint8{r, g, b},
		a:   a,
		col: colorful.Color{R: float64(r) / 255.0, G: float64(g) / 255.0, B: float64(b) / 255.0},
	}
}

func nearestEntry(entries []paletteEntry, key [4]uint8) uint8 {
	c := newEntry(key[0], key[1], key[2], key[3]).col
	best, bestDist := 0, math.MaxFloat64
	for i, e := range entries {
		da := (float64(e.a) - float64(key[3])) / 255.0
		d := c.DistanceRgb(e.col) + math.Abs(da)
		if d < bestDist {
			best, bestDist = i, d
		}
	}
	return uint8(best)
}

// luminance of a color using linear RGB weights.
func luminance(c colorful.Color) float64 {
	r, g, b := c.LinearRgb()
	return 0.2126*r + 0.7152*g + 0.0722*b
}

// SortPaletteByBrightness orders colors from darkest to brightest.
func SortPaletteByBrightness(palette []colorful.Color) {
	slices.SortStableFunc(palette, func(a, b colorful.Color) int {
		return cmp.Compare(luminance(a), luminance(b))
	})
}

func sortEntriesByBrightness(entries []paletteEntry) {
	slices.SortStableFunc(entries, func(a, b paletteEntry) int {
		if c := cmp.Compare(luminance(a.col), luminance(b.col)); c != 0 {
			return c
		}
		return cmp.Compare(a.a, b.a)
	})
}
