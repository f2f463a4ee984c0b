// Package rasterconv converts decoded raster images between pixel layouts
// (Indexed, Grayscale, GrayscaleAlpha, RGB, RGBA) and sample encodings (bytes
// and unit floats).
//
// Images are held in an Image record: dimensions, a layout tag and one flat,
// interleaved sample buffer. Indexed images additionally carry a palette of
// RGB triples and an optional transparency table, and store their palette
// indices packed into byte aligned rows (8, 4, 2 or 1 indices per byte
// depending on the palette size).
//
// Every conversion returns a new record and never modifies its input, so
// different images can be converted concurrently:
//
//	rgb, err := rasterconv.ToRGB(img)
//	gray, err := rasterconv.ToGray(img)
//	units := img.Units()
//
// Indexed images are always resolved by Depalettize first, then converted by
// a fixed per-layout table.
package rasterconv
