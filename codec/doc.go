// Package codec reads and writes rasterconv images. PNG files are translated
// between the container's color type and bit depth and the Image record;
// snapshots persist records verbatim in a zstd compressed framing.
package codec
