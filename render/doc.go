// Package render draws feature histograms as terminal bar charts or as
// raster images.
package render
