package render

import (
	"bufio"
	"fmt"
	"io"
	"math"

	"github.com/setanarut/rasterconv/features"
)

const (
	ansiRed   = "\x1b[31m"
	ansiGreen = "\x1b[32m"
	ansiBlue  = "\x1b[34m"
	ansiReset = "\x1b[0m"

	bar = "█"
)

type Options struct {
	// Number of rows above the baseline row.
	Height int
	// Disable ANSI color escapes.
	NoColor bool
}

func DefaultOptions() Options {
	return Options{Height: 10}
}

// Histogram writes h to w as a vertical bar chart using DefaultOptions.
func Histogram(w io.Writer, h features.Histogram) error {
	return HistogramWithOptions(w, h, DefaultOptions())
}

// HistogramWithOptions writes h to w as a vertical bar chart. Rows run from
// opt.Height down to 0, one tab separated column per bucket, followed by a
// line with the raw counts.
func HistogramWithOptions(w io.Writer, h features.Histogram, opt Options) error {
	if opt.Height <= 0 {
		opt.Height = DefaultOptions().Height
	}
	bw := bufio.NewWriter(w)
	heights := barHeights(h, opt.Height)
	for row := opt.Height; row >= 0; row-- {
		for i, height := range heights {
			if height >= row {
				if opt.NoColor {
					fmt.Fprint(bw, bar+" \t")
				} else {
					fmt.Fprint(bw, channelColor(i)+bar+" "+ansiReset+"\t")
				}
			} else {
				bw.WriteString("\t")
			}
		}
		bw.WriteString("\n")
	}
	for _, v := range h {
		fmt.Fprintf(bw, "%3d\t", v)
	}
	bw.WriteString("\n")
	return bw.Flush()
}

// barHeights scales every bucket to round(count/max*height). An all-zero
// histogram yields zero heights.
func barHeights(h features.Histogram, height int) []int {
	peak := float64(max(1, h.Max()))
	out := make([]int, len(h))
	for i, v := range h {
		out[i] = int(math.Round(float64(v) / peak * float64(height)))
	}
	return out
}

func channelColor(bucket int) string {
	switch bucket / features.BucketsPerChannel {
	case 0:
		return ansiRed
	case 1:
		return ansiGreen
	default:
		return ansiBlue
	}
}
