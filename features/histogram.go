package features

import (
	"math"

	"github.com/setanarut/rasterconv"
)

const (
	// BucketsPerChannel is the number of equal-width buckets per channel.
	BucketsPerChannel = 5
	// HistogramSize is the total bucket count: red, then green, then blue.
	HistogramSize = 3 * BucketsPerChannel
)

// Histogram counts pixels per channel bucket. Indices 0-4 are red, 5-9 green
// and 10-14 blue.
type Histogram [HistogramSize]uint32

func (h Histogram) Red() []uint32   { return h[0:BucketsPerChannel] }
func (h Histogram) Green() []uint32 { return h[BucketsPerChannel : 2*BucketsPerChannel] }
func (h Histogram) Blue() []uint32  { return h[2*BucketsPerChannel:] }

// Total returns the sum of all buckets.
func (h Histogram) Total() uint64 {
	var sum uint64
	for _, v := range h {
		sum += uint64(v)
	}
	return sum
}

// Max returns the largest bucket count.
func (h Histogram) Max() uint32 {
	var m uint32
	for _, v := range h {
		m = max(m, v)
	}
	return m
}

// Vector returns the counts as a float64 slice, suitable for CosineSimilarity.
func (h Histogram) Vector() []float64 {
	out := make([]float64, len(h))
	for i, v := range h {
		out[i] = float64(v)
	}
	return out
}

// ColorHistogram buckets the unit-encoded RGB samples of img. Non-RGB images
// are converted with ToRGB first.
func ColorHistogram[T rasterconv.Sample](img *rasterconv.Image[T]) (Histogram, error) {
	var h Histogram
	src := img
	if img.Layout != rasterconv.RGB {
		rgb, err := rasterconv.ToRGB(img)
		if err != nil {
			return h, err
		}
		src = rgb
	}
	n := min(src.Pixels(), len(src.Pix)/3)
	for i := range n {
		p := src.Pix[i*3 : i*3+3]
		h[bucket(rasterconv.ToUnit(p[0]), 0)]++
		h[bucket(rasterconv.ToUnit(p[1]), BucketsPerChannel)]++
		h[bucket(rasterconv.ToUnit(p[2]), 2*BucketsPerChannel)]++
	}
	return h, nil
}

// bucket maps a unit value to base+floor(v*5). Exactly 1.0 belongs to the
// last bucket; values outside [0,1] clamp to the first or last bucket.
func bucket(v float32, base int) int {
	if v >= 1.0 {
		return base + BucketsPerChannel - 1
	}
	if !(v > 0) {
		return base
	}
	i := int(math.Floor(float64(float32(v * BucketsPerChannel))))
	return base + min(i, BucketsPerChannel-1)
}
