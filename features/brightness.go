package features

import (
	"gonum.org/v1/gonum/stat"

	"github.com/setanarut/rasterconv"
)

// MeanBrightness returns the average gray level of img normalized to [0,1].
//
// Grayscale images are averaged directly. Every other layout goes through
// ToRGB and then ToGray before averaging, so the rounding of both hops is part
// of the result.
func MeanBrightness[T rasterconv.Sample](img *rasterconv.Image[T]) (float64, error) {
	if img.Layout == rasterconv.Grayscale {
		return meanGray(img.Bytes()), nil
	}
	rgb, err := rasterconv.ToRGB(img)
	if err != nil {
		return 0, err
	}
	gray, err := rasterconv.ToGray(rgb)
	if err != nil {
		return 0, err
	}
	return meanGray(gray), nil
}

func meanGray(img *rasterconv.Image[uint8]) float64 {
	n := min(img.Pixels(), len(img.Pix))
	if n <= 0 {
		return 0
	}
	values := make([]float64, n)
	for i, v := range img.Pix[:n] {
		values[i] = float64(v)
	}
	return stat.Mean(values, nil) / 255.0
}
