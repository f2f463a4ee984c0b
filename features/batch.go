package features

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/setanarut/rasterconv"
)

// Features bundles the descriptors of one image.
type Features struct {
	Brightness float64
	Histogram  Histogram
}

// Extract computes all descriptors of img.
func Extract[T rasterconv.Sample](img *rasterconv.Image[T]) (Features, error) {
	var f Features
	var err error
	if f.Brightness, err = MeanBrightness(img); err != nil {
		return f, err
	}
	if f.Histogram, err = ColorHistogram(img); err != nil {
		return f, err
	}
	return f, nil
}

// ExtractAll runs Extract on every image with at most concurrency images in
// flight. Results keep the order of images. The first error cancels the
// remaining work.
func ExtractAll[T rasterconv.Sample](ctx context.Context, images []*rasterconv.Image[T], concurrency int) ([]Features, error) {
	out := make([]Features, len(images))
	g, ctx := errgroup.WithContext(ctx)
	if concurrency > 0 {
		g.SetLimit(concurrency)
	}
	for i, img := range images {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			f, err := Extract(img)
			if err != nil {
				return fmt.Errorf("image %d: %w", i, err)
			}
			out[i] = f
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
