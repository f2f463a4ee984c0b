package features

import (
	"cmp"
	"image/color"
	"log/slog"
	"math"
	"slices"

	"github.com/cenkalti/dominantcolor"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/muesli/clusters"
	"github.com/muesli/kmeans"

	"github.com/setanarut/rasterconv"
)

type PaletteMethod int

const (
	PaletteMethodDominantColor PaletteMethod = iota
	PaletteMethodKMeans
)

func (m PaletteMethod) String() string {
	switch m {
	case PaletteMethodKMeans:
		return "kmeans"
	default:
		return "dominantcolor"
	}
}

// ParsePaletteMethod maps a method name back to its PaletteMethod.
func ParsePaletteMethod(s string) (PaletteMethod, bool) {
	switch s {
	case "kmeans":
		return PaletteMethodKMeans, true
	case "dominantcolor", "":
		return PaletteMethodDominantColor, true
	}
	return 0, false
}

type weightedColor struct {
	col    colorful.Color
	weight float64
}

// DominantColors extracts up to k representative colors of img. The kmeans
// method falls back to dominantcolor when clustering yields nothing.
func DominantColors[T rasterconv.Sample](img *rasterconv.Image[T], k int, method PaletteMethod) ([]colorful.Color, error) {
	if k <= 0 {
		return nil, nil
	}
	rgb, err := rasterconv.ToRGB(img)
	if err != nil {
		return nil, err
	}
	if method == PaletteMethodKMeans {
		if p := kmeansColors(rgb.Bytes(), k); len(p) != 0 {
			return p, nil
		}
		slog.Warn("kmeans returned empty palette, falling back to dominantcolor", "k", k)
	}
	return dominantColors(rgb, k)
}

func dominantColors[T rasterconv.Sample](rgb *rasterconv.Image[T], k int) ([]colorful.Color, error) {
	std, err := rasterconv.StdImage(rgb)
	if err != nil {
		return nil, err
	}
	candidates := dominantcolor.FindWeight(std, max(24, k*8))
	if len(candidates) == 0 {
		candidates = append(candidates, dominantcolor.Color{
			RGBA:   color.RGBA{R: 128, G: 128, B: 128, A: 255},
			Weight: 1.0,
		})
	}
	weighted := make([]weightedColor, 0, len(candidates))
	for _, c := range candidates {
		col, _ := colorful.MakeColor(c.RGBA)
		weighted = append(weighted, weightedColor{col: col.Clamped(), weight: c.Weight})
	}
	return pickDiverse(weighted, k), nil
}

func kmeansColors(rgb *rasterconv.Image[uint8], k int) []colorful.Color {
	dataset := sampleObservations(rgb, rasterconv.DefaultQuantizeOptions().MaxSamples)
	if len(dataset) == 0 {
		return nil
	}
	// Over-partition so pickDiverse has candidates to choose from.
	workK := min(max(k*4, k+2), len(dataset))
	cc, err := kmeans.New().Partition(dataset, workK)
	if err != nil || len(cc) == 0 {
		return nil
	}
	slices.SortStableFunc(cc, func(a, b clusters.Cluster) int {
		return cmp.Compare(len(b.Observations), len(a.Observations))
	})

	weighted := make([]weightedColor, 0, len(cc))
	for _, c := range cc {
		if len(c.Observations) == 0 || len(c.Center) < 3 {
			continue
		}
		col := colorful.Color{R: c.Center[0], G: c.Center[1], B: c.Center[2]}.Clamped()
		weighted = append(weighted, weightedColor{col: col, weight: float64(len(c.Observations))})
	}
	return pickDiverse(weighted, k)
}

// sampleObservations returns the unit RGB values of rgb on a regular grid
// holding at most about maxSamples points.
func sampleObservations(rgb *rasterconv.Image[uint8], maxSamples int) clusters.Observations {
	n := min(rgb.Pixels(), len(rgb.Pix)/3)
	if n <= 0 {
		return nil
	}
	step := rasterconv.SampleStep(n, maxSamples)
	dataset := make(clusters.Observations, 0, min(n, max(maxSamples, 1)))
	for y := 0; y < rgb.Height; y += step {
		for x := 0; x < rgb.Width; x += step {
			off := (y*rgb.Width + x) * 3
			if off+3 > len(rgb.Pix) {
				continue
			}
			p := rgb.Pix[off : off+3]
			dataset = append(dataset, clusters.Coordinates{
				float64(p[0]) / 255.0,
				float64(p[1]) / 255.0,
				float64(p[2]) / 255.0,
			})
		}
	}
	return dataset
}

// pickDiverse greedily selects k colors: the heaviest first, then the color
// farthest in Lab from everything already picked, scaled by its weight.
func pickDiverse(cands []weightedColor, k int) []colorful.Color {
	if len(cands) == 0 {
		return nil
	}
	k = min(k, len(cands))
	heaviest, maxW := 0, 0.0
	for i := range cands {
		if !(cands[i].weight > 1e-6) {
			cands[i].weight = 1e-6
		}
		if cands[i].weight > maxW {
			heaviest, maxW = i, cands[i].weight
		}
	}

	picked := []int{heaviest}
	for len(picked) < k {
		best, bestScore := -1, -1.0
		for i, c := range cands {
			if slices.Contains(picked, i) {
				continue
			}
			nearest := math.MaxFloat64
			for _, p := range picked {
				nearest = min(nearest, c.col.DistanceLab(cands[p].col))
			}
			score := nearest * (0.55 + 0.45*math.Sqrt(c.weight/maxW))
			if score > bestScore {
				best, bestScore = i, score
			}
		}
		if best < 0 {
			break
		}
		picked = append(picked, best)
	}

	out := make([]colorful.Color, len(picked))
	for i, p := range picked {
		out[i] = cands[p].col
	}
	return out
}
