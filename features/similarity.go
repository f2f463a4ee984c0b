package features

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// ErrLengthMismatch is returned when two vectors differ in length.
var ErrLengthMismatch = errors.New("features: vectors have to be of same length")

// LengthMismatchError reports the lengths of two mismatched vectors.
type LengthMismatchError struct {
	A, B int
}

func (e *LengthMismatchError) Error() string {
	return fmt.Sprintf("features: vectors have to be of same length (%d != %d)", e.A, e.B)
}

func (e *LengthMismatchError) Unwrap() error { return ErrLengthMismatch }

// Number is the set of element types accepted by CosineSimilarity.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// CosineSimilarity returns dot(a,b) / (|a|*|b|), computed in float64. If
// either vector has zero magnitude the similarity is 0.
func CosineSimilarity[A, B Number](a []A, b []B) (float32, error) {
	if len(a) != len(b) {
		return 0, &LengthMismatchError{A: len(a), B: len(b)}
	}
	return float32(cosine(toFloat64(a), toFloat64(b))), nil
}

func cosine(a, b []float64) float64 {
	na, nb := floats.Norm(a, 2), floats.Norm(b, 2)
	if na == 0 || nb == 0 {
		return 0
	}
	return floats.Dot(a, b) / (na * nb)
}

func toFloat64[T Number](v []T) []float64 {
	out := make([]float64, len(v))
	for i, x := range v {
		out[i] = float64(x)
	}
	return out
}

// SimilarityMatrix returns the symmetric matrix of pairwise cosine
// similarities between vectors. All vectors must have the same length.
func SimilarityMatrix(vectors [][]float64) (*mat.SymDense, error) {
	n := len(vectors)
	if n == 0 {
		return nil, errors.New("features: no vectors")
	}
	for _, v := range vectors[1:] {
		if len(v) != len(vectors[0]) {
			return nil, &LengthMismatchError{A: len(vectors[0]), B: len(v)}
		}
	}
	m := mat.NewSymDense(n, nil)
	for i := range n {
		for j := i; j < n; j++ {
			m.SetSym(i, j, cosine(vectors[i], vectors[j]))
		}
	}
	return m, nil
}

// MostSimilar returns the index of the vector in candidates closest to query
// and its similarity. It returns -1 when candidates is empty.
func MostSimilar(query []float64, candidates [][]float64) (int, float32, error) {
	best, bestSim := -1, float32(-2)
	for i, c := range candidates {
		sim, err := CosineSimilarity(query, c)
		if err != nil {
			return -1, 0, fmt.Errorf("candidate %d: %w", i, err)
		}
		if sim > bestSim {
			best, bestSim = i, sim
		}
	}
	if best < 0 {
		return -1, 0, nil
	}
	return best, bestSim, nil
}
