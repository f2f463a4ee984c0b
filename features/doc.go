// Package features derives simple descriptors from rasterconv images: mean
// brightness, a 15-bucket RGB histogram, dominant colors and the cosine
// similarity between feature vectors.
package features
