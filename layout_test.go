package rasterconv

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLayout(t *testing.T) {
	tests := []struct {
		layout   Layout
		name     string
		channels int
		alpha    bool
	}{
		{Grayscale, "Grayscale", 1, false},
		{GrayscaleAlpha, "GrayscaleAlpha", 2, true},
		{RGB, "RGB", 3, false},
		{RGBA, "RGBA", 4, true},
		{Indexed, "Indexed", 1, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.name, tt.layout.String())
			assert.Equal(t, tt.channels, tt.layout.Channels())
			assert.Equal(t, tt.alpha, tt.layout.HasAlpha())
			assert.True(t, tt.layout.Valid())
			assert.Equal(t, tt.layout != Indexed, tt.layout.Direct())
		})
	}

	bogus := Layout(42)
	assert.False(t, bogus.Valid())
	assert.False(t, bogus.Direct())
	assert.Equal(t, 0, bogus.Channels())
	assert.Equal(t, "Layout(42)", bogus.String())
}
