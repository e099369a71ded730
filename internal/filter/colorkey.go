package filter

import (
	"math"

	"github.com/lumenfx/blendfx/internal/color"
)

// maxRGBDistance is the Euclidean distance between black and white.
var maxRGBDistance = float32(math.Sqrt(3))

// ColorKey removes a background color: pixels whose RGB lies within
// Tolerance of Background are made fully transparent. RGB is kept as-is
// so a later un-keying can restore it.
//
// Pixels are premultiplied; they are compared after dividing out alpha,
// so a half-transparent pixel of the background color still matches.
type ColorKey struct {
	// Background is the straight-alpha color to remove, in the same color
	// space as the pixels. Its alpha is ignored.
	Background color.ColorF32

	// Tolerance is the maximum normalized distance, in [0,1], at which a
	// pixel still counts as background. 0 removes exact matches only.
	Tolerance float32
}

// NewColorKey creates a color key filter.
func NewColorKey(background color.ColorF32, tolerance float32) *ColorKey {
	return &ColorKey{Background: background, Tolerance: tolerance}
}

// Distance returns the RGB distance from premultiplied c to the background,
// normalized to [0,1] by the distance between black and white.
// Fully transparent pixels count as black.
func (k *ColorKey) Distance(c color.ColorF32) float32 {
	c = color.Unpremultiply(c)
	dr := float64(c.R - k.Background.R)
	dg := float64(c.G - k.Background.G)
	db := float64(c.B - k.Background.B)
	return float32(math.Sqrt(dr*dr+dg*dg+db*db)) / maxRGBDistance
}

// Matches reports whether c counts as background.
func (k *ColorKey) Matches(c color.ColorF32) bool {
	return k.Distance(c) <= k.Tolerance
}

// ApplyColor returns c with alpha forced to 0 if it matches the background,
// otherwise c unchanged.
func (k *ColorKey) ApplyColor(c color.ColorF32) color.ColorF32 {
	if k.Matches(c) {
		c.A = 0
	}
	return c
}

// Apply filters src into dst. Both must have the same length; dst may
// alias src.
func (k *ColorKey) Apply(dst, src []color.ColorF32) {
	dst = dst[:len(src)]
	for i, c := range src {
		dst[i] = k.ApplyColor(c)
	}
}
