package blendfx

import (
	"fmt"

	"github.com/lumenfx/blendfx/internal/blend"
	"github.com/lumenfx/blendfx/internal/color"
	"github.com/lumenfx/blendfx/internal/filter"
)

// Composite applies p's formula to base and overlay pixel by pixel and writes
// the result to dst.
//
// base is required and must not be empty; dst must have the same length and
// may alias base. For the dual-input formulas:
//   - overlay may be nil, in which case base is copied to dst unchanged;
//   - otherwise overlay must have the same length as base;
//   - each RGB channel becomes b + Opacity*(formula(a, b) - b) and alpha is
//     copied from base exactly.
//
// FormulaColorRemoval ignores overlay and Opacity: pixels within Tolerance
// of Background get alpha 0, all others pass through. Background is converted
// into Space first and compared against unpremultiplied RGB.
//
// Composite holds no state and allocates nothing. It is safe to call
// concurrently on disjoint parts of the same buffers.
func Composite(dst, base, overlay Buffer, p Params) error {
	if err := checkCall(dst, base, overlay, p); err != nil {
		return err
	}
	composite(dst, base, overlay, p)
	return nil
}

func checkCall(dst, base, overlay Buffer, p Params) error {
	if err := p.Validate(); err != nil {
		return err
	}
	if len(base) == 0 {
		return fmt.Errorf("%w: empty base buffer", ErrInvalidArgument)
	}
	if len(dst) != len(base) {
		return fmt.Errorf("%w: dst has %d pixels, base has %d", ErrInvalidArgument, len(dst), len(base))
	}
	if overlay != nil && p.Formula.DualInput() && len(overlay) != len(base) {
		return fmt.Errorf("%w: overlay has %d pixels, base has %d", ErrInvalidArgument, len(overlay), len(base))
	}
	return nil
}

// composite runs a validated call.
func composite(dst, base, overlay Buffer, p Params) {
	if p.Formula == FormulaColorRemoval {
		k := colorKey(p)
		k.Apply(dst, base)
		return
	}
	if overlay == nil {
		copy(dst, base)
		return
	}

	f, _ := blend.Lookup(p.Formula.kind())
	for i := range base {
		b := base[i]
		a := overlay[i]
		r, g, bl := blend.Pixel(f, a.R, a.G, a.B, b.R, b.G, b.B, p.Intensity, p.Opacity)
		dst[i] = Pixel{R: r, G: g, B: bl, A: b.A}
	}
}

// colorKey builds the removal filter for p, with Background moved into the
// buffers' color space.
func colorKey(p Params) filter.ColorKey {
	bg := p.Background
	if p.Space == ColorSpaceLinear {
		bg = color.SRGBToLinearColor(bg)
	}
	return filter.ColorKey{Background: bg, Tolerance: p.Tolerance}
}
