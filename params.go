package blendfx

import (
	"fmt"
	"math"
)

// Declared parameter ranges.
const (
	MaxSoftMixIntensity       = 2
	MaxVelvetOverlayIntensity = 8
)

// Params configures one compositing call. It is passed by value and never
// modified during a pass.
type Params struct {
	// Formula selects the per-pixel transform.
	Formula Formula

	// Opacity blends the formula result toward the base, in [0,1].
	// Ignored by FormulaColorRemoval.
	Opacity float32

	// Intensity scales the formula: [0,2] for soft-mix, [0,8] for
	// velvet-overlay. Ignored by the other formulas.
	Intensity float32

	// Space records which premultiplied representation the buffers were
	// prepared in. The kernel does no gamma work itself; FromImage and
	// ToImage use it.
	Space ColorSpace

	// Background is the color removed by FormulaColorRemoval, as
	// straight-alpha sRGB (what ParseHex returns) whatever Space is.
	Background Pixel

	// Tolerance is the normalized RGB distance, in [0,1], within which
	// FormulaColorRemoval treats a pixel as background.
	Tolerance float32
}

// DefaultParams returns the default configuration for f: full opacity,
// intensity 1, perceptual space, and a pure green background keyed at
// tolerance 0.1.
func DefaultParams(f Formula) Params {
	return Params{
		Formula:    f,
		Opacity:    1,
		Intensity:  1,
		Space:      ColorSpacePerceptual,
		Background: RGB(0, 1, 0),
		Tolerance:  0.1,
	}
}

// Validate checks p against the declared ranges of its formula.
// Every failure wraps ErrInvalidArgument.
func (p Params) Validate() error {
	if !p.Formula.IsValid() {
		return fmt.Errorf("%w: unknown formula %d", ErrInvalidArgument, uint8(p.Formula))
	}
	if !p.Space.IsValid() {
		return fmt.Errorf("%w: unknown color space %d", ErrInvalidArgument, uint8(p.Space))
	}

	switch p.Formula {
	case FormulaColorRemoval:
		if !inRange(p.Tolerance, 0, 1) {
			return fmt.Errorf("%w: tolerance %v outside [0,1]", ErrInvalidArgument, p.Tolerance)
		}
		bg := p.Background
		if !finite(bg.R) || !finite(bg.G) || !finite(bg.B) {
			return fmt.Errorf("%w: background %+v is not finite", ErrInvalidArgument, bg)
		}
		return nil
	case FormulaSoftMix:
		if !inRange(p.Intensity, 0, MaxSoftMixIntensity) {
			return fmt.Errorf("%w: soft-mix intensity %v outside [0,%d]", ErrInvalidArgument, p.Intensity, MaxSoftMixIntensity)
		}
	case FormulaVelvetOverlay:
		if !inRange(p.Intensity, 0, MaxVelvetOverlayIntensity) {
			return fmt.Errorf("%w: velvet-overlay intensity %v outside [0,%d]", ErrInvalidArgument, p.Intensity, MaxVelvetOverlayIntensity)
		}
	}

	if !inRange(p.Opacity, 0, 1) {
		return fmt.Errorf("%w: opacity %v outside [0,1]", ErrInvalidArgument, p.Opacity)
	}
	return nil
}

// inRange reports whether lo <= v <= hi. NaN is never in range.
func inRange(v, lo, hi float32) bool {
	return v >= lo && v <= hi
}

func finite(v float32) bool {
	return !math.IsNaN(float64(v)) && !math.IsInf(float64(v), 0)
}
