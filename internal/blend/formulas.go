package blend

import "math"

// Freeze darkens the base by the square of itself over the inverted overlay.
// Formula: clamp(b*b / (1-a), 0, 1); b when 1-a <= 0.
func Freeze(a, b, _ float32) float32 {
	denom := 1 - a
	if !(denom > 0) {
		return b
	}
	return clamp01(b * b / denom)
}

// SoftMix pushes the channel sum through a logistic curve centred on 1.
// Formula: 1 / (1 + exp(-10*intensity*(a+b-1)))
//
// At intensity 0 the curve is flat and every channel becomes 0.5.
func SoftMix(a, b, intensity float32) float32 {
	k := 10 * float64(intensity)
	return float32(1 / (1 + math.Exp(-k*float64(a+b-1))))
}

// VelvetOverlay lifts the base by a logarithm of the channel difference,
// weighted toward bright overlays.
// Formula: clamp(b + intensity*0.1*ln(1+|a-b|)*(a+0.2), 0, 1)
func VelvetOverlay(a, b, intensity float32) float32 {
	d := math.Abs(float64(a - b))
	lift := float64(intensity) * 0.1 * math.Log1p(d) * float64(a+0.2)
	return clamp01(b + float32(lift))
}
