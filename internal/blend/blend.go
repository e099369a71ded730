// Package blend implements the per-channel formulas of the dual-input
// compositing modes.
//
// Every formula takes the overlay channel a and the base channel b of a
// premultiplied pixel, in whichever space the caller prepared, and returns
// the transformed channel. Alpha is never passed through a formula.
package blend

// Kind identifies a dual-input channel formula.
type Kind uint8

const (
	KindFreeze        Kind = iota // b*b / (1-a), clamped
	KindSoftMix                   // logistic of (a+b-1)
	KindVelvetOverlay             // b + ln(1+|a-b|) lift
)

// ChannelFunc is the signature of a per-channel formula.
// Parameters:
//   - a: overlay channel
//   - b: base channel
//   - intensity: formula-specific strength; ignored by Freeze
type ChannelFunc func(a, b, intensity float32) float32

// Lookup returns the channel formula for kind.
// The second result is false for unknown kinds.
func Lookup(kind Kind) (ChannelFunc, bool) {
	switch kind {
	case KindFreeze:
		return Freeze, true
	case KindSoftMix:
		return SoftMix, true
	case KindVelvetOverlay:
		return VelvetOverlay, true
	default:
		return nil, false
	}
}

// Pixel applies f to the RGB channels of the overlay (ar, ag, ab) and base
// (br, bg, bb) and blends the result toward the base by opacity.
func Pixel(f ChannelFunc, ar, ag, ab, br, bg, bb, intensity, opacity float32) (r, g, b float32) {
	r = Mix(br, f(ar, br, intensity), opacity)
	g = Mix(bg, f(ag, bg, intensity), opacity)
	b = Mix(bb, f(ab, bb, intensity), opacity)
	return r, g, b
}
