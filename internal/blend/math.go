package blend

// Mix interpolates from base toward v by opacity: base + opacity*(v-base).
// Opacity 0 returns base exactly.
func Mix(base, v, opacity float32) float32 {
	if opacity == 0 {
		return base
	}
	if opacity == 1 {
		return v
	}
	return base + opacity*(v-base)
}

// clamp01 clamps x to [0,1]. NaN is returned unchanged.
func clamp01(x float32) float32 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}
