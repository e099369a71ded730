package color

// Lookup tables for 8-bit image data. Loading an 8-bit image into a
// linear-space buffer would otherwise cost a math.Pow per channel.

const linearLUTSize = 4096

var (
	// srgbToLinearLUT maps every sRGB byte to its linear value.
	srgbToLinearLUT [256]float32

	// linearToSRGBLUT maps 12-bit linear values to sRGB bytes.
	// 12 bits keeps the round trip within one step of 8-bit sRGB.
	linearToSRGBLUT [linearLUTSize]uint8
)

func init() {
	for i := range srgbToLinearLUT {
		srgbToLinearLUT[i] = SRGBToLinear(float32(i) / 255)
	}
	for i := range linearToSRGBLUT {
		linearToSRGBLUT[i] = clampAndRound(LinearToSRGB(float32(i) / (linearLUTSize - 1)))
	}
}

// SRGBToLinearFast converts an sRGB byte to linear using the lookup table.
//
// Example:
//
//	r := SRGBToLinearFast(128) // ~0.2159 (not 0.5!)
func SRGBToLinearFast(s uint8) float32 {
	return srgbToLinearLUT[s]
}

// LinearToSRGBFast converts a linear value to an sRGB byte using the lookup
// table. Input outside [0,1] is clamped; NaN maps to 0.
//
// Example:
//
//	s := LinearToSRGBFast(0.5) // 188 (not 128!)
func LinearToSRGBFast(l float32) uint8 {
	if !(l > 0) {
		return linearToSRGBLUT[0]
	}
	if l >= 1 {
		return linearToSRGBLUT[linearLUTSize-1]
	}
	return linearToSRGBLUT[int(l*(linearLUTSize-1)+0.5)]
}
