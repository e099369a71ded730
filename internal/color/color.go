// Package color provides the color representations and color-space
// conversions used to prepare pixels for the compositing kernel.
//
// The kernel itself never applies gamma. Pixels are brought into one of the
// two premultiplied representations here, before compositing, and brought
// back afterwards.
package color

// Space selects the premultiplied representation pixels are composited in.
type Space uint8

const (
	// SpacePerceptual keeps RGB sRGB-encoded and premultiplies by alpha.
	SpacePerceptual Space = iota
	// SpaceLinear decodes RGB to linear light before premultiplying.
	SpaceLinear
)

// String returns the lowercase name of the space.
func (s Space) String() string {
	switch s {
	case SpacePerceptual:
		return "perceptual"
	case SpaceLinear:
		return "linear"
	default:
		return "unknown"
	}
}

// IsValid reports whether s is a known space.
func (s Space) IsValid() bool {
	return s <= SpaceLinear
}

// ColorF32 represents a color with float32 components, nominally in [0,1].
// Whether RGB is premultiplied, and in which space, is indicated by context.
// Alpha is always linear (never gamma-encoded).
type ColorF32 struct {
	R, G, B, A float32
}

// ColorU8 represents a straight-alpha sRGB color with uint8 components.
type ColorU8 struct {
	R, G, B, A uint8
}

// Premultiply scales RGB by alpha.
func Premultiply(c ColorF32) ColorF32 {
	return ColorF32{R: c.R * c.A, G: c.G * c.A, B: c.B * c.A, A: c.A}
}

// Unpremultiply divides RGB by alpha. Fully transparent colors become
// transparent black.
func Unpremultiply(c ColorF32) ColorF32 {
	if c.A <= 0 {
		return ColorF32{}
	}
	inv := 1 / c.A
	return ColorF32{R: c.R * inv, G: c.G * inv, B: c.B * inv, A: c.A}
}

// Encode converts a straight-alpha sRGB color into the premultiplied
// representation of space s.
func Encode(c ColorF32, s Space) ColorF32 {
	if s == SpaceLinear {
		c = SRGBToLinearColor(c)
	}
	return Premultiply(c)
}

// Decode is the inverse of Encode: it returns a straight-alpha sRGB color.
func Decode(c ColorF32, s Space) ColorF32 {
	c = Unpremultiply(c)
	if s == SpaceLinear {
		c = LinearToSRGBColor(c)
	}
	return c
}

// EncodeU8 converts an 8-bit straight-alpha sRGB color into the premultiplied
// representation of space s, using the lookup table for the linear decode.
func EncodeU8(c ColorU8, s Space) ColorF32 {
	f := U8ToF32(c)
	if s == SpaceLinear {
		f.R = SRGBToLinearFast(c.R)
		f.G = SRGBToLinearFast(c.G)
		f.B = SRGBToLinearFast(c.B)
	}
	return Premultiply(f)
}

// DecodeU8 converts a premultiplied color in space s back to 8-bit
// straight-alpha sRGB.
func DecodeU8(c ColorF32, s Space) ColorU8 {
	c = Unpremultiply(c)
	if s == SpaceLinear {
		return ColorU8{
			R: LinearToSRGBFast(c.R),
			G: LinearToSRGBFast(c.G),
			B: LinearToSRGBFast(c.B),
			A: clampAndRound(c.A),
		}
	}
	return F32ToU8(c)
}
