package blendfx

import (
	"fmt"
	"image"

	"github.com/lumenfx/blendfx/internal/color"
)

// Pixel is a premultiplied float RGBA pixel. RGB is premultiplied in the
// space the buffer was prepared in (see ColorSpace); alpha is always linear.
type Pixel = color.ColorF32

// Buffer is a flat run of pixels covering a region row by row, with no gaps.
type Buffer []Pixel

// NewBuffer allocates a zeroed buffer for region r.
func NewBuffer(r Region) Buffer {
	return make(Buffer, r.Count())
}

// ColorSpace selects the premultiplied representation a buffer holds.
type ColorSpace = color.Space

const (
	// ColorSpacePerceptual keeps RGB sRGB-encoded.
	ColorSpacePerceptual = color.SpacePerceptual
	// ColorSpaceLinear holds linear-light RGB.
	ColorSpaceLinear = color.SpaceLinear
)

// Region is the axis-aligned rectangle a compositing call covers.
type Region struct {
	image.Rectangle
}

// Rect returns the region with the given bounds.
func Rect(x0, y0, x1, y1 int) Region {
	return Region{image.Rect(x0, y0, x1, y1)}
}

// Count returns the number of pixels in the region; 0 if it is empty.
func (r Region) Count() int {
	if r.Empty() {
		return 0
	}
	return r.Dx() * r.Dy()
}

// RGB returns an opaque pixel.
func RGB(r, g, b float32) Pixel {
	return Pixel{R: r, G: g, B: b, A: 1}
}

// ParseHex parses a straight-alpha sRGB hex color.
// Supported formats: "RGB", "RGBA", "RRGGBB", "RRGGBBAA", each with an
// optional leading '#'.
func ParseHex(s string) (Pixel, error) {
	hex := s
	if hex != "" && hex[0] == '#' {
		hex = hex[1:]
	}

	digits := make([]uint32, len(hex))
	for i := 0; i < len(hex); i++ {
		v, ok := hexDigit(hex[i])
		if !ok {
			return Pixel{}, fmt.Errorf("%w: bad hex color %q", ErrInvalidArgument, s)
		}
		digits[i] = v
	}

	var r, g, b, a uint32
	a = 255
	switch len(hex) {
	case 3, 4:
		r, g, b = digits[0]*17, digits[1]*17, digits[2]*17
		if len(hex) == 4 {
			a = digits[3] * 17
		}
	case 6, 8:
		r, g, b = digits[0]<<4|digits[1], digits[2]<<4|digits[3], digits[4]<<4|digits[5]
		if len(hex) == 8 {
			a = digits[6]<<4 | digits[7]
		}
	default:
		return Pixel{}, fmt.Errorf("%w: bad hex color %q", ErrInvalidArgument, s)
	}

	return Pixel{
		R: float32(r) / 255,
		G: float32(g) / 255,
		B: float32(b) / 255,
		A: float32(a) / 255,
	}, nil
}

func hexDigit(c byte) (uint32, bool) {
	switch {
	case '0' <= c && c <= '9':
		return uint32(c - '0'), true
	case 'a' <= c && c <= 'f':
		return uint32(c - 'a' + 10), true
	case 'A' <= c && c <= 'F':
		return uint32(c - 'A' + 10), true
	default:
		return 0, false
	}
}
