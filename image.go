package blendfx

import (
	"fmt"
	"image"

	"golang.org/x/image/draw"

	"github.com/lumenfx/blendfx/internal/color"
)

// FromImage reads region r of img into a new premultiplied buffer in the
// given color space. Pixels of r outside img's bounds are transparent black.
//
// 8-bit images go through lookup tables; everything else is normalized to
// 16-bit straight alpha first.
func FromImage(img image.Image, r Region, space ColorSpace) (Buffer, error) {
	if r.Count() == 0 {
		return nil, fmt.Errorf("%w: empty region %v", ErrInvalidArgument, r.Rectangle)
	}
	if !space.IsValid() {
		return nil, fmt.Errorf("%w: unknown color space %d", ErrInvalidArgument, uint8(space))
	}

	buf := make(Buffer, 0, r.Count())
	if src, ok := img.(*image.NRGBA); ok {
		for y := r.Min.Y; y < r.Max.Y; y++ {
			for x := r.Min.X; x < r.Max.X; x++ {
				c := src.NRGBAAt(x, y)
				buf = append(buf, color.EncodeU8(color.ColorU8{R: c.R, G: c.G, B: c.B, A: c.A}, space))
			}
		}
		return buf, nil
	}

	norm := image.NewNRGBA64(r.Rectangle)
	draw.Copy(norm, r.Min, img, r.Rectangle, draw.Src, nil)
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			c := norm.NRGBA64At(x, y)
			buf = append(buf, color.Encode(Pixel{
				R: float32(c.R) / 0xffff,
				G: float32(c.G) / 0xffff,
				B: float32(c.B) / 0xffff,
				A: float32(c.A) / 0xffff,
			}, space))
		}
	}
	return buf, nil
}

// ToImage writes buf, laid out over region r, into a new 8-bit
// straight-alpha image with bounds r. It is the inverse of FromImage.
func ToImage(buf Buffer, r Region, space ColorSpace) (*image.NRGBA, error) {
	if len(buf) != r.Count() || len(buf) == 0 {
		return nil, fmt.Errorf("%w: buffer has %d pixels, region %v has %d",
			ErrInvalidArgument, len(buf), r.Rectangle, r.Count())
	}
	if !space.IsValid() {
		return nil, fmt.Errorf("%w: unknown color space %d", ErrInvalidArgument, uint8(space))
	}

	dst := image.NewNRGBA(r.Rectangle)
	i := 0
	for y := r.Min.Y; y < r.Max.Y; y++ {
		row := dst.Pix[dst.PixOffset(r.Min.X, y):]
		for x := 0; x < r.Dx(); x++ {
			c := color.DecodeU8(buf[i], space)
			row[x*4+0] = c.R
			row[x*4+1] = c.G
			row[x*4+2] = c.B
			row[x*4+3] = c.A
			i++
		}
	}
	return dst, nil
}
