// Package blendfx provides point-wise image compositing kernels.
//
// # Overview
//
// A kernel combines a base pixel stream with an optional overlay stream,
// pixel by pixel, using one of a small set of closed-form formulas:
//
//   - Freeze: b*b / (1-a), clamped
//   - Soft-mix: logistic smoothing of a+b around 1
//   - Velvet overlay: b lifted by ln(1+|a-b|)
//   - Color removal: single input, keys out a background color
//
// The dual-input formulas blend their result toward the base by an opacity
// factor and always keep the base alpha. A missing overlay passes the base
// through.
//
// # Quick Start
//
//	r := blendfx.Rect(0, 0, w, h)
//	base, _ := blendfx.FromImage(baseImg, r, blendfx.ColorSpacePerceptual)
//	over, _ := blendfx.FromImage(overImg, r, blendfx.ColorSpacePerceptual)
//
//	p := blendfx.DefaultParams(blendfx.FormulaSoftMix)
//	p.Intensity = 1.5
//	if err := blendfx.Composite(base, base, over, p); err != nil {
//	    return err
//	}
//	out, _ := blendfx.ToImage(base, r, blendfx.ColorSpacePerceptual)
//
// # Color spaces
//
// Buffers hold premultiplied RGB in either perceptual (sRGB-encoded) or
// linear-light form. The kernels never convert between them; FromImage and
// ToImage do, and Params.Space records the choice.
//
// # Concurrency
//
// Composite is a pure function of its inputs and may run concurrently on
// disjoint parts of one buffer. Compositor does exactly that on a worker pool.
//
// # Architecture
//
//   - Public API: Composite, Compositor, Params, Formula, FromImage/ToImage
//   - Internal: blend (channel formulas), filter (color removal),
//     color (sRGB/linear conversion), parallel (worker pool, spans)
//   - Command: cmd/blendfx applies a formula to image files
package blendfx
