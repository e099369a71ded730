package blendfx

import (
	"context"
	"sync/atomic"

	"github.com/lumenfx/blendfx/internal/parallel"
)

// Compositor runs Composite over large buffers on a pool of goroutines.
// Each pass is cut into disjoint spans; every span reads and writes only its
// own indices.
//
// Thread safety: Compositor is safe for concurrent use. Concurrent passes
// share the pool.
type Compositor struct {
	pool *parallel.WorkerPool
	opts compositorOptions
}

// NewCompositor creates a compositor and starts its workers.
// Call Close when done.
func NewCompositor(opts ...CompositorOption) *Compositor {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Compositor{
		pool: parallel.NewWorkerPool(o.workers),
		opts: o,
	}
}

// Workers returns the number of worker goroutines.
func (c *Compositor) Workers() int {
	return c.pool.Workers()
}

// Composite is the parallel form of the package-level Composite.
//
// Arguments are validated once, before any work starts. If ctx is done
// before every span has been dispatched, the spans already running finish,
// ctx.Err() is returned, and dst holds partial output the caller should
// discard.
func (c *Compositor) Composite(ctx context.Context, dst, base, overlay Buffer, p Params) error {
	if !c.pool.IsRunning() {
		return ErrClosed
	}
	if err := checkCall(dst, base, overlay, p); err != nil {
		return err
	}

	log := Logger()
	spans := parallel.Split(len(base), c.opts.spanSize)
	total := len(spans)

	if overlay == nil && p.Formula.DualInput() {
		log.Debug("blendfx: no overlay, passing base through",
			"formula", p.Formula.String(), "pixels", len(base))
		copy(dst, base)
		if c.opts.progress != nil {
			c.opts.progress(total, total)
		}
		return nil
	}

	var done atomic.Int64

	work := make([]func(), total)
	for i, s := range spans {
		s := s
		var ov Buffer
		if overlay != nil && p.Formula.DualInput() {
			ov = overlay[s.Start:s.End]
		}
		work[i] = func() {
			composite(dst[s.Start:s.End], base[s.Start:s.End], ov, p)
			if c.opts.progress != nil {
				c.opts.progress(int(done.Add(1)), total)
			}
		}
	}

	log.Debug("blendfx: composite",
		"formula", p.Formula.String(),
		"pixels", len(base),
		"spans", total,
		"workers", c.pool.Workers())

	if err := c.pool.Run(ctx, work); err != nil {
		log.Warn("blendfx: composite abandoned",
			"formula", p.Formula.String(), "err", err)
		return err
	}
	return nil
}

// Close stops the worker goroutines. Close is safe to call multiple times;
// Composite on a closed compositor returns ErrClosed.
func (c *Compositor) Close() {
	c.pool.Close()
}
