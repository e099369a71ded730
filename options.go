package blendfx

// CompositorOption configures a Compositor during creation.
//
// Example:
//
//	c := blendfx.NewCompositor(blendfx.WithWorkers(4), blendfx.WithSpanSize(4096))
//	defer c.Close()
type CompositorOption func(*compositorOptions)

type compositorOptions struct {
	workers  int
	spanSize int
	progress func(done, total int)
}

func defaultOptions() compositorOptions {
	return compositorOptions{
		workers:  0, // GOMAXPROCS
		spanSize: 0, // parallel.DefaultSpanSize
	}
}

// WithWorkers sets the number of worker goroutines.
// Zero or negative uses GOMAXPROCS.
func WithWorkers(n int) CompositorOption {
	return func(o *compositorOptions) {
		o.workers = n
	}
}

// WithSpanSize sets how many pixels each unit of parallel work covers.
// Zero or negative uses the default.
func WithSpanSize(n int) CompositorOption {
	return func(o *compositorOptions) {
		o.spanSize = n
	}
}

// WithProgress registers fn to be called after each span finishes, with the
// number of finished spans and the total for the pass. fn is called from
// worker goroutines and must be safe for concurrent use.
func WithProgress(fn func(done, total int)) CompositorOption {
	return func(o *compositorOptions) {
		o.progress = fn
	}
}
