// Package parallel runs independent pieces of a compositing pass on a fixed
// set of goroutines.
//
// A pass over a pixel buffer is cut into disjoint spans (see Split). Each
// span writes only its own part of the output, so spans need no
// synchronization beyond waiting for the pass to finish.
package parallel

import (
	"context"
	"runtime"
	"sync"
	"sync/atomic"
)

// WorkerPool is a pool of goroutines with per-worker queues.
// Idle workers steal from the other queues before blocking.
//
// Thread safety: WorkerPool is safe for concurrent use.
type WorkerPool struct {
	workers    int
	workQueues []chan func()
	done       chan struct{}
	wg         sync.WaitGroup
	running    atomic.Bool
}

// NewWorkerPool creates a pool with the given number of workers.
// If workers is 0 or negative, GOMAXPROCS is used.
func NewWorkerPool(workers int) *WorkerPool {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	// 4x workers keeps queues from blocking the submitter on short spans.
	queueSize := max(workers*4, 8)

	p := &WorkerPool{
		workers:    workers,
		workQueues: make([]chan func(), workers),
		done:       make(chan struct{}),
	}
	for i := 0; i < workers; i++ {
		p.workQueues[i] = make(chan func(), queueSize)
	}
	p.running.Store(true)

	p.wg.Add(workers)
	for i := 0; i < workers; i++ {
		go p.worker(i)
	}
	return p
}

func (p *WorkerPool) worker(id int) {
	defer p.wg.Done()
	own := p.workQueues[id]

	for {
		select {
		case <-p.done:
			drain(own)
			return
		case work := <-own:
			work()
			continue
		default:
		}

		if stolen := p.steal(id); stolen != nil {
			stolen()
			continue
		}

		select {
		case <-p.done:
			drain(own)
			return
		case work := <-own:
			work()
		}
	}
}

func drain(queue chan func()) {
	for {
		select {
		case work := <-queue:
			work()
		default:
			return
		}
	}
}

// steal takes one item from another worker's queue, or returns nil.
func (p *WorkerPool) steal(self int) func() {
	for i := 0; i < p.workers; i++ {
		if i == self {
			continue
		}
		select {
		case work := <-p.workQueues[i]:
			return work
		default:
		}
	}
	return nil
}

// Run distributes work round-robin across the workers and waits for every
// submitted item to finish.
//
// Items are not submitted once ctx is done; Run then waits for the items
// already queued and returns ctx.Err(). A closed pool runs nothing and
// returns ErrClosed.
func (p *WorkerPool) Run(ctx context.Context, work []func()) error {
	if !p.running.Load() {
		return ErrClosed
	}
	if len(work) == 0 {
		return ctx.Err()
	}

	var wg sync.WaitGroup
	var err error

submit:
	for i, fn := range work {
		fn := fn
		if err = ctx.Err(); err != nil {
			break
		}
		wg.Add(1)
		wrapped := func() {
			defer wg.Done()
			fn()
		}
		select {
		case p.workQueues[i%p.workers] <- wrapped:
		case <-ctx.Done():
			wg.Done()
			err = ctx.Err()
			break submit
		case <-p.done:
			wg.Done()
			err = ErrClosed
			break submit
		}
	}

	wg.Wait()
	return err
}

// Close stops the pool after the queued work has run.
// Close is safe to call multiple times.
func (p *WorkerPool) Close() {
	if !p.running.CompareAndSwap(true, false) {
		return
	}
	close(p.done)
	p.wg.Wait()
}

// Workers returns the number of workers in the pool.
func (p *WorkerPool) Workers() int {
	return p.workers
}

// IsRunning reports whether the pool still accepts work.
func (p *WorkerPool) IsRunning() bool {
	return p.running.Load()
}
