package parallel

import "errors"

// ErrClosed is returned when work is submitted to a closed pool.
var ErrClosed = errors.New("parallel: pool closed")

// DefaultSpanSize is the number of pixels per span when none is configured.
// 16K float RGBA pixels is 256KB per input stream.
const DefaultSpanSize = 16 * 1024

// Span is a half-open range [Start, End) of pixel indices.
type Span struct {
	Start, End int
}

// Len returns the number of pixels in the span.
func (s Span) Len() int {
	return s.End - s.Start
}

// Split cuts [0, n) into consecutive spans of at most size pixels.
// The spans are disjoint and cover the range exactly. A non-positive size
// uses DefaultSpanSize; n <= 0 yields no spans.
func Split(n, size int) []Span {
	if n <= 0 {
		return nil
	}
	if size <= 0 {
		size = DefaultSpanSize
	}
	spans := make([]Span, 0, (n+size-1)/size)
	for start := 0; start < n; start += size {
		spans = append(spans, Span{Start: start, End: min(start+size, n)})
	}
	return spans
}
