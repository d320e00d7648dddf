package buffered

// Extraction into a caller owned output buffer

import (
	"github.com/sirupsen/logrus"

	"github.com/shashank-93rao/statistics"
	"github.com/shashank-93rao/statistics/pkg/stats/scan"
)

// Holds the buffer the even sequence is written to
type bufferedExtractor struct {
	buf []int32
}

// Extract computes the statistics of input and writes the even valued
// elements to the front of the buffer given to NewExtractor. The returned
// Evens slices that buffer, so it is overwritten by the next call. Input
// longer than the buffer is rejected without touching it.
func (b *bufferedExtractor) Extract(input []int32) (statistics.Result, error) {
	rec, n, err := scan.Into(input, b.buf)
	if err != nil {
		return statistics.Result{}, err
	}
	logrus.WithFields(logrus.Fields{
		"size":     len(input),
		"evens":    n,
		"capacity": len(b.buf),
	}).Debug("Computed statistics into buffer")
	return statistics.Result{Record: rec, Evens: b.buf[:n:n]}, nil
}

// NewExtractor returns an extractor writing into buf. The caller keeps
// ownership of buf and must size it to at least the longest input it
// will extract from.
func NewExtractor(buf []int32) statistics.Extractor {
	return &bufferedExtractor{buf: buf}
}
