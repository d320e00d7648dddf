package statistics

import (
	"fmt"

	"github.com/containerd/errdefs"
)

// ErrEmptyInput is returned when an extraction is asked to run over an
// empty sequence. It is an invalid argument error.
var ErrEmptyInput = fmt.Errorf("input sequence must have at least one element: %w", errdefs.ErrInvalidArgument)

// Record holds the statistics computed over an input sequence.
type Record struct {
	Average float64
	Maximum float64
	Minimum float64
}

// Result is a Record plus the even valued elements of the input,
// in their original order.
type Result struct {
	Record

	Evens []int32
}

type Extractor interface {
	Extract(input []int32) (Result, error)
}
