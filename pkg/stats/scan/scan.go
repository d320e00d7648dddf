package scan

// Single pass statistics and even filter over a signed integer sequence

import (
	"fmt"

	"github.com/containerd/errdefs"
	"golang.org/x/exp/constraints"

	"github.com/shashank-93rao/statistics"
)

// IsEven reports whether v is divisible by 2. The remainder of a negative
// even number is 0 as well, so -4 is even.
func IsEven[T constraints.Signed](v T) bool {
	return v%2 == 0
}

// Into computes the statistics record of input and writes its even valued
// elements, in order, to the front of evens. It returns the record and the
// number of entries written. Slots of evens past that count are left as they
// were.
//
// The caller owns evens and must size it to at least len(input). Both
// preconditions are checked before anything is written.
func Into[T constraints.Signed](input []T, evens []T) (statistics.Record, int, error) {
	if len(input) == 0 {
		return statistics.Record{}, 0, statistics.ErrEmptyInput
	}
	if len(evens) < len(input) {
		return statistics.Record{}, 0, fmt.Errorf("output buffer holds %d elements, need %d: %w",
			len(evens), len(input), errdefs.ErrInvalidArgument)
	}

	var sum float64
	maxVal, minVal := input[0], input[0]
	count := 0
	for _, v := range input {
		sum += float64(v)

		// Ties move to the later element. The value is the same either way.
		if v >= maxVal {
			maxVal = v
		}
		if v <= minVal {
			minVal = v
		}

		if IsEven(v) {
			evens[count] = v
			count++
		}
	}

	return statistics.Record{
		Average: sum / float64(len(input)),
		Maximum: float64(maxVal),
		Minimum: float64(minVal),
	}, count, nil
}

// Sequence is like Into but allocates the even sequence itself. The returned
// slice is owned by the caller and has length equal to the even count.
func Sequence[T constraints.Signed](input []T) (statistics.Record, []T, error) {
	if len(input) == 0 {
		return statistics.Record{}, nil, statistics.ErrEmptyInput
	}
	evens := make([]T, len(input))
	rec, n, err := Into(input, evens)
	if err != nil {
		return statistics.Record{}, nil, err
	}
	return rec, evens[:n], nil
}
