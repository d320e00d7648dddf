package owned

// Extraction that allocates a fresh even sequence for every call

import (
	"github.com/sirupsen/logrus"

	"github.com/shashank-93rao/statistics"
	"github.com/shashank-93rao/statistics/pkg/stats/scan"
)

type ownedExtractor struct{}

// Extract computes the statistics of input and returns the even valued
// elements in a newly allocated slice. Nothing is shared between calls.
func (ownedExtractor) Extract(input []int32) (statistics.Result, error) {
	rec, evens, err := scan.Sequence(input)
	if err != nil {
		return statistics.Result{}, err
	}
	logrus.WithFields(logrus.Fields{
		"size":  len(input),
		"evens": len(evens),
	}).Debug("Computed statistics")
	return statistics.Result{Record: rec, Evens: evens}, nil
}

// NewExtractor returns an extractor whose results own their memory.
func NewExtractor() statistics.Extractor {
	return ownedExtractor{}
}
