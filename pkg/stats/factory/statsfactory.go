package factory

import (
	"fmt"

	"github.com/containerd/errdefs"

	"github.com/shashank-93rao/statistics"
	"github.com/shashank-93rao/statistics/pkg/stats/buffered"
	"github.com/shashank-93rao/statistics/pkg/stats/owned"
)

// ExtractorType is enum of the extractor implementations
type ExtractorType string

const (
	Owned    ExtractorType = "owned"
	Buffered ExtractorType = "buffered"
)

// GetExtractor builds an extractor of the given type. bufSize sizes the
// output buffer of a Buffered extractor and is ignored otherwise.
func GetExtractor(tp ExtractorType, bufSize int) (s statistics.Extractor, err error) {
	switch tp {
	case Owned:
		s = owned.NewExtractor()
	case Buffered:
		if bufSize < 0 {
			return nil, fmt.Errorf("negative buffer size %d: %w", bufSize, errdefs.ErrInvalidArgument)
		}
		s = buffered.NewExtractor(make([]int32, bufSize))
	default:
		err = fmt.Errorf("unknown extractor %q: %w", tp, errdefs.ErrInvalidArgument)
	}
	return
}
