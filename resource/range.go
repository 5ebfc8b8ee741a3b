package resource

import (
	"github.com/cockroachdb/errors"
	"github.com/vkngwrapper/chain/stateutils"
	"github.com/vkngwrapper/core/v2/core1_0"
)

// BufferRange is the half-open byte interval [Start, End) of a buffer touched by a use
type BufferRange struct {
	Start int
	End   int
}

// WholeBuffer returns the range covering the first size bytes of a buffer
func WholeBuffer(size int) BufferRange {
	return BufferRange{Start: 0, End: size}
}

func (r BufferRange) Size() int { return r.End - r.Start }

func (r BufferRange) Empty() bool { return r.End == r.Start }

func (r BufferRange) Validate() error {
	if r.Start < 0 {
		return errors.Newf("buffer range start %d is negative", r.Start)
	}
	if r.End < r.Start {
		return errors.Wrapf(stateutils.ErrInvertedRange, "buffer range [%d, %d)", r.Start, r.End)
	}
	return nil
}

// ImageRange is the sub-resource of an image touched by a use: a set of aspects, a range of
// mip levels, and a range of array layers
type ImageRange = core1_0.ImageSubresourceRange
