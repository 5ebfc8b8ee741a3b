package resource

import (
	"github.com/vkngwrapper/core/v2/core1_0"
	"github.com/vkngwrapper/extensions/v2/khr_swapchain"
)

// Layout is the memory layout a resource presents while it is used. L is the implementing
// type itself.
//
// Merge is partial: it returns the layout both participants can proceed under, or false
// when no such layout exists and a transition is required between the two uses. Wherever it
// is defined, Merge must be commutative and associative.
type Layout[L any] interface {
	comparable
	Merge(L) (L, bool)
	String() string
}

var _ = isLayout[BufferLayout]
var _ = isLayout[ImageLayout]

func isLayout[L Layout[L]]() {}

// BufferLayout is the layout of buffers. Buffers have no layouts in Vulkan, so there is only
// one value and every pair of buffer layouts merges.
type BufferLayout struct{}

func (BufferLayout) Merge(BufferLayout) (BufferLayout, bool) {
	return BufferLayout{}, true
}

func (BufferLayout) String() string { return "BufferLayout" }

// ImageLayout is the layout of images
type ImageLayout core1_0.ImageLayout

// Merge succeeds when both layouts are equal or when one of them is
// core1_0.ImageLayoutUndefined, in which case the other one wins.
func (l ImageLayout) Merge(rhs ImageLayout) (ImageLayout, bool) {
	switch {
	case l == rhs:
		return l, true
	case l.IsUndefined():
		return rhs, true
	case rhs.IsUndefined():
		return l, true
	}

	return l, false
}

// IsUndefined returns true for core1_0.ImageLayoutUndefined, the layout that accepts
// whatever contents the image happens to have
func (l ImageLayout) IsUndefined() bool {
	return core1_0.ImageLayout(l) == core1_0.ImageLayoutUndefined
}

// ReadOnly returns true if the layout can only be used for reads
func (l ImageLayout) ReadOnly() bool {
	switch core1_0.ImageLayout(l) {
	case core1_0.ImageLayoutShaderReadOnlyOptimal,
		core1_0.ImageLayoutDepthStencilReadOnlyOptimal,
		core1_0.ImageLayoutTransferSrcOptimal,
		khr_swapchain.ImageLayoutPresentSrc:
		return true
	}

	return false
}

func (l ImageLayout) String() string {
	return core1_0.ImageLayout(l).String()
}
