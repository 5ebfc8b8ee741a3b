package resource

import "github.com/vkngwrapper/core/v2/core1_0"

// Access describes how a single use touches a resource. A is the implementing type itself.
//
// Union must be commutative, associative and idempotent, with the zero value of A as its
// neutral element. IsWrite must return true if any write-category bit is set, which makes
// it distribute over Union: IsWrite(a.Union(b)) == IsWrite(a) || IsWrite(b).
type Access[A any] interface {
	comparable
	Union(A) A
	IsWrite() bool
	IsRead() bool
	String() string
}

const (
	writeAccess core1_0.AccessFlags = core1_0.AccessShaderWrite |
		core1_0.AccessColorAttachmentWrite |
		core1_0.AccessDepthStencilAttachmentWrite |
		core1_0.AccessTransferWrite |
		core1_0.AccessHostWrite |
		core1_0.AccessMemoryWrite

	readAccess core1_0.AccessFlags = core1_0.AccessIndirectCommandRead |
		core1_0.AccessIndexRead |
		core1_0.AccessVertexAttributeRead |
		core1_0.AccessUniformRead |
		core1_0.AccessInputAttachmentRead |
		core1_0.AccessShaderRead |
		core1_0.AccessColorAttachmentRead |
		core1_0.AccessDepthStencilAttachmentRead |
		core1_0.AccessTransferRead |
		core1_0.AccessHostRead |
		core1_0.AccessMemoryRead
)

// BufferAccess is the Access of buffers: a set of core1_0.AccessFlags
type BufferAccess core1_0.AccessFlags

var _ = isAccess[BufferAccess]

func (a BufferAccess) Union(rhs BufferAccess) BufferAccess { return a | rhs }
func (a BufferAccess) IsWrite() bool                       { return core1_0.AccessFlags(a)&writeAccess != 0 }
func (a BufferAccess) IsRead() bool                        { return core1_0.AccessFlags(a)&readAccess != 0 }

// Compare orders accesses by their flag value so they can key ordered containers
func (a BufferAccess) Compare(rhs BufferAccess) int { return compareFlags(a, rhs) }

func (a BufferAccess) String() string {
	return core1_0.AccessFlags(a).String()
}

// ImageAccess is the Access of images: a set of core1_0.AccessFlags
type ImageAccess core1_0.AccessFlags

var _ = isAccess[ImageAccess]

func (a ImageAccess) Union(rhs ImageAccess) ImageAccess { return a | rhs }
func (a ImageAccess) IsWrite() bool                     { return core1_0.AccessFlags(a)&writeAccess != 0 }
func (a ImageAccess) IsRead() bool                      { return core1_0.AccessFlags(a)&readAccess != 0 }

// Compare orders accesses by their flag value so they can key ordered containers
func (a ImageAccess) Compare(rhs ImageAccess) int { return compareFlags(a, rhs) }

func (a ImageAccess) String() string {
	return core1_0.AccessFlags(a).String()
}

func isAccess[A Access[A]]() {}

func compareFlags[T ~int32 | ~uint32](a, b T) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}
