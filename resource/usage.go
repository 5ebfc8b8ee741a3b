package resource

import (
	"github.com/vkngwrapper/chain/stateutils"
	"github.com/vkngwrapper/core/v2/core1_0"
)

// Usage declares every way a resource may be used across its lifetime. U is the implementing
// type itself and A is the Access of the same kind.
//
// Union forms a monoid with the zero value of U. Accesses returns the set of accesses that
// the usage makes representable, which is what CheckUsage compares a State against.
type Usage[U any, A any] interface {
	comparable
	Union(U) U
	Accesses() A
	String() string
}

var _ = isUsage[BufferUsage, BufferAccess]
var _ = isUsage[ImageUsage, ImageAccess]

func isUsage[U Usage[U, A], A Access[A]]() {}

// Host and generic memory accesses do not depend on how the resource was created
const anyUsageAccess core1_0.AccessFlags = core1_0.AccessHostRead |
	core1_0.AccessHostWrite |
	core1_0.AccessMemoryRead |
	core1_0.AccessMemoryWrite

// BufferUsage is the Usage of buffers: a set of core1_0.BufferUsageFlags
type BufferUsage core1_0.BufferUsageFlags

var bufferUsageAccess = map[core1_0.BufferUsageFlags]core1_0.AccessFlags{
	core1_0.BufferUsageTransferSrc:        core1_0.AccessTransferRead,
	core1_0.BufferUsageTransferDst:        core1_0.AccessTransferWrite,
	core1_0.BufferUsageUniformTexelBuffer: core1_0.AccessShaderRead,
	core1_0.BufferUsageStorageTexelBuffer: core1_0.AccessShaderRead | core1_0.AccessShaderWrite,
	core1_0.BufferUsageUniformBuffer:      core1_0.AccessUniformRead,
	core1_0.BufferUsageStorageBuffer:      core1_0.AccessShaderRead | core1_0.AccessShaderWrite,
	core1_0.BufferUsageIndexBuffer:        core1_0.AccessIndexRead,
	core1_0.BufferUsageVertexBuffer:       core1_0.AccessVertexAttributeRead,
	core1_0.BufferUsageIndirectBuffer:     core1_0.AccessIndirectCommandRead,
}

func (u BufferUsage) Union(rhs BufferUsage) BufferUsage { return u | rhs }

func (u BufferUsage) Accesses() BufferAccess {
	access := anyUsageAccess
	for usage, usageAccess := range bufferUsageAccess {
		if core1_0.BufferUsageFlags(u)&usage != 0 {
			access |= usageAccess
		}
	}

	return BufferAccess(access)
}

// Permits returns an error wrapping stateutils.ErrAccessNotInUsage if access has bits that
// this usage cannot represent
func (u BufferUsage) Permits(access BufferAccess) error {
	return stateutils.CheckSubset(access, u.Accesses(), "buffer access")
}

func (u BufferUsage) String() string {
	return core1_0.BufferUsageFlags(u).String()
}

// ImageUsage is the Usage of images: a set of core1_0.ImageUsageFlags
type ImageUsage core1_0.ImageUsageFlags

var imageUsageAccess = map[core1_0.ImageUsageFlags]core1_0.AccessFlags{
	core1_0.ImageUsageTransferSrc:            core1_0.AccessTransferRead,
	core1_0.ImageUsageTransferDst:            core1_0.AccessTransferWrite,
	core1_0.ImageUsageSampled:                core1_0.AccessShaderRead,
	core1_0.ImageUsageStorage:                core1_0.AccessShaderRead | core1_0.AccessShaderWrite,
	core1_0.ImageUsageColorAttachment:        core1_0.AccessColorAttachmentRead | core1_0.AccessColorAttachmentWrite,
	core1_0.ImageUsageDepthStencilAttachment: core1_0.AccessDepthStencilAttachmentRead | core1_0.AccessDepthStencilAttachmentWrite,
	core1_0.ImageUsageInputAttachment:        core1_0.AccessInputAttachmentRead,
}

func (u ImageUsage) Union(rhs ImageUsage) ImageUsage { return u | rhs }

func (u ImageUsage) Accesses() ImageAccess {
	access := anyUsageAccess
	for usage, usageAccess := range imageUsageAccess {
		if core1_0.ImageUsageFlags(u)&usage != 0 {
			access |= usageAccess
		}
	}

	return ImageAccess(access)
}

// Permits returns an error wrapping stateutils.ErrAccessNotInUsage if access has bits that
// this usage cannot represent
func (u ImageUsage) Permits(access ImageAccess) error {
	return stateutils.CheckSubset(access, u.Accesses(), "image access")
}

func (u ImageUsage) String() string {
	return core1_0.ImageUsageFlags(u).String()
}
