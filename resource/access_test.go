package resource_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vkngwrapper/chain/resource"
	"github.com/vkngwrapper/core/v2/core1_0"
)

var accessBits = []core1_0.AccessFlags{
	core1_0.AccessIndirectCommandRead,
	core1_0.AccessIndexRead,
	core1_0.AccessVertexAttributeRead,
	core1_0.AccessUniformRead,
	core1_0.AccessInputAttachmentRead,
	core1_0.AccessShaderRead,
	core1_0.AccessShaderWrite,
	core1_0.AccessColorAttachmentRead,
	core1_0.AccessColorAttachmentWrite,
	core1_0.AccessDepthStencilAttachmentRead,
	core1_0.AccessDepthStencilAttachmentWrite,
	core1_0.AccessTransferRead,
	core1_0.AccessTransferWrite,
	core1_0.AccessHostRead,
	core1_0.AccessHostWrite,
	core1_0.AccessMemoryRead,
	core1_0.AccessMemoryWrite,
}

// sampleAccess returns the empty access, every single bit, and a batch of random combinations
func sampleAccess(seed int64) []core1_0.AccessFlags {
	rng := rand.New(rand.NewSource(seed))
	samples := []core1_0.AccessFlags{0}
	samples = append(samples, accessBits...)

	for i := 0; i < 24; i++ {
		var access core1_0.AccessFlags
		for _, bit := range accessBits {
			if rng.Intn(4) == 0 {
				access |= bit
			}
		}
		samples = append(samples, access)
	}

	return samples
}

func TestAccessUnionMonoid(t *testing.T) {
	samples := sampleAccess(1)

	for _, a := range samples {
		left := resource.ImageAccess(a)
		require.Equal(t, left, left.Union(left))
		require.Equal(t, left, left.Union(0))
		require.Equal(t, left, resource.ImageAccess(0).Union(left))

		for _, b := range samples {
			right := resource.ImageAccess(b)
			require.Equal(t, left.Union(right), right.Union(left))

			for _, c := range samples[:8] {
				third := resource.ImageAccess(c)
				require.Equal(t, left.Union(right).Union(third), left.Union(right.Union(third)))
			}
		}
	}
}

func TestAccessWriteDominance(t *testing.T) {
	samples := sampleAccess(2)

	for _, a := range samples {
		for _, b := range samples {
			left, right := resource.BufferAccess(a), resource.BufferAccess(b)
			require.Equal(t, left.IsWrite() || right.IsWrite(), left.Union(right).IsWrite())
		}
	}
}

var writeTestCases = map[string]struct {
	Access core1_0.AccessFlags
	Write  bool
	Read   bool
}{
	"No Access": {
		Access: 0,
		Write:  false,
		Read:   false,
	},
	"Shader Read": {
		Access: core1_0.AccessShaderRead,
		Write:  false,
		Read:   true,
	},
	"Shader Write": {
		Access: core1_0.AccessShaderWrite,
		Write:  true,
		Read:   false,
	},
	"Read Modify Write": {
		Access: core1_0.AccessShaderRead | core1_0.AccessShaderWrite,
		Write:  true,
		Read:   true,
	},
	"Vertex Fetch": {
		Access: core1_0.AccessVertexAttributeRead | core1_0.AccessIndexRead,
		Write:  false,
		Read:   true,
	},
	"Transfer Write": {
		Access: core1_0.AccessTransferWrite,
		Write:  true,
		Read:   false,
	},
	"Attachment Writes": {
		Access: core1_0.AccessColorAttachmentWrite | core1_0.AccessDepthStencilAttachmentWrite,
		Write:  true,
		Read:   false,
	},
	"Host Write": {
		Access: core1_0.AccessHostWrite,
		Write:  true,
		Read:   false,
	},
	"Memory Read": {
		Access: core1_0.AccessMemoryRead,
		Write:  false,
		Read:   true,
	},
}

func TestAccessClassification(t *testing.T) {
	for testName, testCase := range writeTestCases {
		t.Run(testName, func(t *testing.T) {
			require.Equal(t, testCase.Write, resource.BufferAccess(testCase.Access).IsWrite())
			require.Equal(t, testCase.Write, resource.ImageAccess(testCase.Access).IsWrite())
			require.Equal(t, testCase.Read, resource.BufferAccess(testCase.Access).IsRead())
			require.Equal(t, testCase.Read, resource.ImageAccess(testCase.Access).IsRead())
		})
	}
}

func TestAccessCompare(t *testing.T) {
	read := resource.BufferAccess(core1_0.AccessIndirectCommandRead)
	write := resource.BufferAccess(core1_0.AccessMemoryWrite)

	require.Equal(t, 0, read.Compare(read))
	require.Equal(t, -1, read.Compare(write))
	require.Equal(t, 1, write.Compare(read))
}
