package resource_test

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/require"
	"github.com/vkngwrapper/chain/resource"
	"github.com/vkngwrapper/chain/stateutils"
)

func TestBufferRange(t *testing.T) {
	whole := resource.WholeBuffer(256)
	require.NoError(t, whole.Validate())
	require.Equal(t, 256, whole.Size())
	require.False(t, whole.Empty())

	empty := resource.BufferRange{Start: 64, End: 64}
	require.NoError(t, empty.Validate())
	require.True(t, empty.Empty())

	inverted := resource.BufferRange{Start: 64, End: 32}
	err := inverted.Validate()
	require.Error(t, err)
	require.True(t, errors.Is(err, stateutils.ErrInvertedRange))

	require.Error(t, resource.BufferRange{Start: -1, End: 4}.Validate())
}
