package stateutils_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vkngwrapper/chain/stateutils"
)

func TestStatisticsAddUse(t *testing.T) {
	var stats stateutils.Statistics
	stats.AddUse(false, 2)
	stats.AddUse(true, 0)
	stats.AddUse(false, 0)

	require.Equal(t, stateutils.Statistics{
		UseCount:   3,
		ReadCount:  2,
		WriteCount: 1,
		MergeCount: 2,
	}, stats)
}

func TestStatisticsAddStatistics(t *testing.T) {
	stats := stateutils.Statistics{
		ResourceCount: 1,
		UseCount:      2,
		ReadCount:     2,
		MergeCount:    1,
	}
	other := stateutils.Statistics{
		ResourceCount: 3,
		UseCount:      3,
		ReadCount:     1,
		WriteCount:    2,
	}

	stats.AddStatistics(&other)
	require.Equal(t, stateutils.Statistics{
		ResourceCount: 4,
		UseCount:      5,
		ReadCount:     3,
		WriteCount:    2,
		MergeCount:    1,
	}, stats)

	stats.Clear()
	require.Equal(t, stateutils.Statistics{}, stats)
}
