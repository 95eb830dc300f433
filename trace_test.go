package bisect

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// Wrapping a classifier with Traced must change neither the results nor
// the probe sequence.
func TestTraced_Transparent(t *testing.T) {
	classify := func(probes *[]int) Classifier[int, int, int] {
		return func(i int) Direction[int, int] {
			*probes = append(*probes, i)
			if i < 29 {
				return Low[int, int](i)
			}
			return High[int, int](i)
		}
	}

	var plainProbes []int
	plainLow, plainHigh := Search(
		Endpoint[int, int]{Index: 0, Witness: 0},
		Endpoint[int, int]{Index: 100, Witness: 100},
		classify(&plainProbes),
	)

	var tracedProbes []int
	tracedLow, tracedHigh := Search(
		Endpoint[int, int]{Index: 0, Witness: 0},
		Endpoint[int, int]{Index: 100, Witness: 100},
		Traced(zap.NewNop(), classify(&tracedProbes)),
	)

	require.Equal(t, plainLow, tracedLow)
	require.Equal(t, plainHigh, tracedHigh)
	require.Equal(t, plainProbes, tracedProbes)
	require.Equal(t, 28, tracedLow.Index)
	require.Equal(t, 29, tracedHigh.Index)
}
