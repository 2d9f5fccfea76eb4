package circular_test

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/katalvlaran/circstat/circular"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestMedian_EmptyInput verifies the ErrEmptyInput sentinel.
func TestMedian_EmptyInput(t *testing.T) {
	_, err := circular.Median(nil)
	assert.ErrorIs(t, err, circular.ErrEmptyInput)
}

// TestMedian_SinglePoint verifies that a degenerate one-point sample is its
// own median.
func TestMedian_SinglePoint(t *testing.T) {
	md, stats, err := circular.MedianWithStats([]float64{2.5})
	require.NoError(t, err)
	assert.Equal(t, 2.5, md, "single point is its own median")
	assert.False(t, stats.Tied)
	assert.Equal(t, 1, stats.Candidates)
}

// TestMedian_OddSample verifies the plain case: the middle of three ordered
// angles.
func TestMedian_OddSample(t *testing.T) {
	md, err := circular.Median([]float64{0.1, 0.2, 0.3})
	require.NoError(t, err)
	assert.InDelta(t, 0.2, md, 1e-12, "middle of an ordered triple")
}

// TestMedian_EvenSample verifies that two points average circularly.
func TestMedian_EvenSample(t *testing.T) {
	md, err := circular.Median([]float64{0, math.Pi / 2})
	require.NoError(t, err)
	assert.InDelta(t, math.Pi/4, md, 1e-12, "two points average to their midpoint")
}

// TestMedian_Wraparound verifies the median of a cluster straddling the
// 0/2π seam lands inside the cluster, not on the far side of the circle.
func TestMedian_Wraparound(t *testing.T) {
	alpha := []float64{circular.TwoPi - 0.10, circular.TwoPi - 0.05, 0.05}

	md, err := circular.Median(alpha)
	require.NoError(t, err)
	assert.InDelta(t, circular.TwoPi-0.05, md, 1e-12, "median stays inside the seam cluster")
}

// TestMedian_TieDetection verifies that duplicated directions produce a
// non-unique median, reported as a tie and resolved by circular averaging.
func TestMedian_TieDetection(t *testing.T) {
	md, stats, err := circular.MedianWithStats([]float64{1.0, 1.0, 2.0, 2.0})
	require.NoError(t, err)

	assert.True(t, stats.Tied, "duplicated directions force a tie")
	assert.Equal(t, 4, stats.Candidates, "all four points attain the minimum imbalance")
	assert.InDelta(t, 1.5, md, 1e-12, "tied candidates average circularly")
}

// TestMedian_ConvergesOnUnimodalSample verifies that the median of a large
// noisy sample clustered near 6.2 lands within 0.1 rad of 6.2, despite the
// cluster straddling the period boundary.
func TestMedian_ConvergesOnUnimodalSample(t *testing.T) {
	const (
		n   = 1000
		mu  = 6.2
		std = 0.5
	)
	rng := rand.New(rand.NewPCG(7, 7))
	alpha := make([]float64, n)
	for i := range alpha {
		alpha[i] = circular.Normalize(mu + std*rng.NormFloat64())
	}

	md, err := circular.Median(alpha)
	require.NoError(t, err)
	assert.Less(t, math.Abs(circular.Cdiff(md, circular.Normalize(mu))), 0.1,
		"median of a unimodal sample converges to its mode")
}

// TestMedian_MeanSideAnchoring verifies the resolution of the 180°
// ambiguity: the median must sit on the same side of the circle as the
// circular mean.
func TestMedian_MeanSideAnchoring(t *testing.T) {
	// Skewed cluster plus a lone outlier on the far side.
	alpha := []float64{0.9, 1.0, 1.1, 1.2, 4.3}

	md, err := circular.Median(alpha)
	require.NoError(t, err)
	mean, err := circular.Mean(alpha)
	require.NoError(t, err)

	assert.Less(t, math.Abs(circular.Cdiff(mean, md)), math.Pi/2,
		"median anchors to the mean's side of the circle")
}
