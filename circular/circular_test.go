package circular_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/circstat/circular"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestMean_EmptyInput verifies that Mean returns ErrEmptyInput for an
// empty sample.
func TestMean_EmptyInput(t *testing.T) {
	_, err := circular.Mean(nil)
	assert.ErrorIs(t, err, circular.ErrEmptyInput, "empty sample must error")
}

// TestMean_SmallArcMatchesLinearMean verifies consistency with the linear
// mean when all angles sit inside an arbitrarily small arc.
func TestMean_SmallArcMatchesLinearMean(t *testing.T) {
	alpha := []float64{1.000, 1.001, 1.002}

	mu, err := circular.Mean(alpha)
	require.NoError(t, err)
	assert.InDelta(t, 1.001, mu, 1e-9, "tight arc must reduce to the linear mean")
}

// TestMean_PeriodShiftInvariance verifies invariance under a uniform shift
// of every input by 2πk.
func TestMean_PeriodShiftInvariance(t *testing.T) {
	alpha := []float64{0.3, 0.5, 0.9}
	shifted := make([]float64, len(alpha))
	for i, a := range alpha {
		shifted[i] = a + 3*circular.TwoPi
	}

	mu, err := circular.Mean(alpha)
	require.NoError(t, err)
	muShifted, err := circular.Mean(shifted)
	require.NoError(t, err)

	assert.InDelta(t, mu, muShifted, 1e-12, "adding 2πk to every angle must not move the mean")
}

// TestMean_RotationEquivariance verifies circMean(a + θ) = circMean(a) + θ
// (mod 2π) for a global rotation θ.
func TestMean_RotationEquivariance(t *testing.T) {
	alpha := []float64{0.3, 0.5, 0.9}
	const theta = 1.25

	rotated := make([]float64, len(alpha))
	for i, a := range alpha {
		rotated[i] = a + theta
	}

	mu, err := circular.Mean(alpha)
	require.NoError(t, err)
	muRot, err := circular.Mean(rotated)
	require.NoError(t, err)

	assert.InDelta(t, circular.Normalize(mu+theta), muRot, 1e-12, "rotation must carry the mean with it")
}

// TestMean_WraparoundCluster verifies that a cluster straddling the 0/2π
// seam averages near the seam, not near π.
func TestMean_WraparoundCluster(t *testing.T) {
	alpha := []float64{circular.TwoPi - 0.05, 0.05}

	mu, err := circular.Mean(alpha)
	require.NoError(t, err)

	// The linear mean would be ≈ π; the circular mean must land at the seam.
	assert.InDelta(t, 0, math.Abs(circular.Cdiff(mu, 0)), 1e-12, "antisymmetric cluster at the seam averages to 0")
}

// TestResultantLength_Bounds verifies r ∈ [0, 1], r = 1 for identical
// angles and r ≈ 0 for two antipodal points.
func TestResultantLength_Bounds(t *testing.T) {
	identical, err := circular.ResultantLength([]float64{2.2, 2.2, 2.2})
	require.NoError(t, err)
	assert.InDelta(t, 1.0, identical, 1e-12, "identical angles must give r = 1")

	antipodal, err := circular.ResultantLength([]float64{0, math.Pi})
	require.NoError(t, err)
	assert.InDelta(t, 0.0, antipodal, 1e-15, "antipodal pair must give r = 0")

	mixed, err := circular.ResultantLength([]float64{0.1, 1.4, 3.0, 5.1})
	require.NoError(t, err)
	assert.GreaterOrEqual(t, mixed, 0.0)
	assert.LessOrEqual(t, mixed, 1.0)
}

// TestVariance_Identity verifies the identity v = 1 − r on a mixed sample.
func TestVariance_Identity(t *testing.T) {
	alpha := []float64{0.1, 1.4, 3.0, 5.1}

	r, err := circular.ResultantLength(alpha)
	require.NoError(t, err)
	v, err := circular.Variance(alpha)
	require.NoError(t, err)

	assert.InDelta(t, 1-r, v, 1e-15, "variance must equal 1 - r exactly")
}

// TestStd_DivergesWithDispersion verifies that the circular standard
// deviation grows without bound as dispersion approaches its maximum.
func TestStd_DivergesWithDispersion(t *testing.T) {
	tight, err := circular.Std([]float64{1.0, 1.1, 0.9})
	require.NoError(t, err)

	// Near-antipodal pair: r is within float rounding of zero, so the
	// standard deviation is enormous compared to any concentrated sample.
	dispersed, err := circular.Std([]float64{0, math.Pi})
	require.NoError(t, err)

	assert.Less(t, tight, 0.2, "concentrated sample has small std")
	assert.Greater(t, dispersed, 5.0, "maximally dispersed sample has divergent std")
}

// TestStdChecked_MatchesStd verifies that StdChecked agrees with Std
// whenever the resultant length is positive.
func TestStdChecked_MatchesStd(t *testing.T) {
	alpha := []float64{0.2, 0.5, 1.1}

	s, err := circular.Std(alpha)
	require.NoError(t, err)
	sc, err := circular.StdChecked(alpha)
	require.NoError(t, err)

	assert.Equal(t, s, sc, "both conventions agree away from r = 0")
}

// TestConcentration_TracksSpread verifies that κ is large for concentrated
// samples and small for dispersed ones, across the approximation branches.
func TestConcentration_TracksSpread(t *testing.T) {
	tight, err := circular.Concentration([]float64{1.0, 1.01, 0.99})
	require.NoError(t, err)
	loose, err := circular.Concentration([]float64{0.1, 1.5, 3.0, 4.5})
	require.NoError(t, err)

	assert.Greater(t, tight, 10.0, "tight cluster implies large κ")
	assert.Less(t, loose, 1.5, "spread sample implies small κ")
	assert.Greater(t, tight, loose, "κ must order by concentration")
}

// TestRayleighUniform_SeparatesClusteredFromSpread verifies that the
// Rayleigh p-value is small for a clustered sample and large for a sample
// spread evenly around the circle.
func TestRayleighUniform_SeparatesClusteredFromSpread(t *testing.T) {
	clustered := make([]float64, 50)
	for i := range clustered {
		clustered[i] = 1.0 + 0.01*float64(i%5)
	}
	pClustered, err := circular.RayleighUniform(clustered)
	require.NoError(t, err)

	spread := make([]float64, 50)
	for i := range spread {
		spread[i] = circular.TwoPi * float64(i) / 50
	}
	pSpread, err := circular.RayleighUniform(spread)
	require.NoError(t, err)

	assert.Less(t, pClustered, 0.001, "clustered sample must reject uniformity")
	assert.Greater(t, pSpread, 0.5, "evenly spread sample must look uniform")
}

// TestNormalize_CanonicalRange verifies reduction into [0, 2π) for
// negative, large and already-canonical inputs.
func TestNormalize_CanonicalRange(t *testing.T) {
	assert.InDelta(t, circular.TwoPi-0.5, circular.Normalize(-0.5), 1e-12)
	assert.InDelta(t, 0.5, circular.Normalize(0.5+2*circular.TwoPi), 1e-12)
	assert.Equal(t, 1.25, circular.Normalize(1.25), "canonical input passes through")
}
