// Package circular implements descriptive statistics for angular data.
//
// The descriptive primitives follow the classical definitions built on the
// resultant vector of the sample:
//
//	C = Σ cos(αᵢ)    S = Σ sin(αᵢ)
//	mean      = atan2(S/N, C/N), normalized into [0, 2π)
//	r         = √(S² + C²) / N            ∈ [0, 1]
//	variance  = 1 − r                      ∈ [0, 1]
//	std       = √(−2 · ln r)               ∈ [0, +Inf]
//
// Complexity: every primitive in this file is a single O(N) pass.
//
// Notes on implementation choices:
//
//   - No modulo reduction is applied before summing sines and cosines:
//     trigonometric identities make it unnecessary.
//   - Std returns +Inf for a maximally dispersed sample (r = 0) rather
//     than failing; StdChecked offers the erroring convention.
package circular

import "math"

// TwoPi is the canonical circular period.
const TwoPi = 2 * math.Pi

// Normalize reduces an angle to its canonical representative in [0, 2π).
func Normalize(alpha float64) float64 {
	a := math.Mod(alpha, TwoPi)
	if a < 0 {
		a += TwoPi
	}

	return a
}

// sumSinCos accumulates the components of the resultant vector.
func sumSinCos(alpha []float64) (sumSin, sumCos float64) {
	for _, a := range alpha {
		sumSin += math.Sin(a)
		sumCos += math.Cos(a)
	}

	return sumSin, sumCos
}

// Mean computes the circular mean direction of alpha, normalized into
// [0, 2π).
//
// For angles confined to an arbitrarily small arc the result coincides
// with the linear mean. When the resultant vector is exactly zero (e.g.
// two antipodal points) the direction is undefined; this implementation
// returns atan2(0, 0) = 0, which is a documented convention, not an error.
//
// Returns ErrEmptyInput for an empty sample.
func Mean(alpha []float64) (float64, error) {
	n := len(alpha)
	if n == 0 {
		return 0, ErrEmptyInput
	}

	sumSin, sumCos := sumSinCos(alpha)

	return Normalize(math.Atan2(sumSin/float64(n), sumCos/float64(n))), nil
}

// ResultantLength computes the mean resultant length r ∈ [0, 1]:
// r = 1 means all angles are identical mod 2π, r = 0 means the sample is
// maximally dispersed (uniform or perfectly canceling). r is the circular
// concentration analogue of inverse variance.
//
// Returns ErrEmptyInput for an empty sample.
func ResultantLength(alpha []float64) (float64, error) {
	n := len(alpha)
	if n == 0 {
		return 0, ErrEmptyInput
	}

	sumSin, sumCos := sumSinCos(alpha)

	return math.Sqrt(sumSin*sumSin+sumCos*sumCos) / float64(n), nil
}

// Variance computes the circular variance v = 1 − r, always in [0, 1].
//
// Returns ErrEmptyInput for an empty sample.
func Variance(alpha []float64) (float64, error) {
	r, err := ResultantLength(alpha)
	if err != nil {
		return 0, err
	}

	return 1 - r, nil
}

// Std computes the circular standard deviation s = √(−2 · ln r).
//
// As r → 0 (maximal dispersion) s diverges; for r exactly zero this
// function returns +Inf. Callers that prefer an explicit failure should
// use StdChecked.
//
// Returns ErrEmptyInput for an empty sample.
func Std(alpha []float64) (float64, error) {
	r, err := ResultantLength(alpha)
	if err != nil {
		return 0, err
	}

	// math.Log(0) == -Inf, so r == 0 propagates to +Inf here.
	return math.Sqrt(-2 * math.Log(r)), nil
}

// StdChecked behaves like Std but returns ErrZeroResultant instead of +Inf
// when the resultant length is exactly zero.
func StdChecked(alpha []float64) (float64, error) {
	r, err := ResultantLength(alpha)
	if err != nil {
		return 0, err
	}
	if r == 0 {
		return 0, ErrZeroResultant
	}

	return math.Sqrt(-2 * math.Log(r)), nil
}

// Concentration estimates the von Mises concentration parameter κ from the
// mean resultant length using the standard three-branch approximation.
// Higher κ means the sample is more tightly concentrated around its mean.
//
// Returns ErrEmptyInput for an empty sample.
func Concentration(alpha []float64) (float64, error) {
	r, err := ResultantLength(alpha)
	if err != nil {
		return 0, err
	}

	switch {
	case r < 0.53:
		return 2*r + r*r*r + 5*r*r*r*r*r/6, nil
	case r < 0.85:
		return -0.4 + 1.39*r + 0.43/(1-r), nil
	default:
		return 1 / (r*r*r - 4*r*r + 3*r), nil
	}
}

// RayleighUniform runs the Rayleigh test of uniformity and returns the
// large-sample approximate p-value exp(−N·r²). Small p-values reject the
// hypothesis that the sample is uniformly distributed on the circle; the
// caller picks the threshold.
//
// Returns ErrEmptyInput for an empty sample.
func RayleighUniform(alpha []float64) (float64, error) {
	r, err := ResultantLength(alpha)
	if err != nil {
		return 0, err
	}

	z := float64(len(alpha)) * r * r

	return math.Exp(-z), nil
}
