// Package circular: wraparound-safe angular differences.
//
// Naive subtraction of angles breaks near the 0/2π seam: 0.05 − 6.23 is
// −6.18, not the true angular separation of 0.1. Cdiff takes the phase of
// the quotient of unit complex exponentials exp(iα)/exp(iβ), which always
// lands in (−π, π] and therefore always reports the short way around.
package circular

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// Cdiff computes the signed angular difference α − β reduced into (−π, π].
//
// Identities (hold for all a, b):
//
//	Cdiff(a, b) == -Cdiff(b, a)   (up to the ±π representative)
//	Cdiff(a, a) == 0
func Cdiff(alpha, beta float64) float64 {
	// atan2(sin(α−β), cos(α−β)) is the phase of exp(i(α−β)).
	return math.Atan2(math.Sin(alpha-beta), math.Cos(alpha-beta))
}

// CdiffSlice computes the elementwise signed angular differences
// alpha[i] − beta[i], each reduced into (−π, π].
//
// Returns ErrEmptyInput if alpha is empty and ErrLengthMismatch if the
// slices differ in length.
func CdiffSlice(alpha, beta []float64) ([]float64, error) {
	if len(alpha) == 0 {
		return nil, ErrEmptyInput
	}
	if len(alpha) != len(beta) {
		return nil, ErrLengthMismatch
	}

	out := make([]float64, len(alpha))
	for i := range alpha {
		out[i] = Cdiff(alpha[i], beta[i])
	}

	return out, nil
}

// PairwiseCdiff computes all pairwise signed angular differences between
// two samples, returning a len(alpha) × len(beta) matrix with
//
//	M[i, j] = Cdiff(alpha[i], beta[j]).
//
// A nil or empty beta means self-pairwise differences on alpha (the
// matrix is then len(alpha) × len(alpha) with a zero diagonal).
//
// Returns ErrEmptyInput if alpha is empty.
func PairwiseCdiff(alpha, beta []float64) (*mat.Dense, error) {
	if len(alpha) == 0 {
		return nil, ErrEmptyInput
	}
	if len(beta) == 0 {
		beta = alpha
	}

	out := mat.NewDense(len(alpha), len(beta), nil)
	for i, a := range alpha {
		for j, b := range beta {
			out.Set(i, j, Cdiff(a, b))
		}
	}

	return out, nil
}
