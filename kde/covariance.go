// SPDX-License-Identifier: MIT
// Package: circstat/kde
//
// covariance.go - data covariance estimation and derived kernel constants.
//
// Package kde: covariance estimation and caching.
//
// The data covariance is computed exactly once, at construction, and the
// derived kernel covariance, inverse and normalization constant live on
// the model for its lifetime. Degeneracy (zero, negative, infinite or
// undefined covariance) is detected here and recorded as a tag rather
// than an error: evaluation degrades gracefully instead of dividing by
// zero.
package kde

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/circstat/circular"
)

// computeCovariance dispatches on dimensionality and modularity. Called
// exactly once, from the constructor.
func (k *KDE) computeCovariance() {
	if k.d == 1 {
		k.scalar = true
		k.computeScalarCovariance()

		return
	}
	k.computeMatrixCovariance()
}

// computeScalarCovariance handles d == 1 datasets in either mode.
//
// Linear:  bias-corrected sample variance.
// Modular: squared circular standard deviation of the data rescaled into
//
//	the canonical 2π period, mapped back: (Std(f·x)/f)².
func (k *KDE) computeScalarCovariance() {
	data := make([]float64, k.n)
	mat.Row(data, 0, k.dataset)

	var cov float64
	if k.modular {
		scaled := make([]float64, k.n)
		for i, v := range data {
			scaled[i] = k.modFactor * v
		}
		s, err := circular.Std(scaled)
		if err != nil {
			k.degenerate = true

			return
		}
		s /= k.modFactor
		cov = s * s
	} else {
		cov = stat.Variance(data, nil)
	}

	// Zero covariance: constant data. Infinite: maximally dispersed modular
	// data (circular std diverges). Either way the inverse is undefined.
	if !(cov > 0) || math.IsInf(cov, 1) || math.IsNaN(cov) {
		k.degenerate = true

		return
	}

	k.kernelCov = cov * k.factor * k.factor
	k.invCov = 1 / cov / (k.factor * k.factor)
	k.normFactor = math.Sqrt(2*math.Pi*k.kernelCov) * float64(k.n)
}

// computeMatrixCovariance handles linear mode for d > 1: full sample
// covariance matrix, its inverse and the determinant-based normalization.
func (k *KDE) computeMatrixCovariance() {
	// stat.CovarianceMatrix expects one observation per row; the dataset
	// stores one per column, so feed it the transpose view.
	dataCov := mat.NewSymDense(k.d, nil)
	stat.CovarianceMatrix(dataCov, k.dataset.T(), nil)

	// n == 1 (division by n−1) or pathological inputs produce NaN/Inf
	// entries; such a covariance is degenerate, not an error.
	raw := dataCov.RawSymmetric().Data
	if floats.HasNaN(raw) || hasInf(raw) {
		k.degenerate = true

		return
	}

	f2 := k.factor * k.factor
	kernelCov := mat.NewSymDense(k.d, nil)
	for i := 0; i < k.d; i++ {
		for j := i; j < k.d; j++ {
			kernelCov.SetSym(i, j, dataCov.At(i, j)*f2)
		}
	}

	det := mat.Det(kernelCov)
	var inv mat.Dense
	if det <= 0 || math.IsNaN(det) || inv.Inverse(kernelCov) != nil {
		k.degenerate = true

		return
	}

	k.kernelCovMat = kernelCov
	k.invCovMat = &inv
	k.normFactor = math.Sqrt(math.Pow(2*math.Pi, float64(k.d))*det) * float64(k.n)
}

// hasInf reports whether any value is ±Inf. floats covers NaN only.
func hasInf(xs []float64) bool {
	for _, v := range xs {
		if math.IsInf(v, 0) {
			return true
		}
	}

	return false
}
