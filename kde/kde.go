// SPDX-License-Identifier: MIT
// Package: circstat/kde
//
// kde.go - model construction, rebuilding and density evaluation.
//
// Package kde implements Gaussian kernel density estimation with optional
// modular (circular) distance and covariance.
//
// Algorithm outline:
//
//  1. At construction, compute and cache the data covariance:
//     linear mode  — bias-corrected sample covariance of the dataset;
//     modular mode — squared circular standard deviation of the rescaled
//     data, mapped back to the original period.
//  2. Scale by the squared covariance factor to obtain the kernel
//     covariance, its inverse, and the normalization constant
//     √det(2π·Σ_kernel) · n.
//  3. At evaluation, sum exp(−E) over all data points for each query
//     point, where E = diffᵀ·Σ⁻¹·diff / 2 and diff is a plain difference
//     (linear) or a wraparound-safe circular difference (modular).
//
// Notes on implementation choices:
//
//   - The pairwise loop iterates over whichever of {data, query} is
//     smaller, bounding the outer loop by min(n, m). Both orderings are
//     mathematically identical; the choice never changes results.
//   - A model is immutable after New. Rebuild derives a new model from the
//     same dataset with different options; nothing is recomputed in place,
//     so cached covariance can never be read stale.
//   - Degenerate data (zero or undefined covariance) is not an error:
//     the model carries a tag, and every evaluation returns all-zero
//     densities with Result.Degenerate set.
//
// Complexity: construction O(n·d²), evaluation O(n·m·d²).
package kde

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/circstat/circular"
)

// KDE is a Gaussian kernel density model over a d×n dataset (n observations
// in d dimensions, one observation per column).
//
// The dataset is referenced, not copied: it must not be mutated for the
// model's lifetime. A KDE is immutable after construction, so concurrent
// Evaluate calls on one instance are safe.
type KDE struct {
	dataset mat.Matrix // d×n, read-only by contract
	d, n    int
	cfg     Options // resolved configuration, reused by Rebuild

	factor    float64 // covariance factor from the bandwidth strategy
	modular   bool
	modFactor float64 // 2π/period in modular mode, exactly 1 otherwise

	// Scalar covariance caches (d == 1, both modes).
	scalar    bool
	kernelCov float64
	invCov    float64

	// Matrix covariance caches (linear mode, d > 1).
	kernelCovMat *mat.SymDense
	invCovMat    *mat.Dense

	normFactor float64
	degenerate bool
}

// New constructs a KDE over dataset, a d×n matrix holding n observations
// in d dimensions. The default configuration is DefaultOptions (Scott's
// bandwidth, linear mode); see WithBandwidth and WithPeriod.
//
// Errors:
//
//   - ErrNilDataset, ErrDatasetTooSmall: structural dataset problems.
//   - ErrBadBandwidth: nil strategy, or a factor that is not positive and
//     finite.
//   - ErrBadPeriod: a period that is not positive and finite.
//   - ErrModularMultiDim: modular mode with d > 1.
//
// Degenerate data (all points identical, or maximally dispersed in modular
// mode) is NOT an error: construction succeeds and the model is tagged,
// see Degenerate.
func New(dataset mat.Matrix, opts ...Option) (*KDE, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	return newWithOptions(dataset, cfg)
}

// newWithOptions is the shared constructor behind New and Rebuild.
func newWithOptions(dataset mat.Matrix, cfg Options) (*KDE, error) {
	// 1) Validate dataset shape.
	if dataset == nil {
		return nil, ErrNilDataset
	}
	d, n := dataset.Dims()
	if d*n < 2 {
		return nil, ErrDatasetTooSmall
	}

	// 2) Validate and resolve the bandwidth strategy.
	if cfg.Bandwidth == nil {
		return nil, ErrBadBandwidth
	}
	factor := cfg.Bandwidth.Factor(d, n)
	if !(factor > 0) || math.IsInf(factor, 1) {
		return nil, ErrBadBandwidth
	}

	// 3) Validate the modularity period.
	k := &KDE{
		dataset:   dataset,
		d:         d,
		n:         n,
		cfg:       cfg,
		factor:    factor,
		modFactor: 1,
	}
	if cfg.Period != 0 {
		if !(cfg.Period > 0) || math.IsInf(cfg.Period, 1) {
			return nil, ErrBadPeriod
		}
		if d > 1 {
			return nil, ErrModularMultiDim
		}
		k.modular = true
		k.modFactor = circular.TwoPi / cfg.Period
	}

	// 4) Compute and cache covariance, inverse and normalization once.
	k.computeCovariance()

	return k, nil
}

// Rebuild derives a new model over the same dataset, starting from the
// current configuration and applying opts on top. The receiver is left
// untouched. Typical use: change the bandwidth, or switch between linear
// and modular mode, without re-stating the full configuration.
func (k *KDE) Rebuild(opts ...Option) (*KDE, error) {
	cfg := k.cfg
	for _, opt := range opts {
		opt(&cfg)
	}

	return newWithOptions(k.dataset, cfg)
}

// Dims returns the dataset dimensionality d and observation count n.
func (k *KDE) Dims() (d, n int) { return k.d, k.n }

// Factor returns the resolved covariance factor.
func (k *KDE) Factor() float64 { return k.factor }

// Modular reports whether the model uses circular covariance and distance.
func (k *KDE) Modular() bool { return k.modular }

// Degenerate reports whether the model covariance was zero or undefined at
// construction. A degenerate model evaluates to all-zero densities.
func (k *KDE) Degenerate() bool { return k.degenerate }

// Evaluate computes the estimated density at each query point.
//
// points must be a d×m matrix: one query point per column, matching the
// dataset dimensionality exactly. No row/column reinterpretation is
// attempted — a matrix with any other row count is ErrDimensionMismatch,
// even when its shape could plausibly be the transpose. Use EvaluatePoint
// for a single point held in a slice, or EvaluateSlice for d = 1 data.
//
// The returned Result tags degenerate models explicitly: when
// Result.Degenerate is true the densities are all zeros and no kernel was
// computed. Repeated calls return identical results.
//
// Evaluate never mutates the model; the method value k.Evaluate can be
// passed around as a plain func(mat.Matrix) (Result, error).
func (k *KDE) Evaluate(points mat.Matrix) (Result, error) {
	if points == nil {
		return Result{}, ErrNilQuery
	}
	pd, m := points.Dims()
	if pd != k.d {
		return Result{}, ErrDimensionMismatch
	}

	densities := make([]float64, m)
	if k.degenerate {
		return Result{Densities: densities, Degenerate: true}, nil
	}

	if k.scalar {
		k.evaluateScalar(points, densities)
	} else {
		k.evaluateMatrix(points, densities)
	}

	return Result{Densities: densities}, nil
}

// EvaluatePoint evaluates the density at a single d-dimensional point held
// in a slice. This is the explicit replacement for vector auto-reshaping:
// the slice length must equal d exactly (ErrDimensionMismatch otherwise).
func (k *KDE) EvaluatePoint(point []float64) (Result, error) {
	if len(point) != k.d {
		return Result{}, ErrDimensionMismatch
	}

	return k.Evaluate(mat.NewDense(k.d, 1, point))
}

// EvaluateSlice is the one-dimensional convenience: it evaluates the
// density at each x in xs. The model must be one-dimensional
// (ErrDimensionMismatch otherwise). Degenerate models yield all zeros;
// use Evaluate when the degeneracy tag matters.
func (k *KDE) EvaluateSlice(xs []float64) ([]float64, error) {
	if k.d != 1 {
		return nil, ErrDimensionMismatch
	}
	if len(xs) == 0 {
		return []float64{}, nil
	}

	res, err := k.Evaluate(mat.NewDense(1, len(xs), xs))
	if err != nil {
		return nil, err
	}

	return res.Densities, nil
}

// evaluateScalar runs the d == 1 evaluation path (linear or modular).
func (k *KDE) evaluateScalar(points mat.Matrix, densities []float64) {
	_, m := points.Dims()

	data := make([]float64, k.n)
	mat.Row(data, 0, k.dataset)
	query := make([]float64, m)
	mat.Row(query, 0, points)

	f := k.modFactor
	diff := func(x, p float64) float64 {
		if k.modular {
			// Nearest angular distance in the rescaled circle, mapped back.
			return circular.Cdiff(f*x, f*p) / f
		}

		return x - p
	}

	if m >= k.n {
		// More query points than data: loop over data, accumulate per query.
		for _, x := range data {
			for j, p := range query {
				dlt := diff(x, p)
				densities[j] += math.Exp(-dlt * dlt * k.invCov / 2)
			}
		}
	} else {
		// More data than query points: loop over queries.
		for j, p := range query {
			var sum float64
			for _, x := range data {
				dlt := diff(x, p)
				sum += math.Exp(-dlt * dlt * k.invCov / 2)
			}
			densities[j] = sum
		}
	}

	for j := range densities {
		densities[j] /= k.normFactor
	}
}

// evaluateMatrix runs the linear d > 1 evaluation path with the full
// inverse-covariance quadratic form.
func (k *KDE) evaluateMatrix(points mat.Matrix, densities []float64) {
	_, m := points.Dims()

	x := make([]float64, k.d)
	p := make([]float64, k.d)
	dlt := make([]float64, k.d)

	// energy = diffᵀ · Σ⁻¹ · diff / 2 for the current dlt.
	energy := func() float64 {
		var e float64
		for a := 0; a < k.d; a++ {
			var t float64
			for b := 0; b < k.d; b++ {
				t += k.invCovMat.At(a, b) * dlt[b]
			}
			e += dlt[a] * t
		}

		return e / 2
	}

	if m >= k.n {
		for i := 0; i < k.n; i++ {
			mat.Col(x, i, k.dataset)
			for j := 0; j < m; j++ {
				mat.Col(p, j, points)
				for a := range dlt {
					dlt[a] = x[a] - p[a]
				}
				densities[j] += math.Exp(-energy())
			}
		}
	} else {
		for j := 0; j < m; j++ {
			mat.Col(p, j, points)
			var sum float64
			for i := 0; i < k.n; i++ {
				mat.Col(x, i, k.dataset)
				for a := range dlt {
					dlt[a] = x[a] - p[a]
				}
				sum += math.Exp(-energy())
			}
			densities[j] = sum
		}
	}

	for j := range densities {
		densities[j] /= k.normFactor
	}
}
