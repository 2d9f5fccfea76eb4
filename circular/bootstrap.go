// Package circular: percentile-bootstrap confidence interval for the mean
// direction.
//
// The interval is built in deviation space: every bootstrap mean is first
// expressed as a signed angular deviation from the full-sample mean via
// Cdiff, so an interval straddling the 0/2π seam comes out correctly
// instead of spanning nearly the whole circle.
//
// Complexity: O(iterations × N) time, O(iterations + N) space.
package circular

import (
	"math/rand/v2"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// MeanCI computes a percentile-bootstrap confidence interval for the
// circular mean of alpha. Resampling is deterministic for a fixed seed
// (see WithSeed); the default configuration is DefaultCIOptions.
//
// Returns ErrEmptyInput for an empty sample, ErrBadConfidence for a
// confidence level outside (0, 1) and ErrBadIterations for a negative
// iteration count.
func MeanCI(alpha []float64, opts ...CIOption) (Interval, error) {
	// 1) Build and validate options.
	cfg := DefaultCIOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.Confidence <= 0 || cfg.Confidence >= 1 {
		return Interval{}, ErrBadConfidence
	}
	if cfg.Iterations < 0 {
		return Interval{}, ErrBadIterations
	}

	n := len(alpha)
	if n == 0 {
		return Interval{}, ErrEmptyInput
	}
	iters := cfg.Iterations
	if iters == 0 {
		iters = n
	}

	// 2) Full-sample mean anchors the deviation space.
	center, err := Mean(alpha)
	if err != nil {
		return Interval{}, err
	}

	// 3) Resample with replacement; record each bootstrap mean as a signed
	// deviation from the center.
	rng := rand.New(rand.NewPCG(cfg.Seed, cfg.Seed))
	resample := make([]float64, n)
	deviations := make([]float64, iters)
	for b := 0; b < iters; b++ {
		for i := range resample {
			resample[i] = alpha[rng.IntN(n)]
		}
		m, err := Mean(resample)
		if err != nil {
			return Interval{}, err
		}
		deviations[b] = Cdiff(m, center)
	}

	// 4) Percentile bounds of the deviation distribution, mapped back onto
	// the circle around the center.
	sort.Float64s(deviations)
	tail := (1 - cfg.Confidence) / 2
	lo := stat.Quantile(tail, stat.Empirical, deviations, nil)
	hi := stat.Quantile(1-tail, stat.Empirical, deviations, nil)

	return Interval{
		Lower: Normalize(center + lo),
		Upper: Normalize(center + hi),
	}, nil
}
