// Package circular: the circular median direction.
//
// Algorithm outline (per sample):
//
//  1. Reduce every angle modulo 2π.
//  2. Compute all pairwise signed differences within the sample.
//  3. For each candidate direction count how many points lie at
//     non-negative (m1) versus non-positive (m2) signed difference.
//  4. The candidates minimizing |m1 − m2| are the median candidates; a
//     minimum above one means the median is not unique (tie — reported,
//     never an error).
//  5. Circular-average the tied candidates into a provisional median md.
//  6. Resolve the circle's 180° ambiguity: keep whichever of md and md+π
//     is angularly closer to the overall circular mean.
//
// Complexity: O(N²) time, O(N) extra space.
package circular

import "math"

// Median computes the circular median direction of alpha, normalized into
// [0, 2π). Tie diagnostics are discarded; use MedianWithStats when they
// matter.
//
// Returns ErrEmptyInput for an empty sample.
func Median(alpha []float64) (float64, error) {
	md, _, err := MedianWithStats(alpha)

	return md, err
}

// MedianWithStats computes the circular median direction of alpha along
// with non-fatal diagnostics. A degenerate single-point sample is its own
// median. Ties (median not unique) set MedianStats.Tied and are resolved
// by circular-averaging the tied candidates — the warning convention of
// classical circular-statistics packages.
//
// Returns ErrEmptyInput for an empty sample.
func MedianWithStats(alpha []float64) (float64, MedianStats, error) {
	n := len(alpha)
	if n == 0 {
		return 0, MedianStats{}, ErrEmptyInput
	}

	// 1) Canonical representatives in [0, 2π).
	beta := make([]float64, n)
	for i, a := range alpha {
		beta[i] = Normalize(a)
	}
	if n == 1 {
		return beta[0], MedianStats{Candidates: 1}, nil
	}

	// 2-3) Count imbalance per candidate. The pairwise difference matrix is
	// never materialized: each column of it is consumed on the fly.
	imbalance := make([]int, n)
	minImbalance := n + 1
	for j := 0; j < n; j++ {
		var m1, m2 int
		for i := 0; i < n; i++ {
			d := Cdiff(beta[i], beta[j])
			if d >= 0 {
				m1++
			}
			if d <= 0 {
				m2++
			}
		}
		if imbalance[j] = m1 - m2; imbalance[j] < 0 {
			imbalance[j] = -imbalance[j]
		}
		if imbalance[j] < minImbalance {
			minImbalance = imbalance[j]
		}
	}

	// 4) Collect every candidate attaining the minimum.
	var candidates []float64
	for j := 0; j < n; j++ {
		if imbalance[j] == minImbalance {
			candidates = append(candidates, beta[j])
		}
	}
	stats := MedianStats{
		Tied:       minImbalance > 1,
		Candidates: len(candidates),
	}

	// 5) Provisional median: circular average of the candidates.
	md, err := Mean(candidates)
	if err != nil {
		return 0, MedianStats{}, err
	}

	// 6) Anchor to the correct side of the circle: the median must sit on
	// the same side as the overall mean direction.
	overall, err := Mean(beta)
	if err != nil {
		return 0, MedianStats{}, err
	}
	if math.Abs(Cdiff(overall, md)) > math.Abs(Cdiff(overall, md+math.Pi)) {
		md += math.Pi
	}

	return Normalize(md), stats, nil
}
