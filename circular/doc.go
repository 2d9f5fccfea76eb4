// Package circular provides descriptive statistics for data distributed on
// a circle: angles, phases, directions, times of day — anything that wraps
// modulo a period.
//
// Overview:
//
//   - Ordinary arithmetic statistics are meaningless on a circle: the
//     linear mean of {0.05, 2π−0.05} is π, the exact opposite of where the
//     data sits. Every primitive in this package is defined through the
//     resultant vector (Σcos, Σsin) of the sample, which respects the
//     wraparound by construction.
//   - The package is pure and deterministic: no I/O, no global state, and
//     every function is safe for concurrent use.
//
// When to use:
//
//   - Summarizing directional measurements (wind, bearings, phase angles).
//   - Any pipeline where values wrap and "distance" must mean the short
//     way around the circle (Cdiff, PairwiseCdiff).
//   - As the statistical substrate for circstat/kde, which derives its
//     bandwidth from the circular standard deviation.
//
// Key features:
//
//   - Mean, ResultantLength, Variance, Std — the classical resultant-vector
//     statistics, each a single O(N) pass.
//   - Cdiff / CdiffSlice / PairwiseCdiff — signed angular differences in
//     (−π, π], computed from the phase of exp(iα)/exp(iβ).
//   - Median / MedianWithStats — the circular median with explicit tie
//     diagnostics (ties are a warning, not an error) and mean-side
//     disambiguation of the inherent 180° ambiguity.
//   - ReduceAxis and the *Axis wrappers — apply any scalar statistic along
//     the rows or columns of a gonum matrix.
//   - Concentration (von Mises κ), RayleighUniform (uniformity p-value),
//     MeanCI (percentile-bootstrap confidence interval for the mean).
//
// Error handling (sentinel errors):
//
//   - ErrEmptyInput:     a sample contains no angles.
//   - ErrLengthMismatch: paired slices differ in length (CdiffSlice).
//   - ErrZeroResultant:  StdChecked on a maximally dispersed sample; plain
//     Std returns +Inf instead.
//   - ErrNilMatrix, ErrBadAxis: ReduceAxis input validation.
//   - ErrBadConfidence, ErrBadIterations: MeanCI option validation.
//
// Conventions:
//
//   - All angles are radians; results of Mean and Median are normalized
//     into [0, 2π). Data with a custom period is handled by rescaling:
//     statistics of period-p data x are f(2π/p · x) mapped back by p/2π.
//   - A zero resultant vector leaves the mean direction undefined; Mean
//     returns 0 in that case (implementation-defined, documented, not an
//     error).
//
// Thread safety:
//
//   - All functions are pure; the package holds no mutable state.
//
// See also:
//
//   - circstat/kde: Gaussian kernel density estimation that plugs Std and
//     Cdiff in for its bandwidth and distance computations.
package circular
