// Package kde provides Gaussian kernel density estimation over d×n
// datasets, generalized to modular (circular) data: angles, phases and any
// quantity that wraps modulo a period.
//
// Overview:
//
//   - A kernel density estimate is a smooth, non-parametric probability
//     density built by centering a Gaussian kernel at each observation and
//     summing. Its two moving parts — the covariance that shapes each
//     kernel, and the distance between a data point and a query point —
//     are exactly the parts that break on circular data. This package
//     redefines both: in modular mode, the covariance comes from the
//     squared circular standard deviation and the distance from the
//     wraparound-safe circular difference, so a cluster straddling the
//     0/2π seam produces one density peak, not two.
//
// When to use:
//
//   - Estimating a density over directional data (phases, bearings, times
//     of day) where a linear KDE smears mass across the period boundary.
//   - Ordinary linear KDE in 1..d dimensions, when you want the same API
//     for both kinds of data.
//
// Key features:
//
//   - Pluggable bandwidth: Fixed(f) for externally tuned factors, Scott()
//     (default), Silverman(), or any BandwidthFunc.
//   - Modular mode via WithPeriod(p): modularity factor 2π/p rescales data
//     into the canonical circle and back. Restricted to d = 1; modular
//     covariance for d > 1 is explicitly unsupported (ErrModularMultiDim).
//   - Explicit lifecycle: covariance, inverse and normalization are
//     computed once at construction and never mutate; Rebuild returns a
//     fresh model for a new bandwidth or mode.
//   - Tagged degeneracy: constant or maximally dispersed data yields a
//     model whose evaluations are all-zero with Result.Degenerate set —
//     callers cannot mistake a degenerate zero for a real density.
//   - Loop-order optimization: the pairwise evaluation iterates over the
//     smaller of {data, query}, bounding work by min(n,m)·max(n,m) without
//     affecting results.
//
// Error handling (sentinel errors):
//
//   - ErrNilDataset, ErrDatasetTooSmall: invalid dataset at construction.
//   - ErrBadBandwidth, ErrBadPeriod: invalid configuration at construction.
//   - ErrModularMultiDim: modular mode on multi-dimensional data.
//   - ErrNilQuery, ErrDimensionMismatch: invalid query at evaluation.
//
// API reference:
//
//	k, err := kde.New(dataset,
//	    kde.WithBandwidth(kde.Fixed(0.2)),
//	    kde.WithPeriod(2*math.Pi),
//	)
//	res, err := k.Evaluate(points)   // points: d×m, one point per column
//	ys, err  := k.EvaluateSlice(xs)  // d == 1 convenience
//	res, err := k.EvaluatePoint(pt)  // single point from a []float64
//	k2, err  := k.Rebuild(kde.WithBandwidth(kde.Silverman()))
//
// Thread safety:
//
//   - A *KDE is immutable after New; concurrent Evaluate calls on the same
//     instance are safe. The dataset is shared, not copied — do not mutate
//     it while any model built on it is alive.
//
// See also:
//
//   - circstat/circular: the statistical primitives (Std, Cdiff) this
//     package plugs in for its modular mode.
package kde
