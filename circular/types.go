// Package circular defines core types, sentinel errors and configuration
// options for the circular-statistics primitives.
//
// All angles are radians. Every function reduces its inputs to the
// canonical [0, 2π) representative where the mathematics requires it;
// sums of sines and cosines already respect periodicity and are used raw.
//
// Errors (sentinel):
//
//	– ErrEmptyInput     if a sample contains no angles.
//	– ErrLengthMismatch if paired slices have different lengths.
//	– ErrZeroResultant  if the resultant length is exactly zero where a
//	                    finite dispersion is required (StdChecked).
//	– ErrNilMatrix      if a nil mat.Matrix is passed to an axis reducer.
//	– ErrBadAxis        if an Axis value is neither AlongRows nor AlongColumns.
//	– ErrBadConfidence  if a bootstrap confidence level is outside (0, 1).
//	– ErrBadIterations  if a bootstrap iteration count is negative.
package circular

import "errors"

// Sentinel errors returned by the circular package. Algorithms MUST return
// these sentinels and tests match them via errors.Is. No function panics on
// user-triggered error conditions.
var (
	// ErrEmptyInput indicates that the provided sample contains no angles.
	ErrEmptyInput = errors.New("circular: input sample is empty")

	// ErrLengthMismatch indicates that two paired slices differ in length
	// where an elementwise operation was requested.
	ErrLengthMismatch = errors.New("circular: paired slices differ in length")

	// ErrZeroResultant indicates a maximally dispersed sample (resultant
	// length exactly zero), for which the circular standard deviation is
	// mathematically undefined. Std itself returns +Inf; StdChecked returns
	// this sentinel instead.
	ErrZeroResultant = errors.New("circular: resultant length is zero, dispersion undefined")

	// ErrNilMatrix indicates that a nil mat.Matrix was passed to ReduceAxis
	// or one of its wrappers.
	ErrNilMatrix = errors.New("circular: matrix is nil")

	// ErrBadAxis indicates an Axis value other than AlongRows or AlongColumns.
	ErrBadAxis = errors.New("circular: axis must be AlongRows or AlongColumns")

	// ErrBadConfidence indicates a bootstrap confidence level outside (0, 1).
	ErrBadConfidence = errors.New("circular: confidence level must lie in (0, 1)")

	// ErrBadIterations indicates a negative bootstrap iteration count.
	ErrBadIterations = errors.New("circular: bootstrap iterations must be non-negative")
)

// Axis selects the direction of reduction for matrix-valued samples.
//
// AlongRows    – walk down the rows of each column; one result per column.
// AlongColumns – walk across the columns of each row; one result per row.
type Axis int

const (
	// AlongRows reduces down each column, producing one value per column.
	AlongRows Axis = iota

	// AlongColumns reduces across each row, producing one value per row.
	AlongColumns
)

// StatFunc is any scalar reduction over a sample of angles, e.g. Mean,
// Variance or Median. ReduceAxis applies a StatFunc slice-by-slice.
type StatFunc func(alpha []float64) (float64, error)

// MedianStats carries non-fatal diagnostics from a median computation.
//
// Tied       – true when the median is not unique (more than one candidate
//              direction minimized the count imbalance by a gap above one).
//              This is a warning condition, never an error: the returned
//              median is the circular average of the tied candidates.
// Candidates – number of candidate directions that attained the minimum
//              count imbalance.
type MedianStats struct {
	Tied       bool
	Candidates int
}

// Interval is a circular confidence interval for a direction. Both bounds
// are normalized into [0, 2π); because the circle wraps, Lower may be
// numerically greater than Upper (an interval straddling the 0/2π seam).
type Interval struct {
	Lower float64
	Upper float64
}

// CIOptions configures the bootstrap confidence-interval estimators.
//
// Confidence – coverage level in (0, 1). Default 0.95.
// Iterations – number of bootstrap resamples. 0 means "sample size".
// Seed       – seed for the deterministic resampling RNG. Default 1.
type CIOptions struct {
	Confidence float64
	Iterations int
	Seed       uint64
}

// CIOption represents a functional option for configuring MeanCI.
type CIOption func(*CIOptions)

// WithConfidence sets the coverage level. Values outside (0, 1) are caught
// at call time and reported as ErrBadConfidence (no panic: the level is
// frequently data-driven).
func WithConfidence(level float64) CIOption {
	return func(o *CIOptions) {
		o.Confidence = level
	}
}

// WithIterations sets the number of bootstrap resamples. Zero keeps the
// default (one resample per observation).
func WithIterations(n int) CIOption {
	return func(o *CIOptions) {
		o.Iterations = n
	}
}

// WithSeed fixes the RNG seed so that resampling is reproducible.
func WithSeed(seed uint64) CIOption {
	return func(o *CIOptions) {
		o.Seed = seed
	}
}

// DefaultCIOptions returns the CIOptions used when no functional options
// are supplied.
//
// Defaults:
//   - Confidence: 0.95
//   - Iterations: 0 (resolved to the sample size at call time)
//   - Seed:       1
func DefaultCIOptions() CIOptions {
	return CIOptions{
		Confidence: 0.95,
		Iterations: 0,
		Seed:       1,
	}
}
