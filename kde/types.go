// SPDX-License-Identifier: MIT
// Package: circstat/kde
//
// types.go - sentinel errors, bandwidth strategies and configuration options.
//
// Package kde defines core types, sentinel errors, bandwidth strategies and
// configuration options for the modular Gaussian kernel density estimator.
//
// Bandwidth strategies:
//
//	– Fixed(f):        use the scalar f directly as the covariance factor.
//	– Scott():         n^(−1/(d+4)), Scott's rule.
//	– Silverman():     (n·(d+2)/4)^(−1/(d+4)), Silverman's rule.
//	– BandwidthFunc:   any func(d, n int) float64, for custom rules.
//
// Errors (sentinel):
//
//	– ErrNilDataset        if the dataset matrix is nil.
//	– ErrDatasetTooSmall   if the dataset holds fewer than two elements.
//	– ErrBadBandwidth      if the strategy yields a non-positive or
//	                       non-finite covariance factor.
//	– ErrBadPeriod         if a modularity period is zero, negative or
//	                       non-finite.
//	– ErrModularMultiDim   if modular mode is requested for d > 1 data
//	                       (multi-dimensional circular covariance is
//	                       explicitly unsupported).
//	– ErrDimensionMismatch if query dimensionality disagrees with the
//	                       dataset dimensionality at evaluation time.
//	– ErrNilQuery          if a nil query matrix is passed to Evaluate.
package kde

import (
	"errors"
	"math"
)

// Sentinel errors returned by the kde package. Construction-time structural
// errors are fatal and surface immediately; numerically degenerate data is
// NOT an error — it tags the model (see KDE.Degenerate and Result).
var (
	// ErrNilDataset indicates that a nil dataset matrix was passed to New.
	ErrNilDataset = errors.New("kde: dataset is nil")

	// ErrDatasetTooSmall indicates that the dataset holds fewer than two
	// elements in total; a density estimate needs multiple observations.
	ErrDatasetTooSmall = errors.New("kde: dataset must have multiple elements")

	// ErrBadBandwidth indicates that the bandwidth strategy produced a
	// covariance factor that is not a positive finite scalar.
	ErrBadBandwidth = errors.New("kde: bandwidth factor must be a positive finite scalar")

	// ErrBadPeriod indicates a modularity period that is not a positive
	// finite scalar.
	ErrBadPeriod = errors.New("kde: modularity period must be a positive finite scalar")

	// ErrModularMultiDim indicates modular mode on multi-dimensional data.
	// Circular covariance is only defined here for d = 1; the scalar formula
	// is not silently extended.
	ErrModularMultiDim = errors.New("kde: modular mode supports one-dimensional data only")

	// ErrDimensionMismatch indicates that the query points do not match the
	// dataset dimensionality. Evaluate accepts exactly d×m matrices; no
	// row/column reinterpretation is attempted.
	ErrDimensionMismatch = errors.New("kde: query dimension does not match dataset dimension")

	// ErrNilQuery indicates that a nil query matrix was passed to Evaluate.
	ErrNilQuery = errors.New("kde: query is nil")
)

// Bandwidth computes the covariance factor: the scalar that multiplies the
// data covariance (squared) to obtain the kernel covariance. Strategies are
// selected at construction and never rebound afterwards.
type Bandwidth interface {
	// Factor returns the covariance factor for a d-dimensional dataset of
	// n observations.
	Factor(d, n int) float64
}

// BandwidthFunc adapts an ordinary function into a Bandwidth strategy.
type BandwidthFunc func(d, n int) float64

// Factor implements Bandwidth.
func (f BandwidthFunc) Factor(d, n int) float64 { return f(d, n) }

type fixedBandwidth float64

func (f fixedBandwidth) Factor(int, int) float64 { return float64(f) }

// Fixed returns the strategy that uses factor directly, ignoring the
// dataset shape. This is the primary mode for callers that tuned their
// bandwidth externally.
func Fixed(factor float64) Bandwidth { return fixedBandwidth(factor) }

type scottBandwidth struct{}

func (scottBandwidth) Factor(d, n int) float64 {
	return math.Pow(float64(n), -1/(float64(d)+4))
}

// Scott returns Scott's rule: n^(−1/(d+4)).
func Scott() Bandwidth { return scottBandwidth{} }

type silvermanBandwidth struct{}

func (silvermanBandwidth) Factor(d, n int) float64 {
	return math.Pow(float64(n)*(float64(d)+2)/4, -1/(float64(d)+4))
}

// Silverman returns Silverman's rule: (n·(d+2)/4)^(−1/(d+4)).
func Silverman() Bandwidth { return silvermanBandwidth{} }

// Options configures construction of a KDE.
//
// Bandwidth – covariance-factor strategy. Default Scott().
// Period    – modularity period; 0 selects linear mode. Any positive value
//             enables modular (circular) mode with modularity factor 2π/Period.
type Options struct {
	Bandwidth Bandwidth
	Period    float64
}

// Option represents a functional option for configuring New and Rebuild.
type Option func(*Options)

// WithBandwidth selects the covariance-factor strategy. A nil strategy is
// rejected at construction with ErrBadBandwidth.
func WithBandwidth(bw Bandwidth) Option {
	return func(o *Options) {
		o.Bandwidth = bw
	}
}

// WithPeriod enables modular (circular) mode with the given period, e.g.
// 2π for plain angles or π for axial data. Non-positive or non-finite
// periods are rejected at construction with ErrBadPeriod.
func WithPeriod(period float64) Option {
	return func(o *Options) {
		o.Period = period
	}
}

// Linear returns the KDE to linear mode; useful with Rebuild to strip the
// modularity of an existing model.
func Linear() Option {
	return func(o *Options) {
		o.Period = 0
	}
}

// DefaultOptions returns the Options used when no functional options are
// supplied: Scott's bandwidth, linear mode.
func DefaultOptions() Options {
	return Options{
		Bandwidth: Scott(),
		Period:    0,
	}
}

// Result is the tagged outcome of an evaluation.
//
// Densities  – estimated density at each query point, in query order.
// Degenerate – true when the model covariance was zero or undefined
//              (constant or maximally dispersed data); Densities is then
//              all zeros and must not be mistaken for a valid estimate.
type Result struct {
	Densities  []float64
	Degenerate bool
}
