// Package circular: axis reduction for matrix-valued samples.
//
// Multi-dimensional samples are plain gonum matrices; any scalar statistic
// (Mean, Variance, Median, …) extends to them through ReduceAxis, which
// applies the statistic slice-by-slice along the chosen axis. This replaces
// the nd-array axis parameter of array-language implementations with one
// explicit, uniformly applied rule.
package circular

import "gonum.org/v1/gonum/mat"

// ReduceAxis applies fn to every slice of X along the chosen axis.
//
//	AlongRows    – fn consumes each column; the result has one entry per column.
//	AlongColumns – fn consumes each row; the result has one entry per row.
//
// Returns ErrNilMatrix for a nil matrix, ErrBadAxis for an unknown axis,
// and the first error fn reports, verbatim.
func ReduceAxis(X mat.Matrix, axis Axis, fn StatFunc) ([]float64, error) {
	if X == nil {
		return nil, ErrNilMatrix
	}

	r, c := X.Dims()

	switch axis {
	case AlongRows:
		out := make([]float64, c)
		buf := make([]float64, r)
		for j := 0; j < c; j++ {
			mat.Col(buf, j, X)
			v, err := fn(buf)
			if err != nil {
				return nil, err
			}
			out[j] = v
		}

		return out, nil

	case AlongColumns:
		out := make([]float64, r)
		buf := make([]float64, c)
		for i := 0; i < r; i++ {
			mat.Row(buf, i, X)
			v, err := fn(buf)
			if err != nil {
				return nil, err
			}
			out[i] = v
		}

		return out, nil

	default:
		return nil, ErrBadAxis
	}
}

// MeanAxis computes the circular mean along the chosen axis.
func MeanAxis(X mat.Matrix, axis Axis) ([]float64, error) {
	return ReduceAxis(X, axis, Mean)
}

// ResultantLengthAxis computes the mean resultant length along the chosen axis.
func ResultantLengthAxis(X mat.Matrix, axis Axis) ([]float64, error) {
	return ReduceAxis(X, axis, ResultantLength)
}

// VarianceAxis computes the circular variance along the chosen axis.
func VarianceAxis(X mat.Matrix, axis Axis) ([]float64, error) {
	return ReduceAxis(X, axis, Variance)
}

// StdAxis computes the circular standard deviation along the chosen axis.
func StdAxis(X mat.Matrix, axis Axis) ([]float64, error) {
	return ReduceAxis(X, axis, Std)
}

// MedianAxis computes the circular median along the chosen axis. Per-slice
// tie diagnostics are not collected; run MedianWithStats on individual
// slices when they matter.
func MedianAxis(X mat.Matrix, axis Axis) ([]float64, error) {
	return ReduceAxis(X, axis, Median)
}
