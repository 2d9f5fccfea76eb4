package circular_test

import (
	"fmt"
	"math"

	"github.com/katalvlaran/circstat/circular"
)

// ExampleMean demonstrates why the circular mean matters: two angles
// hugging the 0/2π seam average to the seam, where the linear mean would
// report the opposite side of the circle.
func ExampleMean() {
	alpha := []float64{0.05, circular.TwoPi - 0.05}

	linear := (alpha[0] + alpha[1]) / 2
	mu, _ := circular.Mean(alpha)

	fmt.Printf("linear mean:   %.2f (wrong side)\n", linear)
	fmt.Printf("circular mean: %.2f\n", math.Abs(circular.Cdiff(mu, 0)))
	// Output:
	// linear mean:   3.14 (wrong side)
	// circular mean: 0.00
}

// ExampleCdiff demonstrates the wraparound-safe signed difference.
func ExampleCdiff() {
	// 0.05 and 2π−0.05 are 0.1 rad apart the short way around.
	fmt.Printf("%.2f\n", circular.Cdiff(0.05, circular.TwoPi-0.05))
	fmt.Printf("%.2f\n", circular.Cdiff(circular.TwoPi-0.05, 0.05))
	// Output:
	// 0.10
	// -0.10
}

// ExampleMedianWithStats demonstrates tie reporting: duplicated directions
// make the median non-unique, which is a diagnostic, not an error.
func ExampleMedianWithStats() {
	md, stats, _ := circular.MedianWithStats([]float64{1.0, 1.0, 2.0, 2.0})

	fmt.Printf("median: %.1f\n", md)
	fmt.Printf("tied:   %v (%d candidates)\n", stats.Tied, stats.Candidates)
	// Output:
	// median: 1.5
	// tied:   true (4 candidates)
}

// ExampleVariance demonstrates the variance/resultant-length identity.
func ExampleVariance() {
	alpha := []float64{0.2, 0.4, 0.6, 5.8}

	r, _ := circular.ResultantLength(alpha)
	v, _ := circular.Variance(alpha)

	fmt.Printf("1 - r == v: %v\n", 1-r == v)
	// Output:
	// 1 - r == v: true
}
