// Package circstat is your in-memory toolkit for statistics on circular
// (angular, phase, directional) data — from descriptive primitives to a
// modular kernel density estimator.
//
// 🚀 What is circstat?
//
//	A focused, deterministic library for data that lives on a circle:
//		• Descriptive primitives: circular mean, resultant length, variance,
//		  standard deviation, median (with tie diagnostics)
//		• Angular differences: elementwise and pairwise, wraparound-safe
//		• Inference helpers: von Mises concentration, Rayleigh uniformity,
//		  bootstrap confidence intervals for the mean
//		• Density estimation: a Gaussian KDE whose bandwidth and distance
//		  computation switch between linear and circular definitions
//
// ✨ Why choose circstat?
//
//   - Wraparound-correct – every formula respects the 0/2π seam
//   - Rock-solid guarantees – sentinel errors, no panics on user input,
//     models immutable after construction
//   - Pure numeric API – no I/O, no globals, safe for concurrent reads
//   - Extensible – pluggable bandwidth strategies for the KDE
//
// Under the hood, everything is organized under two subpackages:
//
//	circular/ — mean, resultant length, variance, std, cdiff, median,
//	            axis reduction, concentration, uniformity, bootstrap CI
//	kde/      — modular Gaussian kernel density estimation over d×n data
//
// Quick ASCII example:
//
//	      0/2π
//	    ·  │  ·            samples at 0.05 and 2π−0.05 are 0.1 rad
//	  ·    │    ·          apart — not 6.18 — and circstat treats
//	    ·──┼──·            them that way everywhere.
//
// Dive into README.md for full examples and the per-package doc.go files
// for algorithmic detail.
//
//	go get github.com/katalvlaran/circstat
package circstat
