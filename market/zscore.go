// Copyright 2025 vsevolodiakovlev. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package market

import "math"

// ZScores standardizes a column using the sample standard deviation.
// Degenerate columns (fewer than two rows or zero variance) map to all
// zeros rather than NaN.
func ZScores(xs []float64) []float64 {
	zs := make([]float64, len(xs))
	if len(xs) < 2 {
		return zs
	}

	var sum float64
	for _, x := range xs {
		sum += x
	}
	mean := sum / float64(len(xs))

	var ss float64
	for _, x := range xs {
		d := x - mean
		ss += d * d
	}
	std := math.Sqrt(ss / float64(len(xs)-1))
	if std == 0 {
		return zs
	}

	for i, x := range xs {
		zs[i] = (x - mean) / std
	}
	return zs
}
