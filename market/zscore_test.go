// Copyright 2025 vsevolodiakovlev. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package market

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestZScores(t *testing.T) {
	zs := ZScores([]float64{2, 4, 4, 4, 5, 5, 7, 9})
	// mean 5, sample std sqrt(32/7)
	std := math.Sqrt(32.0 / 7.0)
	require.InDelta(t, -3/std, zs[0], 1e-12)
	require.InDelta(t, 4/std, zs[7], 1e-12)

	var sum float64
	for _, z := range zs {
		sum += z
	}
	require.InDelta(t, 0, sum, 1e-12)
}

func TestZScoresDegenerate(t *testing.T) {
	require.Equal(t, []float64{0, 0, 0}, ZScores([]float64{5, 5, 5}))
	require.Equal(t, []float64{0}, ZScores([]float64{3}))
	require.Empty(t, ZScores(nil))
}
