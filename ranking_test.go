// Copyright 2025 vsevolodiakovlev. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dapmrs_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	dapmrs "github.com/vsevolodiakovlev/dap-mrs"
	"github.com/vsevolodiakovlev/dap-mrs/mrsscore"
)

func TestBuildPreferencesDescending(t *testing.T) {
	side := []dapmrs.Agent{agent(0, 2, 0, 0)}
	opposite := []dapmrs.Agent{
		agent(0, 0, 1, 1), // 1 + 2*1 = 3
		agent(1, 0, 6, 2), // 6 + 2*2 = 10
		agent(2, 0, 5, 0), // 5
	}

	ranks, scores := dapmrs.BuildPreferences(side, opposite, mrsscore.Linear{})
	require.Equal(t, []int{1, 2, 0}, ranks[0])
	require.Equal(t, []float64{3, 10, 5}, scores[0])
}

// TestBuildPreferencesTieBreak checks that equal-utility counterparts
// keep their original index order.
func TestBuildPreferencesTieBreak(t *testing.T) {
	side := []dapmrs.Agent{agent(0, 1, 0, 0)}
	opposite := []dapmrs.Agent{
		agent(0, 0, 2, 2), // 4
		agent(1, 0, 3, 1), // 4
		agent(2, 0, 1, 3), // 4
		agent(3, 0, 9, 0), // 9
	}

	ranks, _ := dapmrs.BuildPreferences(side, opposite, mrsscore.Linear{})
	require.Equal(t, []int{3, 0, 1, 2}, ranks[0])
}

func TestBuildPreferencesAllAgents(t *testing.T) {
	side := []dapmrs.Agent{
		agent(0, 1, 0, 0),
		agent(1, -1, 0, 0),
	}
	opposite := []dapmrs.Agent{
		agent(0, 0, 1, 5), // mrs 1: 6, mrs -1: -4
		agent(1, 0, 2, 0), // mrs 1: 2, mrs -1: 2
	}

	ranks, _ := dapmrs.BuildPreferences(side, opposite, mrsscore.Linear{})
	require.Equal(t, []int{0, 1}, ranks[0])
	require.Equal(t, []int{1, 0}, ranks[1])
}
