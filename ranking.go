// Copyright 2025 vsevolodiakovlev. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dapmrs

import (
	"sort"
	"sync"
)

// BuildPreferences materializes, for every agent on side, the utility of
// each counterpart and a ranking of counterpart indices by descending
// utility. Ties prefer the lower counterpart index. The pass is
// read-only and fans out across agents; it completes before the
// sequential propose/decide loop starts.
func BuildPreferences(side, opposite []Agent, scorer Scorer) (ranks [][]int, scores [][]float64) {
	ranks = make([][]int, len(side))
	scores = make([][]float64, len(side))

	var wg sync.WaitGroup
	for i := range side {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()

			s := make([]float64, len(opposite))
			for j := range opposite {
				s[j] = scorer.Score(&side[i], &opposite[j])
			}

			r := make([]int, len(opposite))
			for j := range r {
				r[j] = j
			}
			// stable sort on an ascending base keeps equal scores in
			// original index order
			sort.SliceStable(r, func(a, b int) bool {
				return s[r[a]] > s[r[b]]
			})

			ranks[i], scores[i] = r, s
		}(i)
	}
	wg.Wait()

	return ranks, scores
}
