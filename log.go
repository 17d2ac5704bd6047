// Copyright 2025 vsevolodiakovlev. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dapmrs

// RoundRecord aggregates one completed round of the engine. Records are
// append-only: the engine emits one per round and never rewrites them.
type RoundRecord struct {
	Iterat            int     `json:"iterat"`
	AMatchCount       int     `json:"A_match_count"`
	AUnmatchCount     int     `json:"A_unmatch_count"`
	BMatchCount       int     `json:"B_match_count"`
	BUnmatchCount     int     `json:"B_unmatch_count"`
	AMatchUtilityMean float64 `json:"A_match_utility_mean"`
	BMatchUtilityMean float64 `json:"B_match_utility_mean"`
	BreakupsCount     int     `json:"breakups_count"`
	QResetCount       int     `json:"q_reset_count"`
	RejectionsCount   int     `json:"rejections_count"`
	PassMatchedCount  int     `json:"pass_matched_count"`
}

// record snapshots the state after a deciding phase. Utility means are
// taken over the whole population, unmatched agents contributing 0.
func (st *matchState) record(iterat int) RoundRecord {
	n := len(st.aMatch)

	rec := RoundRecord{
		Iterat:           iterat,
		BreakupsCount:    st.breakups,
		QResetCount:      st.resets,
		RejectionsCount:  st.rejections,
		PassMatchedCount: st.passMatched,
	}

	var aSum, bSum float64
	for i := 0; i < n; i++ {
		if st.aMatch[i] != Unmatched {
			rec.AMatchCount++
		}
		if st.bMatch[i] != Unmatched {
			rec.BMatchCount++
		}
		aSum += st.aUtil[i]
		bSum += st.bUtil[i]
	}
	rec.AUnmatchCount = n - rec.AMatchCount
	rec.BUnmatchCount = n - rec.BMatchCount
	if n > 0 {
		rec.AMatchUtilityMean = aSum / float64(n)
		rec.BMatchUtilityMean = bSum / float64(n)
	}

	return rec
}
