// Copyright 2025 vsevolodiakovlev. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dapmrs

// matchState is the mutable state of one run. It has a single writer,
// the engine, for the lifetime of the run.
type matchState struct {
	aMatch []int
	bMatch []int
	aUtil  []float64
	bUtil  []float64

	// cursor is the next ranking index each applicant proposes at.
	// It only ever advances; a reviewer once tried stays rejected.
	cursor    []int
	exhausted []bool // cursor ran off the end of the ranking

	// per-round counters, cleared by startRound
	breakups    int
	rejections  int
	resets      int
	passMatched int
}

func newMatchState(n int) *matchState {
	st := &matchState{
		aMatch:    make([]int, n),
		bMatch:    make([]int, n),
		aUtil:     make([]float64, n),
		bUtil:     make([]float64, n),
		cursor:    make([]int, n),
		exhausted: make([]bool, n),
	}
	for i := 0; i < n; i++ {
		st.aMatch[i] = Unmatched
		st.bMatch[i] = Unmatched
	}
	return st
}

func (st *matchState) startRound() {
	st.breakups = 0
	st.rejections = 0
	st.passMatched = 0
}

// isTerminal reports whether no applicant awaits a proposal: everyone
// is either tentatively matched or has exhausted its ranking.
func (st *matchState) isTerminal() bool {
	for a := range st.aMatch {
		if st.aMatch[a] == Unmatched && !st.exhausted[a] {
			return false
		}
	}
	return true
}

func (st *matchState) recordTentative(a, b int, aUtil, bUtil float64) {
	st.aMatch[a] = b
	st.bMatch[b] = a
	st.aUtil[a] = aUtil
	st.bUtil[b] = bUtil
}

// recordBreakup releases the reviewer's previous partner. The partner's
// cursor already points past this reviewer, so it cannot re-propose.
func (st *matchState) recordBreakup(b, oldA int) {
	st.aMatch[oldA] = Unmatched
	st.aUtil[oldA] = 0
	st.bMatch[b] = Unmatched
	st.bUtil[b] = 0
	st.breakups++
}

// recordRejection counts a turned-down proposal; the applicant's cursor
// moved past the reviewer when the proposal was made.
func (st *matchState) recordRejection(a int) {
	st.rejections++
}
