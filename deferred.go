// Copyright 2025 vsevolodiakovlev. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dapmrs

import (
	"fmt"
	"math"
)

type phase int

const (
	phaseProposing phase = iota
	phaseDeciding
	phaseConverged
)

type deferredMatcher struct {
	verbose bool
}

// DeferredMatcher returns the applicant-proposing deferred acceptance
// matcher. Applicants propose in descending preference order, reviewers
// hold the single best candidate seen so far, and the loop runs to the
// fixed point where no applicant awaits a proposal. The result is a
// stable matching, applicant-optimal among all stable matchings.
func DeferredMatcher(verbose bool) Matcher {
	return deferredMatcher{verbose}
}

func (m deferredMatcher) Match(applicants, reviewers []Agent, scorer Scorer) (*Outcome, error) {
	if len(applicants) != len(reviewers) {
		return nil, &InputError{
			Side: "A", Agent: -1, Field: "population",
			Reason: fmt.Sprintf("%d applicants vs %d reviewers", len(applicants), len(reviewers)),
		}
	}
	n := len(applicants)

	// Preferences are fixed for the run; materialize them up front.
	// Reviewer rankings stay implicit: deciding compares scores directly.
	aRanks, aScores := BuildPreferences(applicants, reviewers, scorer)
	_, bScores := BuildPreferences(reviewers, applicants, scorer)
	if err := checkScores("A", aScores); err != nil {
		return nil, err
	}
	if err := checkScores("B", bScores); err != nil {
		return nil, err
	}

	st := newMatchState(n)
	out := &Outcome{}
	bound := n * n

	proposals := make([][]int, n) // reviewer index -> proposers this round

	state := phaseProposing
	if st.isTerminal() {
		state = phaseConverged
	}
	iterat := 0

	for state != phaseConverged {
		switch state {
		case phaseProposing:
			iterat++
			st.startRound()

			// every pending applicant offers to the best reviewer it
			// has not tried yet
			proposed := 0
			for a := 0; a < n; a++ {
				if st.aMatch[a] != Unmatched {
					st.passMatched++
					continue
				}
				if st.exhausted[a] {
					continue
				}
				if st.cursor[a] >= n {
					// rejected by every reviewer: permanently unmatched
					st.exhausted[a] = true
					continue
				}
				b := aRanks[a][st.cursor[a]]
				st.cursor[a]++
				proposals[b] = append(proposals[b], a)
				proposed++
			}
			out.Proposals += proposed
			if out.Proposals > bound || (proposed == 0 && !st.isTerminal()) {
				// the monotone cursors rule both conditions out, so
				// either is an internal-consistency fault
				return nil, m.fault(iterat, out)
			}
			state = phaseDeciding

		case phaseDeciding:
			// each proposed-to reviewer keeps the single highest
			// utility candidate among the proposers and its current
			// partner; ties go to the lower applicant index
			for b := 0; b < n; b++ {
				cands := proposals[b]
				if len(cands) == 0 {
					continue
				}
				best := st.bMatch[b]
				for _, a := range cands {
					if best == Unmatched || bScores[b][a] > bScores[b][best] ||
						(bScores[b][a] == bScores[b][best] && a < best) {
						best = a
					}
				}
				if old := st.bMatch[b]; old != best {
					if old != Unmatched {
						st.recordBreakup(b, old)
					}
					st.recordTentative(best, b, aScores[best][b], bScores[b][best])
				}
				for _, a := range cands {
					if a != best {
						st.recordRejection(a)
					}
				}
				proposals[b] = proposals[b][:0]
			}

			rec := st.record(iterat)
			out.Rounds = append(out.Rounds, rec)

			if m.verbose && iterat%10 == 0 {
				fmt.Printf("round %d: %d/%d applicants matched\n", iterat, rec.AMatchCount, n)
			}

			if st.isTerminal() {
				state = phaseConverged
			} else {
				state = phaseProposing
			}
		}
	}

	if m.verbose {
		fmt.Printf("converged after %d rounds, %d proposal events\n", iterat, out.Proposals)
	}

	out.AMatch, out.BMatch = st.aMatch, st.bMatch
	out.AUtility, out.BUtility = st.aUtil, st.bUtil
	return out, nil
}

// checkScores rejects NaN utilities: they have no place in a total
// order and would silently corrupt the rankings.
func checkScores(side string, scores [][]float64) error {
	for i, row := range scores {
		for _, v := range row {
			if math.IsNaN(v) {
				return &InputError{Side: side, Agent: i, Field: "utility", Reason: "NaN score"}
			}
		}
	}
	return nil
}

func (m deferredMatcher) fault(round int, out *Outcome) error {
	e := &NonConvergenceError{Round: round, Proposals: out.Proposals}
	if len(out.Rounds) > 0 {
		e.Last = &out.Rounds[len(out.Rounds)-1]
	}
	return e
}
