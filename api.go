// Copyright 2025 vsevolodiakovlev. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package dapmrs provides deferred acceptance matching between two
// equally sized populations of agents, with preferences derived from
// the counterparts' characteristics and per-agent marginal rates of
// substitution.
package dapmrs

// Unmatched is the match sentinel for an agent without a partner.
const Unmatched = -1

type Matcher interface {
	Match(applicants, reviewers []Agent, scorer Scorer) (*Outcome, error)
}

// Agent is one market participant. Index is the row position in the
// input data and the agent's stable identity; characteristics and MRS
// weights are immutable for the whole run.
type Agent struct {
	Index int
	Chars []float64 // 2-4 characteristics
	MRS   []float64 // one weight per secondary characteristic of the counterpart side

	// BiasAttr is a binary applicant attribute read by biased reviewers.
	BiasAttr float64
	// BiasWeight is the reviewer's perception shift per unit of BiasAttr.
	// Zero on applicants, so one Scorer serves both directions.
	BiasWeight float64
}

// Scorer computes the utility self derives from matching with counterpart.
// Implementations must be pure and side-effect free.
type Scorer interface {
	Score(self, counterpart *Agent) float64
}

// Outcome is the terminal state of one matching run. Slices are indexed
// by the agents' Index; utilities are 0 for unmatched agents.
type Outcome struct {
	AMatch []int // reviewer index per applicant, Unmatched if none
	BMatch []int // applicant index per reviewer, Unmatched if none

	AUtility []float64
	BUtility []float64

	Rounds    []RoundRecord
	Proposals int // total proposal events over the run
}
