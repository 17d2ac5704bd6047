// Copyright 2025 vsevolodiakovlev. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package mrsscore scores counterparts by their characteristics using
// linear marginal-rate-of-substitution weights.
package mrsscore

import (
	dapmrs "github.com/vsevolodiakovlev/dap-mrs"
)

// Linear implements dapmrs.Scorer. The score is the counterpart's first
// characteristic plus each remaining characteristic weighted by the
// scoring agent's MRS: the agent is indifferent between one unit of the
// first characteristic and MRS[k-1] units of the k-th.
//
// With Bias set, the scoring agent's BiasWeight times the counterpart's
// bias attribute is added before ranking. This models a perception
// distortion, not a payoff change; applicants carry a zero BiasWeight,
// so the distortion only ever acts on the reviewer side.
type Linear struct {
	Bias bool
}

func (s Linear) Score(self, counterpart *dapmrs.Agent) float64 {
	u := counterpart.Chars[0]
	for k, w := range self.MRS {
		u += w * counterpart.Chars[k+1]
	}
	if s.Bias {
		u += self.BiasWeight * counterpart.BiasAttr
	}
	return u
}

// BiasContribution is the perception term included in a biased score of
// applicant as seen by reviewer.
func BiasContribution(reviewer, applicant *dapmrs.Agent) float64 {
	return reviewer.BiasWeight * applicant.BiasAttr
}
