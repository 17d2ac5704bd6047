// Copyright 2025 vsevolodiakovlev. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mrsscore

import (
	"fmt"
	"math"

	dapmrs "github.com/vsevolodiakovlev/dap-mrs"
)

const (
	MinChars = 2
	MaxChars = 4
)

// ValidateAgents performs the fail-fast input checks before any ranking
// is built: equal population sizes, uniform characteristic counts in
// [MinChars, MaxChars], MRS width matching the counterpart side, finite
// values throughout, and a binary bias attribute when bias mode is on.
// A NaN characteristic would silently break the total ordering of the
// rankings, so it is rejected here instead.
func ValidateAgents(applicants, reviewers []dapmrs.Agent, bias bool) error {
	if len(applicants) != len(reviewers) {
		return &dapmrs.InputError{
			Side: "A", Agent: -1, Field: "population",
			Reason: fmt.Sprintf("%d applicants vs %d reviewers", len(applicants), len(reviewers)),
		}
	}
	if len(applicants) == 0 {
		return nil
	}

	aChars := len(applicants[0].Chars)
	bChars := len(reviewers[0].Chars)

	if err := validateSide("A", applicants, aChars, bChars); err != nil {
		return err
	}
	if err := validateSide("B", reviewers, bChars, aChars); err != nil {
		return err
	}

	if bias {
		for i := range applicants {
			if v := applicants[i].BiasAttr; v != 0 && v != 1 {
				return &dapmrs.InputError{
					Side: "A", Agent: i, Field: "bias_attr",
					Reason: fmt.Sprintf("must be 0 or 1, got %v", v),
				}
			}
		}
		for i := range reviewers {
			if !finite(reviewers[i].BiasWeight) {
				return &dapmrs.InputError{
					Side: "B", Agent: i, Field: "bias_weight",
					Reason: "not a finite number",
				}
			}
		}
	}

	return nil
}

func validateSide(side string, agents []dapmrs.Agent, chars, oppChars int) error {
	if chars < MinChars || chars > MaxChars {
		return &dapmrs.InputError{
			Side: side, Agent: -1, Field: "characteristics",
			Reason: fmt.Sprintf("count must be %d-%d, got %d", MinChars, MaxChars, chars),
		}
	}
	for i := range agents {
		if len(agents[i].Chars) != chars {
			return &dapmrs.InputError{
				Side: side, Agent: i, Field: "characteristics",
				Reason: fmt.Sprintf("count %d differs from %d", len(agents[i].Chars), chars),
			}
		}
		for _, v := range agents[i].Chars {
			if !finite(v) {
				return &dapmrs.InputError{
					Side: side, Agent: i, Field: "characteristics",
					Reason: "not a finite number",
				}
			}
		}
		if len(agents[i].MRS) != oppChars-1 {
			return &dapmrs.InputError{
				Side: side, Agent: i, Field: "mrs",
				Reason: fmt.Sprintf("want %d weights for %d counterpart characteristics, got %d",
					oppChars-1, oppChars, len(agents[i].MRS)),
			}
		}
		for _, v := range agents[i].MRS {
			if !finite(v) {
				return &dapmrs.InputError{
					Side: side, Agent: i, Field: "mrs",
					Reason: "not a finite number",
				}
			}
		}
	}
	return nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
