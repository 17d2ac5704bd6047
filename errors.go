// Copyright 2025 vsevolodiakovlev. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dapmrs

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput indicates the input data cannot drive a run:
	// mismatched population sizes, malformed characteristics or MRS
	// weights, or a non-binary bias attribute in bias mode.
	ErrInvalidInput = errors.New("dapmrs: invalid input data")
	// ErrNonConvergence indicates the engine exceeded its proposal bound
	// without reaching the terminal state.
	ErrNonConvergence = errors.New("dapmrs: matching did not converge")
)

// InputError reports which agent and field failed validation.
type InputError struct {
	Side   string // "A" or "B"
	Agent  int    // agent index, -1 for population-level faults
	Field  string
	Reason string
}

func (e *InputError) Error() string {
	if e.Agent < 0 {
		return fmt.Sprintf("%v: %s %s: %s", ErrInvalidInput, e.Side, e.Field, e.Reason)
	}
	return fmt.Sprintf("%v: %s[%d] %s: %s", ErrInvalidInput, e.Side, e.Agent, e.Field, e.Reason)
}

func (e *InputError) Unwrap() error { return ErrInvalidInput }

// NonConvergenceError carries the last completed round for diagnosis.
type NonConvergenceError struct {
	Round     int
	Proposals int
	Last      *RoundRecord // nil when no round completed
}

func (e *NonConvergenceError) Error() string {
	return fmt.Sprintf("%v: round %d, %d proposal events", ErrNonConvergence, e.Round, e.Proposals)
}

func (e *NonConvergenceError) Unwrap() error { return ErrNonConvergence }
