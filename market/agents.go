// Copyright 2025 vsevolodiakovlev. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package market

import (
	"fmt"

	dapmrs "github.com/vsevolodiakovlev/dap-mrs"
	"github.com/vsevolodiakovlev/dap-mrs/mrsscore"
)

// buildAgents resolves the schema against the table and constructs both
// populations. All fail-fast input checks happen here, before the first
// round.
func buildAgents(cfg *Config, t *Table) (applicants, reviewers []dapmrs.Agent, err error) {
	aChars, err := lookup(t, cfg.schema.AChars)
	if err != nil {
		return nil, nil, err
	}
	aMRS, err := lookup(t, cfg.schema.AMRS)
	if err != nil {
		return nil, nil, err
	}
	bChars, err := lookup(t, cfg.schema.BChars)
	if err != nil {
		return nil, nil, err
	}
	bMRS, err := lookup(t, cfg.schema.BMRS)
	if err != nil {
		return nil, nil, err
	}

	var aBias, bBias []float64
	if cfg.Bias {
		if aBias = t.Col(cfg.schema.ABiasChar); aBias == nil {
			return nil, nil, missingColumn(cfg.schema.ABiasChar)
		}
		if bBias = t.Col(cfg.schema.BBiasWeight); bBias == nil {
			return nil, nil, missingColumn(cfg.schema.BBiasWeight)
		}
	}

	n := t.Len()
	applicants = make([]dapmrs.Agent, n)
	reviewers = make([]dapmrs.Agent, n)
	for i := 0; i < n; i++ {
		applicants[i] = dapmrs.Agent{
			Index: i,
			Chars: gather(aChars, i),
			MRS:   gather(aMRS, i),
		}
		reviewers[i] = dapmrs.Agent{
			Index: i,
			Chars: gather(bChars, i),
			MRS:   gather(bMRS, i),
		}
		if cfg.Bias {
			applicants[i].BiasAttr = aBias[i]
			reviewers[i].BiasWeight = bBias[i]
		}
	}

	if err := mrsscore.ValidateAgents(applicants, reviewers, cfg.Bias); err != nil {
		return nil, nil, err
	}
	return applicants, reviewers, nil
}

func lookup(t *Table, names []string) ([][]float64, error) {
	cols := make([][]float64, len(names))
	for i, name := range names {
		if cols[i] = t.Col(name); cols[i] == nil {
			return nil, missingColumn(name)
		}
	}
	return cols, nil
}

func gather(cols [][]float64, row int) []float64 {
	vals := make([]float64, len(cols))
	for j, col := range cols {
		vals[j] = col[row]
	}
	return vals
}

func missingColumn(name string) error {
	return fmt.Errorf("%w: column %q not found in input data", dapmrs.ErrInvalidInput, name)
}
