// Copyright 2025 vsevolodiakovlev. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package market runs dap-mrs matching on tabular agent data: column
// mapping, input validation, synthetic example data, result
// materialization and the round log.
package market

import (
	"fmt"

	dapmrs "github.com/vsevolodiakovlev/dap-mrs"
)

const (
	DefaultCharNumber = 2
	DefaultSpecName   = "dap_mrs"
	DefaultMarketSize = 200

	// synthetic data constants, matching the published example dataset
	DefaultAMRS       = 5.25
	DefaultBMRS       = 7.75
	DefaultBiasWeight = -25.0
)

// Config selects how a run is prepared and reported. Pointer fields
// fall back to defaults when nil.
type Config struct {
	ACharNumber *int `json:"A_char_number" yaml:"a_char_number"` // 2-4
	BCharNumber *int `json:"B_char_number" yaml:"b_char_number"` // 2-4

	// Bias enables the reviewer-side perception distortion and the
	// shadow biased matching pass.
	Bias bool `json:"bias" yaml:"bias"`
	// AllocationVars adds the extended match-detail columns (reviewer
	// side match id, diffs, z-scores).
	AllocationVars bool `json:"dap_allocation_vars" yaml:"dap_allocation_vars"`
	// SpecName prefixes every output column and file.
	SpecName string `json:"spec_name" yaml:"spec_name"`

	// Graphs and SaveFiles are honored by external reporting (the CLI
	// and plotting tools); the matching itself never reads them.
	Graphs    bool `json:"graphs" yaml:"graphs"`
	SaveFiles bool `json:"save_files" yaml:"save_files"`

	// Seed drives synthetic data generation only; matching is
	// deterministic given fixed inputs.
	Seed *int64 `json:"seed" yaml:"seed"`

	Verbose bool `json:"vv" yaml:"verbose"`

	// Schema overrides the default column names.
	Schema *Schema `json:"schema" yaml:"schema"`

	aChars int
	bChars int
	schema Schema
}

func (c *Config) init() error {
	if c.ACharNumber == nil {
		c.aChars = DefaultCharNumber
	} else {
		c.aChars = *c.ACharNumber
	}
	if c.BCharNumber == nil {
		c.bChars = DefaultCharNumber
	} else {
		c.bChars = *c.BCharNumber
	}
	if c.aChars < 2 || c.aChars > 4 {
		return &dapmrs.InputError{Side: "A", Agent: -1, Field: "A_char_number",
			Reason: fmt.Sprintf("must be 2-4, got %d", c.aChars)}
	}
	if c.bChars < 2 || c.bChars > 4 {
		return &dapmrs.InputError{Side: "B", Agent: -1, Field: "B_char_number",
			Reason: fmt.Sprintf("must be 2-4, got %d", c.bChars)}
	}
	if c.SpecName == "" {
		c.SpecName = DefaultSpecName
	}
	if c.Schema != nil {
		c.schema = *c.Schema
	} else {
		c.schema = Schema{}
	}
	c.schema.fillDefaults(c.aChars, c.bChars)
	return nil
}

// Summary describes one completed run.
type Summary struct {
	MarketSize   int     `json:"market_size"`
	Rounds       int     `json:"rounds"`
	Proposals    int     `json:"proposals"`
	AMatched     int     `json:"A_matched"`
	BMatched     int     `json:"B_matched"`
	AMeanUtility float64 `json:"A_mean_utility"`
	BMeanUtility float64 `json:"B_mean_utility"`
	BiasRounds   int     `json:"bias_rounds"` // 0 unless bias mode
}

// Result is the materialized output of one run: the input table copy
// extended with output columns, plus the round logs.
type Result struct {
	Data    *Table
	Log     []dapmrs.RoundRecord
	BiasLog []dapmrs.RoundRecord // nil unless bias mode
	Summary Summary
}
