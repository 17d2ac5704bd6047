// Copyright 2025 vsevolodiakovlev. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package market

import (
	"math/rand"
)

// ExampleData generates the synthetic example dataset: first
// characteristics drawn from N(1, 100), secondary ones from N(1, 5),
// constant MRS weights (5.25 applicant side, 7.75 reviewer side) and,
// in bias mode, a fair binary bias attribute with a -25 bias weight.
// The seed is the only randomness boundary of the whole system.
func ExampleData(cfg *Config, n int) (*Table, error) {
	if err := cfg.init(); err != nil {
		return nil, err
	}
	if n <= 0 {
		n = DefaultMarketSize
	}

	var seed int64
	if cfg.Seed != nil {
		seed = *cfg.Seed
	}
	rng := rand.New(rand.NewSource(seed))

	t := NewTable(n)

	addChars(t, rng, cfg.schema.AChars)
	addConst(t, cfg.schema.AMRS, DefaultAMRS, n)
	addChars(t, rng, cfg.schema.BChars)
	addConst(t, cfg.schema.BMRS, DefaultBMRS, n)

	if cfg.Bias {
		attr := make([]float64, n)
		for i := range attr {
			attr[i] = float64(rng.Intn(2))
		}
		t.Set(cfg.schema.ABiasChar, attr)
		addConst(t, []string{cfg.schema.BBiasWeight}, DefaultBiasWeight, n)
	}

	return t, nil
}

func addChars(t *Table, rng *rand.Rand, names []string) {
	for k, name := range names {
		mean, std := 1.0, 5.0
		if k == 0 {
			std = 100.0
		}
		col := make([]float64, t.Len())
		for i := range col {
			col[i] = mean + std*rng.NormFloat64()
		}
		t.Set(name, col)
	}
}

func addConst(t *Table, names []string, v float64, n int) {
	for _, name := range names {
		col := make([]float64, n)
		for i := range col {
			col[i] = v
		}
		t.Set(name, col)
	}
}
