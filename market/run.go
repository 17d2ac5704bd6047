// Copyright 2025 vsevolodiakovlev. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package market

import (
	"fmt"

	dapmrs "github.com/vsevolodiakovlev/dap-mrs"
	"github.com/vsevolodiakovlev/dap-mrs/mrsscore"
)

// Run matches the populations described by the input table and
// materializes the output columns. In bias mode a second, shadow
// matching is run with the reviewer-side perception distortion; the two
// runs never share rankings.
func Run(cfg *Config, in *Table) (*Result, error) {
	if err := cfg.init(); err != nil {
		return nil, err
	}

	applicants, reviewers, err := buildAgents(cfg, in)
	if err != nil {
		return nil, err
	}
	n := in.Len()

	if cfg.Verbose {
		fmt.Printf("data loaded: market size %d, %d+%d characteristics, bias=%v\n",
			n, cfg.aChars, cfg.bChars, cfg.Bias)
	}

	matcher := dapmrs.DeferredMatcher(cfg.Verbose)

	out, err := matcher.Match(applicants, reviewers, mrsscore.Linear{})
	if err != nil {
		return nil, err
	}

	res := &Result{Data: in.Clone(), Log: out.Rounds}
	p := cfg.SpecName

	index := make([]float64, n)
	aObs := make([]float64, n)
	bObs := make([]float64, n)
	unbiased := mrsscore.Linear{}
	for i := 0; i < n; i++ {
		index[i] = float64(i)
		// observed utility: the pre-matching same-row pairing,
		// reported for comparison only
		aObs[i] = unbiased.Score(&applicants[i], &reviewers[i])
		bObs[i] = unbiased.Score(&reviewers[i], &applicants[i])
	}
	res.Data.Set("initial_index", index)
	res.Data.Set(p+"_dap_jobid", toFloats(out.AMatch))
	res.Data.Set(p+"_A_obs_u", aObs)
	res.Data.Set(p+"_B_obs_u", bObs)
	res.Data.Set(p+"_A_dap_u", append([]float64(nil), out.AUtility...))
	res.Data.Set(p+"_B_dap_u", append([]float64(nil), out.BUtility...))

	if cfg.Bias {
		biased, err := matcher.Match(applicants, reviewers, mrsscore.Linear{Bias: true})
		if err != nil {
			return nil, err
		}
		res.BiasLog = biased.Rounds
		res.Summary.BiasRounds = len(biased.Rounds)

		apparent := make([]float64, n)
		corrected := make([]float64, n)
		for i := 0; i < n; i++ {
			r := biased.AMatch[i]
			if r == dapmrs.Unmatched {
				continue
			}
			// the reviewer's perceived value of applicant i, and the
			// same value with the perception term removed
			apparent[i] = biased.BUtility[r]
			corrected[i] = apparent[i] - mrsscore.BiasContribution(&reviewers[r], &applicants[i])
		}
		res.Data.Set(p+"_bidap_jobid", toFloats(biased.AMatch))
		res.Data.Set(p+"_A_apparent_v", apparent)
		res.Data.Set(p+"_A_bias_corrected_v", corrected)
	}

	if cfg.AllocationVars {
		res.Data.Set(p+"_B_dap_workerid", toFloats(out.BMatch))
		res.Data.Set(p+"_A_obs_u_z", ZScores(aObs))
		res.Data.Set(p+"_B_obs_u_z", ZScores(bObs))
		res.Data.Set(p+"_A_dap_u_z", ZScores(out.AUtility))
		res.Data.Set(p+"_B_dap_u_z", ZScores(out.BUtility))

		diffA := make([]float64, n)
		diffB := make([]float64, n)
		for i := 0; i < n; i++ {
			diffA[i] = aObs[i] - out.AUtility[i]
			diffB[i] = bObs[i] - out.BUtility[i]
		}
		res.Data.Set(p+"_diff_A", diffA)
		res.Data.Set(p+"_diff_B", diffB)
		res.Data.Set(p+"_diff_A_z", ZScores(diffA))
		res.Data.Set(p+"_diff_B_z", ZScores(diffB))
	}

	res.Summary.MarketSize = n
	res.Summary.Rounds = len(out.Rounds)
	res.Summary.Proposals = out.Proposals
	if len(out.Rounds) > 0 {
		last := out.Rounds[len(out.Rounds)-1]
		res.Summary.AMatched = last.AMatchCount
		res.Summary.BMatched = last.BMatchCount
		res.Summary.AMeanUtility = last.AMatchUtilityMean
		res.Summary.BMeanUtility = last.BMatchUtilityMean
	}

	if cfg.Verbose {
		fmt.Printf("%+v\n", res.Summary)
	}
	return res, nil
}

func toFloats(ids []int) []float64 {
	fs := make([]float64, len(ids))
	for i, id := range ids {
		fs[i] = float64(id)
	}
	return fs
}
