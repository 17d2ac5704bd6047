// Copyright 2025 vsevolodiakovlev. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package market

import (
	"testing"

	"github.com/stretchr/testify/require"

	dapmrs "github.com/vsevolodiakovlev/dap-mrs"
)

func int64p(v int64) *int64 { return &v }
func intp(v int) *int       { return &v }

func TestRunExampleData(t *testing.T) {
	cfg := &Config{Seed: int64p(1), AllocationVars: true}
	data, err := ExampleData(cfg, 40)
	require.NoError(t, err)

	res, err := Run(cfg, data)
	require.NoError(t, err)

	p := DefaultSpecName
	for _, col := range []string{
		"initial_index",
		p + "_dap_jobid", p + "_A_obs_u", p + "_B_obs_u",
		p + "_A_dap_u", p + "_B_dap_u",
		p + "_B_dap_workerid",
		p + "_A_obs_u_z", p + "_diff_A", p + "_diff_A_z",
	} {
		require.True(t, res.Data.Has(col), "missing column %s", col)
	}
	require.False(t, res.Data.Has(p+"_bidap_jobid"))

	// equal populations with complete preferences: everyone matches,
	// so the job ids form a permutation
	jobid := res.Data.Col(p + "_dap_jobid")
	seen := make(map[int]bool)
	for _, v := range jobid {
		r := int(v)
		require.GreaterOrEqual(t, r, 0)
		require.Less(t, r, 40)
		require.False(t, seen[r])
		seen[r] = true
	}

	require.Equal(t, 40, res.Summary.MarketSize)
	require.Equal(t, 40, res.Summary.AMatched)
	require.NotEmpty(t, res.Log)
	last := res.Log[len(res.Log)-1]
	require.Zero(t, last.AUnmatchCount)
	require.Zero(t, last.BUnmatchCount)
	for _, r := range res.Log {
		require.Zero(t, r.QResetCount)
	}
}

func TestRunDeterministicOutputs(t *testing.T) {
	cfg1 := &Config{Seed: int64p(5)}
	data1, err := ExampleData(cfg1, 30)
	require.NoError(t, err)
	res1, err := Run(cfg1, data1)
	require.NoError(t, err)

	cfg2 := &Config{Seed: int64p(5)}
	data2, err := ExampleData(cfg2, 30)
	require.NoError(t, err)
	res2, err := Run(cfg2, data2)
	require.NoError(t, err)

	require.Equal(t, res1.Log, res2.Log)
	require.Equal(t, res1.Data.Names(), res2.Data.Names())
	for _, name := range res1.Data.Names() {
		require.Equal(t, res1.Data.Col(name), res2.Data.Col(name), "column %s differs", name)
	}
}

// biasTable builds a 2x2 market where applicant 1 carries the bias
// attribute. Reviewer preferences without bias follow A_char_1.
func biasTable(t *testing.T, a0, a1, weight float64) *Table {
	t.Helper()
	tab := NewTable(2)
	require.NoError(t, tab.Set("A_char_1", []float64{a0, a1}))
	require.NoError(t, tab.Set("A_char_2", []float64{0, 0}))
	require.NoError(t, tab.Set("A_mrs_1_2", []float64{1, 1}))
	require.NoError(t, tab.Set("B_char_1", []float64{10, 5}))
	require.NoError(t, tab.Set("B_char_2", []float64{0, 0}))
	require.NoError(t, tab.Set("B_mrs_1_2", []float64{1, 1}))
	require.NoError(t, tab.Set("A_bias_char", []float64{0, 1}))
	require.NoError(t, tab.Set("B_bias_weight", []float64{weight, weight}))
	return tab
}

// TestRunBiasFields checks the apparent/corrected chain: the two values
// differ by exactly the bias weight for biased applicants and by 0 for
// the others.
func TestRunBiasFields(t *testing.T) {
	cfg := &Config{Bias: true}
	res, err := Run(cfg, biasTable(t, 10, 9.8, -5))
	require.NoError(t, err)

	p := DefaultSpecName
	require.True(t, res.Data.Has(p+"_bidap_jobid"))
	apparent := res.Data.Col(p + "_A_apparent_v")
	corrected := res.Data.Col(p + "_A_bias_corrected_v")

	require.Equal(t, 0.0, apparent[0]-corrected[0])
	require.InDelta(t, -5.0, apparent[1]-corrected[1], 1e-12)

	// margin wider than the penalty: the matching itself is unchanged
	require.Equal(t, res.Data.Col(p+"_dap_jobid"), res.Data.Col(p+"_bidap_jobid"))
	require.NotEmpty(t, res.BiasLog)
	require.Positive(t, res.Summary.BiasRounds)
}

// TestRunBiasFlipsOutcome narrows the margin below the bias penalty so
// the biased pass assigns the top reviewer differently.
func TestRunBiasFlipsOutcome(t *testing.T) {
	cfg := &Config{Bias: true}
	res, err := Run(cfg, biasTable(t, 10, 10.1, -5))
	require.NoError(t, err)

	p := DefaultSpecName
	// unbiased: applicant 1 (10.1) wins reviewer 0
	require.Equal(t, []float64{1, 0}, res.Data.Col(p+"_dap_jobid"))
	// biased: applicant 1 is perceived at 5.1 and loses reviewer 0
	require.Equal(t, []float64{0, 1}, res.Data.Col(p+"_bidap_jobid"))

	apparent := res.Data.Col(p + "_A_apparent_v")
	corrected := res.Data.Col(p + "_A_bias_corrected_v")
	require.InDelta(t, -5.0, apparent[1]-corrected[1], 1e-12)
	require.Equal(t, apparent[0], corrected[0])
}

func TestRunMissingColumn(t *testing.T) {
	tab := NewTable(2)
	require.NoError(t, tab.Set("A_char_1", []float64{1, 2}))

	_, err := Run(&Config{}, tab)
	require.ErrorIs(t, err, dapmrs.ErrInvalidInput)
}

func TestRunBadCharNumber(t *testing.T) {
	_, err := Run(&Config{ACharNumber: intp(7)}, NewTable(0))
	require.ErrorIs(t, err, dapmrs.ErrInvalidInput)
}
