// Copyright 2025 vsevolodiakovlev. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package runstore

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vsevolodiakovlev/dap-mrs/market"
)

func runFixture(t *testing.T, bias bool) (*market.Config, *market.Result) {
	t.Helper()
	seed := int64(4)
	cfg := &market.Config{Seed: &seed, Bias: bias, SpecName: "test"}
	data, err := market.ExampleData(cfg, 12)
	require.NoError(t, err)
	res, err := market.Run(cfg, data)
	require.NoError(t, err)
	return cfg, res
}

func TestSaveAndListRuns(t *testing.T) {
	store, err := Open(filepath.Join(t.TempDir(), "runs.db"))
	require.NoError(t, err)
	defer store.Close()

	cfg, res := runFixture(t, false)
	id, err := store.SaveRun(cfg, res)
	require.NoError(t, err)
	require.NotEmpty(t, id)

	cfgBias, resBias := runFixture(t, true)
	idBias, err := store.SaveRun(cfgBias, resBias)
	require.NoError(t, err)
	require.NotEqual(t, id, idBias)

	runs, err := store.ListRuns()
	require.NoError(t, err)
	require.Len(t, runs, 2)
	for _, r := range runs {
		require.Equal(t, "test", r.SpecName)
		require.Equal(t, 12, r.MarketSize)
		require.False(t, r.CreatedAt.IsZero())
	}
}

func TestLoadLogRoundTrip(t *testing.T) {
	store, err := Open(filepath.Join(t.TempDir(), "runs.db"))
	require.NoError(t, err)
	defer store.Close()

	cfg, res := runFixture(t, true)
	id, err := store.SaveRun(cfg, res)
	require.NoError(t, err)

	log, err := store.LoadLog(id, false)
	require.NoError(t, err)
	require.Equal(t, res.Log, log)

	biasLog, err := store.LoadLog(id, true)
	require.NoError(t, err)
	require.Equal(t, res.BiasLog, biasLog)
}

func TestLoadLogUnknownRun(t *testing.T) {
	store, err := Open(filepath.Join(t.TempDir(), "runs.db"))
	require.NoError(t, err)
	defer store.Close()

	log, err := store.LoadLog("no-such-run", false)
	require.NoError(t, err)
	require.Empty(t, log)
}
