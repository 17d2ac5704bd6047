// Copyright 2025 vsevolodiakovlev. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package market

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTableSetAndClone(t *testing.T) {
	tab := NewTable(3)
	require.NoError(t, tab.Set("x", []float64{1, 2, 3}))
	require.Error(t, tab.Set("y", []float64{1, 2}))

	c := tab.Clone()
	c.Col("x")[0] = 99
	require.Equal(t, 1.0, tab.Col("x")[0])
	require.Equal(t, tab.Names(), c.Names())
}

func TestCSVRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "data.csv")

	tab := NewTable(2)
	require.NoError(t, tab.Set("A_char_1", []float64{1.5, -2}))
	require.NoError(t, tab.Set("A_char_2", []float64{0, 42}))
	require.NoError(t, tab.WriteCSV(path))

	got, err := ReadCSV(path)
	require.NoError(t, err)
	require.Equal(t, tab.Names(), got.Names())
	require.Equal(t, tab.Col("A_char_1"), got.Col("A_char_1"))
	require.Equal(t, tab.Col("A_char_2"), got.Col("A_char_2"))
}

func TestReadCSVRejectsRagged(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.csv")
	require.NoError(t, os.WriteFile(path, []byte("a,b\n1,2\n3\n"), 0o644))

	_, err := ReadCSV(path)
	require.Error(t, err)
}

func TestReadCSVRejectsNonNumeric(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.csv")
	require.NoError(t, os.WriteFile(path, []byte("a\nhello\n"), 0o644))

	_, err := ReadCSV(path)
	require.Error(t, err)
}

func TestSaveOutputs(t *testing.T) {
	dir := t.TempDir()

	cfg := &Config{Seed: int64p(2), SpecName: "toy", Bias: true}
	data, err := ExampleData(cfg, 10)
	require.NoError(t, err)
	res, err := Run(cfg, data)
	require.NoError(t, err)

	dataPath, logPath, err := SaveOutputs(cfg, res, dir)
	require.NoError(t, err)
	require.Equal(t, filepath.Join(dir, "toy_data_output.csv"), dataPath)
	require.Equal(t, filepath.Join(dir, "toy_log.csv"), logPath)

	reread, err := ReadCSV(dataPath)
	require.NoError(t, err)
	require.Equal(t, res.Data.Names(), reread.Names())

	_, err = os.Stat(filepath.Join(dir, "toy_bidap_log.csv"))
	require.NoError(t, err)
}
