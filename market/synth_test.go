// Copyright 2025 vsevolodiakovlev. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package market

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestExampleDataShape(t *testing.T) {
	cfg := &Config{ACharNumber: intp(3), BCharNumber: intp(2), Seed: int64p(0)}
	data, err := ExampleData(cfg, 50)
	require.NoError(t, err)

	require.Equal(t, 50, data.Len())
	require.True(t, data.Has("A_char_1"))
	require.True(t, data.Has("A_char_3"))
	require.False(t, data.Has("A_char_4"))
	require.True(t, data.Has("A_mrs_1_2")) // one weight per B secondary characteristic
	require.False(t, data.Has("A_mrs_1_3"))
	require.True(t, data.Has("B_mrs_1_2"))
	require.True(t, data.Has("B_mrs_1_3"))
	require.False(t, data.Has("A_bias_char"))

	for _, v := range data.Col("A_mrs_1_2") {
		require.Equal(t, DefaultAMRS, v)
	}
	for _, v := range data.Col("B_mrs_1_2") {
		require.Equal(t, DefaultBMRS, v)
	}
}

func TestExampleDataSeeded(t *testing.T) {
	cfg1 := &Config{Seed: int64p(9), Bias: true}
	d1, err := ExampleData(cfg1, 25)
	require.NoError(t, err)

	cfg2 := &Config{Seed: int64p(9), Bias: true}
	d2, err := ExampleData(cfg2, 25)
	require.NoError(t, err)

	require.Equal(t, d1.Names(), d2.Names())
	for _, name := range d1.Names() {
		require.Equal(t, d1.Col(name), d2.Col(name))
	}

	for _, v := range d1.Col("A_bias_char") {
		require.Contains(t, []float64{0, 1}, v)
	}
	for _, v := range d1.Col("B_bias_weight") {
		require.Equal(t, DefaultBiasWeight, v)
	}

	cfg3 := &Config{Seed: int64p(10), Bias: true}
	d3, err := ExampleData(cfg3, 25)
	require.NoError(t, err)
	require.NotEqual(t, d1.Col("A_char_1"), d3.Col("A_char_1"))
}

func TestExampleDataDefaultSize(t *testing.T) {
	data, err := ExampleData(&Config{Seed: int64p(0)}, 0)
	require.NoError(t, err)
	require.Equal(t, DefaultMarketSize, data.Len())
}
