// Copyright 2025 vsevolodiakovlev. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package market

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
)

// Table is an ordered collection of equal-length named float64 columns.
// Row order defines the initial_index used throughout a run.
type Table struct {
	names []string
	cols  map[string][]float64
	n     int
}

func NewTable(n int) *Table {
	return &Table{cols: make(map[string][]float64), n: n}
}

func (t *Table) Len() int { return t.n }

func (t *Table) Names() []string { return t.names }

func (t *Table) Has(name string) bool {
	_, ok := t.cols[name]
	return ok
}

// Col returns the named column, nil when absent.
func (t *Table) Col(name string) []float64 { return t.cols[name] }

// Set adds or replaces a column. The length must match the table.
func (t *Table) Set(name string, col []float64) error {
	if len(col) != t.n {
		return fmt.Errorf("market: column %q has %d rows, table has %d", name, len(col), t.n)
	}
	if _, ok := t.cols[name]; !ok {
		t.names = append(t.names, name)
	}
	t.cols[name] = col
	return nil
}

func (t *Table) Clone() *Table {
	c := NewTable(t.n)
	for _, name := range t.names {
		col := make([]float64, t.n)
		copy(col, t.cols[name])
		c.Set(name, col)
	}
	return c
}

// ReadCSV loads a table from a headed CSV file of numeric columns.
func ReadCSV(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open data file: %w", err)
	}
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("read %s: empty file", path)
	}

	header := rows[0]
	t := NewTable(len(rows) - 1)
	cols := make([][]float64, len(header))
	for j := range cols {
		cols[j] = make([]float64, t.n)
	}

	for i, row := range rows[1:] {
		if len(row) != len(header) {
			return nil, fmt.Errorf("read %s: row %d has %d fields, header has %d", path, i+1, len(row), len(header))
		}
		for j, field := range row {
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, fmt.Errorf("read %s: row %d column %q: %w", path, i+1, header[j], err)
			}
			cols[j][i] = v
		}
	}

	for j, name := range header {
		if err := t.Set(name, cols[j]); err != nil {
			return nil, err
		}
	}
	return t, nil
}

// WriteCSV saves the table with a header row.
func (t *Table) WriteCSV(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create data file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(t.names); err != nil {
		return err
	}
	row := make([]string, len(t.names))
	for i := 0; i < t.n; i++ {
		for j, name := range t.names {
			row[j] = strconv.FormatFloat(t.cols[name][i], 'g', -1, 64)
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return err
	}
	return f.Close()
}
