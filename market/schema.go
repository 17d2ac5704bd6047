// Copyright 2025 vsevolodiakovlev. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package market

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Schema maps logical column roles to the input table's column names.
// Zero-valued fields fall back to the defaults (A_char_1.., A_mrs_1_2..,
// B_char_1.., B_mrs_1_2.., A_bias_char, B_bias_weight). The engine never
// sees raw names: ingestion resolves the schema once into agents.
type Schema struct {
	AChars []string `yaml:"a_chars" json:"a_chars"`
	AMRS   []string `yaml:"a_mrs" json:"a_mrs"`
	BChars []string `yaml:"b_chars" json:"b_chars"`
	BMRS   []string `yaml:"b_mrs" json:"b_mrs"`

	ABiasChar   string `yaml:"a_bias_char" json:"a_bias_char"`
	BBiasWeight string `yaml:"b_bias_weight" json:"b_bias_weight"`
}

// fillDefaults completes missing names. Applicant MRS columns are sized
// to the reviewer characteristic count and vice versa: an agent's MRS
// weights convert the counterpart's secondary characteristics.
func (s *Schema) fillDefaults(aChars, bChars int) {
	if len(s.AChars) == 0 {
		s.AChars = defaultNames("A_char_%d", aChars, 1)
	}
	if len(s.AMRS) == 0 {
		s.AMRS = defaultNames("A_mrs_1_%d", bChars-1, 2)
	}
	if len(s.BChars) == 0 {
		s.BChars = defaultNames("B_char_%d", bChars, 1)
	}
	if len(s.BMRS) == 0 {
		s.BMRS = defaultNames("B_mrs_1_%d", aChars-1, 2)
	}
	if s.ABiasChar == "" {
		s.ABiasChar = "A_bias_char"
	}
	if s.BBiasWeight == "" {
		s.BBiasWeight = "B_bias_weight"
	}
}

func defaultNames(format string, count, from int) []string {
	names := make([]string, count)
	for i := range names {
		names[i] = fmt.Sprintf(format, from+i)
	}
	return names
}

// LoadSchema reads a column-mapping file in YAML form.
func LoadSchema(path string) (*Schema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read schema file: %w", err)
	}
	var s Schema
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse schema file: %w", err)
	}
	return &s, nil
}
