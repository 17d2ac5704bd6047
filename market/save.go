// Copyright 2025 vsevolodiakovlev. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package market

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	dapmrs "github.com/vsevolodiakovlev/dap-mrs"
)

var logHeader = []string{
	"iterat",
	"A_match_count", "A_unmatch_count",
	"B_match_count", "B_unmatch_count",
	"A_match_utility_mean", "B_match_utility_mean",
	"breakups_count", "q_reset_count", "rejections_count", "pass_matched_count",
}

// WriteLog saves the round log as CSV, one row per completed round.
func WriteLog(path string, rounds []dapmrs.RoundRecord) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create log file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(logHeader); err != nil {
		return err
	}
	for _, r := range rounds {
		row := []string{
			strconv.Itoa(r.Iterat),
			strconv.Itoa(r.AMatchCount), strconv.Itoa(r.AUnmatchCount),
			strconv.Itoa(r.BMatchCount), strconv.Itoa(r.BUnmatchCount),
			strconv.FormatFloat(r.AMatchUtilityMean, 'g', -1, 64),
			strconv.FormatFloat(r.BMatchUtilityMean, 'g', -1, 64),
			strconv.Itoa(r.BreakupsCount), strconv.Itoa(r.QResetCount),
			strconv.Itoa(r.RejectionsCount), strconv.Itoa(r.PassMatchedCount),
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

// SaveOutputs writes the run's data and log files into dir, named by
// the spec name the way the original tooling expects them.
func SaveOutputs(cfg *Config, res *Result, dir string) (dataPath, logPath string, err error) {
	if err := cfg.init(); err != nil {
		return "", "", err
	}

	dataPath = filepath.Join(dir, cfg.SpecName+"_data_output.csv")
	if err := res.Data.WriteCSV(dataPath); err != nil {
		return "", "", err
	}

	logPath = filepath.Join(dir, cfg.SpecName+"_log.csv")
	if err := WriteLog(logPath, res.Log); err != nil {
		return "", "", err
	}

	if res.BiasLog != nil {
		if err := WriteLog(filepath.Join(dir, cfg.SpecName+"_bidap_log.csv"), res.BiasLog); err != nil {
			return "", "", err
		}
	}
	return dataPath, logPath, nil
}
