// Copyright 2025 vsevolodiakovlev. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"fmt"

	"github.com/vsevolodiakovlev/dap-mrs/market"
	"github.com/vsevolodiakovlev/dap-mrs/runstore"
)

func doGen(outFile string, n, chars int, bias bool, seed int64) error {
	if chars < 2 || chars > 4 {
		return errors.New("invalid chars")
	}

	cfg := &market.Config{
		ACharNumber: &chars,
		BCharNumber: &chars,
		Bias:        bias,
		Seed:        &seed,
	}

	data, err := market.ExampleData(cfg, n)
	if err != nil {
		return fmt.Errorf("generate example data failed: %w", err)
	}
	if err := data.WriteCSV(outFile); err != nil {
		return fmt.Errorf("write data file failed: %w", err)
	}

	fmt.Printf("%s: %d rows, %d columns\n", outFile, data.Len(), len(data.Names()))
	return nil
}

type runOptions struct {
	dataFile  string
	aChars    int
	bChars    int
	bias      bool
	allocVars bool
	specName  string
	schema    string
	seed      int64
	outDir    string
	dbFile    string
	noSave    bool
	verbose   bool
}

func doRun(opts runOptions) error {
	if opts.aChars < 2 || opts.aChars > 4 || opts.bChars < 2 || opts.bChars > 4 {
		return errors.New("invalid characteristic count")
	}

	cfg := &market.Config{
		ACharNumber:    &opts.aChars,
		BCharNumber:    &opts.bChars,
		Bias:           opts.bias,
		AllocationVars: opts.allocVars,
		SpecName:       opts.specName,
		SaveFiles:      !opts.noSave,
		Seed:           &opts.seed,
		Verbose:        opts.verbose,
	}

	if opts.schema != "" {
		schema, err := market.LoadSchema(opts.schema)
		if err != nil {
			return fmt.Errorf("load schema failed: %w", err)
		}
		cfg.Schema = schema
	}

	var (
		data *market.Table
		err  error
	)
	if opts.dataFile != "" {
		data, err = market.ReadCSV(opts.dataFile)
		if err != nil {
			return fmt.Errorf("load data file failed: %w", err)
		}
	} else {
		data, err = market.ExampleData(cfg, 0)
		if err != nil {
			return fmt.Errorf("generate example data failed: %w", err)
		}
	}

	res, err := market.Run(cfg, data)
	if err != nil {
		return fmt.Errorf("matching failed: %w", err)
	}
	fmt.Printf("%+v\n", res.Summary)

	if cfg.SaveFiles {
		dataPath, logPath, err := market.SaveOutputs(cfg, res, opts.outDir)
		if err != nil {
			return fmt.Errorf("save outputs failed: %w", err)
		}
		fmt.Println("data:", dataPath)
		fmt.Println("log: ", logPath)
	}

	if opts.dbFile != "" {
		store, err := runstore.Open(opts.dbFile)
		if err != nil {
			return fmt.Errorf("open run store failed: %w", err)
		}
		defer store.Close()

		id, err := store.SaveRun(cfg, res)
		if err != nil {
			return fmt.Errorf("persist run failed: %w", err)
		}
		fmt.Println("run: ", id)
	}

	return nil
}

func doLog(dbFile, runID string, biased bool) error {
	store, err := runstore.Open(dbFile)
	if err != nil {
		return fmt.Errorf("open run store failed: %w", err)
	}
	defer store.Close()

	if runID == "" {
		runs, err := store.ListRuns()
		if err != nil {
			return err
		}
		for _, r := range runs {
			fmt.Printf("%s  %s  n=%d rounds=%d bias=%v  %s\n",
				r.ID, r.SpecName, r.MarketSize, r.Rounds, r.Bias,
				r.CreatedAt.Format("2006-01-02 15:04:05"))
		}
		return nil
	}

	log, err := store.LoadLog(runID, biased)
	if err != nil {
		return err
	}
	for _, r := range log {
		fmt.Printf("round %d: A %d/%d matched, B %d/%d matched, breakups %d, rejections %d\n",
			r.Iterat, r.AMatchCount, r.AMatchCount+r.AUnmatchCount,
			r.BMatchCount, r.BMatchCount+r.BUnmatchCount,
			r.BreakupsCount, r.RejectionsCount)
	}
	return nil
}
