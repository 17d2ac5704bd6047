// Copyright 2025 vsevolodiakovlev. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:  "dap-mrs",
		Usage: "Deferred acceptance matching with MRS preferences",
		Commands: []*cli.Command{
			genCmd,
			runCmd,
			logCmd,
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Println("Error: ", err)
		os.Exit(1)
	}
}

var genCmd = &cli.Command{
	Name:    "gen",
	Usage:   "Generate a synthetic example dataset",
	Aliases: []string{"g"},
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:     "out",
			Required: true,
			Usage:    "specify the output data.csv",
		},
		&cli.IntFlag{
			Name:  "n",
			Value: 0,
			Usage: "specify the market size (default 200)",
		},
		&cli.IntFlag{
			Name:  "chars",
			Value: 2,
			Usage: "specify the characteristic count per side (2-4)",
		},
		&cli.BoolFlag{
			Name:  "bias",
			Usage: "include the bias attribute and bias weight columns",
		},
		&cli.Int64Flag{
			Name:  "seed",
			Value: 0,
			Usage: "specify the generation seed",
		},
	},
	Action: func(ctx *cli.Context) error {
		return doGen(ctx.String("out"), ctx.Int("n"), ctx.Int("chars"),
			ctx.Bool("bias"), ctx.Int64("seed"))
	},
}

var runCmd = &cli.Command{
	Name:    "run",
	Usage:   "Run the matching on a dataset",
	Aliases: []string{"r"},
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:  "data",
			Usage: "specify the input data.csv (omit for example data)",
		},
		&cli.IntFlag{
			Name:  "a-chars",
			Value: 2,
			Usage: "specify the applicant characteristic count (2-4)",
		},
		&cli.IntFlag{
			Name:  "b-chars",
			Value: 2,
			Usage: "specify the reviewer characteristic count (2-4)",
		},
		&cli.BoolFlag{
			Name:  "bias",
			Usage: "enable reviewer-side perception bias",
		},
		&cli.BoolFlag{
			Name:  "alloc-vars",
			Usage: "include extended match-detail columns",
		},
		&cli.StringFlag{
			Name:  "spec-name",
			Usage: "specify the output column/file prefix",
		},
		&cli.StringFlag{
			Name:  "schema",
			Usage: "specify a column-mapping schema.yaml",
		},
		&cli.Int64Flag{
			Name:  "seed",
			Value: 0,
			Usage: "specify the example data seed",
		},
		&cli.StringFlag{
			Name:  "out-dir",
			Value: ".",
			Usage: "specify the output directory",
		},
		&cli.StringFlag{
			Name:  "db",
			Usage: "also persist the run into a SQLite database",
		},
		&cli.BoolFlag{
			Name:  "no-save",
			Usage: "skip writing the output CSV files",
		},
		&cli.BoolFlag{
			Name:    "verbose",
			Aliases: []string{"vv"},
			Usage:   "print matching progress",
		},
	},
	Action: func(ctx *cli.Context) error {
		return doRun(runOptions{
			dataFile:  ctx.String("data"),
			aChars:    ctx.Int("a-chars"),
			bChars:    ctx.Int("b-chars"),
			bias:      ctx.Bool("bias"),
			allocVars: ctx.Bool("alloc-vars"),
			specName:  ctx.String("spec-name"),
			schema:    ctx.String("schema"),
			seed:      ctx.Int64("seed"),
			outDir:    ctx.String("out-dir"),
			dbFile:    ctx.String("db"),
			noSave:    ctx.Bool("no-save"),
			verbose:   ctx.Bool("verbose"),
		})
	},
}

var logCmd = &cli.Command{
	Name:  "log",
	Usage: "Inspect runs stored in a SQLite database",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:     "db",
			Required: true,
			Usage:    "specify the runs database",
		},
		&cli.StringFlag{
			Name:  "run",
			Usage: "dump the round log of one run id",
		},
		&cli.BoolFlag{
			Name:  "biased",
			Usage: "dump the biased pass of the run",
		},
	},
	Action: func(ctx *cli.Context) error {
		return doLog(ctx.String("db"), ctx.String("run"), ctx.Bool("biased"))
	},
}
