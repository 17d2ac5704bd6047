// Copyright 2025 vsevolodiakovlev. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package runstore persists completed matching runs in SQLite so that
// results and round logs can be compared across runs.
package runstore

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	dapmrs "github.com/vsevolodiakovlev/dap-mrs"
	"github.com/vsevolodiakovlev/dap-mrs/market"
)

const schema = `
CREATE TABLE IF NOT EXISTS runs (
	run_id       TEXT PRIMARY KEY,
	spec_name    TEXT NOT NULL,
	market_size  INTEGER NOT NULL,
	rounds       INTEGER NOT NULL,
	bias         INTEGER NOT NULL,
	config_json  TEXT NOT NULL,
	created_at   TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS results (
	run_id           TEXT NOT NULL,
	initial_index    INTEGER NOT NULL,
	dap_jobid        INTEGER NOT NULL,
	a_obs_u          REAL NOT NULL,
	b_obs_u          REAL NOT NULL,
	a_dap_u          REAL NOT NULL,
	b_dap_u          REAL NOT NULL,
	bidap_jobid      INTEGER,
	a_apparent_v     REAL,
	a_bias_corrected_v REAL,
	PRIMARY KEY (run_id, initial_index),
	FOREIGN KEY (run_id) REFERENCES runs(run_id)
);

CREATE TABLE IF NOT EXISTS rounds (
	run_id               TEXT NOT NULL,
	biased               INTEGER NOT NULL,
	iterat               INTEGER NOT NULL,
	a_match_count        INTEGER NOT NULL,
	a_unmatch_count      INTEGER NOT NULL,
	b_match_count        INTEGER NOT NULL,
	b_unmatch_count      INTEGER NOT NULL,
	a_match_utility_mean REAL NOT NULL,
	b_match_utility_mean REAL NOT NULL,
	breakups_count       INTEGER NOT NULL,
	q_reset_count        INTEGER NOT NULL,
	rejections_count     INTEGER NOT NULL,
	pass_matched_count   INTEGER NOT NULL,
	PRIMARY KEY (run_id, biased, iterat),
	FOREIGN KEY (run_id) REFERENCES runs(run_id)
);
`

// Store keeps matching runs in a SQLite database.
type Store struct {
	db *sql.DB
}

// Open opens the database and runs migrations.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		return nil, fmt.Errorf("pragma: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// RunMeta describes one stored run.
type RunMeta struct {
	ID         string
	SpecName   string
	MarketSize int
	Rounds     int
	Bias       bool
	CreatedAt  time.Time
}

// SaveRun stores the run's config, per-agent results and round logs,
// returning the generated run id.
func (s *Store) SaveRun(cfg *market.Config, res *market.Result) (string, error) {
	id := uuid.New().String()
	now := time.Now().UTC()

	cfgJSON, err := json.Marshal(cfg)
	if err != nil {
		return "", fmt.Errorf("marshal config: %w", err)
	}

	tx, err := s.db.Begin()
	if err != nil {
		return "", fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.Exec(
		`INSERT INTO runs (run_id, spec_name, market_size, rounds, bias, config_json, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		id, cfg.SpecName, res.Summary.MarketSize, res.Summary.Rounds,
		boolInt(cfg.Bias), string(cfgJSON), now.Format(time.RFC3339Nano),
	)
	if err != nil {
		return "", fmt.Errorf("insert run: %w", err)
	}

	if err := s.insertResults(tx, id, cfg, res); err != nil {
		return "", err
	}
	if err := s.insertRounds(tx, id, 0, res.Log); err != nil {
		return "", err
	}
	if res.BiasLog != nil {
		if err := s.insertRounds(tx, id, 1, res.BiasLog); err != nil {
			return "", err
		}
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("commit: %w", err)
	}
	return id, nil
}

func (s *Store) insertResults(tx *sql.Tx, id string, cfg *market.Config, res *market.Result) error {
	p := cfg.SpecName
	data := res.Data

	jobid := data.Col(p + "_dap_jobid")
	aObs := data.Col(p + "_A_obs_u")
	bObs := data.Col(p + "_B_obs_u")
	aDap := data.Col(p + "_A_dap_u")
	bDap := data.Col(p + "_B_dap_u")
	if jobid == nil || aObs == nil || bObs == nil || aDap == nil || bDap == nil {
		return fmt.Errorf("result table is missing %s output columns", p)
	}

	bidap := data.Col(p + "_bidap_jobid")
	apparent := data.Col(p + "_A_apparent_v")
	corrected := data.Col(p + "_A_bias_corrected_v")

	stmt, err := tx.Prepare(
		`INSERT INTO results (run_id, initial_index, dap_jobid,
		   a_obs_u, b_obs_u, a_dap_u, b_dap_u,
		   bidap_jobid, a_apparent_v, a_bias_corrected_v)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare results: %w", err)
	}
	defer stmt.Close()

	for i := 0; i < data.Len(); i++ {
		var bj, av, cv interface{}
		if bidap != nil {
			bj, av, cv = int(bidap[i]), apparent[i], corrected[i]
		}
		if _, err := stmt.Exec(id, i, int(jobid[i]),
			aObs[i], bObs[i], aDap[i], bDap[i], bj, av, cv); err != nil {
			return fmt.Errorf("insert result %d: %w", i, err)
		}
	}
	return nil
}

func (s *Store) insertRounds(tx *sql.Tx, id string, biased int, rounds []dapmrs.RoundRecord) error {
	stmt, err := tx.Prepare(
		`INSERT INTO rounds (run_id, biased, iterat,
		   a_match_count, a_unmatch_count, b_match_count, b_unmatch_count,
		   a_match_utility_mean, b_match_utility_mean,
		   breakups_count, q_reset_count, rejections_count, pass_matched_count)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare rounds: %w", err)
	}
	defer stmt.Close()

	for _, r := range rounds {
		if _, err := stmt.Exec(id, biased, r.Iterat,
			r.AMatchCount, r.AUnmatchCount, r.BMatchCount, r.BUnmatchCount,
			r.AMatchUtilityMean, r.BMatchUtilityMean,
			r.BreakupsCount, r.QResetCount, r.RejectionsCount, r.PassMatchedCount); err != nil {
			return fmt.Errorf("insert round %d: %w", r.Iterat, err)
		}
	}
	return nil
}

// ListRuns returns stored runs, newest first.
func (s *Store) ListRuns() ([]RunMeta, error) {
	rows, err := s.db.Query(
		`SELECT run_id, spec_name, market_size, rounds, bias, created_at
		 FROM runs ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}
	defer rows.Close()

	var runs []RunMeta
	for rows.Next() {
		var m RunMeta
		var bias int
		var created string
		if err := rows.Scan(&m.ID, &m.SpecName, &m.MarketSize, &m.Rounds, &bias, &created); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		m.Bias = bias != 0
		if m.CreatedAt, err = time.Parse(time.RFC3339Nano, created); err != nil {
			return nil, fmt.Errorf("parse created_at: %w", err)
		}
		runs = append(runs, m)
	}
	return runs, rows.Err()
}

// LoadLog returns one run's round log, unbiased pass only unless biased
// is set.
func (s *Store) LoadLog(runID string, biased bool) ([]dapmrs.RoundRecord, error) {
	rows, err := s.db.Query(
		`SELECT iterat, a_match_count, a_unmatch_count, b_match_count, b_unmatch_count,
		   a_match_utility_mean, b_match_utility_mean,
		   breakups_count, q_reset_count, rejections_count, pass_matched_count
		 FROM rounds WHERE run_id = ? AND biased = ? ORDER BY iterat`,
		runID, boolInt(biased))
	if err != nil {
		return nil, fmt.Errorf("load log: %w", err)
	}
	defer rows.Close()

	var log []dapmrs.RoundRecord
	for rows.Next() {
		var r dapmrs.RoundRecord
		if err := rows.Scan(&r.Iterat,
			&r.AMatchCount, &r.AUnmatchCount, &r.BMatchCount, &r.BUnmatchCount,
			&r.AMatchUtilityMean, &r.BMatchUtilityMean,
			&r.BreakupsCount, &r.QResetCount, &r.RejectionsCount, &r.PassMatchedCount); err != nil {
			return nil, fmt.Errorf("scan round: %w", err)
		}
		log = append(log, r)
	}
	return log, rows.Err()
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
