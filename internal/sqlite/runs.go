// Run history access.
package sqlite

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/mesh-intelligence/medallion/pkg/types"
)

// runTimeLayout is RFC 3339 with fixed-width nanoseconds. RFC3339Nano drops
// trailing fractional zeros, which breaks the lexicographic ordering LastRun
// relies on.
const runTimeLayout = "2006-01-02T15:04:05.000000000Z07:00"

// RecordRun appends a run report to run history. Counts are stored as a
// JSON object keyed by table name.
func (s *Store) RecordRun(report types.RunReport) error {
	db, err := s.handle()
	if err != nil {
		return err
	}

	counts, err := json.Marshal(report.Counts)
	if err != nil {
		return fmt.Errorf("encoding counts: %w", err)
	}

	_, err = db.Exec(`INSERT INTO `+types.RunHistoryTable+`
        (run_id, started_at, finished_at, status, counts, failed_entity, failure_reason)
        VALUES (?, ?, ?, ?, ?, ?, ?)`,
		report.RunID,
		report.StartedAt.UTC().Format(runTimeLayout),
		report.FinishedAt.UTC().Format(runTimeLayout),
		report.Status,
		string(counts),
		nullIfEmpty(report.FailedEntity),
		nullIfEmpty(report.FailureReason),
	)
	if err != nil {
		return fmt.Errorf("recording run %s: %w", report.RunID, err)
	}
	return nil
}

// LastRun returns the most recently started run, or nil when no run has
// been recorded.
func (s *Store) LastRun() (*types.RunReport, error) {
	db, err := s.handle()
	if err != nil {
		return nil, err
	}

	row := db.QueryRow(`SELECT run_id, started_at, finished_at, status, counts, failed_entity, failure_reason
        FROM ` + types.RunHistoryTable + ` ORDER BY started_at DESC LIMIT 1`)

	var (
		report         types.RunReport
		started, done  string
		countsJSON     string
		entity, reason sql.NullString
	)
	err = row.Scan(&report.RunID, &started, &done, &report.Status, &countsJSON, &entity, &reason)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading last run: %w", err)
	}

	if report.StartedAt, err = time.Parse(time.RFC3339Nano, started); err != nil {
		return nil, fmt.Errorf("parsing started_at: %w", err)
	}
	if report.FinishedAt, err = time.Parse(time.RFC3339Nano, done); err != nil {
		return nil, fmt.Errorf("parsing finished_at: %w", err)
	}
	if err := json.Unmarshal([]byte(countsJSON), &report.Counts); err != nil {
		return nil, fmt.Errorf("decoding counts: %w", err)
	}
	report.FailedEntity = entity.String
	report.FailureReason = reason.String
	return &report, nil
}

func nullIfEmpty(s string) any {
	if s == "" {
		return nil
	}
	return s
}
