package history

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"
)

// BeginRun records the start of run id.
func (s *Store) BeginRun(ctx context.Context, id string, startedAt time.Time) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return errors.New("run id required")
	}
	if startedAt.IsZero() {
		startedAt = time.Now()
	}
	if _, err := s.exec(ctx,
		`INSERT INTO runs (id, started_at, outcome) VALUES (?, ?, ?)`,
		id, formatTime(startedAt), OutcomeRunning,
	); err != nil {
		return fmt.Errorf("insert run: %w", err)
	}
	return nil
}

// FinishRun stores the outcome of run id.
func (s *Store) FinishRun(ctx context.Context, id string, result RunResult) error {
	outcome := result.Outcome
	if outcome == "" || outcome == OutcomeRunning {
		return fmt.Errorf("finish run %s: terminal outcome required", id)
	}
	var errMsg string
	if result.Err != nil {
		errMsg = result.Err.Error()
	}
	res, err := s.exec(ctx,
		`UPDATE runs SET finished_at = ?, outcome = ?, attempts = ?, titles_checked = ?, title = ?, error_message = ?
         WHERE id = ?`,
		formatTime(time.Now()), outcome, result.Attempts, result.TitlesChecked,
		nullIfBlank(result.Title), nullIfBlank(errMsg), id,
	)
	if err != nil {
		return fmt.Errorf("update run: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("finish run %s: not found", id)
	}
	return nil
}

// GetRun loads run id, or nil when it does not exist.
func (s *Store) GetRun(ctx context.Context, id string) (*Run, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+runColumns+` FROM runs WHERE id = ?`, id)
	run, err := scanRun(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get run: %w", err)
	}
	return run, nil
}

// RecentRuns lists the newest runs first.
func (s *Store) RecentRuns(ctx context.Context, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+runColumns+` FROM runs ORDER BY started_at DESC, id LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		runs = append(runs, *run)
	}
	return runs, rows.Err()
}

const runColumns = "id, started_at, finished_at, outcome, attempts, titles_checked, title, error_message"

func scanRun(scanner interface{ Scan(dest ...any) error }) (*Run, error) {
	var (
		id          string
		startedRaw  sql.NullString
		finishedRaw sql.NullString
		outcome     string
		attempts    int
		checked     int
		title       sql.NullString
		errMsg      sql.NullString
	)
	if err := scanner.Scan(&id, &startedRaw, &finishedRaw, &outcome, &attempts, &checked, &title, &errMsg); err != nil {
		return nil, err
	}
	return &Run{
		ID:            id,
		StartedAt:     parseTime(startedRaw),
		FinishedAt:    parseTime(finishedRaw),
		Outcome:       Outcome(outcome),
		Attempts:      attempts,
		TitlesChecked: checked,
		Title:         title.String,
		ErrorMessage:  errMsg.String,
	}, nil
}
