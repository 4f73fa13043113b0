package store

import (
	"context"
	"fmt"
	"time"

	"github.com/abhisek/paceline/internal/llm"
)

// AdvisoryEvent is one persisted advisory call.
type AdvisoryEvent struct {
	ID           int64
	CreatedAt    time.Time
	Purpose      string
	Model        string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
}

// RecordCall appends one advisory call record. It satisfies llm.Recorder.
func (s *Store) RecordCall(ctx context.Context, rec llm.CallRecord) error {
	_, err := s.db.ExecContext(ctx, `
INSERT INTO advisory_events (created_at, purpose, model, input_tokens, output_tokens, latency_ms, success, error_message)
VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		time.Now().Unix(),
		rec.Purpose,
		rec.Model,
		rec.InputTokens,
		rec.OutputTokens,
		rec.LatencyMs,
		rec.Success,
		rec.ErrorMessage,
	)
	if err != nil {
		return fmt.Errorf("insert advisory event: %w", err)
	}
	return nil
}

// RecentCalls returns the most recent advisory events, newest first.
func (s *Store) RecentCalls(ctx context.Context, limit int) ([]AdvisoryEvent, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.QueryContext(ctx, `
SELECT id, created_at, purpose, model, input_tokens, output_tokens, latency_ms, success, error_message
FROM advisory_events
ORDER BY id DESC
LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query advisory events: %w", err)
	}
	defer rows.Close()

	var out []AdvisoryEvent
	for rows.Next() {
		var ev AdvisoryEvent
		var createdAt int64
		if err := rows.Scan(&ev.ID, &createdAt, &ev.Purpose, &ev.Model,
			&ev.InputTokens, &ev.OutputTokens, &ev.LatencyMs, &ev.Success, &ev.ErrorMessage); err != nil {
			return nil, fmt.Errorf("scan advisory event: %w", err)
		}
		ev.CreatedAt = time.Unix(createdAt, 0)
		out = append(out, ev)
	}
	return out, rows.Err()
}

// CallStats summarizes the advisory event log.
type CallStats struct {
	TotalCalls   int
	SuccessCalls int
	InputTokens  int64
	OutputTokens int64
}

// Stats aggregates all recorded advisory calls.
func (s *Store) Stats(ctx context.Context) (CallStats, error) {
	var st CallStats
	err := s.db.QueryRowContext(ctx, `
SELECT COUNT(*),
       COALESCE(SUM(success), 0),
       COALESCE(SUM(input_tokens), 0),
       COALESCE(SUM(output_tokens), 0)
FROM advisory_events`).Scan(&st.TotalCalls, &st.SuccessCalls, &st.InputTokens, &st.OutputTokens)
	if err != nil {
		return CallStats{}, fmt.Errorf("aggregate advisory events: %w", err)
	}
	return st, nil
}
