package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// AnswerEventData records one answered quiz question.
type AnswerEventData struct {
	SessionID string
	Topic     string
	Correct   bool
}

// LLMEventData records one LLM request for the audit log.
type LLMEventData struct {
	Provider     string
	Model        string
	Purpose      string
	LatencyMs    int64
	Success      bool
	InputTokens  int
	OutputTokens int
	ErrorMessage string
}

// LLMEvent is one row of the LLM audit log.
type LLMEvent struct {
	ID           int
	Timestamp    time.Time
	Provider     string
	Model        string
	Purpose      string
	LatencyMs    int64
	Success      bool
	InputTokens  int
	OutputTokens int
	ErrorMessage string
}

// EventRepo appends and queries the append-only event tables.
type EventRepo interface {
	AppendAnswer(ctx context.Context, data AnswerEventData) error

	// TopicResults returns the most recent correctness observations for a
	// topic as 0/1 values in answer order (oldest first). limit <= 0 means
	// no limit.
	TopicResults(ctx context.Context, topic string, limit int) ([]int, error)

	AppendLLMRequest(ctx context.Context, data LLMEventData) error

	// RecentLLMEvents returns the newest audit rows first. limit <= 0
	// means no limit.
	RecentLLMEvents(ctx context.Context, limit int) ([]LLMEvent, error)

	AppendMood(ctx context.Context, label string) error

	// LatestMood returns the most recent detected emotion no older than
	// maxAge. ok is false when there is no fresh signal.
	LatestMood(ctx context.Context, maxAge time.Duration) (label string, ok bool, err error)
}

type eventRepo struct {
	db *sql.DB
}

func (r *eventRepo) AppendAnswer(ctx context.Context, data AnswerEventData) error {
	correct := 0
	if data.Correct {
		correct = 1
	}
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO answer_events (session_id, topic, correct, created_at) VALUES (?, ?, ?, ?)`,
		data.SessionID, data.Topic, correct, time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("append answer event: %w", err)
	}
	return nil
}

func (r *eventRepo) TopicResults(ctx context.Context, topic string, limit int) ([]int, error) {
	q := `SELECT correct FROM (
		SELECT id, correct FROM answer_events WHERE topic = ? ORDER BY id DESC %s
	) ORDER BY id ASC`
	var rows *sql.Rows
	var err error
	if limit > 0 {
		rows, err = r.db.QueryContext(ctx, fmt.Sprintf(q, "LIMIT ?"), topic, limit)
	} else {
		rows, err = r.db.QueryContext(ctx, fmt.Sprintf(q, ""), topic)
	}
	if err != nil {
		return nil, fmt.Errorf("query topic results: %w", err)
	}
	defer rows.Close()

	var results []int
	for rows.Next() {
		var c int
		if err := rows.Scan(&c); err != nil {
			return nil, fmt.Errorf("scan topic result: %w", err)
		}
		results = append(results, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate topic results: %w", err)
	}
	return results, nil
}

func (r *eventRepo) AppendLLMRequest(ctx context.Context, data LLMEventData) error {
	success := 0
	if data.Success {
		success = 1
	}
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO llm_events (provider, model, purpose, latency_ms, success, input_tokens, output_tokens, error, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		data.Provider, data.Model, data.Purpose, data.LatencyMs, success,
		data.InputTokens, data.OutputTokens, data.ErrorMessage, time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("append llm event: %w", err)
	}
	return nil
}

func (r *eventRepo) RecentLLMEvents(ctx context.Context, limit int) ([]LLMEvent, error) {
	q := `SELECT id, provider, model, purpose, latency_ms, success, input_tokens, output_tokens, error, created_at
		FROM llm_events ORDER BY id DESC`
	var rows *sql.Rows
	var err error
	if limit > 0 {
		rows, err = r.db.QueryContext(ctx, q+` LIMIT ?`, limit)
	} else {
		rows, err = r.db.QueryContext(ctx, q)
	}
	if err != nil {
		return nil, fmt.Errorf("query llm events: %w", err)
	}
	defer rows.Close()

	var events []LLMEvent
	for rows.Next() {
		var e LLMEvent
		var success int
		if err := rows.Scan(&e.ID, &e.Provider, &e.Model, &e.Purpose, &e.LatencyMs,
			&success, &e.InputTokens, &e.OutputTokens, &e.ErrorMessage, &e.Timestamp); err != nil {
			return nil, fmt.Errorf("scan llm event: %w", err)
		}
		e.Success = success != 0
		events = append(events, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate llm events: %w", err)
	}
	return events, nil
}

func (r *eventRepo) AppendMood(ctx context.Context, label string) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO mood_events (label, created_at) VALUES (?, ?)`,
		label, time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("append mood event: %w", err)
	}
	return nil
}

func (r *eventRepo) LatestMood(ctx context.Context, maxAge time.Duration) (string, bool, error) {
	cutoff := time.Now().UTC().Add(-maxAge)
	row := r.db.QueryRowContext(ctx,
		`SELECT label FROM mood_events WHERE created_at >= ? ORDER BY id DESC LIMIT 1`, cutoff)
	var label string
	if err := row.Scan(&label); err != nil {
		if err == sql.ErrNoRows {
			return "", false, nil
		}
		return "", false, fmt.Errorf("query latest mood: %w", err)
	}
	return label, true, nil
}
