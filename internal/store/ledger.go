package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
)

// BoardEntry is one leaderboard row.
type BoardEntry struct {
	Name string
	XP   int
}

// LedgerState is the full persisted progress record: experience points,
// streak-day count, and the leaderboard. Read at startup, rewritten in
// full on every mutation.
type LedgerState struct {
	XP         int
	StreakDays int
	Board      []BoardEntry
}

// LedgerRepo persists the progress ledger.
type LedgerRepo interface {
	Load(ctx context.Context) (*LedgerState, error)
	Save(ctx context.Context, state *LedgerState) error
}

type ledgerRepo struct {
	db *sql.DB
}

func (r *ledgerRepo) Load(ctx context.Context) (*LedgerState, error) {
	state := &LedgerState{}

	// A missing totals row means zero progress, not an empty board.
	row := r.db.QueryRowContext(ctx, `SELECT xp, streak_days FROM ledger WHERE id = 1`)
	if err := row.Scan(&state.XP, &state.StreakDays); err != nil && err != sql.ErrNoRows {
		return nil, fmt.Errorf("load ledger: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, `SELECT name, xp FROM leaderboard ORDER BY xp DESC, name_key ASC`)
	if err != nil {
		return nil, fmt.Errorf("load leaderboard: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var e BoardEntry
		if err := rows.Scan(&e.Name, &e.XP); err != nil {
			return nil, fmt.Errorf("scan leaderboard row: %w", err)
		}
		state.Board = append(state.Board, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate leaderboard: %w", err)
	}
	return state, nil
}

// Save rewrites the whole ledger in one transaction. Leaderboard names
// are keyed case-insensitively, matching the upsert contract.
func (r *ledgerRepo) Save(ctx context.Context, state *LedgerState) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin ledger save: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx,
		`UPDATE ledger SET xp = ?, streak_days = ? WHERE id = 1`,
		state.XP, state.StreakDays,
	); err != nil {
		return fmt.Errorf("save ledger: %w", err)
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM leaderboard`); err != nil {
		return fmt.Errorf("clear leaderboard: %w", err)
	}
	for _, e := range state.Board {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO leaderboard (name_key, name, xp) VALUES (?, ?, ?)`,
			strings.ToLower(e.Name), e.Name, e.XP,
		); err != nil {
			return fmt.Errorf("save leaderboard entry %q: %w", e.Name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit ledger save: %w", err)
	}
	return nil
}
