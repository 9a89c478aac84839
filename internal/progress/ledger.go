// Package progress tracks experience points, streak days, and the
// leaderboard across sessions.
package progress

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/abhisek/lingua/internal/store"
)

const (
	// PointsPerCorrect is the XP awarded for each correct answer.
	PointsPerCorrect = 10

	// StreakThreshold is the round accuracy needed to extend the streak.
	StreakThreshold = 0.6
)

// Ledger holds the current progress totals. Every mutation is written
// through to the repo before it is considered applied; a failed write
// leaves the in-memory state unchanged and returns the error.
type Ledger struct {
	repo  store.LedgerRepo
	state store.LedgerState
}

// Load builds a Ledger from the persisted state.
func Load(ctx context.Context, repo store.LedgerRepo) (*Ledger, error) {
	state, err := repo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load progress ledger: %w", err)
	}
	return &Ledger{repo: repo, state: *state}, nil
}

// XP returns the accumulated experience points.
func (l *Ledger) XP() int {
	return l.state.XP
}

// StreakDays returns the current streak counter.
func (l *Ledger) StreakDays() int {
	return l.state.StreakDays
}

// Board returns the leaderboard sorted by XP descending.
func (l *Ledger) Board() []store.BoardEntry {
	out := make([]store.BoardEntry, len(l.state.Board))
	copy(out, l.state.Board)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].XP > out[j].XP
	})
	return out
}

// RecordRound applies a scored quiz round: correctCount * PointsPerCorrect
// XP, and one streak increment when the round accuracy reaches
// StreakThreshold. A round below the threshold leaves the streak where it
// is rather than resetting it; a total of zero can never extend the streak.
func (l *Ledger) RecordRound(ctx context.Context, correctCount, totalCount int) error {
	if correctCount < 0 || totalCount < 0 || correctCount > totalCount {
		return fmt.Errorf("invalid round: %d/%d", correctCount, totalCount)
	}

	next := l.state
	next.Board = l.state.Board
	next.XP += correctCount * PointsPerCorrect
	if totalCount > 0 && float64(correctCount)/float64(totalCount) >= StreakThreshold {
		next.StreakDays++
	}

	if err := l.repo.Save(ctx, &next); err != nil {
		return fmt.Errorf("record round: %w", err)
	}
	l.state = next
	return nil
}

// UpsertBoardEntry replaces the XP of the name-matched leaderboard entry
// (case-insensitive) or appends a new one.
func (l *Ledger) UpsertBoardEntry(ctx context.Context, name string, xp int) error {
	next := l.state
	next.Board = make([]store.BoardEntry, len(l.state.Board))
	copy(next.Board, l.state.Board)

	key := strings.ToLower(name)
	found := false
	for i := range next.Board {
		if strings.ToLower(next.Board[i].Name) == key {
			next.Board[i].XP = xp
			found = true
			break
		}
	}
	if !found {
		next.Board = append(next.Board, store.BoardEntry{Name: name, XP: xp})
	}

	if err := l.repo.Save(ctx, &next); err != nil {
		return fmt.Errorf("upsert leaderboard entry: %w", err)
	}
	l.state = next
	return nil
}
