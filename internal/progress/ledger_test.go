package progress

import (
	"context"
	"errors"
	"testing"

	"github.com/abhisek/lingua/internal/store"
)

// fakeRepo keeps ledger state in memory and can be told to fail saves.
type fakeRepo struct {
	state    store.LedgerState
	failSave bool
	saves    int
}

func (f *fakeRepo) Load(ctx context.Context) (*store.LedgerState, error) {
	s := f.state
	return &s, nil
}

func (f *fakeRepo) Save(ctx context.Context, state *store.LedgerState) error {
	if f.failSave {
		return errors.New("disk full")
	}
	f.saves++
	f.state = *state
	return nil
}

func newLedger(t *testing.T, repo *fakeRepo) *Ledger {
	t.Helper()
	l, err := Load(context.Background(), repo)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	return l
}

func TestRecordRound_AwardsXPAndStreak(t *testing.T) {
	repo := &fakeRepo{}
	l := newLedger(t, repo)

	if err := l.RecordRound(context.Background(), 4, 5); err != nil {
		t.Fatalf("RecordRound: %v", err)
	}
	if got := l.XP(); got != 4*PointsPerCorrect {
		t.Errorf("XP = %d, want %d", got, 4*PointsPerCorrect)
	}
	if got := l.StreakDays(); got != 1 {
		t.Errorf("streak = %d, want 1", got)
	}
	if repo.state.XP != l.XP() {
		t.Errorf("persisted XP = %d, want %d", repo.state.XP, l.XP())
	}
}

func TestRecordRound_BelowThresholdKeepsStreak(t *testing.T) {
	repo := &fakeRepo{state: store.LedgerState{XP: 100, StreakDays: 3}}
	l := newLedger(t, repo)

	if err := l.RecordRound(context.Background(), 2, 5); err != nil {
		t.Fatalf("RecordRound: %v", err)
	}
	if got := l.StreakDays(); got != 3 {
		t.Errorf("streak = %d, want 3 (never reset)", got)
	}
	if got := l.XP(); got != 120 {
		t.Errorf("XP = %d, want 120", got)
	}
}

func TestRecordRound_ExactThresholdExtendsStreak(t *testing.T) {
	repo := &fakeRepo{}
	l := newLedger(t, repo)

	if err := l.RecordRound(context.Background(), 3, 5); err != nil {
		t.Fatalf("RecordRound: %v", err)
	}
	if got := l.StreakDays(); got != 1 {
		t.Errorf("streak = %d, want 1 at exactly 0.6", got)
	}
}

func TestRecordRound_EmptyRound(t *testing.T) {
	repo := &fakeRepo{state: store.LedgerState{StreakDays: 2}}
	l := newLedger(t, repo)

	if err := l.RecordRound(context.Background(), 0, 0); err != nil {
		t.Fatalf("RecordRound: %v", err)
	}
	if got := l.XP(); got != 0 {
		t.Errorf("XP = %d, want 0", got)
	}
	if got := l.StreakDays(); got != 2 {
		t.Errorf("streak = %d, want 2 (empty round cannot extend)", got)
	}
}

func TestRecordRound_RejectsInvalidCounts(t *testing.T) {
	repo := &fakeRepo{}
	l := newLedger(t, repo)

	for _, tt := range []struct{ correct, total int }{
		{-1, 5},
		{3, -1},
		{6, 5},
	} {
		if err := l.RecordRound(context.Background(), tt.correct, tt.total); err == nil {
			t.Errorf("RecordRound(%d, %d) should fail", tt.correct, tt.total)
		}
	}
	if repo.saves != 0 {
		t.Errorf("invalid rounds reached the repo %d times", repo.saves)
	}
}

func TestRecordRound_FailedSaveLeavesStateUnchanged(t *testing.T) {
	repo := &fakeRepo{state: store.LedgerState{XP: 50, StreakDays: 1}}
	l := newLedger(t, repo)
	repo.failSave = true

	if err := l.RecordRound(context.Background(), 5, 5); err == nil {
		t.Fatal("expected save error")
	}
	if got := l.XP(); got != 50 {
		t.Errorf("XP = %d, want 50 after failed save", got)
	}
	if got := l.StreakDays(); got != 1 {
		t.Errorf("streak = %d, want 1 after failed save", got)
	}
}

func TestUpsertBoardEntry_Appends(t *testing.T) {
	repo := &fakeRepo{}
	l := newLedger(t, repo)

	if err := l.UpsertBoardEntry(context.Background(), "Asha", 120); err != nil {
		t.Fatalf("UpsertBoardEntry: %v", err)
	}
	board := l.Board()
	if len(board) != 1 || board[0].Name != "Asha" || board[0].XP != 120 {
		t.Errorf("board = %+v, want [{Asha 120}]", board)
	}
}

func TestUpsertBoardEntry_ReplacesCaseInsensitive(t *testing.T) {
	repo := &fakeRepo{state: store.LedgerState{
		Board: []store.BoardEntry{{Name: "Asha", XP: 120}, {Name: "Ravi", XP: 80}},
	}}
	l := newLedger(t, repo)

	if err := l.UpsertBoardEntry(context.Background(), "ASHA", 200); err != nil {
		t.Fatalf("UpsertBoardEntry: %v", err)
	}
	board := l.Board()
	if len(board) != 2 {
		t.Fatalf("board has %d entries, want 2", len(board))
	}
	if board[0].Name != "Asha" || board[0].XP != 200 {
		t.Errorf("board[0] = %+v, want original name with new XP", board[0])
	}
}

func TestUpsertBoardEntry_FailedSaveLeavesBoard(t *testing.T) {
	repo := &fakeRepo{state: store.LedgerState{
		Board: []store.BoardEntry{{Name: "Asha", XP: 120}},
	}}
	l := newLedger(t, repo)
	repo.failSave = true

	if err := l.UpsertBoardEntry(context.Background(), "Ravi", 80); err == nil {
		t.Fatal("expected save error")
	}
	if got := len(l.Board()); got != 1 {
		t.Errorf("board has %d entries after failed save, want 1", got)
	}
}

func TestBoard_SortedByXPDescending(t *testing.T) {
	repo := &fakeRepo{state: store.LedgerState{
		Board: []store.BoardEntry{
			{Name: "Ravi", XP: 80},
			{Name: "Asha", XP: 200},
			{Name: "Mei", XP: 150},
		},
	}}
	l := newLedger(t, repo)

	board := l.Board()
	want := []string{"Asha", "Mei", "Ravi"}
	for i, name := range want {
		if board[i].Name != name {
			t.Errorf("board[%d] = %q, want %q", i, board[i].Name, name)
		}
	}
}
