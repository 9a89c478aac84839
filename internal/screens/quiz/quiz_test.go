package quiz

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/abhisek/lingua/internal/emotion"
	"github.com/abhisek/lingua/internal/store"
)

// failingEventRepo rejects answer writes. Other methods are inherited
// from the embedded nil interface and must not be reached.
type failingEventRepo struct {
	store.EventRepo
}

func (failingEventRepo) AppendAnswer(context.Context, store.AnswerEventData) error {
	return errors.New("disk full")
}

type okEventRepo struct {
	store.EventRepo
	appended []store.AnswerEventData
}

func (r *okEventRepo) AppendAnswer(_ context.Context, data store.AnswerEventData) error {
	r.appended = append(r.appended, data)
	return nil
}

func TestRecordAnswer_WriteErrorIsSurfaced(t *testing.T) {
	q := New(nil, failingEventRepo{}, nil, "s1", "Daily Routines", emotion.LabelNone)

	msg := q.recordAnswer(true)()
	saved, ok := msg.(answerSavedMsg)
	if !ok {
		t.Fatalf("recordAnswer msg = %T, want answerSavedMsg", msg)
	}
	if saved.Err == nil {
		t.Fatal("answerSavedMsg.Err = nil, want write error")
	}
	if !strings.Contains(saved.Err.Error(), "disk full") {
		t.Errorf("answerSavedMsg.Err = %q, want it to wrap the repo error", saved.Err)
	}

	q.Update(saved)
	if q.saveErr == nil {
		t.Fatal("saveErr not set after failed answer write")
	}

	q.phase = phaseSummary
	if view := q.View(80, 24); !strings.Contains(view, "Could not save progress") {
		t.Errorf("summary view does not report the failed save:\n%s", view)
	}
}

func TestRecordAnswer_Success(t *testing.T) {
	repo := &okEventRepo{}
	q := New(nil, repo, nil, "s1", "Daily Routines", emotion.LabelNone)

	msg := q.recordAnswer(true)()
	saved, ok := msg.(answerSavedMsg)
	if !ok {
		t.Fatalf("recordAnswer msg = %T, want answerSavedMsg", msg)
	}
	if saved.Err != nil {
		t.Fatalf("answerSavedMsg.Err = %v, want nil", saved.Err)
	}

	q.Update(saved)
	if q.saveErr != nil {
		t.Errorf("saveErr = %v, want nil", q.saveErr)
	}

	if len(repo.appended) != 1 {
		t.Fatalf("appended %d events, want 1", len(repo.appended))
	}
	got := repo.appended[0]
	if got.SessionID != "s1" || got.Topic != "Daily Routines" || !got.Correct {
		t.Errorf("AppendAnswer data = %+v, want session s1, topic Daily Routines, correct", got)
	}
}
