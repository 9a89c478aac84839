package coach

import (
	"testing"

	"github.com/abhisek/lingua/internal/emotion"
	"github.com/abhisek/lingua/internal/mastery"
	"github.com/abhisek/lingua/internal/policy"
	"github.com/abhisek/lingua/internal/roadmap"
)

func TestRecommend_ColdStart(t *testing.T) {
	rec := Recommend("Daily Routines", nil, emotion.LabelNone)

	if rec.Mastery != mastery.ColdStart {
		t.Errorf("mastery = %v, want %v", rec.Mastery, mastery.ColdStart)
	}
	if rec.Level != policy.B1 {
		t.Errorf("level = %s, want B1", rec.Level)
	}
	if rec.Difficulty != policy.Medium {
		t.Errorf("difficulty = %s, want Medium", rec.Difficulty)
	}
	if rec.Message != policy.ToneNeutral {
		t.Errorf("message = %q, want neutral tone", rec.Message)
	}
	if rec.Tier != "A2" {
		t.Errorf("tier = %q, want A2", rec.Tier)
	}
}

func TestRecommend_StrugglingAndSad(t *testing.T) {
	rec := Recommend("Daily Routines", []int{0, 0, 1, 0}, emotion.Sad)

	if rec.Mastery != 0.25 {
		t.Errorf("mastery = %v, want 0.25", rec.Mastery)
	}
	if rec.Difficulty != policy.Supportive {
		t.Errorf("difficulty = %s, want Supportive", rec.Difficulty)
	}
	if rec.Message != policy.ToneSupportive {
		t.Errorf("message = %q, want supportive tone", rec.Message)
	}
	if rec.Mood != emotion.Sad {
		t.Errorf("mood = %s, want sad", rec.Mood)
	}
}

func TestRecommend_StrongAndHappyKeepsHard(t *testing.T) {
	obs := []int{1, 1, 1, 1, 1, 1, 1, 1, 1, 0}
	rec := Recommend("Storytelling", obs, emotion.Happy)

	if rec.Level != policy.C2 {
		t.Errorf("level = %s, want C2", rec.Level)
	}
	if rec.Difficulty != policy.VeryHard {
		t.Errorf("difficulty = %s, want Very Hard", rec.Difficulty)
	}
	if rec.Message != policy.ToneStretch {
		t.Errorf("message = %q, want stretch tone", rec.Message)
	}
}

func TestRecommend_HappyUpgradesMedium(t *testing.T) {
	rec := Recommend("Daily Routines", []int{1, 0, 1, 0}, emotion.Happy)
	if rec.Difficulty != policy.Stretch {
		t.Errorf("difficulty = %s, want Stretch", rec.Difficulty)
	}
}

func TestRecommend_UnknownTopicFallsBack(t *testing.T) {
	rec := Recommend("Quantum Idioms", []int{1, 1}, emotion.LabelNone)

	if rec.Topic != "Quantum Idioms" {
		t.Errorf("topic = %q, want the requested name", rec.Topic)
	}
	if rec.Tier != roadmap.FallbackTier {
		t.Errorf("tier = %q, want %q", rec.Tier, roadmap.FallbackTier)
	}
	if rec.Description != roadmap.FallbackDescription {
		t.Errorf("description = %q, want %q", rec.Description, roadmap.FallbackDescription)
	}
	if len(rec.Examples) != 0 {
		t.Errorf("fallback should carry no examples, got %d", len(rec.Examples))
	}
	// The fallback affects only curriculum fields, never the estimate.
	if rec.Mastery != 1.0 {
		t.Errorf("mastery = %v, want 1.0", rec.Mastery)
	}
}

func TestRecommend_RoundsMastery(t *testing.T) {
	rec := Recommend("Daily Routines", []int{1, 0, 0}, emotion.LabelNone)
	if rec.Mastery != 0.333 {
		t.Errorf("mastery = %v, want 0.333", rec.Mastery)
	}
}

func TestRecommend_DoesNotMutateObservations(t *testing.T) {
	obs := []int{1, 5, -1, 0}
	Recommend("Daily Routines", obs, emotion.LabelNone)
	want := []int{1, 5, -1, 0}
	for i := range obs {
		if obs[i] != want[i] {
			t.Fatalf("observations mutated: %v", obs)
		}
	}
}
