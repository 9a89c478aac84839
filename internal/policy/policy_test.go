package policy

import (
	"testing"

	"github.com/abhisek/lingua/internal/emotion"
)

func TestMap_Buckets(t *testing.T) {
	tests := []struct {
		score    float64
		level    CEFR
		diff     Difficulty
	}{
		{0.0, A1, Easy},
		{0.19, A1, Easy},
		{0.20, A2, Easy},
		{0.39, A2, Easy},
		{0.40, B1, Medium},
		{0.54, B1, Medium},
		{0.55, B2, Medium},
		{0.69, B2, Medium},
		{0.70, C1, Hard},
		{0.84, C1, Hard},
		{0.85, C2, VeryHard},
		{1.0, C2, VeryHard},
	}

	for _, tt := range tests {
		d := Map(tt.score, emotion.LabelNone)
		if d.Level != tt.level {
			t.Errorf("Map(%.2f) level = %s, want %s", tt.score, d.Level, tt.level)
		}
		if d.Difficulty != tt.diff {
			t.Errorf("Map(%.2f) difficulty = %s, want %s", tt.score, d.Difficulty, tt.diff)
		}
		if d.Tone != ToneNeutral {
			t.Errorf("Map(%.2f) tone = %q, want neutral", tt.score, d.Tone)
		}
	}
}

func TestMap_ClampsOutOfRange(t *testing.T) {
	low := Map(-0.5, emotion.LabelNone)
	if low.Level != A1 || low.Difficulty != Easy {
		t.Errorf("Map(-0.5) = %+v, want A1/Easy", low)
	}

	high := Map(1.5, emotion.LabelNone)
	if high.Level != C2 || high.Difficulty != VeryHard {
		t.Errorf("Map(1.5) = %+v, want C2/VeryHard", high)
	}
}

func TestMap_LevelMonotonic(t *testing.T) {
	prev := -1
	for score := 0.0; score <= 1.0; score += 0.01 {
		d := Map(score, emotion.LabelNone)
		ord := d.Level.Ordinal()
		if ord < prev {
			t.Fatalf("level ordinal decreased at score %.2f", score)
		}
		prev = ord
	}
}

func TestMap_NegativeMoodForcesSupportive(t *testing.T) {
	for _, mood := range []emotion.Label{emotion.Sad, emotion.Angry, emotion.Disgust, emotion.Fear} {
		for _, score := range []float64{0.0, 0.5, 1.0} {
			d := Map(score, mood)
			if d.Difficulty != Supportive {
				t.Errorf("Map(%.1f, %s) difficulty = %s, want Supportive", score, mood, d.Difficulty)
			}
			if d.Tone != ToneSupportive {
				t.Errorf("Map(%.1f, %s) tone = %q, want supportive", score, mood, d.Tone)
			}
			// The CEFR estimate is never touched by the override.
			if d.Level != Map(score, emotion.LabelNone).Level {
				t.Errorf("Map(%.1f, %s) changed level", score, mood)
			}
		}
	}
}

func TestMap_PositiveMoodUpgradesEasyAndMedium(t *testing.T) {
	for _, mood := range []emotion.Label{emotion.Happy, emotion.Surprise, emotion.Neutral} {
		d := Map(0.1, mood)
		if d.Difficulty != Stretch {
			t.Errorf("Map(0.1, %s) difficulty = %s, want Stretch", mood, d.Difficulty)
		}
		d = Map(0.5, mood)
		if d.Difficulty != Stretch {
			t.Errorf("Map(0.5, %s) difficulty = %s, want Stretch", mood, d.Difficulty)
		}
	}
}

func TestMap_PositiveMoodLeavesHardAlone(t *testing.T) {
	d := Map(0.75, emotion.Happy)
	if d.Difficulty != Hard {
		t.Errorf("Map(0.75, happy) difficulty = %s, want Hard", d.Difficulty)
	}
	if d.Tone != ToneStretch {
		t.Errorf("Map(0.75, happy) tone = %q, want stretch", d.Tone)
	}

	d = Map(0.95, emotion.Happy)
	if d.Difficulty != VeryHard {
		t.Errorf("Map(0.95, happy) difficulty = %s, want VeryHard", d.Difficulty)
	}
}

func TestOverride_Idempotent(t *testing.T) {
	moods := []emotion.Label{
		emotion.LabelNone, emotion.Happy, emotion.Surprise, emotion.Neutral,
		emotion.Sad, emotion.Angry, emotion.Disgust, emotion.Fear,
	}
	difficulties := []Difficulty{Easy, Medium, Hard, VeryHard, Supportive, Stretch}

	for _, mood := range moods {
		for _, diff := range difficulties {
			once := override(Decision{Level: B1, Difficulty: diff}, mood)
			twice := override(once, mood)
			if once != twice {
				t.Errorf("override(%s, %s) applied twice = %+v, want %+v",
					diff, mood, twice, once)
			}
		}
	}
}

func TestMap_Deterministic(t *testing.T) {
	a := Map(0.42, emotion.Sad)
	b := Map(0.42, emotion.Sad)
	if a != b {
		t.Errorf("repeated Map differed: %+v vs %+v", a, b)
	}
}

func TestMap_UnknownSignalBehavesAsAbsent(t *testing.T) {
	d := Map(0.5, emotion.Parse("confused"))
	if d != Map(0.5, emotion.LabelNone) {
		t.Errorf("unrecognized signal changed decision: %+v", d)
	}
}

func TestCEFR_Ordinal(t *testing.T) {
	levels := []CEFR{A1, A2, B1, B2, C1, C2}
	for i, l := range levels {
		if l.Ordinal() != i {
			t.Errorf("%s.Ordinal() = %d, want %d", l, l.Ordinal(), i)
		}
	}
	if CEFR("X9").Ordinal() != -1 {
		t.Error("unknown level should have ordinal -1")
	}
}
