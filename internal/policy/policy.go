// Package policy maps a mastery score and an optional emotion signal to a
// CEFR level, a difficulty label, and a coaching tone.
package policy

import "github.com/abhisek/lingua/internal/emotion"

// CEFR is a Common European Framework of Reference level, A1 (lowest)
// through C2 (highest). Used purely as an ordered enum.
type CEFR string

const (
	A1 CEFR = "A1"
	A2 CEFR = "A2"
	B1 CEFR = "B1"
	B2 CEFR = "B2"
	C1 CEFR = "C1"
	C2 CEFR = "C2"
)

// Ordinal returns the level's position, A1=0 through C2=5.
func (c CEFR) Ordinal() int {
	switch c {
	case A1:
		return 0
	case A2:
		return 1
	case B1:
		return 2
	case B2:
		return 3
	case C1:
		return 4
	case C2:
		return 5
	}
	return -1
}

// Difficulty is the coarse label guiding quiz generation and pacing.
type Difficulty string

const (
	Easy       Difficulty = "Easy"
	Medium     Difficulty = "Medium"
	Hard       Difficulty = "Hard"
	VeryHard   Difficulty = "Very Hard"
	Supportive Difficulty = "Supportive / Review"
	Stretch    Difficulty = "Stretch Challenge"
)

// Tone messages. Fixed templates, selected by the emotion branch taken.
const (
	ToneSupportive = "Supportive pace. Shorter steps, simpler questions."
	ToneStretch    = "You seem engaged. Gently raising the challenge."
	ToneNeutral    = "Emotion not detected. Proceeding at normal pace."
)

// Mastery bucket upper bounds. Buckets are half-open [lo, hi); the top
// bucket includes 1.0. Thresholds follow the tuned ascending mapping:
// stronger recent performance earns a higher CEFR estimate and a harder
// recommended difficulty.
const (
	thresholdA1 = 0.20
	thresholdA2 = 0.40
	thresholdB1 = 0.55
	thresholdB2 = 0.70
	thresholdC1 = 0.85
)

// Decision is the deterministic output of Map.
type Decision struct {
	Level      CEFR
	Difficulty Difficulty
	Tone       string
}

// Map buckets mastery into a (CEFR, difficulty) pair and applies the
// emotion override. Mastery outside [0,1] is clamped; a signal outside
// the closed emotion set behaves as absent.
//
// The override only ever moves the difficulty label toward Supportive or
// Stretch. It never touches the CEFR level, and applying the same signal
// to an already overridden label cannot move it again: Supportive and
// Stretch are not in the Easy/Medium upgrade set.
func Map(score float64, mood emotion.Label) Decision {
	level, diff := bucket(clamp(score))
	return override(Decision{Level: level, Difficulty: diff}, mood)
}

// override applies the emotion branch to a bucketed decision. Idempotent
// for any fixed signal: a second application returns the same decision.
func override(d Decision, mood emotion.Label) Decision {
	switch {
	case mood.IsNegative():
		d.Difficulty = Supportive
		d.Tone = ToneSupportive
	case mood.IsPositive():
		if d.Difficulty == Easy || d.Difficulty == Medium {
			d.Difficulty = Stretch
		}
		d.Tone = ToneStretch
	default:
		d.Tone = ToneNeutral
	}
	return d
}

func bucket(score float64) (CEFR, Difficulty) {
	switch {
	case score < thresholdA1:
		return A1, Easy
	case score < thresholdA2:
		return A2, Easy
	case score < thresholdB1:
		return B1, Medium
	case score < thresholdB2:
		return B2, Medium
	case score < thresholdC1:
		return C1, Hard
	default:
		return C2, VeryHard
	}
}

func clamp(score float64) float64 {
	if score < 0 {
		return 0
	}
	if score > 1 {
		return 1
	}
	return score
}
