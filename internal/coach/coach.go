// Package coach assembles adaptive recommendations for the rest of the app.
//
// A recommendation combines the mastery estimate, the difficulty policy,
// and the curriculum entry for a topic. It is the single function-shaped
// boundary the quiz generator, the learning path, and the sidebar consume.
package coach

import (
	"math"

	"github.com/abhisek/lingua/internal/emotion"
	"github.com/abhisek/lingua/internal/mastery"
	"github.com/abhisek/lingua/internal/policy"
	"github.com/abhisek/lingua/internal/roadmap"
)

// Recommendation is the output record. Built fresh on every call and
// never mutated afterwards.
type Recommendation struct {
	Topic       string
	Mastery     float64
	Level       policy.CEFR
	Difficulty  policy.Difficulty
	Tier        string
	Description string
	Examples    []string
	Mood        emotion.Label
	Message     string
}

// Recommend produces the recommendation for a topic given the session's
// ordered correctness observations and the current emotion signal.
//
// Pure composition: estimator, then policy, then curriculum lookup. An
// unindexed topic degrades to the roadmap fallback entry instead of
// failing; an absent or unrecognized emotion leaves difficulty untouched.
// The observations slice is never modified.
func Recommend(topic string, observations []int, mood emotion.Label) Recommendation {
	score := mastery.Estimate(observations)
	decision := policy.Map(score, mood)

	entry, ok := roadmap.Lookup(topic)
	if !ok {
		entry = roadmap.Fallback(topic)
	}

	return Recommendation{
		Topic:       topic,
		Mastery:     round3(score),
		Level:       decision.Level,
		Difficulty:  decision.Difficulty,
		Tier:        entry.Tier,
		Description: entry.Description,
		Examples:    entry.Examples,
		Mood:        mood,
		Message:     decision.Tone,
	}
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
