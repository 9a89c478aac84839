package quizgen

import "github.com/abhisek/lingua/internal/policy"

// Question is one generated multiple-choice question ready for display.
type Question struct {
	// Text is the question prompt shown to the learner.
	Text string

	// Options holds exactly 4 answer choices.
	Options []string

	// AnswerIndex is the index (0-3) of the correct option.
	AnswerIndex int
}

// GenerateInput carries all context needed to generate a quiz round.
type GenerateInput struct {
	// Topic is the curriculum topic the quiz should test.
	Topic string

	// Level is the learner's current CEFR estimate.
	Level policy.CEFR

	// Difficulty is the policy's difficulty hint for this round.
	Difficulty policy.Difficulty

	// Count is the number of questions to generate.
	Count int

	// PriorQuestions holds question texts already asked this session,
	// for deduplication in the prompt.
	PriorQuestions []string
}

// Score compares chosen option indices against the answer key and
// returns the 0/1 correctness observations in question order.
func Score(chosen []int, questions []Question) []int {
	results := make([]int, 0, len(questions))
	for i, q := range questions {
		correct := 0
		if i < len(chosen) && chosen[i] == q.AnswerIndex {
			correct = 1
		}
		results = append(results, correct)
	}
	return results
}
