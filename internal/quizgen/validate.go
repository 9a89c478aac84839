package quizgen

import (
	"fmt"
	"strings"
)

const optionsPerQuestion = 4

// validateRound rejects rounds the schema alone cannot catch: wrong
// counts, blank text, out of range answers, and duplicates within the
// round or against questions already asked in the session.
func validateRound(questions []Question, input GenerateInput) error {
	if len(questions) == 0 {
		return fmt.Errorf("empty round")
	}
	if input.Count > 0 && len(questions) != input.Count {
		return fmt.Errorf("expected %d questions, got %d", input.Count, len(questions))
	}

	seen := make(map[string]bool, len(questions)+len(input.PriorQuestions))
	for _, q := range input.PriorQuestions {
		seen[normalizeQuestion(q)] = true
	}

	for i, q := range questions {
		if strings.TrimSpace(q.Text) == "" {
			return fmt.Errorf("question %d: empty text", i)
		}
		if len(q.Options) != optionsPerQuestion {
			return fmt.Errorf("question %d: expected %d options, got %d", i, optionsPerQuestion, len(q.Options))
		}
		for j, opt := range q.Options {
			if strings.TrimSpace(opt) == "" {
				return fmt.Errorf("question %d: option %d is empty", i, j)
			}
		}
		if q.AnswerIndex < 0 || q.AnswerIndex >= len(q.Options) {
			return fmt.Errorf("question %d: answer index %d out of range", i, q.AnswerIndex)
		}

		key := normalizeQuestion(q.Text)
		if seen[key] {
			return fmt.Errorf("question %d: duplicate question %q", i, q.Text)
		}
		seen[key] = true
	}

	return nil
}

func normalizeQuestion(s string) string {
	return strings.ToLower(strings.Join(strings.Fields(s), " "))
}
