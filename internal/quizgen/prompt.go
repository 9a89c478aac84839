package quizgen

import (
	"fmt"
	"strings"
)

const systemPrompt = `You are an English language tutor creating multiple choice quiz questions.

Rules:
- Generate questions appropriate for the given topic, CEFR level, and difficulty.
- Each question tests one thing: grammar, vocabulary, usage, or sentence choice.
- Plain English text only. No markdown, no special symbols.
- Provide exactly 4 options per question with exactly one correct answer.
- Distractors should reflect plausible learner mistakes, not random words.
- Keep questions self-contained; never reference other questions.
- Do not repeat any question from the "already asked" list.`

// buildUserMessage renders the generation request for one round.
func buildUserMessage(input GenerateInput, cfg Config) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Topic: %s\n", input.Topic)
	fmt.Fprintf(&b, "CEFR level: %s\n", input.Level)
	fmt.Fprintf(&b, "Difficulty: %s\n", input.Difficulty)
	fmt.Fprintf(&b, "Number of questions: %d\n", input.Count)

	b.WriteString("\nAlready asked in this session:\n")
	b.WriteString(formatPrior(input.PriorQuestions, cfg.MaxPriorQuestions))

	return b.String()
}

func formatPrior(prior []string, max int) string {
	if len(prior) == 0 {
		return "None"
	}
	if max > 0 && len(prior) > max {
		prior = prior[len(prior)-max:]
	}

	var b strings.Builder
	for i, q := range prior {
		fmt.Fprintf(&b, "%d. %s\n", i+1, q)
	}
	return strings.TrimRight(b.String(), "\n")
}
