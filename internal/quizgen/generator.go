package quizgen

import "context"

// Generator produces quiz rounds using a model provider.
type Generator interface {
	// Generate produces Count validated questions for the given input.
	// A failed round returns (nil, err); callers decide whether to retry
	// or degrade to an empty quiz.
	Generate(ctx context.Context, input GenerateInput) ([]Question, error)
}

// Config controls the LLMGenerator.
type Config struct {
	// MaxTokens is the token budget for a full quiz round.
	MaxTokens int

	// Temperature controls output randomness (0.0-1.0).
	Temperature float64

	// MaxPriorQuestions caps how many prior questions go into the prompt
	// for deduplication.
	MaxPriorQuestions int
}

// DefaultConfig returns the recommended generator settings.
func DefaultConfig() Config {
	return Config{
		MaxTokens:         1024,
		Temperature:       0.7,
		MaxPriorQuestions: 10,
	}
}
