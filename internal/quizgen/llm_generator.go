package quizgen

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/abhisek/lingua/internal/llm"
)

// LLMGenerator implements Generator on the model provider.
type LLMGenerator struct {
	provider llm.Provider
	config   Config
}

// New creates an LLMGenerator.
func New(provider llm.Provider, cfg Config) *LLMGenerator {
	return &LLMGenerator{provider: provider, config: cfg}
}

// quizOutput is the raw model response before validation.
type quizOutput struct {
	Questions []struct {
		Question    string   `json:"question"`
		Options     []string `json:"options"`
		AnswerIndex int      `json:"answer_index"`
	} `json:"questions"`
}

// Generate produces one validated quiz round.
func (g *LLMGenerator) Generate(ctx context.Context, input GenerateInput) ([]Question, error) {
	ctx = llm.WithPurpose(ctx, "quiz-gen")

	req := llm.Request{
		System: systemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildUserMessage(input, g.config)},
		},
		Schema:      QuizSchema,
		MaxTokens:   g.config.MaxTokens,
		Temperature: g.config.Temperature,
	}

	resp, err := g.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("quiz generation failed: %w", err)
	}

	var raw quizOutput
	if err := json.Unmarshal(resp.Content, &raw); err != nil {
		return nil, fmt.Errorf("parse quiz response: %w", err)
	}

	questions := make([]Question, 0, len(raw.Questions))
	for _, q := range raw.Questions {
		questions = append(questions, Question{
			Text:        q.Question,
			Options:     q.Options,
			AnswerIndex: q.AnswerIndex,
		})
	}

	if err := validateRound(questions, input); err != nil {
		return nil, err
	}
	return questions, nil
}
