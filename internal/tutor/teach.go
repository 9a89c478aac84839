package tutor

import (
	"context"
	"fmt"
	"strings"

	"github.com/abhisek/lingua/internal/llm"
	"github.com/abhisek/lingua/internal/policy"
)

const teachSystemPrompt = `You are an English teacher writing a short standalone lesson.

Rules:
- Teach exactly the topic you are given, pitched at the stated CEFR level.
- Structure the lesson as: a one-sentence introduction, the key rules or
  phrases, three example sentences, and one short practice prompt.
- Use simple language the learner can follow at their level.
- Plain text only. No markdown formatting.`

// TeachInput describes the lesson to generate.
type TeachInput struct {
	Topic    string
	Level    policy.CEFR
	Examples []string
}

// Teach generates a short standalone lesson on a curriculum topic. It is
// single turn and independent of any chat transcript.
func Teach(ctx context.Context, provider llm.Provider, cfg Config, in TeachInput) (string, error) {
	topic := strings.TrimSpace(in.Topic)
	if topic == "" {
		return "", fmt.Errorf("empty topic")
	}

	ctx = llm.WithPurpose(ctx, "teaching-block")

	var b strings.Builder
	fmt.Fprintf(&b, "Topic: %s\n", topic)
	fmt.Fprintf(&b, "Learner level: %s\n", in.Level)
	if len(in.Examples) > 0 {
		b.WriteString("Sample phrases from the curriculum:\n")
		for _, e := range in.Examples {
			fmt.Fprintf(&b, "- %s\n", e)
		}
	}
	b.WriteString("\nWrite the lesson now.")

	resp, err := provider.Generate(ctx, llm.Request{
		System:      teachSystemPrompt,
		Messages:    []llm.Message{{Role: llm.RoleUser, Content: b.String()}},
		MaxTokens:   cfg.MaxTokens,
		Temperature: cfg.Temperature,
	})
	if err != nil {
		return "", fmt.Errorf("teach %q: %w", topic, err)
	}

	lesson := strings.TrimSpace(resp.Text())
	if lesson == "" {
		return "", fmt.Errorf("teach %q: empty response", topic)
	}
	return lesson, nil
}
