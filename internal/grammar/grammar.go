// Package grammar corrects learner sentences and renders a word-level
// diff between the original and the corrected text.
package grammar

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/abhisek/lingua/internal/llm"
)

const systemPrompt = `You are an English grammar corrector.

Rules:
- Correct grammar, spelling, punctuation, and word choice errors in the given text.
- Preserve the writer's meaning and tone. Do not rewrite beyond what the errors require.
- If the text is already correct, return it unchanged.
- Return only the corrected text, no explanations.`

// CorrectionSchema constrains the model to a single corrected string.
var CorrectionSchema = &llm.Schema{
	Name:        "grammar-correction",
	Description: "The corrected version of the learner's text",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"corrected": map[string]any{
				"type":        "string",
				"description": "The full corrected text",
			},
		},
		"required":             []any{"corrected"},
		"additionalProperties": false,
	},
}

// Config tunes the corrector's model calls.
type Config struct {
	MaxTokens   int
	Temperature float64
}

// DefaultConfig returns tuned defaults for grammar correction.
func DefaultConfig() Config {
	return Config{MaxTokens: 512, Temperature: 0}
}

// Result pairs the learner's text with its correction.
type Result struct {
	Original  string
	Corrected string

	// Changed is false when the correction matches the original.
	Changed bool
}

// Corrector produces grammar corrections through a model provider.
type Corrector struct {
	provider llm.Provider
	cfg      Config
}

// New creates a grammar corrector.
func New(provider llm.Provider, cfg Config) *Corrector {
	return &Corrector{provider: provider, cfg: cfg}
}

type correctionOutput struct {
	Corrected string `json:"corrected"`
}

// Correct returns the corrected form of text.
func (c *Corrector) Correct(ctx context.Context, text string) (*Result, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, fmt.Errorf("empty text")
	}

	ctx = llm.WithPurpose(ctx, "grammar-check")

	resp, err := c.provider.Generate(ctx, llm.Request{
		System: systemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: text},
		},
		Schema:      CorrectionSchema,
		MaxTokens:   c.cfg.MaxTokens,
		Temperature: c.cfg.Temperature,
	})
	if err != nil {
		return nil, fmt.Errorf("grammar correction: %w", err)
	}

	var out correctionOutput
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return nil, fmt.Errorf("parse correction response: %w", err)
	}

	corrected := strings.TrimSpace(out.Corrected)
	if corrected == "" {
		return nil, fmt.Errorf("grammar correction: empty response")
	}

	return &Result{
		Original:  text,
		Corrected: corrected,
		Changed:   corrected != text,
	}, nil
}
