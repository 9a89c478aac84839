package quizgen

import "github.com/abhisek/lingua/internal/llm"

// QuizSchema defines the JSON shape of a generated quiz round.
var QuizSchema = &llm.Schema{
	Name:        "english-quiz",
	Description: "A set of multiple choice questions testing English skills",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"questions": map[string]any{
				"type":        "array",
				"description": "The generated questions, in presentation order",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"question": map[string]any{
							"type":        "string",
							"description": "The question text, plain English, self-contained",
						},
						"options": map[string]any{
							"type":        "array",
							"items":       map[string]any{"type": "string"},
							"description": "Exactly 4 answer choices",
						},
						"answer_index": map[string]any{
							"type":        "integer",
							"minimum":     0,
							"maximum":     3,
							"description": "Index (0-3) of the correct option",
						},
					},
					"required":             []any{"question", "options", "answer_index"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"questions"},
		"additionalProperties": false,
	},
}
