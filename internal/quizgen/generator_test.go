package quizgen

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/abhisek/lingua/internal/llm"
	"github.com/abhisek/lingua/internal/policy"
)

func validRoundJSON(n int) json.RawMessage {
	type q struct {
		Question    string   `json:"question"`
		Options     []string `json:"options"`
		AnswerIndex int      `json:"answer_index"`
	}
	out := struct {
		Questions []q `json:"questions"`
	}{}
	prompts := []string{
		"Which sentence is correct?",
		"Choose the right word: She ___ to work every day.",
		"What is the past tense of 'go'?",
		"Pick the correct greeting for a stranger.",
		"Which option completes the sentence naturally?",
	}
	for i := 0; i < n; i++ {
		out.Questions = append(out.Questions, q{
			Question:    prompts[i%len(prompts)],
			Options:     []string{"option a", "option b", "option c", "option d"},
			AnswerIndex: i % 4,
		})
	}
	raw, _ := json.Marshal(out)
	return raw
}

func testInput(count int) GenerateInput {
	return GenerateInput{
		Topic:      "Daily Routines",
		Level:      policy.A2,
		Difficulty: policy.Easy,
		Count:      count,
	}
}

func TestGenerate(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validRoundJSON(3)})
	g := New(mock, DefaultConfig())

	questions, err := g.Generate(context.Background(), testInput(3))
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if len(questions) != 3 {
		t.Fatalf("got %d questions, want 3", len(questions))
	}
	for i, q := range questions {
		if q.Text == "" {
			t.Errorf("question %d has empty text", i)
		}
		if len(q.Options) != 4 {
			t.Errorf("question %d has %d options, want 4", i, len(q.Options))
		}
		if q.AnswerIndex < 0 || q.AnswerIndex > 3 {
			t.Errorf("question %d answer index %d out of range", i, q.AnswerIndex)
		}
	}
}

func TestGenerate_PromptCarriesContext(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validRoundJSON(2)})
	g := New(mock, DefaultConfig())

	input := testInput(2)
	input.PriorQuestions = []string{"What is the past tense of 'see'?"}
	if _, err := g.Generate(context.Background(), input); err != nil {
		t.Fatalf("Generate: %v", err)
	}

	if mock.CallCount() != 1 {
		t.Fatalf("provider called %d times, want 1", mock.CallCount())
	}
	req := mock.Calls[0]
	if req.Schema != QuizSchema {
		t.Error("request should carry the quiz schema")
	}
	if req.System == "" {
		t.Error("request should carry a system prompt")
	}
	msg := req.Messages[0].Content
	for _, want := range []string{
		"Topic: Daily Routines",
		"CEFR level: A2",
		"Difficulty: Easy",
		"Number of questions: 2",
		"What is the past tense of 'see'?",
	} {
		if !strings.Contains(msg, want) {
			t.Errorf("user message missing %q:\n%s", want, msg)
		}
	}
}

func TestGenerate_ProviderError(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Err: errors.New("boom")})
	g := New(mock, DefaultConfig())

	if _, err := g.Generate(context.Background(), testInput(3)); err == nil {
		t.Fatal("expected error")
	}
}

func TestGenerate_MalformedJSON(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(`{"questions": [`)})
	g := New(mock, DefaultConfig())

	if _, err := g.Generate(context.Background(), testInput(3)); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestGenerate_WrongCountRejected(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validRoundJSON(2)})
	g := New(mock, DefaultConfig())

	if _, err := g.Generate(context.Background(), testInput(5)); err == nil {
		t.Fatal("expected count mismatch error")
	}
}

func TestBuildUserMessage_NoPriorQuestions(t *testing.T) {
	msg := buildUserMessage(testInput(5), DefaultConfig())
	if !strings.Contains(msg, "Already asked in this session:\nNone") {
		t.Errorf("message should state no prior questions:\n%s", msg)
	}
}

func TestFormatPrior_KeepsNewestEntries(t *testing.T) {
	prior := []string{"q1", "q2", "q3", "q4"}
	out := formatPrior(prior, 2)
	if strings.Contains(out, "q1") || strings.Contains(out, "q2") {
		t.Errorf("oldest entries should be dropped:\n%s", out)
	}
	if !strings.Contains(out, "q3") || !strings.Contains(out, "q4") {
		t.Errorf("newest entries should be kept:\n%s", out)
	}
}

func TestValidateRound(t *testing.T) {
	good := func() []Question {
		return []Question{
			{Text: "Q one?", Options: []string{"a", "b", "c", "d"}, AnswerIndex: 0},
			{Text: "Q two?", Options: []string{"a", "b", "c", "d"}, AnswerIndex: 3},
		}
	}

	tests := []struct {
		name    string
		mutate  func([]Question) []Question
		input   GenerateInput
		wantErr bool
	}{
		{"valid", func(qs []Question) []Question { return qs }, GenerateInput{Count: 2}, false},
		{"empty round", func(qs []Question) []Question { return nil }, GenerateInput{}, true},
		{"count mismatch", func(qs []Question) []Question { return qs }, GenerateInput{Count: 3}, true},
		{"blank text", func(qs []Question) []Question { qs[0].Text = "  "; return qs }, GenerateInput{Count: 2}, true},
		{"three options", func(qs []Question) []Question { qs[1].Options = qs[1].Options[:3]; return qs }, GenerateInput{Count: 2}, true},
		{"blank option", func(qs []Question) []Question { qs[0].Options[2] = ""; return qs }, GenerateInput{Count: 2}, true},
		{"negative index", func(qs []Question) []Question { qs[0].AnswerIndex = -1; return qs }, GenerateInput{Count: 2}, true},
		{"index too large", func(qs []Question) []Question { qs[0].AnswerIndex = 4; return qs }, GenerateInput{Count: 2}, true},
		{"duplicate in round", func(qs []Question) []Question { qs[1].Text = "q ONE?"; return qs }, GenerateInput{Count: 2}, true},
		{"duplicate of prior", func(qs []Question) []Question { return qs },
			GenerateInput{Count: 2, PriorQuestions: []string{"q  one?"}}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateRound(tt.mutate(good()), tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("validateRound error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestScore(t *testing.T) {
	questions := []Question{
		{AnswerIndex: 0},
		{AnswerIndex: 2},
		{AnswerIndex: 1},
	}

	got := Score([]int{0, 1, 1}, questions)
	want := []int{1, 0, 1}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Score[%d] = %d, want %d", i, got[i], want[i])
		}
	}
}

func TestScore_ShortChoices(t *testing.T) {
	questions := []Question{{AnswerIndex: 0}, {AnswerIndex: 1}}
	got := Score([]int{0}, questions)
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	if got[0] != 1 || got[1] != 0 {
		t.Errorf("Score = %v, want [1 0]", got)
	}
}
