package grammar

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/abhisek/lingua/internal/llm"
)

func correctionJSON(t *testing.T, corrected string) json.RawMessage {
	t.Helper()
	raw, err := json.Marshal(map[string]string{"corrected": corrected})
	if err != nil {
		t.Fatalf("marshal correction: %v", err)
	}
	return raw
}

func TestCorrect(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: correctionJSON(t, "She goes to school every day."),
	})
	c := New(mock, DefaultConfig())

	res, err := c.Correct(context.Background(), "She go to school every day.")
	if err != nil {
		t.Fatalf("Correct: %v", err)
	}
	if res.Corrected != "She goes to school every day." {
		t.Errorf("Corrected = %q", res.Corrected)
	}
	if !res.Changed {
		t.Error("Changed = false, want true")
	}
	if res.Original != "She go to school every day." {
		t.Errorf("Original = %q", res.Original)
	}
}

func TestCorrect_AlreadyCorrect(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: correctionJSON(t, "This sentence is fine."),
	})
	c := New(mock, DefaultConfig())

	res, err := c.Correct(context.Background(), "This sentence is fine.")
	if err != nil {
		t.Fatalf("Correct: %v", err)
	}
	if res.Changed {
		t.Error("Changed = true for an unchanged sentence")
	}
}

func TestCorrect_TrimsInput(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: correctionJSON(t, "Hello there."),
	})
	c := New(mock, DefaultConfig())

	res, err := c.Correct(context.Background(), "  Hello there.  ")
	if err != nil {
		t.Fatalf("Correct: %v", err)
	}
	if res.Original != "Hello there." {
		t.Errorf("Original = %q, want trimmed text", res.Original)
	}
	if res.Changed {
		t.Error("trimmed-equal text should not count as changed")
	}
}

func TestCorrect_EmptyText(t *testing.T) {
	mock := llm.NewMockProvider()
	c := New(mock, DefaultConfig())

	if _, err := c.Correct(context.Background(), "   "); err == nil {
		t.Fatal("expected error for blank text")
	}
	if mock.CallCount() != 0 {
		t.Error("blank text should not reach the provider")
	}
}

func TestCorrect_EmptyModelOutput(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: correctionJSON(t, "  ")})
	c := New(mock, DefaultConfig())

	if _, err := c.Correct(context.Background(), "She go to school."); err == nil {
		t.Fatal("expected error for empty correction")
	}
}

func TestCorrect_RequestShape(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: correctionJSON(t, "ok")})
	c := New(mock, DefaultConfig())

	if _, err := c.Correct(context.Background(), "test sentence"); err != nil {
		t.Fatalf("Correct: %v", err)
	}
	req := mock.Calls[0]
	if req.Schema != CorrectionSchema {
		t.Error("request should carry the correction schema")
	}
	if req.Messages[0].Content != "test sentence" {
		t.Errorf("user message = %q", req.Messages[0].Content)
	}
	if req.Temperature != 0 {
		t.Errorf("temperature = %v, want 0", req.Temperature)
	}
}
