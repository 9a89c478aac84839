// Package tutor implements the conversational English tutor. It keeps the
// running dialogue and replays it on every call so the model keeps context.
package tutor

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/abhisek/lingua/internal/llm"
)

const systemPrompt = `You are a friendly English tutor helping a learner improve their English.

Rules:
- Only discuss English learning: grammar, vocabulary, pronunciation, idioms, writing, reading, and conversation practice.
- If asked about anything else, politely steer the conversation back to English learning.
- Keep answers short and clear. Use simple language the learner can follow.
- When correcting the learner, show the corrected sentence and briefly explain the fix.
- Encourage the learner. Never mock mistakes.
- Plain text only. No markdown formatting.`

// Config tunes the tutor's model calls.
type Config struct {
	MaxTokens   int
	Temperature float64

	// MaxHistoryTurns caps how many past turns are replayed to the model.
	// Older turns beyond the cap are dropped from the request but kept in
	// the transcript.
	MaxHistoryTurns int
}

// DefaultConfig returns tuned defaults for the chat tutor.
func DefaultConfig() Config {
	return Config{
		MaxTokens:       768,
		Temperature:     0.8,
		MaxHistoryTurns: 20,
	}
}

// Tutor is a stateful chat session with the English tutor.
type Tutor struct {
	provider llm.Provider
	cfg      Config

	mu      sync.Mutex
	history []llm.Message
}

// New creates a tutor session with empty history.
func New(provider llm.Provider, cfg Config) *Tutor {
	return &Tutor{provider: provider, cfg: cfg}
}

// Ask sends one learner message and returns the tutor's reply. The exchange
// is appended to the transcript only on success.
func (t *Tutor) Ask(ctx context.Context, text string) (string, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return "", fmt.Errorf("empty message")
	}

	ctx = llm.WithPurpose(ctx, "tutor-chat")

	t.mu.Lock()
	messages := t.window()
	t.mu.Unlock()
	messages = append(messages, llm.Message{Role: llm.RoleUser, Content: text})

	resp, err := t.provider.Generate(ctx, llm.Request{
		System:      systemPrompt,
		Messages:    messages,
		MaxTokens:   t.cfg.MaxTokens,
		Temperature: t.cfg.Temperature,
	})
	if err != nil {
		return "", fmt.Errorf("tutor reply: %w", err)
	}

	reply := strings.TrimSpace(resp.Text())
	if reply == "" {
		return "", fmt.Errorf("tutor reply: empty response")
	}

	t.mu.Lock()
	t.history = append(t.history,
		llm.Message{Role: llm.RoleUser, Content: text},
		llm.Message{Role: llm.RoleAssistant, Content: reply},
	)
	t.mu.Unlock()

	return reply, nil
}

// History returns a copy of the full transcript, oldest first.
func (t *Tutor) History() []llm.Message {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([]llm.Message, len(t.history))
	copy(out, t.history)
	return out
}

// Reset clears the transcript, starting a fresh conversation.
func (t *Tutor) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.history = nil
}

// window returns the most recent turns to replay, honoring the cap.
// Caller holds t.mu.
func (t *Tutor) window() []llm.Message {
	hist := t.history
	if t.cfg.MaxHistoryTurns > 0 && len(hist) > t.cfg.MaxHistoryTurns {
		hist = hist[len(hist)-t.cfg.MaxHistoryTurns:]
	}
	out := make([]llm.Message, len(hist), len(hist)+1)
	copy(out, hist)
	return out
}
