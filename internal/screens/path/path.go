// Package path renders the learning path: the adaptive recommendation
// for each curriculum topic.
package path

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/lingua/internal/coach"
	"github.com/abhisek/lingua/internal/emotion"
	"github.com/abhisek/lingua/internal/roadmap"
	"github.com/abhisek/lingua/internal/router"
	"github.com/abhisek/lingua/internal/screen"
	"github.com/abhisek/lingua/internal/store"
	"github.com/abhisek/lingua/internal/ui/components"
	"github.com/abhisek/lingua/internal/ui/layout"
	"github.com/abhisek/lingua/internal/ui/theme"
)

const resultsWindow = 20

// PathScreen shows the recommendation for one topic at a time, with
// left/right navigation across the curriculum. Enter starts a practice
// round on the shown topic when a generator is available.
type PathScreen struct {
	eventRepo store.EventRepo
	mood      emotion.Label

	// startQuiz builds the quiz screen for a topic. Nil when no AI
	// provider is configured.
	startQuiz func(topic string) screen.Screen

	topics  []roadmap.Topic
	current int
	rec     *coach.Recommendation
	errMsg  string
}

var _ screen.Screen = (*PathScreen)(nil)
var _ screen.KeyHintProvider = (*PathScreen)(nil)

type recReadyMsg struct {
	Rec coach.Recommendation
	Err error
}

// New creates a path screen starting at the given topic.
func New(eventRepo store.EventRepo, startTopic string, mood emotion.Label, startQuiz func(topic string) screen.Screen) *PathScreen {
	topics := roadmap.AllTopics()
	current := 0
	for i, t := range topics {
		if t.Name == startTopic {
			current = i
			break
		}
	}
	return &PathScreen{
		eventRepo: eventRepo,
		mood:      mood,
		startQuiz: startQuiz,
		topics:    topics,
		current:   current,
	}
}

func (p *PathScreen) Init() tea.Cmd {
	return p.loadRecommendation()
}

func (p *PathScreen) Title() string {
	return "Learning Path"
}

func (p *PathScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{
		{Key: "←→", Description: "Topic"},
	}
	if p.startQuiz != nil {
		hints = append(hints, layout.KeyHint{Key: "Enter", Description: "Practice"})
	}
	return append(hints, layout.KeyHint{Key: "Esc", Description: "Back"})
}

func (p *PathScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case recReadyMsg:
		if msg.Err != nil {
			p.errMsg = msg.Err.Error()
			return p, nil
		}
		p.errMsg = ""
		rec := msg.Rec
		p.rec = &rec
		return p, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "left", "h":
			p.current = (p.current + len(p.topics) - 1) % len(p.topics)
			p.rec = nil
			return p, p.loadRecommendation()
		case "right", "l":
			p.current = (p.current + 1) % len(p.topics)
			p.rec = nil
			return p, p.loadRecommendation()
		case "enter":
			if p.startQuiz != nil {
				topic := p.topics[p.current].Name
				return p, func() tea.Msg {
					return router.PushScreenMsg{Screen: p.startQuiz(topic)}
				}
			}
		case "esc":
			return p, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return p, nil
}

func (p *PathScreen) loadRecommendation() tea.Cmd {
	topic := p.topics[p.current].Name
	mood := p.mood
	repo := p.eventRepo
	return func() tea.Msg {
		observations, err := repo.TopicResults(context.Background(), topic, resultsWindow)
		if err != nil {
			return recReadyMsg{Err: fmt.Errorf("load answer history: %w", err)}
		}
		return recReadyMsg{Rec: coach.Recommend(topic, observations, mood)}
	}
}

func (p *PathScreen) View(width, height int) string {
	if p.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Error).
			Render(fmt.Sprintf("\n\n\n  Error: %s", p.errMsg))
	}
	if p.rec == nil {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("\n\n\n  Checking your progress...")
	}

	rec := p.rec
	cw := min(width-8, 72)

	var b strings.Builder

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Bold(true).
		Render(fmt.Sprintf("%s  (%d/%d)", rec.Topic, p.current+1, len(p.topics))))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("Tier %s: %s", rec.Tier, rec.Description)))
	b.WriteString("\n\n")

	bar := components.NewProgressBar("Mastery", rec.Mastery, true, cw)
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, bar.View()))
	b.WriteString("\n\n")

	stats := fmt.Sprintf("Level: %s    Difficulty: %s", rec.Level, rec.Difficulty)
	if rec.Mood != emotion.LabelNone {
		stats += fmt.Sprintf("    Mood: %s", rec.Mood)
	}
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true).
		Render(stats))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Secondary).
		Render(rec.Message))
	b.WriteString("\n\n")

	if len(rec.Examples) > 0 {
		var ex strings.Builder
		ex.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Render("Examples:"))
		ex.WriteString("\n")
		for _, e := range rec.Examples {
			ex.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Render("  • " + e))
			ex.WriteString("\n")
		}
		block := lipgloss.NewStyle().Width(cw).Render(ex.String())
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, block))
	}

	return b.String()
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
