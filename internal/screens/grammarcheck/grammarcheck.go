// Package grammarcheck lets the learner submit a sentence and see the
// corrected version with a word-level diff.
package grammarcheck

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/lingua/internal/grammar"
	"github.com/abhisek/lingua/internal/router"
	"github.com/abhisek/lingua/internal/screen"
	"github.com/abhisek/lingua/internal/ui/components"
	"github.com/abhisek/lingua/internal/ui/layout"
	"github.com/abhisek/lingua/internal/ui/theme"
)

// GrammarScreen is the grammar check form.
type GrammarScreen struct {
	corrector *grammar.Corrector
	input     components.TextInput
	waiting   bool
	result    *grammar.Result
	errMsg    string
}

var _ screen.Screen = (*GrammarScreen)(nil)
var _ screen.KeyHintProvider = (*GrammarScreen)(nil)

type correctionMsg struct {
	Result *grammar.Result
	Err    error
}

// New creates a grammar check screen.
func New(corrector *grammar.Corrector) *GrammarScreen {
	return &GrammarScreen{
		corrector: corrector,
		input:     components.NewTextInput("Type a sentence to check...", 300),
	}
}

func (g *GrammarScreen) Init() tea.Cmd {
	return g.input.Init()
}

func (g *GrammarScreen) Title() string {
	return "Grammar Check"
}

func (g *GrammarScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Check"},
		{Key: "Esc", Description: "Back"},
	}
}

func (g *GrammarScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case correctionMsg:
		g.waiting = false
		if msg.Err != nil {
			g.errMsg = msg.Err.Error()
			return g, nil
		}
		g.result = msg.Result
		return g, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return g, func() tea.Msg { return router.PopScreenMsg{} }
		case "enter":
			if g.waiting {
				return g, nil
			}
			text := strings.TrimSpace(g.input.Value())
			if text == "" {
				return g, nil
			}
			g.waiting = true
			g.errMsg = ""
			g.result = nil
			return g, g.check(text)
		}
	}

	if !g.waiting {
		var cmd tea.Cmd
		g.input, cmd = g.input.Update(msg)
		return g, cmd
	}
	return g, nil
}

func (g *GrammarScreen) check(text string) tea.Cmd {
	corrector := g.corrector
	return func() tea.Msg {
		result, err := corrector.Correct(context.Background(), text)
		return correctionMsg{Result: result, Err: err}
	}
}

func (g *GrammarScreen) View(width, height int) string {
	cw := min(width-8, 80)

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render("  Write an English sentence and I will fix it."))
	b.WriteString("\n\n")
	b.WriteString("  " + g.input.View())
	b.WriteString("\n\n")

	if g.waiting {
		b.WriteString(lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Render("  Checking..."))
		return b.String()
	}

	if g.errMsg != "" {
		b.WriteString(lipgloss.NewStyle().
			Foreground(theme.Error).
			Render(fmt.Sprintf("  Error: %s", g.errMsg)))
		return b.String()
	}

	if g.result != nil {
		if !g.result.Changed {
			b.WriteString(lipgloss.NewStyle().
				Foreground(theme.Success).
				Bold(true).
				Render("  Looks good! No corrections needed."))
			return b.String()
		}

		bodyStyle := lipgloss.NewStyle().Foreground(theme.Text).Width(cw)

		b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Render("  Corrected:"))
		b.WriteString("\n")
		for _, l := range strings.Split(bodyStyle.Render(g.result.Corrected), "\n") {
			b.WriteString("  " + lipgloss.NewStyle().Foreground(theme.Success).Render(l) + "\n")
		}
		b.WriteString("\n")

		b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Render("  Changes:  [removed] (added)"))
		b.WriteString("\n")
		diff := grammar.Highlight(g.result.Original, g.result.Corrected)
		for _, l := range strings.Split(bodyStyle.Render(diff), "\n") {
			b.WriteString("  " + l + "\n")
		}
	}

	return b.String()
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
