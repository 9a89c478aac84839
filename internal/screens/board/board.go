// Package board shows the leaderboard and lets the learner post their
// own XP under a chosen name.
package board

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/lingua/internal/progress"
	"github.com/abhisek/lingua/internal/router"
	"github.com/abhisek/lingua/internal/screen"
	"github.com/abhisek/lingua/internal/ui/components"
	"github.com/abhisek/lingua/internal/ui/layout"
	"github.com/abhisek/lingua/internal/ui/theme"
)

// BoardScreen renders the leaderboard.
type BoardScreen struct {
	ledger   *progress.Ledger
	entering bool
	input    components.TextInput
	errMsg   string
	saved    string
}

var _ screen.Screen = (*BoardScreen)(nil)
var _ screen.KeyHintProvider = (*BoardScreen)(nil)

type savedMsg struct {
	Name string
	Err  error
}

// New creates a leaderboard screen.
func New(ledger *progress.Ledger) *BoardScreen {
	return &BoardScreen{
		ledger: ledger,
		input:  components.NewTextInput("Your name...", 24),
	}
}

func (b *BoardScreen) Init() tea.Cmd {
	return nil
}

func (b *BoardScreen) Title() string {
	return "Leaderboard"
}

func (b *BoardScreen) KeyHints() []layout.KeyHint {
	if b.entering {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Save"},
			{Key: "Esc", Description: "Cancel"},
		}
	}
	return []layout.KeyHint{
		{Key: "A", Description: "Add my score"},
		{Key: "Esc", Description: "Back"},
	}
}

func (b *BoardScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case savedMsg:
		b.entering = false
		if msg.Err != nil {
			b.errMsg = msg.Err.Error()
			return b, nil
		}
		b.errMsg = ""
		b.saved = msg.Name
		return b, nil

	case tea.KeyMsg:
		if b.entering {
			switch msg.String() {
			case "esc":
				b.entering = false
				return b, nil
			case "enter":
				name := strings.TrimSpace(b.input.Value())
				if name == "" {
					return b, nil
				}
				return b, b.save(name)
			}
			var cmd tea.Cmd
			b.input, cmd = b.input.Update(msg)
			return b, cmd
		}

		switch msg.String() {
		case "a", "A":
			b.entering = true
			b.input.Reset()
			return b, b.input.Init()
		case "esc":
			return b, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return b, nil
}

func (b *BoardScreen) save(name string) tea.Cmd {
	ledger := b.ledger
	return func() tea.Msg {
		err := ledger.UpsertBoardEntry(context.Background(), name, ledger.XP())
		return savedMsg{Name: name, Err: err}
	}
}

func (b *BoardScreen) View(width, height int) string {
	var s strings.Builder
	s.WriteString("\n")
	s.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Bold(true).
		Render("Top Learners"))
	s.WriteString("\n\n")

	entries := b.ledger.Board()
	if len(entries) == 0 {
		s.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("No scores yet. Press A to add yours."))
	} else {
		var rows strings.Builder
		for i, e := range entries {
			line := fmt.Sprintf("%2d.  %-24s %6d XP", i+1, e.Name, e.XP)
			style := lipgloss.NewStyle().Foreground(theme.Text)
			if strings.EqualFold(e.Name, b.saved) {
				style = lipgloss.NewStyle().Foreground(theme.Accent).Bold(true)
			}
			rows.WriteString(style.Render(line))
			rows.WriteString("\n")
		}
		s.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, rows.String()))
	}

	s.WriteString("\n")
	s.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("Your total: %d XP", b.ledger.XP())))
	s.WriteString("\n\n")

	if b.entering {
		s.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, "Name: "+b.input.View()))
		s.WriteString("\n")
	}
	if b.errMsg != "" {
		s.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Error).
			Render(b.errMsg))
	}

	return s.String()
}
