// Package chat is the free-form conversation screen with the English tutor.
package chat

import (
	"context"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/lingua/internal/llm"
	"github.com/abhisek/lingua/internal/router"
	"github.com/abhisek/lingua/internal/screen"
	"github.com/abhisek/lingua/internal/tutor"
	"github.com/abhisek/lingua/internal/ui/components"
	"github.com/abhisek/lingua/internal/ui/layout"
	"github.com/abhisek/lingua/internal/ui/theme"
)

// ChatScreen renders the tutor transcript with a prompt at the bottom.
type ChatScreen struct {
	tut     *tutor.Tutor
	input   components.TextInput
	waiting bool
	errMsg  string
}

var _ screen.Screen = (*ChatScreen)(nil)
var _ screen.KeyHintProvider = (*ChatScreen)(nil)

type replyMsg struct {
	Err error
}

// New creates a chat screen over an existing tutor session.
func New(tut *tutor.Tutor) *ChatScreen {
	return &ChatScreen{
		tut:   tut,
		input: components.NewTextInput("Ask your English tutor...", 200),
	}
}

func (c *ChatScreen) Init() tea.Cmd {
	return c.input.Init()
}

func (c *ChatScreen) Title() string {
	return "Chat Tutor"
}

func (c *ChatScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Send"},
		{Key: "Esc", Description: "Back"},
	}
}

func (c *ChatScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case replyMsg:
		c.waiting = false
		if msg.Err != nil {
			c.errMsg = msg.Err.Error()
		}
		return c, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return c, func() tea.Msg { return router.PopScreenMsg{} }
		case "enter":
			if c.waiting {
				return c, nil
			}
			text := strings.TrimSpace(c.input.Value())
			if text == "" {
				return c, nil
			}
			c.input.Reset()
			c.waiting = true
			c.errMsg = ""
			return c, c.send(text)
		}
	}

	if !c.waiting {
		var cmd tea.Cmd
		c.input, cmd = c.input.Update(msg)
		return c, cmd
	}
	return c, nil
}

func (c *ChatScreen) send(text string) tea.Cmd {
	tut := c.tut
	return func() tea.Msg {
		_, err := tut.Ask(context.Background(), text)
		return replyMsg{Err: err}
	}
}

func (c *ChatScreen) View(width, height int) string {
	cw := min(width-6, 90)

	var b strings.Builder

	history := c.tut.History()
	if len(history) == 0 {
		b.WriteString(lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Render("  Ask anything about English: grammar, words, phrases, practice.\n"))
	}

	// Show the tail of the transcript that fits above the prompt.
	lines := transcriptLines(history, cw)
	avail := height - 4
	if avail < 1 {
		avail = 1
	}
	if len(lines) > avail {
		lines = lines[len(lines)-avail:]
	}
	for _, line := range lines {
		b.WriteString(line)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if c.errMsg != "" {
		b.WriteString(lipgloss.NewStyle().
			Foreground(theme.Error).
			Render("  " + c.errMsg))
		b.WriteString("\n")
	}
	if c.waiting {
		b.WriteString(lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Render("  Tutor is typing..."))
		b.WriteString("\n")
	}
	b.WriteString("  " + c.input.View())

	return b.String()
}

func transcriptLines(history []llm.Message, width int) []string {
	userStyle := lipgloss.NewStyle().Foreground(theme.Accent).Bold(true)
	tutorStyle := lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true)
	bodyStyle := lipgloss.NewStyle().Foreground(theme.Text).Width(width)

	var lines []string
	for _, m := range history {
		label := tutorStyle.Render("Tutor")
		if m.Role == llm.RoleUser {
			label = userStyle.Render("You")
		}
		lines = append(lines, "  "+label)
		for _, l := range strings.Split(bodyStyle.Render(m.Content), "\n") {
			lines = append(lines, "  "+l)
		}
		lines = append(lines, "")
	}
	return lines
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
