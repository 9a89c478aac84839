// Package placeholder renders a stub screen for features whose
// dependencies are not configured.
package placeholder

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/lingua/internal/router"
	"github.com/abhisek/lingua/internal/screen"
	"github.com/abhisek/lingua/internal/ui/theme"
)

// PlaceholderScreen shows a "not available" message.
type PlaceholderScreen struct {
	name string
}

var _ screen.Screen = (*PlaceholderScreen)(nil)

// New creates a placeholder for the named feature.
func New(name string) *PlaceholderScreen {
	return &PlaceholderScreen{name: name}
}

func (p *PlaceholderScreen) Init() tea.Cmd {
	return nil
}

func (p *PlaceholderScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok && kmsg.String() == "esc" {
		return p, func() tea.Msg { return router.PopScreenMsg{} }
	}
	return p, nil
}

func (p *PlaceholderScreen) View(width, height int) string {
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("\n\n\n" + p.name + " needs an AI provider.\n\nSet LINGUA_GEMINI_API_KEY (or OpenAI/Anthropic)\nand restart.\n\nPress Esc to go back.")
}

func (p *PlaceholderScreen) Title() string {
	return p.name
}
