// Package home is the main menu screen.
package home

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/lingua/internal/emotion"
	"github.com/abhisek/lingua/internal/grammar"
	"github.com/abhisek/lingua/internal/progress"
	"github.com/abhisek/lingua/internal/quizgen"
	"github.com/abhisek/lingua/internal/roadmap"
	"github.com/abhisek/lingua/internal/router"
	"github.com/abhisek/lingua/internal/screen"
	"github.com/abhisek/lingua/internal/screens/board"
	"github.com/abhisek/lingua/internal/screens/chat"
	"github.com/abhisek/lingua/internal/screens/grammarcheck"
	"github.com/abhisek/lingua/internal/screens/path"
	"github.com/abhisek/lingua/internal/screens/placeholder"
	"github.com/abhisek/lingua/internal/screens/quiz"
	"github.com/abhisek/lingua/internal/store"
	"github.com/abhisek/lingua/internal/tutor"
	"github.com/abhisek/lingua/internal/ui/components"
	"github.com/abhisek/lingua/internal/ui/theme"
)

// HomeScreen is the main menu of the application.
type HomeScreen struct {
	menu   components.Menu
	ledger *progress.Ledger
	mood   emotion.Label
	topic  string
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates the home screen with injected dependencies. AI-backed
// entries degrade to a placeholder when their dependency is nil.
func New(generator quizgen.Generator, tut *tutor.Tutor, corrector *grammar.Corrector, eventRepo store.EventRepo, ledger *progress.Ledger, sessionID string, mood emotion.Label) *HomeScreen {
	topic := roadmap.DefaultTopic().Name

	var startQuiz func(string) screen.Screen
	if generator != nil {
		startQuiz = func(t string) screen.Screen {
			return quiz.New(generator, eventRepo, ledger, sessionID, t, mood)
		}
	}

	items := []components.MenuItem{
		{Label: "PRACTICE QUIZ", Action: func() tea.Cmd {
			if startQuiz == nil {
				return pushPlaceholder("Practice Quiz")
			}
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: startQuiz(topic)}
			}
		}},
		{Label: "LEARNING PATH", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{
					Screen: path.New(eventRepo, topic, mood, startQuiz),
				}
			}
		}},
		{Label: "CHAT TUTOR", Action: func() tea.Cmd {
			if tut == nil {
				return pushPlaceholder("Chat Tutor")
			}
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: chat.New(tut)}
			}
		}},
		{Label: "GRAMMAR CHECK", Action: func() tea.Cmd {
			if corrector == nil {
				return pushPlaceholder("Grammar Check")
			}
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: grammarcheck.New(corrector)}
			}
		}},
		{Label: "LEADERBOARD", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: board.New(ledger)}
			}
		}},
		{Label: "EXIT", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	return &HomeScreen{
		menu:   components.NewMenu(items),
		ledger: ledger,
		mood:   mood,
		topic:  topic,
	}
}

func pushPlaceholder(name string) tea.Cmd {
	return func() tea.Msg {
		return router.PushScreenMsg{Screen: placeholder.New(name)}
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	var sections []string

	title := theme.Title.Width(width).Render("L I N G U A")
	subtitle := theme.Subtitle.Width(width).Render("Your adaptive English coach")
	sections = append(sections, title+"\n"+subtitle)

	stats := fmt.Sprintf("✦ %d XP    ★ %d day streak", h.ledger.XP(), h.ledger.StreakDays())
	if h.mood != emotion.LabelNone {
		stats += fmt.Sprintf("    mood: %s", h.mood)
	}
	sections = append(sections, lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Accent).
		Render(stats))

	menuBox := theme.Card.Render(h.menu.View())
	sections = append(sections, lipgloss.PlaceHorizontal(width, lipgloss.Center, menuBox))

	content := strings.Join(sections, "\n\n")
	return lipgloss.PlaceVertical(height, lipgloss.Center, content)
}

func (h *HomeScreen) Title() string {
	return "Home"
}
