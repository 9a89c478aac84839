package quiz

import (
	"context"
	"fmt"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/lingua/internal/coach"
	"github.com/abhisek/lingua/internal/emotion"
	"github.com/abhisek/lingua/internal/progress"
	"github.com/abhisek/lingua/internal/quizgen"
	"github.com/abhisek/lingua/internal/router"
	"github.com/abhisek/lingua/internal/screen"
	"github.com/abhisek/lingua/internal/store"
	"github.com/abhisek/lingua/internal/ui/components"
	"github.com/abhisek/lingua/internal/ui/layout"
)

const questionsPerRound = 5

// resultsWindow caps how much answer history feeds the mastery estimate.
const resultsWindow = 20

type phase int

const (
	phaseLoading phase = iota
	phaseQuestion
	phaseFeedback
	phaseSummary
	phaseError
)

// QuizScreen runs one adaptive practice round for the current topic.
type QuizScreen struct {
	generator quizgen.Generator
	eventRepo store.EventRepo
	ledger    *progress.Ledger
	sessionID string
	topic     string
	mood      emotion.Label

	phase     phase
	rec       coach.Recommendation
	questions []quizgen.Question
	chosen    []int
	current   int
	mc        components.MultiChoice
	saveErr   error
	errMsg    string
}

var _ screen.Screen = (*QuizScreen)(nil)
var _ screen.KeyHintProvider = (*QuizScreen)(nil)

// New creates a quiz screen for the given topic.
func New(generator quizgen.Generator, eventRepo store.EventRepo, ledger *progress.Ledger, sessionID, topic string, mood emotion.Label) *QuizScreen {
	return &QuizScreen{
		generator: generator,
		eventRepo: eventRepo,
		ledger:    ledger,
		sessionID: sessionID,
		topic:     topic,
		mood:      mood,
		phase:     phaseLoading,
	}
}

func (q *QuizScreen) Init() tea.Cmd {
	return q.generateRound(nil)
}

func (q *QuizScreen) Title() string {
	return "Practice Quiz"
}

func (q *QuizScreen) KeyHints() []layout.KeyHint {
	switch q.phase {
	case phaseQuestion:
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Choose"},
			{Key: "Enter", Description: "Answer"},
			{Key: "Esc", Description: "Back"},
		}
	case phaseFeedback:
		return []layout.KeyHint{
			{Key: "any key", Description: "Continue"},
		}
	case phaseSummary:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Practice again"},
			{Key: "Esc", Description: "Back"},
		}
	default:
		return nil
	}
}

func (q *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case roundReadyMsg:
		return q.handleRoundReady(msg)
	case roundSavedMsg:
		q.saveErr = msg.Err
		return q, nil
	case answerSavedMsg:
		if msg.Err != nil {
			q.saveErr = msg.Err
		}
		return q, nil
	case tea.KeyMsg:
		return q.handleKey(msg)
	}
	return q, nil
}

func (q *QuizScreen) handleRoundReady(msg roundReadyMsg) (screen.Screen, tea.Cmd) {
	if msg.Err != nil {
		q.phase = phaseError
		q.errMsg = msg.Err.Error()
		return q, nil
	}
	q.rec = msg.Rec
	q.questions = msg.Questions
	q.chosen = q.chosen[:0]
	q.current = 0
	q.saveErr = nil
	q.phase = phaseQuestion
	q.mc = components.NewMultiChoice(
		q.questions[0].Text, q.questions[0].Options, q.questions[0].AnswerIndex)
	return q, nil
}

func (q *QuizScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch q.phase {
	case phaseError:
		return q, func() tea.Msg { return router.PopScreenMsg{} }

	case phaseFeedback:
		return q.advance()

	case phaseSummary:
		switch msg.String() {
		case "enter":
			q.phase = phaseLoading
			return q, q.generateRound(q.askedTexts())
		case "esc":
			return q, func() tea.Msg { return router.PopScreenMsg{} }
		}
		return q, nil

	case phaseQuestion:
		if msg.String() == "esc" {
			return q, func() tea.Msg { return router.PopScreenMsg{} }
		}
		var cmd tea.Cmd
		q.mc, cmd = q.mc.Update(msg)
		if q.mc.Submitted {
			q.chosen = append(q.chosen, q.mc.ChosenIndex)
			q.phase = phaseFeedback
			return q, q.recordAnswer(q.mc.IsCorrect())
		}
		return q, cmd
	}
	return q, nil
}

// advance moves to the next question or to the round summary.
func (q *QuizScreen) advance() (screen.Screen, tea.Cmd) {
	q.current++
	if q.current >= len(q.questions) {
		q.phase = phaseSummary
		return q, q.saveRound()
	}
	q.phase = phaseQuestion
	next := q.questions[q.current]
	q.mc = components.NewMultiChoice(next.Text, next.Options, next.AnswerIndex)
	return q, nil
}

// generateRound builds a fresh recommendation from the answer history
// and asks the generator for a round, off the UI loop.
func (q *QuizScreen) generateRound(prior []string) tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()

		observations, err := q.eventRepo.TopicResults(ctx, q.topic, resultsWindow)
		if err != nil {
			return roundReadyMsg{Err: fmt.Errorf("load answer history: %w", err)}
		}

		rec := coach.Recommend(q.topic, observations, q.mood)

		questions, err := q.generator.Generate(ctx, quizgen.GenerateInput{
			Topic:          rec.Topic,
			Level:          rec.Level,
			Difficulty:     rec.Difficulty,
			Count:          questionsPerRound,
			PriorQuestions: prior,
		})
		if err != nil {
			return roundReadyMsg{Err: err}
		}
		return roundReadyMsg{Rec: rec, Questions: questions}
	}
}

func (q *QuizScreen) recordAnswer(correct bool) tea.Cmd {
	sessionID, topic := q.sessionID, q.topic
	repo := q.eventRepo
	return func() tea.Msg {
		err := repo.AppendAnswer(context.Background(), store.AnswerEventData{
			SessionID: sessionID,
			Topic:     topic,
			Correct:   correct,
		})
		if err != nil {
			err = fmt.Errorf("record answer: %w", err)
		}
		return answerSavedMsg{Err: err}
	}
}

func (q *QuizScreen) saveRound() tea.Cmd {
	correct := q.correctCount()
	total := len(q.questions)
	ledger := q.ledger
	return func() tea.Msg {
		err := ledger.RecordRound(context.Background(), correct, total)
		return roundSavedMsg{Err: err}
	}
}

func (q *QuizScreen) correctCount() int {
	n := 0
	for _, r := range quizgen.Score(q.chosen, q.questions) {
		n += r
	}
	return n
}

func (q *QuizScreen) askedTexts() []string {
	out := make([]string, 0, len(q.questions))
	for _, question := range q.questions {
		out = append(out, question.Text)
	}
	return out
}
