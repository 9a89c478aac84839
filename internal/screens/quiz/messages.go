package quiz

import (
	"github.com/abhisek/lingua/internal/coach"
	"github.com/abhisek/lingua/internal/quizgen"
)

// roundReadyMsg carries a freshly generated quiz round, or the error
// that prevented it.
type roundReadyMsg struct {
	Rec       coach.Recommendation
	Questions []quizgen.Question
	Err       error
}

// roundSavedMsg reports the result of persisting a finished round.
type roundSavedMsg struct {
	Err error
}

// answerSavedMsg reports the result of persisting a single answer event.
type answerSavedMsg struct {
	Err error
}
