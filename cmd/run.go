package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/abhisek/lingua/internal/app"
	"github.com/abhisek/lingua/internal/emotion"
	"github.com/abhisek/lingua/internal/grammar"
	"github.com/abhisek/lingua/internal/llm"
	"github.com/abhisek/lingua/internal/progress"
	"github.com/abhisek/lingua/internal/quizgen"
	"github.com/abhisek/lingua/internal/store"
	"github.com/abhisek/lingua/internal/tutor"
)

// moodMaxAge is how long a detected emotion keeps influencing difficulty.
const moodMaxAge = 30 * time.Minute

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	eventRepo := st.EventRepo()

	ledger, err := progress.Load(ctx, st.LedgerRepo())
	if err != nil {
		return fmt.Errorf("load progress: %w", err)
	}

	mood := emotion.LabelNone
	if label, ok, err := eventRepo.LatestMood(ctx, moodMaxAge); err != nil {
		fmt.Fprintln(os.Stderr, "Could not read recent mood:", err)
	} else if ok {
		mood = emotion.Parse(label)
	}

	opts := app.Options{
		EventRepo: eventRepo,
		Ledger:    ledger,
		SessionID: uuid.New().String(),
		Mood:      mood,
	}

	provider, err := llm.NewProviderFromEnv(ctx, eventRepo)
	if err != nil {
		fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
		fmt.Fprintln(os.Stderr, "AI features will be unavailable.")
	} else {
		opts.Generator = quizgen.New(provider, quizgen.DefaultConfig())
		opts.Tutor = tutor.New(provider, tutor.DefaultConfig())
		opts.Corrector = grammar.New(provider, grammar.DefaultConfig())
	}

	return app.Run(opts)
}
