package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/lingua/internal/coach"
	"github.com/abhisek/lingua/internal/emotion"
	"github.com/abhisek/lingua/internal/llm"
	"github.com/abhisek/lingua/internal/roadmap"
	"github.com/abhisek/lingua/internal/store"
	"github.com/abhisek/lingua/internal/tutor"
)

var teachCmd = &cobra.Command{
	Use:   "teach [topic]",
	Short: "Print a short lesson on a curriculum topic",
	Long:  "Generates a standalone lesson on a curriculum topic, pitched at your current level for that topic. Without an argument the first topic on the learning path is used.",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		topic := roadmap.DefaultTopic().Name
		if len(args) == 1 {
			topic = strings.TrimSpace(args[0])
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
		observations, err := eventRepo.TopicResults(ctx, topic, 0)
		if err != nil {
			return err
		}

		mood := emotion.LabelNone
		if label, ok, err := eventRepo.LatestMood(ctx, moodMaxAge); err != nil {
			fmt.Fprintln(os.Stderr, "Could not read recent mood:", err)
		} else if ok {
			mood = emotion.Parse(label)
		}
		rec := coach.Recommend(topic, observations, mood)

		provider, err := llm.NewProviderFromEnv(ctx, eventRepo)
		if err != nil {
			return fmt.Errorf("LLM provider not configured: %w", err)
		}

		lesson, err := tutor.Teach(ctx, provider, tutor.DefaultConfig(), tutor.TeachInput{
			Topic:    rec.Topic,
			Level:    rec.Level,
			Examples: rec.Examples,
		})
		if err != nil {
			return err
		}

		fmt.Printf("%s (level %s)\n\n%s\n", rec.Topic, rec.Level, lesson)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(teachCmd)
}
