package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/lingua/internal/coach"
	"github.com/abhisek/lingua/internal/emotion"
	"github.com/abhisek/lingua/internal/progress"
	"github.com/abhisek/lingua/internal/roadmap"
	"github.com/abhisek/lingua/internal/store"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show learning statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		ledger, err := progress.Load(ctx, st.LedgerRepo())
		if err != nil {
			return err
		}

		fmt.Printf("XP: %d    Streak: %d days\n\n", ledger.XP(), ledger.StreakDays())
		fmt.Printf("%-32s %-5s %-8s %-6s %s\n", "Topic", "Tier", "Mastery", "Level", "Difficulty")

		eventRepo := st.EventRepo()
		for _, topic := range roadmap.AllTopics() {
			observations, err := eventRepo.TopicResults(ctx, topic.Name, 0)
			if err != nil {
				return err
			}
			if len(observations) == 0 {
				continue
			}
			rec := coach.Recommend(topic.Name, observations, emotion.LabelNone)
			fmt.Printf("%-32s %-5s %-8.2f %-6s %s\n",
				rec.Topic, rec.Tier, rec.Mastery, rec.Level, rec.Difficulty)
		}

		if board := ledger.Board(); len(board) > 0 {
			fmt.Println("\nLeaderboard:")
			for i, e := range board {
				fmt.Printf("  %2d. %-24s %6d XP\n", i+1, e.Name, e.XP)
			}
		}
		return nil
	},
}
