package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/abhisek/lingua/internal/emotion"
	"github.com/abhisek/lingua/internal/policy"
	"github.com/abhisek/lingua/internal/store"
)

var moodCmd = &cobra.Command{
	Use:   "mood <image-file>",
	Short: "Detect your mood from a face snapshot",
	Long:  "Reads a face image, detects the dominant emotion via Cloud Vision, and records it so the next session adapts its pace.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		img, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("read image: %w", err)
		}

		detector, err := emotion.NewDetector(ctx)
		if err != nil {
			return err
		}
		defer detector.Close()

		label, err := detector.Detect(ctx, img)
		if err != nil {
			return err
		}

		if label == emotion.LabelNone {
			fmt.Println("No face detected. Sessions will run at normal pace.")
			return nil
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

		if err := st.EventRepo().AppendMood(ctx, label.String()); err != nil {
			return fmt.Errorf("record mood: %w", err)
		}

		fmt.Printf("Detected mood: %s\n", label)
		switch {
		case label.IsNegative():
			fmt.Println(policy.ToneSupportive)
		case label.IsPositive():
			fmt.Println(policy.ToneStretch)
		}
		return nil
	},
}
