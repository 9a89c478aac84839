package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/lingua/internal/speech"
)

var sayCmd = &cobra.Command{
	Use:   "say <text>...",
	Short: "Hear a sentence pronounced",
	Long:  "Synthesizes the given English text to MP3 for pronunciation practice.",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		text := strings.Join(args, " ")

		synth, err := speech.NewSynthesizer(ctx)
		if err != nil {
			return err
		}
		defer synth.Close()

		mp3, err := synth.Synthesize(ctx, text)
		if err != nil {
			return err
		}

		out, _ := cmd.Flags().GetString("out")
		if out == "" {
			out = "lingua-say.mp3"
		}
		if err := os.WriteFile(out, mp3, 0o644); err != nil {
			return fmt.Errorf("write audio: %w", err)
		}
		fmt.Printf("Saved to %s\n", out)
		return nil
	},
}

func init() {
	sayCmd.Flags().String("out", "", "Output MP3 path (default lingua-say.mp3)")
}
