package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/abhisek/lingua/internal/grammar"
	"github.com/abhisek/lingua/internal/llm"
	"github.com/abhisek/lingua/internal/speech"
	"github.com/abhisek/lingua/internal/store"
	"github.com/abhisek/lingua/internal/tutor"
)

var speakCmd = &cobra.Command{
	Use:   "speak <audio-file>",
	Short: "Talk to the tutor with a voice recording",
	Long:  "Transcribes a short recording, checks it for grammar mistakes, and prints the tutor's reply. Use --out to also save the reply as MP3.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		audio, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("read audio: %w", err)
		}

		transcriber, err := speech.NewTranscriber(ctx)
		if err != nil {
			return err
		}
		defer transcriber.Close()

		transcript, err := transcriber.Transcribe(ctx, audio, args[0])
		if err != nil {
			return err
		}
		if transcript == "" {
			fmt.Println("Could not hear anything in the recording.")
			return nil
		}
		fmt.Printf("You said: %s\n\n", transcript)

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		provider, err := llm.NewProviderFromEnv(ctx, st.EventRepo())
		if err != nil {
			return fmt.Errorf("LLM provider not configured: %w", err)
		}

		corrector := grammar.New(provider, grammar.DefaultConfig())
		if res, err := corrector.Correct(ctx, transcript); err == nil && res.Changed {
			fmt.Printf("Corrected: %s\n", res.Corrected)
			fmt.Printf("Changes:   %s\n\n", grammar.Highlight(res.Original, res.Corrected))
		}

		tut := tutor.New(provider, tutor.DefaultConfig())
		reply, err := tut.Ask(ctx, transcript)
		if err != nil {
			return err
		}
		fmt.Printf("Tutor: %s\n", reply)

		out, _ := cmd.Flags().GetString("out")
		if out == "" {
			return nil
		}

		synth, err := speech.NewSynthesizer(ctx)
		if err != nil {
			return err
		}
		defer synth.Close()

		mp3, err := synth.Synthesize(ctx, reply)
		if err != nil {
			return err
		}
		if err := os.WriteFile(out, mp3, 0o644); err != nil {
			return fmt.Errorf("write audio: %w", err)
		}
		fmt.Printf("Saved reply audio to %s\n", out)
		return nil
	},
}

func init() {
	speakCmd.Flags().String("out", "", "Save the tutor's reply as an MP3 file")
}
