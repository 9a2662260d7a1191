package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/f3rmion/olelo/internal/clipboard"
	"github.com/f3rmion/olelo/internal/llm"
	"github.com/f3rmion/olelo/internal/tui/components"
	"github.com/spf13/cobra"
)

var lookupCmd = &cobra.Command{
	Use:   "lookup <word>",
	Short: "Show pronunciation, syllables and meaning of a word",
	Long: `Look up a Hawaiian word and display its:
  - Pronunciation
  - Syllables
  - How each letter or vowel pair was read
  - Meaning, if the word is in the sample list or word file

With --gloss, a short English gloss is requested from the Anthropic API
(needs ANTHROPIC_API_KEY).

Example:
  olelo lookup aloha
  olelo lookup "e komo mai" --gloss`,
	Args: cobra.MinimumNArgs(1),
	RunE: runLookup,
}

var (
	lookupGloss bool
	lookupCopy  bool
)

func init() {
	rootCmd.AddCommand(lookupCmd)
	lookupCmd.Flags().BoolVarP(&lookupGloss, "gloss", "g", false, "ask the Anthropic API for an English gloss")
	lookupCmd.Flags().BoolVarP(&lookupCopy, "copy", "y", false, "copy the pronunciation to the clipboard")
}

func runLookup(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	lex := loadLexicon(cfg)
	out := cmd.OutOrStdout()

	r := components.Analyze(strings.Join(args, " "), cfg.FoldCase, lex)

	fmt.Fprintf(out, "Word: %s\n", r.Word)
	fmt.Fprintf(out, "  Pronunciation: %s\n", r.Pronunciation)
	if r.Valid {
		fmt.Fprintf(out, "  Syllables: %s\n", strings.Join(r.Syllables, " · "))
		fmt.Fprintln(out, "  Units:")
		explain(out, r.Word)
	}
	if r.Meaning != "" {
		fmt.Fprintf(out, "  Meaning: %s\n", r.Meaning)
	}

	if r.Valid {
		if store := openHistory(cfg); store != nil {
			if err := store.Record(cmd.Context(), r.Word, r.Pronunciation); err != nil {
				fmt.Fprintf(os.Stderr, "Warning: Could not record history: %v\n", err)
			}
			store.Close()
		}
	}

	if lookupCopy && r.Valid {
		if !clipboard.Available() {
			fmt.Fprintln(os.Stderr, "Warning: No clipboard available")
		} else if err := clipboard.Write(r.Pronunciation); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: Could not copy: %v\n", err)
		} else {
			fmt.Fprintln(os.Stderr, "Copied to clipboard")
		}
	}

	if !lookupGloss {
		return nil
	}

	client, err := llm.NewClient()
	if err != nil {
		return err
	}

	fmt.Fprintln(os.Stderr, "Requesting gloss...")
	ctx, cancel := context.WithTimeout(cmd.Context(), 60*time.Second)
	defer cancel()

	gloss, err := client.Gloss(ctx, llm.GlossRequest{
		Word:          r.Word,
		Pronunciation: r.Pronunciation,
		Meaning:       r.Meaning,
	})
	if err != nil {
		return fmt.Errorf("requesting gloss: %w", err)
	}

	fmt.Fprintf(out, "  Gloss: %s\n", gloss)
	return nil
}
