package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/f3rmion/olelo/internal/config"
	"github.com/f3rmion/olelo/internal/lexicon"
	"github.com/spf13/cobra"
)

// wordsFileName is the starter word list written by init.
const wordsFileName = "words.yaml"

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize olelo configuration",
	Long: `Initialize olelo configuration in your config directory.

This creates:
  - config.yaml   (case folding, history file, word file, batch defaults)
  - words.yaml    (the sample words with their meanings)

Add your own words to words.yaml to see them in 'olelo samples' and the TUI.`,
	Args: cobra.NoArgs,
	RunE: runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)
	initCmd.Flags().Bool("force", false, "overwrite existing configuration")
}

func runInit(cmd *cobra.Command, args []string) error {
	force, _ := cmd.Flags().GetBool("force")
	configDir := getConfigDir()
	out := cmd.OutOrStdout()

	if _, err := os.Stat(filepath.Join(configDir, config.FileName)); err == nil && !force {
		return fmt.Errorf("config already exists in %s\nUse --force to overwrite", configDir)
	}

	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	fmt.Fprintf(out, "Initializing olelo configuration in %s\n\n", configDir)

	cfg := config.Default()
	cfg.HistoryPath = filepath.Join(configDir, "history.db")
	cfg.WordsFile = filepath.Join(configDir, wordsFileName)

	if err := config.Save(configDir, cfg); err != nil {
		return err
	}
	fmt.Fprintf(out, "  Created %s\n", config.FileName)

	if err := lexicon.Samples().SaveYAML(cfg.WordsFile); err != nil {
		return err
	}
	fmt.Fprintf(out, "  Created %s\n", wordsFileName)

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Configuration initialized!")
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Next steps:")
	fmt.Fprintln(out, "  1. Add words to words.yaml")
	fmt.Fprintln(out, "  2. Run 'olelo pronounce aloha' to try a word")
	fmt.Fprintln(out, "  3. Run 'olelo' to open the interactive TUI")

	return nil
}
