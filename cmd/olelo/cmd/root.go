// Package cmd contains all CLI commands for olelo.
package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/f3rmion/olelo/internal/config"
	"github.com/f3rmion/olelo/internal/hawaiian"
	"github.com/f3rmion/olelo/internal/history"
	"github.com/f3rmion/olelo/internal/lexicon"
	"github.com/f3rmion/olelo/internal/tui"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "olelo",
	Short: "Hawaiian pronunciation guide",
	Long: `olelo spells Hawaiian words the way an English reader would say them,
with a "-" between syllables.

  ALOHA       => AH-LOH-HAH
  E KOMO MAI  => EH KOH-MOH MEYE

Vowel pairs such as AI, AU and OU are read as one sound. The okina (') is
kept as written. Words with letters outside the Hawaiian alphabet are
reported as "not a Hawaiian word".

Running 'olelo' without arguments launches the interactive TUI.`,
	SilenceUsage: true,
	RunE:         runTUI,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config directory (default is $HOME/.config/olelo)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "print the unit breakdown to stderr")
	rootCmd.PersistentFlags().Bool("no-fold", false, "do not upper-case input before pronouncing")

	viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	viper.BindPFlag("no_fold", rootCmd.PersistentFlags().Lookup("no-fold"))
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		viper.Set("config_dir", cfgFile)
	} else {
		dir, err := config.GetConfigDir()
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error finding home directory:", err)
			os.Exit(1)
		}
		viper.Set("config_dir", dir)
	}

	viper.SetEnvPrefix("OLELO")
	viper.AutomaticEnv()
}

// getConfigDir returns the configuration directory path.
func getConfigDir() string {
	return viper.GetString("config_dir")
}

// loadConfig reads config.yaml and applies flag and OLELO_* overrides.
func loadConfig() (*config.Config, error) {
	cfg, err := config.LoadOrDefault(getConfigDir())
	if err != nil {
		return nil, err
	}

	if viper.GetBool("no_fold") {
		cfg.FoldCase = false
	}
	if viper.IsSet("history_path") {
		cfg.HistoryPath = viper.GetString("history_path")
	}
	if viper.IsSet("words_file") {
		cfg.WordsFile = viper.GetString("words_file")
	}
	if viper.IsSet("format") {
		cfg.Format = viper.GetString("format")
	}
	if viper.IsSet("workers") {
		cfg.Workers = viper.GetInt("workers")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// loadLexicon returns the sample words plus the configured word file.
func loadLexicon(cfg *config.Config) *lexicon.Lexicon {
	lex := lexicon.Samples()
	if cfg.WordsFile == "" {
		return lex
	}
	if err := lex.LoadFromFile(cfg.WordsFile); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Could not load words: %v\n", err)
	}
	return lex
}

// openHistory opens the configured history store. It returns nil when
// history is disabled or cannot be opened.
func openHistory(cfg *config.Config) *history.Store {
	if cfg.HistoryPath == "" {
		return nil
	}
	store, err := history.Open(cfg.HistoryPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Could not open history: %v\n", err)
		return nil
	}
	return store
}

// prepare applies the case policy to raw input.
func prepare(cfg *config.Config, input string) string {
	if cfg.FoldCase {
		return hawaiian.Fold(input)
	}
	return input
}

// explain writes one line per unit of word.
func explain(w io.Writer, word string) {
	units, err := hawaiian.Segment(word)
	if err != nil {
		fmt.Fprintf(w, "  %v\n", err)
		return
	}
	for _, u := range units {
		kind := "consonant"
		switch {
		case u.Vowel:
			kind = "vowel"
		case u.Text == string(hawaiian.Space):
			kind = "space"
		}
		brk := ""
		if u.Break {
			brk = " " + hawaiian.SyllableBreak
		}
		fmt.Fprintf(w, "  %2d  %-3q %-4s %-9s %s%s\n", u.Index, u.Text, u.Pattern, kind, u.Spelling, brk)
	}
}

// runTUI launches the TUI application.
func runTUI(cmd *cobra.Command, args []string) error {
	if cfgFile == "" {
		if _, err := config.EnsureConfigDir(); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: Could not create config directory: %v\n", err)
		}
	}

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v, using defaults\n", err)
		cfg = config.Default()
	}

	lex := loadLexicon(cfg)
	store := openHistory(cfg)
	if store != nil {
		defer store.Close()
	}

	if err := tui.Run(lex, cfg, store); err != nil {
		return fmt.Errorf("running TUI: %w", err)
	}
	return nil
}
