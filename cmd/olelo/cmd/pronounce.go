package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/f3rmion/olelo/internal/config"
	"github.com/f3rmion/olelo/internal/hawaiian"
	"github.com/f3rmion/olelo/internal/history"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var pronounceCmd = &cobra.Command{
	Use:     "pronounce <word>...",
	Aliases: []string{"p"},
	Short:   "Print the pronunciation of Hawaiian words",
	Long: `Print each word followed by its English-phonetic spelling.

Quote phrases to keep their spaces:
  olelo pronounce aloha
  olelo pronounce "e komo mai" kamehameha
  olelo pronounce --explain huaai`,
	Args: cobra.MinimumNArgs(1),
	RunE: runPronounce,
}

var (
	pronounceExplain bool
	pronounceStrict  bool
)

func init() {
	rootCmd.AddCommand(pronounceCmd)
	pronounceCmd.Flags().BoolVarP(&pronounceExplain, "explain", "e", false, "show how each word was split")
	pronounceCmd.Flags().BoolVar(&pronounceStrict, "strict", false, "fail on the first word that is not Hawaiian")
}

func runPronounce(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	store := openHistory(cfg)
	if store != nil {
		defer store.Close()
	}

	return pronounceWords(cmd.Context(), cmd.OutOrStdout(), cfg, store, args, pronounceOptions{
		explain: pronounceExplain,
		strict:  pronounceStrict,
		verbose: viper.GetBool("verbose"),
	})
}

type pronounceOptions struct {
	explain bool
	strict  bool
	verbose bool
}

// pronounceWords writes "WORD => PRONUNCIATION" for each input. store may be nil.
func pronounceWords(ctx context.Context, out io.Writer, cfg *config.Config, store *history.Store, inputs []string, opts pronounceOptions) error {
	for _, input := range inputs {
		word := prepare(cfg, input)

		var pron string
		if opts.strict {
			p, err := hawaiian.PronounceStrict(word)
			if err != nil {
				return err
			}
			pron = p
		} else {
			pron = hawaiian.Pronounce(word)
		}

		fmt.Fprintf(out, "%s => %s\n", word, pron)
		if opts.explain {
			explain(out, word)
		} else if opts.verbose {
			explain(os.Stderr, word)
		}

		if store != nil && word != "" && pron != hawaiian.NotHawaiian {
			if err := store.Record(ctx, word, pron); err != nil {
				fmt.Fprintf(os.Stderr, "Warning: Could not record history: %v\n", err)
			}
		}
	}
	return nil
}
