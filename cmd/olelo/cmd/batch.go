package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/f3rmion/olelo/internal/config"
	"github.com/f3rmion/olelo/internal/hawaiian"
	"github.com/f3rmion/olelo/internal/lexicon"
	"github.com/f3rmion/olelo/internal/report"
	"github.com/sourcegraph/conc/iter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var batchCmd = &cobra.Command{
	Use:   "batch <file>",
	Short: "Pronounce every word in a file",
	Long: `Pronounce every word in a word file and write a report.

The file format follows the extension:
  .jsonl        one {"word": ..., "meaning": ...} object per line
  .yaml, .yml   a "words:" list of word/meaning entries
  anything else one word per line, # starts a comment
Use "-" to read one word per line from stdin. Repeated words are reported
once, in the order they first appear.

Examples:
  olelo batch words.txt
  olelo batch words.yaml --format json --output words.json
  cat words.txt | olelo batch - --format csv`,
	Args: cobra.ExactArgs(1),
	RunE: runBatch,
}

var (
	batchOutput    string
	batchTemplate  string
	batchOnlyValid bool
)

func init() {
	rootCmd.AddCommand(batchCmd)
	batchCmd.Flags().StringP("format", "f", "", "output format: "+strings.Join(report.Formats, ", ")+" (default from config)")
	batchCmd.Flags().IntP("workers", "w", 0, "number of concurrent workers (default from config)")
	batchCmd.Flags().StringVarP(&batchOutput, "output", "o", "", "output file (stdout if not specified)")
	batchCmd.Flags().StringVar(&batchTemplate, "template", "", "Go template for text output")
	batchCmd.Flags().BoolVar(&batchOnlyValid, "only-valid", false, "skip words that are not Hawaiian")

	viper.BindPFlag("format", batchCmd.Flags().Lookup("format"))
	viper.BindPFlag("workers", batchCmd.Flags().Lookup("workers"))
}

func runBatch(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	lex := lexicon.New()
	if args[0] == "-" {
		err = lex.LoadText(cmd.InOrStdin())
	} else {
		err = lex.LoadFromFile(args[0])
	}
	if err != nil {
		return err
	}

	w, err := report.NewWriter(cfg.Format)
	if err != nil {
		return err
	}
	if batchTemplate != "" {
		if err := w.SetTemplate(batchTemplate); err != nil {
			return err
		}
	}

	if viper.GetBool("verbose") {
		fmt.Fprintf(os.Stderr, "Pronouncing %d words with %d workers\n", lex.Size(), cfg.Workers)
	}

	results := convertAll(cfg, lex.Entries(), cfg.Workers)
	if batchOnlyValid {
		kept := results[:0]
		for _, r := range results {
			if r.Valid {
				kept = append(kept, r)
			}
		}
		results = kept
	}

	out := cmd.OutOrStdout()
	if batchOutput != "" {
		f, err := os.Create(batchOutput)
		if err != nil {
			return fmt.Errorf("creating output file: %w", err)
		}
		defer f.Close()
		out = f
	}

	if err := w.Write(out, results); err != nil {
		return err
	}

	if batchOutput != "" {
		fmt.Fprintf(os.Stderr, "Wrote %d words to %s\n", len(results), batchOutput)
	}
	return nil
}

// convertAll pronounces entries on up to workers goroutines. Results keep the
// order of entries.
func convertAll(cfg *config.Config, entries []lexicon.Entry, workers int) []report.Result {
	mapper := iter.Mapper[lexicon.Entry, report.Result]{MaxGoroutines: workers}
	return mapper.Map(entries, func(e *lexicon.Entry) report.Result {
		return resultFor(cfg, *e)
	})
}

// resultFor pronounces one lexicon entry.
func resultFor(cfg *config.Config, e lexicon.Entry) report.Result {
	word := prepare(cfg, e.Word)
	r := report.Result{
		Word:          word,
		Pronunciation: hawaiian.Pronounce(word),
		Meaning:       e.Meaning,
		Valid:         hawaiian.MightBeValid(word),
	}
	if r.Valid {
		r.Syllables = hawaiian.Syllables(word)
	}
	return r
}
