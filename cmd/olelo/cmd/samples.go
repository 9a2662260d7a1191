package cmd

import (
	"github.com/f3rmion/olelo/internal/report"
	"github.com/spf13/cobra"
)

var samplesCmd = &cobra.Command{
	Use:   "samples",
	Short: "Pronounce the built-in sample words",
	Long: `Pronounce the built-in sample words, plus any words from the configured
word file, one "WORD => PRONUNCIATION" line each.

The list includes BONJOUR to show how a non-Hawaiian word is reported.`,
	Args: cobra.NoArgs,
	RunE: runSamples,
}

var samplesMeanings bool

func init() {
	rootCmd.AddCommand(samplesCmd)
	samplesCmd.Flags().BoolVarP(&samplesMeanings, "meanings", "m", false, "show the English meaning after each word")
}

func runSamples(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	lex := loadLexicon(cfg)

	w, err := report.NewWriter("text")
	if err != nil {
		return err
	}
	if samplesMeanings {
		if err := w.SetTemplate(report.MeaningTemplate); err != nil {
			return err
		}
	}

	results := make([]report.Result, 0, lex.Size())
	for _, e := range lex.Entries() {
		results = append(results, resultFor(cfg, e))
	}

	return w.Write(cmd.OutOrStdout(), results)
}
