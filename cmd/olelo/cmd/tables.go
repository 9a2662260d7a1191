package cmd

import (
	"fmt"

	"github.com/f3rmion/olelo/internal/hawaiian"
	"github.com/spf13/cobra"
)

var tablesCmd = &cobra.Command{
	Use:   "tables",
	Short: "Print the letter and vowel-pair spellings",
	Long: `Print the consonant and vowel tables in lookup order.

A W after a vowel is looked up together with that vowel (IW, EW => V).`,
	Args: cobra.NoArgs,
	RunE: runTables,
}

func init() {
	rootCmd.AddCommand(tablesCmd)
}

func runTables(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	fmt.Fprintln(out, "Consonants:")
	for _, m := range hawaiian.ConsonantMappings() {
		fmt.Fprintf(out, "  %-3s %s\n", m.Pattern, m.Spelling)
	}
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Vowels:")
	for _, m := range hawaiian.VowelMappings() {
		fmt.Fprintf(out, "  %-3s %s\n", m.Pattern, m.Spelling)
	}
	return nil
}
