package cmd

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/f3rmion/olelo/internal/anki"
	"github.com/f3rmion/olelo/internal/config"
	"github.com/f3rmion/olelo/internal/hawaiian"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var ankiCmd = &cobra.Command{
	Use:   "anki",
	Short: "Work with Anki decks",
	Long:  `Commands for reading Anki .apkg files and adding pronunciations to them.`,
}

var ankiInspectCmd = &cobra.Command{
	Use:   "inspect <file.apkg>",
	Short: "Inspect an Anki deck",
	Long: `Inspect an Anki .apkg file to see its structure:
  - Decks
  - Note types (models) and their fields
  - Sample notes

Example:
  olelo anki inspect hawaiian.apkg`,
	Args: cobra.ExactArgs(1),
	RunE: runAnkiInspect,
}

var ankiAugmentCmd = &cobra.Command{
	Use:   "augment <file.apkg>",
	Short: "Add a pronunciation field to Anki notes",
	Long: `Read an Anki deck, pronounce the Hawaiian word of every note and write a
new deck with the pronunciation in its own field.

Notes whose word is not Hawaiian are left unchanged. The source deck is
never modified.

Examples:
  olelo anki augment hawaiian.apkg
  olelo anki augment hawaiian.apkg --field Front --target Say
  olelo anki augment hawaiian.apkg --dry-run`,
	Args: cobra.ExactArgs(1),
	RunE: runAnkiAugment,
}

var (
	ankiInspectLimit  int
	ankiAugmentField  string
	ankiAugmentTarget string
	ankiAugmentOutput string
	ankiAugmentDryRun bool
)

func init() {
	rootCmd.AddCommand(ankiCmd)
	ankiCmd.AddCommand(ankiInspectCmd)
	ankiCmd.AddCommand(ankiAugmentCmd)

	ankiInspectCmd.Flags().IntVarP(&ankiInspectLimit, "limit", "n", 5, "Number of sample notes to show")

	ankiAugmentCmd.Flags().StringVarP(&ankiAugmentField, "field", "f", "", "Field holding the Hawaiian word (auto-detect if not specified)")
	ankiAugmentCmd.Flags().StringVarP(&ankiAugmentTarget, "target", "t", anki.PronunciationField, "Field to write the pronunciation to")
	ankiAugmentCmd.Flags().StringVarP(&ankiAugmentOutput, "output", "o", "", "Output deck (default <name>.olelo.apkg)")
	ankiAugmentCmd.Flags().BoolVar(&ankiAugmentDryRun, "dry-run", false, "Print pronunciations without writing a deck")
}

func runAnkiInspect(cmd *cobra.Command, args []string) error {
	path := args[0]
	out := cmd.OutOrStdout()

	fmt.Fprintf(out, "Opening: %s\n\n", path)

	pkg, err := anki.OpenPackage(path)
	if err != nil {
		return fmt.Errorf("opening package: %w", err)
	}
	defer pkg.Close()

	fmt.Fprint(out, pkg.Summary())
	fmt.Fprintln(out)

	fmt.Fprintln(out, "Field Details:")
	for _, model := range pkg.SortedModels() {
		fmt.Fprintf(out, "  %s:\n", model.Name)
		for _, field := range model.Fields {
			fmt.Fprintf(out, "    [%d] %s\n", field.Ord, field.Name)
		}
	}
	fmt.Fprintln(out)

	fmt.Fprintf(out, "Sample Notes (first %d):\n", ankiInspectLimit)
	for i, note := range pkg.Notes {
		if i >= ankiInspectLimit {
			break
		}

		modelName := "unknown"
		if model := pkg.GetModel(note); model != nil {
			modelName = model.Name
		}

		fmt.Fprintf(out, "\n  Note %d (Model: %s):\n", note.ID, modelName)
		fieldNames := pkg.GetFieldNames(note)
		for j, value := range note.Fields {
			fieldName := fmt.Sprintf("Field %d", j)
			if j < len(fieldNames) {
				fieldName = fieldNames[j]
			}
			display := anki.StripHTML(value)
			if r := []rune(display); len(r) > 100 {
				display = string(r[:100]) + "..."
			}
			fmt.Fprintf(out, "    %s: %s\n", fieldName, display)
		}
	}

	return nil
}

func runAnkiAugment(cmd *cobra.Command, args []string) error {
	path := args[0]
	errOut := cmd.ErrOrStderr()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	pkg, err := anki.OpenPackage(path)
	if err != nil {
		return fmt.Errorf("opening package: %w", err)
	}
	defer pkg.Close()

	fmt.Fprintf(errOut, "Opened: %s (%d notes)\n", path, len(pkg.Notes))

	source := ankiAugmentField
	if source == "" {
		source = detectHawaiianField(pkg, cfg)
		if source == "" {
			return fmt.Errorf("could not auto-detect a field with Hawaiian words. Use --field to specify")
		}
		fmt.Fprintf(errOut, "Auto-detected Hawaiian field: %s\n", source)
	}
	if strings.EqualFold(source, ankiAugmentTarget) {
		return fmt.Errorf("source and target field are both %q", source)
	}

	verbose := viper.GetBool("verbose")
	out := cmd.OutOrStdout()

	pronounce := func(value string) (string, bool) {
		word := prepare(cfg, value)
		pron, err := hawaiian.PronounceStrict(word)
		if err != nil {
			if verbose {
				fmt.Fprintf(errOut, "Skipping %q: %v\n", value, err)
			}
			return "", false
		}
		if ankiAugmentDryRun || verbose {
			fmt.Fprintf(out, "%s => %s\n", word, pron)
		}
		return pron, true
	}

	if ankiAugmentDryRun {
		n := 0
		for _, note := range pkg.Notes {
			if _, ok := pronounce(anki.StripHTML(pkg.GetFieldValue(note, source))); ok {
				n++
			}
		}
		fmt.Fprintf(errOut, "%d of %d notes would be updated\n", n, len(pkg.Notes))
		return nil
	}

	updated, err := pkg.Augment(source, ankiAugmentTarget, pronounce)
	if err != nil {
		return fmt.Errorf("augmenting notes: %w", err)
	}

	output := ankiAugmentOutput
	if output == "" {
		output = strings.TrimSuffix(path, filepath.Ext(path)) + ".olelo.apkg"
	}
	if err := pkg.SaveAs(output); err != nil {
		return fmt.Errorf("saving package: %w", err)
	}

	fmt.Fprintf(errOut, "Updated %d of %d notes, wrote %s\n", updated, len(pkg.Notes), output)
	return nil
}

// detectHawaiianField returns the field name whose values are most often
// Hawaiian words, looking at the first notes of the deck.
func detectHawaiianField(pkg *anki.Package, cfg *config.Config) string {
	counts := make(map[string]int)
	var order []string

	for i, note := range pkg.Notes {
		if i >= 20 {
			break
		}
		fieldNames := pkg.GetFieldNames(note)
		for j, value := range note.Fields {
			if j >= len(fieldNames) {
				break
			}
			word := prepare(cfg, anki.StripHTML(value))
			if word == "" || !hawaiian.MightBeValid(word) {
				continue
			}
			name := fieldNames[j]
			if _, seen := counts[name]; !seen {
				order = append(order, name)
			}
			counts[name]++
		}
	}

	best := ""
	for _, name := range order {
		if counts[name] > counts[best] {
			best = name
		}
	}
	return best
}
