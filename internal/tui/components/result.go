// Package components provides shared UI components for the TUI.
package components

import (
	"github.com/f3rmion/olelo/internal/hawaiian"
	"github.com/f3rmion/olelo/internal/lexicon"
)

// WordResult holds the analysis of a word.
type WordResult struct {
	Input         string
	Word          string // Input after case folding
	Pronunciation string
	Syllables     []string
	Units         []hawaiian.Unit
	Meaning       string
	Valid         bool
}

// Analyze pronounces input and gathers everything the views display.
// lex may be nil.
func Analyze(input string, fold bool, lex *lexicon.Lexicon) WordResult {
	word := input
	if fold {
		word = hawaiian.Fold(input)
	}

	r := WordResult{
		Input:         input,
		Word:          word,
		Pronunciation: hawaiian.Pronounce(word),
	}

	units, err := hawaiian.Segment(word)
	if err == nil {
		r.Valid = true
		r.Units = units
		r.Syllables = hawaiian.Syllables(word)
	}

	if lex != nil {
		if e := lex.Lookup(word); e != nil {
			r.Meaning = e.Meaning
		}
	}

	return r
}
