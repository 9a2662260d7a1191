package hawaiian

import (
	"errors"
	"fmt"
	"strings"
)

// NotHawaiian is what Pronounce returns for input it cannot read.
const NotHawaiian = "not a Hawaiian word"

// SyllableBreak separates syllables in a pronunciation.
const SyllableBreak = "-"

var (
	// ErrNotHawaiian is returned for words with letters outside the alphabet.
	ErrNotHawaiian = errors.New("not a Hawaiian word")
	// ErrNoMapping is returned when a unit has no table entry. Words that
	// pass MightBeValid always map, so only segmentRunes callers that skip
	// validation can see it.
	ErrNoMapping = errors.New("no pronunciation mapping")
)

// Unit is one resolved piece of a word.
type Unit struct {
	Text     string // Input letters covered by the unit
	Pattern  string // Table key used for the lookup
	Spelling string // English spelling
	Index    int    // Character offset of the unit in the word
	Vowel    bool   // Unit starts with a vowel
	Break    bool   // A syllable break follows the unit
}

// Segment scans word left to right and returns its pronunciation units.
func Segment(word string) ([]Unit, error) {
	if !MightBeValid(word) {
		return nil, fmt.Errorf("%w: %q", ErrNotHawaiian, word)
	}

	return segmentRunes([]rune(word))
}

func segmentRunes(runes []rune) ([]Unit, error) {
	var units []Unit
	for i := 0; i < len(runes); {
		c := runes[i]
		res, err := mapRunes(runes, i)
		if err != nil {
			return units, err
		}
		if !res.Found {
			return units, fmt.Errorf("%w: %q at %d", ErrNoMapping, res.Pattern, i)
		}

		unit := Unit{
			Text:     string(runes[i : i+res.CharsConsumed]),
			Pattern:  res.Pattern,
			Spelling: res.Spelling,
			Index:    i,
			Vowel:    IsVowel(c),
		}
		i += res.CharsConsumed

		// Break after a vowel sound when more is said in the same word.
		if unit.Vowel && i < len(runes) && !IsSpace(runes[i]) && !IsOkina(runes[i]) {
			unit.Break = true
		}
		units = append(units, unit)
	}

	return units, nil
}

// PronounceStrict returns the English-phonetic spelling of word, or an error
// when the word is not Hawaiian or a unit cannot be mapped.
func PronounceStrict(word string) (string, error) {
	units, err := Segment(word)
	if err != nil {
		return "", err
	}
	return join(units), nil
}

// Pronounce returns the English-phonetic spelling of word with syllables
// separated by "-". Input it cannot read yields NotHawaiian.
func Pronounce(word string) string {
	p, err := PronounceStrict(word)
	if err != nil {
		return NotHawaiian
	}
	return p
}

// Syllables returns the syllables of word's pronunciation. Spaces end a
// syllable and are dropped. Returns nil when word cannot be pronounced.
func Syllables(word string) []string {
	units, err := Segment(word)
	if err != nil {
		return nil
	}

	var syllables []string
	var current strings.Builder
	flush := func() {
		if current.Len() > 0 {
			syllables = append(syllables, current.String())
			current.Reset()
		}
	}
	for _, u := range units {
		if u.Text == string(Space) {
			flush()
			continue
		}
		current.WriteString(u.Spelling)
		if u.Break {
			flush()
		}
	}
	flush()

	return syllables
}

func join(units []Unit) string {
	var sb strings.Builder
	for _, u := range units {
		sb.WriteString(u.Spelling)
		if u.Break {
			sb.WriteString(SyllableBreak)
		}
	}
	return sb.String()
}
