package hawaiian

import (
	"errors"
	"fmt"
)

// ErrIndexOutOfRange is returned when a scan position falls outside the word.
var ErrIndexOutOfRange = errors.New("index out of range")

// MappingResult is the outcome of resolving one pronunciation unit.
type MappingResult struct {
	Pattern       string // Table key that was looked up
	Spelling      string // English spelling, valid only when Found is true
	Found         bool   // False when the pattern has no table entry
	CharsConsumed int    // Input characters covered by this unit (1 or 2)
}

// HandleSpace returns the mapping for a space.
func HandleSpace() MappingResult {
	return MappingResult{
		Pattern:       string(Space),
		Spelling:      string(Space),
		Found:         true,
		CharsConsumed: 1,
	}
}

// HandleConsonant returns the mapping for the consonant c at word[index].
// A W that follows a vowel is looked up together with that vowel.
func HandleConsonant(c rune, word []rune, index int) MappingResult {
	pattern := string(c)
	if c == 'W' && index > 0 && index <= len(word) && IsVowel(word[index-1]) {
		pattern = string(word[index-1]) + pattern
	}

	spelling, ok := MapConsonant(pattern)
	return MappingResult{
		Pattern:       pattern,
		Spelling:      spelling,
		Found:         ok,
		CharsConsumed: 1,
	}
}

// HandleVowel returns the mapping for the vowel c at word[index]. A vowel pair
// with its own entry wins over the single vowel and consumes both characters.
func HandleVowel(c rune, word []rune, index int) MappingResult {
	if index >= 0 && index+1 < len(word) {
		pair := string(c) + string(word[index+1])
		if spelling, ok := MapVowel(pair); ok {
			return MappingResult{
				Pattern:       pair,
				Spelling:      spelling,
				Found:         true,
				CharsConsumed: 2,
			}
		}
	}

	pattern := string(c)
	spelling, ok := MapVowel(pattern)
	return MappingResult{
		Pattern:       pattern,
		Spelling:      spelling,
		Found:         ok,
		CharsConsumed: 1,
	}
}

// MapUnconsumed resolves the pronunciation unit that starts at the given
// character index of word.
func MapUnconsumed(word string, index int) (MappingResult, error) {
	return mapRunes([]rune(word), index)
}

func mapRunes(word []rune, index int) (MappingResult, error) {
	if index < 0 || index >= len(word) {
		return MappingResult{}, fmt.Errorf("%w: %d", ErrIndexOutOfRange, index)
	}

	c := word[index]
	switch {
	case IsSpace(c):
		return HandleSpace(), nil
	case IsConsonant(c):
		return HandleConsonant(c, word, index), nil
	case IsVowel(c):
		return HandleVowel(c, word, index), nil
	default:
		return MappingResult{Pattern: string(c), CharsConsumed: 1}, nil
	}
}
