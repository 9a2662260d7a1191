// Package hawaiian converts Hawaiian words into an English-phonetic spelling
// with syllable breaks.
package hawaiian

import "strings"

const (
	// Vowels holds the five Hawaiian vowels.
	Vowels = "AEIOU"
	// Consonants holds the Hawaiian consonants, including the okina.
	Consonants = "'HKLMNPW"

	// Okina is the glottal stop.
	Okina = '\''
	// Space separates words in a phrase.
	Space = ' '
)

// IsVowel reports whether c is a Hawaiian vowel.
func IsVowel(c rune) bool {
	return strings.ContainsRune(Vowels, c)
}

// IsConsonant reports whether c is a Hawaiian consonant. The okina counts.
func IsConsonant(c rune) bool {
	return strings.ContainsRune(Consonants, c)
}

// IsSpace reports whether c is the space character.
func IsSpace(c rune) bool {
	return c == Space
}

// IsOkina reports whether c is the okina.
func IsOkina(c rune) bool {
	return c == Okina
}
