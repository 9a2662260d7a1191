package hawaiian

// MightBeValid reports whether word is made up only of Hawaiian vowels,
// consonants and spaces. It says nothing about whether the word exists.
func MightBeValid(word string) bool {
	for _, c := range word {
		if !IsVowel(c) && !IsConsonant(c) && !IsSpace(c) {
			return false
		}
	}
	return true
}
