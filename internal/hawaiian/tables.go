package hawaiian

// Mapping pairs a pattern of one or two letters with its English spelling.
type Mapping struct {
	Pattern  string
	Spelling string
}

// consonantMappings maps consonants to English sounds. W sounds like V after
// E or I, so vowel+W digraphs carry their own entries.
var consonantMappings = []Mapping{
	{"'", "'"},
	{"H", "H"},
	{"K", "K"},
	{"L", "L"},
	{"M", "M"},
	{"N", "N"},
	{"P", "P"},
	{"W", "W"},
	{"AW", "W"},
	{"EW", "V"},
	{"IW", "V"},
	{"OW", "W"},
	{"UW", "W"},
}

// vowelMappings maps single vowels and vowel pairs to English sounds.
var vowelMappings = []Mapping{
	{"A", "AH"},
	{"E", "EH"},
	{"I", "EE"},
	{"O", "OH"},
	{"U", "OO"},
	{"AI", "EYE"},
	{"AE", "EYE"},
	{"AO", "OW"},
	{"AU", "OW"},
	{"EI", "AY"},
	{"EU", "EH-OO"},
	{"IU", "EW"},
	{"OE", "OH-WEH"},
	{"OI", "OY"},
	{"OU", "OW"},
	{"UI", "OOEY"},
}

// MapConsonant returns the spelling for a consonant or a vowel followed by W.
// The boolean is false when the pattern has no entry.
func MapConsonant(pattern string) (string, bool) {
	return lookup(consonantMappings, pattern)
}

// MapVowel returns the spelling for a vowel or vowel pair.
// The boolean is false when the pattern has no entry.
func MapVowel(pattern string) (string, bool) {
	return lookup(vowelMappings, pattern)
}

// ConsonantMappings returns a copy of the consonant table in lookup order.
func ConsonantMappings() []Mapping {
	return append([]Mapping(nil), consonantMappings...)
}

// VowelMappings returns a copy of the vowel table in lookup order.
func VowelMappings() []Mapping {
	return append([]Mapping(nil), vowelMappings...)
}

func lookup(table []Mapping, pattern string) (string, bool) {
	for _, m := range table {
		if m.Pattern == pattern {
			return m.Spelling, true
		}
	}
	return "", false
}
