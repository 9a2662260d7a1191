package hawaiian

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifierPartitionsCharacters(t *testing.T) {
	for c := rune(0); c < 256; c++ {
		count := 0
		for _, ok := range []bool{IsVowel(c), IsConsonant(c), IsSpace(c)} {
			if ok {
				count++
			}
		}
		assert.LessOrEqual(t, count, 1, "character %q", c)
	}
}

func TestClassifier(t *testing.T) {
	tests := []struct {
		name      string
		c         rune
		vowel     bool
		consonant bool
		space     bool
		okina     bool
	}{
		{"vowel A", 'A', true, false, false, false},
		{"vowel U", 'U', true, false, false, false},
		{"consonant H", 'H', false, true, false, false},
		{"consonant W", 'W', false, true, false, false},
		{"okina", '\'', false, true, false, true},
		{"space", ' ', false, false, true, false},
		{"latin B", 'B', false, false, false, false},
		{"lower case a", 'a', false, false, false, false},
		{"ʻokina letter", 'ʻ', false, false, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.vowel, IsVowel(tt.c))
			assert.Equal(t, tt.consonant, IsConsonant(tt.c))
			assert.Equal(t, tt.space, IsSpace(tt.c))
			assert.Equal(t, tt.okina, IsOkina(tt.c))
		})
	}
}

func TestMightBeValid(t *testing.T) {
	tests := []struct {
		word string
		want bool
	}{
		{"", true},
		{"ALOHA", true},
		{"E KOMO MAI", true},
		{"HUMUHUMUNUKUNUKUAPUA'A", true},
		{"   ", true},
		{"BONJOUR", false},
		{"aloha", false},
		{"ALOHA!", false},
		{"KĀNE", false},
	}

	for _, tt := range tests {
		t.Run(tt.word, func(t *testing.T) {
			assert.Equal(t, tt.want, MightBeValid(tt.word))
		})
	}
}
