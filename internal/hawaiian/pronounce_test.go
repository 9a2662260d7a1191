package hawaiian

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPronounce(t *testing.T) {
	tests := []struct {
		word string
		want string
	}{
		{"", ""},
		{"'OE", "'OH-WEH"},
		{"IWA", "EE-VAH"},
		{"KOU", "KOW"},
		{"'AWA", "'AH-WAH"},
		{"KANE", "KAH-NEH"},
		{"KO'U", "KOH'OO"},
		{"ALOHA", "AH-LOH-HAH"},
		{"HUAAI", "HOO-AH-EYE"},
		{"MAKUA", "MAH-KOO-AH"},
		{"BONJOUR", NotHawaiian},
		{"HOALOHA", "HOH-AH-LOH-HAH"},
		{"KAIAPUNI", "KEYE-AH-POO-NEE"},
		{"KAKAHIAKA", "KAH-KAH-HEE-AH-KAH"},
		{"KEIKIKANE", "KAY-KEE-KAH-NEH"},
		{"E KOMO MAI", "EH KOH-MOH MEYE"},
		{"KAMEHAMEHA", "KAH-MEH-HAH-MEH-HAH"},
		{"HUMUHUMUNUKUNUKUAPUA'A", "HOO-MOO-HOO-MOO-NOO-KOO-NOO-KOO-AH-POO-AH'AH"},
		{"aloha", NotHawaiian},
	}

	for _, tt := range tests {
		t.Run(tt.word, func(t *testing.T) {
			assert.Equal(t, tt.want, Pronounce(tt.word))
		})
	}
}

func TestPronounceIsPure(t *testing.T) {
	word := "KAMEHAMEHA"
	first := Pronounce(word)
	assert.Equal(t, first, Pronounce(word))
	assert.Equal(t, "KAMEHAMEHA", word)
}

func TestPronounceConcurrent(t *testing.T) {
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.Equal(t, "AH-LOH-HAH", Pronounce("ALOHA"))
		}()
	}
	wg.Wait()
}

func TestPronounceStrict(t *testing.T) {
	got, err := PronounceStrict("ALOHA")
	require.NoError(t, err)
	assert.Equal(t, "AH-LOH-HAH", got)

	_, err = PronounceStrict("BONJOUR")
	assert.ErrorIs(t, err, ErrNotHawaiian)

	got, err = PronounceStrict("")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestSegment(t *testing.T) {
	units, err := Segment("'AWA")
	require.NoError(t, err)
	require.Len(t, units, 4)

	assert.Equal(t, Unit{Text: "'", Pattern: "'", Spelling: "'", Index: 0}, units[0])
	assert.Equal(t, Unit{Text: "A", Pattern: "A", Spelling: "AH", Index: 1, Vowel: true, Break: true}, units[1])
	assert.Equal(t, Unit{Text: "W", Pattern: "AW", Spelling: "W", Index: 2}, units[2])
	assert.Equal(t, Unit{Text: "A", Pattern: "A", Spelling: "AH", Index: 3, Vowel: true}, units[3])
}

func TestSegmentDigraph(t *testing.T) {
	units, err := Segment("KAI")
	require.NoError(t, err)
	require.Len(t, units, 2)
	assert.Equal(t, "AI", units[1].Text)
	assert.Equal(t, "EYE", units[1].Spelling)
	assert.False(t, units[1].Break)
}

func TestSegmentRunesNoMapping(t *testing.T) {
	units, err := segmentRunes([]rune("KAX"))
	assert.ErrorIs(t, err, ErrNoMapping)
	assert.Contains(t, err.Error(), `"X" at 2`)
	require.Len(t, units, 2)
	assert.Equal(t, "AH", units[1].Spelling)

	_, err = Segment("KAX")
	assert.ErrorIs(t, err, ErrNotHawaiian)
}

func TestSyllables(t *testing.T) {
	tests := []struct {
		word string
		want []string
	}{
		{"ALOHA", []string{"AH", "LOH", "HAH"}},
		{"E KOMO MAI", []string{"EH", "KOH", "MOH", "MEYE"}},
		{"KO'U", []string{"KOH'OO"}},
		{"HOEU", []string{"HOH-WEH", "OO"}},
		{"", nil},
		{"BONJOUR", nil},
	}

	for _, tt := range tests {
		t.Run(tt.word, func(t *testing.T) {
			assert.Equal(t, tt.want, Syllables(tt.word))
		})
	}
}
