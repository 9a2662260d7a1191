package components

import (
	"strings"
	"testing"

	"github.com/f3rmion/olelo/internal/hawaiian"
	"github.com/f3rmion/olelo/internal/lexicon"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyze(t *testing.T) {
	r := Analyze("aloha", true, lexicon.Samples())
	assert.Equal(t, "ALOHA", r.Word)
	assert.Equal(t, "AH-LOH-HAH", r.Pronunciation)
	assert.Equal(t, []string{"AH", "LOH", "HAH"}, r.Syllables)
	assert.Equal(t, "love, greeting", r.Meaning)
	assert.True(t, r.Valid)
	assert.Len(t, r.Units, 5)
}

func TestAnalyzeWithoutFolding(t *testing.T) {
	r := Analyze("aloha", false, nil)
	assert.False(t, r.Valid)
	assert.Equal(t, hawaiian.NotHawaiian, r.Pronunciation)
	assert.Empty(t, r.Units)
}

func TestAnalyzeInvalidWordKeepsMeaning(t *testing.T) {
	r := Analyze("BONJOUR", true, lexicon.Samples())
	assert.False(t, r.Valid)
	assert.Equal(t, "hello (French)", r.Meaning)
}

func TestAnalyzeLowerCaseLexicon(t *testing.T) {
	lex := lexicon.New()
	require.NoError(t, lex.LoadJSONL(strings.NewReader(`{"word":"mahalo","meaning":"thanks"}`)))

	r := Analyze("mahalo", true, lex)
	assert.Equal(t, "MAH-HAH-LOH", r.Pronunciation)
	assert.Equal(t, "thanks", r.Meaning)
}
