package views

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/f3rmion/olelo/internal/history"
	"github.com/f3rmion/olelo/internal/lexicon"
	"github.com/f3rmion/olelo/internal/llm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func key(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "ctrl+g":
		return tea.KeyMsg{Type: tea.KeyCtrlG}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestPronounceSetWord(t *testing.T) {
	m := NewPronounceModel(lexicon.Samples(), nil, nil, true)
	m.SetSize(100, 40)

	cmd := m.SetWord("e komo mai")
	assert.Nil(t, cmd)

	r := m.Result()
	require.NotNil(t, r)
	assert.Equal(t, "E KOMO MAI", r.Word)
	assert.Equal(t, "EH KOH-MOH MEYE", r.Pronunciation)
	assert.Equal(t, "welcome, come in", r.Meaning)

	view := m.View()
	assert.Contains(t, view, "EH KOH-MOH MEYE")
	assert.Contains(t, view, "welcome, come in")
}

func TestPronounceInvalidWord(t *testing.T) {
	m := NewPronounceModel(lexicon.Samples(), nil, nil, true)
	m.SetWord("bonjour")

	r := m.Result()
	require.NotNil(t, r)
	assert.False(t, r.Valid)
	assert.Contains(t, m.View(), "not a Hawaiian word")
}

func TestPronounceEnterUsesInput(t *testing.T) {
	m := NewPronounceModel(nil, nil, nil, true)
	for _, r := range "kane" {
		m, _ = m.Update(key(string(r)))
	}
	m, _ = m.Update(key("enter"))

	require.NotNil(t, m.Result())
	assert.Equal(t, "KAH-NEH", m.Result().Pronunciation)
}

func TestPronounceEmptyInputClearsResult(t *testing.T) {
	m := NewPronounceModel(nil, nil, nil, true)
	m.SetWord("KANE")
	require.NotNil(t, m.Result())

	m.SetWord("   ")
	assert.Nil(t, m.Result())
}

func TestPronounceGlossWithoutClient(t *testing.T) {
	m := NewPronounceModel(nil, nil, nil, true)
	m.SetWord("ALOHA")

	m, cmd := m.Update(key("ctrl+g"))
	assert.Nil(t, cmd)
	assert.ErrorIs(t, m.glossErr, llm.ErrNoAPIKey)
	assert.False(t, m.glossing)
}

func TestPronounceIgnoresStaleGloss(t *testing.T) {
	m := NewPronounceModel(nil, nil, nil, true)
	m.SetWord("ALOHA")

	m, _ = m.Update(glossResultMsg{word: "KANE", gloss: "man"})
	assert.Empty(t, m.gloss)

	m, _ = m.Update(glossResultMsg{word: "ALOHA", gloss: "love"})
	assert.Equal(t, "love", m.gloss)
}

func TestPronounceRecordsHistory(t *testing.T) {
	store, err := history.Open(filepath.Join(t.TempDir(), "history.db"))
	require.NoError(t, err)
	defer store.Close()

	m := NewPronounceModel(nil, store, nil, true)
	cmd := m.SetWord("mahalo")
	require.NotNil(t, cmd)

	msg, ok := cmd().(RecordedMsg)
	require.True(t, ok)
	require.NoError(t, msg.Err)

	h := NewHistoryModel(store, 10)
	loaded, ok := h.Refresh()().(HistoryLoadedMsg)
	require.True(t, ok)
	require.NoError(t, loaded.Err)
	require.Len(t, loaded.Entries, 1)
	assert.Equal(t, "MAHALO", loaded.Entries[0].Word)
	assert.Equal(t, "MAH-HAH-LOH", loaded.Entries[0].Pronunciation)

	h, _ = h.Update(loaded)
	assert.Contains(t, h.View(), "MAH-HAH-LOH")

	_, cmd = h.Update(key("enter"))
	require.NotNil(t, cmd)
	assert.Equal(t, WordSelectedMsg{Word: "MAHALO"}, cmd())
}

func TestHistoryWithoutStore(t *testing.T) {
	h := NewHistoryModel(nil, 10)
	assert.Nil(t, h.Refresh())
	assert.Contains(t, h.View(), "History is disabled.")
}

func TestSamplesNavigation(t *testing.T) {
	m := NewSamplesModel(lexicon.Samples(), true)
	m.SetSize(100, 40)
	assert.Equal(t, "'OE", m.Selected())

	m, _ = m.Update(key("j"))
	m, _ = m.Update(key("j"))
	assert.Equal(t, "KOU", m.Selected())

	m, _ = m.Update(key("k"))
	assert.Equal(t, "IWA", m.Selected())

	m, _ = m.Update(key("G"))
	assert.Equal(t, "HUMUHUMUNUKUNUKUAPUA'A", m.Selected())

	_, cmd := m.Update(key("enter"))
	require.NotNil(t, cmd)
	assert.Equal(t, WordSelectedMsg{Word: "HUMUHUMUNUKUNUKUAPUA'A"}, cmd())
}

func TestSamplesView(t *testing.T) {
	m := NewSamplesModel(lexicon.Samples(), true)
	m.SetSize(120, 40)

	view := m.View()
	assert.Contains(t, view, "17 words")
	assert.Contains(t, view, "KAH-MEH-HAH-MEH-HAH")
	assert.Contains(t, view, "not a Hawaiian word")
}

func TestSamplesReload(t *testing.T) {
	lex := lexicon.New()
	m := NewSamplesModel(lex, true)
	assert.Equal(t, "", m.Selected())
	assert.Contains(t, m.View(), "(lexicon is empty)")

	lex.Add(lexicon.Entry{Word: "MAHALO"})
	m.Reload()
	assert.Equal(t, "MAHALO", m.Selected())
}

func TestSamplesFoldsLowerCaseWords(t *testing.T) {
	lex := lexicon.New()
	require.NoError(t, lex.LoadJSONL(strings.NewReader(`{"word":"mahalo","meaning":"thanks"}`)))

	m := NewSamplesModel(lex, true)
	m.SetSize(120, 40)
	view := m.View()
	assert.Contains(t, view, "mahalo")
	assert.Contains(t, view, "MAH-HAH-LOH")
	assert.Contains(t, view, "thanks")

	strict := NewSamplesModel(lex, false)
	strict.SetSize(120, 40)
	assert.Contains(t, strict.View(), "not a Hawaiian word")
}

func TestFilePickerFiltersWordLists(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"b.yaml", "a.txt", "deck.apkg", "words.jsonl", ".hidden.txt"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), nil, 0o644))
	}
	require.NoError(t, os.Mkdir(filepath.Join(dir, "zdir"), 0o755))

	m := NewFilePickerModel(dir, WordFileExtensions)
	assert.Equal(t, dir, m.Dir())

	var names []string
	for _, e := range m.entries {
		names = append(names, e.Name)
	}
	assert.Equal(t, []string{"..", "zdir", "a.txt", "b.yaml", "words.jsonl"}, names)

	m, _ = m.Update(key("j"))
	m, _ = m.Update(key("j"))
	_, cmd := m.Update(key("enter"))
	require.NotNil(t, cmd)
	assert.Equal(t, FileSelectedMsg{Path: filepath.Join(dir, "a.txt")}, cmd())
}
