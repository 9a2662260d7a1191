package tui

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/f3rmion/olelo/internal/config"
	"github.com/f3rmion/olelo/internal/lexicon"
	"github.com/f3rmion/olelo/internal/tui/views"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func newTestApp(t *testing.T) AppModel {
	t.Helper()
	m := NewApp(lexicon.Samples(), config.Default(), nil)
	next, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	return next.(AppModel)
}

func update(t *testing.T, m AppModel, msg tea.Msg) (AppModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	app, ok := next.(AppModel)
	require.True(t, ok)
	return app, cmd
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func TestDigitsTypeIntoPronounceInput(t *testing.T) {
	m := newTestApp(t)

	m, cmd := update(t, m, runes("2"))
	assert.Equal(t, ViewPronounce, m.CurrentView())
	assert.False(t, isQuit(cmd))

	m, cmd = update(t, m, runes("q"))
	assert.Equal(t, ViewPronounce, m.CurrentView())
	assert.False(t, isQuit(cmd))
}

func TestSidebarShortcuts(t *testing.T) {
	m := newTestApp(t)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	require.True(t, m.sidebarActive)

	m, _ = update(t, m, runes("2"))
	assert.Equal(t, ViewSamples, m.CurrentView())
	assert.False(t, m.sidebarActive)

	// Outside the pronounce view shortcuts work without the sidebar.
	m, _ = update(t, m, runes("4"))
	assert.Equal(t, ViewFilePicker, m.CurrentView())

	_, cmd := update(t, m, runes("q"))
	assert.True(t, isQuit(cmd))
}

func TestSidebarNavigation(t *testing.T) {
	m := newTestApp(t)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	m, _ = update(t, m, runes("j"))
	m, _ = update(t, m, runes("j"))
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	assert.Equal(t, ViewHistory, m.CurrentView())
	assert.Equal(t, 2, m.selectedMenu)
}

func TestCtrlCAlwaysQuits(t *testing.T) {
	m := newTestApp(t)
	_, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyCtrlC})
	assert.True(t, isQuit(cmd))
}

func TestHelpOverlay(t *testing.T) {
	m := newTestApp(t)
	m, _ = update(t, m, runes("2"))
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	m, _ = update(t, m, runes("?"))
	require.True(t, m.showHelp)
	assert.Contains(t, m.View(), "Press any key to close")

	m, _ = update(t, m, runes("x"))
	assert.False(t, m.showHelp)
}

func TestWordSelectedPronounces(t *testing.T) {
	m := newTestApp(t)
	m, _ = update(t, m, ViewSwitchMsg{View: ViewSamples})
	require.Equal(t, ViewSamples, m.CurrentView())

	m, _ = update(t, m, views.WordSelectedMsg{Word: "ALOHA"})
	assert.Equal(t, ViewPronounce, m.CurrentView())

	r := m.pronounceView.Result()
	require.NotNil(t, r)
	assert.Equal(t, "AH-LOH-HAH", r.Pronunciation)
	assert.Contains(t, m.View(), "AH-LOH-HAH")
}

func TestWordsLoadedMergesIntoLexicon(t *testing.T) {
	m := newTestApp(t)
	before := m.lexicon.Size()

	loaded := lexicon.New()
	loaded.Add(lexicon.Entry{Word: "MAHALO", Meaning: "thanks"})
	loaded.Add(lexicon.Entry{Word: "ALOHA", Meaning: "love"})

	m, _ = update(t, m, WordsLoadedMsg{Lexicon: loaded, Path: "/tmp/words.yaml"})
	assert.Equal(t, ViewSamples, m.CurrentView())
	assert.Equal(t, before+1, m.lexicon.Size())
	assert.Equal(t, "Loaded 2 words from words.yaml", m.status)
	assert.False(t, m.statusErr)
}

func TestWordsLoadedError(t *testing.T) {
	m := newTestApp(t)
	m, _ = update(t, m, WordsLoadedMsg{Path: "/tmp/bad.jsonl", Err: errors.New("boom")})

	assert.True(t, m.statusErr)
	assert.Contains(t, m.status, "bad.jsonl")
}

func TestViewBeforeResize(t *testing.T) {
	m := NewApp(nil, nil, nil)
	assert.Equal(t, "Loading...", m.View())
	assert.Equal(t, lexicon.Samples().Size(), m.lexicon.Size())
}
