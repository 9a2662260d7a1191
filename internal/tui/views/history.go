package views

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/f3rmion/olelo/internal/history"
	"github.com/mattn/go-runewidth"
)

// HistoryLoadedMsg carries entries read from the history store.
type HistoryLoadedMsg struct {
	Entries []history.Entry
	Err     error
}

// HistoryModel shows the most recent lookups.
type HistoryModel struct {
	store    *history.Store
	limit    int
	entries  []history.Entry
	selected int
	loading  bool
	err      error

	width  int
	height int
}

// NewHistoryModel creates the history view. store may be nil.
func NewHistoryModel(store *history.Store, limit int) HistoryModel {
	return HistoryModel{store: store, limit: limit}
}

// SetSize updates the view dimensions.
func (m *HistoryModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Refresh loads the latest entries from the store.
func (m *HistoryModel) Refresh() tea.Cmd {
	if m.store == nil {
		return nil
	}
	m.loading = true
	store, limit := m.store, m.limit
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		entries, err := store.Recent(ctx, limit)
		return HistoryLoadedMsg{Entries: entries, Err: err}
	}
}

// Update handles messages.
func (m HistoryModel) Update(msg tea.Msg) (HistoryModel, tea.Cmd) {
	switch msg := msg.(type) {
	case HistoryLoadedMsg:
		m.loading = false
		m.err = msg.Err
		if msg.Err == nil {
			m.entries = msg.Entries
			if m.selected >= len(m.entries) {
				m.selected = max(len(m.entries)-1, 0)
			}
		}
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "j", "down":
			if m.selected < len(m.entries)-1 {
				m.selected++
			}
		case "k", "up":
			if m.selected > 0 {
				m.selected--
			}
		case "r":
			cmd := m.Refresh()
			return m, cmd
		case "enter":
			if m.selected < len(m.entries) {
				word := m.entries[m.selected].Word
				return m, func() tea.Msg { return WordSelectedMsg{Word: word} }
			}
		}
	}
	return m, nil
}

// View renders the history list.
func (m HistoryModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("History"))
	b.WriteString("\n\n")

	switch {
	case m.store == nil:
		b.WriteString(mutedStyle.Render("History is disabled."))
		b.WriteString("\n")
		return b.String()
	case m.err != nil:
		b.WriteString(errorStyle.Render("Error: " + m.err.Error()))
		b.WriteString("\n")
	case m.loading:
		b.WriteString(loadingStyle.Render("Loading..."))
		b.WriteString("\n")
	case len(m.entries) == 0:
		b.WriteString(mutedStyle.Render("No lookups yet."))
		b.WriteString("\n")
	}

	wordCol := 0
	for _, e := range m.entries {
		wordCol = max(wordCol, runewidth.StringWidth(e.Word))
	}

	visible := max(m.height-8, 5)
	start := 0
	if m.selected >= visible {
		start = m.selected - visible + 1
	}
	end := min(start+visible, len(m.entries))

	for i := start; i < end; i++ {
		e := m.entries[i]
		line := fmt.Sprintf("%s  %s  %s",
			runewidth.FillRight(e.Word, wordCol),
			e.LastSeen.Local().Format("2006-01-02 15:04"),
			e.Pronunciation)
		if e.Hits > 1 {
			line += fmt.Sprintf("  ×%d", e.Hits)
		}
		if i == m.selected {
			b.WriteString("> ")
			b.WriteString(selectedStyle.Render(line))
		} else {
			b.WriteString("  ")
			b.WriteString(valueStyle.Render(line))
		}
		b.WriteString("\n")
	}

	b.WriteString(helpStyle.Render("j/k: move • enter: pronounce • r: refresh • tab: menu"))
	return b.String()
}
