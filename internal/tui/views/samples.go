package views

import (
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/f3rmion/olelo/internal/hawaiian"
	"github.com/f3rmion/olelo/internal/lexicon"
	"github.com/mattn/go-runewidth"
)

// WordSelectedMsg is sent when a word is chosen from a list.
type WordSelectedMsg struct {
	Word string
}

type sampleRow struct {
	word          string
	pronunciation string
	meaning       string
}

// SamplesModel lists the lexicon words with their pronunciations.
type SamplesModel struct {
	lexicon  *lexicon.Lexicon
	fold     bool
	rows     []sampleRow
	selected int
	offset   int

	width  int
	height int
}

// NewSamplesModel creates the samples view over lex. With fold set, words are
// upper-cased before they are pronounced.
func NewSamplesModel(lex *lexicon.Lexicon, fold bool) SamplesModel {
	m := SamplesModel{lexicon: lex, fold: fold}
	m.Reload()
	return m
}

// Reload rebuilds the rows from the lexicon.
func (m *SamplesModel) Reload() {
	m.rows = m.rows[:0]
	if m.lexicon != nil {
		for _, e := range m.lexicon.Entries() {
			word := e.Word
			if m.fold {
				word = hawaiian.Fold(word)
			}
			m.rows = append(m.rows, sampleRow{
				word:          e.Word,
				pronunciation: hawaiian.Pronounce(word),
				meaning:       e.Meaning,
			})
		}
	}
	if m.selected >= len(m.rows) {
		m.selected = max(len(m.rows)-1, 0)
	}
	m.adjustScroll()
}

// SetSize updates the view dimensions.
func (m *SamplesModel) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.adjustScroll()
}

// Selected returns the highlighted word, or "" when the list is empty.
func (m SamplesModel) Selected() string {
	if m.selected < len(m.rows) {
		return m.rows[m.selected].word
	}
	return ""
}

// Update handles messages.
func (m SamplesModel) Update(msg tea.Msg) (SamplesModel, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "j", "down":
		if m.selected < len(m.rows)-1 {
			m.selected++
		}
	case "k", "up":
		if m.selected > 0 {
			m.selected--
		}
	case "g", "home":
		m.selected = 0
	case "G", "end":
		m.selected = max(len(m.rows)-1, 0)
	case "enter":
		if word := m.Selected(); word != "" {
			return m, func() tea.Msg { return WordSelectedMsg{Word: word} }
		}
	}
	m.adjustScroll()
	return m, nil
}

func (m *SamplesModel) visibleHeight() int {
	return max(m.height-8, 5)
}

func (m *SamplesModel) adjustScroll() {
	h := m.visibleHeight()
	if m.selected < m.offset {
		m.offset = m.selected
	}
	if m.selected >= m.offset+h {
		m.offset = m.selected - h + 1
	}
}

// View renders the samples list.
func (m SamplesModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Samples"))
	b.WriteString(" ")
	b.WriteString(mutedStyle.Render(plural(len(m.rows), "word")))
	b.WriteString("\n\n")

	if len(m.rows) == 0 {
		b.WriteString(mutedStyle.Render("  (lexicon is empty)"))
		b.WriteString("\n")
		return b.String()
	}

	wordCol, pronCol := 0, 0
	for _, r := range m.rows {
		wordCol = max(wordCol, runewidth.StringWidth(r.word))
		pronCol = max(pronCol, runewidth.StringWidth(r.pronunciation))
	}

	b.WriteString(divider(m.width))
	b.WriteString("\n")

	end := min(m.offset+m.visibleHeight(), len(m.rows))
	for i := m.offset; i < end; i++ {
		r := m.rows[i]
		line := runewidth.FillRight(r.word, wordCol) + "  " +
			runewidth.FillRight(r.pronunciation, pronCol)
		if r.meaning != "" {
			line += "  " + r.meaning
		}
		if m.width > 8 {
			line = runewidth.Truncate(line, m.width-6, "…")
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

	b.WriteString(divider(m.width))
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("j/k: move • enter: pronounce • tab: menu"))

	return b.String()
}

func plural(n int, noun string) string {
	if n == 1 {
		return "1 " + noun
	}
	return strconv.Itoa(n) + " " + noun + "s"
}
