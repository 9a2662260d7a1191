package views

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/f3rmion/olelo/internal/clipboard"
	"github.com/f3rmion/olelo/internal/history"
	"github.com/f3rmion/olelo/internal/lexicon"
	"github.com/f3rmion/olelo/internal/llm"
	"github.com/f3rmion/olelo/internal/tui/banner"
	"github.com/f3rmion/olelo/internal/tui/components"
)

type glossResultMsg struct {
	word  string
	gloss string
	err   error
}

// RecordedMsg is sent after a lookup was written to the history store.
type RecordedMsg struct {
	Err error
}

type clearCopiedMsg struct{}

func clearCopiedAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return clearCopiedMsg{}
	})
}

// PronounceModel is the word pronunciation view.
type PronounceModel struct {
	input   textinput.Model
	lexicon *lexicon.Lexicon
	store   *history.Store
	fold    bool
	result  *components.WordResult
	err     error
	copied  bool

	llmClient *llm.Client
	gloss     string
	glossing  bool
	glossErr  error

	width  int
	height int
}

// NewPronounceModel creates the pronounce view. store and llmClient may be nil.
func NewPronounceModel(lex *lexicon.Lexicon, store *history.Store, llmClient *llm.Client, fold bool) PronounceModel {
	ti := textinput.New()
	ti.Placeholder = "Enter a Hawaiian word..."
	ti.Focus()
	ti.CharLimit = 60
	ti.Width = 40
	ti.PromptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#4ecdc4"))
	ti.TextStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#ffe66d"))

	return PronounceModel{
		input:     ti,
		lexicon:   lex,
		store:     store,
		fold:      fold,
		llmClient: llmClient,
	}
}

// SetSize updates the view dimensions.
func (m *PronounceModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// SetWord fills the input with word and pronounces it.
func (m *PronounceModel) SetWord(word string) tea.Cmd {
	m.input.SetValue(word)
	return m.analyze()
}

// Result returns the last analyzed word, or nil.
func (m PronounceModel) Result() *components.WordResult {
	return m.result
}

// Update handles messages.
func (m PronounceModel) Update(msg tea.Msg) (PronounceModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "enter":
			cmd := m.analyze()
			return m, cmd
		case "ctrl+y":
			if m.result != nil && m.result.Valid {
				if !clipboard.Available() {
					m.err = errors.New("no clipboard available")
					return m, nil
				}
				if err := clipboard.Write(m.result.Pronunciation); err != nil {
					m.err = fmt.Errorf("copying: %w", err)
					return m, nil
				}
				m.copied = true
				return m, clearCopiedAfter(2 * time.Second)
			}
			return m, nil
		case "ctrl+g":
			if m.result != nil && !m.glossing {
				if m.llmClient == nil {
					m.glossErr = llm.ErrNoAPIKey
					return m, nil
				}
				m.glossing = true
				m.glossErr = nil
				return m, m.requestGloss(*m.result)
			}
			return m, nil
		}

	case glossResultMsg:
		m.glossing = false
		if m.result == nil || msg.word != m.result.Word {
			return m, nil
		}
		m.gloss = msg.gloss
		m.glossErr = msg.err
		return m, nil

	case RecordedMsg:
		m.err = msg.Err
		return m, nil

	case clearCopiedMsg:
		m.copied = false
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *PronounceModel) analyze() tea.Cmd {
	text := strings.TrimSpace(m.input.Value())
	m.gloss = ""
	m.glossErr = nil
	m.err = nil
	if text == "" {
		m.result = nil
		return nil
	}

	r := components.Analyze(text, m.fold, m.lexicon)
	m.result = &r
	if !r.Valid || m.store == nil {
		return nil
	}

	store := m.store
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return RecordedMsg{Err: store.Record(ctx, r.Word, r.Pronunciation)}
	}
}

func (m PronounceModel) requestGloss(r components.WordResult) tea.Cmd {
	client := m.llmClient
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		gloss, err := client.Gloss(ctx, llm.GlossRequest{
			Word:          r.Word,
			Pronunciation: r.Pronunciation,
			Meaning:       r.Meaning,
		})
		return glossResultMsg{word: r.Word, gloss: gloss, err: err}
	}
}

// View renders the pronounce view.
func (m PronounceModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Pronounce"))
	b.WriteString("\n\n")
	b.WriteString(m.input.View())
	b.WriteString("\n")

	if m.result != nil {
		b.WriteString(m.renderResult(*m.result))
	}

	if m.err != nil {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Error: " + m.err.Error()))
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("enter: pronounce • ctrl+y: copy • ctrl+g: gloss • tab: menu"))

	return b.String()
}

func (m PronounceModel) renderResult(r components.WordResult) string {
	var b strings.Builder

	if r.Valid && banner.Width(r.Word) <= m.width-4 {
		b.WriteString(bannerStyle.Render(banner.Render(r.Word)))
		b.WriteString("\n")
	} else {
		b.WriteString("\n")
	}

	var rows []string
	row := func(label, value string) {
		rows = append(rows, labelStyle.Render(label)+valueStyle.Render(value))
	}

	row("Word", r.Word)
	if r.Valid {
		rows = append(rows, labelStyle.Render("Pronounce")+pronunciationStyle.Render(r.Pronunciation))
		row("Syllables", fmt.Sprintf("%d", len(r.Syllables)))
		rows = append(rows, labelStyle.Render("Units")+renderUnits(r))
	} else {
		rows = append(rows, labelStyle.Render("Pronounce")+errorStyle.Render(r.Pronunciation))
	}
	if r.Meaning != "" {
		row("Meaning", r.Meaning)
	}

	b.WriteString(boxStyle.Render(lipgloss.JoinVertical(lipgloss.Left, rows...)))

	switch {
	case m.glossing:
		b.WriteString("\n")
		b.WriteString(loadingStyle.Render("Asking for a gloss..."))
	case m.glossErr != nil:
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Gloss: " + m.glossErr.Error()))
	case m.gloss != "":
		b.WriteString("\n")
		b.WriteString(glossStyle.Width(min(m.width-4, 60)).Render(m.gloss))
	}

	if m.copied {
		b.WriteString("\n")
		b.WriteString(copiedStyle.Render("Copied to clipboard"))
	}

	return b.String()
}

// renderUnits shows each unit as letters→spelling, vowels and consonants in
// different colors.
func renderUnits(r components.WordResult) string {
	var parts []string
	for _, u := range r.Units {
		if u.Text == " " {
			parts = append(parts, mutedStyle.Render("·"))
			continue
		}
		style := unitConsonantStyle
		if u.Vowel {
			style = unitVowelStyle
		}
		part := style.Render(u.Text) + mutedStyle.Render("→") + valueStyle.Render(u.Spelling)
		if u.Break {
			part += mutedStyle.Render(" |")
		}
		parts = append(parts, part)
	}
	return strings.Join(parts, " ")
}
