package tui

import (
	"fmt"
	"path/filepath"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/f3rmion/olelo/internal/config"
	"github.com/f3rmion/olelo/internal/history"
	"github.com/f3rmion/olelo/internal/lexicon"
	"github.com/f3rmion/olelo/internal/llm"
	"github.com/f3rmion/olelo/internal/tui/views"
)

// ViewType represents the current active view
type ViewType int

const (
	ViewPronounce ViewType = iota
	ViewSamples
	ViewHistory
	ViewFilePicker
)

// historyLimit is how many entries the history view shows.
const historyLimit = 50

// MenuItem represents a sidebar menu entry
type MenuItem struct {
	Label    string
	View     ViewType
	Shortcut string
}

// ViewSwitchMsg requests a view change
type ViewSwitchMsg struct {
	View ViewType
}

// WordsLoadedMsg is sent when a word list file has been read.
type WordsLoadedMsg struct {
	Lexicon *lexicon.Lexicon
	Path    string
	Err     error
}

// AppModel is the main TUI model
type AppModel struct {
	lexicon *lexicon.Lexicon
	config  *config.Config
	store   *history.Store

	// Layout state
	width        int
	height       int
	sidebarWidth int
	ready        bool

	// Navigation
	currentView   ViewType
	menuItems     []MenuItem
	selectedMenu  int
	sidebarActive bool

	pronounceView  views.PronounceModel
	samplesView    views.SamplesModel
	historyView    views.HistoryModel
	filePickerView views.FilePickerModel

	status    string
	statusErr bool
	showHelp  bool
}

// NewApp creates the TUI application. store may be nil to disable history.
func NewApp(lex *lexicon.Lexicon, cfg *config.Config, store *history.Store) AppModel {
	if cfg == nil {
		cfg = config.Default()
	}
	if lex == nil {
		lex = lexicon.Samples()
	}

	// The gloss key reports the missing key when the client is nil.
	llmClient, _ := llm.NewClient()

	startDir := ""
	if cfg.WordsFile != "" {
		startDir = filepath.Dir(cfg.WordsFile)
	}

	return AppModel{
		lexicon:      lex,
		config:       cfg,
		store:        store,
		sidebarWidth: 18,
		currentView:  ViewPronounce,
		menuItems: []MenuItem{
			{Label: "Pronounce", View: ViewPronounce, Shortcut: "1"},
			{Label: "Samples", View: ViewSamples, Shortcut: "2"},
			{Label: "History", View: ViewHistory, Shortcut: "3"},
			{Label: "Open Words", View: ViewFilePicker, Shortcut: "4"},
		},

		pronounceView:  views.NewPronounceModel(lex, store, llmClient, cfg.FoldCase),
		samplesView:    views.NewSamplesModel(lex, cfg.FoldCase),
		historyView:    views.NewHistoryModel(store, historyLimit),
		filePickerView: views.NewFilePickerModel(startDir, views.WordFileExtensions),
	}
}

// Init initializes the model
func (m AppModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}

		// Help overlay - any key closes it
		if m.showHelp {
			m.showHelp = false
			return m, nil
		}

		switch msg.String() {
		case "tab":
			m.sidebarActive = !m.sidebarActive
			return m, nil
		case "esc":
			if m.sidebarActive {
				return m, tea.Quit
			}
			m.sidebarActive = true
			return m, nil
		}

		// Single-letter keys belong to the text input while it has focus.
		if m.sidebarActive || m.currentView != ViewPronounce {
			switch msg.String() {
			case "q":
				return m, tea.Quit
			case "?":
				m.showHelp = true
				return m, nil
			case "1", "2", "3", "4":
				idx := int(msg.String()[0] - '1')
				return m.switchTo(m.menuItems[idx].View)
			}
		}

		if m.sidebarActive {
			switch msg.String() {
			case "j", "down":
				if m.selectedMenu < len(m.menuItems)-1 {
					m.selectedMenu++
				}
				return m, nil
			case "k", "up":
				if m.selectedMenu > 0 {
					m.selectedMenu--
				}
				return m, nil
			case "enter", "l", "right":
				return m.switchTo(m.menuItems[m.selectedMenu].View)
			}
			return m, nil
		}

		return m.updateCurrent(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true

		contentWidth := m.width - m.sidebarWidth - 4
		contentHeight := m.height - 2

		m.pronounceView.SetSize(contentWidth, contentHeight)
		m.samplesView.SetSize(contentWidth, contentHeight)
		m.historyView.SetSize(contentWidth, contentHeight)
		m.filePickerView.SetSize(contentWidth, contentHeight)
		return m, nil

	case ViewSwitchMsg:
		return m.switchTo(msg.View)

	case views.WordSelectedMsg:
		m, _ = m.switchTo(ViewPronounce)
		cmd := m.pronounceView.SetWord(msg.Word)
		return m, cmd

	case views.FileSelectedMsg:
		return m, loadWords(msg.Path)

	case WordsLoadedMsg:
		if msg.Err != nil {
			m.filePickerView.SetError(msg.Err)
			m.setStatus(fmt.Sprintf("Could not load %s", filepath.Base(msg.Path)), true)
			return m, nil
		}
		for _, e := range msg.Lexicon.Entries() {
			m.lexicon.Add(e)
		}
		m.samplesView.Reload()
		m.setStatus(fmt.Sprintf("Loaded %d words from %s", msg.Lexicon.Size(), filepath.Base(msg.Path)), false)
		return m.switchTo(ViewSamples)

	case views.RecordedMsg:
		var cmd tea.Cmd
		m.pronounceView, cmd = m.pronounceView.Update(msg)
		if m.currentView == ViewHistory {
			refresh := m.historyView.Refresh()
			return m, tea.Batch(cmd, refresh)
		}
		return m, cmd

	case views.HistoryLoadedMsg:
		var cmd tea.Cmd
		m.historyView, cmd = m.historyView.Update(msg)
		return m, cmd
	}

	// Other asynchronous results (blink, gloss, copy timers) go to the
	// pronounce view whichever view is showing.
	var cmd tea.Cmd
	m.pronounceView, cmd = m.pronounceView.Update(msg)
	return m, cmd
}

func (m AppModel) updateCurrent(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.currentView {
	case ViewPronounce:
		m.pronounceView, cmd = m.pronounceView.Update(msg)
	case ViewSamples:
		m.samplesView, cmd = m.samplesView.Update(msg)
	case ViewHistory:
		m.historyView, cmd = m.historyView.Update(msg)
	case ViewFilePicker:
		m.filePickerView, cmd = m.filePickerView.Update(msg)
	}
	return m, cmd
}

func (m AppModel) switchTo(v ViewType) (AppModel, tea.Cmd) {
	m.currentView = v
	m.sidebarActive = false
	for i, item := range m.menuItems {
		if item.View == v {
			m.selectedMenu = i
			break
		}
	}
	if v == ViewHistory {
		cmd := m.historyView.Refresh()
		return m, cmd
	}
	return m, nil
}

func (m *AppModel) setStatus(s string, isErr bool) {
	m.status = s
	m.statusErr = isErr
}

// loadWords reads a word list into a fresh lexicon asynchronously
func loadWords(path string) tea.Cmd {
	return func() tea.Msg {
		lex := lexicon.New()
		err := lex.LoadFromFile(path)
		return WordsLoadedMsg{Lexicon: lex, Path: path, Err: err}
	}
}

// CurrentView returns the active view.
func (m AppModel) CurrentView() ViewType {
	return m.currentView
}

// View renders the UI
func (m AppModel) View() string {
	if !m.ready {
		return "Loading..."
	}

	if m.showHelp {
		return m.renderHelp()
	}

	sidebar := m.renderSidebar()

	var content string
	switch m.currentView {
	case ViewPronounce:
		content = m.pronounceView.View()
	case ViewSamples:
		content = m.samplesView.View()
	case ViewHistory:
		content = m.historyView.View()
	case ViewFilePicker:
		content = m.filePickerView.View()
	}

	if m.status != "" {
		style := StatusStyle
		if m.statusErr {
			style = StatusErrorStyle
		}
		content += "\n" + style.Render(m.status)
	}

	contentWidth := m.width - m.sidebarWidth - 4
	mainContent := ContentStyle.
		Width(contentWidth).
		Height(m.height - 2).
		Render(content)

	return lipgloss.JoinHorizontal(lipgloss.Top, sidebar, mainContent)
}

// renderSidebar renders the sidebar navigation
func (m AppModel) renderSidebar() string {
	var items []string

	items = append(items, SidebarTitleStyle.Render("  ʻŌLELO  "))
	items = append(items, "")

	for i, item := range m.menuItems {
		label := item.Shortcut + ". " + item.Label

		var style lipgloss.Style
		if i == m.selectedMenu {
			if m.sidebarActive {
				style = SidebarItemActiveStyle
			} else {
				// Current view, not focused
				style = SidebarItemStyle.Bold(true).Foreground(ColorSecondary)
			}
		} else {
			style = SidebarItemStyle
		}

		items = append(items, style.Render(label))
	}

	items = append(items, "")
	items = append(items, SidebarItemStyle.Render(fmt.Sprintf("%d words", m.lexicon.Size())))

	usedHeight := len(items) + 4
	for i := 0; i < m.height-usedHeight-2; i++ {
		items = append(items, "")
	}

	items = append(items, SidebarHelpStyle.Render("? Help  q Quit"))

	content := lipgloss.JoinVertical(lipgloss.Left, items...)

	return SidebarStyle.
		Width(m.sidebarWidth).
		Height(m.height - 2).
		Render(content)
}

// renderHelp renders the help overlay
func (m AppModel) renderHelp() string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorPrimary).
		MarginBottom(1)

	sectionStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorSecondary).
		MarginTop(1)

	keyStyle := lipgloss.NewStyle().
		Foreground(ColorAccent).
		Width(12)

	descStyle := lipgloss.NewStyle().
		Foreground(ColorText)

	helpText := titleStyle.Render("olelo - Hawaiian pronunciation") + "\n\n"

	helpText += sectionStyle.Render("Global Keys") + "\n"
	helpText += keyStyle.Render("1-4") + descStyle.Render("Switch views") + "\n"
	helpText += keyStyle.Render("tab") + descStyle.Render("Toggle sidebar focus") + "\n"
	helpText += keyStyle.Render("?") + descStyle.Render("Show this help") + "\n"
	helpText += keyStyle.Render("q") + descStyle.Render("Quit") + "\n"

	helpText += sectionStyle.Render("Pronounce View") + "\n"
	helpText += keyStyle.Render("enter") + descStyle.Render("Pronounce the word") + "\n"
	helpText += keyStyle.Render("ctrl+y") + descStyle.Render("Copy pronunciation") + "\n"
	helpText += keyStyle.Render("ctrl+g") + descStyle.Render("Ask for a gloss") + "\n"

	helpText += sectionStyle.Render("Samples / History") + "\n"
	helpText += keyStyle.Render("j/k ↑/↓") + descStyle.Render("Move") + "\n"
	helpText += keyStyle.Render("enter") + descStyle.Render("Pronounce selected") + "\n"
	helpText += keyStyle.Render("r") + descStyle.Render("Refresh history") + "\n"

	helpText += sectionStyle.Render("Open Words") + "\n"
	helpText += keyStyle.Render("enter") + descStyle.Render("Load file/enter dir") + "\n"
	helpText += keyStyle.Render("backspace") + descStyle.Render("Go to parent dir") + "\n"
	helpText += keyStyle.Render("~") + descStyle.Render("Go to home dir") + "\n"

	helpText += "\n" + lipgloss.NewStyle().
		Foreground(ColorMuted).
		Italic(true).
		Render("Press any key to close")

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorSecondary).
		Padding(1, 2).
		Width(50)

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, boxStyle.Render(helpText))
}

// Run starts the TUI in the alternate screen.
func Run(lex *lexicon.Lexicon, cfg *config.Config, store *history.Store) error {
	p := tea.NewProgram(NewApp(lex, cfg, store), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
