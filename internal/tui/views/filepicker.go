package views

import (
	"os"
	"path/filepath"
	"slices"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// WordFileExtensions are the word list formats the lexicon can load.
var WordFileExtensions = []string{".jsonl", ".yaml", ".yml", ".txt"}

// FileSelectedMsg is sent when a word list is chosen.
type FileSelectedMsg struct {
	Path string
}

var (
	dirStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#4ecdc4")).Bold(true)
	pathStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#666666")).Italic(true)
)

// FileEntry is one row of the listing.
type FileEntry struct {
	Name  string
	IsDir bool
	Path  string
}

// FilePickerModel browses directories for word lists.
type FilePickerModel struct {
	dir        string
	entries    []FileEntry
	extensions []string
	cursor     int
	top        int
	err        error

	width  int
	height int
}

// NewFilePickerModel lists startDir, or the home directory when startDir is
// empty or unreadable. Only files with one of extensions are shown.
func NewFilePickerModel(startDir string, extensions []string) FilePickerModel {
	m := FilePickerModel{extensions: extensions}
	if startDir == "" || !isDir(startDir) {
		startDir = homeDir()
	}
	m.chdir(startDir)
	return m
}

func homeDir() string {
	if home, err := os.UserHomeDir(); err == nil && home != "" {
		return home
	}
	return string(filepath.Separator)
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// SetSize updates the view dimensions.
func (m *FilePickerModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// SetError shows err above the listing.
func (m *FilePickerModel) SetError(err error) {
	m.err = err
}

// Dir returns the directory being listed.
func (m FilePickerModel) Dir() string {
	return m.dir
}

// chdir lists dir: parent first, then subdirectories, then matching files,
// each group sorted case-insensitively. Hidden entries are skipped.
func (m *FilePickerModel) chdir(dir string) {
	m.dir = dir
	m.entries = m.entries[:0]
	m.cursor, m.top = 0, 0
	m.err = nil

	list, err := os.ReadDir(dir)
	if err != nil {
		m.err = err
		return
	}

	if parent := filepath.Dir(dir); parent != dir {
		m.entries = append(m.entries, FileEntry{Name: "..", IsDir: true, Path: parent})
	}

	var dirs, files []FileEntry
	for _, e := range list {
		if strings.HasPrefix(e.Name(), ".") {
			continue
		}
		fe := FileEntry{Name: e.Name(), IsDir: e.IsDir(), Path: filepath.Join(dir, e.Name())}
		switch {
		case fe.IsDir:
			dirs = append(dirs, fe)
		case m.wanted(fe.Name):
			files = append(files, fe)
		}
	}

	byName := func(a, b FileEntry) int {
		return strings.Compare(strings.ToLower(a.Name), strings.ToLower(b.Name))
	}
	slices.SortFunc(dirs, byName)
	slices.SortFunc(files, byName)

	m.entries = append(m.entries, dirs...)
	m.entries = append(m.entries, files...)
}

func (m *FilePickerModel) wanted(name string) bool {
	if len(m.extensions) == 0 {
		return true
	}
	return slices.Contains(m.extensions, strings.ToLower(filepath.Ext(name)))
}

func (m *FilePickerModel) rows() int {
	return max(m.height-8, 5)
}

func (m *FilePickerModel) move(delta int) {
	m.cursor = min(max(m.cursor+delta, 0), max(len(m.entries)-1, 0))
	if m.cursor < m.top {
		m.top = m.cursor
	}
	if m.cursor >= m.top+m.rows() {
		m.top = m.cursor - m.rows() + 1
	}
}

// Update handles messages.
func (m FilePickerModel) Update(msg tea.Msg) (FilePickerModel, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "j", "down":
		m.move(1)
	case "k", "up":
		m.move(-1)
	case "ctrl+d":
		m.move(m.rows() / 2)
	case "ctrl+u":
		m.move(-m.rows() / 2)
	case "g", "home":
		m.move(-len(m.entries))
	case "G", "end":
		m.move(len(m.entries))
	case "backspace", "h":
		if parent := filepath.Dir(m.dir); parent != m.dir {
			m.chdir(parent)
		}
	case "~":
		m.chdir(homeDir())
	case "enter", "l", "right":
		if m.cursor >= len(m.entries) {
			return m, nil
		}
		entry := m.entries[m.cursor]
		if entry.IsDir {
			m.chdir(entry.Path)
			return m, nil
		}
		return m, func() tea.Msg { return FileSelectedMsg{Path: entry.Path} }
	}
	return m, nil
}

// View renders the listing.
func (m FilePickerModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Open Word List"))
	b.WriteString(" ")
	b.WriteString(mutedStyle.Render(strings.Join(m.extensions, " ")))
	b.WriteString("\n\n")
	b.WriteString(pathStyle.Render(m.dir))
	b.WriteString("\n")

	if m.err != nil {
		b.WriteString(errorStyle.Render("Error: " + m.err.Error()))
		b.WriteString("\n")
	}

	b.WriteString(divider(m.width))
	b.WriteString("\n")

	if len(m.entries) == 0 {
		b.WriteString(mutedStyle.Render("  (no word lists found)"))
		b.WriteString("\n")
	}

	end := min(m.top+m.rows(), len(m.entries))
	for i := m.top; i < end; i++ {
		e := m.entries[i]
		label := e.Name
		style := valueStyle
		if e.IsDir {
			label += "/"
			style = dirStyle
		}

		if i == m.cursor {
			b.WriteString("> ")
			b.WriteString(selectedStyle.Render(label))
		} else {
			b.WriteString("  ")
			b.WriteString(style.Render(label))
		}
		b.WriteString("\n")
	}
	if len(m.entries) > m.rows() {
		b.WriteString(mutedStyle.Render("  ↕ more"))
		b.WriteString("\n")
	}

	b.WriteString(divider(m.width))
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("enter: open • backspace: parent • ~: home • tab: menu"))

	return b.String()
}
