// Package lexicon holds Hawaiian words with their English meanings.
package lexicon

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/f3rmion/olelo/internal/hawaiian"
	"gopkg.in/yaml.v3"
)

// Entry is a single word in the lexicon.
type Entry struct {
	Word    string `json:"word" yaml:"word"`
	Meaning string `json:"meaning,omitempty" yaml:"meaning,omitempty"`
}

// Lexicon holds words in insertion order with lookup by word.
type Lexicon struct {
	entries map[string]*Entry
	order   []string
}

// New creates an empty lexicon.
func New() *Lexicon {
	return &Lexicon{
		entries: make(map[string]*Entry),
	}
}

// Samples returns a lexicon of well-known words, plus one that is not
// Hawaiian at all.
func Samples() *Lexicon {
	l := New()
	for _, e := range samples {
		l.Add(e)
	}
	return l
}

var samples = []Entry{
	{"'OE", "you (singular)"},
	{"IWA", "frigatebird"},
	{"KOU", "your"},
	{"'AWA", "kava"},
	{"KANE", "man, husband"},
	{"KO'U", "my"},
	{"ALOHA", "love, greeting"},
	{"HUAAI", "fruit"},
	{"MAKUA", "parent"},
	{"BONJOUR", "hello (French)"},
	{"HOALOHA", "friend"},
	{"KAIAPUNI", "environment"},
	{"KAKAHIAKA", "morning"},
	{"KEIKIKANE", "boy"},
	{"E KOMO MAI", "welcome, come in"},
	{"KAMEHAMEHA", "the lonely one"},
	{"HUMUHUMUNUKUNUKUAPUA'A", "reef triggerfish"},
}

// Add inserts e, replacing the meaning of an existing word. Words match
// regardless of case. Blank words are ignored.
func (l *Lexicon) Add(e Entry) {
	e.Word = strings.TrimSpace(e.Word)
	k := key(e.Word)
	if k == "" {
		return
	}
	if existing, ok := l.entries[k]; ok {
		if e.Meaning != "" {
			existing.Meaning = e.Meaning
		}
		return
	}
	l.entries[k] = &e
	l.order = append(l.order, k)
}

// Lookup returns the entry for word in any case, or nil.
func (l *Lexicon) Lookup(word string) *Entry {
	return l.entries[key(word)]
}

// Words returns all words, as first added, in insertion order.
func (l *Lexicon) Words() []string {
	out := make([]string, 0, len(l.order))
	for _, k := range l.order {
		out = append(out, l.entries[k].Word)
	}
	return out
}

func key(word string) string {
	return hawaiian.Fold(word)
}

// Entries returns all entries in insertion order.
func (l *Lexicon) Entries() []Entry {
	out := make([]Entry, 0, len(l.order))
	for _, w := range l.order {
		out = append(out, *l.entries[w])
	}
	return out
}

// Size returns the number of entries in the lexicon.
func (l *Lexicon) Size() int {
	return len(l.order)
}

// LoadFromFile adds the entries of a word file. The format follows the
// extension: .jsonl, .yaml/.yml, anything else is one word per line.
func (l *Lexicon) LoadFromFile(path string) error {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening word file: %w", err)
	}
	defer file.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".jsonl":
		return l.LoadJSONL(file)
	case ".yaml", ".yml":
		return l.LoadYAML(file)
	default:
		return l.LoadText(file)
	}
}

// LoadJSONL reads one JSON entry per line. Malformed lines are skipped.
func (l *Lexicon) LoadJSONL(r io.Reader) error {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		var entry Entry
		if err := json.Unmarshal([]byte(line), &entry); err != nil {
			continue
		}
		l.Add(entry)
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading word file: %w", err)
	}
	return nil
}

// LoadYAML reads a document with a top-level "words" list.
func (l *Lexicon) LoadYAML(r io.Reader) error {
	var doc struct {
		Words []Entry `yaml:"words"`
	}
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil && err != io.EOF {
		return fmt.Errorf("parsing word file: %w", err)
	}

	for _, e := range doc.Words {
		l.Add(e)
	}
	return nil
}

// LoadText reads one word per line. Lines starting with # are comments.
func (l *Lexicon) LoadText(r io.Reader) error {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		l.Add(Entry{Word: line})
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading word file: %w", err)
	}
	return nil
}

// SaveYAML writes the lexicon as a "words" document.
func (l *Lexicon) SaveYAML(path string) error {
	data := struct {
		Words []Entry `yaml:"words"`
	}{Words: l.Entries()}

	out, err := yaml.Marshal(&data)
	if err != nil {
		return fmt.Errorf("marshaling words: %w", err)
	}

	if err := os.WriteFile(path, out, 0644); err != nil {
		return fmt.Errorf("writing word file: %w", err)
	}

	return nil
}
