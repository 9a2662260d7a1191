package cmd

import (
	"archive/zip"
	"database/sql"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/f3rmion/olelo/internal/anki"
	"github.com/f3rmion/olelo/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeDeck builds an .apkg with one note type using the given field names.
func writeDeck(t *testing.T, fields []string, notes [][]string) string {
	t.Helper()
	dir := t.TempDir()
	dbPath := filepath.Join(dir, "collection.anki2")

	flds := make([]map[string]any, len(fields))
	for i, name := range fields {
		flds[i] = map[string]any{"name": name, "ord": i, "font": "Arial", "size": 20}
	}
	models, err := json.Marshal(map[string]any{
		"1001": map[string]any{"id": 1001, "name": "Vocab", "type": 0, "sortf": 0, "flds": flds},
	})
	require.NoError(t, err)

	db, err := sql.Open("sqlite", dbPath)
	require.NoError(t, err)
	for _, s := range []string{
		`CREATE TABLE col (id INTEGER PRIMARY KEY, models TEXT, decks TEXT)`,
		`CREATE TABLE notes (id INTEGER PRIMARY KEY, guid TEXT, mid INTEGER, mod INTEGER, usn INTEGER,
			tags TEXT, flds TEXT, sfld TEXT, csum INTEGER, flags INTEGER, data TEXT)`,
		`CREATE TABLE cards (id INTEGER PRIMARY KEY, nid INTEGER, did INTEGER, ord INTEGER, mod INTEGER,
			usn INTEGER, type INTEGER, queue INTEGER, due INTEGER, ivl INTEGER, factor INTEGER, reps INTEGER,
			lapses INTEGER, left INTEGER, odue INTEGER, odid INTEGER, flags INTEGER, data TEXT)`,
	} {
		_, err := db.Exec(s)
		require.NoError(t, err)
	}
	_, err = db.Exec(`INSERT INTO col (id, models, decks) VALUES (1, ?, ?)`,
		string(models), `{"1":{"id":1,"name":"Default","desc":""}}`)
	require.NoError(t, err)

	for i, values := range notes {
		id := int64(i + 1)
		_, err := db.Exec(`INSERT INTO notes VALUES (?, ?, 1001, 0, 0, '', ?, ?, 0, 0, '')`,
			id, "guid"+values[0], strings.Join(values, "\x1f"), values[0])
		require.NoError(t, err)
		_, err = db.Exec(`INSERT INTO cards VALUES (?, ?, 1, 0, 0, 0, 0, 0, ?, 0, 2500, 0, 0, 0, 0, 0, 0, '')`,
			id*10, id, i)
		require.NoError(t, err)
	}
	require.NoError(t, db.Close())

	apkg := filepath.Join(dir, "deck.apkg")
	out, err := os.Create(apkg)
	require.NoError(t, err)
	zw := zip.NewWriter(out)
	w, err := zw.Create("collection.anki2")
	require.NoError(t, err)
	in, err := os.Open(dbPath)
	require.NoError(t, err)
	_, err = io.Copy(w, in)
	require.NoError(t, err)
	in.Close()
	require.NoError(t, zw.Close())
	require.NoError(t, out.Close())

	return apkg
}

func resetAugmentFlags(t *testing.T) {
	t.Cleanup(func() {
		ankiAugmentField = ""
		ankiAugmentTarget = anki.PronunciationField
		ankiAugmentOutput = ""
		ankiAugmentDryRun = false
	})
}

func TestDetectHawaiianField(t *testing.T) {
	tests := []struct {
		name   string
		fields []string
		notes  [][]string
		want   string
	}{
		{
			name:   "word first",
			fields: []string{"Word", "Meaning"},
			notes:  [][]string{{"ALOHA", "love"}, {"<b>kane</b>", "husband"}, {"PUA", "flower"}},
			want:   "Word",
		},
		{
			name:   "most valid values win",
			fields: []string{"English", "Hawaiian"},
			notes:  [][]string{{"love", "ALOHA"}, {"man", "KANE"}, {"flower", "PUA"}},
			want:   "Hawaiian",
		},
		{
			name:   "tie goes to earlier field",
			fields: []string{"Front", "Back"},
			notes:  [][]string{{"ALOHA", "KANE"}},
			want:   "Front",
		},
		{
			name:   "nothing Hawaiian",
			fields: []string{"Front", "Back"},
			notes:  [][]string{{"BONJOUR", "good day"}},
			want:   "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pkg, err := anki.OpenPackage(writeDeck(t, tt.fields, tt.notes))
			require.NoError(t, err)
			defer pkg.Close()

			assert.Equal(t, tt.want, detectHawaiianField(pkg, config.Default()))
		})
	}
}

func TestDetectHawaiianFieldWithoutFolding(t *testing.T) {
	pkg, err := anki.OpenPackage(writeDeck(t, []string{"Front", "Back"},
		[][]string{{"aloha", "KANE"}, {"pua", "PUA"}}))
	require.NoError(t, err)
	defer pkg.Close()

	cfg := config.Default()
	cfg.FoldCase = false
	assert.Equal(t, "Back", detectHawaiianField(pkg, cfg))
}

func TestAnkiAugmentDryRun(t *testing.T) {
	resetAugmentFlags(t)
	deck := writeDeck(t, []string{"Word", "Meaning"},
		[][]string{{"ALOHA", "love"}, {"kane", "husband"}, {"BONJOUR", "good day"}})

	out, err := execute(t, "--config", t.TempDir(), "anki", "augment", deck, "--dry-run")
	require.NoError(t, err)
	assert.Contains(t, out, "Auto-detected Hawaiian field: Word\n")
	assert.Contains(t, out, "ALOHA => AH-LOH-HAH\n")
	assert.Contains(t, out, "KANE => KAH-NEH\n")
	assert.NotContains(t, out, "BONJOUR =>")
	assert.Contains(t, out, "2 of 3 notes would be updated\n")
	assert.NoFileExists(t, strings.TrimSuffix(deck, ".apkg")+".olelo.apkg")
}

func TestAnkiAugmentRejectsSameField(t *testing.T) {
	resetAugmentFlags(t)
	deck := writeDeck(t, []string{"Word", "Meaning"}, [][]string{{"ALOHA", "love"}})

	_, err := execute(t, "--config", t.TempDir(), "anki", "augment", deck, "--field", "Word", "--target", "word")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `source and target field are both "Word"`)
}

func TestAnkiAugmentWritesDeck(t *testing.T) {
	resetAugmentFlags(t)
	deck := writeDeck(t, []string{"Word", "Meaning"},
		[][]string{{"ALOHA", "love"}, {"BONJOUR", "good day"}})
	output := filepath.Join(t.TempDir(), "out.apkg")

	out, err := execute(t, "--config", t.TempDir(), "anki", "augment", deck, "--field", "Word", "--output", output)
	require.NoError(t, err)
	assert.Contains(t, out, "Updated 1 of 2 notes, wrote "+output)

	pkg, err := anki.OpenPackage(output)
	require.NoError(t, err)
	defer pkg.Close()

	assert.Equal(t, "AH-LOH-HAH", pkg.GetFieldValue(pkg.GetNoteByID(1), anki.PronunciationField))
	assert.Len(t, pkg.GetNoteByID(2).Fields, 3)
}

func TestLookupCommand(t *testing.T) {
	dir := t.TempDir()
	_, err := execute(t, "--config", dir, "init")
	require.NoError(t, err)

	out, err := execute(t, "--config", dir, "lookup", "aloha")
	require.NoError(t, err)
	assert.Contains(t, out, "Word: ALOHA\n")
	assert.Contains(t, out, "  Pronunciation: AH-LOH-HAH\n")
	assert.Contains(t, out, "  Syllables: AH · LOH · HAH\n")
	assert.Contains(t, out, "  Meaning: love, greeting\n")

	out, err = execute(t, "--config", dir, "lookup", "bonjour")
	require.NoError(t, err)
	assert.Contains(t, out, "  Pronunciation: not a Hawaiian word\n")
	assert.Contains(t, out, "  Meaning: hello (French)\n")
	assert.NotContains(t, out, "Syllables")

	out, err = execute(t, "--config", dir, "history")
	require.NoError(t, err)
	assert.Contains(t, out, "ALOHA")
	assert.NotContains(t, out, "BONJOUR")
}

func TestLookupLowerCaseWordFile(t *testing.T) {
	dir := t.TempDir()
	words := filepath.Join(dir, "words.jsonl")
	require.NoError(t, os.WriteFile(words, []byte(`{"word":"mahalo","meaning":"thanks"}`+"\n"), 0o644))
	t.Setenv("OLELO_WORDS_FILE", words)

	out, err := execute(t, "--config", dir, "lookup", "Mahalo")
	require.NoError(t, err)
	assert.Contains(t, out, "  Pronunciation: MAH-HAH-LOH\n")
	assert.Contains(t, out, "  Meaning: thanks\n")
}
