package anki

import (
	"archive/zip"
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"html"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// PronunciationField is the field added to augmented note types.
const PronunciationField = "Pronunciation"

var htmlTag = regexp.MustCompile(`<[^>]*>`)

// StripHTML removes tags and entities from a field value.
func StripHTML(s string) string {
	return strings.TrimSpace(html.UnescapeString(htmlTag.ReplaceAllString(s, "")))
}

// AddFieldToModel appends a field to a model unless it already has one with
// that name. Every note of the model is padded with an empty value for it.
func (p *Package) AddFieldToModel(modelID int64, name string) error {
	model, ok := p.Models[modelID]
	if !ok {
		return fmt.Errorf("model %d not found", modelID)
	}

	for _, f := range model.Fields {
		if strings.EqualFold(f.Name, name) {
			return nil
		}
	}

	model.Fields = append(model.Fields, Field{
		Name: name,
		Ord:  len(model.Fields),
		Font: "Arial",
		Size: 20,
	})
	model.changed = true

	for _, note := range p.Notes {
		if note.ModelID == modelID {
			padNote(note, len(model.Fields))
		}
	}

	return nil
}

// padNote extends note with empty fields up to n and marks it for writing.
func padNote(note *Note, n int) {
	if len(note.Fields) >= n {
		return
	}
	for len(note.Fields) < n {
		note.Fields = append(note.Fields, "")
	}
	note.RawFlds = strings.Join(note.Fields, fieldSeparator)
	note.Mod = time.Now().Unix()
	note.changed = true
}

// SetFieldValue sets a named field on note. The field must exist on the
// note's model.
func (p *Package) SetFieldValue(note *Note, name, value string) error {
	model := p.GetModel(note)
	if model == nil {
		return fmt.Errorf("model not found for note %d", note.ID)
	}

	ord := -1
	for _, f := range model.Fields {
		if strings.EqualFold(f.Name, name) {
			ord = f.Ord
			break
		}
	}
	if ord < 0 {
		return fmt.Errorf("note %d has no field %q", note.ID, name)
	}

	padNote(note, len(model.Fields))
	note.Fields[ord] = value
	note.RawFlds = strings.Join(note.Fields, fieldSeparator)
	note.Mod = time.Now().Unix()
	note.changed = true

	return nil
}

// Augment writes fn(source) into the target field of every note that has the
// source field. Notes for which fn reports false are left alone. The target
// field is added to each model that gets a value. Returns the number of notes
// updated.
func (p *Package) Augment(source, target string, fn func(value string) (string, bool)) (int, error) {
	updated := 0
	for _, note := range p.Notes {
		value := StripHTML(p.GetFieldValue(note, source))
		if value == "" {
			continue
		}

		out, ok := fn(value)
		if !ok {
			continue
		}

		if err := p.AddFieldToModel(note.ModelID, target); err != nil {
			return updated, err
		}
		if err := p.SetFieldValue(note, target, out); err != nil {
			return updated, err
		}
		updated++
	}
	return updated, nil
}

// SaveAs writes the package, including changes, to a new .apkg file.
func (p *Package) SaveAs(outputPath string) error {
	if err := p.updateDatabase(); err != nil {
		return fmt.Errorf("updating database: %w", err)
	}

	outFile, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("creating output file: %w", err)
	}
	defer outFile.Close()

	zipWriter := zip.NewWriter(outFile)

	err = filepath.Walk(p.tempDir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}
		// SQLite side files aren't part of the package.
		if strings.HasSuffix(path, "-journal") || strings.HasSuffix(path, "-wal") || strings.HasSuffix(path, "-shm") {
			return nil
		}

		relPath, err := filepath.Rel(p.tempDir, path)
		if err != nil {
			return err
		}
		return addToZip(zipWriter, path, filepath.ToSlash(relPath))
	})
	if err != nil {
		zipWriter.Close()
		return fmt.Errorf("creating zip: %w", err)
	}

	if err := zipWriter.Close(); err != nil {
		return fmt.Errorf("finishing zip: %w", err)
	}
	return nil
}

func addToZip(zw *zip.Writer, path, name string) error {
	writer, err := zw.Create(name)
	if err != nil {
		return err
	}

	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()

	_, err = io.Copy(writer, file)
	return err
}

// updateDatabase writes changed models and notes back to SQLite.
func (p *Package) updateDatabase() error {
	if err := p.updateModels(); err != nil {
		return err
	}
	return p.updateNotes()
}

// updateModels rewrites the models JSON in the col table when any model
// gained a field.
func (p *Package) updateModels() error {
	changed := false
	modelsMap := make(map[string]map[string]json.RawMessage, len(p.Models))
	for id, model := range p.Models {
		raw := model.raw
		if raw == nil {
			raw = make(map[string]json.RawMessage)
		}
		if model.changed {
			flds, err := json.Marshal(model.Fields)
			if err != nil {
				return fmt.Errorf("marshaling fields of model %d: %w", id, err)
			}
			raw["flds"] = flds
			changed = true
		}
		modelsMap[strconv.FormatInt(id, 10)] = raw
	}
	if !changed {
		return nil
	}

	modelsJSON, err := json.Marshal(modelsMap)
	if err != nil {
		return fmt.Errorf("marshaling models: %w", err)
	}

	if _, err := p.db.Exec("UPDATE col SET models = ?", string(modelsJSON)); err != nil {
		return fmt.Errorf("updating models: %w", err)
	}

	return nil
}

// updateNotes writes back every changed note.
func (p *Package) updateNotes() error {
	for _, note := range p.Notes {
		if !note.changed {
			continue
		}
		if len(note.Fields) > 0 {
			note.CSum = fieldChecksum(note.Fields[0])
		}

		_, err := p.db.Exec(`
			UPDATE notes SET
				mod = ?,
				flds = ?,
				csum = ?
			WHERE id = ?
		`, note.Mod, note.RawFlds, note.CSum, note.ID)
		if err != nil {
			return fmt.Errorf("updating note %d: %w", note.ID, err)
		}
	}

	return nil
}

// fieldChecksum is Anki's duplicate-detection checksum: the first 8 hex
// digits of the SHA-1 of the stripped first field.
func fieldChecksum(field string) int64 {
	sum := sha1.Sum([]byte(StripHTML(field)))
	csum, _ := strconv.ParseInt(hex.EncodeToString(sum[:])[:8], 16, 64)
	return csum
}
