// Package document reads and writes schedule documents. A document is
// a TOML file the user names explicitly; nothing is loaded or saved
// unless asked for.
package document

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"classdeck/internal/schedule"
)

// Document is the on-disk schedule representation.
type Document struct {
	Entries []schedule.Entry `toml:"entry"`
}

// Load reads a schedule document. Entries that fail validation are
// rejected with the offending position so the file can be fixed.
func Load(path string) ([]schedule.Entry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading schedule document: %w", err)
	}

	var doc Document
	if err := toml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing schedule document: %w", err)
	}

	for i, e := range doc.Entries {
		if err := e.Validate(); err != nil {
			return nil, fmt.Errorf("entry %d: %w", i+1, err)
		}
	}

	return doc.Entries, nil
}

// Save writes the entries to path, creating parent directories as
// needed.
func Save(path string, entries []schedule.Entry) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating document directory: %w", err)
	}

	data, err := toml.Marshal(Document{Entries: entries})
	if err != nil {
		return fmt.Errorf("marshaling schedule document: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing schedule document: %w", err)
	}

	return nil
}
