// Package ledger provides the persistence backends for the per-conversation
// ledger mapping. Both backends store the full mapping and rewrite it in
// full on every save.
package ledger

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"finbot/internal/entity"
)

// FileRepository persists the mapping as one JSON object keyed by
// conversation id. The write is a plain full overwrite; callers must not
// assume crash-safety mid-write.
type FileRepository struct {
	path string
}

func NewFile(path string) *FileRepository {
	return &FileRepository{path: path}
}

// Load reads the persisted mapping. A missing file yields an empty
// mapping; an unreadable or unparseable one also yields an empty mapping
// together with the error, so startup never fails on bad data.
func (r *FileRepository) Load() (map[string]*entity.Ledger, error) {
	ledgers := make(map[string]*entity.Ledger)

	raw, err := os.ReadFile(r.path)
	if err != nil {
		if os.IsNotExist(err) {
			return ledgers, nil
		}
		return ledgers, fmt.Errorf("reading %s: %w", r.path, err)
	}

	if err := json.Unmarshal(raw, &ledgers); err != nil {
		return make(map[string]*entity.Ledger), fmt.Errorf("decoding %s: %w", r.path, err)
	}

	for id, l := range ledgers {
		if l == nil {
			ledgers[id] = entity.NewLedger(id)
			continue
		}
		if l.ID == "" {
			l.ID = id
		}
		if l.Entries == nil {
			l.Entries = []entity.Entry{}
		}
	}
	return ledgers, nil
}

func (r *FileRepository) Save(ledgers map[string]*entity.Ledger) error {
	if dir := filepath.Dir(r.path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating %s: %w", dir, err)
		}
	}

	raw, err := json.MarshalIndent(ledgers, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding ledgers: %w", err)
	}

	if err := os.WriteFile(r.path, raw, 0644); err != nil {
		return fmt.Errorf("writing %s: %w", r.path, err)
	}
	return nil
}
