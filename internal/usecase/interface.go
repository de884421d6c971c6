package usecase

import (
	"finbot/internal/entity"
)

type ledgerRepository interface {
	// Load returns the full persisted mapping. The returned map is always
	// usable; missing or corrupt stored data degrades to an empty mapping.
	Load() (map[string]*entity.Ledger, error)
	// Save rewrites the full persisted mapping.
	Save(map[string]*entity.Ledger) error
}

type idempotenceRepository interface {
	// MakeRecord return true if it was first time to call this method with same id
	MakeRecord(string) (bool, error)
}

// Notifier delivers a copy of a mutation response to the observers of a
// conversation. The default implementation does nothing; a real messaging
// collaborator replaces it.
type Notifier interface {
	Notify(conversationID string, observers []string, message string)
}

type NopNotifier struct{}

func (NopNotifier) Notify(string, []string, string) {}
