package usecase

import (
	"finbot/internal/entity"
)

type CreateEntry struct {
	store *Store
}

func NewCreateEntry(store *Store) *CreateEntry {
	return &CreateEntry{
		store: store,
	}
}

func (u *CreateEntry) Execute(conversationID string, e entity.Entry) error {
	if err := e.Validate(); err != nil {
		return err
	}
	u.store.Update(conversationID, func(l *entity.Ledger) bool {
		l.Append(e)
		return true
	})
	return nil
}

type UndoEntry struct {
	store *Store
}

func NewUndoEntry(store *Store) *UndoEntry {
	return &UndoEntry{
		store: store,
	}
}

// Execute removes the most recently appended entry, regardless of its
// date field. An empty ledger yields entity.ErrEmptyLedger and no
// mutation is attempted.
func (u *UndoEntry) Execute(conversationID string) (entity.Entry, error) {
	var removed entity.Entry
	var ok bool
	u.store.Update(conversationID, func(l *entity.Ledger) bool {
		removed, ok = l.PopLast()
		return ok
	})
	if !ok {
		return entity.Entry{}, entity.ErrEmptyLedger
	}
	return removed, nil
}
