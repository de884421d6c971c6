package usecase

import (
	"finbot/internal/entity"
)

type AddObserver struct {
	store *Store
}

func NewAddObserver(store *Store) *AddObserver {
	return &AddObserver{
		store: store,
	}
}

// Execute reports false when the number was already registered; nothing
// is persisted in that case.
func (u *AddObserver) Execute(conversationID, number string) bool {
	var added bool
	u.store.Update(conversationID, func(l *entity.Ledger) bool {
		added = l.AddObserver(number)
		return added
	})
	return added
}

type RemoveObserver struct {
	store *Store
}

func NewRemoveObserver(store *Store) *RemoveObserver {
	return &RemoveObserver{
		store: store,
	}
}

// Execute reports false when the number was not registered.
func (u *RemoveObserver) Execute(conversationID, number string) bool {
	var removed bool
	u.store.Update(conversationID, func(l *entity.Ledger) bool {
		removed = l.RemoveObserver(number)
		return removed
	})
	return removed
}

type GetObservers struct {
	store *Store
}

func NewGetObservers(store *Store) *GetObservers {
	return &GetObservers{
		store: store,
	}
}

func (u *GetObservers) Execute(conversationID string) []string {
	var observers []string
	u.store.View(conversationID, func(l *entity.Ledger) {
		observers = append([]string(nil), l.Observers...)
	})
	return observers
}
