package usecase

// Set bundles the ledger operations that a command interpreter needs.
type Set struct {
	CreateEntry       *CreateEntry
	UndoEntry         *UndoEntry
	GetBalance        *GetBalance
	GetMonthSummary   *GetMonthSummary
	CountMonthEntries *CountMonthEntries
	ListEntries       *ListEntries
	AddObserver       *AddObserver
	RemoveObserver    *RemoveObserver
	GetObservers      *GetObservers
}

func NewSet(store *Store) *Set {
	return &Set{
		CreateEntry:       NewCreateEntry(store),
		UndoEntry:         NewUndoEntry(store),
		GetBalance:        NewGetBalance(store),
		GetMonthSummary:   NewGetMonthSummary(store),
		CountMonthEntries: NewCountMonthEntries(store),
		ListEntries:       NewListEntries(store),
		AddObserver:       NewAddObserver(store),
		RemoveObserver:    NewRemoveObserver(store),
		GetObservers:      NewGetObservers(store),
	}
}
