package usecase

import (
	"github.com/shopspring/decimal"

	"finbot/internal/entity"
)

type GetBalance struct {
	store *Store
}

func NewGetBalance(store *Store) *GetBalance {
	return &GetBalance{
		store: store,
	}
}

func (u *GetBalance) Execute(conversationID string) decimal.Decimal {
	var balance decimal.Decimal
	u.store.View(conversationID, func(l *entity.Ledger) {
		balance = entity.Balance(l.Entries)
	})
	return balance
}

type GetMonthSummary struct {
	store *Store
}

func NewGetMonthSummary(store *Store) *GetMonthSummary {
	return &GetMonthSummary{
		store: store,
	}
}

func (u *GetMonthSummary) Execute(conversationID, month string) entity.MonthSummary {
	var summary entity.MonthSummary
	u.store.View(conversationID, func(l *entity.Ledger) {
		summary = entity.SummarizeMonth(l.Entries, month)
	})
	return summary
}

type CountMonthEntries struct {
	store *Store
}

func NewCountMonthEntries(store *Store) *CountMonthEntries {
	return &CountMonthEntries{
		store: store,
	}
}

func (u *CountMonthEntries) Execute(conversationID, month string) int {
	var count int
	u.store.View(conversationID, func(l *entity.Ledger) {
		count = entity.CountMonth(l.Entries, month)
	})
	return count
}

type ListEntries struct {
	store *Store
}

func NewListEntries(store *Store) *ListEntries {
	return &ListEntries{
		store: store,
	}
}

// Execute returns up to limit entries, most recent first, along with the
// total number of entries in the ledger.
func (u *ListEntries) Execute(conversationID string, limit int) ([]entity.Entry, int) {
	var entries []entity.Entry
	var total int
	u.store.View(conversationID, func(l *entity.Ledger) {
		entries = l.LastN(limit)
		total = len(l.Entries)
	})
	return entries, total
}
