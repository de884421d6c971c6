package entity

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Ledger holds the ordered entries of one conversation. The insertion
// order is the chronological order of recording, not of the user-supplied
// date field, which may be backdated.
type Ledger struct {
	ID        string   `json:"id"`
	Entries   []Entry  `json:"entries"`
	Observers []string `json:"observers,omitempty"`
}

func NewLedger(id string) *Ledger {
	return &Ledger{ID: id, Entries: []Entry{}}
}

func (l *Ledger) Append(e Entry) {
	l.Entries = append(l.Entries, e)
}

// PopLast removes and returns the most recently appended entry.
func (l *Ledger) PopLast() (Entry, bool) {
	if len(l.Entries) == 0 {
		return Entry{}, false
	}
	last := l.Entries[len(l.Entries)-1]
	l.Entries = l.Entries[:len(l.Entries)-1]
	return last, true
}

// LastN returns up to n entries, most recent first.
func (l *Ledger) LastN(n int) []Entry {
	if n < 0 {
		n = 0
	}
	if n > len(l.Entries) {
		n = len(l.Entries)
	}
	out := make([]Entry, 0, n)
	for i := len(l.Entries) - 1; i >= len(l.Entries)-n; i-- {
		out = append(out, l.Entries[i])
	}
	return out
}

func (l *Ledger) HasObserver(number string) bool {
	for _, o := range l.Observers {
		if o == number {
			return true
		}
	}
	return false
}

// AddObserver reports false when the number is already registered.
func (l *Ledger) AddObserver(number string) bool {
	if l.HasObserver(number) {
		return false
	}
	l.Observers = append(l.Observers, number)
	return true
}

// RemoveObserver reports false when the number is not registered.
func (l *Ledger) RemoveObserver(number string) bool {
	for i, o := range l.Observers {
		if o == number {
			l.Observers = append(l.Observers[:i], l.Observers[i+1:]...)
			return true
		}
	}
	return false
}

// MonthSummary aggregates one month of activity.
type MonthSummary struct {
	Income  decimal.Decimal
	Expense decimal.Decimal
	Balance decimal.Decimal
}

// Balance is the sum of income amounts minus the sum of expense amounts.
// Entries with an unrecognized kind contribute to neither side.
func Balance(entries []Entry) decimal.Decimal {
	total := decimal.Zero
	for _, e := range entries {
		switch e.Kind {
		case KindIncome:
			total = total.Add(e.Amount)
		case KindExpense:
			total = total.Sub(e.Amount)
		}
	}
	return total
}

// SummarizeMonth totals the entries whose date field ends with the given
// "MM/YYYY" token. The match is a literal suffix comparison, kept for
// compatibility with existing stored data.
func SummarizeMonth(entries []Entry, month string) MonthSummary {
	s := MonthSummary{Income: decimal.Zero, Expense: decimal.Zero}
	for _, e := range entries {
		if !strings.HasSuffix(e.Date, month) {
			continue
		}
		switch e.Kind {
		case KindIncome:
			s.Income = s.Income.Add(e.Amount)
		case KindExpense:
			s.Expense = s.Expense.Add(e.Amount)
		}
	}
	s.Balance = s.Income.Sub(s.Expense)
	return s
}

// CountMonth counts the entries whose date field ends with the given
// "MM/YYYY" token.
func CountMonth(entries []Entry, month string) int {
	n := 0
	for _, e := range entries {
		if strings.HasSuffix(e.Date, month) {
			n++
		}
	}
	return n
}
