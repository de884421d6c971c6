package entity

import (
	"errors"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidAmount = errors.New("invalid amount")
	ErrInvalidKind   = errors.New("invalid entry kind")
	ErrEmptyLedger   = errors.New("ledger has no entries")
)

type Kind string

const (
	KindIncome  Kind = "income"
	KindExpense Kind = "expense"
)

// Entry is a single financial movement. Entries are immutable once
// appended; undo removes the most recent one, it never edits.
type Entry struct {
	Kind        Kind            `json:"kind"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
	Date        string          `json:"date"`
	Author      string          `json:"author,omitempty"`
}

func (e Entry) Validate() error {
	if e.Kind != KindIncome && e.Kind != KindExpense {
		return ErrInvalidKind
	}
	if e.Amount.IsNegative() {
		return ErrInvalidAmount
	}
	return nil
}
