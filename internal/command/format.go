package command

import (
	"fmt"

	"finbot/internal/entity"
	"finbot/internal/money"
)

const (
	incomeGlyph  = "➕"
	expenseGlyph = "➖"
)

// FormatEntry renders one entry for display: glyph, currency, then the
// description and date segments when present. The author prefix is
// prepended only when asked for and set.
func FormatEntry(f money.Formatter, e entity.Entry, includeAuthor bool) string {
	glyph := expenseGlyph
	if e.Kind == entity.KindIncome {
		glyph = incomeGlyph
	}

	out := glyph + " " + f.Format(e.Amount)
	if e.Description != "" {
		out += " — " + e.Description
	}
	if e.Date != "" {
		out += " (" + e.Date + ")"
	}
	if includeAuthor && e.Author != "" {
		out = e.Author + " " + out
	}
	return out
}

// formatPhone folds +55 numbers with eleven trailing digits into the
// "+55 11 99999-9999" display form; anything else is shown as typed.
func formatPhone(number string) string {
	if len(number) == 14 && number[:3] == "+55" {
		digits := number[3:]
		return fmt.Sprintf("+55 %s %s-%s", digits[:2], digits[2:7], digits[7:])
	}
	return number
}
