package command

import (
	"finbot/internal/config"
)

// Variant selects the conversation style the interpreter serves.
type Variant int

const (
	// Group conversations (Telegram): entries carry the author, no
	// observer registry.
	Group Variant = iota
	// Direct conversations (WhatsApp): single user keyed by phone
	// number, with an observer registry notified on mutations.
	Direct
)

// Settings is the configuration surface the interpreter consumes.
type Settings struct {
	CurrencySymbol  string
	DateLayout      string
	DefaultListSize int
	MaxListSize     int
	Welcome         string
	InvalidValue    string
}

func SettingsFrom(cfg *config.Config) Settings {
	return Settings{
		CurrencySymbol:  cfg.CurrencySymbol,
		DateLayout:      cfg.DateFormat,
		DefaultListSize: cfg.DefaultListSize,
		MaxListSize:     cfg.MaxListSize,
		Welcome:         cfg.WelcomeMessage,
		InvalidValue:    cfg.InvalidValueMessage,
	}
}
