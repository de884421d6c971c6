package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"finbot/internal/dates"
)

const (
	BackendFile = "file"
	BackendBolt = "bolt"
)

// WelcomeMessage is the fixed help text returned by start/help/ajuda.
const WelcomeMessage = `👋 Olá! Sou seu bot de controle de gastos.

No Telegram:
• /entrada 1500 salário
• /saida 35 mercado
• /saldo
• /listar
• /resumo

No WhatsApp (sem barra):
• entrada 1500 salário
• saida 35 mercado
• saldo
• listar
• resumo

💡 No WhatsApp, use "cadastrar <número>" para adicionar observadores.`

// InvalidValueMessage is returned when an amount fails to parse.
const InvalidValueMessage = "❗ Valor inválido. Exemplo: /saida 150 mercado"

type Config struct {
	// Storage
	Backend          string
	DataDir          string
	TelegramDataFile string
	WhatsAppDataFile string
	BoltPath         string

	// Formatting
	CurrencySymbol  string
	DateFormat      string
	DefaultListSize int
	MaxListSize     int

	// Fixed texts
	WelcomeMessage      string
	InvalidValueMessage string

	// Transports
	TelegramToken string
	WebhookPort   string
	SenderURL     string
	SenderAPIKey  string
}

func Load() *Config {
	return &Config{
		Backend:          getEnv("STORE_BACKEND", BackendFile),
		DataDir:          getEnv("DATA_DIR", "data"),
		TelegramDataFile: getEnv("TELEGRAM_DATA_FILE", "telegram_groups.json"),
		WhatsAppDataFile: getEnv("WHATSAPP_DATA_FILE", "whatsapp_users.json"),
		BoltPath:         getEnv("BOLT_PATH", "data/finbot.db"),

		CurrencySymbol:  getEnv("CURRENCY_SYMBOL", "R$"),
		DateFormat:      getEnv("DATE_FORMAT", dates.Layout),
		DefaultListSize: getEnvInt("LIST_DEFAULT", 5),
		MaxListSize:     getEnvInt("LIST_MAX", 20),

		WelcomeMessage:      WelcomeMessage,
		InvalidValueMessage: InvalidValueMessage,

		TelegramToken: getEnv("TELEGRAM_BOT_TOKEN", ""),
		WebhookPort:   getEnv("WEBHOOK_PORT", "8080"),
		SenderURL:     getEnv("SENDER_API_URL", "https://www.wasenderapi.com/api/send-message"),
		SenderAPIKey:  getEnv("SENDER_API_KEY", ""),
	}
}

// Validate checks the loaded configuration and returns every problem at
// once, not just the first.
func (c *Config) Validate() error {
	var problems []string

	if c.Backend != BackendFile && c.Backend != BackendBolt {
		problems = append(problems, fmt.Sprintf("invalid store backend %q: must be %q or %q", c.Backend, BackendFile, BackendBolt))
	}
	if c.Backend == BackendBolt && c.BoltPath == "" {
		problems = append(problems, "bolt path cannot be empty when using the bolt backend")
	}
	if c.DataDir == "" {
		problems = append(problems, "data directory cannot be empty")
	}
	if c.DateFormat == "" {
		problems = append(problems, "date format cannot be empty")
	}
	if c.DefaultListSize < 0 {
		problems = append(problems, fmt.Sprintf("invalid default list size %d: must not be negative", c.DefaultListSize))
	}
	if c.MaxListSize < 1 {
		problems = append(problems, fmt.Sprintf("invalid max list size %d: must be at least 1", c.MaxListSize))
	}
	if c.DefaultListSize > c.MaxListSize {
		problems = append(problems, fmt.Sprintf("default list size %d exceeds max list size %d", c.DefaultListSize, c.MaxListSize))
	}
	if port, err := strconv.Atoi(c.WebhookPort); err != nil {
		problems = append(problems, fmt.Sprintf("invalid webhook port %q: must be a number", c.WebhookPort))
	} else if port < 1 || port > 65535 {
		problems = append(problems, fmt.Sprintf("invalid webhook port %d: must be between 1 and 65535", port))
	}

	if len(problems) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(problems, "\n- "))
	}
	return nil
}

// TelegramDataPath is the persisted ledger file of the group variant.
func (c *Config) TelegramDataPath() string {
	return filepath.Join(c.DataDir, c.TelegramDataFile)
}

// WhatsAppDataPath is the persisted ledger file of the direct variant.
func (c *Config) WhatsAppDataPath() string {
	return filepath.Join(c.DataDir, c.WhatsAppDataFile)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return defaultValue
}
