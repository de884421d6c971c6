package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/joho/godotenv"
	bolt "go.etcd.io/bbolt"
	"go.uber.org/zap"

	"finbot/internal/command"
	"finbot/internal/config"
	"finbot/internal/entrypoint/telegram"
	"finbot/internal/entrypoint/whatsapp"
	"finbot/internal/logging"
	"finbot/internal/usecase"
	idemrepo "finbot/internal/usecase/repository/idempotence"
	ledgerrepo "finbot/internal/usecase/repository/ledger"
)

const (
	telegramBucket = "telegram"
	whatsappBucket = "whatsapp"
)

func main() {
	if len(os.Args) < 2 {
		printHelp()
		return
	}

	// Optional in production.
	_ = godotenv.Load()

	logger, err := logging.NewFromEnv()
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = logger.Sync() }()

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		logger.Fatal("invalid configuration", zap.Error(err))
	}

	switch strings.ToLower(os.Args[1]) {
	case "telegram":
		runTelegram(cfg, logger)
	case "whatsapp":
		runWhatsApp(cfg, logger)
	case "demo":
		runDemo(cfg, logger)
	case "help", "-h", "--help":
		printHelp()
	default:
		fmt.Printf("❌ Comando desconhecido: %s\n\n", os.Args[1])
		printHelp()
	}
}

func runTelegram(cfg *config.Config, logger *logging.Logger) {
	if cfg.TelegramToken == "" {
		logger.Fatal("TELEGRAM_BOT_TOKEN is not set")
	}

	store, idem, closeStore, err := buildStore(cfg, cfg.TelegramDataPath(), telegramBucket, logger)
	if err != nil {
		logger.Fatal("opening store failed", zap.Error(err))
	}
	defer closeStore()

	interpreter := command.New(command.Group, command.SettingsFrom(cfg),
		usecase.NewSet(store), usecase.NopNotifier{}, logger)

	bot, err := telegram.New(cfg.TelegramToken, interpreter, idem, logger)
	if err != nil {
		logger.Fatal("starting telegram bot failed", zap.Error(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	bot.Start(ctx)
	logger.Info("telegram bot started", zap.String("backend", cfg.Backend))

	<-ctx.Done()
	logger.Info("telegram bot stopped")
}

func runWhatsApp(cfg *config.Config, logger *logging.Logger) {
	store, _, closeStore, err := buildStore(cfg, cfg.WhatsAppDataPath(), whatsappBucket, logger)
	if err != nil {
		logger.Fatal("opening store failed", zap.Error(err))
	}
	defer closeStore()

	sender := whatsapp.NewClient(cfg.SenderURL, cfg.SenderAPIKey)
	notifier := whatsapp.NewObserverNotifier(sender, logger)

	interpreter := command.New(command.Direct, command.SettingsFrom(cfg),
		usecase.NewSet(store), notifier, logger)

	handler := whatsapp.NewWebhookHandler(interpreter, sender, logger)
	server := whatsapp.NewServer(cfg.WebhookPort, handler, logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logger.Info("webhook server started",
		zap.String("port", cfg.WebhookPort), zap.String("backend", cfg.Backend))
	if err := server.Run(ctx); err != nil {
		logger.Fatal("webhook server failed", zap.Error(err))
	}
	logger.Info("webhook server stopped")
}

// runDemo replays a canned direct-conversation session against the real
// interpreter, printing the exchange.
func runDemo(cfg *config.Config, logger *logging.Logger) {
	store, _, closeStore, err := buildStore(cfg, cfg.WhatsAppDataPath(), whatsappBucket, logger)
	if err != nil {
		logger.Fatal("opening store failed", zap.Error(err))
	}
	defer closeStore()

	interpreter := command.New(command.Direct, command.SettingsFrom(cfg),
		usecase.NewSet(store), consoleNotifier{}, logger)

	fmt.Println("🤖 Testando Bot do WhatsApp...")
	fmt.Println("📱 Simulação de comandos")
	fmt.Println(strings.Repeat("-", 40))

	number := "+5511999999999"
	steps := []struct{ label, text string }{
		{"💰 Registrando entrada", "entrada 1500 salário"},
		{"💸 Registrando saída", "saida 89,90 mercado 11/08/2025"},
		{"📊 Consultando saldo", "saldo"},
		{"📄 Listando lançamentos", "listar 3"},
		{"📅 Resumo do mês", "resumo"},
		{"👥 Adicionando observador", "cadastrar +5511888888888"},
		{"↩️ Desfazendo último lançamento", "desfazer"},
	}

	for _, step := range steps {
		fmt.Printf("\n%s\n", step.label)
		fmt.Printf("👤 Usuário: %s\n", step.text)
		fmt.Printf("🤖 Bot: %s\n", interpreter.Handle(number, step.text, ""))
	}

	fmt.Println("\n✅ Teste do WhatsApp concluído!")
}

// consoleNotifier prints observer notifications instead of sending them.
type consoleNotifier struct{}

func (consoleNotifier) Notify(_ string, observers []string, message string) {
	for _, observer := range observers {
		fmt.Printf("[OBSERVER] Para %s: %s\n", observer, message)
	}
}

// buildStore wires the ledger store and the idempotence records for the
// configured backend. The returned closer releases the bolt database
// when one was opened.
func buildStore(cfg *config.Config, filePath, bucket string, logger *logging.Logger) (*usecase.Store, *usecase.Idempotence, func(), error) {
	if cfg.Backend == config.BackendBolt {
		if dir := filepath.Dir(cfg.BoltPath); dir != "." && dir != "" {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return nil, nil, nil, err
			}
		}

		db, err := bolt.Open(cfg.BoltPath, 0600, nil)
		if err != nil {
			return nil, nil, nil, err
		}

		repo, err := ledgerrepo.NewBoltDB(db, bucket)
		if err != nil {
			db.Close()
			return nil, nil, nil, err
		}
		idemRepo, err := idemrepo.NewBoltDB(db)
		if err != nil {
			db.Close()
			return nil, nil, nil, err
		}

		return usecase.NewStore(repo, logger), usecase.NewIdempotence(idemRepo),
			func() { db.Close() }, nil
	}

	repo := ledgerrepo.NewFile(filePath)
	return usecase.NewStore(repo, logger), usecase.NewIdempotence(idemrepo.NewMemory()),
		func() {}, nil
}

func printHelp() {
	fmt.Println("🤖 Bot de Controle Financeiro")
	fmt.Println(strings.Repeat("=", 40))
	fmt.Println("\nUso:")
	fmt.Println("  finbot telegram    # Executa o bot do Telegram")
	fmt.Println("  finbot whatsapp    # Executa o webhook do WhatsApp")
	fmt.Println("  finbot demo        # Simula uma sessão do WhatsApp")
	fmt.Println("  finbot help        # Mostra esta ajuda")
}
