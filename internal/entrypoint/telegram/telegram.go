package telegram

import (
	"context"
	"strconv"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"finbot/internal/command"
	"finbot/internal/logging"
	"finbot/internal/usecase"
)

// Bot serves group conversations over Telegram long polling. Only
// registered command verbs are answered; plain text and unknown
// commands are ignored, as group chats are full of both.
type Bot struct {
	api         *tgbotapi.BotAPI
	interpreter *command.Interpreter
	idempotence *usecase.Idempotence
	log         *logging.Logger

	commands map[string]struct{}
}

func New(
	token string,
	interpreter *command.Interpreter,
	idempotence *usecase.Idempotence,
	log *logging.Logger,
) (*Bot, error) {

	botApi, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, err
	}

	b := &Bot{
		api:         botApi,
		interpreter: interpreter,
		idempotence: idempotence,
		log:         log,

		commands: make(map[string]struct{}),
	}

	for _, verb := range []string{
		"start", "help", "ajuda",
		"entrada", "saida", "saldo", "listar", "resumo", "desfazer",
	} {
		b.Register(verb)
	}

	return b, nil
}

func (b *Bot) Register(verb string) {
	b.commands[verb] = struct{}{}
}

func (b *Bot) Start(ctx context.Context) {
	config := tgbotapi.NewUpdate(0)
	config.Timeout = 60

	updates := b.api.GetUpdatesChan(config)
	go b.HandleUpdates(ctx, updates)
}

func (b *Bot) HandleUpdates(_ context.Context, updates tgbotapi.UpdatesChannel) {
	for update := range updates {
		if update.Message == nil || !update.Message.IsCommand() {
			continue
		}

		if ok, err := b.checkIfFirstHandle(update); err != nil {
			b.log.Warn("idempotence check failed", zap.Error(err))
			continue
		} else if !ok {
			continue
		}

		verb := strings.ToLower(update.Message.Command())
		if _, ok := b.commands[verb]; !ok {
			continue
		}

		chatID := strconv.FormatInt(update.Message.Chat.ID, 10)
		text := strings.TrimSpace(verb + " " + update.Message.CommandArguments())

		response := b.interpreter.Handle(chatID, text, authorOf(update))
		if response == "" {
			continue
		}

		if _, err := b.api.Send(tgbotapi.NewMessage(update.Message.Chat.ID, response)); err != nil {
			b.log.Warn("sending reply failed", zap.Error(err), zap.String("chat", chatID))
		}
	}
}

func (b *Bot) checkIfFirstHandle(update tgbotapi.Update) (bool, error) {
	id := "telegram" +
		strconv.FormatInt(update.Message.Chat.ID, 10) +
		strconv.Itoa(update.Message.MessageID)
	return b.idempotence.Execute(id)
}

func authorOf(update tgbotapi.Update) string {
	user := update.SentFrom()
	if user == nil {
		return "Usuário"
	}
	if user.FirstName != "" {
		return user.FirstName
	}
	if user.UserName != "" {
		return user.UserName
	}
	return "Usuário"
}
