// Package command turns one line of chat text into a ledger operation
// and a ready-to-send response. It is shared by every transport.
package command

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"finbot/internal/dates"
	"finbot/internal/entity"
	"finbot/internal/logging"
	"finbot/internal/money"
	"finbot/internal/usecase"
)

var phonePattern = regexp.MustCompile(`^\+\d{10,15}$`)

type Interpreter struct {
	variant  Variant
	settings Settings
	fmtr     money.Formatter
	uc       *usecase.Set
	notifier usecase.Notifier
	log      *logging.Logger

	now func() time.Time
}

func New(variant Variant, settings Settings, uc *usecase.Set, notifier usecase.Notifier, log *logging.Logger) *Interpreter {
	if notifier == nil {
		notifier = usecase.NopNotifier{}
	}
	return &Interpreter{
		variant:  variant,
		settings: settings,
		fmtr:     money.Formatter{Symbol: settings.CurrencySymbol},
		uc:       uc,
		notifier: notifier,
		log:      log,
		now:      time.Now,
	}
}

// Handle interprets one inbound message and returns the response text.
// The author is the sender's display identity; only group conversations
// record it on entries.
func (i *Interpreter) Handle(conversationID, text, author string) string {
	tokens := strings.Fields(text)
	if len(tokens) == 0 {
		return i.unknown()
	}
	verb := strings.ToLower(tokens[0])
	args := tokens[1:]

	switch verb {
	case "entrada":
		return i.handleEntry(conversationID, entity.KindIncome, args, author)
	case "saida":
		return i.handleEntry(conversationID, entity.KindExpense, args, author)
	case "saldo":
		return i.handleBalance(conversationID)
	case "listar":
		return i.handleList(conversationID, args)
	case "resumo":
		return i.handleSummary(conversationID)
	case "desfazer":
		return i.handleUndo(conversationID)
	case "cadastrar":
		if i.variant == Direct {
			return i.handleAddObserver(conversationID, args)
		}
		return i.unknown()
	case "remover":
		if i.variant == Direct {
			return i.handleRemoveObserver(conversationID, args)
		}
		return i.unknown()
	case "start", "help", "ajuda":
		return i.settings.Welcome
	default:
		return i.unknown()
	}
}

// handleEntry records an income or expense. The first argument is the
// amount; when the last remaining argument looks like a date it becomes
// the entry date and the middle tokens the description, otherwise every
// remaining token is description and the date defaults to today.
func (i *Interpreter) handleEntry(conversationID string, kind entity.Kind, args []string, author string) string {
	if len(args) == 0 {
		return i.settings.InvalidValue
	}

	amountArg := args[0]
	description := strings.Join(args[1:], " ")
	dateArg := ""
	if len(args) > 1 {
		last := args[len(args)-1]
		if strings.ContainsAny(last, "/-") {
			dateArg = last
			description = strings.Join(args[1:len(args)-1], " ")
		}
	}

	amount, err := money.ParseAmount(amountArg)
	if err != nil {
		return i.settings.InvalidValue
	}

	e := entity.Entry{
		Kind:        kind,
		Amount:      amount,
		Description: description,
		Date:        dates.Canonicalize(i.settings.DateLayout, dateArg, i.now()),
	}
	if i.variant == Group {
		e.Author = author
	}

	if err := i.uc.CreateEntry.Execute(conversationID, e); err != nil {
		i.log.Warn("entry rejected", zap.Error(err), zap.String("conversation", conversationID))
		return i.settings.InvalidValue
	}

	balance := i.fmtr.Format(i.uc.GetBalance.Execute(conversationID))
	response := FormatEntry(i.fmtr, e, i.variant == Group) + "\n" + i.balanceLine(balance)
	i.notifyObservers(conversationID, response)
	return response
}

func (i *Interpreter) handleBalance(conversationID string) string {
	balance := i.fmtr.Format(i.uc.GetBalance.Execute(conversationID))
	count := i.uc.CountMonthEntries.Execute(conversationID, dates.MonthToken(i.now()))

	if i.variant == Group {
		return fmt.Sprintf("💰 Saldo atual do grupo: %s (%d lançamentos no mês)", balance, count)
	}
	return fmt.Sprintf("💰 Seu saldo: %s (%d lançamentos no mês)", balance, count)
}

func (i *Interpreter) handleList(conversationID string, args []string) string {
	limit := i.settings.DefaultListSize
	if len(args) > 0 && isDigits(args[0]) {
		if n, err := strconv.Atoi(args[0]); err == nil {
			limit = n
			if limit > i.settings.MaxListSize {
				limit = i.settings.MaxListSize
			}
		}
	}

	entries, total := i.uc.ListEntries.Execute(conversationID, limit)
	if total == 0 {
		return "📄 Nenhum lançamento encontrado."
	}

	var b strings.Builder
	b.WriteString("📄 Últimos lançamentos:\n")
	for n, e := range entries {
		fmt.Fprintf(&b, "%d) %s\n", n+1, FormatEntry(i.fmtr, e, i.variant == Group))
	}
	return b.String()
}

func (i *Interpreter) handleSummary(conversationID string) string {
	month := dates.MonthToken(i.now())
	s := i.uc.GetMonthSummary.Execute(conversationID, month)

	return fmt.Sprintf("📅 Resumo %s\nEntradas: %s\nSaídas:   %s\nSaldo:    %s",
		month,
		i.fmtr.Format(s.Income),
		i.fmtr.Format(s.Expense),
		i.fmtr.Format(s.Balance))
}

func (i *Interpreter) handleUndo(conversationID string) string {
	removed, err := i.uc.UndoEntry.Execute(conversationID)
	if err != nil {
		return "❌ Nenhum lançamento para desfazer."
	}

	balance := i.fmtr.Format(i.uc.GetBalance.Execute(conversationID))
	response := fmt.Sprintf("❌ Lançamento removido:\n%s\n💰 Saldo atualizado: %s",
		FormatEntry(i.fmtr, removed, i.variant == Group), balance)
	i.notifyObservers(conversationID, response)
	return response
}

func (i *Interpreter) handleAddObserver(conversationID string, args []string) string {
	if len(args) == 0 {
		return "❗ Informe o número do observador. Exemplo: cadastrar +551199999999"
	}
	number := args[0]
	if !phonePattern.MatchString(number) {
		return "❗ Formato de número inválido. Use: +551199999999"
	}

	if i.uc.AddObserver.Execute(conversationID, number) {
		return "✅ Observador adicionado: " + formatPhone(number)
	}
	return "❗ Este número já está na lista de observadores."
}

func (i *Interpreter) handleRemoveObserver(conversationID string, args []string) string {
	if len(args) == 0 {
		return "❗ Informe o número do observador. Exemplo: remover +551199999999"
	}
	number := args[0]

	if i.uc.RemoveObserver.Execute(conversationID, number) {
		return "❌ Observador removido: " + formatPhone(number)
	}
	return "❗ Este número não está na lista de observadores."
}

func (i *Interpreter) balanceLine(balance string) string {
	if i.variant == Group {
		return "💰 Saldo do grupo: " + balance
	}
	return "💰 Seu saldo: " + balance
}

func (i *Interpreter) notifyObservers(conversationID, message string) {
	if i.variant != Direct {
		return
	}
	observers := i.uc.GetObservers.Execute(conversationID)
	if len(observers) == 0 {
		return
	}
	i.notifier.Notify(conversationID, observers, message)
}

func (i *Interpreter) unknown() string {
	return "❗ Comando não reconhecido. Digite 'ajuda' para ver os comandos disponíveis."
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
