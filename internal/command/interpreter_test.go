package command

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	"finbot/internal/config"
	"finbot/internal/dates"
	"finbot/internal/logging"
	"finbot/internal/usecase"
	ledgerrepo "finbot/internal/usecase/repository/ledger"
)

var testNow = time.Date(2025, 8, 11, 10, 0, 0, 0, time.UTC)

type notification struct {
	conversationID string
	observers      []string
	message        string
}

type captureNotifier struct {
	sent []notification
}

func (n *captureNotifier) Notify(conversationID string, observers []string, message string) {
	n.sent = append(n.sent, notification{conversationID, observers, message})
}

func testSettings() Settings {
	return Settings{
		CurrencySymbol:  "R$",
		DateLayout:      dates.Layout,
		DefaultListSize: 5,
		MaxListSize:     20,
		Welcome:         config.WelcomeMessage,
		InvalidValue:    config.InvalidValueMessage,
	}
}

func newTestInterpreter(t *testing.T, variant Variant, notifier usecase.Notifier) *Interpreter {
	t.Helper()
	repo := ledgerrepo.NewFile(filepath.Join(t.TempDir(), "ledgers.json"))
	store := usecase.NewStore(repo, logging.NewNop())
	i := New(variant, testSettings(), usecase.NewSet(store), notifier, logging.NewNop())
	i.now = func() time.Time { return testNow }
	return i
}

func TestHandleEntrySession(t *testing.T) {
	i := newTestInterpreter(t, Direct, nil)

	got := i.Handle("+5511999999999", "entrada 1500 salário", "")
	want := "➕ R$ 1.500,00 — salário (11/08/2025)\n💰 Seu saldo: R$ 1.500,00"
	if got != want {
		t.Fatalf("entrada:\n got %q\nwant %q", got, want)
	}

	got = i.Handle("+5511999999999", "saida 89,90 mercado", "")
	want = "➖ R$ 89,90 — mercado (11/08/2025)\n💰 Seu saldo: R$ 1.410,10"
	if got != want {
		t.Fatalf("saida:\n got %q\nwant %q", got, want)
	}
}

func TestHandleEntryExplicitDate(t *testing.T) {
	i := newTestInterpreter(t, Direct, nil)

	got := i.Handle("+5511999999999", "entrada 200 bônus 01/07/2025", "")
	if !strings.Contains(got, "(01/07/2025)") {
		t.Fatalf("expected explicit date kept, got %q", got)
	}
	if !strings.Contains(got, "— bônus ") {
		t.Fatalf("expected date excluded from description, got %q", got)
	}

	// A malformed trailing date token falls back to today.
	got = i.Handle("+5511999999999", "entrada 10 x 99/99/9999", "")
	if !strings.Contains(got, "(11/08/2025)") {
		t.Fatalf("expected fallback to today, got %q", got)
	}
}

func TestHandleEntryInvalidValue(t *testing.T) {
	i := newTestInterpreter(t, Direct, nil)

	for _, text := range []string{"entrada", "saida abc mercado", "entrada 1.2.3", "saida -50 x"} {
		if got := i.Handle("+5511999999999", text, ""); got != config.InvalidValueMessage {
			t.Fatalf("%q: expected invalid value message, got %q", text, got)
		}
	}
}

func TestHandleBalance(t *testing.T) {
	i := newTestInterpreter(t, Direct, nil)
	i.Handle("+5511999999999", "entrada 1500 salário", "")
	i.Handle("+5511999999999", "saida 89,90 mercado", "")

	got := i.Handle("+5511999999999", "saldo", "")
	want := "💰 Seu saldo: R$ 1.410,10 (2 lançamentos no mês)"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestHandleBalanceGroup(t *testing.T) {
	i := newTestInterpreter(t, Group, nil)
	i.Handle("123", "entrada 100", "Maria")

	got := i.Handle("123", "saldo", "Maria")
	want := "💰 Saldo atual do grupo: R$ 100,00 (1 lançamentos no mês)"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestGroupEntriesCarryAuthor(t *testing.T) {
	i := newTestInterpreter(t, Group, nil)

	got := i.Handle("123", "entrada 100 aluguel", "Maria")
	if !strings.HasPrefix(got, "Maria ➕") {
		t.Fatalf("expected author prefix, got %q", got)
	}
	if !strings.Contains(got, "💰 Saldo do grupo: R$ 100,00") {
		t.Fatalf("expected group balance line, got %q", got)
	}

	// Direct conversations never record the author.
	d := newTestInterpreter(t, Direct, nil)
	got = d.Handle("+5511999999999", "entrada 100 aluguel", "Maria")
	if strings.Contains(got, "Maria") {
		t.Fatalf("expected no author in direct response, got %q", got)
	}
}

func TestHandleList(t *testing.T) {
	i := newTestInterpreter(t, Direct, nil)

	if got := i.Handle("+5511999999999", "listar", ""); got != "📄 Nenhum lançamento encontrado." {
		t.Fatalf("empty ledger: got %q", got)
	}

	for _, text := range []string{"entrada 1 a", "entrada 2 b", "entrada 3 c"} {
		i.Handle("+5511999999999", text, "")
	}

	got := i.Handle("+5511999999999", "listar 2", "")
	want := "📄 Últimos lançamentos:\n" +
		"1) ➕ R$ 3,00 — c (11/08/2025)\n" +
		"2) ➕ R$ 2,00 — b (11/08/2025)\n"
	if got != want {
		t.Fatalf("listar 2:\n got %q\nwant %q", got, want)
	}

	// A non-numeric argument falls back to the default size.
	got = i.Handle("+5511999999999", "listar tudo", "")
	if strings.Count(got, "\n") != 4 {
		t.Fatalf("listar tudo: expected 3 lines plus header, got %q", got)
	}

	// Zero shows the header but no lines; the ledger is not empty.
	if got := i.Handle("+5511999999999", "listar 0", ""); got != "📄 Últimos lançamentos:\n" {
		t.Fatalf("listar 0: got %q", got)
	}
}

func TestHandleListClampsLimit(t *testing.T) {
	i := newTestInterpreter(t, Direct, nil)
	for n := 0; n < 25; n++ {
		i.Handle("+5511999999999", "entrada 1", "")
	}

	got := i.Handle("+5511999999999", "listar 50", "")
	if lines := strings.Count(got, "\n") - 1; lines != 20 {
		t.Fatalf("expected 20 lines, got %d", lines)
	}
}

func TestHandleSummary(t *testing.T) {
	i := newTestInterpreter(t, Direct, nil)
	i.Handle("+5511999999999", "entrada 1500 salário", "")
	i.Handle("+5511999999999", "saida 89,90 mercado", "")
	i.Handle("+5511999999999", "entrada 999 antigo 01/07/2025", "")

	got := i.Handle("+5511999999999", "resumo", "")
	want := "📅 Resumo 08/2025\nEntradas: R$ 1.500,00\nSaídas:   R$ 89,90\nSaldo:    R$ 1.410,10"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestHandleUndo(t *testing.T) {
	i := newTestInterpreter(t, Direct, nil)

	if got := i.Handle("+5511999999999", "desfazer", ""); got != "❌ Nenhum lançamento para desfazer." {
		t.Fatalf("empty undo: got %q", got)
	}

	i.Handle("+5511999999999", "entrada 1500 salário", "")
	i.Handle("+5511999999999", "saida 89,90 mercado", "")

	got := i.Handle("+5511999999999", "desfazer", "")
	want := "❌ Lançamento removido:\n➖ R$ 89,90 — mercado (11/08/2025)\n💰 Saldo atualizado: R$ 1.500,00"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestHandleObservers(t *testing.T) {
	i := newTestInterpreter(t, Direct, nil)
	id := "+5511999999999"

	if got := i.Handle(id, "cadastrar", ""); got != "❗ Informe o número do observador. Exemplo: cadastrar +551199999999" {
		t.Fatalf("missing arg: got %q", got)
	}
	if got := i.Handle(id, "cadastrar 11988887777", ""); got != "❗ Formato de número inválido. Use: +551199999999" {
		t.Fatalf("bad format: got %q", got)
	}
	if got := i.Handle(id, "cadastrar +5511888887777", ""); got != "✅ Observador adicionado: +55 11 88888-7777" {
		t.Fatalf("add: got %q", got)
	}
	if got := i.Handle(id, "cadastrar +5511888887777", ""); got != "❗ Este número já está na lista de observadores." {
		t.Fatalf("duplicate: got %q", got)
	}
	if got := i.Handle(id, "remover +5511888887777", ""); got != "❌ Observador removido: +55 11 88888-7777" {
		t.Fatalf("remove: got %q", got)
	}
	if got := i.Handle(id, "remover +5511888887777", ""); got != "❗ Este número não está na lista de observadores." {
		t.Fatalf("remove again: got %q", got)
	}
}

func TestObserverCommandsRejectedInGroups(t *testing.T) {
	i := newTestInterpreter(t, Group, nil)

	unknown := i.Handle("123", "qualquercoisa", "Maria")
	if got := i.Handle("123", "cadastrar +5511888887777", "Maria"); got != unknown {
		t.Fatalf("cadastrar in group: got %q", got)
	}
	if got := i.Handle("123", "remover +5511888887777", "Maria"); got != unknown {
		t.Fatalf("remover in group: got %q", got)
	}
}

func TestObserversAreNotified(t *testing.T) {
	notifier := &captureNotifier{}
	i := newTestInterpreter(t, Direct, notifier)
	id := "+5511999999999"

	i.Handle(id, "cadastrar +5511888887777", "")
	if len(notifier.sent) != 0 {
		t.Fatalf("registering an observer must not notify, got %v", notifier.sent)
	}

	response := i.Handle(id, "entrada 1500 salário", "")
	if len(notifier.sent) != 1 {
		t.Fatalf("expected 1 notification, got %d", len(notifier.sent))
	}
	n := notifier.sent[0]
	if n.conversationID != id || len(n.observers) != 1 || n.observers[0] != "+5511888887777" {
		t.Fatalf("unexpected notification target: %+v", n)
	}
	if n.message != response {
		t.Fatalf("expected notification to carry the response, got %q", n.message)
	}

	i.Handle(id, "desfazer", "")
	if len(notifier.sent) != 2 {
		t.Fatalf("expected undo to notify, got %d", len(notifier.sent))
	}

	// Reads never notify.
	i.Handle(id, "saldo", "")
	i.Handle(id, "listar", "")
	i.Handle(id, "resumo", "")
	if len(notifier.sent) != 2 {
		t.Fatalf("expected reads to stay silent, got %d", len(notifier.sent))
	}
}

func TestGroupMutationsNeverNotify(t *testing.T) {
	notifier := &captureNotifier{}
	i := newTestInterpreter(t, Group, notifier)

	i.Handle("123", "entrada 100", "Maria")
	i.Handle("123", "desfazer", "Maria")
	if len(notifier.sent) != 0 {
		t.Fatalf("expected no notifications in groups, got %v", notifier.sent)
	}
}

func TestHandleHelpAndUnknown(t *testing.T) {
	i := newTestInterpreter(t, Direct, nil)

	for _, text := range []string{"ajuda", "help", "start", "AJUDA"} {
		if got := i.Handle("+5511999999999", text, ""); got != config.WelcomeMessage {
			t.Fatalf("%q: expected welcome message, got %q", text, got)
		}
	}

	unknown := "❗ Comando não reconhecido. Digite 'ajuda' para ver os comandos disponíveis."
	for _, text := range []string{"", "   ", "transferir 100", "ENTRADAS 100"} {
		if got := i.Handle("+5511999999999", text, ""); got != unknown {
			t.Fatalf("%q: expected unknown command message, got %q", text, got)
		}
	}
}

func TestVerbsAreCaseInsensitive(t *testing.T) {
	i := newTestInterpreter(t, Direct, nil)

	got := i.Handle("+5511999999999", "ENTRADA 100 teste", "")
	if !strings.HasPrefix(got, "➕ R$ 100,00") {
		t.Fatalf("expected upper-case verb accepted, got %q", got)
	}
}

func TestConversationsAreIsolated(t *testing.T) {
	i := newTestInterpreter(t, Direct, nil)

	i.Handle("+5511999999999", "entrada 100", "")
	got := i.Handle("+5511777777777", "saldo", "")
	if !strings.Contains(got, "R$ 0,00") {
		t.Fatalf("expected independent ledger, got %q", got)
	}
}

func TestFormatPhone(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"+5511888887777", "+55 11 88888-7777"},
		{"+551188887777", "+551188887777"},   // 10 digits, shown as typed
		{"+4479460958", "+4479460958"},       // non-Brazilian prefix
		{"+5521999990000", "+55 21 99999-0000"},
	}
	for _, c := range cases {
		if got := formatPhone(c.in); got != c.want {
			t.Errorf("formatPhone(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}
