package whatsapp

import (
	"encoding/json"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"finbot/internal/command"
	"finbot/internal/logging"
)

// WebhookPayload mirrors the inbound message event shape of the
// wasender webhook.
type WebhookPayload struct {
	Event     string `json:"event"`
	SessionID string `json:"sessionId"`
	Timestamp int64  `json:"timestamp"`
	Data      struct {
		Messages struct {
			Key struct {
				RemoteJid string `json:"remoteJid"`
				FromMe    bool   `json:"fromMe"`
				ID        string `json:"id"`
			} `json:"key"`
			MessageTimestamp int64  `json:"messageTimestamp"`
			PushName         string `json:"pushName"`
			Message          struct {
				Conversation string `json:"conversation"`
			} `json:"message"`
		} `json:"messages"`
	} `json:"data"`
}

// WebhookHandler receives inbound messages, runs them through the
// interpreter and replies through the sender.
type WebhookHandler struct {
	interpreter *command.Interpreter
	sender      Sender
	log         *logging.Logger
}

func NewWebhookHandler(interpreter *command.Interpreter, sender Sender, log *logging.Logger) *WebhookHandler {
	return &WebhookHandler{interpreter: interpreter, sender: sender, log: log}
}

func (h *WebhookHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var payload WebhookPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "bad payload", http.StatusBadRequest)
		return
	}
	w.WriteHeader(http.StatusOK)

	msg := payload.Data.Messages
	if msg.Key.FromMe {
		return
	}

	number := strings.Replace(msg.Key.RemoteJid, "@s.whatsapp.net", "", 1)
	text := msg.Message.Conversation
	if number == "" || text == "" {
		return
	}

	response := h.interpreter.Handle(number, text, msg.PushName)
	if response == "" {
		return
	}

	if err := h.sender.Send(number, response); err != nil {
		h.log.Warn("sending reply failed", zap.Error(err), zap.String("number", number))
	}
}
