package whatsapp

import (
	"go.uber.org/zap"

	"finbot/internal/logging"
)

// ObserverNotifier forwards mutation responses to each observer number
// through the outbound sender. Delivery failures are logged and the
// remaining observers still get their copy.
type ObserverNotifier struct {
	sender Sender
	log    *logging.Logger
}

func NewObserverNotifier(sender Sender, log *logging.Logger) *ObserverNotifier {
	return &ObserverNotifier{sender: sender, log: log}
}

func (n *ObserverNotifier) Notify(conversationID string, observers []string, message string) {
	for _, observer := range observers {
		if err := n.sender.Send(observer, message); err != nil {
			n.log.Warn("notifying observer failed",
				zap.Error(err),
				zap.String("conversation", conversationID),
				zap.String("observer", observer))
		}
	}
}
