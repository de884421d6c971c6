package usecase

import (
	"sync"

	"go.uber.org/zap"

	"finbot/internal/entity"
	"finbot/internal/logging"
)

// Store keeps every conversation ledger in memory and rewrites the full
// persisted mapping after each mutation. The mutex serializes the
// read-modify-write sequences when the transport delivers messages
// concurrently.
type Store struct {
	mu      sync.Mutex
	repo    ledgerRepository
	log     *logging.Logger
	ledgers map[string]*entity.Ledger
}

func NewStore(repo ledgerRepository, log *logging.Logger) *Store {
	ledgers, err := repo.Load()
	if err != nil {
		log.Warn("loading stored ledgers failed, starting empty", zap.Error(err))
	}
	if ledgers == nil {
		ledgers = make(map[string]*entity.Ledger)
	}
	return &Store{repo: repo, log: log, ledgers: ledgers}
}

// View runs fn with the conversation's ledger. An unseen conversation id
// gets an empty ledger created in memory.
func (s *Store) View(conversationID string, fn func(*entity.Ledger)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.ledger(conversationID))
}

// Update runs fn with the conversation's ledger and, when fn reports a
// change, rewrites the persisted mapping. A failed write is logged and
// the in-memory state is not rolled back.
func (s *Store) Update(conversationID string, fn func(*entity.Ledger) bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !fn(s.ledger(conversationID)) {
		return
	}
	if err := s.repo.Save(s.ledgers); err != nil {
		s.log.Error("persisting ledgers failed",
			zap.Error(err), zap.String("conversation", conversationID))
	}
}

func (s *Store) ledger(conversationID string) *entity.Ledger {
	l, ok := s.ledgers[conversationID]
	if !ok {
		l = entity.NewLedger(conversationID)
		s.ledgers[conversationID] = l
	}
	return l
}
