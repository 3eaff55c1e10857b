package loads

import (
	"sync"

	"laundr/models"
)

// TransactionLog is the append-only audit record of every transaction
// intent, consumed by the activity/analytics collaborators. Intents are
// immutable once recorded.
type TransactionLog struct {
	mu      sync.RWMutex
	intents []models.TransactionIntent
}

// NewTransactionLog returns an empty audit log.
func NewTransactionLog() *TransactionLog {
	return &TransactionLog{}
}

// Record appends an intent to the log.
func (l *TransactionLog) Record(intent models.TransactionIntent) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.intents = append(l.intents, intent)
}

// All returns a copy of every recorded intent, oldest first.
func (l *TransactionLog) All() []models.TransactionIntent {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]models.TransactionIntent, len(l.intents))
	copy(out, l.intents)
	return out
}
