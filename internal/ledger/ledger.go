// Package ledger keeps the session's journal of transaction attempts.
package ledger

import (
	"time"

	"github.com/nerdbank/teller/internal/id"
	"github.com/nerdbank/teller/internal/model"
)

// Ledger is an append-only, in-memory journal. It is not safe for concurrent use.
type Ledger struct {
	seq     id.Sequence
	entries []model.Transaction
	now     func() time.Time
}

// New creates an empty ledger stamped with the wall clock.
func New() *Ledger {
	return &Ledger{now: time.Now}
}

// NewWithClock creates an empty ledger stamped with now (for tests).
func NewWithClock(now func() time.Time) *Ledger {
	return &Ledger{now: now}
}

// Record assigns tx the next ID and the current time, appends it, and returns
// the stored copy.
func (l *Ledger) Record(tx model.Transaction) model.Transaction {
	tx.ID = id.FormatTxnID(l.seq.Next())
	tx.Time = l.now().UTC().Truncate(time.Second)
	l.entries = append(l.entries, tx)
	return tx
}

// Entries returns all recorded transactions in order.
func (l *Ledger) Entries() []model.Transaction {
	return l.entries
}

// ForCustomer returns the transactions of one customer in order.
func (l *Ledger) ForCustomer(customerID int) []model.Transaction {
	var result []model.Transaction
	for _, tx := range l.entries {
		if tx.CustomerID == customerID {
			result = append(result, tx)
		}
	}
	return result
}

// Summary counts transactions per outcome, keyed by outcome name.
func Summary(txs []model.Transaction) map[string]int {
	counts := make(map[string]int)
	for _, tx := range txs {
		counts[tx.Outcome]++
	}
	return counts
}
