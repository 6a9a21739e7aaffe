package repository

import (
	"context"

	"github.com/bnema/fastbrowser/internal/domain/entity"
)

// HistoryRepository persists the history ledger as one document.
type HistoryRepository interface {
	// Load reads the whole ledger. Returns ErrNotFound if no ledger exists yet.
	Load(ctx context.Context) (entity.HistoryLedger, error)

	// Update loads the ledger, applies mutate and rewrites it if mutate reports a change.
	// The read-modify-write runs under the document lock.
	Update(ctx context.Context, mutate func(ledger *entity.HistoryLedger) bool) error
}
