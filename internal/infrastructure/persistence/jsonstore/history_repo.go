package jsonstore

import (
	"context"

	"github.com/bnema/fastbrowser/internal/domain/entity"
	"github.com/bnema/fastbrowser/internal/domain/repository"
)

type historyRepo struct {
	store *Store
}

// NewHistoryRepository returns a history repository backed by history.json.
func NewHistoryRepository(store *Store) repository.HistoryRepository {
	return &historyRepo{store: store}
}

func (r *historyRepo) Load(ctx context.Context) (entity.HistoryLedger, error) {
	var ledger entity.HistoryLedger
	if err := r.store.Load(ctx, HistoryDocument, &ledger); err != nil {
		return entity.HistoryLedger{}, err
	}
	if ledger == nil {
		ledger = entity.HistoryLedger{}
	}
	return ledger, nil
}

func (r *historyRepo) Update(ctx context.Context, mutate func(ledger *entity.HistoryLedger) bool) error {
	var ledger entity.HistoryLedger
	return r.store.Update(ctx, HistoryDocument, &ledger, func(found bool) (bool, error) {
		if !found || ledger == nil {
			ledger = entity.HistoryLedger{}
		}
		return mutate(&ledger), nil
	})
}
