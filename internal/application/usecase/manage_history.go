package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/bnema/fastbrowser/internal/domain/entity"
	"github.com/bnema/fastbrowser/internal/domain/repository"
	"github.com/bnema/fastbrowser/internal/logging"
)

// ManageHistoryUseCase records, removes and lists visited pages.
type ManageHistoryUseCase struct {
	historyRepo repository.HistoryRepository
	now         func() time.Time
}

// HistoryOption configures a ManageHistoryUseCase.
type HistoryOption func(*ManageHistoryUseCase)

// WithClock overrides the time source used for visit timestamps.
func WithClock(now func() time.Time) HistoryOption {
	return func(uc *ManageHistoryUseCase) {
		if now != nil {
			uc.now = now
		}
	}
}

// NewManageHistoryUseCase creates a new history use case.
func NewManageHistoryUseCase(historyRepo repository.HistoryRepository, opts ...HistoryOption) *ManageHistoryUseCase {
	uc := &ManageHistoryUseCase{
		historyRepo: historyRepo,
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// AddVisit appends url with the current time unless it is already recorded.
// The first visit's timestamp is kept. An empty url is ignored.
func (uc *ManageHistoryUseCase) AddVisit(ctx context.Context, url string) error {
	log := logging.FromContext(ctx)

	if strings.TrimSpace(url) == "" {
		log.Debug().Msg("ignoring empty history url")
		return nil
	}

	added := false
	err := uc.historyRepo.Update(ctx, func(ledger *entity.HistoryLedger) bool {
		added = ledger.Add(url, uc.now())
		return added
	})
	if err != nil {
		log.Error().Err(err).Str("url", url).Msg("Error adding to history")
		return fmt.Errorf("add visit: %w", err)
	}

	if added {
		log.Info().Str("url", url).Msg("Added to history")
	} else {
		log.Debug().Str("url", url).Msg("url already in history")
	}
	return nil
}

// RemoveVisit deletes every entry for url. Removing an unknown url is a no-op.
func (uc *ManageHistoryUseCase) RemoveVisit(ctx context.Context, url string) error {
	log := logging.FromContext(ctx)

	removed := false
	err := uc.historyRepo.Update(ctx, func(ledger *entity.HistoryLedger) bool {
		removed = ledger.Remove(url)
		return removed
	})
	if err != nil {
		log.Error().Err(err).Str("url", url).Msg("Error removing from history")
		return fmt.Errorf("remove visit: %w", err)
	}

	log.Info().Str("url", url).Bool("found", removed).Msg("Removed from history")
	return nil
}

// ListVisits returns the ledger in file order, oldest first.
// The slice is never nil: a missing ledger is empty, and on any other
// failure an empty slice is returned together with the error.
func (uc *ManageHistoryUseCase) ListVisits(ctx context.Context) ([]entity.HistoryEntry, error) {
	log := logging.FromContext(ctx)

	ledger, err := uc.historyRepo.Load(ctx)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return []entity.HistoryEntry{}, nil
		}
		log.Error().Err(err).Msg("Error reading history")
		return []entity.HistoryEntry{}, fmt.Errorf("list visits: %w", err)
	}

	return ledger.Entries(), nil
}

// Search lists the entries whose URL contains query, ignoring case.
// An empty query matches everything.
func (uc *ManageHistoryUseCase) Search(ctx context.Context, query string) ([]entity.HistoryEntry, error) {
	entries, err := uc.ListVisits(ctx)
	if err != nil {
		return entries, err
	}

	matches := entity.HistoryLedger(entries).Filter(query)
	logging.FromContext(ctx).Debug().
		Str("query", query).
		Int("matches", len(matches)).
		Msg("history search completed")
	return matches, nil
}
