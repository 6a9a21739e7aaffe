package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/bnema/fastbrowser/internal/domain/repository"
	"github.com/bnema/fastbrowser/internal/logging"
)

// RestoreSessionUseCase decides which tabs open at startup.
type RestoreSessionUseCase struct {
	sessionRepo repository.SessionRepository
}

// NewRestoreSessionUseCase creates a new RestoreSessionUseCase.
func NewRestoreSessionUseCase(sessionRepo repository.SessionRepository) *RestoreSessionUseCase {
	return &RestoreSessionUseCase{sessionRepo: sessionRepo}
}

// RestoreInput contains the parameters for restoring a session.
type RestoreInput struct {
	// DefaultSearchEngine is opened when there is no usable snapshot.
	DefaultSearchEngine string
}

// RestoreOutput contains the URLs to open, in order.
type RestoreOutput struct {
	URLs []string
	// FromSnapshot is false when URLs is the single-tab fallback.
	FromSnapshot bool
}

// Restore returns the saved tab URLs, which may be empty, or the default
// search engine alone when nothing was saved. A corrupt or unreadable
// snapshot also yields the fallback, together with the error.
func (uc *RestoreSessionUseCase) Restore(ctx context.Context, input RestoreInput) (*RestoreOutput, error) {
	log := logging.FromContext(ctx)

	fallback := &RestoreOutput{URLs: []string{input.DefaultSearchEngine}}

	snapshot, err := uc.sessionRepo.Load(ctx)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			log.Debug().Msg("no saved tabs, opening default search engine")
			return fallback, nil
		}
		log.Error().Err(err).Msg("Error restoring tabs")
		return fallback, fmt.Errorf("restore session: %w", err)
	}

	urls := make([]string, len(snapshot.URLs))
	copy(urls, snapshot.URLs)

	log.Info().Int("tab_count", len(urls)).Msg("Tabs restored")
	return &RestoreOutput{URLs: urls, FromSnapshot: true}, nil
}
