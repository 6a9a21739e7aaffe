package usecase

import (
	"context"
	"fmt"

	"github.com/bnema/fastbrowser/internal/domain/entity"
	"github.com/bnema/fastbrowser/internal/domain/repository"
	"github.com/bnema/fastbrowser/internal/logging"
)

// SnapshotSessionUseCase writes or drops the tab snapshot at shutdown.
type SnapshotSessionUseCase struct {
	sessionRepo repository.SessionRepository
}

// NewSnapshotSessionUseCase creates a new SnapshotSessionUseCase.
func NewSnapshotSessionUseCase(sessionRepo repository.SessionRepository) *SnapshotSessionUseCase {
	return &SnapshotSessionUseCase{sessionRepo: sessionRepo}
}

// Persist writes the snapshot. An empty snapshot is written as an empty list.
func (uc *SnapshotSessionUseCase) Persist(ctx context.Context, snapshot entity.SessionSnapshot) error {
	log := logging.FromContext(ctx)

	if err := uc.sessionRepo.Save(ctx, snapshot); err != nil {
		log.Error().Err(err).Msg("Error saving tabs")
		return fmt.Errorf("persist session snapshot: %w", err)
	}

	log.Info().Int("tab_count", snapshot.Len()).Msg("Tabs saved")
	return nil
}

// Discard deletes the snapshot. No-op if there is none.
func (uc *SnapshotSessionUseCase) Discard(ctx context.Context) error {
	log := logging.FromContext(ctx)

	if err := uc.sessionRepo.Delete(ctx); err != nil {
		log.Error().Err(err).Msg("Error discarding tabs")
		return fmt.Errorf("discard session snapshot: %w", err)
	}

	log.Info().Msg("Saved tabs discarded")
	return nil
}

// ShutdownInput carries the user's answer to the keep-session prompt.
type ShutdownInput struct {
	Keep    bool
	TabList *entity.TabList
}

// Shutdown performs exactly one of Persist or Discard.
// Declining removes any snapshot left by an earlier session.
func (uc *SnapshotSessionUseCase) Shutdown(ctx context.Context, input ShutdownInput) error {
	logging.FromContext(ctx).Debug().Bool("keep", input.Keep).Msg("session shutdown")

	if !input.Keep {
		return uc.Discard(ctx)
	}
	return uc.Persist(ctx, entity.CaptureSession(input.TabList))
}
