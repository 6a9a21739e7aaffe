package repository

import (
	"context"

	"github.com/bnema/fastbrowser/internal/domain/entity"
)

// SessionRepository persists the tab snapshot restored at startup.
type SessionRepository interface {
	// Save overwrites the snapshot. An empty snapshot is still written.
	Save(ctx context.Context, snapshot entity.SessionSnapshot) error

	// Load returns the snapshot. Returns ErrNotFound if none was saved.
	Load(ctx context.Context) (entity.SessionSnapshot, error)

	// Delete removes the snapshot. No-op if absent.
	Delete(ctx context.Context) error
}
