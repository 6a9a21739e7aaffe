package repository

import (
	"context"

	"github.com/bnema/fastbrowser/internal/domain/entity"
)

// SettingsRepository persists the user preferences document.
type SettingsRepository interface {
	// Load returns the persisted settings with per-field defaults applied.
	// On error the returned settings are still usable defaults.
	Load(ctx context.Context) (*entity.Settings, error)

	// Save writes every field as one document.
	Save(ctx context.Context, settings *entity.Settings) error
}
