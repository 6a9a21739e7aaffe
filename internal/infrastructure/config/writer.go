package config

import (
	"context"
	"fmt"

	"github.com/bnema/fastbrowser/internal/domain/entity"
	"github.com/bnema/fastbrowser/internal/infrastructure/persistence/jsonstore"
	"github.com/bnema/fastbrowser/internal/logging"
)

// Save writes all four fields to config.json in one atomic replace and
// makes them the current settings. Empty fields are rejected.
func (m *Manager) Save(ctx context.Context, settings *entity.Settings) error {
	if err := settings.Validate(); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.store.Save(ctx, jsonstore.ConfigDocument, settings); err != nil {
		return fmt.Errorf("save settings: %w", err)
	}
	m.settings = settings.Clone()

	logging.FromContext(ctx).Debug().
		Str("theme", string(settings.Theme)).
		Str("language", string(settings.Language)).
		Msg("settings written")
	return nil
}
