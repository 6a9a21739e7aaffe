package port

import (
	"context"

	"github.com/bnema/fastbrowser/internal/domain/entity"
)

// SettingsObserver reacts to saved settings.
// Implemented by the shell to re-apply the theme and the UI language.
type SettingsObserver interface {
	// ApplySettings is called after the settings are on disk.
	ApplySettings(ctx context.Context, settings *entity.Settings)
}

// SettingsObserverFunc adapts a function to SettingsObserver.
type SettingsObserverFunc func(ctx context.Context, settings *entity.Settings)

// ApplySettings calls f.
func (f SettingsObserverFunc) ApplySettings(ctx context.Context, settings *entity.Settings) {
	f(ctx, settings)
}
