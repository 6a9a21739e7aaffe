package usecase

import (
	"context"
	"fmt"
	"sync"

	"github.com/bnema/fastbrowser/internal/application/port"
	"github.com/bnema/fastbrowser/internal/domain/entity"
	"github.com/bnema/fastbrowser/internal/domain/repository"
	"github.com/bnema/fastbrowser/internal/logging"
)

// ManageSettingsUseCase loads and saves the settings record and tells
// observers (theme, language) when it changes.
type ManageSettingsUseCase struct {
	settingsRepo repository.SettingsRepository
	fallback     *entity.Settings

	mu        sync.RWMutex
	current   *entity.Settings
	observers []port.SettingsObserver
}

// NewManageSettingsUseCase creates a new settings use case.
// fallback is used until Load succeeds and whenever the repository returns nothing.
func NewManageSettingsUseCase(settingsRepo repository.SettingsRepository, fallback *entity.Settings) *ManageSettingsUseCase {
	return &ManageSettingsUseCase{
		settingsRepo: settingsRepo,
		fallback:     fallback.Clone(),
		current:      fallback.Clone(),
	}
}

// Subscribe registers an observer notified after every successful save or reload.
func (uc *ManageSettingsUseCase) Subscribe(observer port.SettingsObserver) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	uc.observers = append(uc.observers, observer)
}

// Current returns the settings in effect.
func (uc *ManageSettingsUseCase) Current() *entity.Settings {
	uc.mu.RLock()
	defer uc.mu.RUnlock()
	return uc.current.Clone()
}

// Load reads the persisted settings with per-field defaults.
// On failure the returned settings are the defaults and the error is logged.
func (uc *ManageSettingsUseCase) Load(ctx context.Context) (*entity.Settings, error) {
	log := logging.FromContext(ctx)

	settings, err := uc.settingsRepo.Load(ctx)
	if settings == nil {
		settings = uc.fallback.Clone()
	}
	if err != nil {
		log.Error().Err(err).Msg("Error loading settings")
	}

	uc.mu.Lock()
	uc.current = settings.Clone()
	uc.mu.Unlock()

	log.Debug().
		Str("search_engine", settings.DefaultSearchEngine).
		Str("theme", string(settings.Theme)).
		Str("language", string(settings.Language)).
		Msg("settings loaded")

	if err != nil {
		return settings, fmt.Errorf("load settings: %w", err)
	}
	return settings, nil
}

// Save persists all four fields, then notifies observers. If the write fails
// the settings in effect are left unchanged and observers are not called.
func (uc *ManageSettingsUseCase) Save(ctx context.Context, settings *entity.Settings) error {
	log := logging.FromContext(ctx)

	if err := settings.Validate(); err != nil {
		log.Error().Err(err).Msg("Error saving settings")
		return err
	}

	if err := uc.settingsRepo.Save(ctx, settings); err != nil {
		log.Error().Err(err).Msg("Error saving settings")
		return fmt.Errorf("save settings: %w", err)
	}

	log.Info().Msg("Settings saved")
	uc.apply(ctx, settings)
	return nil
}

// Reloaded adopts settings changed outside this process and notifies observers.
func (uc *ManageSettingsUseCase) Reloaded(ctx context.Context, settings *entity.Settings) {
	if settings == nil {
		return
	}
	logging.FromContext(ctx).Info().Msg("Settings changed on disk")
	uc.apply(ctx, settings)
}

func (uc *ManageSettingsUseCase) apply(ctx context.Context, settings *entity.Settings) {
	uc.mu.Lock()
	uc.current = settings.Clone()
	observers := make([]port.SettingsObserver, len(uc.observers))
	copy(observers, uc.observers)
	uc.mu.Unlock()

	for _, observer := range observers {
		observer.ApplySettings(ctx, settings.Clone())
	}
}
