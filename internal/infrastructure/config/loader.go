// Package config manages the user settings document (config.json) with Viper.
package config

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"sync"

	"github.com/spf13/viper"

	"github.com/bnema/fastbrowser/internal/domain/entity"
	"github.com/bnema/fastbrowser/internal/domain/repository"
	"github.com/bnema/fastbrowser/internal/infrastructure/persistence/jsonstore"
	"github.com/bnema/fastbrowser/internal/logging"
)

// Manager handles settings loading, saving, watching, and reloading.
type Manager struct {
	store    *jsonstore.Store
	defaults *entity.Settings

	mu        sync.Mutex
	viper     *viper.Viper
	settings  *entity.Settings
	callbacks []func(*entity.Settings)
	watcher   *viper.Viper
	watchCtx  context.Context
}

var _ repository.SettingsRepository = (*Manager)(nil)

// NewManager creates a settings manager for store's config.json.
// homeDir is the default download path; empty means the current user's home.
func NewManager(store *jsonstore.Store, homeDir string) *Manager {
	if homeDir == "" {
		if home, err := os.UserHomeDir(); err == nil {
			homeDir = home
		}
	}
	defaults := DefaultSettings(homeDir)

	return &Manager{
		store:    store,
		defaults: defaults,
		viper:    newViper(store, defaults),
		settings: defaults.Clone(),
	}
}

func newViper(store *jsonstore.Store, defaults *entity.Settings) *viper.Viper {
	v := viper.New()
	v.SetConfigFile(store.Path(jsonstore.ConfigDocument))
	v.SetConfigType("json")

	// FASTBROWSER_DEFAULT_SEARCH_ENGINE, FASTBROWSER_THEME, ...
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v, defaults)
	return v
}

// Defaults returns the hardcoded defaults used for missing fields.
func (m *Manager) Defaults() *entity.Settings {
	return m.defaults.Clone()
}

// Load reads config.json. Missing fields take their default individually.
// A missing document yields the defaults and no error. A corrupt or unreadable
// document yields the defaults and an error wrapping repository.ErrCorruptData
// or repository.ErrIOFailure.
func (m *Manager) Load(ctx context.Context) (*entity.Settings, error) {
	log := logging.FromContext(ctx)

	m.mu.Lock()
	defer m.mu.Unlock()

	unlock, err := m.store.Lock(ctx, jsonstore.ConfigDocument)
	if err != nil {
		m.settings = m.defaults.Clone()
		return m.settings.Clone(), err
	}
	readErr := m.readConfigFile()
	unlock()

	if readErr != nil {
		m.resetViper()
		if errors.Is(readErr, repository.ErrNotFound) {
			log.Debug().Str("path", m.viper.ConfigFileUsed()).Msg("no settings file, using defaults")
			readErr = nil
		}
	}

	m.settings = settingsFromViper(m.viper, m.defaults, log)
	return m.settings.Clone(), readErr
}

func (m *Manager) readConfigFile() error {
	err := m.viper.ReadInConfig()
	if err == nil {
		return nil
	}

	path := m.store.Path(jsonstore.ConfigDocument)
	if errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("load %s: %w", jsonstore.ConfigDocument, repository.ErrNotFound)
	}
	var pathErr *fs.PathError
	if errors.As(err, &pathErr) {
		return fmt.Errorf("read settings file at %s: %w: %w", path, repository.ErrIOFailure, err)
	}
	return fmt.Errorf("parse settings file at %s: %w: %w", path, repository.ErrCorruptData, err)
}

// resetViper drops values kept from an earlier successful read.
func (m *Manager) resetViper() {
	_ = m.viper.ReadConfig(bytes.NewReader([]byte("{}")))
}

// Get returns the most recently loaded or saved settings.
func (m *Manager) Get() *entity.Settings {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.settings.Clone()
}
