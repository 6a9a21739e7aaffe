package config

import (
	"context"

	"github.com/fsnotify/fsnotify"

	"github.com/bnema/fastbrowser/internal/domain/entity"
	"github.com/bnema/fastbrowser/internal/logging"
)

// Watch starts watching config.json for changes made outside this process
// and reloads automatically. Callbacks registered with OnConfigChange run
// only when the reloaded settings differ from the current ones, so the
// manager's own saves do not trigger them.
func (m *Manager) Watch(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.watcher != nil {
		return nil // Already watching
	}

	if err := m.store.EnsureDir(); err != nil {
		return err
	}

	watchCtx := logging.WithComponent(ctx, "config-watcher")
	m.watchCtx = watchCtx

	// A separate Viper instance owns the fsnotify goroutine; the main one is
	// only touched under m.mu.
	w := newViper(m.store, m.defaults)
	w.OnConfigChange(func(e fsnotify.Event) {
		log := logging.FromContext(watchCtx)
		log.Debug().Str("op", e.Op.String()).Str("file", e.Name).Msg("fsnotify config change detected")
		m.reload(watchCtx)
	})
	w.WatchConfig()

	m.watcher = w
	return nil
}

func (m *Manager) reload(ctx context.Context) {
	log := logging.FromContext(ctx)

	before := m.Get()
	after, err := m.Load(ctx)
	if err != nil {
		log.Error().Err(err).Msg("Error reloading settings")
		return
	}
	if *before == *after {
		log.Debug().Msg("settings unchanged, skipping callbacks")
		return
	}

	log.Info().Msg("Settings reloaded")
	m.notify(after)
}

func (m *Manager) notify(settings *entity.Settings) {
	m.mu.Lock()
	callbacks := make([]func(*entity.Settings), len(m.callbacks))
	copy(callbacks, m.callbacks)
	m.mu.Unlock()

	for _, callback := range callbacks {
		callback(settings.Clone())
	}
}

// OnConfigChange registers a callback function to be called when config changes.
func (m *Manager) OnConfigChange(callback func(*entity.Settings)) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.callbacks = append(m.callbacks, callback)
}
