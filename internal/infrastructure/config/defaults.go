package config

import (
	"github.com/spf13/viper"

	"github.com/bnema/fastbrowser/internal/domain/entity"
)

// Keys of config.json.
const (
	keySearchEngine = "default_search_engine"
	keyTheme        = "theme"
	keyDownloadPath = "download_path"
	keyLanguage     = "language"
)

// envPrefix makes FASTBROWSER_THEME and friends override config.json.
const envPrefix = "FASTBROWSER"

// DefaultSettings returns the hardcoded settings for a user whose home is homeDir.
func DefaultSettings(homeDir string) *entity.Settings {
	return entity.DefaultSettings(homeDir)
}

func setDefaults(v *viper.Viper, defaults *entity.Settings) {
	v.SetDefault(keySearchEngine, defaults.DefaultSearchEngine)
	v.SetDefault(keyTheme, string(defaults.Theme))
	v.SetDefault(keyDownloadPath, defaults.DownloadPath)
	v.SetDefault(keyLanguage, string(defaults.Language))
}
