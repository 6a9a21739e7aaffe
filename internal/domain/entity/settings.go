package entity

import (
	"errors"
	"strings"
)

// Theme selects the UI color palette.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// Legacy theme labels written by older releases of the browser.
const (
	legacyThemeLight = "Светлая"
	legacyThemeDark  = "Темная"
)

// ParseTheme maps a persisted theme value to a Theme.
// Returns false for values it does not recognize.
func ParseTheme(s string) (Theme, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case string(ThemeLight), strings.ToLower(legacyThemeLight):
		return ThemeLight, true
	case string(ThemeDark), strings.ToLower(legacyThemeDark):
		return ThemeDark, true
	}
	return "", false
}

// Language selects the UI translation.
type Language string

const (
	LanguageRussian Language = "ru"
	LanguageEnglish Language = "en"
)

// ParseLanguage maps a persisted language code to a Language.
func ParseLanguage(s string) (Language, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case string(LanguageRussian):
		return LanguageRussian, true
	case string(LanguageEnglish):
		return LanguageEnglish, true
	}
	return "", false
}

// Default settings values.
const (
	DefaultSearchEngine = "http://www.google.com"
	DefaultTheme        = ThemeLight
	DefaultLanguage     = LanguageRussian
)

// Settings holds the user preferences persisted in config.json.
type Settings struct {
	DefaultSearchEngine string   `json:"default_search_engine" jsonschema:"description=Page opened in new tabs and used for search queries,default=http://www.google.com"`
	Theme               Theme    `json:"theme" jsonschema:"enum=light,enum=dark,default=light"`
	DownloadPath        string   `json:"download_path" jsonschema:"description=Directory downloads are saved to (defaults to the home directory)"`
	Language            Language `json:"language" jsonschema:"enum=ru,enum=en,default=ru"`
}

// ErrInvalidSettings is returned when a settings record cannot be saved.
var ErrInvalidSettings = errors.New("invalid settings")

// DefaultSettings returns the hardcoded defaults. homeDir is used as the download path.
func DefaultSettings(homeDir string) *Settings {
	return &Settings{
		DefaultSearchEngine: DefaultSearchEngine,
		Theme:               DefaultTheme,
		DownloadPath:        homeDir,
		Language:            DefaultLanguage,
	}
}

// Validate checks that every field is set.
func (s *Settings) Validate() error {
	if s == nil {
		return ErrInvalidSettings
	}
	var missing []string
	if strings.TrimSpace(s.DefaultSearchEngine) == "" {
		missing = append(missing, "default_search_engine")
	}
	if strings.TrimSpace(string(s.Theme)) == "" {
		missing = append(missing, "theme")
	}
	if strings.TrimSpace(s.DownloadPath) == "" {
		missing = append(missing, "download_path")
	}
	if strings.TrimSpace(string(s.Language)) == "" {
		missing = append(missing, "language")
	}
	if len(missing) > 0 {
		return errors.Join(ErrInvalidSettings, errors.New("empty fields: "+strings.Join(missing, ", ")))
	}
	return nil
}

// Clone returns a copy of the settings.
func (s *Settings) Clone() *Settings {
	if s == nil {
		return nil
	}
	c := *s
	return &c
}
