package config

import (
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"

	"github.com/bnema/fastbrowser/internal/domain/entity"
)

// settingsFromViper builds settings field by field. A missing, empty or
// unrecognized field falls back to its default without affecting the others.
func settingsFromViper(v *viper.Viper, defaults *entity.Settings, log *zerolog.Logger) *entity.Settings {
	s := &entity.Settings{
		DefaultSearchEngine: stringOr(v, keySearchEngine, defaults.DefaultSearchEngine),
		DownloadPath:        stringOr(v, keyDownloadPath, defaults.DownloadPath),
	}

	rawTheme := stringOr(v, keyTheme, string(defaults.Theme))
	if theme, ok := entity.ParseTheme(rawTheme); ok {
		s.Theme = theme
	} else {
		log.Warn().Str("theme", rawTheme).Msg("unknown theme, using default")
		s.Theme = defaults.Theme
	}

	rawLang := stringOr(v, keyLanguage, string(defaults.Language))
	if lang, ok := entity.ParseLanguage(rawLang); ok {
		s.Language = lang
	} else {
		log.Warn().Str("language", rawLang).Msg("unknown language, using default")
		s.Language = defaults.Language
	}

	return s
}

func stringOr(v *viper.Viper, key, fallback string) string {
	if s := strings.TrimSpace(v.GetString(key)); s != "" {
		return s
	}
	return fallback
}
