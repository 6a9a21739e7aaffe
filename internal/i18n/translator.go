package i18n

import (
	"context"
	"sync"

	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"

	"github.com/bnema/fastbrowser/internal/domain/entity"
	"github.com/bnema/fastbrowser/internal/logging"
)

// Translator renders UI strings in the current language.
// Apply switches the language at runtime; it is safe for concurrent use.
type Translator struct {
	cat catalog.Catalog

	mu      sync.RWMutex
	lang    entity.Language
	printer *message.Printer
}

// NewTranslator creates a translator starting in lang.
func NewTranslator(lang entity.Language) (*Translator, error) {
	cat, err := newCatalog()
	if err != nil {
		return nil, err
	}
	t := &Translator{cat: cat}
	t.set(lang)
	return t, nil
}

// Tag maps a settings language to its BCP 47 tag. Unknown values map to Russian.
func Tag(lang entity.Language) language.Tag {
	if lang == entity.LanguageEnglish {
		return language.English
	}
	return language.Russian
}

func (t *Translator) set(lang entity.Language) {
	if _, ok := entity.ParseLanguage(string(lang)); !ok {
		lang = entity.DefaultLanguage
	}
	t.mu.Lock()
	t.lang = lang
	t.printer = message.NewPrinter(Tag(lang), message.Catalog(t.cat))
	t.mu.Unlock()
}

// Language returns the current language.
func (t *Translator) Language() entity.Language {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.lang
}

// T translates key, formatting args into it.
func (t *Translator) T(key string, args ...any) string {
	t.mu.RLock()
	p := t.printer
	t.mu.RUnlock()
	return p.Sprintf(key, args...)
}

// LanguageName returns the name of lang written in lang itself, e.g. "русский".
func LanguageName(lang entity.Language) string {
	return display.Self.Name(Tag(lang))
}

// ThemeName returns the translated label of a theme.
func (t *Translator) ThemeName(theme entity.Theme) string {
	if theme == entity.ThemeDark {
		return t.T(MsgThemeDark)
	}
	return t.T(MsgThemeLight)
}

// ApplySettings switches to the language of settings.
func (t *Translator) ApplySettings(ctx context.Context, settings *entity.Settings) {
	if settings == nil || settings.Language == t.Language() {
		return
	}
	t.set(settings.Language)
	logging.FromContext(ctx).Info().Str("language", string(settings.Language)).Msg("UI language applied")
}
