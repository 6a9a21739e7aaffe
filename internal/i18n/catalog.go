// Package i18n holds the shell's UI strings in Russian and English.
package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message/catalog"
)

// Message keys. The key doubles as the English text.
const (
	MsgAppTitle       = "Fast Browser"
	MsgNewTab         = "New Tab"
	MsgTranslate      = "Translate"
	MsgSettings       = "Settings"
	MsgHistory        = "History"
	MsgSearchEngine   = "Search page:"
	MsgTheme          = "Theme:"
	MsgDownloadPath   = "Download path:"
	MsgLanguage       = "Language:"
	MsgSave           = "Save"
	MsgSettingsSaved  = "Settings saved"
	MsgThemeLight     = "Light"
	MsgThemeDark      = "Dark"
	MsgKeepTabsTitle  = "Save tabs"
	MsgKeepTabsPrompt = "Do you want to save open tabs for the next session?"
	MsgDeleteTitle    = "Delete history"
	MsgDeletePrompt   = "Are you sure you want to delete %s from history?"
	MsgYes            = "Yes"
	MsgNo             = "No"
	MsgHistoryEmpty   = "History is empty"
	MsgFilter         = "Filter:"
	MsgError          = "Error"
	MsgRestoreFailed  = "Saved tabs could not be read; opened the start page"
	MsgHelpNavigate   = "enter: open • ctrl+t: new tab • ctrl+w: close • tab: next • ctrl+r: translate • ctrl+h: history • ctrl+s: settings • ctrl+q: quit"
	MsgHelpHistory    = "enter: open • d: delete • /: filter • esc: back"
	MsgHelpSettings   = "↑/↓: field • ←/→: change • enter: save • esc: back"
	MsgTabsCount      = "%d tabs"
	MsgEntriesCount   = "%d entries"
	MsgSavedTabs      = "Saved tabs"
	MsgDiscardPrompt  = "Delete the saved tabs?"
	MsgNoSavedTabs    = "No saved tabs; the next start opens %s"
)

var russian = map[string]string{
	MsgAppTitle:       "Fast Browser",
	MsgNewTab:         "Новая вкладка",
	MsgTranslate:      "Перевести",
	MsgSettings:       "Настройки",
	MsgHistory:        "История",
	MsgSearchEngine:   "Поисковая страница:",
	MsgTheme:          "Тема:",
	MsgDownloadPath:   "Путь загрузки:",
	MsgLanguage:       "Язык:",
	MsgSave:           "Сохранить",
	MsgSettingsSaved:  "Настройки сохранены",
	MsgThemeLight:     "Светлая",
	MsgThemeDark:      "Темная",
	MsgKeepTabsTitle:  "Сохранить вкладки",
	MsgKeepTabsPrompt: "Вы хотите сохранить открытые вкладки для следующего сеанса?",
	MsgDeleteTitle:    "Удалить историю",
	MsgDeletePrompt:   "Вы уверены, что хотите удалить %s из истории?",
	MsgYes:            "Да",
	MsgNo:             "Нет",
	MsgHistoryEmpty:   "История пуста",
	MsgFilter:         "Фильтр:",
	MsgError:          "Ошибка",
	MsgRestoreFailed:  "Не удалось прочитать сохраненные вкладки; открыта стартовая страница",
	MsgHelpNavigate:   "enter: открыть • ctrl+t: новая вкладка • ctrl+w: закрыть • tab: следующая • ctrl+r: перевести • ctrl+h: история • ctrl+s: настройки • ctrl+q: выход",
	MsgHelpHistory:    "enter: открыть • d: удалить • /: фильтр • esc: назад",
	MsgHelpSettings:   "↑/↓: поле • ←/→: изменить • enter: сохранить • esc: назад",
	MsgTabsCount:      "вкладок: %d",
	MsgEntriesCount:   "записей: %d",
	MsgSavedTabs:      "Сохраненные вкладки",
	MsgDiscardPrompt:  "Удалить сохраненные вкладки?",
	MsgNoSavedTabs:    "Сохраненных вкладок нет; при следующем запуске откроется %s",
}

// Supported lists the UI languages, the first being the fallback.
var Supported = []language.Tag{language.Russian, language.English}

func newCatalog() (catalog.Catalog, error) {
	b := catalog.NewBuilder(catalog.Fallback(language.Russian))
	for key, text := range russian {
		if err := b.SetString(language.Russian, key, text); err != nil {
			return nil, err
		}
		if err := b.SetString(language.English, key, key); err != nil {
			return nil, err
		}
	}
	return b, nil
}
