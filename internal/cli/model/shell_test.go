package model

import (
	"context"
	"path/filepath"
	"strconv"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/bnema/fastbrowser/internal/application/usecase"
	"github.com/bnema/fastbrowser/internal/domain/entity"
	"github.com/bnema/fastbrowser/internal/domain/repository/mocks"
	"github.com/bnema/fastbrowser/internal/i18n"
	"github.com/bnema/fastbrowser/internal/infrastructure/persistence/jsonstore"
	"github.com/bnema/fastbrowser/internal/logging"
)

const testEngine = "http://www.google.com"

type shellFixture struct {
	model       ShellModel
	historyUC   *usecase.ManageHistoryUseCase
	sessionRepo *mocks.MockSessionRepository
	settingRepo *mocks.MockSettingsRepository
}

func testContext() context.Context {
	return logging.WithContext(context.Background(), logging.New(logging.ConfigFromValues("disabled", "console")))
}

func newShellFixture(t *testing.T, urls ...string) *shellFixture {
	t.Helper()
	ctx := testContext()

	store := jsonstore.New(filepath.Join(t.TempDir(), "fastbrowser"))
	historyUC := usecase.NewManageHistoryUseCase(jsonstore.NewHistoryRepository(store))
	sessionRepo := mocks.NewMockSessionRepository(t)
	settingsRepo := mocks.NewMockSettingsRepository(t)

	translator, err := i18n.NewTranslator(entity.LanguageEnglish)
	require.NoError(t, err)

	n := 0
	ids := func() string {
		n++
		return "tab-" + strconv.Itoa(n)
	}

	settings := entity.DefaultSettings("/home/tester")
	settings.Language = entity.LanguageEnglish

	deps := ShellDeps{
		Tabs:       usecase.NewManageTabsUseCase(ids, historyUC),
		Navigate:   usecase.NewNavigateUseCase(historyUC),
		History:    historyUC,
		Settings:   usecase.NewManageSettingsUseCase(settingsRepo, settings),
		Snapshot:   usecase.NewSnapshotSessionUseCase(sessionRepo),
		Translator: translator,
	}

	if len(urls) == 0 {
		urls = []string{testEngine}
	}
	tabs := entity.NewTabList()
	for _, u := range urls {
		out, err := deps.Tabs.Open(ctx, usecase.OpenTabInput{TabList: tabs, URL: u, DefaultSearchEngine: testEngine})
		require.NoError(t, err)
		require.NotNil(t, out.Tab)
	}

	return &shellFixture{
		model:       NewShellModel(ctx, deps, tabs, ""),
		historyUC:   historyUC,
		sessionRepo: sessionRepo,
		settingRepo: settingsRepo,
	}
}

// send feeds msgs to the shell and returns the command of the last one.
func (f *shellFixture) send(t *testing.T, msgs ...tea.Msg) tea.Cmd {
	t.Helper()
	var cmd tea.Cmd
	for _, msg := range msgs {
		var updated tea.Model
		updated, cmd = f.model.Update(msg)
		m, ok := updated.(ShellModel)
		require.True(t, ok)
		f.model = m
	}
	return cmd
}

// run executes cmd and feeds its message back to the shell.
func (f *shellFixture) run(t *testing.T, cmd tea.Cmd) tea.Cmd {
	t.Helper()
	require.NotNil(t, cmd)
	return f.send(t, cmd())
}

func (f *shellFixture) visited(t *testing.T) []string {
	t.Helper()
	entries, err := f.historyUC.ListVisits(testContext())
	require.NoError(t, err)
	urls := make([]string, len(entries))
	for i, e := range entries {
		urls[i] = e.URL
	}
	return urls
}

func typeText(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestShell_NavigateSearchesAndRecords(t *testing.T) {
	f := newShellFixture(t)
	f.model.urlBar.SetValue("")

	f.send(t, typeText("golang tips"), tea.KeyMsg{Type: tea.KeyEnter})

	want := testEngine + "/search?q=golang+tips"
	assert.Equal(t, want, f.model.Tabs().ActiveTab().URL())
	assert.Equal(t, want, f.model.urlBar.Value())
	assert.Equal(t, []string{testEngine, want}, f.visited(t))
}

func TestShell_NavigateToURLVerbatim(t *testing.T) {
	f := newShellFixture(t)
	f.model.urlBar.SetValue("")

	f.send(t, typeText("https://go.dev/doc"), tea.KeyMsg{Type: tea.KeyEnter})

	assert.Equal(t, "https://go.dev/doc", f.model.Tabs().ActiveTab().URL())
}

func TestShell_NewAndCloseTab(t *testing.T) {
	f := newShellFixture(t, "https://a.example")

	f.send(t, tea.KeyMsg{Type: tea.KeyCtrlT})
	require.Equal(t, 2, f.model.Tabs().Count())
	assert.Equal(t, 1, f.model.Tabs().ActiveIndex())
	assert.Equal(t, testEngine, f.model.Tabs().ActiveTab().URL())

	f.send(t, tea.KeyMsg{Type: tea.KeyCtrlW})
	assert.Equal(t, 1, f.model.Tabs().Count())
	assert.Equal(t, "https://a.example", f.model.urlBar.Value())

	// The last tab stays open.
	f.send(t, tea.KeyMsg{Type: tea.KeyCtrlW})
	assert.Equal(t, 1, f.model.Tabs().Count())
}

func TestShell_TabCyclesActiveTab(t *testing.T) {
	f := newShellFixture(t, "https://a.example", "https://b.example")
	f.model.Tabs().Activate(0)

	f.send(t, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, "https://b.example", f.model.urlBar.Value())

	f.send(t, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, "https://a.example", f.model.urlBar.Value())
}

func TestShell_TranslateIsNotRecorded(t *testing.T) {
	f := newShellFixture(t, "https://a.example/page")

	f.send(t, tea.KeyMsg{Type: tea.KeyCtrlR})

	assert.Contains(t, f.model.Tabs().ActiveTab().URL(), "https://translate.google.com/translate?")
	assert.Contains(t, f.model.Tabs().ActiveTab().URL(), "tl=en")
	assert.Equal(t, []string{"https://a.example/page"}, f.visited(t))
}

func TestShell_HistoryPaneOpensEntryInNewTab(t *testing.T) {
	f := newShellFixture(t, "https://a.example", "https://b.example")

	cmd := f.send(t, tea.KeyMsg{Type: tea.KeyCtrlH})
	f.run(t, cmd)

	require.NotNil(t, f.model.history)
	assert.Len(t, f.model.history.Entries(), 2)
	_, isPane := f.model.Tabs().ActiveTab().Content.(entity.HistoryPaneContent)
	assert.True(t, isPane)

	// Newest first: the selected entry is b.
	cmd = f.send(t, tea.KeyMsg{Type: tea.KeyEnter})
	f.run(t, cmd)

	assert.Equal(t, 4, f.model.Tabs().Count())
	assert.Equal(t, "https://b.example", f.model.Tabs().ActiveTab().URL())
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, f.visited(t))
}

func TestShell_HistoryPaneIsReused(t *testing.T) {
	f := newShellFixture(t)

	f.run(t, f.send(t, tea.KeyMsg{Type: tea.KeyCtrlH}))
	f.send(t, tea.KeyMsg{Type: tea.KeyTab})
	f.run(t, f.send(t, tea.KeyMsg{Type: tea.KeyCtrlH}))

	assert.Equal(t, 2, f.model.Tabs().Count())
}

func TestShell_HistoryDeleteNeedsConfirmation(t *testing.T) {
	f := newShellFixture(t, "https://a.example", "https://b.example")
	f.run(t, f.send(t, tea.KeyMsg{Type: tea.KeyCtrlH}))

	// Declining keeps the entry.
	f.send(t, typeText("d"), tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, f.visited(t))

	// Confirming removes it and reloads the list.
	cmd := f.send(t, typeText("d"), typeText("y"))
	reload := f.run(t, cmd)
	f.run(t, reload)

	assert.Equal(t, []string{"https://a.example"}, f.visited(t))
	assert.Len(t, f.model.history.Entries(), 1)
}

func TestShell_HistoryFilter(t *testing.T) {
	f := newShellFixture(t, "https://go.dev", "https://example.com")
	f.run(t, f.send(t, tea.KeyMsg{Type: tea.KeyCtrlH}))

	f.send(t, typeText("/"))
	// Run the search directly: the key's command is batched with the cursor blink.
	f.send(t, typeText("GO"))
	f.run(t, f.model.history.Reload())

	require.Len(t, f.model.history.Entries(), 1)
	assert.Equal(t, "https://go.dev", f.model.history.Entries()[0].URL)
}

func TestShell_SettingsSaveAppliesTheme(t *testing.T) {
	f := newShellFixture(t)
	f.settingRepo.EXPECT().
		Save(mock.Anything, mock.MatchedBy(func(s *entity.Settings) bool {
			return s.Theme == entity.ThemeDark && s.DefaultSearchEngine == testEngine
		})).
		Return(nil).
		Once()

	f.send(t, tea.KeyMsg{Type: tea.KeyCtrlS})
	require.NotNil(t, f.model.settings)

	f.send(t, tea.KeyMsg{Type: tea.KeyDown}, tea.KeyMsg{Type: tea.KeyRight})
	f.run(t, f.send(t, tea.KeyMsg{Type: tea.KeyEnter}))

	assert.Equal(t, entity.ThemeDark, f.model.theme.Name)
	assert.Equal(t, "Settings saved", f.model.status)
	assert.NoError(t, f.model.err)
}

func TestShell_SettingsRejectsEmptyField(t *testing.T) {
	f := newShellFixture(t)

	f.send(t, tea.KeyMsg{Type: tea.KeyCtrlS})
	f.model.settings.searchEngine.SetValue("  ")
	f.run(t, f.send(t, tea.KeyMsg{Type: tea.KeyEnter}))

	assert.ErrorIs(t, f.model.err, entity.ErrInvalidSettings)
	assert.Equal(t, entity.ThemeLight, f.model.theme.Name)
}

func TestShell_ExternalSettingsChange(t *testing.T) {
	f := newShellFixture(t)
	dark := entity.DefaultSettings("/home/tester")
	dark.Theme = entity.ThemeDark

	f.send(t, SettingsAppliedMsg{Settings: dark})

	assert.Equal(t, entity.ThemeDark, f.model.theme.Name)
}

func TestShell_QuitDefaultDiscardsSnapshot(t *testing.T) {
	f := newShellFixture(t, "https://a.example")
	f.sessionRepo.EXPECT().Delete(mock.Anything).Return(nil).Once()

	f.send(t, tea.KeyMsg{Type: tea.KeyCtrlQ})
	require.NotNil(t, f.model.confirm)

	cmd := f.send(t, tea.KeyMsg{Type: tea.KeyEnter})
	quit := f.run(t, cmd)

	require.NotNil(t, quit)
	assert.IsType(t, tea.QuitMsg{}, quit())
	assert.NoError(t, f.model.ShutdownErr())
}

func TestShell_QuitKeepPersistsBrowsingTabs(t *testing.T) {
	f := newShellFixture(t, "https://a.example", "https://b.example")
	f.run(t, f.send(t, tea.KeyMsg{Type: tea.KeyCtrlH}))
	f.sessionRepo.EXPECT().
		Save(mock.Anything, entity.SessionSnapshot{URLs: []string{"https://a.example", "https://b.example"}}).
		Return(nil).
		Once()

	f.send(t, tea.KeyMsg{Type: tea.KeyCtrlQ})
	quit := f.run(t, f.send(t, typeText("y")))

	require.NotNil(t, quit)
	assert.IsType(t, tea.QuitMsg{}, quit())
}

func TestShell_IgnoresKeysWhileShuttingDown(t *testing.T) {
	f := newShellFixture(t)

	f.send(t, tea.KeyMsg{Type: tea.KeyCtrlQ})
	cmd := f.send(t, typeText("n"))
	require.NotNil(t, cmd)

	f.send(t, tea.KeyMsg{Type: tea.KeyCtrlT})
	assert.Equal(t, 1, f.model.Tabs().Count())
}

func TestShell_ViewShowsTabsAndHelp(t *testing.T) {
	f := newShellFixture(t, "https://a.example/x")
	f.send(t, tea.WindowSizeMsg{Width: 100, Height: 30})

	view := f.model.View()
	assert.Contains(t, view, "a.example")
	assert.Contains(t, view, "ctrl+q: quit")
	assert.Contains(t, view, "1 tabs")
}

func TestShell_EmptySessionStartsWithoutTabs(t *testing.T) {
	f := newShellFixture(t)
	f.model = NewShellModel(testContext(), f.model.deps, entity.NewTabList(), "")

	assert.NotPanics(t, func() { _ = f.model.View() })
	f.send(t, tea.KeyMsg{Type: tea.KeyEnter})
	assert.NoError(t, f.model.err)

	f.send(t, tea.KeyMsg{Type: tea.KeyCtrlT})
	require.Equal(t, 1, f.model.Tabs().Count())
	assert.Equal(t, testEngine, f.model.Tabs().ActiveTab().URL())
}
