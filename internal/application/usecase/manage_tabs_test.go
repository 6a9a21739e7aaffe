package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/bnema/fastbrowser/internal/application/usecase"
	"github.com/bnema/fastbrowser/internal/domain/entity"
	repomocks "github.com/bnema/fastbrowser/internal/domain/repository/mocks"
)

func newTabsUseCase(t *testing.T) (*usecase.ManageTabsUseCase, *entity.HistoryLedger) {
	t.Helper()
	repo := repomocks.NewMockHistoryRepository(t)
	ledger := &entity.HistoryLedger{}
	repo.EXPECT().Update(mock.Anything, mock.Anything).RunAndReturn(applyTo(ledger)).Maybe()

	history := usecase.NewManageHistoryUseCase(repo, usecase.WithClock(fixedClock))
	return usecase.NewManageTabsUseCase(sequentialIDs("tab-"), history), ledger
}

func TestManageTabsUseCase_Open_RecordsVisitAndActivates(t *testing.T) {
	ctx := testContext()
	uc, ledger := newTabsUseCase(t)
	tabs := entity.NewTabList()

	first, err := uc.Open(ctx, usecase.OpenTabInput{TabList: tabs, URL: "https://a.example"})
	require.NoError(t, err)
	second, err := uc.Open(ctx, usecase.OpenTabInput{TabList: tabs, URL: "https://b.example"})
	require.NoError(t, err)

	assert.Equal(t, entity.TabID("tab-1"), first.Tab.ID)
	assert.Equal(t, second.Tab.ID, tabs.ActiveTabID)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, tabs.BrowsingURLs())
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, urlsOf(*ledger))
}

func TestManageTabsUseCase_Open_EmptyURLUsesSearchEngine(t *testing.T) {
	uc, _ := newTabsUseCase(t)
	tabs := entity.NewTabList()

	out, err := uc.Open(testContext(), usecase.OpenTabInput{TabList: tabs, DefaultSearchEngine: testEngine})

	require.NoError(t, err)
	assert.Equal(t, testEngine, out.Tab.URL())
}

func TestManageTabsUseCase_Open_Background(t *testing.T) {
	uc, _ := newTabsUseCase(t)
	tabs := entity.NewTabList()
	first, err := uc.Open(testContext(), usecase.OpenTabInput{TabList: tabs, URL: "https://a.example"})
	require.NoError(t, err)

	_, err = uc.Open(testContext(), usecase.OpenTabInput{TabList: tabs, URL: "https://b.example", Background: true})

	require.NoError(t, err)
	assert.Equal(t, first.Tab.ID, tabs.ActiveTabID)
}

func TestManageTabsUseCase_Open_RequiresTabList(t *testing.T) {
	uc, _ := newTabsUseCase(t)

	_, err := uc.Open(testContext(), usecase.OpenTabInput{URL: "https://a.example"})

	require.Error(t, err)
}

func TestManageTabsUseCase_OpenPane_ReusesExisting(t *testing.T) {
	ctx := testContext()
	uc, ledger := newTabsUseCase(t)
	tabs := entity.NewTabList()
	_, err := uc.Open(ctx, usecase.OpenTabInput{TabList: tabs, URL: "https://a.example"})
	require.NoError(t, err)

	pane, err := uc.OpenPane(ctx, tabs, entity.HistoryPaneContent{})
	require.NoError(t, err)
	tabs.Activate(0)
	again, err := uc.OpenPane(ctx, tabs, entity.HistoryPaneContent{})
	require.NoError(t, err)

	assert.Same(t, pane, again)
	assert.Equal(t, 2, tabs.Count())
	assert.Equal(t, pane.ID, tabs.ActiveTabID)
	assert.Len(t, *ledger, 1)
}

func TestManageTabsUseCase_OpenPane_RejectsBrowsingContent(t *testing.T) {
	uc, _ := newTabsUseCase(t)

	_, err := uc.OpenPane(testContext(), entity.NewTabList(), &entity.BrowsingContent{URL: "https://a.example"})

	require.Error(t, err)
}

func TestManageTabsUseCase_Close(t *testing.T) {
	ctx := testContext()
	uc, _ := newTabsUseCase(t)
	tabs := entity.NewTabList()
	a, err := uc.Open(ctx, usecase.OpenTabInput{TabList: tabs, URL: "https://a.example"})
	require.NoError(t, err)
	b, err := uc.Open(ctx, usecase.OpenTabInput{TabList: tabs, URL: "https://b.example"})
	require.NoError(t, err)

	closed, err := uc.Close(ctx, tabs, b.Tab.ID)
	require.NoError(t, err)
	assert.True(t, closed)
	assert.Equal(t, a.Tab.ID, tabs.ActiveTabID)

	closed, err = uc.Close(ctx, tabs, a.Tab.ID)
	require.NoError(t, err)
	assert.False(t, closed, "last tab must stay open")
	assert.Equal(t, 1, tabs.Count())

	closed, err = uc.Close(ctx, tabs, "missing")
	require.NoError(t, err)
	assert.False(t, closed)
}
