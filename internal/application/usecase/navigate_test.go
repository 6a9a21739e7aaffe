package usecase_test

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/bnema/fastbrowser/internal/application/usecase"
	"github.com/bnema/fastbrowser/internal/domain/entity"
	repomocks "github.com/bnema/fastbrowser/internal/domain/repository/mocks"
)

func TestNavigateUseCase_Navigate(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "url", input: "https://go.dev", want: "https://go.dev"},
		{name: "search", input: "go tour", want: "http://www.google.com/search?q=go+tour"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := testContext()
			repo := repomocks.NewMockHistoryRepository(t)
			ledger := entity.HistoryLedger{}
			repo.EXPECT().Update(mock.Anything, mock.Anything).RunAndReturn(applyTo(&ledger))

			uc := usecase.NewNavigateUseCase(usecase.NewManageHistoryUseCase(repo))
			tab := entity.NewBrowsingTab("t1", "https://start.example")

			out, err := uc.Navigate(ctx, usecase.NavigateInput{Tab: tab, Input: tt.input, SearchEngine: testEngine})

			require.NoError(t, err)
			assert.Equal(t, tt.want, out.URL)
			assert.Equal(t, tt.want, tab.URL())
			assert.Equal(t, []string{tt.want}, urlsOf(ledger))
		})
	}
}

func TestNavigateUseCase_Navigate_RejectsPane(t *testing.T) {
	uc := usecase.NewNavigateUseCase(nil)
	tab := entity.NewPaneTab("p1", entity.SettingsPaneContent{})

	_, err := uc.Navigate(testContext(), usecase.NavigateInput{Tab: tab, Input: "https://go.dev"})

	require.ErrorIs(t, err, usecase.ErrNotBrowsing)
}

func TestNavigateUseCase_Translate(t *testing.T) {
	uc := usecase.NewNavigateUseCase(nil)
	tab := entity.NewBrowsingTab("t1", "https://example.com/page")

	out, err := uc.Translate(testContext(), tab, entity.LanguageEnglish)
	require.NoError(t, err)

	parsed, err := url.Parse(out.URL)
	require.NoError(t, err)
	assert.Equal(t, "translate.google.com", parsed.Host)
	assert.Equal(t, "en", parsed.Query().Get("tl"))
	assert.Equal(t, "https://example.com/page", parsed.Query().Get("u"))
	assert.Equal(t, out.URL, tab.URL())
}

func TestNavigateUseCase_Translate_RejectsPane(t *testing.T) {
	uc := usecase.NewNavigateUseCase(nil)

	_, err := uc.Translate(testContext(), entity.NewPaneTab("h", entity.HistoryPaneContent{}), entity.LanguageRussian)

	require.ErrorIs(t, err, usecase.ErrNotBrowsing)
}
