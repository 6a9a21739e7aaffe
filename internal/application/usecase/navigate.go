package usecase

import (
	"context"
	"errors"

	"github.com/bnema/fastbrowser/internal/domain/entity"
	"github.com/bnema/fastbrowser/internal/domain/url"
	"github.com/bnema/fastbrowser/internal/logging"
)

// ErrNotBrowsing is returned when a navigation targets a settings or history pane.
var ErrNotBrowsing = errors.New("tab is not a browsing tab")

// NavigateUseCase handles URL navigation with history recording.
type NavigateUseCase struct {
	history *ManageHistoryUseCase
}

// NewNavigateUseCase creates a new navigation use case.
func NewNavigateUseCase(history *ManageHistoryUseCase) *NavigateUseCase {
	return &NavigateUseCase{history: history}
}

// NavigateInput contains parameters for navigation.
type NavigateInput struct {
	Tab *entity.Tab
	// Input is what the user typed: a URL starting with "http" or a search query.
	Input        string
	SearchEngine string
}

// NavigateOutput contains the result of navigation.
type NavigateOutput struct {
	URL string
}

// Navigate resolves the input, points the tab at the result and records the visit.
func (uc *NavigateUseCase) Navigate(ctx context.Context, input NavigateInput) (*NavigateOutput, error) {
	page, ok := input.Tab.Browsing()
	if !ok {
		return nil, ErrNotBrowsing
	}

	target := url.Resolve(input.Input, input.SearchEngine)
	page.URL = target
	page.Title = ""

	ctx = logging.WithTabID(ctx, string(input.Tab.ID))
	logging.FromContext(ctx).Info().Str("url", target).Msg("Navigated to URL")

	if uc.history != nil {
		_ = uc.history.AddVisit(ctx, target)
	}

	return &NavigateOutput{URL: target}, nil
}

// Translate points the tab at a Google Translate rendering of its page.
// The translated URL is not recorded in history.
func (uc *NavigateUseCase) Translate(ctx context.Context, tab *entity.Tab, lang entity.Language) (*NavigateOutput, error) {
	page, ok := tab.Browsing()
	if !ok {
		return nil, ErrNotBrowsing
	}
	if page.URL == "" {
		return nil, errors.New("nothing to translate")
	}

	original := page.URL
	page.URL = url.TranslateURL(original, string(lang))
	page.Title = ""

	logging.FromContext(ctx).Info().Str("url", original).Str("lang", string(lang)).Msg("Page translated")
	return &NavigateOutput{URL: page.URL}, nil
}
