package usecase

import (
	"context"
	"fmt"

	"github.com/bnema/fastbrowser/internal/domain/entity"
	"github.com/bnema/fastbrowser/internal/logging"
)

// IDGenerator is a function type for generating unique IDs.
type IDGenerator func() string

// ManageTabsUseCase handles tab lifecycle operations.
type ManageTabsUseCase struct {
	idGenerator IDGenerator
	history     *ManageHistoryUseCase
}

// NewManageTabsUseCase creates a new tab management use case.
// Every opened browsing tab is recorded in history.
func NewManageTabsUseCase(idGenerator IDGenerator, history *ManageHistoryUseCase) *ManageTabsUseCase {
	return &ManageTabsUseCase{
		idGenerator: idGenerator,
		history:     history,
	}
}

// OpenTabInput contains parameters for opening a browsing tab.
type OpenTabInput struct {
	TabList *entity.TabList
	// URL to load. Empty opens DefaultSearchEngine.
	URL                 string
	DefaultSearchEngine string
	// Background keeps the current tab active.
	Background bool
}

// OpenTabOutput contains the result of opening a tab.
type OpenTabOutput struct {
	Tab *entity.Tab
}

// Open appends a browsing tab and records the visit.
// A failure to record the visit is logged and does not prevent the tab from opening.
func (uc *ManageTabsUseCase) Open(ctx context.Context, input OpenTabInput) (*OpenTabOutput, error) {
	if input.TabList == nil {
		return nil, fmt.Errorf("tab list is required")
	}

	target := input.URL
	if target == "" {
		target = input.DefaultSearchEngine
	}

	tab := entity.NewBrowsingTab(entity.TabID(uc.idGenerator()), target)
	input.TabList.Add(tab)
	if !input.Background {
		input.TabList.ActiveTabID = tab.ID
	}

	ctx = logging.WithTabID(ctx, string(tab.ID))
	logging.FromContext(ctx).Info().
		Str("url", target).
		Int("position", tab.Position).
		Msg("tab opened")

	if uc.history != nil {
		_ = uc.history.AddVisit(ctx, target)
	}

	return &OpenTabOutput{Tab: tab}, nil
}

// OpenPane focuses the settings or history pane, opening it if needed.
func (uc *ManageTabsUseCase) OpenPane(ctx context.Context, tabs *entity.TabList, content entity.TabContent) (*entity.Tab, error) {
	log := logging.FromContext(ctx)

	if tabs == nil {
		return nil, fmt.Errorf("tab list is required")
	}
	switch content.(type) {
	case entity.SettingsPaneContent, entity.HistoryPaneContent:
	default:
		return nil, fmt.Errorf("unsupported pane content %T", content)
	}

	if existing := tabs.FindPane(content); existing != nil {
		tabs.ActiveTabID = existing.ID
		log.Debug().Str("tab_id", string(existing.ID)).Msg("pane already open")
		return existing, nil
	}

	tab := entity.NewPaneTab(entity.TabID(uc.idGenerator()), content)
	tabs.Add(tab)
	tabs.ActiveTabID = tab.ID

	log.Debug().Str("tab_id", string(tab.ID)).Str("pane", string(tab.Kind())).Msg("pane opened")
	return tab, nil
}

// Close removes a tab from the list. The last remaining tab is never closed;
// closed reports whether the tab was removed.
func (uc *ManageTabsUseCase) Close(ctx context.Context, tabs *entity.TabList, tabID entity.TabID) (closed bool, err error) {
	ctx = logging.WithTabID(ctx, string(tabID))
	log := logging.FromContext(ctx)

	if tabs == nil {
		return false, fmt.Errorf("tab list is required")
	}

	if tabs.Find(tabID) == nil {
		log.Debug().Msg("tab not found")
		return false, nil
	}

	if tabs.Count() <= 1 {
		log.Debug().Msg("refusing to close last tab")
		return false, nil
	}

	if !tabs.Remove(tabID) {
		return false, fmt.Errorf("failed to remove tab")
	}

	log.Info().
		Str("new_active", string(tabs.ActiveTabID)).
		Int("remaining", tabs.Count()).
		Msg("Tab closed")

	return true, nil
}
