package entity

import "time"

// TabID uniquely identifies a tab.
type TabID string

// TabContent is what a tab shows. It is one of BrowsingContent,
// SettingsPaneContent or HistoryPaneContent.
type TabContent interface {
	tabContent()
}

// BrowsingContent is a tab showing a web page.
type BrowsingContent struct {
	URL   string
	Title string
}

// SettingsPaneContent is the settings pane.
type SettingsPaneContent struct{}

// HistoryPaneContent is the history browser pane.
type HistoryPaneContent struct{}

func (*BrowsingContent) tabContent()    {}
func (SettingsPaneContent) tabContent() {}
func (HistoryPaneContent) tabContent()  {}

// Tab represents a browser tab.
type Tab struct {
	ID        TabID
	Content   TabContent
	Position  int // Position in the tab bar (0-indexed)
	CreatedAt time.Time
}

// NewBrowsingTab creates a tab showing url.
func NewBrowsingTab(id TabID, url string) *Tab {
	return &Tab{
		ID:        id,
		Content:   &BrowsingContent{URL: url},
		CreatedAt: time.Now(),
	}
}

// NewPaneTab creates a non-browsing tab (settings or history pane).
func NewPaneTab(id TabID, content TabContent) *Tab {
	return &Tab{
		ID:        id,
		Content:   content,
		CreatedAt: time.Now(),
	}
}

// Browsing returns the page content if this is a browsing tab.
func (t *Tab) Browsing() (*BrowsingContent, bool) {
	if t == nil {
		return nil, false
	}
	b, ok := t.Content.(*BrowsingContent)
	return b, ok && b != nil
}

// URL returns the page URL for browsing tabs, or "" for panes.
func (t *Tab) URL() string {
	if b, ok := t.Browsing(); ok {
		return b.URL
	}
	return ""
}

// TabKind names the variant of a tab's content.
type TabKind string

const (
	TabKindBrowsing TabKind = "browsing"
	TabKindSettings TabKind = "settings"
	TabKindHistory  TabKind = "history"
)

// Kind reports which variant the tab holds.
func (t *Tab) Kind() TabKind {
	switch t.Content.(type) {
	case SettingsPaneContent:
		return TabKindSettings
	case HistoryPaneContent:
		return TabKindHistory
	}
	return TabKindBrowsing
}

// TabList manages an ordered collection of tabs.
type TabList struct {
	Tabs        []*Tab
	ActiveTabID TabID
}

// NewTabList creates an empty tab list.
func NewTabList() *TabList {
	return &TabList{
		Tabs: make([]*Tab, 0),
	}
}

// Add appends a tab to the list.
func (tl *TabList) Add(tab *Tab) {
	tab.Position = len(tl.Tabs)
	tl.Tabs = append(tl.Tabs, tab)
	if tl.ActiveTabID == "" {
		tl.ActiveTabID = tab.ID
	}
}

// Remove removes a tab by ID and reindexes positions.
func (tl *TabList) Remove(id TabID) bool {
	for i, tab := range tl.Tabs {
		if tab.ID == id {
			tl.Tabs = append(tl.Tabs[:i], tl.Tabs[i+1:]...)
			for j := i; j < len(tl.Tabs); j++ {
				tl.Tabs[j].Position = j
			}
			if tl.ActiveTabID == id {
				switch {
				case len(tl.Tabs) == 0:
					tl.ActiveTabID = ""
				case i < len(tl.Tabs):
					tl.ActiveTabID = tl.Tabs[i].ID
				default:
					tl.ActiveTabID = tl.Tabs[len(tl.Tabs)-1].ID
				}
			}
			return true
		}
	}
	return false
}

// Find returns a tab by ID.
func (tl *TabList) Find(id TabID) *Tab {
	for _, tab := range tl.Tabs {
		if tab.ID == id {
			return tab
		}
	}
	return nil
}

// FindPane returns the first tab holding a pane of the same kind as content.
func (tl *TabList) FindPane(content TabContent) *Tab {
	for _, tab := range tl.Tabs {
		switch content.(type) {
		case SettingsPaneContent:
			if _, ok := tab.Content.(SettingsPaneContent); ok {
				return tab
			}
		case HistoryPaneContent:
			if _, ok := tab.Content.(HistoryPaneContent); ok {
				return tab
			}
		}
	}
	return nil
}

// ActiveTab returns the currently active tab.
func (tl *TabList) ActiveTab() *Tab {
	return tl.Find(tl.ActiveTabID)
}

// ActiveIndex returns the position of the active tab, or -1.
func (tl *TabList) ActiveIndex() int {
	for i, tab := range tl.Tabs {
		if tab.ID == tl.ActiveTabID {
			return i
		}
	}
	return -1
}

// Activate makes the tab at index i active. Out of range indexes wrap around.
func (tl *TabList) Activate(i int) {
	n := len(tl.Tabs)
	if n == 0 {
		return
	}
	i = ((i % n) + n) % n
	tl.ActiveTabID = tl.Tabs[i].ID
}

// Count returns the number of tabs.
func (tl *TabList) Count() int {
	return len(tl.Tabs)
}

// BrowsingURLs returns the URL of every browsing tab in tab order.
func (tl *TabList) BrowsingURLs() []string {
	urls := make([]string, 0, len(tl.Tabs))
	for _, tab := range tl.Tabs {
		if b, ok := tab.Browsing(); ok {
			urls = append(urls, b.URL)
		}
	}
	return urls
}
