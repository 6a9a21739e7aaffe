package entity

import (
	"fmt"
	"strings"
	"time"
)

// HistoryTimeFormat is the layout of HistoryEntry.Timestamp (local time, second precision).
const HistoryTimeFormat = "2006-01-02 15:04:05"

// HistoryEntry represents a visited URL in browsing history.
type HistoryEntry struct {
	URL       string `json:"url"`
	Timestamp string `json:"timestamp"`
}

// NewHistoryEntry creates a history entry for a URL visited at the given time.
func NewHistoryEntry(url string, visitedAt time.Time) HistoryEntry {
	return HistoryEntry{
		URL:       url,
		Timestamp: visitedAt.Format(HistoryTimeFormat),
	}
}

// VisitedAt parses the entry timestamp. Returns the zero time if it is malformed.
func (h HistoryEntry) VisitedAt() time.Time {
	t, err := time.ParseInLocation(HistoryTimeFormat, h.Timestamp, time.Local)
	if err != nil {
		return time.Time{}
	}
	return t
}

// HistoryLedger is the ordered list of visited pages, oldest first.
// A URL appears at most once (exact, case-sensitive match).
type HistoryLedger []HistoryEntry

// Contains reports whether url is already in the ledger.
func (l HistoryLedger) Contains(url string) bool {
	for _, e := range l {
		if e.URL == url {
			return true
		}
	}
	return false
}

// Add appends url unless it is already present. Returns true if the ledger changed.
func (l *HistoryLedger) Add(url string, now time.Time) bool {
	if url == "" || l.Contains(url) {
		return false
	}
	*l = append(*l, NewHistoryEntry(url, now))
	return true
}

// Remove drops every entry matching url. Returns true if the ledger changed.
func (l *HistoryLedger) Remove(url string) bool {
	kept := (*l)[:0]
	for _, e := range *l {
		if e.URL != url {
			kept = append(kept, e)
		}
	}
	changed := len(kept) != len(*l)
	*l = kept
	return changed
}

// Filter returns entries whose URL contains query, case-insensitively.
// An empty query returns a copy of the whole ledger.
func (l HistoryLedger) Filter(query string) []HistoryEntry {
	q := strings.ToLower(strings.TrimSpace(query))
	out := make([]HistoryEntry, 0, len(l))
	for _, e := range l {
		if q == "" || strings.Contains(strings.ToLower(e.URL), q) {
			out = append(out, e)
		}
	}
	return out
}

// Validate reports an entry without a URL, which a well-formed ledger never has.
func (l HistoryLedger) Validate() error {
	for i, e := range l {
		if e.URL == "" {
			return fmt.Errorf("history entry %d has no url", i)
		}
	}
	return nil
}

// Entries returns a copy of the ledger as a plain slice. Never nil.
func (l HistoryLedger) Entries() []HistoryEntry {
	out := make([]HistoryEntry, len(l))
	copy(out, l)
	return out
}
