package entity

// SessionSnapshot is the ordered list of browsing-tab URLs saved for restore
// at the next start. An empty snapshot is a valid snapshot: it restores no tabs.
type SessionSnapshot struct {
	URLs []string
}

// CaptureSession builds a snapshot from the live tab list.
// Settings and history panes are not captured.
func CaptureSession(tabs *TabList) SessionSnapshot {
	if tabs == nil {
		return SessionSnapshot{URLs: []string{}}
	}
	return SessionSnapshot{URLs: tabs.BrowsingURLs()}
}

// CaptureURLs builds a snapshot from an ordered list of open tab URLs.
func CaptureURLs(urls []string) SessionSnapshot {
	out := make([]string, len(urls))
	copy(out, urls)
	return SessionSnapshot{URLs: out}
}

// Len returns the number of tabs in the snapshot.
func (s SessionSnapshot) Len() int {
	return len(s.URLs)
}
