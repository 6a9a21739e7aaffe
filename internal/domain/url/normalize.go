// Package url resolves omnibox input into navigable URLs.
package url

import (
	"net/url"
	"strings"
)

// HasHTTPScheme reports whether input is used verbatim as a URL.
// Only the "http" prefix counts; bare domains like "example.com" are searched.
func HasHTTPScheme(input string) bool {
	return strings.HasPrefix(input, "http")
}

// ExtractDomain extracts the normalized domain (host) from a URL string.
// Normalizes by stripping "www." prefix so youtube.com and www.youtube.com
// resolve to the same value.
func ExtractDomain(rawURL string) string {
	if rawURL == "" {
		return ""
	}
	parsed, err := url.Parse(rawURL)
	if err != nil || parsed.Host == "" {
		return ""
	}
	return strings.TrimPrefix(parsed.Host, "www.")
}
