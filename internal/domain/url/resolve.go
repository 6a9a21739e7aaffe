package url

import (
	"net/url"
	"strings"
)

const searchPath = "/search?q="

// Resolve turns omnibox input into a URL.
// Input starting with "http" is returned as-is. Anything else becomes a
// query against engine. Empty input yields engine itself.
//
// Examples:
//
//	Resolve("https://go.dev", "http://www.google.com")  → "https://go.dev"
//	Resolve("golang tips", "http://www.google.com")     → "http://www.google.com/search?q=golang+tips"
//	Resolve("", "http://www.google.com")                → "http://www.google.com"
func Resolve(input, engine string) string {
	input = strings.TrimSpace(input)
	if input == "" {
		return engine
	}
	if HasHTTPScheme(input) {
		return input
	}
	return strings.TrimRight(engine, "/") + searchPath + url.QueryEscape(input)
}

const translateEndpoint = "https://translate.google.com/translate"

// TranslateURL wraps pageURL in a Google Translate request targeting lang.
// Returns "" when pageURL is empty.
func TranslateURL(pageURL, lang string) string {
	if pageURL == "" {
		return ""
	}
	if lang == "" {
		lang = "ru"
	}
	q := url.Values{}
	q.Set("hl", "")
	q.Set("sl", "auto")
	q.Set("tl", lang)
	q.Set("u", pageURL)
	return translateEndpoint + "?" + q.Encode()
}
