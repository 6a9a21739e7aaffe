package url

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve(t *testing.T) {
	const engine = "http://www.google.com"

	tests := []struct {
		name   string
		input  string
		engine string
		want   string
	}{
		{
			name:   "https url verbatim",
			input:  "https://example.com/a?b=c",
			engine: engine,
			want:   "https://example.com/a?b=c",
		},
		{
			name:   "http url verbatim",
			input:  "http://example.com",
			engine: engine,
			want:   "http://example.com",
		},
		{
			name:   "bare domain is searched",
			input:  "example.com",
			engine: engine,
			want:   "http://www.google.com/search?q=example.com",
		},
		{
			name:   "query with spaces",
			input:  "golang tips",
			engine: engine,
			want:   "http://www.google.com/search?q=golang+tips",
		},
		{
			name:   "query escapes reserved characters",
			input:  "a&b=c#d",
			engine: engine,
			want:   "http://www.google.com/search?q=a%26b%3Dc%23d",
		},
		{
			name:   "cyrillic query",
			input:  "привет",
			engine: engine,
			want:   "http://www.google.com/search?q=%D0%BF%D1%80%D0%B8%D0%B2%D0%B5%D1%82",
		},
		{
			name:   "trailing slash on engine",
			input:  "go",
			engine: "https://duckduckgo.com/",
			want:   "https://duckduckgo.com/search?q=go",
		},
		{
			name:   "surrounding whitespace trimmed",
			input:  "  https://go.dev  ",
			engine: engine,
			want:   "https://go.dev",
		},
		{
			name:   "empty input opens engine",
			input:  "",
			engine: engine,
			want:   engine,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Resolve(tt.input, tt.engine))
		})
	}
}

func TestTranslateURL(t *testing.T) {
	got := TranslateURL("https://example.com/page?x=1", "ru")

	parsed, err := url.Parse(got)
	require.NoError(t, err)
	assert.Equal(t, "translate.google.com", parsed.Host)
	assert.Equal(t, "/translate", parsed.Path)

	q := parsed.Query()
	assert.Equal(t, "auto", q.Get("sl"))
	assert.Equal(t, "ru", q.Get("tl"))
	assert.Equal(t, "https://example.com/page?x=1", q.Get("u"))
	assert.True(t, q.Has("hl"))
}

func TestTranslateURL_Defaults(t *testing.T) {
	assert.Empty(t, TranslateURL("", "en"))

	parsed, err := url.Parse(TranslateURL("https://go.dev", ""))
	require.NoError(t, err)
	assert.Equal(t, "ru", parsed.Query().Get("tl"))
}

func TestExtractDomain(t *testing.T) {
	assert.Equal(t, "youtube.com", ExtractDomain("https://www.youtube.com/watch?v=1"))
	assert.Equal(t, "go.dev", ExtractDomain("https://go.dev"))
	assert.Empty(t, ExtractDomain("not a url"))
	assert.Empty(t, ExtractDomain(""))
}
