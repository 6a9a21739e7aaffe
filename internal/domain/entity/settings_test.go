package entity_test

import (
	"testing"

	"github.com/bnema/fastbrowser/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTheme(t *testing.T) {
	tests := []struct {
		in   string
		want entity.Theme
		ok   bool
	}{
		{"light", entity.ThemeLight, true},
		{"Dark", entity.ThemeDark, true},
		{"Светлая", entity.ThemeLight, true},
		{"Темная", entity.ThemeDark, true},
		{"solarized", "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := entity.ParseTheme(tt.in)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseLanguage(t *testing.T) {
	got, ok := entity.ParseLanguage("EN")
	assert.True(t, ok)
	assert.Equal(t, entity.LanguageEnglish, got)

	_, ok = entity.ParseLanguage("de")
	assert.False(t, ok)
}

func TestDefaultSettings(t *testing.T) {
	s := entity.DefaultSettings("/home/me")
	assert.Equal(t, "http://www.google.com", s.DefaultSearchEngine)
	assert.Equal(t, entity.ThemeLight, s.Theme)
	assert.Equal(t, "/home/me", s.DownloadPath)
	assert.Equal(t, entity.LanguageRussian, s.Language)
	require.NoError(t, s.Validate())
}

func TestSettings_ValidateRejectsEmptyFields(t *testing.T) {
	s := entity.DefaultSettings("/home/me")
	s.DownloadPath = "  "
	s.Language = ""

	err := s.Validate()
	require.ErrorIs(t, err, entity.ErrInvalidSettings)
	assert.Contains(t, err.Error(), "download_path")
	assert.Contains(t, err.Error(), "language")

	var nilSettings *entity.Settings
	require.ErrorIs(t, nilSettings.Validate(), entity.ErrInvalidSettings)
}
