package config_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/fastbrowser/internal/infrastructure/config"
)

func TestSchema_DescribesSettingsFields(t *testing.T) {
	data, err := config.Schema()
	require.NoError(t, err)

	var doc struct {
		Title      string                    `json:"title"`
		Properties map[string]map[string]any `json:"properties"`
	}
	require.NoError(t, json.Unmarshal(data, &doc))

	assert.Equal(t, "fastbrowser settings", doc.Title)
	assert.Contains(t, doc.Properties, "default_search_engine")
	assert.Contains(t, doc.Properties, "download_path")
	assert.ElementsMatch(t, []any{"light", "dark"}, doc.Properties["theme"]["enum"])
	assert.ElementsMatch(t, []any{"ru", "en"}, doc.Properties["language"]["enum"])
}
