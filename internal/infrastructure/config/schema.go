package config

import (
	"encoding/json"
	"fmt"

	"github.com/invopop/jsonschema"

	"github.com/bnema/fastbrowser/internal/domain/entity"
)

// SchemaFileName is the name the schema is conventionally saved under.
const SchemaFileName = "config.schema.json"

// Schema returns the JSON schema describing config.json.
func Schema() ([]byte, error) {
	r := &jsonschema.Reflector{
		ExpandedStruct:             true,
		AllowAdditionalProperties:  true,
		RequiredFromJSONSchemaTags: true,
	}
	schema := r.Reflect(&entity.Settings{})

	schema.ID = "https://github.com/bnema/fastbrowser/config.schema.json"
	schema.Title = "fastbrowser settings"
	schema.Description = "User settings stored in config.json. Missing fields take their default."

	data, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal schema: %w", err)
	}
	return data, nil
}
