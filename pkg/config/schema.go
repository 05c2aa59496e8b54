package config

import "github.com/invopop/jsonschema"

// Schema reflects the JSON schema of readmegen.yml.
func Schema() *jsonschema.Schema {
	r := &jsonschema.Reflector{
		AllowAdditionalProperties: true,
		ExpandedStruct:            true,
		FieldNameTag:              "yaml",
	}

	schema := r.Reflect(&ProjectConfig{})
	schema.Title = "readmegen Project Configuration"
	schema.Description = "Configuration schema for readmegen.yml."
	return schema
}
