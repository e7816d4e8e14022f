package save

import "github.com/invopop/jsonschema"

// Schema describes the save record.
func Schema() *jsonschema.Schema {
	reflector := jsonschema.Reflector{
		AllowAdditionalProperties: true,
	}
	schema := reflector.Reflect(new(Record))
	schema.Title = "GymSimulator save record"
	schema.Description = "Stored under the gymSimulatorSave key; unknown fields are ignored and missing ones default"
	return schema
}
