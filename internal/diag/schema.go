package diag

import "github.com/google/jsonschema-go/jsonschema"

// RecordSchema describes the shape of Record (spec.md §6's structured
// diagnostic record) as a JSON Schema, so editor tooling consuming
// emitted records can validate them without a full language-server
// handshake — the one capability spec.md §1 permits beyond "emitting a
// structured diagnostic record" for language-server integration.
func RecordSchema() *jsonschema.Schema {
	return &jsonschema.Schema{
		Type: "object",
		Properties: map[string]*jsonschema.Schema{
			"range": {
				Type:        "array",
				Description: "[line0, character0, length]",
				Items:       &jsonschema.Schema{Type: "integer"},
			},
			"severity": {
				Type: "string",
				Enum: []any{"Error"},
			},
			"message": {Type: "string"},
			"file":    {Type: "string"},
		},
		Required: []string{"range", "severity", "message", "file"},
	}
}
