package drawing

import (
	"github.com/sashabaranov/go-openai/jsonschema"

	"github.com/Udaykiran265/DNAapp/internal/ai"
)

// notesSchema is the structured-output contract for a generation: an object
// with exactly four required string fields, in render order.
func notesSchema() ai.Schema {
	return ai.Schema{
		Name: "cad_drawing_notes",
		Definition: jsonschema.Definition{
			Type: jsonschema.Object,
			Properties: map[string]jsonschema.Definition{
				"materialDescription": {
					Type:        jsonschema.String,
					Description: "Material with temper and form, e.g. ALUMINUM 6061-T6 PLATE",
				},
				"grade": {
					Type:        jsonschema.String,
					Description: "Governing specification or grade callout, e.g. PER ASTM B209",
				},
				"generalNotes": {
					Type:        jsonschema.String,
					Description: "General fabrication notes (burrs, edges, tolerances)",
				},
				"finishNotes": {
					Type:        jsonschema.String,
					Description: "Finish / surface treatment notes",
				},
			},
			Required:             []string{"materialDescription", "grade", "generalNotes", "finishNotes"},
			AdditionalProperties: false,
		},
	}
}
