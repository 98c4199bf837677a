package ai

import (
	"context"

	"github.com/sashabaranov/go-openai/jsonschema"
)

// AI is the model boundary. It knows nothing about drawings or the DB.
type AI interface {
	// GenerateStructured asks the model for a reply conforming to schema
	// and returns the raw JSON text. The schema is enforced by the model
	// service, not client-side.
	GenerateStructured(ctx context.Context, prompt string, schema Schema) (string, error)

	// GenerateText asks the model for a plain free-text reply.
	GenerateText(ctx context.Context, prompt string) (string, error)
}

// Schema is a named structured-output contract.
type Schema struct {
	Name       string
	Definition jsonschema.Definition
}
