// Package genai isolates the external text-generation collaborator behind a
// narrow interface so the rest of the service never depends on a specific
// vendor API.
package genai

import "context"

// Generator produces a text completion for a prompt.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}
