// interface.go - Provider interface for the document-understanding backend

package ai

import "context"

// Provider is the document-understanding backend. Implementations send the
// PDF bytes plus a schema instruction in a single synchronous call and
// return the model's raw text response, which is expected to contain
// exactly one JSON object (optionally markdown-fenced).
type Provider interface {
	// GenerateJSON makes a single attempt; retry policy, if any, belongs
	// to the caller.
	GenerateJSON(ctx context.Context, prompt string, pdf []byte) (string, error)

	// Name returns the provider name (e.g. "gemini").
	Name() string
}
