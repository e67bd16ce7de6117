package service

import "context"

// ContentGenerator sends one prompt to the generative-language API and returns the text of
// the first candidate. Failures of any kind are reported as upstream-unavailable errors.
type ContentGenerator interface {
	Generate(ctx context.Context, systemInstruction, userPrompt string) (string, error)
}

// TextExtractor converts an uploaded document into plain text.
type TextExtractor interface {
	Extract(ctx context.Context, data []byte) (string, error)
}
