package interfaces

import "context"

// ITextGenerator abstracts the external text-generation provider (e.g.
// Gemini) used for price justifications.
//
// The use case owns the prompt and the timeout; implementations only turn a
// prompt into text or a typed failure. Callers must treat failures as
// recoverable — the justification feature degrades to fallback copy instead
// of failing the request.
type ITextGenerator interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
}
