package extract

import (
	"context"
	"fmt"
	"strings"

	domain "github.com/streetcommerce/intake/pkg/types"
)

// LLMExtractor implements the Extractor interface using an LLM backend.
// Temperature is pinned to 0 so the same note yields the same fields.
type LLMExtractor struct {
	backend   LLMBackend
	maxTokens int
}

// LLMExtractorOption configures the LLMExtractor.
type LLMExtractorOption func(*LLMExtractor)

// WithMaxTokens sets the max tokens for LLM responses.
func WithMaxTokens(n int) LLMExtractorOption {
	return func(e *LLMExtractor) {
		e.maxTokens = n
	}
}

// NewLLMExtractor creates a new LLMExtractor.
func NewLLMExtractor(backend LLMBackend, opts ...LLMExtractorOption) *LLMExtractor {
	e := &LLMExtractor{
		backend:   backend,
		maxTokens: 1024,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Extract sends the raw intake note to the backend and returns the
// validated field guess. Empty input fails before any network call.
func (e *LLMExtractor) Extract(
	ctx context.Context,
	rawInput string,
) (*domain.ExtractionResult, error) {
	if strings.TrimSpace(rawInput) == "" {
		return nil, ErrEmptyInput
	}

	prompt, err := RenderIntakePrompt(rawInput)
	if err != nil {
		return nil, fmt.Errorf("rendering intake prompt: %w", err)
	}

	resp, err := e.backend.Generate(ctx, GenerateRequest{
		Prompt:      prompt,
		SystemMsg:   SystemPrompt,
		Format:      FormatJSON,
		Temperature: 0,
		MaxTokens:   e.maxTokens,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrBackendUnavailable, e.backend.Name(), err)
	}

	result, err := ParseResult(resp.Content)
	if err != nil {
		return nil, fmt.Errorf("validating %s response: %w", e.backend.Name(), err)
	}

	return result, nil
}
