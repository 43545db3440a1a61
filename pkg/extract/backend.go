// Package extract turns free-text intake notes into a structured field
// guess using an LLM backend, abstracted behind interfaces for
// testability. The backend's answer is strictly validated; everything
// downstream of validation is deterministic and lives in pkg/normalize
// and pkg/intake.
package extract

import (
	"context"

	domain "github.com/streetcommerce/intake/pkg/types"
)

// FormatJSON is the format string for requesting JSON mode from LLM backends.
const FormatJSON = "json"

// GenerateRequest defines the input for an LLM generation call.
type GenerateRequest struct {
	Prompt      string
	SystemMsg   string
	Format      string // FormatJSON for JSON mode
	Temperature float64
	MaxTokens   int
}

// TokenUsage tracks LLM token consumption.
type TokenUsage struct {
	PromptTokens     int
	CompletionTokens int
	TotalTokens      int
}

// GenerateResponse holds the result of an LLM generation call.
type GenerateResponse struct {
	Content string
	Model   string
	Usage   TokenUsage
}

// LLMBackend defines the interface for LLM text generation.
type LLMBackend interface {
	Generate(ctx context.Context, req GenerateRequest) (GenerateResponse, error)
	Name() string
}

// Extractor defines the interface for extracting intake fields from a
// raw free-text note.
type Extractor interface {
	Extract(ctx context.Context, rawInput string) (*domain.ExtractionResult, error)
}
