package extract_test

import (
	"context"
	"errors"
	"testing"

	"github.com/streetcommerce/intake/pkg/extract"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeBackend records the last request and returns canned responses.
type fakeBackend struct {
	calls    int
	lastReq  extract.GenerateRequest
	response extract.GenerateResponse
	err      error
}

func (f *fakeBackend) Generate(
	_ context.Context,
	req extract.GenerateRequest,
) (extract.GenerateResponse, error) {
	f.calls++
	f.lastReq = req
	return f.response, f.err
}

func (*fakeBackend) Name() string { return "fake" }

func TestLLMExtractorExtract(t *testing.T) {
	t.Parallel()

	t.Run("empty input skips backend", func(t *testing.T) {
		t.Parallel()

		backend := &fakeBackend{}
		e := extract.NewLLMExtractor(backend)

		_, err := e.Extract(context.Background(), "   \n\t  ")
		require.ErrorIs(t, err, extract.ErrEmptyInput)
		assert.Zero(t, backend.calls)
	})

	t.Run("request shape", func(t *testing.T) {
		t.Parallel()

		backend := &fakeBackend{
			response: extract.GenerateResponse{Content: `{"brand": "Nike"}`},
		}
		e := extract.NewLLMExtractor(backend, extract.WithMaxTokens(256))

		result, err := e.Extract(context.Background(), "Nike Dunk Low size 10")
		require.NoError(t, err)

		assert.Equal(t, "Nike", result.Brand)
		assert.Equal(t, 1, backend.calls)
		assert.Contains(t, backend.lastReq.Prompt, "Nike Dunk Low size 10")
		assert.Equal(t, extract.SystemPrompt, backend.lastReq.SystemMsg)
		assert.Equal(t, extract.FormatJSON, backend.lastReq.Format)
		assert.Zero(t, backend.lastReq.Temperature)
		assert.Equal(t, 256, backend.lastReq.MaxTokens)
	})

	t.Run("backend failure", func(t *testing.T) {
		t.Parallel()

		backend := &fakeBackend{err: errors.New("connection refused")}
		e := extract.NewLLMExtractor(backend)

		_, err := e.Extract(context.Background(), "some note")
		require.ErrorIs(t, err, extract.ErrBackendUnavailable)
		assert.Contains(t, err.Error(), "fake")
	})

	t.Run("malformed answer", func(t *testing.T) {
		t.Parallel()

		backend := &fakeBackend{
			response: extract.GenerateResponse{Content: "not json"},
		}
		e := extract.NewLLMExtractor(backend)

		_, err := e.Extract(context.Background(), "some note")
		assert.ErrorIs(t, err, extract.ErrMalformedResponse)
	})

	t.Run("schema violation surfaces", func(t *testing.T) {
		t.Parallel()

		backend := &fakeBackend{
			response: extract.GenerateResponse{Content: `{"upc": "012345"}`},
		}
		e := extract.NewLLMExtractor(backend)

		_, err := e.Extract(context.Background(), "some note")
		assert.ErrorIs(t, err, extract.ErrSchemaViolation)
	})
}
