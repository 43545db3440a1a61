package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/streetcommerce/intake/internal/metrics"
	"github.com/streetcommerce/intake/pkg/economics"
	"github.com/streetcommerce/intake/pkg/extract"
	domain "github.com/streetcommerce/intake/pkg/types"
)

// Normalizer turns one raw intake note into a complete normalized
// record.
type Normalizer interface {
	Normalize(ctx context.Context, rawInput string) (*domain.IntakeFields, error)
}

// ParseHandler handles raw intake note parsing.
type ParseHandler struct {
	normalizer Normalizer
}

// NewParseHandler creates a new ParseHandler.
func NewParseHandler(n Normalizer) *ParseHandler {
	return &ParseHandler{normalizer: n}
}

// ParseInput is the request body for the parse endpoint.
type ParseInput struct {
	Body struct {
		RawText string `json:"raw_text" minLength:"1" doc:"Raw intake note as typed by staff" example:"Rick Owens ramones sz 12 condition 9 paid 300 sell 900"`
	}
}

// ParseOutput is the response body for the parse endpoint.
type ParseOutput struct {
	Body struct {
		Fields    domain.IntakeFields `json:"fields" doc:"Normalized intake record"`
		Economics economics.Breakdown `json:"economics" doc:"Payout and margin breakdown for the record"`
	}
}

// Parse normalizes one raw intake note into structured fields plus an
// economics breakdown.
func (h *ParseHandler) Parse(ctx context.Context, input *ParseInput) (*ParseOutput, error) {
	start := time.Now()

	fields, err := h.normalizer.Normalize(ctx, input.Body.RawText)
	metrics.ExtractionDuration.Observe(time.Since(start).Seconds())

	if err != nil {
		return nil, parseError(err)
	}

	resp := &ParseOutput{}
	resp.Body.Fields = *fields
	resp.Body.Economics = economics.Compute(fields)
	return resp, nil
}

// parseError maps extraction failures onto distinct statuses: caller
// mistakes are 4xx, a misbehaving model is 422, a dead backend is 502.
func parseError(err error) error {
	switch {
	case errors.Is(err, extract.ErrEmptyInput):
		metrics.ExtractionFailuresTotal.WithLabelValues("empty_input").Inc()
		return huma.Error400BadRequest("raw_text must not be blank")
	case errors.Is(err, extract.ErrMalformedResponse):
		metrics.ExtractionFailuresTotal.WithLabelValues("malformed").Inc()
		return huma.Error422UnprocessableEntity("model returned malformed output: " + err.Error())
	case errors.Is(err, extract.ErrSchemaViolation):
		metrics.ExtractionFailuresTotal.WithLabelValues("schema").Inc()
		return huma.Error422UnprocessableEntity("model output failed validation: " + err.Error())
	case errors.Is(err, extract.ErrBackendUnavailable):
		metrics.ExtractionFailuresTotal.WithLabelValues("backend").Inc()
		return huma.Error502BadGateway("extraction backend unavailable: " + err.Error())
	default:
		metrics.ExtractionFailuresTotal.WithLabelValues("other").Inc()
		return huma.Error500InternalServerError("parsing intake note: " + err.Error())
	}
}

// RegisterParseRoutes registers parse endpoints with the Huma API.
func RegisterParseRoutes(api huma.API, h *ParseHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "parse-intake",
		Method:      http.MethodPost,
		Path:        "/api/v1/intake/parse",
		Summary:     "Parse a raw intake note",
		Description: "Runs the configured LLM backend over a raw intake note, then applies " +
			"the deterministic normalization rules to produce a complete intake record.",
		Tags:   []string{"intake"},
		Errors: []int{http.StatusBadRequest, http.StatusUnprocessableEntity, http.StatusBadGateway},
	}, h.Parse)
}
