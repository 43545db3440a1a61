package handlers_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/streetcommerce/intake/internal/api/handlers"
	"github.com/streetcommerce/intake/pkg/extract"
	extractMocks "github.com/streetcommerce/intake/pkg/extract/mocks"
	"github.com/streetcommerce/intake/pkg/intake"
	domain "github.com/streetcommerce/intake/pkg/types"
)

func TestParseHandler_Parse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		body       any
		setupMock  func(*extractMocks.MockExtractor)
		wantStatus int
		wantBody   []string
	}{
		{
			name: "purchase note returns fields and economics",
			body: map[string]any{
				"raw_text": "Rick Owens ramones sz 12 condition 9 paid 300 sell 900",
			},
			setupMock: func(m *extractMocks.MockExtractor) {
				m.EXPECT().
					Extract(mock.Anything, "Rick Owens ramones sz 12 condition 9 paid 300 sell 900").
					Return(&domain.ExtractionResult{
						Brand:     "Rick Owens",
						ItemName:  "Ramone Sneakers",
						Condition: "9",
						Cost:      "300",
						Price:     "900",
					}, nil).
					Once()
			},
			wantStatus: http.StatusOK,
			wantBody: []string{
				`"brand":"Rick Owens"`,
				`"price":"900"`,
				`"profit":600`,
				`"margin_pct":66.67`,
			},
		},
		{
			name: "consignment note returns payout split",
			body: map[string]any{
				"raw_text": "Maria consignment 70/30 split selling for 100",
			},
			setupMock: func(m *extractMocks.MockExtractor) {
				m.EXPECT().
					Extract(mock.Anything, mock.Anything).
					Return(&domain.ExtractionResult{
						ItemName: "Vintage Jacket",
						Price:    "100",
					}, nil).
					Once()
			},
			wantStatus: http.StatusOK,
			wantBody: []string{
				`"isConsignment":true`,
				`"vendor_payout":70`,
				`"store_cut":30`,
			},
		},
		{
			name:       "missing raw_text returns 422",
			body:       map[string]any{},
			setupMock:  func(_ *extractMocks.MockExtractor) {},
			wantStatus: http.StatusUnprocessableEntity,
			wantBody:   []string{`expected required property raw_text to be present`},
		},
		{
			name:       "empty raw_text returns 422",
			body:       map[string]any{"raw_text": ""},
			setupMock:  func(_ *extractMocks.MockExtractor) {},
			wantStatus: http.StatusUnprocessableEntity,
			wantBody:   []string{`expected length >= 1`},
		},
		{
			name: "whitespace-only note returns 400",
			body: map[string]any{"raw_text": "   "},
			setupMock: func(m *extractMocks.MockExtractor) {
				m.EXPECT().
					Extract(mock.Anything, "   ").
					Return(nil, extract.ErrEmptyInput).
					Once()
			},
			wantStatus: http.StatusBadRequest,
			wantBody:   []string{`raw_text must not be blank`},
		},
		{
			name: "schema violation returns 422",
			body: map[string]any{"raw_text": "some note"},
			setupMock: func(m *extractMocks.MockExtractor) {
				m.EXPECT().
					Extract(mock.Anything, mock.Anything).
					Return(nil, fmt.Errorf("%w: unexpected keys: color", extract.ErrSchemaViolation)).
					Once()
			},
			wantStatus: http.StatusUnprocessableEntity,
			wantBody:   []string{`failed validation`},
		},
		{
			name: "backend down returns 502",
			body: map[string]any{"raw_text": "some note"},
			setupMock: func(m *extractMocks.MockExtractor) {
				m.EXPECT().
					Extract(mock.Anything, mock.Anything).
					Return(nil, fmt.Errorf("%w: openai: connection refused", extract.ErrBackendUnavailable)).
					Once()
			},
			wantStatus: http.StatusBadGateway,
			wantBody:   []string{`extraction backend unavailable`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			mockExtractor := extractMocks.NewMockExtractor(t)
			tt.setupMock(mockExtractor)

			h := handlers.NewParseHandler(intake.NewNormalizer(mockExtractor))

			_, api := humatest.New(t)
			handlers.RegisterParseRoutes(api, h)

			resp := api.Post("/api/v1/intake/parse", tt.body)
			assert.Equal(t, tt.wantStatus, resp.Code)
			for _, fragment := range tt.wantBody {
				assert.Contains(t, resp.Body.String(), fragment)
			}
		})
	}
}
