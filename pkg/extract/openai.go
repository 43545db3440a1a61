package extract

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"
)

const (
	defaultOpenAIEndpoint = "https://api.openai.com"
	defaultOpenAIModel    = "gpt-4o-mini"
)

// OpenAIBackend implements LLMBackend using the OpenAI chat completions
// API. Any endpoint speaking the same protocol works (vLLM, LM Studio,
// the mock server under tools/).
type OpenAIBackend struct {
	endpoint string
	model    string
	apiKey   string
	client   *http.Client
}

// OpenAIOption configures the OpenAIBackend.
type OpenAIOption func(*OpenAIBackend)

// WithOpenAIEndpoint overrides the default API endpoint.
func WithOpenAIEndpoint(url string) OpenAIOption {
	return func(b *OpenAIBackend) {
		b.endpoint = url
	}
}

// WithOpenAIModel overrides the default model.
func WithOpenAIModel(model string) OpenAIOption {
	return func(b *OpenAIBackend) {
		b.model = model
	}
}

// WithOpenAIAPIKey overrides the API key (instead of reading from env).
func WithOpenAIAPIKey(key string) OpenAIOption {
	return func(b *OpenAIBackend) {
		b.apiKey = key
	}
}

// WithOpenAIHTTPClient overrides the default HTTP client.
func WithOpenAIHTTPClient(c *http.Client) OpenAIOption {
	return func(b *OpenAIBackend) {
		b.client = c
	}
}

// NewOpenAIBackend creates a new OpenAI backend. The API key is read
// from the OPENAI_API_KEY environment variable if not provided via
// options.
func NewOpenAIBackend(opts ...OpenAIOption) *OpenAIBackend {
	b := &OpenAIBackend{
		endpoint: defaultOpenAIEndpoint,
		model:    defaultOpenAIModel,
		apiKey:   os.Getenv("OPENAI_API_KEY"),
		client:   &http.Client{Timeout: 60 * time.Second},
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Name returns the backend name.
func (*OpenAIBackend) Name() string {
	return "openai"
}

type openAIChatRequest struct {
	Model       string          `json:"model"`
	Messages    []openAIMessage `json:"messages"`
	Temperature *float64        `json:"temperature,omitempty"`
	MaxTokens   int             `json:"max_tokens,omitempty"`
	ResponseFmt *openAIRespFmt  `json:"response_format,omitempty"`
}

type openAIMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type openAIRespFmt struct {
	Type string `json:"type"`
}

type openAIChatResponse struct {
	Choices []openAIChoice `json:"choices"`
	Model   string         `json:"model"`
	Usage   openAIUsage    `json:"usage"`
}

type openAIChoice struct {
	Message openAIMessage `json:"message"`
}

type openAIUsage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

// Generate calls the /v1/chat/completions endpoint.
func (b *OpenAIBackend) Generate(
	ctx context.Context,
	req GenerateRequest,
) (GenerateResponse, error) {
	messages := []openAIMessage{
		{Role: "user", Content: req.Prompt},
	}

	if req.SystemMsg != "" {
		messages = append(
			[]openAIMessage{{Role: "system", Content: req.SystemMsg}},
			messages...,
		)
	}

	chatReq := openAIChatRequest{
		Model:       b.model,
		Messages:    messages,
		Temperature: &req.Temperature,
		MaxTokens:   req.MaxTokens,
	}

	if req.Format == FormatJSON {
		chatReq.ResponseFmt = &openAIRespFmt{Type: "json_object"}
	}

	body, err := json.Marshal(chatReq)
	if err != nil {
		return GenerateResponse{}, fmt.Errorf("marshaling request: %w", err)
	}

	url := b.endpoint + "/v1/chat/completions"

	httpReq, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		url,
		bytes.NewReader(body),
	)
	if err != nil {
		return GenerateResponse{}, fmt.Errorf("creating HTTP request: %w", err)
	}

	httpReq.Header.Set("Content-Type", "application/json")
	if b.apiKey != "" {
		httpReq.Header.Set("Authorization", "Bearer "+b.apiKey)
	}

	resp, err := b.client.Do(httpReq)
	if err != nil {
		return GenerateResponse{}, fmt.Errorf("calling openai API: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return GenerateResponse{}, fmt.Errorf("reading response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return GenerateResponse{}, fmt.Errorf(
			"openai API error (status %d): %s",
			resp.StatusCode,
			string(respBody),
		)
	}

	var chatResp openAIChatResponse
	if err := json.Unmarshal(respBody, &chatResp); err != nil {
		return GenerateResponse{}, fmt.Errorf("parsing response: %w", err)
	}

	if len(chatResp.Choices) == 0 {
		return GenerateResponse{}, fmt.Errorf("empty choices from openai API")
	}

	return GenerateResponse{
		Content: chatResp.Choices[0].Message.Content,
		Model:   chatResp.Model,
		Usage: TokenUsage{
			PromptTokens:     chatResp.Usage.PromptTokens,
			CompletionTokens: chatResp.Usage.CompletionTokens,
			TotalTokens:      chatResp.Usage.TotalTokens,
		},
	}, nil
}
