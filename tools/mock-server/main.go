// Package main implements a mock backend server for local development.
// It serves an OpenAI-compatible chat completions endpoint with canned
// extraction responses from JSON fixtures, plus a vendor roster endpoint
// mimicking the staff's sheets webapp, so the intake service can run
// without real LLM credentials or the production roster.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"
)

type fixtureFile struct {
	Extractions []extractionFixture `json:"extractions"`
	Vendors     []string            `json:"vendors"`
}

// extractionFixture maps a substring of the intake text to a canned
// extraction result. The first fixture whose Match is contained in the
// user message wins; a fixture with an empty Match is the fallback.
type extractionFixture struct {
	Match  string          `json:"match"`
	Fields json.RawMessage `json:"fields"`
}

type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Model   string       `json:"model"`
	Choices []chatChoice `json:"choices"`
	Usage   chatUsage    `json:"usage"`
}

type chatChoice struct {
	Message chatMessage `json:"message"`
}

type chatUsage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

func main() {
	port := flag.Int("port", 8089, "port to listen on")
	fixturePath := flag.String("fixture", "tools/mock-server/testdata/fixtures.json", "path to fixtures file")
	vendorKey := flag.String("vendor-key", "dev-key", "access key required by the vendor roster endpoint")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	fixture, err := loadFixture(*fixturePath)
	if err != nil {
		logger.Error("failed to load fixture", "path", *fixturePath, "error", err)
		os.Exit(1)
	}
	logger.Info("loaded fixture", "extractions", len(fixture.Extractions), "vendors", len(fixture.Vendors))

	mux := http.NewServeMux()
	mux.HandleFunc("POST /v1/chat/completions", completionsHandler(logger, fixture))
	mux.HandleFunc("GET /roster", rosterHandler(logger, fixture, *vendorKey))

	addr := fmt.Sprintf(":%d", *port)
	logger.Info("starting mock backend server", "addr", addr)

	srv := &http.Server{
		Addr:         addr,
		Handler:      requestLogger(logger, mux),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}
	if err := srv.ListenAndServe(); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func loadFixture(path string) (*fixtureFile, error) {
	data, err := os.ReadFile(path) //nolint:gosec // fixture path from trusted CLI flag
	if err != nil {
		return nil, fmt.Errorf("reading fixture: %w", err)
	}
	var f fixtureFile
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing fixture: %w", err)
	}
	return &f, nil
}

func requestLogger(logger *slog.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger.Debug("request", "method", r.Method, "path", r.URL.Path, "query", r.URL.RawQuery)
		next.ServeHTTP(w, r)
	})
}

func completionsHandler(logger *slog.Logger, fixture *fixtureFile) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req chatRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusBadRequest)
			//nolint:errcheck,gosec // best-effort write to HTTP response in mock server
			json.NewEncoder(w).Encode(map[string]string{
				"error": "invalid request body",
			})
			return
		}

		// The intake text is carried in the last user message.
		var userMsg string
		for _, m := range req.Messages {
			if m.Role == "user" {
				userMsg = m.Content
			}
		}
		if userMsg == "" {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusBadRequest)
			//nolint:errcheck,gosec // best-effort write to HTTP response in mock server
			json.NewEncoder(w).Encode(map[string]string{
				"error": "no user message in request",
			})
			return
		}

		content := matchExtraction(fixture.Extractions, userMsg)

		model := req.Model
		if model == "" {
			model = "mock-model"
		}

		resp := chatResponse{
			Model: model,
			Choices: []chatChoice{
				{Message: chatMessage{Role: "assistant", Content: content}},
			},
			Usage: chatUsage{
				PromptTokens:     len(userMsg) / 4,
				CompletionTokens: len(content) / 4,
				TotalTokens:      (len(userMsg) + len(content)) / 4,
			},
		}

		w.Header().Set("Content-Type", "application/json")
		//nolint:errcheck,gosec // best-effort write to HTTP response in mock server
		json.NewEncoder(w).Encode(resp)
		logger.Info("completion", "model", model, "prompt_len", len(userMsg), "response_len", len(content))
	}
}

// matchExtraction returns the canned extraction for the first fixture
// whose match string appears in the message. An empty match string acts
// as the fallback. When nothing matches, an all-empty extraction is
// returned so the rules pipeline still gets valid JSON.
func matchExtraction(fixtures []extractionFixture, msg string) string {
	lower := strings.ToLower(msg)
	var fallback string
	for _, f := range fixtures {
		if f.Match == "" {
			fallback = string(f.Fields)
			continue
		}
		if strings.Contains(lower, strings.ToLower(f.Match)) {
			return string(f.Fields)
		}
	}
	if fallback != "" {
		return fallback
	}
	return `{"brand":"","itemName":"","categoryPath":"","shopifyDescription":"","size":"","condition":"","cost":"","price":"","location":"","vendorSource":"","vendor":"","consignmentPayoutPct":"","intakeCost":""}`
}

func rosterHandler(logger *slog.Logger, fixture *fixtureFile, key string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("key") != key {
			logger.Warn("roster request with bad key")
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnauthorized)
			//nolint:errcheck,gosec // best-effort write to HTTP response in mock server
			json.NewEncoder(w).Encode(map[string]string{
				"error": "invalid access key",
			})
			return
		}

		vendors := fixture.Vendors
		if vendors == nil {
			vendors = []string{}
		}

		w.Header().Set("Content-Type", "application/json")
		//nolint:errcheck,gosec // best-effort write to HTTP response in mock server
		json.NewEncoder(w).Encode(map[string][]string{
			"vendors": vendors,
		})
		logger.Info("roster", "vendors", len(vendors))
	}
}
