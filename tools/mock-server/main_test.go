package main

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func loadTestFixture(t *testing.T) *fixtureFile {
	t.Helper()
	path := filepath.Join("testdata", "fixtures.json")
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading fixture: %v", err)
	}
	var f fixtureFile
	if err := json.Unmarshal(data, &f); err != nil {
		t.Fatalf("parsing fixture: %v", err)
	}
	return &f
}

func TestLoadFixture(t *testing.T) {
	fixture := loadTestFixture(t)
	if len(fixture.Extractions) == 0 {
		t.Fatal("expected extractions in fixture")
	}
	if len(fixture.Vendors) == 0 {
		t.Fatal("expected vendors in fixture")
	}
	// Every extraction fixture must carry valid JSON fields.
	for i, ex := range fixture.Extractions {
		var fields map[string]string
		if err := json.Unmarshal(ex.Fields, &fields); err != nil {
			t.Errorf("extraction %d: invalid fields JSON: %v", i, err)
		}
	}
}

func completionsRequest(t *testing.T, userMsg string) *httptest.ResponseRecorder {
	t.Helper()
	body, err := json.Marshal(chatRequest{
		Model: "gpt-4o-mini",
		Messages: []chatMessage{
			{Role: "system", Content: "You extract resale listing fields."},
			{Role: "user", Content: userMsg},
		},
	})
	if err != nil {
		t.Fatalf("marshaling request: %v", err)
	}

	fixture := loadTestFixture(t)
	handler := completionsHandler(testLogger(), fixture)
	req := httptest.NewRequest(http.MethodPost, "/v1/chat/completions", strings.NewReader(string(body)))
	w := httptest.NewRecorder()
	handler(w, req)
	return w
}

func TestCompletionsHandler_MatchedFixture(t *testing.T) {
	w := completionsRequest(t, "Rick Owens ramones size 43 paid 300 selling for 900")

	if w.Code != http.StatusOK {
		t.Fatalf("status=%d, want %d", w.Code, http.StatusOK)
	}

	var resp chatResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if len(resp.Choices) != 1 {
		t.Fatalf("choices=%d, want 1", len(resp.Choices))
	}
	if resp.Model != "gpt-4o-mini" {
		t.Errorf("model=%s, want gpt-4o-mini", resp.Model)
	}

	var fields map[string]string
	if err := json.Unmarshal([]byte(resp.Choices[0].Message.Content), &fields); err != nil {
		t.Fatalf("choice content is not valid JSON: %v", err)
	}
	if fields["brand"] != "Rick Owens" {
		t.Errorf("brand=%s, want Rick Owens", fields["brand"])
	}
	if fields["price"] != "900" {
		t.Errorf("price=%s, want 900", fields["price"])
	}
}

func TestCompletionsHandler_ConsignmentFixture(t *testing.T) {
	w := completionsRequest(t, "Maria consignment 70/30 split chrome hearts ring selling for 100")

	var resp chatResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	var fields map[string]string
	if err := json.Unmarshal([]byte(resp.Choices[0].Message.Content), &fields); err != nil {
		t.Fatalf("choice content is not valid JSON: %v", err)
	}
	if fields["vendor"] != "Maria" {
		t.Errorf("vendor=%s, want Maria", fields["vendor"])
	}
	if fields["consignmentPayoutPct"] != "70" {
		t.Errorf("consignmentPayoutPct=%s, want 70", fields["consignmentPayoutPct"])
	}
}

func TestCompletionsHandler_FallbackFixture(t *testing.T) {
	w := completionsRequest(t, "some item nothing in the fixtures mentions")

	var resp chatResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	var fields map[string]string
	if err := json.Unmarshal([]byte(resp.Choices[0].Message.Content), &fields); err != nil {
		t.Fatalf("choice content is not valid JSON: %v", err)
	}
	if fields["brand"] != "Stussy" {
		t.Errorf("brand=%s, want fallback Stussy", fields["brand"])
	}
}

func TestCompletionsHandler_NoUserMessage(t *testing.T) {
	fixture := loadTestFixture(t)
	handler := completionsHandler(testLogger(), fixture)

	body := `{"model":"m","messages":[{"role":"system","content":"sys only"}]}`
	req := httptest.NewRequest(http.MethodPost, "/v1/chat/completions", strings.NewReader(body))
	w := httptest.NewRecorder()
	handler(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status=%d, want %d", w.Code, http.StatusBadRequest)
	}
}

func TestCompletionsHandler_InvalidBody(t *testing.T) {
	fixture := loadTestFixture(t)
	handler := completionsHandler(testLogger(), fixture)

	req := httptest.NewRequest(http.MethodPost, "/v1/chat/completions", strings.NewReader("not json"))
	w := httptest.NewRecorder()
	handler(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status=%d, want %d", w.Code, http.StatusBadRequest)
	}
}

func TestMatchExtraction_CaseInsensitive(t *testing.T) {
	fixtures := []extractionFixture{
		{Match: "Carhartt", Fields: json.RawMessage(`{"brand":"Carhartt"}`)},
	}
	got := matchExtraction(fixtures, "vintage CARHARTT detroit jacket")
	if !strings.Contains(got, "Carhartt") {
		t.Errorf("expected Carhartt fixture, got %s", got)
	}
}

func TestMatchExtraction_NoFallback(t *testing.T) {
	got := matchExtraction(nil, "anything")
	var fields map[string]string
	if err := json.Unmarshal([]byte(got), &fields); err != nil {
		t.Fatalf("default extraction is not valid JSON: %v", err)
	}
	if fields["brand"] != "" {
		t.Errorf("brand=%s, want empty", fields["brand"])
	}
	// All thirteen extraction fields must be present.
	if len(fields) != 13 {
		t.Errorf("fields=%d, want 13", len(fields))
	}
}

func TestRosterHandler_Success(t *testing.T) {
	fixture := loadTestFixture(t)
	handler := rosterHandler(testLogger(), fixture, "dev-key")
	req := httptest.NewRequest(http.MethodGet, "/roster?key=dev-key", http.NoBody)
	w := httptest.NewRecorder()

	handler(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status=%d, want %d", w.Code, http.StatusOK)
	}

	var resp map[string][]string
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if len(resp["vendors"]) != len(fixture.Vendors) {
		t.Errorf("vendors=%d, want %d", len(resp["vendors"]), len(fixture.Vendors))
	}
}

func TestRosterHandler_BadKey(t *testing.T) {
	fixture := loadTestFixture(t)
	handler := rosterHandler(testLogger(), fixture, "dev-key")
	req := httptest.NewRequest(http.MethodGet, "/roster?key=wrong", http.NoBody)
	w := httptest.NewRecorder()

	handler(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status=%d, want %d", w.Code, http.StatusUnauthorized)
	}
}

func TestRosterHandler_EmptyVendors(t *testing.T) {
	handler := rosterHandler(testLogger(), &fixtureFile{}, "dev-key")
	req := httptest.NewRequest(http.MethodGet, "/roster?key=dev-key", http.NoBody)
	w := httptest.NewRecorder()

	handler(w, req)

	if !strings.Contains(w.Body.String(), `"vendors":[]`) {
		t.Errorf("expected empty array, got %s", w.Body.String())
	}
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
}
