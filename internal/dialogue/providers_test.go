package dialogue

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"sanguo/internal/config"
)

func TestGeminiProviderGenerate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Fatalf("method = %s", r.Method)
		}
		if !strings.HasSuffix(r.URL.Path, "/gemini-test:generateContent") {
			t.Fatalf("path = %s", r.URL.Path)
		}
		if r.URL.Query().Get("key") != "" {
			t.Fatalf("api key leaked into query string")
		}
		if got := r.Header.Get("x-goog-api-key"); got != "g-key" {
			t.Fatalf("api key header = %q", got)
		}
		var body struct {
			Contents []struct {
				Parts []struct {
					Text string `json:"text"`
				} `json:"parts"`
			} `json:"contents"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		if len(body.Contents) != 1 || body.Contents[0].Parts[0].Text != "hello" {
			t.Fatalf("unexpected request body: %+v", body)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":" {\"ok\":true} "}]}}]}`))
	}))
	defer srv.Close()

	cfg := &config.AIConfig{GeminiAPIKey: "g-key", GeminiBaseURL: srv.URL + "/models", GeminiModel: "gemini-test"}
	got, err := NewGeminiProvider(cfg, srv.Client()).Generate(context.Background(), "hello")
	if err != nil {
		t.Fatalf("Generate err: %v", err)
	}
	if got != `{"ok":true}` {
		t.Fatalf("Generate = %q", got)
	}
}

func TestGeminiProviderErrors(t *testing.T) {
	cases := []struct {
		name   string
		status int
		body   string
	}{
		{"http error", http.StatusTooManyRequests, `{"error":"quota"}`},
		{"no candidates", http.StatusOK, `{"candidates":[]}`},
		{"bad json", http.StatusOK, `<html>`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.status)
				_, _ = w.Write([]byte(tc.body))
			}))
			defer srv.Close()

			cfg := &config.AIConfig{GeminiAPIKey: "secret-key", GeminiBaseURL: srv.URL, GeminiModel: "m"}
			_, err := NewGeminiProvider(cfg, srv.Client()).Generate(context.Background(), "hello")
			if err == nil {
				t.Fatalf("expected error")
			}
			if strings.Contains(err.Error(), "secret-key") {
				t.Fatalf("error leaks api key: %v", err)
			}
		})
	}
}

func TestOpenAIProviderGenerate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer sk-test" {
			t.Fatalf("authorization = %q", got)
		}
		var body map[string]any
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		if body["model"] != "gpt-test" || body["input"] != "hello" {
			t.Fatalf("unexpected request body: %v", body)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"output":[{"content":[{"type":"output_text","text":"{\"ok\":true}"}]}]}`))
	}))
	defer srv.Close()

	cfg := &config.AIConfig{OpenAIAPIKey: "sk-test", OpenAIModel: "gpt-test", OpenAIResponsesURL: srv.URL}
	got, err := NewOpenAIProvider(cfg, srv.Client()).Generate(context.Background(), "hello")
	if err != nil {
		t.Fatalf("Generate err: %v", err)
	}
	if got != `{"ok":true}` {
		t.Fatalf("Generate = %q", got)
	}
}

func TestOpenAIProviderPrefersOutputText(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"output_text":"first","output":[{"content":[{"text":"second"}]}]}`))
	}))
	defer srv.Close()

	cfg := &config.AIConfig{OpenAIAPIKey: "sk", OpenAIModel: "m", OpenAIResponsesURL: srv.URL}
	got, err := NewOpenAIProvider(cfg, srv.Client()).Generate(context.Background(), "hello")
	if err != nil || got != "first" {
		t.Fatalf("Generate = %q, %v", got, err)
	}
}

func TestOpenAIProviderStatusError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream unavailable", http.StatusBadGateway)
	}))
	defer srv.Close()

	cfg := &config.AIConfig{OpenAIAPIKey: "sk", OpenAIModel: "m", OpenAIResponsesURL: srv.URL}
	_, err := NewOpenAIProvider(cfg, srv.Client()).Generate(context.Background(), "hello")
	if err == nil || !strings.Contains(err.Error(), "502") {
		t.Fatalf("expected status error, got %v", err)
	}
}
