package dialogue

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"sanguo/internal/config"
)

// GeminiProvider calls the generateContent endpoint in JSON mode
type GeminiProvider struct {
	apiKey   string
	endpoint string
	client   *http.Client
}

// NewGeminiProvider creates a Gemini provider from the AI config
func NewGeminiProvider(cfg *config.AIConfig, client *http.Client) *GeminiProvider {
	if client == nil {
		client = http.DefaultClient
	}
	return &GeminiProvider{
		apiKey:   cfg.GeminiAPIKey,
		endpoint: cfg.ModelEndpoint(cfg.GeminiModel),
		client:   client,
	}
}

// Name implements Provider
func (g *GeminiProvider) Name() string { return config.ProviderGemini }

// Generate implements Provider
func (g *GeminiProvider) Generate(ctx context.Context, prompt string) (string, error) {
	reqBody := map[string]interface{}{
		"contents": []map[string]interface{}{
			{
				"parts": []map[string]string{
					{"text": prompt},
				},
			},
		},
		"generationConfig": map[string]interface{}{
			"responseMimeType": "application/json",
		},
	}

	jsonBody, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("marshal gemini request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.endpoint, bytes.NewReader(jsonBody))
	if err != nil {
		return "", fmt.Errorf("build gemini request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	// the key travels in a header, never in the URL
	req.Header.Set("x-goog-api-key", g.apiKey)

	resp, err := g.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("gemini request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return "", fmt.Errorf("gemini status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var geminiResp struct {
		Candidates []struct {
			Content struct {
				Parts []struct {
					Text string `json:"text"`
				} `json:"parts"`
			} `json:"content"`
		} `json:"candidates"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&geminiResp); err != nil {
		return "", fmt.Errorf("decode gemini response: %w", err)
	}

	if len(geminiResp.Candidates) > 0 && len(geminiResp.Candidates[0].Content.Parts) > 0 {
		if text := strings.TrimSpace(geminiResp.Candidates[0].Content.Parts[0].Text); text != "" {
			return text, nil
		}
	}
	return "", fmt.Errorf("gemini: %w", errEmptyResponse)
}
