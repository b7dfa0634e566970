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

// OpenAIProvider calls an OpenAI-compatible responses endpoint
type OpenAIProvider struct {
	apiKey       string
	model        string
	responsesURL string
	client       *http.Client
}

// NewOpenAIProvider creates an OpenAI provider from the AI config
func NewOpenAIProvider(cfg *config.AIConfig, client *http.Client) *OpenAIProvider {
	if client == nil {
		client = http.DefaultClient
	}
	responsesURL := strings.TrimSpace(cfg.OpenAIResponsesURL)
	if responsesURL == "" {
		responsesURL = "https://api.openai.com/v1/responses"
	}
	return &OpenAIProvider{
		apiKey:       cfg.OpenAIAPIKey,
		model:        cfg.OpenAIModel,
		responsesURL: responsesURL,
		client:       client,
	}
}

// Name implements Provider
func (o *OpenAIProvider) Name() string { return config.ProviderOpenAI }

// Generate implements Provider
func (o *OpenAIProvider) Generate(ctx context.Context, prompt string) (string, error) {
	requestBody, err := json.Marshal(map[string]any{
		"model": o.model,
		"input": prompt,
		"text": map[string]any{
			"format": map[string]string{"type": "json_object"},
		},
	})
	if err != nil {
		return "", fmt.Errorf("marshal openai request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, o.responsesURL, bytes.NewReader(requestBody))
	if err != nil {
		return "", fmt.Errorf("build openai request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+o.apiKey)

	res, err := o.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("openai request failed: %w", err)
	}
	defer res.Body.Close()
	if res.StatusCode < 200 || res.StatusCode >= 300 {
		body, err := io.ReadAll(io.LimitReader(res.Body, 4096))
		if err != nil {
			return "", fmt.Errorf("read openai error body: %w", err)
		}
		return "", fmt.Errorf("openai status %d: %s", res.StatusCode, strings.TrimSpace(string(body)))
	}

	var payload struct {
		OutputText string `json:"output_text"`
		Output     []struct {
			Content []struct {
				Type string `json:"type"`
				Text string `json:"text"`
			} `json:"content"`
		} `json:"output"`
	}
	if err := json.NewDecoder(res.Body).Decode(&payload); err != nil {
		return "", fmt.Errorf("decode openai response: %w", err)
	}
	if text := strings.TrimSpace(payload.OutputText); text != "" {
		return text, nil
	}
	for _, item := range payload.Output {
		for _, content := range item.Content {
			if text := strings.TrimSpace(content.Text); text != "" {
				return text, nil
			}
		}
	}
	return "", fmt.Errorf("openai: %w", errEmptyResponse)
}
