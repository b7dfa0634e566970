package config

import "time"

// Provider names accepted in DIALOGUE_PROVIDERS
const (
	ProviderGemini = "gemini"
	ProviderOpenAI = "openai"
)

// AIConfig holds the dialogue providers' configuration. A provider whose key
// is empty is skipped.
type AIConfig struct {
	GeminiAPIKey  string `env:"GEMINI_API_KEY" json:"-"` // Never serialize
	GeminiBaseURL string `env:"GEMINI_BASE_URL" envDefault:"https://generativelanguage.googleapis.com/v1beta/models" json:"geminiBaseUrl"`
	GeminiModel   string `env:"GEMINI_MODEL_DIALOGUE" envDefault:"gemini-2.0-flash" json:"geminiModel"`

	OpenAIAPIKey       string `env:"OPENAI_API_KEY" json:"-"`
	OpenAIResponsesURL string `env:"OPENAI_RESPONSES_URL" envDefault:"https://api.openai.com/v1/responses" json:"openaiResponsesUrl"`
	OpenAIModel        string `env:"OPENAI_MODEL_DIALOGUE" envDefault:"gpt-4o-mini" json:"openaiModel"`

	// ProviderOrder is the fallback order of the dialogue chain
	ProviderOrder []string `env:"DIALOGUE_PROVIDERS" envDefault:"gemini,openai" envSeparator:"," json:"providerOrder"`
	// TimeoutMS bounds each provider call individually
	TimeoutMS int `env:"DIALOGUE_TIMEOUT_MS" envDefault:"10000" json:"timeoutMs"`
}

// GeminiEnabled returns true if the Gemini API is configured
func (c *AIConfig) GeminiEnabled() bool {
	return c.GeminiAPIKey != ""
}

// OpenAIEnabled returns true if the OpenAI API is configured
func (c *AIConfig) OpenAIEnabled() bool {
	return c.OpenAIAPIKey != ""
}

// ModelEndpoint returns the full Gemini endpoint for a given model
func (c *AIConfig) ModelEndpoint(model string) string {
	return c.GeminiBaseURL + "/" + model + ":generateContent"
}

// Timeout is the per-provider call timeout
func (c *AIConfig) Timeout() time.Duration {
	if c.TimeoutMS <= 0 {
		return 10 * time.Second
	}
	return time.Duration(c.TimeoutMS) * time.Millisecond
}
