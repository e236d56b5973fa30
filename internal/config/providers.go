package config

import (
	"fmt"

	"github.com/kwen1510/Realtime-clustering/pkg/llm"
)

// Completer builds the chat completion client for the configured provider.
func (c Config) Completer() (llm.Completer, error) {
	switch c.Provider {
	case ProviderGroq:
		if c.LLMBaseURL != "" {
			return llm.NewOpenAIClient(c.GroqAPIKey, c.LLMBaseURL), nil
		}
		return llm.NewGroqClient(c.GroqAPIKey), nil
	case ProviderOpenAI:
		return llm.NewOpenAIClient(c.OpenAIAPIKey, c.LLMBaseURL), nil
	case ProviderAnthropic:
		return llm.NewAnthropicClient(c.AnthropicAPIKey), nil
	default:
		return nil, fmt.Errorf("unknown LLM_PROVIDER %q", c.Provider)
	}
}

// Transcriber builds the speech-to-text client. Anthropic has no audio API, so
// transcription stays on Groq whenever a Groq key is present.
func (c Config) Transcriber() llm.Transcriber {
	if c.Provider == ProviderOpenAI && c.GroqAPIKey == "" {
		return llm.NewOpenAIClient(c.OpenAIAPIKey, c.LLMBaseURL)
	}
	if c.Provider == ProviderGroq && c.LLMBaseURL != "" {
		return llm.NewOpenAIClient(c.GroqAPIKey, c.LLMBaseURL)
	}
	return llm.NewGroqClient(c.GroqAPIKey)
}

// MissingKey names the API key variable the configured provider needs when it
// is unset, or returns "".
func (c Config) MissingKey() string {
	switch {
	case c.Provider == ProviderGroq && c.GroqAPIKey == "":
		return "GROQ_API_KEY"
	case c.Provider == ProviderOpenAI && c.OpenAIAPIKey == "":
		return "OPENAI_API_KEY"
	case c.Provider == ProviderAnthropic && c.AnthropicAPIKey == "":
		return "ANTHROPIC_API_KEY"
	}
	return ""
}
