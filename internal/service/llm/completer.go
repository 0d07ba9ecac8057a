package llm

import (
	"context"
	"errors"
)

// Completer produces a single-turn completion from a system and a user message.
type Completer interface {
	Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}

// ErrEmptyCompletion is returned when the provider answers without any choice.
var ErrEmptyCompletion = errors.New("completion returned no choices")

// Supported providers.
const (
	ProviderOpenAI    = "openai"
	ProviderGenkit    = "genkit"
	ProviderAnthropic = "anthropic"
	ProviderDeepSeek  = "deepseek"
	ProviderGemini    = "gemini"
)

// Fixed model per provider.
const (
	ModelOpenAI    = "gpt-3.5-turbo"
	ModelGenkit    = "openai/gpt-3.5-turbo"
	ModelAnthropic = "anthropic/claude-3-5-haiku-20241022"
	ModelDeepSeek  = "deepseek/deepseek-chat"
	ModelGemini    = "gemini-2.0-flash"
)
