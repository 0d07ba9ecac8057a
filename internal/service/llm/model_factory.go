package llm

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"os"
	"strings"

	"github.com/firebase/genkit/go/ai"
	"github.com/firebase/genkit/go/genkit"

	"github.com/firebase/genkit/go/plugins/compat_oai"
	"github.com/firebase/genkit/go/plugins/compat_oai/anthropic"
	"github.com/firebase/genkit/go/plugins/compat_oai/openai"

	"github.com/openai/openai-go/option"
)

// NewCompleter builds the completion client for provider from environment
// credentials. It never contacts the provider.
func NewCompleter(ctx context.Context, provider string) (Completer, error) {
	switch strings.ToLower(strings.TrimSpace(provider)) {
	case ProviderOpenAI, "":
		return openAI()
	case ProviderGenkit:
		return genkitOpenAI(ctx)
	case ProviderAnthropic:
		return genkitAnthropic(ctx)
	case ProviderDeepSeek:
		return genkitDeepSeek(ctx)
	case ProviderGemini:
		return gemini(ctx)
	default:
		return nil, fmt.Errorf("unsupported provider: %q", provider)
	}
}

func openAIOptions() ([]option.RequestOption, error) {
	apiKey, err := requireEnv("OPENAI_API_KEY")
	if err != nil {
		return nil, err
	}

	opts := []option.RequestOption{
		option.WithAPIKey(apiKey),
		option.WithMaxRetries(0),
	}
	if base := strings.TrimSpace(os.Getenv("OPENAI_BASE_URL")); base != "" {
		if _, err := validateBaseURL(base); err != nil {
			return nil, fmt.Errorf("OPENAI_BASE_URL: %w", err)
		}
		opts = append(opts, option.WithBaseURL(base))
	}
	return opts, nil
}

func openAI() (Completer, error) {
	opts, err := openAIOptions()
	if err != nil {
		return nil, err
	}
	return NewOpenAICompleter(opts...), nil
}

func genkitOpenAI(ctx context.Context) (Completer, error) {
	opts, err := openAIOptions()
	if err != nil {
		return nil, err
	}

	g := genkit.Init(ctx, genkit.WithPlugins(&openai.OpenAI{Opts: opts}))
	return newGenkitCompleter(g, ModelGenkit), nil
}

func genkitAnthropic(ctx context.Context) (Completer, error) {
	apiKey, err := requireEnv("ANTHROPIC_API_KEY")
	if err != nil {
		return nil, err
	}
	opts := []option.RequestOption{
		option.WithAPIKey(apiKey),
		option.WithMaxRetries(0),
	}

	// the plugin supplies the default base URL
	g := genkit.Init(ctx,
		genkit.WithPlugins(&anthropic.Anthropic{Opts: opts}),
	)
	return newGenkitCompleter(g, ModelAnthropic), nil
}

func genkitDeepSeek(ctx context.Context) (Completer, error) {
	apiKey, err := requireEnv("DEEPSEEK_API_KEY")
	if err != nil {
		return nil, err
	}

	base := getenvOr("DEEPSEEK_BASE_URL", "https://api.deepseek.com/v1")
	if _, err := validateBaseURL(base); err != nil {
		return nil, fmt.Errorf("DEEPSEEK_BASE_URL: %w", err)
	}

	ds := &compat_oai.OpenAICompatible{
		Provider: "deepseek", // model names are prefixed: deepseek/<model>
		Opts: []option.RequestOption{
			option.WithAPIKey(apiKey),
			option.WithBaseURL(base),
			option.WithMaxRetries(0),
		},
	}

	g := genkit.Init(ctx, genkit.WithPlugins(ds))

	ds.DefineModel(ds.Provider, "deepseek-chat", ai.ModelOptions{
		Supports: &compat_oai.BasicText,
		Label:    "DeepSeek Chat",
	})
	if !ds.IsDefinedModel(g, ModelDeepSeek) {
		return nil, errors.New("deepseek model is not registered in Genkit registry")
	}

	return newGenkitCompleter(g, ModelDeepSeek), nil
}

func gemini(ctx context.Context) (Completer, error) {
	apiKey, err := requireEnv("GEMINI_API_KEY")
	if err != nil {
		return nil, err
	}
	return NewGeminiCompleter(ctx, apiKey)
}

/* ------------------------ helpers ------------------------ */

func requireEnv(key string) (string, error) {
	val := strings.TrimSpace(os.Getenv(key))
	if val == "" {
		return "", fmt.Errorf("missing required env %s", key)
	}
	return val, nil
}

func getenvOr(key, fallback string) string {
	val := strings.TrimSpace(os.Getenv(key))
	if val == "" {
		return fallback
	}
	return val
}

func validateBaseURL(raw string) (*url.URL, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return nil, err
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("invalid URL: %q", raw)
	}
	return u, nil
}
