package llm

import (
	"context"
	"fmt"

	"github.com/firebase/genkit/go/ai"
	"github.com/firebase/genkit/go/genkit"
)

type generateFunc func(ctx context.Context, opts ...ai.GenerateOption) (*ai.ModelResponse, error)

type genkitCompleter struct {
	model    string
	generate generateFunc
}

// newGenkitCompleter generates through a Genkit instance whose plugins
// already registered model.
func newGenkitCompleter(g *genkit.Genkit, model string) *genkitCompleter {
	return &genkitCompleter{
		model: model,
		generate: func(ctx context.Context, opts ...ai.GenerateOption) (*ai.ModelResponse, error) {
			return genkit.Generate(ctx, g, opts...)
		},
	}
}

func (c *genkitCompleter) Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	resp, err := c.generate(ctx,
		ai.WithModelName(c.model),
		ai.WithMessages(
			ai.NewSystemTextMessage(systemPrompt),
			ai.NewUserTextMessage(userPrompt),
		),
	)
	if err != nil {
		return "", fmt.Errorf("genkit generate (%s): %w", c.model, err)
	}
	if resp == nil || resp.Message == nil {
		return "", fmt.Errorf("genkit generate (%s): %w", c.model, ErrEmptyCompletion)
	}
	return resp.Text(), nil
}
