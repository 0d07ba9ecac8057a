// Package feedback relays interview answers to a completion provider and
// returns its coaching feedback.
package feedback

import (
	"context"
	"errors"
	"strings"

	DTO_http "interview_coach/internal/DTO/http"
	config_llm "interview_coach/internal/config/llm"
	"interview_coach/internal/platform/logger"
	service_llm "interview_coach/internal/service/llm"
)

var (
	// ErrInvalidInput means the answer was missing or blank.
	ErrInvalidInput = errors.New("no answer provided")
	// ErrServiceUnavailable means no completion client was built at startup.
	// It holds for the lifetime of the process.
	ErrServiceUnavailable = errors.New("completion client is not initialized")
	// ErrAIServiceFailure means the completion call itself failed.
	ErrAIServiceFailure = errors.New("failed to generate feedback")
)

type relay struct {
	completer service_llm.Completer
}

type Relay interface {
	Feedback(ctx context.Context, request DTO_http.FeedbackRequest) (string, error)
}

// NewRelay returns a Relay backed by completer. A nil completer yields a
// Relay that fails every call with ErrServiceUnavailable.
func NewRelay(completer service_llm.Completer) Relay {
	return &relay{completer: completer}
}

func (r *relay) Feedback(ctx context.Context, request DTO_http.FeedbackRequest) (string, error) {
	if r.completer == nil {
		return "", ErrServiceUnavailable
	}

	if strings.TrimSpace(request.Answer) == "" {
		return "", ErrInvalidInput
	}

	log := logger.FromContext(ctx)
	userPrompt := config_llm.UserPrompt(request.Question, request.Answer)

	text, err := r.completer.Complete(ctx, config_llm.Prompt, userPrompt)
	if err != nil {
		log.Error("completion call failed", "error", err)
		return "", ErrAIServiceFailure
	}

	log.Debug("feedback generated", "chars", len(text))
	return text, nil
}
