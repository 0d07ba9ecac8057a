package handler

import (
	"encoding/json"
	"errors"
	stdhttp "net/http"

	DTO_http "interview_coach/internal/DTO/http"
	"interview_coach/internal/platform/logger"
	"interview_coach/internal/service/feedback"
)

// Messages returned to clients. They never carry the underlying cause.
const (
	msgNoAnswer       = "No answer provided"
	msgNotInitialized = "OpenAI client is not initialized."
	msgAIFailure      = "Failed to generate feedback from AI service."
)

const maxFeedbackBody = 1 << 20

// NewFeedbackHandler relays POST /api/feedback to svc.
func NewFeedbackHandler(svc feedback.Relay) stdhttp.HandlerFunc {
	return func(w stdhttp.ResponseWriter, r *stdhttp.Request) {
		// An unreadable body is treated like a missing answer.
		var raw DTO_http.FeedbackBody
		body := stdhttp.MaxBytesReader(w, r.Body, maxFeedbackBody)
		if err := json.NewDecoder(body).Decode(&raw); err != nil {
			logger.FromContext(r.Context()).Debug("feedback body not decoded", "error", err)
			raw = DTO_http.FeedbackBody{}
		}
		req := raw.Request()

		text, err := svc.Feedback(r.Context(), req)
		if err != nil {
			writeJSON(w, statusFromError(err), DTO_http.ErrorResponse{Error: messageFromError(err)})
			return
		}

		writeJSON(w, stdhttp.StatusOK, DTO_http.FeedbackResponse{Feedback: text})
	}
}

// statusFromError maps relay errors to HTTP status codes.
func statusFromError(err error) int {
	switch {
	case err == nil:
		return stdhttp.StatusOK
	case errors.Is(err, feedback.ErrInvalidInput):
		return stdhttp.StatusBadRequest
	default:
		return stdhttp.StatusInternalServerError
	}
}

func messageFromError(err error) string {
	switch {
	case errors.Is(err, feedback.ErrInvalidInput):
		return msgNoAnswer
	case errors.Is(err, feedback.ErrServiceUnavailable):
		return msgNotInitialized
	default:
		return msgAIFailure
	}
}
