package handler

import (
	stdhttp "net/http"

	DTO_http "interview_coach/internal/DTO/http"
	"interview_coach/internal/service/question"
)

// NewQuestionHandler serves one random question per request.
func NewQuestionHandler(questions question.Provider) stdhttp.HandlerFunc {
	return func(w stdhttp.ResponseWriter, _ *stdhttp.Request) {
		q := questions.Random()
		writeJSON(w, stdhttp.StatusOK, DTO_http.QuestionResponse{
			ID:   q.ID,
			Text: q.Text,
		})
	}
}
