package http

import (
	"bytes"
	"encoding/json"
)

// FeedbackRequest is the body of POST /api/feedback.
type FeedbackRequest struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// FeedbackBody is the wire form of FeedbackRequest. Fields stay raw so a
// badly typed question cannot invalidate the answer.
type FeedbackBody struct {
	Question json.RawMessage `json:"question"`
	Answer   json.RawMessage `json:"answer"`
}

// Request converts the body. A non-string answer becomes empty. A question
// keeps its JSON text when it is not a string, and null or absent becomes empty.
func (b FeedbackBody) Request() FeedbackRequest {
	var req FeedbackRequest
	_ = json.Unmarshal(b.Answer, &req.Answer)

	raw := bytes.TrimSpace(b.Question)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return req
	}
	if err := json.Unmarshal(raw, &req.Question); err != nil {
		req.Question = string(raw)
	}
	return req
}

type FeedbackResponse struct {
	Feedback string `json:"feedback"`
}

type QuestionResponse struct {
	ID   int    `json:"id"`
	Text string `json:"text"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
