package http

import (
	"encoding/json"
	"testing"
)

func TestFeedbackBody_Request(t *testing.T) {
	tests := []struct {
		name string
		body string
		want FeedbackRequest
	}{
		{"strings", `{"question": "Why us?", "answer": "Mission."}`, FeedbackRequest{Question: "Why us?", Answer: "Mission."}},
		{"absent question", `{"answer": "a"}`, FeedbackRequest{Answer: "a"}},
		{"null question", `{"question": null, "answer": "a"}`, FeedbackRequest{Answer: "a"}},
		{"numeric question", `{"question": 3, "answer": "a"}`, FeedbackRequest{Question: "3", Answer: "a"}},
		{"object question", `{"question": {"id": 1}, "answer": "a"}`, FeedbackRequest{Question: `{"id": 1}`, Answer: "a"}},
		{"numeric answer", `{"question": "q", "answer": 42}`, FeedbackRequest{Question: "q"}},
		{"null answer", `{"answer": null}`, FeedbackRequest{}},
		{"empty object", `{}`, FeedbackRequest{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var body FeedbackBody
			if err := json.Unmarshal([]byte(tt.body), &body); err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			if got := body.Request(); got != tt.want {
				t.Errorf("Request() = %+v, want %+v", got, tt.want)
			}
		})
	}
}
