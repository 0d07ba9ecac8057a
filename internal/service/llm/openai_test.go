package llm

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

type chatRequest struct {
	Model    string `json:"model"`
	Messages []struct {
		Role    string `json:"role"`
		Content string `json:"content"`
	} `json:"messages"`
}

func newOpenAITestServer(t *testing.T, status int, body string, captured *chatRequest, calls *int32) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(calls, 1)
		if r.URL.Path != "/chat/completions" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer test-key" {
			t.Errorf("Authorization = %q", got)
		}
		raw, _ := io.ReadAll(r.Body)
		if captured != nil {
			if err := json.Unmarshal(raw, captured); err != nil {
				t.Errorf("decoding request body: %v", err)
			}
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = io.WriteString(w, body)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestOpenAICompleter_Success(t *testing.T) {
	var req chatRequest
	var calls int32
	srv := newOpenAITestServer(t, http.StatusOK, `{
		"id": "chatcmpl-1",
		"object": "chat.completion",
		"created": 1700000000,
		"model": "gpt-3.5-turbo",
		"choices": [{
			"index": 0,
			"finish_reason": "stop",
			"logprobs": null,
			"message": {"role": "assistant", "content": "Great job! Try adding more specifics.", "refusal": null}
		}]
	}`, &req, &calls)

	c := NewOpenAICompleter(option.WithAPIKey("test-key"), option.WithBaseURL(srv.URL+"/"))
	got, err := c.Complete(context.Background(), "be a coach", "The question was: 'q'. My answer is: 'a'")
	if err != nil {
		t.Fatalf("Complete returned error: %v", err)
	}
	if got != "Great job! Try adding more specifics." {
		t.Errorf("Complete() = %q", got)
	}

	if req.Model != ModelOpenAI {
		t.Errorf("model = %q, want %q", req.Model, ModelOpenAI)
	}
	if len(req.Messages) != 2 {
		t.Fatalf("expected 2 messages, got %d", len(req.Messages))
	}
	if req.Messages[0].Role != "system" || req.Messages[0].Content != "be a coach" {
		t.Errorf("unexpected system message: %+v", req.Messages[0])
	}
	if req.Messages[1].Role != "user" || req.Messages[1].Content != "The question was: 'q'. My answer is: 'a'" {
		t.Errorf("unexpected user message: %+v", req.Messages[1])
	}
}

func TestOpenAICompleter_ErrorStatusNotRetried(t *testing.T) {
	var calls int32
	srv := newOpenAITestServer(t, http.StatusInternalServerError,
		`{"error": {"message": "upstream exploded", "type": "server_error"}}`, nil, &calls)

	c := NewOpenAICompleter(option.WithAPIKey("test-key"), option.WithBaseURL(srv.URL+"/"))
	_, err := c.Complete(context.Background(), "sys", "user")
	if err == nil {
		t.Fatal("expected error for 500 response")
	}
	if !strings.Contains(err.Error(), "openai chat completion") {
		t.Errorf("expected wrapped error, got %v", err)
	}
	if n := atomic.LoadInt32(&calls); n != 1 {
		t.Errorf("expected exactly 1 request, got %d", n)
	}
}

func TestOpenAICompleter_NoChoices(t *testing.T) {
	var calls int32
	srv := newOpenAITestServer(t, http.StatusOK,
		`{"id": "x", "object": "chat.completion", "created": 0, "model": "gpt-3.5-turbo", "choices": []}`, nil, &calls)

	c := NewOpenAICompleter(option.WithAPIKey("test-key"), option.WithBaseURL(srv.URL+"/"))
	_, err := c.Complete(context.Background(), "sys", "user")
	if !errors.Is(err, ErrEmptyCompletion) {
		t.Errorf("expected ErrEmptyCompletion, got %v", err)
	}
}

type fakeChat struct {
	resp *openai.ChatCompletion
	err  error
}

func (f *fakeChat) New(_ context.Context, _ openai.ChatCompletionNewParams, _ ...option.RequestOption) (*openai.ChatCompletion, error) {
	return f.resp, f.err
}

func TestOpenAICompleter_TransportError(t *testing.T) {
	cause := errors.New("dial tcp: connection refused")
	c := &openAICompleter{chat: &fakeChat{err: cause}}

	_, err := c.Complete(context.Background(), "sys", "user")
	if !errors.Is(err, cause) {
		t.Errorf("expected wrapped cause, got %v", err)
	}
}

func TestOpenAICompleter_NilResponse(t *testing.T) {
	c := &openAICompleter{chat: &fakeChat{}}

	_, err := c.Complete(context.Background(), "sys", "user")
	if !errors.Is(err, ErrEmptyCompletion) {
		t.Errorf("expected ErrEmptyCompletion, got %v", err)
	}
}

func TestModelOpenAI_MatchesSDKConstant(t *testing.T) {
	if string(openai.ChatModelGPT3_5Turbo) != ModelOpenAI {
		t.Errorf("ModelOpenAI = %q, SDK constant = %q", ModelOpenAI, openai.ChatModelGPT3_5Turbo)
	}
}
