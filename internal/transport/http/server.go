// Package http wires the HTTP surface of the service.
package http

import (
	"log/slog"
	stdhttp "net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"

	"interview_coach/internal/platform/logger"
	"interview_coach/internal/service/feedback"
	"interview_coach/internal/service/question"
	"interview_coach/internal/transport/http/handler"
)

// Deps are the services exposed over HTTP.
type Deps struct {
	Questions question.Provider
	Feedback  feedback.Relay
	Logger    *slog.Logger
}

// NewRouter builds the chi router with all routes and middleware.
func NewRouter(d Deps) stdhttp.Handler {
	r := chi.NewRouter()
	r.Use(cors.AllowAll().Handler)
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger(d.Logger))
	r.Use(middleware.Recoverer)
	r.Use(middleware.Logger)

	r.Get("/healthz", func(w stdhttp.ResponseWriter, r *stdhttp.Request) {
		w.WriteHeader(stdhttp.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Route("/api", func(r chi.Router) {
		r.Get("/question", handler.NewQuestionHandler(d.Questions))
		r.Post("/feedback", handler.NewFeedbackHandler(d.Feedback))
	})

	return r
}

// NewServer returns a server for h on addr. There is no write timeout:
// a feedback request lasts as long as the completion call.
func NewServer(addr string, h stdhttp.Handler) *stdhttp.Server {
	return &stdhttp.Server{
		Addr:              addr,
		Handler:           h,
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
}

// requestLogger puts a logger tagged with the request ID into the context.
func requestLogger(base *slog.Logger) func(stdhttp.Handler) stdhttp.Handler {
	if base == nil {
		base = slog.Default()
	}
	return func(next stdhttp.Handler) stdhttp.Handler {
		return stdhttp.HandlerFunc(func(w stdhttp.ResponseWriter, r *stdhttp.Request) {
			l := base.With("request_id", middleware.GetReqID(r.Context()))
			next.ServeHTTP(w, r.WithContext(logger.WithContext(r.Context(), l)))
		})
	}
}
