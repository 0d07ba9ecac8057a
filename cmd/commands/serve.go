package commands

import (
	"context"
	"errors"
	"fmt"
	stdhttp "net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"interview_coach/internal/config"
	"interview_coach/internal/platform/logger"
	"interview_coach/internal/service/feedback"
	service_llm "interview_coach/internal/service/llm"
	"interview_coach/internal/service/question"
	transport_http "interview_coach/internal/transport/http"
)

const shutdownTimeout = 10 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API",
	RunE:  runServe,
}

func init() {
	addServeFlags(serveCmd)
	rootCmd.AddCommand(serveCmd)
}

// addServeFlags registers the serve flags on cmd and binds them to v.
// Both the root command and serve accept them.
func addServeFlags(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.String("port", config.DefaultPort, "Port to listen on (env PORT)")
	flags.String("provider", config.DefaultProvider, "Completion provider: openai, genkit, anthropic, deepseek, gemini (env LLM_PROVIDER)")
	flags.String("questions", "", "YAML file with the question list (env QUESTIONS_FILE)")
}

// bindServeFlags binds the flags of the command actually being run, so that
// only explicitly set flags override the environment.
func bindServeFlags(cmd *cobra.Command) error {
	flags := cmd.Flags()
	for key, name := range map[string]string{
		config.KeyPort:          "port",
		config.KeyProvider:      "provider",
		config.KeyQuestionsFile: "questions",
	} {
		if err := v.BindPFlag(key, flags.Lookup(name)); err != nil {
			return fmt.Errorf("binding --%s: %w", name, err)
		}
	}
	return nil
}

func runServe(cmd *cobra.Command, _ []string) error {
	color.Cyan("🚀 Starting Interview Coach Service...")

	if err := bindServeFlags(cmd); err != nil {
		return err
	}
	cfg, err := config.Load(v)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	log := logger.FromContext(ctx)

	color.Blue("🔧 Configuration:")
	log.Info("configuration loaded", "port", cfg.Port, "provider", cfg.Provider, "questions_file", cfg.QuestionsFile)

	questions, err := loadQuestions(cfg.QuestionsFile)
	if err != nil {
		return err
	}
	provider, err := question.NewProvider(questions)
	if err != nil {
		return err
	}
	color.Green("✅ Loaded %d questions", len(questions))

	// Without a client the service still starts; /api/feedback answers 500.
	color.Yellow("🔌 Initializing %s completion client...", cfg.Provider)
	completer, err := service_llm.NewCompleter(ctx, cfg.Provider)
	if err != nil {
		color.Red("❌ Completion client not initialized: %v", err)
		log.Error("completion client not initialized", "provider", cfg.Provider, "error", err)
	} else {
		color.Green("✅ Completion client initialized")
	}

	router := transport_http.NewRouter(transport_http.Deps{
		Questions: provider,
		Feedback:  feedback.NewRelay(completer),
		Logger:    log,
	})
	srv := transport_http.NewServer(cfg.Addr(), router)

	errCh := make(chan error, 1)
	go func() {
		color.Magenta("🌐 Server starting on http://localhost%s", cfg.Addr())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, stdhttp.ErrServerClosed) {
			errCh <- fmt.Errorf("server failed: %w", err)
			return
		}
		errCh <- nil
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return <-errCh
}

func loadQuestions(path string) ([]question.Question, error) {
	if path == "" {
		return question.DefaultQuestions(), nil
	}
	return question.LoadFile(path)
}
