package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	zlog "github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/azzautomation2026/shama/internal/app"
	"github.com/azzautomation2026/shama/internal/auth"
	"github.com/azzautomation2026/shama/internal/llm"
	"github.com/azzautomation2026/shama/internal/quiz"
	"github.com/azzautomation2026/shama/internal/quizgen"
	"github.com/azzautomation2026/shama/internal/store"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Launch the Sham'a TUI",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	ctx := cmd.Context()
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	logger := newLogger(dbPath)
	// Redirect the global logger too; stderr would corrupt the TUI.
	zlog.Logger = logger

	authSvc := auth.NewService(st.Accounts())

	var gen quizgen.Generator
	cfg, found := resolveLLMConfig()
	if !found {
		fmt.Fprintln(os.Stderr, "No LLM API key found. Set SHAMA_GEMINI_API_KEY (or GEMINI_API_KEY) to enable generation.")
		gen = unavailableGenerator{}
	} else {
		provider, err := llm.NewProvider(ctx, cfg, st.RequestLog(), logger)
		if err != nil {
			fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
			gen = unavailableGenerator{err: err}
		} else {
			gen = quizgen.New(provider, quizgen.DefaultConfig())
		}
	}

	genSvc := quizgen.NewService(gen, st.Quizzes(), logger)

	return app.Run(app.Options{
		AuthService: authSvc,
		GenService:  genSvc,
		Log:         logger,
	})
}

// resolveLLMConfig prefers explicit SHAMA_* configuration and falls back to
// probing the providers' standard key env vars.
func resolveLLMConfig() (llm.Config, bool) {
	cfg := llm.ConfigFromEnv()
	if cfg.Validate() == nil {
		return cfg, true
	}
	return llm.DiscoverConfig()
}

// newLogger writes next to the database when SHAMA_DEBUG is set, otherwise
// discards everything.
func newLogger(dbPath string) zerolog.Logger {
	if os.Getenv("SHAMA_DEBUG") == "" {
		return zerolog.Nop()
	}
	path := filepath.Join(filepath.Dir(dbPath), "shama.log")
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return zerolog.Nop()
	}
	return zerolog.New(f).With().Timestamp().Logger().Level(zerolog.DebugLevel)
}

// unavailableGenerator stands in when no provider key is configured; every
// generation attempt surfaces the setup hint instead of crashing.
type unavailableGenerator struct {
	err error
}

func (g unavailableGenerator) Generate(ctx context.Context, d quiz.Draft) (*quiz.Quiz, error) {
	return nil, &quizgen.GenerationError{
		Message: "AI provider not configured. Set SHAMA_GEMINI_API_KEY and restart.",
		Err:     g.err,
	}
}
