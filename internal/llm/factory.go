package llm

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/azzautomation2026/shama/internal/store"
)

// NewProvider creates a Provider from configuration, wrapped with retry
// and call-recording middleware. Call order: caller, retry, logging, base.
func NewProvider(ctx context.Context, cfg Config, repo *store.RequestLogRepo, log zerolog.Logger) (Provider, error) {
	var base Provider
	var err error

	switch cfg.Provider {
	case "gemini":
		base, err = NewGeminiProvider(ctx, cfg.Gemini)
	case "anthropic":
		base, err = NewAnthropicProvider(cfg.Anthropic)
	case "openai":
		base, err = NewOpenAIProvider(cfg.OpenAI)
	case "openrouter":
		base, err = NewOpenRouterProvider(cfg.OpenRouter)
	case "mock":
		return NewMockProvider(), nil
	default:
		return nil, fmt.Errorf("unknown LLM provider: %q", cfg.Provider)
	}
	if err != nil {
		return nil, fmt.Errorf("initializing %s provider: %w", cfg.Provider, err)
	}

	logged := WithLogging(base, repo, log)
	return WithRetry(logged, cfg.Retry), nil
}
