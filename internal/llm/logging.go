package llm

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/azzautomation2026/shama/internal/store"
)

// LoggingProvider is a decorator that records every model call, both as a
// structured log line and as a row in the request log table.
type LoggingProvider struct {
	inner Provider
	repo  *store.RequestLogRepo
	log   zerolog.Logger
}

// WithLogging wraps a Provider with call recording. repo may be nil, in
// which case only the structured log line is emitted.
func WithLogging(p Provider, repo *store.RequestLogRepo, log zerolog.Logger) Provider {
	return &LoggingProvider{inner: p, repo: repo, log: log}
}

func (l *LoggingProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()
	purpose := PurposeFrom(ctx)

	resp, err := l.inner.Generate(ctx, req)
	latency := time.Since(start)

	entry := store.RequestLogEntry{
		Provider: l.inner.ModelID(),
		Model:    l.inner.ModelID(),
		Purpose:  purpose,
		Latency:  latency,
		Success:  err == nil,
	}
	if resp != nil {
		entry.Model = resp.Model
		entry.InputTokens = resp.Usage.InputTokens
		entry.OutputTokens = resp.Usage.OutputTokens
	}
	if err != nil {
		entry.ErrorMessage = err.Error()
	}

	ev := l.log.Debug().
		Str("model", entry.Model).
		Str("purpose", purpose).
		Dur("latency", latency).
		Int("input_tokens", entry.InputTokens).
		Int("output_tokens", entry.OutputTokens).
		Bool("success", entry.Success)
	if c := LookupCost(entry.Model); c != nil {
		ev = ev.Float64("est_cost_usd", c.Cost(entry.InputTokens, entry.OutputTokens))
	}
	ev.Msg("llm request")

	// Recording is advisory: never fail the request over it.
	if l.repo != nil {
		if logErr := l.repo.Append(ctx, entry); logErr != nil {
			l.log.Warn().Err(logErr).Msg("request log append failed")
		}
	}

	return resp, err
}

func (l *LoggingProvider) ModelID() string {
	return l.inner.ModelID()
}
