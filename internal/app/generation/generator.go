// Package generation talks to the hosted text-generation providers.
// A Generator turns a system instruction and a prompt into raw text; the
// text is untrusted and must go through curriculum.Decode.
package generation

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/yigit/curricuforge/internal/config"
	"github.com/yigit/curricuforge/internal/pkg/apperrors"
)

// Generator is the single generation call
type Generator interface {
	Name() string
	Generate(ctx context.Context, systemInstruction, prompt string) (string, error)
}

// Options configures a provider
type Options struct {
	APIKey      string
	Model       string
	Temperature float64
	MaxTokens   int
}

// New returns the configured provider wrapped with a timeout. Without a
// credential it returns a generator that always fails with
// apperrors.ErrMissingCredential.
func New(cfg *config.Config, logger zerolog.Logger) Generator {
	opts := Options{
		APIKey:      cfg.APIKey(),
		Model:       cfg.Model(),
		Temperature: cfg.Generation.Temperature,
		MaxTokens:   cfg.Generation.MaxTokens,
	}

	var g Generator
	switch {
	case opts.APIKey == "":
		logger.Warn().Str("provider", cfg.Generation.Provider).Msg("No generation credential configured, generation requests will fail")
		g = Unconfigured{Provider: cfg.Generation.Provider}
	case cfg.Generation.Provider == config.ProviderAnthropic:
		g = NewAnthropic(opts)
	default:
		g = NewGemini(opts)
	}

	return WithTimeout(g, cfg.Generation.Timeout, logger)
}

// Unconfigured is the generator used when no credential is available
type Unconfigured struct {
	Provider string
}

func (u Unconfigured) Name() string { return u.Provider }

func (u Unconfigured) Generate(context.Context, string, string) (string, error) {
	return "", fmt.Errorf("%w: set the API key for provider %q", apperrors.ErrMissingCredential, u.Provider)
}

type timeoutGenerator struct {
	next    Generator
	timeout time.Duration
	logger  zerolog.Logger
}

// WithTimeout bounds every call of g by timeout. An expired deadline becomes
// a *apperrors.GenerationTimeoutError and other provider failures become a
// *apperrors.NetworkError. Nothing is retried.
func WithTimeout(g Generator, timeout time.Duration, logger zerolog.Logger) Generator {
	return &timeoutGenerator{next: g, timeout: timeout, logger: logger}
}

func (t *timeoutGenerator) Name() string { return t.next.Name() }

func (t *timeoutGenerator) Generate(ctx context.Context, systemInstruction, prompt string) (string, error) {
	ctx, span := otel.Tracer("curricuforge/generation").Start(ctx, "generation.Generate")
	defer span.End()
	span.SetAttributes(
		attribute.String("generation.provider", t.next.Name()),
		attribute.Int("generation.prompt_bytes", len(prompt)),
	)

	ctx, cancel := context.WithTimeout(ctx, t.timeout)
	defer cancel()

	start := time.Now()
	text, err := t.next.Generate(ctx, systemInstruction, prompt)
	elapsed := time.Since(start)

	if err != nil {
		err = t.classify(ctx, err)
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		t.logger.Error().Err(err).Str("provider", t.next.Name()).Dur("elapsed", elapsed).Msg("Generation failed")
		return "", err
	}

	span.SetAttributes(attribute.Int("generation.response_bytes", len(text)))
	t.logger.Info().Str("provider", t.next.Name()).Dur("elapsed", elapsed).Int("bytes", len(text)).Msg("Generation completed")
	return text, nil
}

func (t *timeoutGenerator) classify(ctx context.Context, err error) error {
	switch {
	case errors.Is(err, apperrors.ErrMissingCredential),
		errors.Is(err, apperrors.ErrGenerationTimeout),
		errors.Is(err, apperrors.ErrNetwork):
		return err
	case errors.Is(ctx.Err(), context.DeadlineExceeded), errors.Is(err, context.DeadlineExceeded):
		return &apperrors.GenerationTimeoutError{After: t.timeout}
	case errors.Is(err, context.Canceled):
		return err
	default:
		return &apperrors.NetworkError{Op: t.next.Name() + " generate", Err: err}
	}
}
