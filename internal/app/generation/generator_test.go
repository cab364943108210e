package generation

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/yigit/curricuforge/internal/config"
	"github.com/yigit/curricuforge/internal/pkg/apperrors"
)

type funcGenerator func(ctx context.Context) (string, error)

func (f funcGenerator) Name() string { return "fake" }

func (f funcGenerator) Generate(ctx context.Context, _, _ string) (string, error) {
	return f(ctx)
}

func TestWithTimeout(t *testing.T) {
	tests := []struct {
		name    string
		gen     funcGenerator
		timeout time.Duration
		want    error
		text    string
	}{
		{
			name:    "success",
			gen:     func(context.Context) (string, error) { return `{"ok":true}`, nil },
			timeout: time.Second,
			text:    `{"ok":true}`,
		},
		{
			name: "deadline",
			gen: func(ctx context.Context) (string, error) {
				<-ctx.Done()
				return "", ctx.Err()
			},
			timeout: 20 * time.Millisecond,
			want:    apperrors.ErrGenerationTimeout,
		},
		{
			name:    "transport failure",
			gen:     func(context.Context) (string, error) { return "", io.ErrUnexpectedEOF },
			timeout: time.Second,
			want:    apperrors.ErrNetwork,
		},
		{
			name:    "missing credential passes through",
			gen:     func(ctx context.Context) (string, error) { return Unconfigured{Provider: "gemini"}.Generate(ctx, "", "") },
			timeout: time.Second,
			want:    apperrors.ErrMissingCredential,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := WithTimeout(tt.gen, tt.timeout, zerolog.Nop())
			text, err := g.Generate(context.Background(), "system", "prompt")

			if tt.want == nil {
				if err != nil || text != tt.text {
					t.Fatalf("Generate() = (%q, %v), want (%q, nil)", text, err, tt.text)
				}
				return
			}
			if !errors.Is(err, tt.want) {
				t.Errorf("Generate() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestTimeoutErrorCarriesDuration(t *testing.T) {
	g := WithTimeout(funcGenerator(func(ctx context.Context) (string, error) {
		<-ctx.Done()
		return "", ctx.Err()
	}), 10*time.Millisecond, zerolog.Nop())

	_, err := g.Generate(context.Background(), "", "")
	var te *apperrors.GenerationTimeoutError
	if !errors.As(err, &te) || te.After != 10*time.Millisecond {
		t.Errorf("error = %v, want GenerationTimeoutError after 10ms", err)
	}
}

func TestNewWithoutCredential(t *testing.T) {
	cfg := &config.Config{}
	cfg.Generation.Provider = config.ProviderGemini
	cfg.Generation.Timeout = time.Second

	g := New(cfg, zerolog.Nop())
	if _, err := g.Generate(context.Background(), "s", "p"); !errors.Is(err, apperrors.ErrMissingCredential) {
		t.Errorf("Generate() error = %v, want ErrMissingCredential", err)
	}
}

func TestNewSelectsProvider(t *testing.T) {
	cfg := &config.Config{}
	cfg.Generation.Timeout = time.Second

	cfg.Generation.Provider = config.ProviderAnthropic
	cfg.Generation.AnthropicAPIKey = "k"
	if name := New(cfg, zerolog.Nop()).Name(); name != "anthropic" {
		t.Errorf("Name() = %q, want anthropic", name)
	}

	cfg.Generation.Provider = config.ProviderGemini
	cfg.Generation.GeminiAPIKey = "k"
	if name := New(cfg, zerolog.Nop()).Name(); name != "gemini" {
		t.Errorf("Name() = %q, want gemini", name)
	}
}
