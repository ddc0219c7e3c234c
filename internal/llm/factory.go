package llm

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"go.uber.org/zap"
)

// NewProvider creates the configured backend wrapped as
// caller -> retry -> recording -> backend.
func NewProvider(ctx context.Context, cfg Config, recorder EventRecorder, logger *zap.Logger) (Provider, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	var (
		base Provider
		err  error
	)
	switch cfg.Provider {
	case ProviderGemini:
		base, err = NewGeminiProvider(ctx, cfg.Gemini)
	case ProviderAnthropic:
		base, err = NewAnthropicProvider(cfg.Anthropic)
	case ProviderOpenAI:
		base, err = NewOpenAIProvider(cfg.OpenAI)
	case ProviderOpenRouter:
		base, err = NewOpenRouterProvider(cfg.OpenRouter)
	case ProviderMock:
		base = NewMockProvider()
	}
	if err != nil {
		return nil, fmt.Errorf("initializing %s provider: %w", cfg.Provider, err)
	}

	recorded := WithRecording(base, cfg.Provider, recorder, logger)
	return WithRetry(recorded, cfg.Retry, logger), nil
}

// Overrides are values from the config file. DC_* environment variables
// still take precedence over them.
type Overrides struct {
	Provider string
	Model    string
	Timeout  time.Duration
}

// LoadConfig resolves the provider configuration. It starts from DC_*
// variables and the file overrides; if the chosen provider has no key and
// none was chosen explicitly, it falls back to DiscoverConfig. It returns
// ErrNotConfigured when nothing usable is found.
func LoadConfig(o Overrides) (Config, error) {
	cfg := ConfigFromEnv()

	explicit := os.Getenv(EnvPrefix+"LLM_PROVIDER") != ""
	if !explicit && o.Provider != "" {
		cfg.Provider = strings.ToLower(o.Provider)
		explicit = true
	}
	if os.Getenv(EnvPrefix+strings.ToUpper(cfg.Provider)+"_MODEL") == "" {
		cfg = cfg.WithModel(o.Model)
	}
	if os.Getenv(EnvPrefix+"LLM_TIMEOUT") == "" && o.Timeout > 0 {
		cfg.Timeout = o.Timeout
	}

	err := cfg.Validate()
	if err == nil {
		return cfg, nil
	}
	if explicit {
		return Config{}, err
	}

	discovered, ok := DiscoverConfig()
	if !ok {
		return Config{}, ErrNotConfigured
	}
	discovered.Timeout = cfg.Timeout
	return discovered, nil
}
