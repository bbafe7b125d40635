package llmprovider

import (
	"fmt"
	"net/http"

	"taskmaster-ai/pkg/deepseek"
	"taskmaster-ai/pkg/gemini"
	"taskmaster-ai/pkg/qwen"
)

// NewProvider creates the concrete adapter for cfg.Kind.
// It returns ErrNoProviderConfigured when the kind is none or the API key is empty,
// so callers can go straight to the heuristic path.
func NewProvider(cfg ProviderConfig) (Provider, error) {
	if !cfg.Configured() {
		return nil, ErrNoProviderConfigured
	}

	// The per-call deadline comes from the caller's context; the client timeout
	// is only a backstop slightly above it.
	httpClient := &http.Client{Timeout: cfg.EffectiveTimeout() + cfg.EffectiveTimeout()/2}

	switch cfg.Kind {
	case KindGemini:
		client, err := gemini.New(gemini.Config{
			APIKey:     cfg.APIKey,
			Model:      cfg.Model,
			APIURL:     cfg.BaseURL,
			HTTPClient: httpClient,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create gemini client: %w", err)
		}
		return NewGeminiAdapter(client), nil

	case KindQwen:
		client, err := qwen.New(qwen.Config{
			APIKey:     cfg.APIKey,
			Model:      cfg.Model,
			BaseURL:    cfg.BaseURL,
			HTTPClient: httpClient,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create qwen client: %w", err)
		}
		return NewQwenAdapter(client), nil

	case KindDeepSeek:
		client, err := deepseek.New(deepseek.Config{
			APIKey:     cfg.APIKey,
			Model:      cfg.Model,
			BaseURL:    cfg.BaseURL,
			HTTPClient: httpClient,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create deepseek client: %w", err)
		}
		return NewDeepSeekAdapter(client), nil

	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownProvider, cfg.Kind)
	}
}
