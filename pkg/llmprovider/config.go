package llmprovider

import (
	"fmt"
	"strings"
	"time"
)

// Kind identifies one of the supported vendors.
type Kind string

const (
	KindNone     Kind = "none"
	KindGemini   Kind = "gemini"
	KindQwen     Kind = "qwen"
	KindDeepSeek Kind = "deepseek"
)

// DefaultTimeout bounds a single provider call when none is configured.
const DefaultTimeout = 10 * time.Second

// ParseKind maps a configured provider name onto a Kind. An empty name and
// "fallback" both mean the heuristic path only.
func ParseKind(name string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "none", "fallback", "heuristic":
		return KindNone, nil
	case "gemini", "google":
		return KindGemini, nil
	case "qwen", "alibaba":
		return KindQwen, nil
	case "deepseek":
		return KindDeepSeek, nil
	default:
		return KindNone, fmt.Errorf("%w: %s", ErrUnknownProvider, name)
	}
}

// ProviderConfig is read once at startup and never mutated afterwards.
type ProviderConfig struct {
	Kind    Kind
	APIKey  string
	Model   string
	BaseURL string
	Timeout time.Duration
}

// Configured reports whether a vendor call should be attempted at all.
func (c ProviderConfig) Configured() bool {
	return c.Kind != KindNone && c.Kind != "" && strings.TrimSpace(c.APIKey) != ""
}

// EffectiveTimeout returns the configured timeout or DefaultTimeout.
func (c ProviderConfig) EffectiveTimeout() time.Duration {
	if c.Timeout <= 0 {
		return DefaultTimeout
	}
	return c.Timeout
}
