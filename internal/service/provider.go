package service

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"essay_coach_backend/internal/config"
	"essay_coach_backend/pkg/logger"

	"go.uber.org/zap"
)

// Provider is one LLM backend. Implementations must be interchangeable:
// same prompts in, raw completion text out. A call is a single blocking
// round trip with no retries; cancellation rides on the context.
type Provider interface {
	Name() string
	Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}

// ProviderSet holds the configured backends keyed by name.
type ProviderSet struct {
	providers   map[string]Provider
	defaultName string
}

// NewProviderSet builds the configured providers. An unconfigured backend
// (missing API key) is simply not registered; picking it later yields a
// structured error instead of a startup failure.
func NewProviderSet(ctx context.Context, cfg config.ProvidersConfig) *ProviderSet {
	httpClient := newHTTPClient(cfg.ProxyURL)

	set := &ProviderSet{
		providers:   make(map[string]Provider),
		defaultName: cfg.Default,
	}

	set.providers["deepseek"] = NewDeepSeekProvider(cfg.DeepSeek, httpClient)

	if cfg.Gemini.APIKey != "" {
		gem, err := NewGeminiProvider(ctx, cfg.Gemini, httpClient)
		if err != nil {
			logger.Log.Warn("gemini provider unavailable", zap.Error(err))
		} else {
			set.providers["gemini"] = gem
		}
	}

	return set
}

// Pick resolves a provider by name, falling back to the configured
// default when name is empty.
func (s *ProviderSet) Pick(name string) (Provider, error) {
	if name == "" {
		name = s.defaultName
	}
	p, ok := s.providers[name]
	if !ok {
		return nil, fmt.Errorf("provider %q is not configured", name)
	}
	return p, nil
}

func newHTTPClient(proxyURL string) *http.Client {
	if proxyURL == "" {
		return &http.Client{}
	}
	parsed, err := url.Parse(proxyURL)
	if err != nil {
		logger.Log.Warn("invalid proxy url, ignoring", zap.String("proxy_url", proxyURL), zap.Error(err))
		return &http.Client{}
	}
	return &http.Client{
		Transport: &http.Transport{Proxy: http.ProxyURL(parsed)},
	}
}
