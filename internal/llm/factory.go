package llm

import (
	"context"
	"fmt"
	"strings"
)

// ProviderFactory builds request-scoped clients for the configured provider.
// Construction happens per request so that each caller's credential is bound
// to its own client instance; nothing here is mutated after creation.
type ProviderFactory struct {
	provider      string
	openAIBaseURL string
}

// NewProviderFactory creates a factory for the given provider ("gemini" or
// "openai").
func NewProviderFactory(provider, openAIBaseURL string) *ProviderFactory {
	return &ProviderFactory{
		provider:      strings.ToLower(strings.TrimSpace(provider)),
		openAIBaseURL: openAIBaseURL,
	}
}

// NewClient builds a client bound to the request's credential and model.
func (f *ProviderFactory) NewClient(ctx context.Context, opts Options) (Client, error) {
	provider := strings.ToLower(strings.TrimSpace(opts.Provider))
	if provider == "" {
		provider = f.provider
	}

	switch provider {
	case "", "gemini":
		return NewGeminiClient(ctx, opts.Credential, opts.Model)
	case "openai":
		return NewOpenAIClient(opts.Credential, opts.Model, f.openAIBaseURL)
	default:
		return nil, fmt.Errorf("llm: unknown provider %q", provider)
	}
}
