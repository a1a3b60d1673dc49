package llm

import "context"

const (
	ChatRoleSystem    = "system"
	ChatRoleUser      = "user"
	ChatRoleAssistant = "assistant"
)

// ChatMessage is an internal message representation that can include system prompts.
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type TokenUsage struct {
	InputTokens  int32
	OutputTokens int32
	TotalTokens  int32
}

type Request struct {
	System      []string
	Messages    []ChatMessage
	MaxTokens   int32
	Temperature float32
	TopP        float32
}

type Response struct {
	Text       string
	Usage      TokenUsage
	StopReason string
}

// Client is one configured model backend. Implementations carry their own
// credential and model identity; a Client is built per request and never
// shared across requests. The caller that obtained a Client owns it and must
// Close it when the request finishes.
type Client interface {
	Complete(ctx context.Context, req Request) (Response, error)
	Close() error
}

// Options selects the model configuration for one request. Credential is the
// caller's bearer token, forwarded to the provider; it is never read from
// process configuration.
type Options struct {
	Provider    string
	Model       string
	Credential  string
	Temperature float32
	MaxTokens   int32
}

// Factory builds a request-scoped Client from per-request options.
type Factory interface {
	NewClient(ctx context.Context, opts Options) (Client, error)
}
