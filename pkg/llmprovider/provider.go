package llmprovider

import "context"

// Provider is the single contract every vendor adapter implements: a prompt
// goes in, raw completion text comes out. Any failure is a *TransportError.
type Provider interface {
	// GenerateContent sends a generation request and returns the raw text response
	GenerateContent(ctx context.Context, req *Request) (*Response, error)

	// Name returns the provider name (e.g., "qwen", "gemini")
	Name() string

	// Model returns the model being used
	Model() string
}

// Request represents a normalized LLM generation request
type Request struct {
	SystemInstruction string
	Prompt            string
	Temperature       float64
	MaxTokens         int
	// JSONMode asks the vendor for a JSON object when it supports it
	JSONMode bool
}

// Response represents a normalized LLM generation response
type Response struct {
	Text         string
	ProviderName string
	ModelName    string
	Usage        *Usage
}

// Usage tracks token consumption
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
