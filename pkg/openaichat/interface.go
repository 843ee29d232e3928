package openaichat

import "context"

// IOpenAIChat defines the interface for OpenAI-compatible chat clients
type IOpenAIChat interface {
	GenerateContent(ctx context.Context, req *Request) (*Response, error)
}
