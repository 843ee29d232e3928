package ollama

import "context"

// IOllama defines the interface for the Ollama LLM client
type IOllama interface {
	GenerateContent(ctx context.Context, req *Request) (*Response, error)
	Ping(ctx context.Context) error
}
