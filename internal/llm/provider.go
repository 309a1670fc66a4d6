package llm

import (
	"context"
	"os"
)

type Request struct {
	System      string
	User        string
	Temperature float32
	MaxTokens   int
}

type Provider interface {
	SendPrompt(ctx context.Context, req Request) (string, error)
}

func NewProviderFromEnv(ctx context.Context) (Provider, error) {
	switch os.Getenv("LLM_PROVIDER") {
	case "gemini":
		return NewGeminiProvider(ctx)
	default:
		return NewGroqProvider(), nil
	}
}
