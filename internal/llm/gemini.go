package llm

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/grh-platform/grh-lambda/internal/config"
	"google.golang.org/genai"
)

const defaultGeminiModel = "gemini-2.0-flash"

type geminiProvider struct {
	client *genai.Client
	model  string
}

func NewGeminiProvider(ctx context.Context) (Provider, error) {
	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("erro ao criar cliente Gemini: %w", err)
	}

	model := os.Getenv("LLM_MODEL")
	if model == "" {
		model = defaultGeminiModel
	}

	return &geminiProvider{client: client, model: model}, nil
}

func (p *geminiProvider) SendPrompt(ctx context.Context, req Request) (string, error) {
	log := config.WithContext(ctx)

	prompt := req.User
	if req.System != "" {
		prompt = req.System + "\n\n" + req.User
	}

	cfg := &genai.GenerateContentConfig{
		Temperature: genai.Ptr(req.Temperature),
	}
	if req.MaxTokens > 0 {
		cfg.MaxOutputTokens = int32(req.MaxTokens)
	}

	result, err := p.client.Models.GenerateContent(ctx, p.model, genai.Text(prompt), cfg)
	if err != nil {
		log.WithError(err).Error("falha ao gerar conteúdo do Gemini")
		return "", fmt.Errorf("falha ao gerar conteúdo: %w", err)
	}

	raw := result.Text()
	log.Debugf("[LLM] Resposta bruta do Gemini:\n%s", raw)

	if raw == "" {
		return "", errors.New("resposta vazia do modelo")
	}

	return raw, nil
}
